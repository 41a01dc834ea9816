package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/Aphelion-Aerospace/RocketProps/pkg/cliutil"
	"github.com/Aphelion-Aerospace/RocketProps/pkg/prop"
)

func init() {
	var points int
	cmd := &cobra.Command{
		Use:   "saturation [flags] SUBSTANCE",
		Short: "Tabulate saturated-liquid properties from Tfreeze to Tc",
		Long: "Tabulate saturated-liquid properties at evenly spaced temperatures\n" +
			"from the freezing point to the critical point, in base units.\n" +
			"Fits whose fitted domain stops short of an endpoint are held at\n" +
			"their domain edge rather than extrapolated.",
		Args: cliutil.WrapPositionalArgs(cobra.ExactArgs(1)),
		RunE: func(flags *cobra.Command, args []string) error {
			ctx := flags.Context()
			sub, err := lookupSubstance(ctx, args[0])
			if err != nil {
				return err
			}
			rows, err := prop.Saturation(sub, points)
			if err != nil {
				return err
			}
			w := tabwriter.NewWriter(flags.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "T degR\tTr\tPvap psia\tSGliq g/cc\tSGvap g/cc\tvisc poise\tcond BTU/hr/ft/delF\tCp BTU/lbm/delF\tHvap BTU/lbm\tsurf lbf/in")
			for _, row := range rows {
				fmt.Fprintf(w, "%.2f\t%.4f\t%.6g\t%.6g\t%.6g\t%.6g\t%.6g\t%.6g\t%.6g\t%.6g\n",
					row.T, row.Tr, row.Pvap, row.SGliq, row.SGvap,
					row.Visc, row.Cond, row.Cp, row.Hvap, row.Surf)
			}
			return w.Flush()
		},
	}
	cmd.Flags().IntVar(&points, "points", 21,
		"Number `N` of evenly spaced temperature stations")
	argparser.AddCommand(cmd)
}
