package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Aphelion-Aerospace/RocketProps/pkg/cliutil"
	"github.com/Aphelion-Aerospace/RocketProps/pkg/prop"
	"github.com/Aphelion-Aerospace/RocketProps/pkg/refdata"
)

func init() {
	var tDegR, pPsia float64
	cmd := &cobra.Command{
		Use:   "summary [flags] SUBSTANCE",
		Short: "Print the fixed-format state-point report for a substance",
		Args:  cliutil.WrapPositionalArgs(cobra.ExactArgs(1)),
		RunE: func(flags *cobra.Command, args []string) error {
			ctx := flags.Context()
			sub, err := lookupSubstance(ctx, args[0])
			if err != nil {
				return err
			}
			opts := []prop.Option{prop.AtP(pPsia)}
			if flags.Flags().Changed("T") {
				opts = append(opts, prop.AtT(tDegR))
			}
			report, err := prop.Summary(sub, opts...)
			if err != nil {
				return err
			}
			fmt.Fprint(flags.OutOrStdout(), report)
			return nil
		},
	}
	cmd.Flags().Float64Var(&tDegR, "T", refdata.StdTdegR,
		"Temperature in `DEGR` (default: the substance reference temperature)")
	cmd.Flags().Float64Var(&pPsia, "P", refdata.StdPpsia,
		"Pressure in `PSIA`")
	argparser.AddCommand(cmd)
}
