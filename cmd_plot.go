package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Aphelion-Aerospace/RocketProps/pkg/cliutil"
	"github.com/Aphelion-Aerospace/RocketProps/pkg/satplot"
)

func init() {
	var outDir string
	cmd := &cobra.Command{
		Use:   "plot [flags] SUBSTANCE...",
		Short: "Render saturation-property panel charts to PNG files",
		Long: "Render, for each substance, a panel chart of the saturated-liquid\n" +
			"properties across [Tfreeze, Tc] to a PNG file in the output\n" +
			"directory.  The file is named after the substance.",
		Args: cliutil.WrapPositionalArgs(cobra.MinimumNArgs(1)),
		RunE: func(flags *cobra.Command, args []string) error {
			ctx := flags.Context()
			for _, name := range args {
				sub, err := lookupSubstance(ctx, name)
				if err != nil {
					return err
				}
				path, err := satplot.Save(sub, outDir)
				if err != nil {
					return err
				}
				fmt.Fprintln(flags.OutOrStdout(), path)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&outDir, "out", ".",
		"Output `DIRECTORY` for the PNG files")
	argparser.AddCommand(cmd)
}
