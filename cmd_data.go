package main

import (
	"github.com/spf13/cobra"
	"sigs.k8s.io/yaml"

	"github.com/Aphelion-Aerospace/RocketProps/pkg/cliutil"
)

func init() {
	cmd := &cobra.Command{
		Use:   "data SUBSTANCE",
		Short: "Dump the raw reference-dataset record for a substance",
		Long: "Dump the raw reference-dataset record for a substance as YAML:\n" +
			"scalar constants, measured anchor points, and every registered\n" +
			"curve fit with its coefficients and source, including the\n" +
			"non-selected alternates.  Blend names dump the synthesized\n" +
			"record.",
		Args: cliutil.WrapPositionalArgs(cobra.ExactArgs(1)),
		RunE: func(flags *cobra.Command, args []string) error {
			ctx := flags.Context()
			sub, err := lookupSubstance(ctx, args[0])
			if err != nil {
				return err
			}
			bs, err := yaml.Marshal(sub)
			if err != nil {
				return err
			}
			_, err = flags.OutOrStdout().Write(bs)
			return err
		},
	}
	argparser.AddCommand(cmd)
}
