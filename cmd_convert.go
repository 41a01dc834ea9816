package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Aphelion-Aerospace/RocketProps/pkg/cliutil"
	"github.com/Aphelion-Aerospace/RocketProps/pkg/unit"
)

func init() {
	cmd := &cobra.Command{
		Use:   "convert VALUE FROM_UNIT TO_UNIT",
		Short: "Convert a value between units of the same quantity",
		Long: "Convert a value between units of the same quantity.\n" +
			"\n" +
			"Known units:\n" +
			"  " + strings.Join(unit.Names(), ", "),
		Args: cliutil.WrapPositionalArgs(cobra.ExactArgs(3)),
		RunE: func(flags *cobra.Command, args []string) error {
			value, err := strconv.ParseFloat(args[0], 64)
			if err != nil {
				return fmt.Errorf("invalid value %q: %w", args[0], err)
			}
			ret, err := unit.Convert(value, args[1], args[2])
			if err != nil {
				return err
			}
			fmt.Fprintf(flags.OutOrStdout(), "%.10g %s\n", ret, args[2])
			return nil
		},
	}
	argparser.AddCommand(cmd)
}
