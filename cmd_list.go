package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Aphelion-Aerospace/RocketProps/pkg/cliutil"
	"github.com/Aphelion-Aerospace/RocketProps/pkg/refdata"
)

func init() {
	var showVersion bool
	cmd := &cobra.Command{
		Use:   "list [flags]",
		Short: "List the registered substances and their aliases",
		Args:  cliutil.WrapPositionalArgs(cobra.NoArgs),
		RunE: func(flags *cobra.Command, _ []string) error {
			ctx := flags.Context()
			reg, err := refdata.Load(ctx)
			if err != nil {
				return err
			}
			out := flags.OutOrStdout()
			if showVersion {
				fmt.Fprintf(out, "dataset %s (generated %s)\n", reg.Version(), reg.Generated())
			}
			for _, name := range reg.Names() {
				sub, err := reg.Resolve(name)
				if err != nil {
					return err
				}
				if len(sub.Aliases) > 0 {
					fmt.Fprintf(out, "%-10s %s\n", name, strings.Join(sub.Aliases, ", "))
				} else {
					fmt.Fprintln(out, name)
				}
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&showVersion, "version", false,
		"Also print the reference-dataset version stamp")
	argparser.AddCommand(cmd)
}
