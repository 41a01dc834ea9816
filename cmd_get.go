package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Aphelion-Aerospace/RocketProps/pkg/cliutil"
	"github.com/Aphelion-Aerospace/RocketProps/pkg/prop"
	"github.com/Aphelion-Aerospace/RocketProps/pkg/refdata"
)

func init() {
	var (
		tDegR, pPsia float64
		units        string
		showSource   bool
	)
	cmd := &cobra.Command{
		Use:   "get [flags] SUBSTANCE PROPERTY",
		Short: "Evaluate one property of a substance at a state point",
		Long: "Evaluate one property of a substance at a state point.\n" +
			"\n" +
			"The property is one of: " + propertyNames() + ".  Liquid-only\n" +
			"properties are defined on [Tfreeze, Tc]; asking for one outside\n" +
			"that range is an error, not an extrapolation.\n" +
			"\n" +
			"The default output unit is the property's base unit, unless\n" +
			"overridden for the property's quantity family by the\n" +
			"ROCKETPROPS_UNITS environment variable (a comma-separated list of\n" +
			"unit names).  --units always wins.",
		Args: cliutil.WrapPositionalArgs(cobra.ExactArgs(2)),
		RunE: func(flags *cobra.Command, args []string) error {
			ctx := flags.Context()
			sub, err := lookupSubstance(ctx, args[0])
			if err != nil {
				return err
			}
			p, err := prop.ParseProperty(args[1])
			if err != nil {
				return err
			}
			if units == "" {
				units = envDefaultUnit(p.Family())
			}
			opts := []prop.Option{prop.AtP(pPsia), prop.InUnit(units)}
			if flags.Flags().Changed("T") {
				opts = append(opts, prop.AtT(tDegR))
			}
			res, err := prop.Query(sub, p, opts...)
			if err != nil {
				return err
			}
			out := flags.OutOrStdout()
			fmt.Fprintf(out, "%.6g %s\n", res.Value, res.Unit)
			if showSource {
				src := res.Provenance.Source
				if src == "" {
					src = "dataset scalar"
				}
				switch {
				case res.Provenance.Anchor != nil:
					fmt.Fprintf(out, "source: %s (anchor point)\n", src)
				case res.Provenance.Fit != "":
					fmt.Fprintf(out, "source: %s (%s fit)\n", src, res.Provenance.Fit)
				default:
					fmt.Fprintf(out, "source: %s\n", src)
				}
				if res.Provenance.Compressed {
					fmt.Fprintln(out, "corrected to the query pressure by isothermal compressibility")
				}
			}
			return nil
		},
	}
	cmd.Flags().Float64Var(&tDegR, "T", refdata.StdTdegR,
		"Temperature in `DEGR` (default: the substance reference temperature)")
	cmd.Flags().Float64Var(&pPsia, "P", refdata.StdPpsia,
		"Pressure in `PSIA`")
	cmd.Flags().StringVar(&units, "units", "",
		"Output `UNIT` name (default: the property's base unit)")
	cmd.Flags().BoolVar(&showSource, "show-source", false,
		"Also print the literature source and curve used")
	argparser.AddCommand(cmd)
}

func propertyNames() string {
	var names string
	for i, p := range prop.Properties {
		if i > 0 {
			names += ", "
		}
		names += p.String()
	}
	return names
}
