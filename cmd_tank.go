package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Aphelion-Aerospace/RocketProps/pkg/cliutil"
	"github.com/Aphelion-Aerospace/RocketProps/pkg/tank"
)

func init() {
	var (
		kgExpelled, tMaxC, expPcent, ullPcent, loOverD float64
		shape                                          string
	)
	cmd := &cobra.Command{
		Use:   "tank [flags] SUBSTANCE",
		Short: "Size a propellant tank for a required expelled mass",
		Long: "Size a propellant tank for a required expelled mass.  The tank is\n" +
			"sized at the hottest expected propellant temperature, where the\n" +
			"saturated liquid is least dense, with the stated expulsion\n" +
			"efficiency and ullage fraction.",
		Args: cliutil.WrapPositionalArgs(cobra.ExactArgs(1)),
		RunE: func(flags *cobra.Command, args []string) error {
			ctx := flags.Context()
			sub, err := lookupSubstance(ctx, args[0])
			if err != nil {
				return err
			}
			ccTotal, kgLoaded, kgResidual, err := tank.Volume(sub, kgExpelled, tMaxC, expPcent, ullPcent)
			if err != nil {
				return err
			}
			out := flags.OutOrStdout()
			fmt.Fprintf(out, "%-12s = %10.6g cc (%.6g liters)\n", "volume", ccTotal, ccTotal/1000)
			fmt.Fprintf(out, "%-12s = %10.6g kg\n", "loaded", kgLoaded)
			fmt.Fprintf(out, "%-12s = %10.6g kg\n", "expelled", kgExpelled)
			fmt.Fprintf(out, "%-12s = %10.6g kg\n", "residual", kgResidual)
			switch shape {
			case "sphere":
				d, err := tank.SphereDiameter(ccTotal)
				if err != nil {
					return err
				}
				fmt.Fprintf(out, "%-12s = %10.6g in sphere diameter\n", "diameter", d)
			case "cylinder":
				d, l, err := tank.CylinderDiameter(ccTotal, loOverD)
				if err != nil {
					return err
				}
				fmt.Fprintf(out, "%-12s = %10.6g in cylinder diameter\n", "diameter", d)
				fmt.Fprintf(out, "%-12s = %10.6g in cylinder length\n", "length", l)
			default:
				return fmt.Errorf("unknown tank shape %q (want \"sphere\" or \"cylinder\")", shape)
			}
			return nil
		},
	}
	cmd.Flags().Float64Var(&kgExpelled, "kg-expelled", 50,
		"Required expelled propellant mass in `KG`")
	cmd.Flags().Float64Var(&tMaxC, "tmax-c", 50,
		"Hottest expected propellant temperature in `DEGC`")
	cmd.Flags().Float64Var(&expPcent, "expulsion-pcent", 98,
		"Expulsion efficiency in `PERCENT` of loaded mass")
	cmd.Flags().Float64Var(&ullPcent, "ullage-pcent", 3,
		"Ullage in `PERCENT` of total tank volume at the hot condition")
	cmd.Flags().StringVar(&shape, "shape", "sphere",
		"Tank `SHAPE`: \"sphere\" or \"cylinder\"")
	cmd.Flags().Float64Var(&loOverD, "lod", 2,
		"Cylinder length-over-diameter `RATIO` (with --shape=cylinder)")
	argparser.AddCommand(cmd)
}
