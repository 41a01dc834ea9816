package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Aphelion-Aerospace/RocketProps/pkg/cliutil"
	"github.com/Aphelion-Aerospace/RocketProps/pkg/refdata"
	"github.com/Aphelion-Aerospace/RocketProps/pkg/valve"
)

func init() {
	var (
		tDegR, pPsia, wdot, cv, cda float64
	)
	cmd := &cobra.Command{
		Use:   "valve [flags] SUBSTANCE",
		Short: "Compute the liquid pressure drop across a valve or orifice",
		Long: "Compute the liquid pressure drop across a valve characterized by a\n" +
			"flow coefficient (--cv) or an orifice characterized by an\n" +
			"effective flow area (--cda).  Exactly one of --cv or --cda is\n" +
			"required.",
		Args: cliutil.WrapPositionalArgs(cobra.ExactArgs(1)),
		RunE: func(flags *cobra.Command, args []string) error {
			ctx := flags.Context()
			haveCv := flags.Flags().Changed("cv")
			haveCdA := flags.Flags().Changed("cda")
			if haveCv == haveCdA {
				return fmt.Errorf("exactly one of --cv or --cda is required")
			}
			sub, err := lookupSubstance(ctx, args[0])
			if err != nil {
				return err
			}
			out := flags.OutOrStdout()
			if haveCv {
				dp, err := valve.CvDrop(sub, tDegR, pPsia, wdot, cv)
				if err != nil {
					return err
				}
				fmt.Fprintf(out, "%-10s = %10.6g psid (Cv %g, Kv %.4g)\n", "dP", dp, cv, valve.KvFromCv(cv))
				return nil
			}
			dp, err := valve.CdADrop(sub, tDegR, pPsia, wdot, cda)
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "%-10s = %10.6g psid (CdA %g in**2)\n", "dP", dp, cda)
			return nil
		},
	}
	cmd.Flags().Float64Var(&tDegR, "T", refdata.StdTdegR,
		"Propellant temperature in `DEGR`")
	cmd.Flags().Float64Var(&pPsia, "P", refdata.StdPpsia,
		"Upstream pressure in `PSIA`")
	cmd.Flags().Float64Var(&wdot, "wdot", 1,
		"Mass flow in `LBM/S`")
	cmd.Flags().Float64Var(&cv, "cv", 0,
		"Valve flow coefficient `CV` (gpm at 1 psid, SG 1)")
	cmd.Flags().Float64Var(&cda, "cda", 0,
		"Orifice effective flow area `CDA` in in**2")
	argparser.AddCommand(cmd)
}
