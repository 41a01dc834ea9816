package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Aphelion-Aerospace/RocketProps/pkg/cliutil"
	"github.com/Aphelion-Aerospace/RocketProps/pkg/line"
	"github.com/Aphelion-Aerospace/RocketProps/pkg/refdata"
)

func init() {
	var (
		tDegR, pPsia, wdot, vel, id, rough, kSum, length float64
	)
	cmd := &cobra.Command{
		Use:   "line [flags] SUBSTANCE",
		Short: "Size a liquid feed line, or rate an existing one",
		Long: "Size a liquid feed line, or rate an existing one.  With --vel,\n" +
			"compute the inside diameter that carries the flow at the target\n" +
			"velocity; with --id, compute the velocity in a line of that\n" +
			"diameter.  Either way the friction pressure drop (Colebrook, plus\n" +
			"minor losses) is reported.  Exactly one of --vel or --id is\n" +
			"required.",
		Args: cliutil.WrapPositionalArgs(cobra.ExactArgs(1)),
		RunE: func(flags *cobra.Command, args []string) error {
			ctx := flags.Context()
			haveVel := flags.Flags().Changed("vel")
			haveID := flags.Flags().Changed("id")
			if haveVel == haveID {
				return fmt.Errorf("exactly one of --vel or --id is required")
			}
			sub, err := lookupSubstance(ctx, args[0])
			if err != nil {
				return err
			}
			cond := line.Conditions{
				TdegR:       tDegR,
				Ppsia:       pPsia,
				WdotPPS:     wdot,
				RoughnessIn: rough,
				K:           kSum,
				LenIn:       length,
			}
			var dp float64
			if haveVel {
				id, dp, err = line.SizeForVelocity(sub, cond, vel)
			} else {
				vel, dp, err = line.VelocityForID(sub, cond, id)
			}
			if err != nil {
				return err
			}
			out := flags.OutOrStdout()
			fmt.Fprintf(out, "%-10s = %10.6g in\n", "ID", id)
			fmt.Fprintf(out, "%-10s = %10.6g ft/s\n", "velocity", vel)
			fmt.Fprintf(out, "%-10s = %10.6g psid\n", "dP", dp)
			return nil
		},
	}
	cmd.Flags().Float64Var(&tDegR, "T", refdata.StdTdegR,
		"Propellant temperature in `DEGR`")
	cmd.Flags().Float64Var(&pPsia, "P", refdata.StdPpsia,
		"Line pressure in `PSIA`")
	cmd.Flags().Float64Var(&wdot, "wdot", 1,
		"Mass flow in `LBM/S`")
	cmd.Flags().Float64Var(&vel, "vel", 0,
		"Target flow velocity in `FT/S` (sizes the diameter)")
	cmd.Flags().Float64Var(&id, "id", 0,
		"Inside diameter in `INCH` (rates the velocity)")
	cmd.Flags().Float64Var(&rough, "roughness", 5e-6,
		"Absolute wall roughness in `INCH`")
	cmd.Flags().Float64Var(&kSum, "k", 0,
		"Sum of minor-loss `K` factors")
	cmd.Flags().Float64Var(&length, "length", 0,
		"Line length in `INCH`")
	argparser.AddCommand(cmd)
}
