// Copyright (C) 2026  Aphelion Aerospace
//
// SPDX-License-Identifier: Apache-2.0

package mixture

import (
	"context"
	"fmt"

	"github.com/datawire/dlib/dlog"

	"github.com/Aphelion-Aerospace/RocketProps/pkg/prop"
	"github.com/Aphelion-Aerospace/RocketProps/pkg/refdata"
)

// monKnots are the registered MON grades, by NO mass percent.  MON-3
// is folded into the N2O4 record.
var monKnots = []struct {
	pct  float64
	name string
}{
	{3, "N2O4"},
	{10, "MON10"},
	{25, "MON25"},
	{30, "MON30"},
}

// monGrade builds an intermediate mixed-oxides-of-nitrogen grade by
// interpolating between the two registered grades that bracket the
// requested NO percent.  NO itself is not a registered substance, so a
// Raoult-style constituent sweep is not available; grade interpolation
// is how the vendor tables present intermediate MONs.
func monGrade(ctx context.Context, reg *refdata.Registry, pct float64) (*refdata.Substance, error) {
	lo, hi := monKnots[0], monKnots[len(monKnots)-1]
	if pct < lo.pct || pct > hi.pct {
		return nil, fmt.Errorf("mixture: MON grade %g%% NO outside the tabulated %g..%g%% range",
			pct, lo.pct, hi.pct)
	}
	for i := 0; i+1 < len(monKnots); i++ {
		if pct >= monKnots[i].pct && pct <= monKnots[i+1].pct {
			lo, hi = monKnots[i], monKnots[i+1]
			break
		}
	}
	subLo, err := reg.Resolve(lo.name)
	if err != nil {
		return nil, err
	}
	subHi, err := reg.Resolve(hi.name)
	if err != nil {
		return nil, err
	}
	frac := (pct - lo.pct) / (hi.pct - lo.pct)
	lerp := func(a, b float64) float64 { return a + frac*(b-a) }

	tFreeze, err := monFreezeCurve.Eval(pct)
	if err != nil {
		return nil, fmt.Errorf("mixture: MON%g freezing point: %w", pct, err)
	}
	tc := lerp(subLo.Tc(), subHi.Tc())

	tbl := newSweep(tFreeze, tc, tc)
	for i, t := range tbl.ts {
		for _, key := range refdata.CurveProperties {
			p, err := prop.ParseProperty(key)
			if err != nil {
				return nil, err
			}
			vLo, err := clampedCurve(subLo, p, t)
			if err != nil {
				return nil, fmt.Errorf("mixture MON%g: %w", pct, err)
			}
			vHi, err := clampedCurve(subHi, p, t)
			if err != nil {
				return nil, fmt.Errorf("mixture MON%g: %w", pct, err)
			}
			tbl.set(i, key, lerp(vLo, vHi))
		}
	}

	name := fmt.Sprintf("MON%.0f", pct)
	sub := &refdata.Substance{
		Name:    name,
		Aliases: []string{fmt.Sprintf("MON-%.0f", pct)},
		Note:    fmt.Sprintf("Mixed oxides of nitrogen, %.0f%% NO by mass (interpolated %s..%s).", pct, lo.name, hi.name),
		MolWt:   lerp(subLo.MolWt, subHi.MolWt),
		Critical: refdata.Critical{
			T:  tc,
			P:  lerp(subLo.Pc(), subHi.Pc()),
			SG: lerp(subLo.Critical.SG, subHi.Critical.SG),
			Z:  lerp(subLo.Critical.Z, subHi.Critical.Z),
		},
		Omega:   lerp(subLo.Omega, subHi.Omega),
		Tnbp:    lerp(subLo.Tnbp, subHi.Tnbp),
		Tfreeze: tFreeze,
		Tref:    refdata.StdTdegR,
		KappaT:  lerp(subLo.KappaT, subHi.KappaT),
		Curves:  tbl.curves("grade interpolation"),
	}
	if err := sub.Compile(); err != nil {
		return nil, fmt.Errorf("mixture %s: %w", name, err)
	}
	dlog.Debugf(ctx, "mixture: interpolated %s between %s and %s (frac=%.3f)",
		name, lo.name, hi.name, frac)
	return sub, nil
}
