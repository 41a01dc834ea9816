// Copyright (C) 2026  Aphelion Aerospace
//
// SPDX-License-Identifier: Apache-2.0

// Package mixture builds blended-propellant records at runtime from
// the registered pure components: MMH + N2H4 fuel blends ("M20",
// "MHF3"), mixed-oxides-of-nitrogen grades between the registered ones
// ("MON15"), and fluorine/oxygen oxidizers ("FLOX70").
//
// The result is an ordinary refdata.Substance whose property curves
// are saturation tables swept from the constituents with the classical
// mixing rules: Li critical temperature, Amgat molar-volume density,
// Raoult's-law vapor pressure, Filippov conductivity, and simple
// mole/mass mixing for the rest (Poling, Prausnitz & O'Connell, "The
// Properties of Gases and Liquids" 5th ed. ch. 5; Perry 8th ed.
// p. 2-512).
package mixture

import (
	"context"
	"errors"
	"fmt"

	"github.com/datawire/dlib/dlog"

	"github.com/Aphelion-Aerospace/RocketProps/pkg/prop"
	"github.com/Aphelion-Aerospace/RocketProps/pkg/refdata"
	"github.com/Aphelion-Aerospace/RocketProps/pkg/rootfind"
)

// nSatPts is the number of stations in a blend's swept saturation
// table.
const nSatPts = 21

// rMixPsiaIn3 is the gas constant in psia*in^3/(gmole*degR), for the
// mixture critical pressure.
const rMixPsiaIn3 = 18540.0 / 453.59237

const in3PerCc = 1.0 / 16.387064

// Lookup resolves a substance name against the registry and falls back
// to building it as a blend when the registry misses and the name
// parses as one.
func Lookup(ctx context.Context, reg *refdata.Registry, name string) (*refdata.Substance, error) {
	sub, err := reg.Resolve(name)
	if err == nil {
		return sub, nil
	}
	var unknown *refdata.UnknownSubstanceError
	if errors.As(err, &unknown) && IsBlendName(name) {
		return Build(ctx, reg, name)
	}
	return nil, err
}

// Build constructs a blend record by name.  Names that do not parse as
// a supported blend fail with an UnknownSubstanceError.
func Build(ctx context.Context, reg *refdata.Registry, name string) (*refdata.Substance, error) {
	if pct, ok := mmhPcent(name); ok {
		mmh, err := reg.Resolve("MMH")
		if err != nil {
			return nil, err
		}
		n2h4, err := reg.Resolve("N2H4")
		if err != nil {
			return nil, err
		}
		tFreeze, err := mmhFreezeCurve.Eval(pct)
		if err != nil {
			return nil, fmt.Errorf("mixture.Build %s: %w", name, err)
		}
		canonical := fmt.Sprintf("M%.0f", pct)
		aliases := []string{}
		note := fmt.Sprintf("Runtime blend: %.0f%% MMH + %.0f%% N2H4 by mass.", pct, 100-pct)
		if refdata.NormalizeName(name) == "mhf3" {
			canonical = "MHF3"
			aliases = []string{"MHF-3"}
			note = "Runtime blend: 86% MMH + 14% N2H4 by mass (MHF-3 grade)."
		}
		return blendTwo(ctx, canonical, aliases, note,
			[]*refdata.Substance{mmh, n2h4}, []float64{pct, 100 - pct}, tFreeze)
	}
	if pct, ok := noPcent(name); ok {
		return monGrade(ctx, reg, pct)
	}
	if pct, ok := f2Pcent(name); ok {
		lf2, err := reg.Resolve("LF2")
		if err != nil {
			return nil, err
		}
		lox, err := reg.Resolve("LOX")
		if err != nil {
			return nil, err
		}
		// No eutectic data for F2/O2; a mass-weighted freezing
		// point is adequate this far below storable conditions.
		tFreeze := (pct*lf2.Tfreeze + (100-pct)*lox.Tfreeze) / 100
		return blendTwo(ctx,
			fmt.Sprintf("FLOX%.0f", pct),
			[]string{fmt.Sprintf("FLOX-%.0f", pct)},
			fmt.Sprintf("Runtime blend: %.0f%% F2 + %.0f%% LOX by mass.", pct, 100-pct),
			[]*refdata.Substance{lf2, lox}, []float64{pct, 100 - pct}, tFreeze)
	}
	return nil, &refdata.UnknownSubstanceError{Name: name}
}

// blendTwo mixes components by mass fraction and sweeps the saturation
// tables.
func blendTwo(ctx context.Context, name string, aliases []string, note string,
	subs []*refdata.Substance, massPcts []float64, tFreeze float64,
) (*refdata.Substance, error) {
	// Normalized mass fractions, then mole fractions.
	var total float64
	for _, p := range massPcts {
		total += p
	}
	w := make([]float64, len(subs))
	x := make([]float64, len(subs))
	var moleTotal float64
	for i := range subs {
		w[i] = massPcts[i] / total
		x[i] = w[i] / subs[i].MolWt
		moleTotal += x[i]
	}
	for i := range x {
		x[i] /= moleTotal
	}

	molWt := 0.0
	for i, sub := range subs {
		molWt += x[i] * sub.MolWt
	}

	// Critical constants: simple mole mixing for omega and Zc
	// (Poling eqn 5-3.3), Li for Tc (eqn 5-3.1), Zc*R*Tc/Vc for Pc
	// (eqn 5-3.2).
	omega := moleMix(x, subs, func(s *refdata.Substance) float64 { return s.Omega })
	zc := moleMix(x, subs, func(s *refdata.Substance) float64 { return s.Critical.Z })
	vc := make([]float64, len(subs)) // cc/gmole
	for i, sub := range subs {
		vc[i] = sub.MolWt / sub.Critical.SG
	}
	tc := liTcm(x, subs, vc)
	var vcm float64
	for i := range subs {
		vcm += x[i] * vc[i]
	}
	pc := zc * rMixPsiaIn3 * tc / (vcm * in3PerCc)
	sgc := molWt / vcm

	kappaT := 0.0
	for i, sub := range subs {
		kappaT += w[i] * sub.KappaT
	}

	// Saturation sweep, constituents clamped to their own ranges.
	tLo := tFreeze
	tHi := tc
	if maxTc := maxOf(subs, func(s *refdata.Substance) float64 { return s.Tc() }); maxTc < tHi {
		tHi = maxTc
	}

	pvapMix := func(t float64) (float64, error) {
		// Raoult's law over the constituent saturation curves.
		var sum float64
		for i, sub := range subs {
			pv, err := clampedCurve(sub, prop.Pvap, t)
			if err != nil {
				return 0, err
			}
			sum += x[i] * pv
		}
		return sum, nil
	}

	tbl := newSweep(tLo, tHi, tc)
	for i, t := range tbl.ts {
		pv, err := pvapMix(t)
		if err != nil {
			return nil, fmt.Errorf("mixture %s: %w", name, err)
		}
		tbl.set(i, refdata.PropPvap, pv)

		// Amgat molar-volume rule for liquid density.
		var vm float64
		for j, sub := range subs {
			sg, err := clampedCurve(sub, prop.SGliq, t)
			if err != nil {
				return nil, fmt.Errorf("mixture %s: %w", name, err)
			}
			vm += x[j] * sub.MolWt / sg
		}
		tbl.set(i, refdata.PropSGliq, molWt/vm)

		// Ideal-gas vapor density at the Raoult pressure.
		const rPsiaFt3 = 10.731577089016
		const lbmFt3PerSG = 62.42796057614462
		tbl.set(i, refdata.PropSGvap, pv*molWt/(rPsiaFt3*t)/lbmFt3PerSG)

		cp, err := mixCurve(subs, x, prop.Cp, t)
		if err != nil {
			return nil, fmt.Errorf("mixture %s: %w", name, err)
		}
		tbl.set(i, refdata.PropCp, cp)
		hv, err := mixCurve(subs, x, prop.Hvap, t)
		if err != nil {
			return nil, fmt.Errorf("mixture %s: %w", name, err)
		}
		tbl.set(i, refdata.PropHvap, hv)

		// Viscosity and surface tension mix by mass, the same rule
		// the single-state-point path uses.  Some published blend
		// tables mole-weight these two along the saturation sweep
		// while mass-weighting them at single points; one rule for
		// both keeps a sweep row equal to the point evaluation at
		// the same temperature.
		mu, err := mixCurve(subs, w, prop.Visc, t)
		if err != nil {
			return nil, fmt.Errorf("mixture %s: %w", name, err)
		}
		tbl.set(i, refdata.PropVisc, mu)
		st, err := mixCurve(subs, w, prop.Surf, t)
		if err != nil {
			return nil, fmt.Errorf("mixture %s: %w", name, err)
		}
		tbl.set(i, refdata.PropSurf, st)

		// Filippov's rule for binary conductivity (Perry 8th ed.
		// p. 2-512).
		k1, err := clampedCurve(subs[0], prop.Cond, t)
		if err != nil {
			return nil, fmt.Errorf("mixture %s: %w", name, err)
		}
		k2, err := clampedCurve(subs[1], prop.Cond, t)
		if err != nil {
			return nil, fmt.Errorf("mixture %s: %w", name, err)
		}
		diff := k2 - k1
		if diff < 0 {
			diff = -diff
		}
		tbl.set(i, refdata.PropCond, w[0]*k1+w[1]*k2-0.72*w[0]*w[1]*diff)
	}

	// Normal boiling point: Raoult pressure hits one atmosphere.
	tnbp, err := rootfind.Brent(func(t float64) (float64, error) {
		pv, err := pvapMix(t)
		if err != nil {
			return 0, err
		}
		return pv - refdata.StdPpsia, nil
	}, tLo, tHi, 1e-6)
	if err != nil {
		return nil, fmt.Errorf("mixture %s: normal boiling point: %w", name, err)
	}

	tRef := refdata.StdTdegR
	if tRef < tLo || tRef > tHi {
		tRef = tnbp
	}

	sub := &refdata.Substance{
		Name:    name,
		Aliases: aliases,
		Note:    note,
		MolWt:   molWt,
		Critical: refdata.Critical{
			T:  tc,
			P:  pc,
			SG: sgc,
			Z:  zc,
		},
		Omega:   omega,
		Tnbp:    tnbp,
		Tfreeze: tFreeze,
		Tref:    tRef,
		KappaT:  kappaT,
		Curves:  tbl.curves("mixture rules"),
	}
	if err := sub.Compile(); err != nil {
		return nil, fmt.Errorf("mixture %s: %w", name, err)
	}
	dlog.Debugf(ctx, "mixture: built %s (MolWt=%.4f, Tc=%.2f degR, Tnbp=%.2f degR)",
		name, molWt, tc, tnbp)
	return sub, nil
}

// liTcm is the Li critical-temperature mixing rule (Poling eqn 5-3.1):
// volume-fraction-weighted Tc.
func liTcm(x []float64, subs []*refdata.Substance, vc []float64) float64 {
	var denom float64
	for i := range subs {
		denom += x[i] * vc[i]
	}
	var tc float64
	for i, sub := range subs {
		phi := x[i] * vc[i] / denom
		tc += phi * sub.Tc()
	}
	return tc
}

func moleMix(x []float64, subs []*refdata.Substance, get func(*refdata.Substance) float64) float64 {
	var ret float64
	for i, sub := range subs {
		ret += x[i] * get(sub)
	}
	return ret
}

func maxOf(subs []*refdata.Substance, get func(*refdata.Substance) float64) float64 {
	ret := get(subs[0])
	for _, sub := range subs[1:] {
		if v := get(sub); v > ret {
			ret = v
		}
	}
	return ret
}

// clampedCurve evaluates a constituent curve with the temperature
// clamped to the constituent's own [Tfreeze, Tc] (and the fit's own
// domain), the way the sweep handles constituents that freeze or go
// supercritical inside the blend's range.
func clampedCurve(sub *refdata.Substance, p prop.Property, t float64) (float64, error) {
	if t < sub.Tfreeze {
		t = sub.Tfreeze
	} else if t > sub.Tc() {
		t = sub.Tc()
	}
	return prop.CurveValue(sub, p, t, true)
}

// mixCurve evaluates a property for every constituent and mixes with
// the given fractions.
func mixCurve(subs []*refdata.Substance, fracs []float64, p prop.Property, t float64) (float64, error) {
	var ret float64
	for i, sub := range subs {
		v, err := clampedCurve(sub, p, t)
		if err != nil {
			return 0, err
		}
		ret += fracs[i] * v
	}
	return ret, nil
}
