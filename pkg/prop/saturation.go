// Copyright (C) 2026  Aphelion Aerospace
//
// SPDX-License-Identifier: Apache-2.0

package prop

import (
	"fmt"

	"github.com/Aphelion-Aerospace/RocketProps/pkg/refdata"
)

// A SatRow is one temperature station of a saturation sweep, all values
// in base units.
type SatRow struct {
	T     float64 // degR
	Tr    float64
	Pvap  float64 // psia
	SGliq float64 // g/cc
	SGvap float64 // g/cc
	Visc  float64 // poise
	Cond  float64 // BTU/hr/ft/delF
	Cp    float64 // BTU/lbm/delF
	Hvap  float64 // BTU/lbm
	Surf  float64 // lbf/in
}

// Saturation sweeps the saturated-liquid properties across the
// substance's [Tfreeze, Tc] range at n evenly spaced stations.  Fits
// whose fitted domain stops short of an endpoint (viscosity and heat
// capacity tables typically end at Tr 0.98) are clamped to their domain
// edge, which is the explicit extrapolation policy for tables destined
// for plots and mixture sweeps.  n must be at least 2.
func Saturation(sub *refdata.Substance, n int) ([]SatRow, error) {
	if n < 2 {
		return nil, fmt.Errorf("prop.Saturation: need at least 2 points, got %d", n)
	}
	tLo, tHi := sub.Tfreeze, sub.Tc()
	rows := make([]SatRow, n)
	for i := range rows {
		t := tLo + (tHi-tLo)*float64(i)/float64(n-1)
		row := SatRow{T: t, Tr: t / sub.Tc()}
		for _, col := range []struct {
			p   Property
			dst *float64
		}{
			{Pvap, &row.Pvap},
			{SGliq, &row.SGliq},
			{SGvap, &row.SGvap},
			{Visc, &row.Visc},
			{Cond, &row.Cond},
			{Cp, &row.Cp},
			{Hvap, &row.Hvap},
			{Surf, &row.Surf},
		} {
			v, err := CurveValue(sub, col.p, t, true)
			if err != nil {
				return nil, fmt.Errorf("prop.Saturation: %s at T=%g: %w", col.p, t, err)
			}
			*col.dst = v
		}
		rows[i] = row
	}
	return rows, nil
}
