// Copyright (C) 2026  Aphelion Aerospace
//
// SPDX-License-Identifier: Apache-2.0

package fit

import (
	"github.com/Aphelion-Aerospace/RocketProps/pkg/interp"
)

// Table interpolates tabulated (Tr, value) saturation knots with a
// monotone piecewise cubic.  Runtime-built mixtures use Table fits for
// every property, since their curves come from sweeping the constituent
// fits rather than from a closed form.
type Table struct {
	Span
	curve *interp.Curve
}

// NewTable builds a Table fit through the given knots.  trs must be
// strictly increasing; the fit's domain is the knot span.
func NewTable(trs, values []float64) (Table, error) {
	curve, err := interp.New(interp.MonotoneCubic, trs, values, false)
	if err != nil {
		return Table{}, err
	}
	lo, hi := curve.Range()
	return Table{Span: Span{TrMin: lo, TrMax: hi}, curve: curve}, nil
}

func (f Table) Name() string { return "Table" }

func (f Table) Evaluate(tr float64) (float64, error) {
	if err := f.check(f.Name(), tr); err != nil {
		return 0, err
	}
	v, err := f.curve.Eval(tr)
	if err != nil {
		// check() already bounds tr to the knot span.
		return 0, err
	}
	return v, nil
}
