// Copyright (C) 2026  Aphelion Aerospace
//
// SPDX-License-Identifier: Apache-2.0

package mixture

import (
	"github.com/Aphelion-Aerospace/RocketProps/pkg/interp"
)

// Freezing points of blends are not simple mixes of the constituents;
// the amine fuels in particular form a eutectic well below either pure
// component.  These lookup curves are interpolated with the monotone
// cubic so the eutectic minimum does not overshoot.

// mmhFreezeCurve maps MMH mass percent in N2H4 to blend freezing point
// (degR).  Endpoints are the pure-component records; the interior
// follows the published amine-blend eutectic trough (MHF-3 at 86% MMH
// freezes near 396 degR).
var mmhFreezeCurve = mustCurve(
	[]float64{0, 10, 20, 30, 40, 50, 60, 70, 80, 86, 93, 100},
	[]float64{494.42, 487.5, 480.0, 471.5, 461.5, 450.0, 437.0, 422.5, 406.5, 396.0, 393.5, 397.37},
)

// monFreezeCurve maps NO mass percent to MON freezing point (degR).
// Knots are the registered grade records (MON-3 is the N2O4 record).
var monFreezeCurve = mustCurve(
	[]float64{3, 10, 25, 30},
	[]float64{471.51, 450.27, 392.67, 382.67},
)

func mustCurve(xs, ys []float64) *interp.Curve {
	c, err := interp.New(interp.MonotoneCubic, xs, ys, false)
	if err != nil {
		panic(err)
	}
	return c
}
