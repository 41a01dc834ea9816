// Copyright (C) 2026  Aphelion Aerospace
//
// SPDX-License-Identifier: Apache-2.0

// Package interp evaluates 1-D curves through tabulated knots.  It is a
// thin layer over gonum.org/v1/gonum/interp that adds an explicit
// out-of-range policy: gonum silently extrapolates with the end
// segments, which is never what a property table wants.
package interp

import (
	"fmt"
	"sort"

	"gonum.org/v1/gonum/interp"
)

// Kind selects the interpolation scheme.
type Kind int

const (
	// Linear joins knots with straight segments.
	Linear Kind = iota
	// MonotoneCubic is the Fritsch-Butland piecewise cubic; it
	// preserves monotonicity of the data, which keeps interpolated
	// vapor-pressure and density curves physically sane between
	// knots.
	MonotoneCubic
)

// RangeError indicates an evaluation outside the knot span of a curve
// built without clamping.
type RangeError struct {
	X, XMin, XMax float64
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("interp: x=%g outside table range [%g, %g]", e.X, e.XMin, e.XMax)
}

// A Curve is an immutable interpolant through fixed knots.
type Curve struct {
	pred  interp.Predictor
	xs    []float64
	clamp bool
}

// New builds a Curve through the given knots.  xs must be strictly
// increasing and len(xs) == len(ys) >= 2.  If clamp is true,
// evaluations outside [xs[0], xs[len-1]] return the end values instead
// of a RangeError.
func New(kind Kind, xs, ys []float64, clamp bool) (*Curve, error) {
	if len(xs) != len(ys) {
		return nil, fmt.Errorf("interp.New: %d xs but %d ys", len(xs), len(ys))
	}
	if len(xs) < 2 {
		return nil, fmt.Errorf("interp.New: need at least 2 knots, got %d", len(xs))
	}
	if !sort.Float64sAreSorted(xs) {
		return nil, fmt.Errorf("interp.New: xs are not sorted")
	}
	for i := 1; i < len(xs); i++ {
		if xs[i] == xs[i-1] {
			return nil, fmt.Errorf("interp.New: duplicate knot x=%g", xs[i])
		}
	}
	xs = append([]float64(nil), xs...) // callers may mutate their slices
	ys = append([]float64(nil), ys...)
	var pred interp.FittablePredictor
	switch kind {
	case Linear:
		pred = &interp.PiecewiseLinear{}
	case MonotoneCubic:
		pred = &interp.FritschButland{}
	default:
		panic(fmt.Errorf("invalid interp.Kind: %d", int(kind)))
	}
	if err := pred.Fit(xs, ys); err != nil {
		return nil, fmt.Errorf("interp.New: %w", err)
	}
	return &Curve{pred: pred, xs: xs, clamp: clamp}, nil
}

// Eval evaluates the curve at x.
func (c *Curve) Eval(x float64) (float64, error) {
	lo, hi := c.xs[0], c.xs[len(c.xs)-1]
	if x < lo || x > hi {
		if !c.clamp {
			return 0, &RangeError{X: x, XMin: lo, XMax: hi}
		}
		if x < lo {
			x = lo
		} else {
			x = hi
		}
	}
	return c.pred.Predict(x), nil
}

// Range returns the knot span of the curve.
func (c *Curve) Range() (lo, hi float64) {
	return c.xs[0], c.xs[len(c.xs)-1]
}
