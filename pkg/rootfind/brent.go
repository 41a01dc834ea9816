// Copyright (C) 2026  Aphelion Aerospace
//
// SPDX-License-Identifier: Apache-2.0

// Package rootfind solves scalar equations f(x) = 0 on a bracketing
// interval.  The property evaluator uses it to invert vapor-pressure
// curves, the mixture builder uses it to solve for normal boiling
// points, and the line-sizing helper uses it for the Colebrook friction
// factor.
package rootfind

import (
	"fmt"
	"math"
)

// NoBracketError indicates that f(a) and f(b) have the same sign, so
// the interval [a, b] is not known to contain a root.
type NoBracketError struct {
	A, B   float64
	FA, FB float64
}

func (e *NoBracketError) Error() string {
	return fmt.Sprintf("rootfind: no sign change on [%g, %g]: f(a)=%g, f(b)=%g",
		e.A, e.B, e.FA, e.FB)
}

// maxIter bounds the Brent iteration.  Brent's method is guaranteed to
// converge in O(log((b-a)/tol)) bisection-like steps; 100 is far beyond
// anything a well-posed property curve needs.
const maxIter = 100

// Brent finds a root of f on the bracketing interval [a, b] to within
// xtol using Brent's method (inverse quadratic interpolation with a
// bisection fallback).  f must be continuous on [a, b] and f(a), f(b)
// must have opposite signs; otherwise a NoBracketError is returned.
// Errors from f propagate unchanged.
func Brent(f func(float64) (float64, error), a, b, xtol float64) (float64, error) {
	fa, err := f(a)
	if err != nil {
		return 0, err
	}
	fb, err := f(b)
	if err != nil {
		return 0, err
	}
	if fa == 0 {
		return a, nil
	}
	if fb == 0 {
		return b, nil
	}
	if (fa > 0) == (fb > 0) {
		return 0, &NoBracketError{A: a, B: b, FA: fa, FB: fb}
	}

	// Brent, "Algorithms for Minimization without Derivatives", ch. 4.
	c, fc := a, fa
	d := b - a
	e := d
	for i := 0; i < maxIter; i++ {
		if math.Abs(fc) < math.Abs(fb) {
			a, b, c = b, c, b
			fa, fb, fc = fb, fc, fb
		}
		const eps = 2.220446049250313e-16 // 2^-52
		tol := 2*eps*math.Abs(b) + xtol/2
		m := (c - b) / 2
		if math.Abs(m) <= tol || fb == 0 {
			return b, nil
		}
		if math.Abs(e) < tol || math.Abs(fa) <= math.Abs(fb) {
			// Interpolation is not trustworthy; bisect.
			d = m
			e = m
		} else {
			s := fb / fa
			var p, q float64
			if a == c {
				// Secant step.
				p = 2 * m * s
				q = 1 - s
			} else {
				// Inverse quadratic interpolation.
				q = fa / fc
				r := fb / fc
				p = s * (2*m*q*(q-r) - (b-a)*(r-1))
				q = (q - 1) * (r - 1) * (s - 1)
			}
			if p > 0 {
				q = -q
			} else {
				p = -p
			}
			if 2*p < math.Min(3*m*q-math.Abs(tol*q), math.Abs(e*q)) {
				e = d
				d = p / q
			} else {
				d = m
				e = m
			}
		}
		a, fa = b, fb
		if math.Abs(d) > tol {
			b += d
		} else if m > 0 {
			b += tol
		} else {
			b -= tol
		}
		fb, err = f(b)
		if err != nil {
			return 0, err
		}
		if (fb > 0) == (fc > 0) {
			c, fc = a, fa
			d = b - a
			e = d
		}
	}
	return b, nil
}
