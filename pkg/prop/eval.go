// Copyright (C) 2026  Aphelion Aerospace
//
// SPDX-License-Identifier: Apache-2.0

package prop

import (
	"fmt"

	"github.com/Aphelion-Aerospace/RocketProps/pkg/refdata"
	"github.com/Aphelion-Aerospace/RocketProps/pkg/rootfind"
	"github.com/Aphelion-Aerospace/RocketProps/pkg/unit"
)

// Selection-policy constants.
const (
	// AnchorTolR is how close (degR) the query temperature must be
	// to a measured anchor point for the anchor to be a candidate.
	AnchorTolR = 0.5
	// trComfort is the margin inside a fit's [TrMin, TrMax] domain
	// within which the fit is considered to comfortably bracket the
	// query; a candidate anchor beats a fit that does not.
	trComfort = 0.01
)

// PhaseRangeError indicates a liquid-only property requested outside
// the substance's [Tfreeze, Tc] phase-validity range.
type PhaseRangeError struct {
	Substance string
	Property  Property
	T         float64 // degR
	TLo, THi  float64 // degR
}

func (e *PhaseRangeError) Error() string {
	return fmt.Sprintf("%s %s: T=%g degR outside liquid range [%g, %g] degR",
		e.Substance, e.Property, e.T, e.TLo, e.THi)
}

// Provenance records which source, fit, and anchor produced a value.
type Provenance struct {
	// Source is the data-source label ("RocketProps", "RefProp",
	// "Aerojet", ...) of the fit or anchor used.
	Source string
	// Fit is the correlation family name, or "anchor" when a
	// measured point was returned directly, or "constant" for
	// scalar constants and state echoes.
	Fit string
	// Anchor is the measured point used, if any.
	Anchor *refdata.Anchor
	// Compressed reports that the compressed-liquid density
	// correction was applied on top of the saturated value.
	Compressed bool
}

// A Result is one evaluated property value with its state and
// provenance.  Results are produced per query and never cached.
type Result struct {
	Substance  string
	Property   Property
	Value      float64
	Unit       string
	T          float64 // degR
	P          float64 // psia
	Provenance Provenance
}

type query struct {
	t, p float64
	unit string
}

// An Option adjusts the state or output unit of a Query.
type Option func(*query)

// AtT sets the query temperature in degR.  The default is the
// substance's reference temperature.
func AtT(tDegR float64) Option {
	return func(q *query) { q.t = tDegR }
}

// AtP sets the query pressure in psia.  The default is one standard
// atmosphere.
func AtP(pPsia float64) Option {
	return func(q *query) { q.p = pPsia }
}

// InUnit sets the output unit.  The default is the property's base
// unit.
func InUnit(u string) Option {
	return func(q *query) { q.unit = u }
}

// Query evaluates one property of a substance at a state.
//
// The curve-selection policy, in order:
//  1. A measured anchor point within AnchorTolR of the query
//     temperature is preferred over the selected fit when the query
//     lands exactly on the anchor, or when the fit's domain does not
//     comfortably bracket the query state.
//  2. Otherwise the substance's selected curve for the property is
//     evaluated at Tr = T/Tc.
//  3. Liquid-only properties outside [Tfreeze, Tc] fail with a
//     PhaseRangeError; a fit evaluated outside its fitted domain fails
//     with a fit.DomainError.  Neither is ever silently clamped here.
//  4. The base-unit result is converted to the requested unit.
func Query(sub *refdata.Substance, p Property, opts ...Option) (Result, error) {
	info := p.info()
	q := query{t: sub.Tref, p: refdata.StdPpsia, unit: unit.Base(info.unit)}
	for _, opt := range opts {
		opt(&q)
	}

	ret := Result{
		Substance: sub.Name,
		Property:  p,
		T:         q.t,
		P:         q.p,
		Unit:      q.unit,
	}

	var value float64 // in the property's base unit
	var err error
	if info.curveKey == "" {
		value, ret.Provenance = scalarValue(sub, p, q)
	} else {
		value, ret.Provenance, err = curveValue(sub, p, info, q.t, q.p)
		if err != nil {
			return Result{}, err
		}
	}

	ret.Value, err = unit.Convert(value, unit.Base(info.unit), q.unit)
	if err != nil {
		return Result{}, err
	}
	return ret, nil
}

func scalarValue(sub *refdata.Substance, p Property, q query) (float64, Provenance) {
	prov := Provenance{Source: "data table", Fit: "constant"}
	switch p {
	case T:
		return q.t, Provenance{Source: "query state", Fit: "constant"}
	case P:
		return q.p, Provenance{Source: "query state", Fit: "constant"}
	case Pc:
		return sub.Pc(), prov
	case Tc:
		return sub.Tc(), prov
	case Tnbp:
		return sub.Tnbp, prov
	case Tfreeze:
		return sub.Tfreeze, prov
	case MolWt:
		return sub.MolWt, prov
	default:
		panic(fmt.Errorf("scalarValue called for curve property %v", p))
	}
}

func curveValue(sub *refdata.Substance, p Property, info propertyInfo, tDegR, pPsia float64) (float64, Provenance, error) {
	if info.liquidOnly && (tDegR < sub.Tfreeze || tDegR > sub.Tc()) {
		return 0, Provenance{}, &PhaseRangeError{
			Substance: sub.Name,
			Property:  p,
			T:         tDegR,
			TLo:       sub.Tfreeze,
			THi:       sub.Tc(),
		}
	}
	f, source, ok := sub.SelectedCurve(info.curveKey)
	if !ok {
		return 0, Provenance{}, fmt.Errorf("%s: no %s curve in data table", sub.Name, p)
	}
	tr := tDegR / sub.Tc()

	var value float64
	var prov Provenance
	if anchor := nearbyAnchor(sub, info.curveKey, tDegR); anchor != nil &&
		(tDegR == anchor.T || !comfortablyBrackets(f, tr)) {
		v, err := unit.Convert(anchor.Value, anchor.Units, unit.Base(info.unit))
		if err != nil {
			return 0, Provenance{}, fmt.Errorf("%s %s anchor: %w", sub.Name, p, err)
		}
		value = v
		prov = Provenance{Source: anchor.Source, Fit: "anchor", Anchor: anchor}
	} else {
		v, err := f.Evaluate(tr)
		if err != nil {
			return 0, Provenance{}, err
		}
		value = v
		prov = Provenance{Source: source, Fit: f.Name()}
	}

	if p == SGliq && sub.KappaT > 0 {
		corrected, compressed, err := compressLiquid(sub, value, prov, tr, pPsia)
		if err != nil {
			return 0, Provenance{}, err
		}
		value = corrected
		prov.Compressed = compressed
	}
	return value, prov, nil
}

// compressLiquid applies the isothermal-compressibility correction
// SG*(1 + kappaT*(P-Pref)) for liquid density above the reference
// pressure.  A fit-derived value is saturated, so Pref is the
// saturation pressure; an anchor was measured at its own pressure, so
// Pref is the anchor pressure.
func compressLiquid(sub *refdata.Substance, sg float64, prov Provenance, tr, pPsia float64) (float64, bool, error) {
	var pRef float64
	if prov.Anchor != nil {
		pRef = prov.Anchor.P
	} else {
		pvapFit, _, ok := sub.SelectedCurve(refdata.PropPvap)
		if !ok {
			return sg, false, nil
		}
		psat, err := pvapFit.Evaluate(tr)
		if err != nil {
			return 0, false, fmt.Errorf("%s compressed-liquid correction: %w", sub.Name, err)
		}
		pRef = psat
	}
	if pPsia <= pRef {
		return sg, false, nil
	}
	return sg * (1 + sub.KappaT*(pPsia-pRef)), true, nil
}

// nearbyAnchor returns the first (most authoritative) anchor within
// AnchorTolR of the query temperature, or nil.
func nearbyAnchor(sub *refdata.Substance, curveKey string, tDegR float64) *refdata.Anchor {
	for i := range sub.Anchors[curveKey] {
		a := &sub.Anchors[curveKey][i]
		d := tDegR - a.T
		if d < 0 {
			d = -d
		}
		if d <= AnchorTolR {
			return a
		}
	}
	return nil
}

func comfortablyBrackets(f interface {
	Domain() (trMin, trMax float64)
}, tr float64) bool {
	trMin, trMax := f.Domain()
	return tr >= trMin+trComfort && tr <= trMax-trComfort
}

// SaturationTemperature inverts the substance's selected vapor-pressure
// curve: it returns the temperature (degR) at which Pvap equals the
// given pressure.  The search is bracketed on the curve's fitted
// domain.
func SaturationTemperature(sub *refdata.Substance, pvapPsia float64) (float64, error) {
	f, _, ok := sub.SelectedCurve(refdata.PropPvap)
	if !ok {
		return 0, fmt.Errorf("%s: no Pvap curve in data table", sub.Name)
	}
	trMin, trMax := f.Domain()
	tLo := trMin * sub.Tc()
	tHi := trMax * sub.Tc()
	t, err := rootfind.Brent(func(t float64) (float64, error) {
		pv, err := f.Evaluate(t / sub.Tc())
		if err != nil {
			return 0, err
		}
		return pv - pvapPsia, nil
	}, tLo, tHi, 1e-6)
	if err != nil {
		return 0, fmt.Errorf("%s: saturation temperature at %g psia: %w", sub.Name, pvapPsia, err)
	}
	return t, nil
}

// CurveValue evaluates one curve-backed property at a temperature in
// its base unit, clamping Tr to the selected fit's domain when clamp is
// set.  It bypasses the anchor-preference policy and the phase-range
// check; Query is the policy-carrying entry point, CurveValue exists
// for sweeps (saturation tables, mixtures, plots) that need a defined
// value at every point.
func CurveValue(sub *refdata.Substance, p Property, tDegR float64, clamp bool) (float64, error) {
	info := p.info()
	if info.curveKey == "" {
		v, _ := scalarValue(sub, p, query{t: tDegR, p: refdata.StdPpsia})
		return v, nil
	}
	f, _, ok := sub.SelectedCurve(info.curveKey)
	if !ok {
		return 0, fmt.Errorf("%s: no %s curve in data table", sub.Name, p)
	}
	tr := tDegR / sub.Tc()
	if clamp {
		trMin, trMax := f.Domain()
		if tr < trMin {
			tr = trMin
		} else if tr > trMax {
			tr = trMax
		}
	}
	return f.Evaluate(tr)
}
