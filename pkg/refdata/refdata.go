// Copyright (C) 2026  Aphelion Aerospace
//
// SPDX-License-Identifier: Apache-2.0

// Package refdata holds the versioned per-substance reference tables
// (critical constants, literature anchor points, and selected property
// curves) and the registry that resolves substance names and aliases to
// them.  The registry is built once at startup from embedded YAML and
// is immutable afterwards, so any number of goroutines may query it
// without locking.
package refdata

import (
	"fmt"
	"sort"
	"strings"

	"github.com/Aphelion-Aerospace/RocketProps/pkg/fit"
)

// Standard reference state for storable propellants: 60 degF, one
// standard atmosphere.
const (
	StdTdegR = 527.67
	StdPpsia = 14.6959
)

// Property names used as keys in the anchor and curve tables.  These
// are the temperature-dependent saturation properties; scalar constants
// (Tc, Pc, MolWt, ...) live directly on the Substance.
const (
	PropPvap  = "Pvap"
	PropSGliq = "SGliq"
	PropSGvap = "SGvap"
	PropVisc  = "visc"
	PropCond  = "cond"
	PropCp    = "Cp"
	PropHvap  = "Hvap"
	PropSurf  = "surf"
)

// CurveProperties lists every curve-backed property key, in summary
// order.
var CurveProperties = []string{
	PropPvap, PropSGliq, PropSGvap, PropVisc, PropCond, PropCp, PropHvap, PropSurf,
}

// UnknownSubstanceError indicates a name or alias that the registry
// does not define.
type UnknownSubstanceError struct {
	Name string
}

func (e *UnknownSubstanceError) Error() string {
	return fmt.Sprintf("unknown substance %q", e.Name)
}

// Critical is the critical-point constant bundle.
type Critical struct {
	T  float64 `json:"T"`  // degR
	P  float64 `json:"P"`  // psia
	SG float64 `json:"SG"` // g/cc
	Z  float64 `json:"Z"`  // compressibility
}

// An Anchor is a single literature or vendor data point for one
// property of one substance, used to calibrate a fit or returned
// directly when a query lands on it.
type Anchor struct {
	Source string  `json:"source"`
	T      float64 `json:"T"` // degR
	P      float64 `json:"P"` // psia
	Value  float64 `json:"value"`
	Units  string  `json:"units"`
}

// A CurveSpec names a correlation from pkg/fit together with the
// coefficients and fitted domain stored in the data table.  Exactly one
// spec per property carries Selected; that is the curve the evaluator
// uses (the catalog may retain competing literature fits alongside it).
type CurveSpec struct {
	Fit      string             `json:"fit"`
	Source   string             `json:"source"`
	Selected bool               `json:"selected,omitempty"`
	TrMin    float64            `json:"trMin"`
	TrMax    float64            `json:"trMax"`
	Coef     map[string]float64 `json:"coef,omitempty"`
	// Knot arrays, for fit "Table" (runtime-built mixtures).
	Trs    []float64 `json:"trs,omitempty"`
	Values []float64 `json:"values,omitempty"`
}

// A Substance is one canonical propellant record.  All fields are
// loaded (or, for mixtures, computed) before Compile is called and
// never mutated afterwards.
type Substance struct {
	Name    string   `json:"name"`
	Aliases []string `json:"aliases,omitempty"`
	Note    string   `json:"note,omitempty"`

	MolWt    float64  `json:"molWt"`
	Critical Critical `json:"critical"`
	Omega    float64  `json:"omega"`
	Tnbp     float64  `json:"Tnbp"`    // degR
	Tfreeze  float64  `json:"Tfreeze"` // degR
	Tref     float64  `json:"Tref"`    // degR, summary reference temperature
	// KappaT is the isothermal compressibility (1/psi) used for the
	// compressed-liquid density correction above saturation
	// pressure.
	KappaT float64 `json:"kappaT,omitempty"`

	Anchors map[string][]Anchor    `json:"anchors,omitempty"`
	Curves  map[string][]CurveSpec `json:"curves"`

	compiled map[string]compiledCurve
}

type compiledCurve struct {
	fit    fit.Fit
	source string
}

// Tc returns the critical temperature in degR.
func (s *Substance) Tc() float64 { return s.Critical.T }

// Pc returns the critical pressure in psia.
func (s *Substance) Pc() float64 { return s.Critical.P }

// SelectedCurve returns the compiled selected fit for a property and
// its source label.  ok is false when the substance has no curve for
// the property.
func (s *Substance) SelectedCurve(property string) (f fit.Fit, source string, ok bool) {
	c, ok := s.compiled[property]
	if !ok {
		return nil, "", false
	}
	return c.fit, c.source, true
}

// Compile resolves every selected CurveSpec into an executable fit.Fit.
// Load calls it for every embedded record; the mixture builder calls it
// on records it constructs at runtime.
func (s *Substance) Compile() error {
	compiled := make(map[string]compiledCurve, len(s.Curves))
	for property, specs := range s.Curves {
		var sel *CurveSpec
		for i := range specs {
			if !specs[i].Selected {
				continue
			}
			if sel != nil {
				return fmt.Errorf("substance %s property %s: multiple selected curves", s.Name, property)
			}
			sel = &specs[i]
		}
		if sel == nil {
			return fmt.Errorf("substance %s property %s: no selected curve", s.Name, property)
		}
		f, err := s.compileSpec(sel)
		if err != nil {
			return fmt.Errorf("substance %s property %s: %w", s.Name, property, err)
		}
		compiled[property] = compiledCurve{fit: f, source: sel.Source}
	}
	s.compiled = compiled
	return nil
}

func (s *Substance) compileSpec(spec *CurveSpec) (fit.Fit, error) {
	dom := fit.Span{TrMin: spec.TrMin, TrMax: spec.TrMax}
	coef := func(name string) (float64, error) {
		v, ok := spec.Coef[name]
		if !ok {
			return 0, fmt.Errorf("fit %s: missing coefficient %q", spec.Fit, name)
		}
		return v, nil
	}
	switch spec.Fit {
	case "Rackett":
		return fit.Rackett{Span: dom, SGc: s.Critical.SG, Zc: s.Critical.Z}, nil
	case "RackettScaled":
		sgRef, err := coef("sgRef")
		if err != nil {
			return nil, err
		}
		trRef, err := coef("trRef")
		if err != nil {
			return nil, err
		}
		zra, err := coef("zra")
		if err != nil {
			return nil, err
		}
		return fit.RackettScaled{Span: dom, SGRef: sgRef, TrRef: trRef, ZRA: zra}, nil
	case "Wagner":
		a, err := coef("a")
		if err != nil {
			return nil, err
		}
		b, err := coef("b")
		if err != nil {
			return nil, err
		}
		c, err := coef("c")
		if err != nil {
			return nil, err
		}
		d, err := coef("d")
		if err != nil {
			return nil, err
		}
		return fit.Wagner{Span: dom, Pc: s.Critical.P, A: a, B: b, C: c, D: d}, nil
	case "Watson":
		hvapRef, err := coef("hvapRef")
		if err != nil {
			return nil, err
		}
		trRef, err := coef("trRef")
		if err != nil {
			return nil, err
		}
		return fit.Watson{Span: dom, HvapRef: hvapRef, TrRef: trRef}, nil
	case "PitzerHvap":
		return fit.PitzerHvap{Span: dom, Tc: s.Critical.T, MolWt: s.MolWt, Omega: s.Omega}, nil
	case "PitzerSurf":
		return fit.PitzerSurf{Span: dom, Tc: s.Critical.T, Pc: s.Critical.P, Omega: s.Omega}, nil
	case "PitzerSurfScaled":
		surfRef, err := coef("surfRef")
		if err != nil {
			return nil, err
		}
		trRef, err := coef("trRef")
		if err != nil {
			return nil, err
		}
		return fit.PitzerSurfScaled{Span: dom, SurfRef: surfRef, TrRef: trRef}, nil
	case "Andrade":
		a, err := coef("a")
		if err != nil {
			return nil, err
		}
		b, err := coef("b")
		if err != nil {
			return nil, err
		}
		return fit.Andrade{Span: dom, Tc: s.Critical.T, A: a, B: b}, nil
	case "LogQuad":
		a, err := coef("a")
		if err != nil {
			return nil, err
		}
		b, err := coef("b")
		if err != nil {
			return nil, err
		}
		c, err := coef("c")
		if err != nil {
			return nil, err
		}
		return fit.LogQuad{Span: dom, A: a, B: b, C: c}, nil
	case "Poly":
		// Coefficients c0..cN, contiguous from c0.
		var cs []float64
		for i := 0; ; i++ {
			v, ok := spec.Coef[fmt.Sprintf("c%d", i)]
			if !ok {
				break
			}
			cs = append(cs, v)
		}
		if len(cs) == 0 {
			return nil, fmt.Errorf("fit Poly: no c0 coefficient")
		}
		return fit.Poly{Span: dom, Coef: cs}, nil
	case "IdealGasVapor":
		pvap, _, ok := s.SelectedCurveSpec(PropPvap)
		if !ok {
			return nil, fmt.Errorf("fit IdealGasVapor: substance has no Pvap curve")
		}
		pvapFit, err := s.compileSpec(pvap)
		if err != nil {
			return nil, fmt.Errorf("fit IdealGasVapor: %w", err)
		}
		return fit.IdealGasVapor{Span: dom, Tc: s.Critical.T, MolWt: s.MolWt, Pvap: pvapFit}, nil
	case "Table":
		tbl, err := fit.NewTable(spec.Trs, spec.Values)
		if err != nil {
			return nil, err
		}
		return tbl, nil
	default:
		return nil, fmt.Errorf("unknown fit %q", spec.Fit)
	}
}

// SelectedCurveSpec returns the raw selected CurveSpec for a property.
func (s *Substance) SelectedCurveSpec(property string) (spec *CurveSpec, source string, ok bool) {
	specs := s.Curves[property]
	for i := range specs {
		if specs[i].Selected {
			return &specs[i], specs[i].Source, true
		}
	}
	return nil, "", false
}

// NormalizeName reduces a substance name or alias to its lookup key:
// lowercased, with spaces, hyphens, and underscores removed, so that
// "MON-3", "MON3", and "mon 3" all collide.
func NormalizeName(name string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case ' ', '-', '_':
			return -1
		}
		return r
	}, strings.ToLower(name))
}

// A Registry maps normalized substance names and aliases to their
// canonical records.  Build it with Load; read-only afterwards.
type Registry struct {
	byKey     map[string]*Substance
	names     []string
	version   string
	generated string
}

// Resolve looks up a substance by name or alias, case- and
// separator-insensitively.
func (r *Registry) Resolve(name string) (*Substance, error) {
	sub, ok := r.byKey[NormalizeName(name)]
	if !ok {
		return nil, &UnknownSubstanceError{Name: name}
	}
	return sub, nil
}

// Names returns the sorted canonical substance names.
func (r *Registry) Names() []string {
	ret := make([]string, len(r.names))
	copy(ret, r.names)
	return ret
}

// Version returns the dataset version stamp.
func (r *Registry) Version() string { return r.version }

// Generated returns the dataset generation date stamp.
func (r *Registry) Generated() string { return r.generated }

func (r *Registry) add(sub *Substance) error {
	keys := append([]string{sub.Name}, sub.Aliases...)
	for _, key := range keys {
		norm := NormalizeName(key)
		if norm == "" {
			return fmt.Errorf("substance %s: empty name/alias", sub.Name)
		}
		if prev, conflict := r.byKey[norm]; conflict && prev != sub {
			return fmt.Errorf("alias %q of substance %s collides with substance %s",
				key, sub.Name, prev.Name)
		}
		r.byKey[norm] = sub
	}
	r.names = append(r.names, sub.Name)
	sort.Strings(r.names)
	return nil
}
