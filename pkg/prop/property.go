// Copyright (C) 2026  Aphelion Aerospace
//
// SPDX-License-Identifier: Apache-2.0

// Package prop is the curve selector and property evaluator: given a
// substance record from pkg/refdata, a property, and a state, it picks
// the applicable anchor point or correlation fit, evaluates it, and
// returns the value with traceable provenance.  Every query is an
// independent pure computation; nothing is cached and nothing is
// mutated.
package prop

import (
	"fmt"
	"strings"

	"github.com/Aphelion-Aerospace/RocketProps/pkg/refdata"
	"github.com/Aphelion-Aerospace/RocketProps/pkg/unit"
)

// Property enumerates everything a query can ask for: the state echoes
// (T, P), the saturation curves, and the per-substance scalar
// constants.
type Property int

const (
	T Property = iota
	P
	Pvap
	Pc
	Tc
	SGliq
	SGvap
	Visc
	Cond
	Tnbp
	Tfreeze
	Cp
	MolWt
	Hvap
	Surf
)

// Properties lists every property in summary-report order.
var Properties = []Property{
	T, P, Pvap, Pc, Tc, SGliq, SGvap, Visc, Cond, Tnbp, Tfreeze, Cp, MolWt, Hvap, Surf,
}

type propertyInfo struct {
	label string // summary-report label, also the parse name
	unit  unit.Family
	// curveKey is the refdata anchor/curve table key, empty for
	// scalars and state echoes.
	curveKey string
	// liquidOnly properties are valid only on [Tfreeze, Tc] and
	// fail with a PhaseRangeError outside it.
	liquidOnly bool
}

var properties = map[Property]propertyInfo{
	T:       {label: "T", unit: unit.Temperature},
	P:       {label: "P", unit: unit.Pressure},
	Pvap:    {label: "Pvap", unit: unit.Pressure, curveKey: refdata.PropPvap, liquidOnly: true},
	Pc:      {label: "Pc", unit: unit.Pressure},
	Tc:      {label: "Tc", unit: unit.Temperature},
	SGliq:   {label: "SGliq", unit: unit.Density, curveKey: refdata.PropSGliq, liquidOnly: true},
	SGvap:   {label: "SGvap", unit: unit.Density, curveKey: refdata.PropSGvap},
	Visc:    {label: "visc", unit: unit.Viscosity, curveKey: refdata.PropVisc, liquidOnly: true},
	Cond:    {label: "cond", unit: unit.Conductivity, curveKey: refdata.PropCond, liquidOnly: true},
	Tnbp:    {label: "Tnbp", unit: unit.Temperature},
	Tfreeze: {label: "Tfreeze", unit: unit.Temperature},
	Cp:      {label: "Cp", unit: unit.SpecificHeat, curveKey: refdata.PropCp, liquidOnly: true},
	MolWt:   {label: "MolWt", unit: unit.MolarMass},
	Hvap:    {label: "Hvap", unit: unit.HeatOfVaporization, curveKey: refdata.PropHvap, liquidOnly: true},
	Surf:    {label: "surf", unit: unit.SurfaceTension, curveKey: refdata.PropSurf, liquidOnly: true},
}

func (p Property) info() propertyInfo {
	info, ok := properties[p]
	if !ok {
		panic(fmt.Errorf("invalid prop.Property: %d", int(p)))
	}
	return info
}

// String returns the property's canonical label, as used in the
// summary report and accepted by ParseProperty.
func (p Property) String() string { return p.info().label }

// Family returns the property's physical-quantity family.
func (p Property) Family() unit.Family { return p.info().unit }

// BaseUnit returns the unit the property is evaluated in before any
// requested conversion.
func (p Property) BaseUnit() string { return unit.Base(p.info().unit) }

// ParseProperty resolves a property label case-insensitively.
func ParseProperty(name string) (Property, error) {
	for _, p := range Properties {
		if strings.EqualFold(p.info().label, name) {
			return p, nil
		}
	}
	return 0, fmt.Errorf("unknown property %q", name)
}
