// Copyright (C) 2026  Aphelion Aerospace
//
// SPDX-License-Identifier: Apache-2.0

// Package unit converts physical quantities between the engineering
// units used by the propellant tables.  Every unit belongs to exactly
// one quantity family; conversions within a family are linear, except
// for absolute temperature which is affine.
package unit

import (
	"fmt"
	"sort"
)

// Family identifies a physical-quantity family.  Units convert only
// within their own family.
type Family int

const (
	Temperature Family = iota
	DeltaTemperature
	Pressure
	Density
	SpecificHeat
	HeatOfVaporization
	Viscosity
	Conductivity
	SurfaceTension
	Length
	Mass
	Volume
	Velocity
	MassFlow
	MolarMass
)

func (f Family) String() string {
	str, ok := map[Family]string{
		Temperature:        "temperature",
		DeltaTemperature:   "delta-temperature",
		Pressure:           "pressure",
		Density:            "density",
		SpecificHeat:       "specific heat",
		HeatOfVaporization: "heat of vaporization",
		Viscosity:          "viscosity",
		Conductivity:       "thermal conductivity",
		SurfaceTension:     "surface tension",
		Length:             "length",
		Mass:               "mass",
		Volume:             "volume",
		Velocity:           "velocity",
		MassFlow:           "mass flow",
		MolarMass:          "molar mass",
	}[f]
	if !ok {
		panic(fmt.Errorf("invalid unit.Family: %d", int(f)))
	}
	return str
}

// Exact definitions (NIST): 1 lbm = 0.45359237 kg, 1 ft = 0.3048 m,
// 1 in = 0.0254 m, 1 lbf = 4.4482216152605 N, 1 BTU/lbm = 2.326 kJ/kg.
const (
	kgPerLbm = 0.45359237
	mPerFt   = 0.3048
	mPerIn   = 0.0254
	nPerLbf  = 4.4482216152605

	// lbmFt3PerSG is lbm/ft3 per unit specific gravity (water at
	// 1000 kg/m3 reference).
	lbmFt3PerSG = 1000.0 / (kgPerLbm / (mPerFt * mPerFt * mPerFt))

	// psiaPerAtm is the standard atmosphere in psi.
	psiaPerAtm = 14.695948775513449

	lbfInPerNM = mPerIn / nPerLbf // lbf/in per N/m

	// btuCondPerWMK is BTU/hr/ft/delF per W/m/K.
	btuCondPerWMK = (3600.0 * mPerFt) / (4.1868 * 453.59237 * 1.8)
)

// unitDef gives base units per one of this unit: base = value*factor
// (+ offset for absolute temperature, in base units).
type unitDef struct {
	family Family
	factor float64
	offset float64
}

// units maps a unit name to its definition.  Base units carry factor 1
// and are listed first in each family block.
var units = map[string]unitDef{
	// temperature (base degR); offsets are in degR
	"degR": {Temperature, 1.0, 0},
	"degK": {Temperature, 1.8, 0},
	"degF": {Temperature, 1.0, 459.67},
	"degC": {Temperature, 1.8, 491.67},

	// temperature difference (base delF)
	"delF": {DeltaTemperature, 1.0, 0},
	"delC": {DeltaTemperature, 1.8, 0},
	"delK": {DeltaTemperature, 1.8, 0},
	"delR": {DeltaTemperature, 1.0, 0},

	// pressure (base psia)
	"psia": {Pressure, 1.0, 0},
	"psid": {Pressure, 1.0, 0},
	"psf":  {Pressure, 1.0 / 144.0, 0},
	"atm":  {Pressure, psiaPerAtm, 0},
	"bar":  {Pressure, psiaPerAtm / 1.01325, 0},
	"mbar": {Pressure, psiaPerAtm / 1013.25, 0},
	"MPa":  {Pressure, psiaPerAtm / 0.101325, 0},
	"kPa":  {Pressure, psiaPerAtm / 101.325, 0},
	"Pa":   {Pressure, psiaPerAtm / 101325.0, 0},
	"torr": {Pressure, psiaPerAtm / 760.0, 0},
	"mmHg": {Pressure, psiaPerAtm / 760.0, 0},
	"inHg": {Pressure, psiaPerAtm * 25.4 / 760.0, 0},

	// density (base SG, i.e. g/cc against 1000 kg/m3 water)
	"SG":         {Density, 1.0, 0},
	"g/cc":       {Density, 1.0, 0},
	"g/ml":       {Density, 1.0, 0},
	"kg/m**3":    {Density, 0.001, 0},
	"lbm/ft**3":  {Density, 1.0 / lbmFt3PerSG, 0},
	"lbm/in**3":  {Density, 1728.0 / lbmFt3PerSG, 0},
	"lbm/galUS":  {Density, (1728.0 / 231.0) / lbmFt3PerSG, 0},
	"slug/ft**3": {Density, (9.80665 / mPerFt) / lbmFt3PerSG, 0},

	// specific heat (base BTU/lbm/delF; identical to cal/g/C)
	"BTU/lbm/delF": {SpecificHeat, 1.0, 0},
	"cal/g/C":      {SpecificHeat, 1.0, 0},
	"kcal/kg/C":    {SpecificHeat, 1.0, 0},
	"J/kg/K":       {SpecificHeat, 1.0 / 4186.8, 0},
	"kJ/kg/K":      {SpecificHeat, 1.0 / 4.1868, 0},

	// heat of vaporization (base BTU/lbm)
	"BTU/lbm": {HeatOfVaporization, 1.0, 0},
	"cal/g":   {HeatOfVaporization, 4.1868 / 2.326, 0},
	"kcal/kg": {HeatOfVaporization, 4.1868 / 2.326, 0},
	"J/g":     {HeatOfVaporization, 1.0 / 2.326, 0},
	"kJ/kg":   {HeatOfVaporization, 1.0 / 2.326, 0},

	// viscosity (base poise)
	"poise":      {Viscosity, 1.0, 0},
	"cpoise":     {Viscosity, 0.01, 0},
	"cp":         {Viscosity, 0.01, 0},
	"Pa*s":       {Viscosity, 10.0, 0},
	"kg/m/s":     {Viscosity, 10.0, 0},
	"lbm/ft/s":   {Viscosity, 10.0 * kgPerLbm / mPerFt, 0},
	"lbm/s/inch": {Viscosity, 10.0 * kgPerLbm / mPerIn, 0},
	"lbm/hr/ft":  {Viscosity, 10.0 * kgPerLbm / mPerFt / 3600.0, 0},

	// thermal conductivity (base BTU/hr/ft/delF)
	"BTU/hr/ft/delF": {Conductivity, 1.0, 0},
	"BTU/s/ft/delF":  {Conductivity, 3600.0, 0},
	"BTU/s/in/delF":  {Conductivity, 43200.0, 0},
	"W/m/K":          {Conductivity, btuCondPerWMK, 0},
	"cal/s/cm/C":     {Conductivity, btuCondPerWMK * 418.68, 0},

	// surface tension (base lbf/in)
	"lbf/in":  {SurfaceTension, 1.0, 0},
	"lbf/ft":  {SurfaceTension, 1.0 / 12.0, 0},
	"N/m":     {SurfaceTension, lbfInPerNM, 0},
	"mN/m":    {SurfaceTension, lbfInPerNM / 1000.0, 0},
	"dyne/cm": {SurfaceTension, lbfInPerNM / 1000.0, 0},

	// length (base inch)
	"inch": {Length, 1.0, 0},
	"in":   {Length, 1.0, 0},
	"ft":   {Length, 12.0, 0},
	"cm":   {Length, 1.0 / 2.54, 0},
	"mm":   {Length, 1.0 / 25.4, 0},
	"m":    {Length, 1.0 / mPerIn, 0},

	// mass (base lbm)
	"lbm":  {Mass, 1.0, 0},
	"kg":   {Mass, 1.0 / kgPerLbm, 0},
	"g":    {Mass, 1.0 / (1000.0 * kgPerLbm), 0},
	"slug": {Mass, 9.80665 / mPerFt, 0},
	"mton": {Mass, 1000.0 / kgPerLbm, 0},

	// volume (base in**3)
	"in**3": {Volume, 1.0, 0},
	"ft**3": {Volume, 1728.0, 0},
	"cc":    {Volume, (1.0 / 2.54) * (1.0 / 2.54) * (1.0 / 2.54), 0},
	"liter": {Volume, 1000.0 / (2.54 * 2.54 * 2.54), 0},
	"m**3":  {Volume, 1e6 / (2.54 * 2.54 * 2.54), 0},
	"galUS": {Volume, 231.0, 0},

	// velocity (base ft/s)
	"ft/s":  {Velocity, 1.0, 0},
	"in/s":  {Velocity, 1.0 / 12.0, 0},
	"cm/s":  {Velocity, 0.01 / mPerFt, 0},
	"m/s":   {Velocity, 1.0 / mPerFt, 0},
	"km/hr": {Velocity, 1000.0 / mPerFt / 3600.0, 0},
	"mph":   {Velocity, 5280.0 / 3600.0, 0},

	// mass flow (base lbm/s)
	"lbm/s":  {MassFlow, 1.0, 0},
	"lbm/hr": {MassFlow, 1.0 / 3600.0, 0},
	"kg/s":   {MassFlow, 1.0 / kgPerLbm, 0},
	"g/s":    {MassFlow, 1.0 / (1000.0 * kgPerLbm), 0},

	// molar mass (base g/gmole; lbm/lbmole is the same number)
	"g/gmole":    {MolarMass, 1.0, 0},
	"kg/kgmole":  {MolarMass, 1.0, 0},
	"lbm/lbmole": {MolarMass, 1.0, 0},
}

// baseUnits maps each family to the unit the property tables store.
var baseUnits = map[Family]string{
	Temperature:        "degR",
	DeltaTemperature:   "delF",
	Pressure:           "psia",
	Density:            "SG",
	SpecificHeat:       "BTU/lbm/delF",
	HeatOfVaporization: "BTU/lbm",
	Viscosity:          "poise",
	Conductivity:       "BTU/hr/ft/delF",
	SurfaceTension:     "lbf/in",
	Length:             "inch",
	Mass:               "lbm",
	Volume:             "in**3",
	Velocity:           "ft/s",
	MassFlow:           "lbm/s",
	MolarMass:          "g/gmole",
}

// UnknownUnitError indicates a unit name that no family defines.
type UnknownUnitError struct {
	Unit string
}

func (e *UnknownUnitError) Error() string {
	return fmt.Sprintf("unknown unit %q", e.Unit)
}

// IncompatibleUnitError indicates a conversion across two different
// quantity families (for example pressure to density).
type IncompatibleUnitError struct {
	From, To             string
	FromFamily, ToFamily Family
}

func (e *IncompatibleUnitError) Error() string {
	return fmt.Sprintf("incompatible units: cannot convert %q (%s) to %q (%s)",
		e.From, e.FromFamily, e.To, e.ToFamily)
}

// Lookup returns the family of a unit name.
func Lookup(name string) (Family, error) {
	def, ok := units[name]
	if !ok {
		return 0, &UnknownUnitError{Unit: name}
	}
	return def.family, nil
}

// Convert expresses value, given in unit from, in unit to.  It returns
// an UnknownUnitError for names it does not define and an
// IncompatibleUnitError when the two units measure different
// quantities.
func Convert(value float64, from, to string) (float64, error) {
	fd, ok := units[from]
	if !ok {
		return 0, fmt.Errorf("unit.Convert: %w", &UnknownUnitError{Unit: from})
	}
	td, ok := units[to]
	if !ok {
		return 0, fmt.Errorf("unit.Convert: %w", &UnknownUnitError{Unit: to})
	}
	if fd.family != td.family {
		return 0, fmt.Errorf("unit.Convert: %w", &IncompatibleUnitError{
			From:       from,
			To:         to,
			FromFamily: fd.family,
			ToFamily:   td.family,
		})
	}
	base := value*fd.factor + fd.offset
	return (base - td.offset) / td.factor, nil
}

// MustConvert is Convert for unit names known to be valid; it panics on
// error and exists for package-internal constant tables.
func MustConvert(value float64, from, to string) float64 {
	ret, err := Convert(value, from, to)
	if err != nil {
		panic(err)
	}
	return ret
}

// Base returns the unit in which the property tables store values of
// the given family.
func Base(f Family) string {
	return baseUnits[f]
}

// Names returns all defined unit names, sorted.
func Names() []string {
	ret := make([]string, 0, len(units))
	for name := range units {
		ret = append(ret, name)
	}
	sort.Strings(ret)
	return ret
}

// FamilyNames returns all unit names in a family, sorted.
func FamilyNames(f Family) []string {
	var ret []string
	for name, def := range units {
		if def.family == f {
			ret = append(ret, name)
		}
	}
	sort.Strings(ret)
	return ret
}
