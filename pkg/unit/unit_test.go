// Copyright (C) 2026  Aphelion Aerospace
//
// SPDX-License-Identifier: Apache-2.0

package unit_test

import (
	"errors"
	"math"
	"testing"
	"testing/quick"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Aphelion-Aerospace/RocketProps/pkg/testutil"
	"github.com/Aphelion-Aerospace/RocketProps/pkg/unit"
)

func TestConvert(t *testing.T) {
	t.Parallel()
	type testcase struct {
		InputValue float64
		InputFrom  string
		InputTo    string
		Expected   float64
	}
	testcases := map[string]testcase{
		"identity":       {100, "psia", "psia", 100},
		"degC-to-degR":   {50, "degC", "degR", 581.67},
		"degR-to-degC":   {581.67, "degR", "degC", 50},
		"degF-to-degK":   {32, "degF", "degK", 273.15},
		"delC-to-delF":   {10, "delC", "delF", 18},
		"atm-to-psia":    {1, "atm", "psia", 14.695948775513449},
		"bar-to-psia":    {1.01325, "bar", "psia", 14.695948775513449},
		"bar-to-mbar":    {1, "bar", "mbar", 1000},
		"MPa-to-psia":    {0.101325, "MPa", "psia", 14.695948775513449},
		"psia-to-psf":    {1, "psia", "psf", 144},
		"atm-to-inHg":    {1, "atm", "inHg", 29.921259842519685},
		"SG-to-lbmft3":   {1, "SG", "lbm/ft**3", 62.42796057614462},
		"SG-to-slugft3":  {1, "SG", "slug/ft**3", 1.940320331979716},
		"SG-to-kgm3":     {1.0097981, "SG", "kg/m**3", 1009.7981},
		"poise-to-cp":    {0.00396, "poise", "cp", 0.396},
		"lbmsin-to-p":    {1, "lbm/s/inch", "poise", 178.57967322834648},
		"cond-sin-hrft":  {1, "BTU/s/in/delF", "BTU/hr/ft/delF", 43200},
		"cms-to-fts":     {30.48, "cm/s", "ft/s", 1},
		"psia-to-mmHg":   {14.695948775513449, "psia", "mmHg", 760},
		"cc-to-liter":    {1000, "cc", "liter", 1},
		"galUS-to-in3":   {1, "galUS", "in**3", 231},
		"kg-to-lbm":      {0.45359237, "kg", "lbm", 1},
		"ft-to-inch":     {1, "ft", "inch", 12},
		"BTUlbm-to-kJkg": {1, "BTU/lbm", "kJ/kg", 2.326},
		"calg-is-BTUlbm": {1, "cal/g/C", "BTU/lbm/delF", 1},
		"molar-mass":     {92.011, "g/gmole", "lbm/lbmole", 92.011},
	}
	for tcName, tc := range testcases {
		tc := tc
		t.Run(tcName, func(t *testing.T) {
			t.Parallel()
			actual, err := unit.Convert(tc.InputValue, tc.InputFrom, tc.InputTo)
			require.NoError(t, err)
			assert.InDelta(t, tc.Expected, actual, math.Abs(tc.Expected)*1e-12+1e-12)
		})
	}
}

func TestConvertErrors(t *testing.T) {
	t.Parallel()
	_, err := unit.Convert(1, "furlong", "psia")
	var unknownErr *unit.UnknownUnitError
	require.ErrorAs(t, err, &unknownErr)
	assert.Equal(t, "furlong", unknownErr.Unit)

	_, err = unit.Convert(1, "psia", "degR")
	var incompatErr *unit.IncompatibleUnitError
	require.ErrorAs(t, err, &incompatErr)
	assert.Equal(t, "psia", incompatErr.From)
	assert.Equal(t, "degR", incompatErr.To)
}

func TestConvertRoundTrip(t *testing.T) {
	t.Parallel()
	// Converting to any unit of the family and back must return to
	// within floating-point noise of the input.
	for _, family := range []unit.Family{
		unit.Temperature, unit.Pressure, unit.Density, unit.Viscosity,
		unit.Conductivity, unit.SurfaceTension, unit.HeatOfVaporization,
		unit.SpecificHeat, unit.Length, unit.Mass, unit.Volume,
		unit.Velocity, unit.MassFlow, unit.MolarMass,
	} {
		family := family
		t.Run(family.String(), func(t *testing.T) {
			t.Parallel()
			base := unit.Base(family)
			for _, name := range unit.FamilyNames(family) {
				name := name
				testutil.QuickCheck(t, func(value float64) bool {
					// quick generates values up to MaxFloat64, which
					// overflow through large conversion factors;
					// physical quantities don't go there.
					if math.IsNaN(value) || math.IsInf(value, 0) || math.Abs(value) > 1e18 {
						return true
					}
					there := unit.MustConvert(value, base, name)
					back := unit.MustConvert(there, name, base)
					return math.Abs(back-value) <= math.Abs(value)*1e-9+1e-9
				}, quick.Config{},
					[]interface{}{0.0},
					[]interface{}{1.0},
					[]interface{}{-459.67},
					[]interface{}{1e6})
			}
		})
	}
}

func TestLookup(t *testing.T) {
	t.Parallel()
	family, err := unit.Lookup("psia")
	require.NoError(t, err)
	assert.Equal(t, unit.Pressure, family)

	_, err = unit.Lookup("bogon")
	var unknownErr *unit.UnknownUnitError
	assert.ErrorAs(t, err, &unknownErr)
}

func TestMustConvertPanics(t *testing.T) {
	t.Parallel()
	assert.Panics(t, func() {
		unit.MustConvert(1, "psia", "degR")
	})
}

func TestNames(t *testing.T) {
	t.Parallel()
	names := unit.Names()
	assert.Contains(t, names, "psia")
	assert.Contains(t, names, "degR")
	assert.Contains(t, names, "lbf/in")
	assert.Contains(t, names, "inHg")
	assert.Contains(t, names, "slug/ft**3")
	assert.Contains(t, names, "lbm/s/inch")
	// Every listed name must survive a Lookup.
	for _, name := range names {
		_, err := unit.Lookup(name)
		assert.NoError(t, err, "name %q", name)
	}
	var dummy *unit.UnknownUnitError
	_, err := unit.Lookup("")
	assert.True(t, errors.As(err, &dummy))
}
