// Copyright (C) 2026  Aphelion Aerospace
//
// SPDX-License-Identifier: Apache-2.0

package refdata_test

import (
	"context"
	"testing"

	"github.com/datawire/dlib/dlog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Aphelion-Aerospace/RocketProps/pkg/refdata"
)

func testContext(t *testing.T) context.Context {
	return dlog.NewTestContext(t, false)
}

func TestLoad(t *testing.T) {
	t.Parallel()
	reg, err := refdata.Load(testContext(t))
	require.NoError(t, err)

	assert.Equal(t, "2026.2.0", reg.Version())
	assert.NotEmpty(t, reg.Generated())
	assert.Len(t, reg.Names(), 20)

	// Every registered substance must come back fully compiled:
	// every curve property has a selected fit that evaluates at the
	// middle of its own domain.
	for _, name := range reg.Names() {
		name := name
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			sub, err := reg.Resolve(name)
			require.NoError(t, err)
			assert.Equal(t, name, sub.Name)
			assert.Greater(t, sub.Tc(), sub.Tnbp)
			assert.Greater(t, sub.Tnbp, sub.Tfreeze)
			assert.Greater(t, sub.MolWt, 0.0)
			for _, prop := range refdata.CurveProperties {
				f, source, ok := sub.SelectedCurve(prop)
				require.True(t, ok, "property %s", prop)
				assert.NotEmpty(t, source, "property %s", prop)
				trMin, trMax := f.Domain()
				v, err := f.Evaluate((trMin + trMax) / 2)
				require.NoError(t, err, "property %s", prop)
				assert.Greater(t, v, 0.0, "property %s", prop)
			}
		})
	}
}

func TestResolveAliases(t *testing.T) {
	t.Parallel()
	reg, err := refdata.Load(testContext(t))
	require.NoError(t, err)

	canonical, err := reg.Resolve("N2O4")
	require.NoError(t, err)

	// All spellings of an alias land on the same record.
	for _, name := range []string{"NTO", "nto", "MON-3", "MON3", "mon 3", "Nitrogen Tetroxide", "n2o4"} {
		sub, err := reg.Resolve(name)
		require.NoError(t, err, "name %q", name)
		assert.Same(t, canonical, sub, "name %q", name)
	}

	_, err = reg.Resolve("unobtainium")
	var unknownErr *refdata.UnknownSubstanceError
	require.ErrorAs(t, err, &unknownErr)
	assert.Equal(t, "unobtainium", unknownErr.Name)
}

func TestNormalizeName(t *testing.T) {
	t.Parallel()
	type testcase struct {
		Input    string
		Expected string
	}
	testcases := map[string]testcase{
		"lowercase":   {"N2O4", "n2o4"},
		"hyphen":      {"MON-25", "mon25"},
		"spaces":      {"Nitrogen Tetroxide", "nitrogentetroxide"},
		"underscore":  {"RP_1", "rp1"},
		"mixed-junk":  {" MhF - 3 ", "mhf3"},
		"already-low": {"udmh", "udmh"},
	}
	for tcName, tc := range testcases {
		tc := tc
		t.Run(tcName, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.Expected, refdata.NormalizeName(tc.Input))
		})
	}
}

func TestSelectedCurveSpec(t *testing.T) {
	t.Parallel()
	reg, err := refdata.Load(testContext(t))
	require.NoError(t, err)
	sub, err := reg.Resolve("N2H4")
	require.NoError(t, err)

	spec, source, ok := sub.SelectedCurveSpec(refdata.PropPvap)
	require.True(t, ok)
	assert.Equal(t, "Wagner", spec.Fit)
	assert.Equal(t, "RocketProps", source)
	assert.True(t, spec.Selected)

	_, _, ok = sub.SelectedCurveSpec("no-such-property")
	assert.False(t, ok)
}

func TestCompileRejectsBadRecords(t *testing.T) {
	t.Parallel()
	type testcase struct {
		InputCurves map[string][]refdata.CurveSpec
		ExpectedErr string
	}
	testcases := map[string]testcase{
		"no-selected": {
			InputCurves: map[string][]refdata.CurveSpec{
				refdata.PropPvap: {
					{Fit: "Wagner", Source: "x", TrMin: 0.5, TrMax: 1, Coef: map[string]float64{"a": -7, "b": 2, "c": -2, "d": -3}},
				},
			},
			ExpectedErr: "no selected curve",
		},
		"multiple-selected": {
			InputCurves: map[string][]refdata.CurveSpec{
				refdata.PropPvap: {
					{Fit: "Wagner", Source: "x", Selected: true, TrMin: 0.5, TrMax: 1, Coef: map[string]float64{"a": -7, "b": 2, "c": -2, "d": -3}},
					{Fit: "Wagner", Source: "y", Selected: true, TrMin: 0.5, TrMax: 1, Coef: map[string]float64{"a": -7, "b": 2, "c": -2, "d": -3}},
				},
			},
			ExpectedErr: "multiple selected curves",
		},
		"unknown-fit": {
			InputCurves: map[string][]refdata.CurveSpec{
				refdata.PropPvap: {
					{Fit: "Frobnicate", Source: "x", Selected: true, TrMin: 0.5, TrMax: 1},
				},
			},
			ExpectedErr: "Frobnicate",
		},
	}
	for tcName, tc := range testcases {
		tc := tc
		t.Run(tcName, func(t *testing.T) {
			t.Parallel()
			sub := &refdata.Substance{
				Name:     "TEST",
				MolWt:    30,
				Critical: refdata.Critical{T: 1000, P: 1000, SG: 0.3, Z: 0.27},
				Curves:   tc.InputCurves,
			}
			err := sub.Compile()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.ExpectedErr)
		})
	}
}
