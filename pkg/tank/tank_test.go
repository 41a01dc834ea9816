// Copyright (C) 2026  Aphelion Aerospace
//
// SPDX-License-Identifier: Apache-2.0

package tank_test

import (
	"math"
	"testing"

	"github.com/datawire/dlib/dlog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Aphelion-Aerospace/RocketProps/pkg/refdata"
	"github.com/Aphelion-Aerospace/RocketProps/pkg/tank"
)

func loadSubstance(t *testing.T, name string) *refdata.Substance {
	t.Helper()
	reg, err := refdata.Load(dlog.NewTestContext(t, false))
	require.NoError(t, err)
	sub, err := reg.Resolve(name)
	require.NoError(t, err)
	return sub
}

func TestVolume(t *testing.T) {
	t.Parallel()
	// Hydrazine tank: expel 50 kg, 50 degC hot case, 98% expulsion
	// efficiency, 3% ullage.
	sub := loadSubstance(t, "N2H4")
	ccTotal, kgLoaded, kgResidual, err := tank.Volume(sub, 50, 50, 98, 3)
	require.NoError(t, err)

	// The mass bookkeeping is exact rational arithmetic; the volume
	// rides on the density fit.
	assert.InDelta(t, 50*97.0/95.0, kgLoaded, 1e-9)
	assert.InDelta(t, 50*2.0/95.0, kgResidual, 1e-9)
	assert.InEpsilon(t, 53510.4, ccTotal, 5e-4)

	// Loaded = expelled + residual, always.
	assert.InDelta(t, kgLoaded, 50+kgResidual, 1e-9)
}

func TestVolumeErrors(t *testing.T) {
	t.Parallel()
	sub := loadSubstance(t, "N2H4")
	type testcase struct {
		InputKg  float64
		InputT   float64
		InputExp float64
		InputUll float64
	}
	testcases := map[string]testcase{
		"zero-mass":              {0, 50, 98, 3},
		"negative-mass":          {-1, 50, 98, 3},
		"ullage-eats-everything": {50, 50, 3, 3},
		"expulsion-over-100":     {50, 50, 101, 3},
		"too-hot":                {50, 400, 98, 3}, // above Tc, no liquid
	}
	for tcName, tc := range testcases {
		tc := tc
		t.Run(tcName, func(t *testing.T) {
			t.Parallel()
			_, _, _, err := tank.Volume(sub, tc.InputKg, tc.InputT, tc.InputExp, tc.InputUll)
			assert.Error(t, err)
		})
	}
}

func TestSphereDiameter(t *testing.T) {
	t.Parallel()
	d, err := tank.SphereDiameter(53510.4)
	require.NoError(t, err)
	assert.InEpsilon(t, 18.4069, d, 1e-4)

	// Volume of the returned sphere reproduces the input.
	in3 := math.Pi / 6 * d * d * d
	assert.InEpsilon(t, 53510.4, in3*16.387064, 1e-9)
}

func TestCylinderDiameter(t *testing.T) {
	t.Parallel()
	const cc = 53510.4

	// L/D = 1 degenerates to the sphere.
	d, l, err := tank.CylinderDiameter(cc, 1)
	require.NoError(t, err)
	sphereD, err := tank.SphereDiameter(cc)
	require.NoError(t, err)
	assert.InDelta(t, sphereD, d, 1e-9)
	assert.InDelta(t, d, l, 1e-9)

	// L/D = 2: check the closed-form volume.
	d, l, err = tank.CylinderDiameter(cc, 2)
	require.NoError(t, err)
	assert.InDelta(t, 2*d, l, 1e-9)
	in3 := math.Pi/4*d*d*(l-d) + math.Pi/6*d*d*d
	assert.InEpsilon(t, cc, in3*16.387064, 1e-9)

	_, _, err = tank.CylinderDiameter(cc, 0.5)
	assert.Error(t, err)
}
