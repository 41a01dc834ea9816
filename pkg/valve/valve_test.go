// Copyright (C) 2026  Aphelion Aerospace
//
// SPDX-License-Identifier: Apache-2.0

package valve_test

import (
	"testing"

	"github.com/datawire/dlib/dlog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Aphelion-Aerospace/RocketProps/pkg/refdata"
	"github.com/Aphelion-Aerospace/RocketProps/pkg/valve"
)

func loadSubstance(t *testing.T, name string) *refdata.Substance {
	t.Helper()
	reg, err := refdata.Load(dlog.NewTestContext(t, false))
	require.NoError(t, err)
	sub, err := reg.Resolve(name)
	require.NoError(t, err)
	return sub
}

func TestCvDrop(t *testing.T) {
	t.Parallel()
	// Nitrogen tetroxide at the reference temperature, pressurized
	// to 300 psia, 1 lbm/s through a Cv 5 valve.
	sub := loadSubstance(t, "N2O4")
	dp, err := valve.CvDrop(sub, 527.67, 300, 1, 5)
	require.NoError(t, err)
	assert.InEpsilon(t, 1.433094, dp, 1e-5)

	// Quadratic in flow: doubling wdot quadruples the drop.
	dp2, err := valve.CvDrop(sub, 527.67, 300, 2, 5)
	require.NoError(t, err)
	assert.InEpsilon(t, 4*dp, dp2, 1e-9)

	_, err = valve.CvDrop(sub, 527.67, 300, 1, 0)
	assert.Error(t, err)
}

func TestCdADrop(t *testing.T) {
	t.Parallel()
	sub := loadSubstance(t, "N2O4")
	dp, err := valve.CdADrop(sub, 527.67, 300, 1, 0.1)
	require.NoError(t, err)
	assert.InEpsilon(t, 2.484594, dp, 1e-5)

	_, err = valve.CdADrop(sub, 527.67, 300, 1, 0)
	assert.Error(t, err)
}

func TestKvCvConversions(t *testing.T) {
	t.Parallel()
	assert.InDelta(t, 8.646, valve.KvFromCv(10), 1e-9)
	assert.InDelta(t, 10.0, valve.CvFromKv(valve.KvFromCv(10)), 1e-9)
}
