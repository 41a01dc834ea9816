// Copyright (C) 2026  Aphelion Aerospace
//
// SPDX-License-Identifier: Apache-2.0

package prop_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Aphelion-Aerospace/RocketProps/pkg/prop"
	"github.com/Aphelion-Aerospace/RocketProps/pkg/testutil"
)

func TestSummary(t *testing.T) {
	t.Parallel()
	sub := loadSubstance(t, "N2O4")
	actual, err := prop.Summary(sub)
	require.NoError(t, err)
	expected := "" +
		"====== RocketProps State Point of Liquid N2O4 ======\n" +
		"Name    = N2O4  (NTO, MON-3, Nitrogen Tetroxide, Dinitrogen Tetroxide)\n" +
		"T       =     527.67 degR\n" +
		"P       =    14.6959 psia\n" +
		"Pvap    =    13.8672 psia\n" +
		"Pc      =     1464.9 psia\n" +
		"Tc      =     776.47 degR\n" +
		"SGliq   =    1.44144 SG\n" +
		"SGvap   =  0.0036101 SG\n" +
		"visc    =    0.00396 poise\n" +
		"cond    =  0.0420502 BTU/hr/ft/delF\n" +
		"Tnbp    =     529.74 degR\n" +
		"Tfreeze =     471.51 degR\n" +
		"Cp      =   0.374677 BTU/lbm/delF\n" +
		"MolWt   =     92.011 g/gmole\n" +
		"Hvap    =      178.1 BTU/lbm\n" +
		"surf    = 0.000151319 lbf/in\n"
	testutil.AssertEqualText(t, expected, actual)
}

func TestSummaryFailsOutsideLiquidRange(t *testing.T) {
	t.Parallel()
	sub := loadSubstance(t, "N2O4")
	_, err := prop.Summary(sub, prop.AtT(800))
	require.Error(t, err)
}
