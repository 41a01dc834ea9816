// Copyright (C) 2026  Aphelion Aerospace
//
// SPDX-License-Identifier: Apache-2.0

// Package tank sizes propellant tanks: given a required expelled mass
// and an expulsion/ullage policy, it computes the total tank volume at
// the maximum operating temperature, where the liquid is least dense
// and the tank is sizing-critical.
package tank

import (
	"fmt"
	"math"

	"github.com/Aphelion-Aerospace/RocketProps/pkg/prop"
	"github.com/Aphelion-Aerospace/RocketProps/pkg/refdata"
	"github.com/Aphelion-Aerospace/RocketProps/pkg/unit"
)

// Volume computes the total tank volume (cc) needed to expel
// kgExpelled of propellant at a maximum temperature of tMaxC (degC).
//
// The volume budget at maximum temperature: ullPcent percent of the
// tank is ullage gas, (100-expPcent) percent remains as residual
// liquid, and the expelled propellant fills the remaining
// (expPcent-ullPcent) percent.  kgLoaded and kgResidual follow from the
// same budget at the saturated liquid density.
func Volume(sub *refdata.Substance, kgExpelled, tMaxC, expPcent, ullPcent float64) (ccTotal, kgLoaded, kgResidual float64, err error) {
	if kgExpelled <= 0 {
		return 0, 0, 0, fmt.Errorf("tank.Volume: expelled mass %g kg is not positive", kgExpelled)
	}
	if !(0 <= ullPcent && ullPcent < expPcent && expPcent <= 100) {
		return 0, 0, 0, fmt.Errorf("tank.Volume: need 0 <= ullage%%=%g < expulsion%%=%g <= 100",
			ullPcent, expPcent)
	}
	tMaxR, err := unit.Convert(tMaxC, "degC", "degR")
	if err != nil {
		return 0, 0, 0, err
	}
	// Saturated liquid density at the hot case; g/cc numerically
	// equals SG.
	res, err := prop.Query(sub, prop.SGliq, prop.AtT(tMaxR), prop.AtP(0))
	if err != nil {
		return 0, 0, 0, fmt.Errorf("tank.Volume: %w", err)
	}
	sg := res.Value

	ccExpelled := kgExpelled * 1000.0 / sg
	expelledFrac := (expPcent - ullPcent) / 100.0
	ccTotal = ccExpelled / expelledFrac
	kgResidual = kgExpelled * (100.0 - expPcent) / (expPcent - ullPcent)
	kgLoaded = kgExpelled + kgResidual
	return ccTotal, kgLoaded, kgResidual, nil
}

// SphereDiameter returns the inside diameter (inch) of a spherical
// tank holding ccTotal.
func SphereDiameter(ccTotal float64) (float64, error) {
	in3, err := unit.Convert(ccTotal, "cc", "in**3")
	if err != nil {
		return 0, err
	}
	return math.Cbrt(6 * in3 / math.Pi), nil
}

// CylinderDiameter returns the inside diameter and overall length
// (inch) of a cylindrical tank with hemispherical ends holding ccTotal,
// for a given overall length-to-diameter ratio.  loOverD must be at
// least 1 (loOverD == 1 degenerates to a sphere).
func CylinderDiameter(ccTotal, loOverD float64) (dIn, lIn float64, err error) {
	if loOverD < 1 {
		return 0, 0, fmt.Errorf("tank.CylinderDiameter: L/D=%g is below the spherical limit of 1", loOverD)
	}
	in3, err := unit.Convert(ccTotal, "cc", "in**3")
	if err != nil {
		return 0, 0, err
	}
	// V = pi/4*D^2*Lcyl + pi/6*D^3, Lcyl = (loOverD-1)*D.
	d := math.Cbrt(in3 / (math.Pi/4*(loOverD-1) + math.Pi/6))
	return d, loOverD * d, nil
}
