// Copyright (C) 2026  Aphelion Aerospace
//
// SPDX-License-Identifier: Apache-2.0

// Package line sizes liquid propellant feed lines: inside diameter for
// a target velocity, or velocity for a given diameter, plus the
// friction pressure drop from the Colebrook equation.
package line

import (
	"fmt"
	"math"

	"github.com/Aphelion-Aerospace/RocketProps/pkg/prop"
	"github.com/Aphelion-Aerospace/RocketProps/pkg/refdata"
	"github.com/Aphelion-Aerospace/RocketProps/pkg/rootfind"
)

const (
	gc = 32.174 // lbm*ft/(lbf*s^2)
	// reLaminar is the Reynolds number below which the laminar
	// f = 64/Re line is used instead of Colebrook.
	reLaminar = 2300.0
)

// Conditions describes one line-sizing problem: the propellant state,
// the flow, and the line geometry.
type Conditions struct {
	TdegR       float64 // propellant temperature
	Ppsia       float64 // line pressure (for compressed-liquid density)
	WdotPPS     float64 // mass flow, lbm/s
	RoughnessIn float64 // absolute wall roughness, inch
	K           float64 // sum of minor-loss K factors
	LenIn       float64 // line length, inch
}

// SizeForVelocity computes the inside diameter (inch) that carries the
// flow at the target velocity (ft/s), and the resulting pressure drop
// (psid).
func SizeForVelocity(sub *refdata.Substance, cond Conditions, velFPS float64) (idIn, dpPsid float64, err error) {
	if velFPS <= 0 {
		return 0, 0, fmt.Errorf("line.SizeForVelocity: velocity %g ft/s is not positive", velFPS)
	}
	rho, err := density(sub, cond)
	if err != nil {
		return 0, 0, err
	}
	// Continuity: A = wdot / (rho * V).
	aFt2 := cond.WdotPPS / (rho * velFPS)
	idIn = 12 * math.Sqrt(4*aFt2/math.Pi)
	dpPsid, err = pressureDrop(sub, cond, rho, idIn, velFPS)
	if err != nil {
		return 0, 0, err
	}
	return idIn, dpPsid, nil
}

// VelocityForID computes the flow velocity (ft/s) in a line of the
// given inside diameter (inch), and the resulting pressure drop (psid).
func VelocityForID(sub *refdata.Substance, cond Conditions, idIn float64) (velFPS, dpPsid float64, err error) {
	if idIn <= 0 {
		return 0, 0, fmt.Errorf("line.VelocityForID: diameter %g in is not positive", idIn)
	}
	rho, err := density(sub, cond)
	if err != nil {
		return 0, 0, err
	}
	aFt2 := math.Pi / 4 * (idIn / 12) * (idIn / 12)
	velFPS = cond.WdotPPS / (rho * aFt2)
	dpPsid, err = pressureDrop(sub, cond, rho, idIn, velFPS)
	if err != nil {
		return 0, 0, err
	}
	return velFPS, dpPsid, nil
}

// density returns the compressed-liquid density in lbm/ft3 at the line
// conditions.
func density(sub *refdata.Substance, cond Conditions) (float64, error) {
	res, err := prop.Query(sub, prop.SGliq,
		prop.AtT(cond.TdegR), prop.AtP(cond.Ppsia), prop.InUnit("lbm/ft**3"))
	if err != nil {
		return 0, fmt.Errorf("line: %w", err)
	}
	return res.Value, nil
}

// pressureDrop evaluates dp = (f*L/D + K) * rho*V^2/(2*gc) for the
// line, with the Darcy friction factor from Colebrook (or 64/Re when
// laminar).
func pressureDrop(sub *refdata.Substance, cond Conditions, rhoLbmFt3, idIn, velFPS float64) (float64, error) {
	visc, err := prop.Query(sub, prop.Visc,
		prop.AtT(cond.TdegR), prop.AtP(cond.Ppsia), prop.InUnit("lbm/ft/s"))
	if err != nil {
		return 0, fmt.Errorf("line: %w", err)
	}
	dFt := idIn / 12
	re := rhoLbmFt3 * velFPS * dFt / visc.Value
	f, err := frictionFactor(re, cond.RoughnessIn/idIn)
	if err != nil {
		return 0, err
	}
	dynPsf := rhoLbmFt3 * velFPS * velFPS / (2 * gc)
	dpPsf := (f*cond.LenIn/idIn + cond.K) * dynPsf
	return dpPsf / 144, nil
}

// frictionFactor solves the Colebrook equation
//
//	1/sqrt(f) = -2*log10(relRough/3.7 + 2.51/(Re*sqrt(f)))
//
// for the Darcy friction factor.
func frictionFactor(re, relRough float64) (float64, error) {
	if re <= 0 {
		return 0, fmt.Errorf("line: Reynolds number %g is not positive", re)
	}
	if re < reLaminar {
		return 64 / re, nil
	}
	f, err := rootfind.Brent(func(f float64) (float64, error) {
		return 1/math.Sqrt(f) + 2*math.Log10(relRough/3.7+2.51/(re*math.Sqrt(f))), nil
	}, 1e-4, 0.5, 1e-10)
	if err != nil {
		return 0, fmt.Errorf("line: Colebrook solve at Re=%g: %w", re, err)
	}
	return f, nil
}
