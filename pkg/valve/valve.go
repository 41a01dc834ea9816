// Copyright (C) 2026  Aphelion Aerospace
//
// SPDX-License-Identifier: Apache-2.0

// Package valve computes liquid pressure drops across valves and
// orifices characterized by a flow coefficient (Cv or metric Kv) or by
// an effective flow area (CdA).
package valve

import (
	"fmt"
	"math"

	"github.com/Aphelion-Aerospace/RocketProps/pkg/prop"
	"github.com/Aphelion-Aerospace/RocketProps/pkg/refdata"
)

const (
	gc = 32.174 // lbm*ft/(lbf*s^2)
	// lbmPerGalWater is the density of the SG reference water in
	// lbm/galUS (62.42796 lbm/ft3 / 7.48052 gal/ft3).
	lbmPerGalWater = 62.42796057614462 * 231.0 / 1728.0
	// kvPerCv converts a US flow coefficient (gpm at 1 psid, SG 1)
	// to the metric Kv (m3/hr at 1 bar, SG 1).
	kvPerCv = 0.8646
)

// KvFromCv converts a US Cv flow coefficient to the metric Kv.
func KvFromCv(cv float64) float64 { return cv * kvPerCv }

// CvFromKv converts a metric Kv flow coefficient to the US Cv.
func CvFromKv(kv float64) float64 { return kv / kvPerCv }

// CvDrop returns the pressure drop (psid) across a valve of flow
// coefficient cv passing wdot (lbm/s) of the substance at T (degR) and
// upstream pressure P (psia):
//
//	Q[gpm] = Cv * sqrt(dp[psi]/SG)  =>  dp = SG * (Q/Cv)^2
func CvDrop(sub *refdata.Substance, tDegR, pPsia, wdotPPS, cv float64) (float64, error) {
	if cv <= 0 {
		return 0, fmt.Errorf("valve.CvDrop: Cv=%g is not positive", cv)
	}
	sg, err := liquidSG(sub, tDegR, pPsia)
	if err != nil {
		return 0, fmt.Errorf("valve.CvDrop: %w", err)
	}
	gpm := wdotPPS / (sg * lbmPerGalWater) * 60
	return sg * (gpm / cv) * (gpm / cv), nil
}

// CdADrop returns the pressure drop (psid) across an orifice of
// effective area cdaIn2 (in^2) passing wdot (lbm/s):
//
//	wdot = CdA * sqrt(2*gc*rho*dp)
func CdADrop(sub *refdata.Substance, tDegR, pPsia, wdotPPS, cdaIn2 float64) (float64, error) {
	if cdaIn2 <= 0 {
		return 0, fmt.Errorf("valve.CdADrop: CdA=%g is not positive", cdaIn2)
	}
	res, err := prop.Query(sub, prop.SGliq,
		prop.AtT(tDegR), prop.AtP(pPsia), prop.InUnit("lbm/ft**3"))
	if err != nil {
		return 0, fmt.Errorf("valve.CdADrop: %w", err)
	}
	rho := res.Value
	cdaFt2 := cdaIn2 / 144
	dpPsf := math.Pow(wdotPPS/cdaFt2, 2) / (2 * gc * rho)
	return dpPsf / 144, nil
}

func liquidSG(sub *refdata.Substance, tDegR, pPsia float64) (float64, error) {
	res, err := prop.Query(sub, prop.SGliq, prop.AtT(tDegR), prop.AtP(pPsia))
	if err != nil {
		return 0, err
	}
	return res.Value, nil
}
