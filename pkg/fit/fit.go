// Copyright (C) 2026  Aphelion Aerospace
//
// SPDX-License-Identifier: Apache-2.0

// Package fit implements the closed-form property correlations that the
// reference tables select between: corresponding-states estimators
// driven by reduced temperature (Tr = T/Tc) plus per-substance fitted
// forms.  Every fit is a pure function of its construction-time
// coefficients and Tr; evaluating the same fit at the same Tr always
// produces the bit-identical result.
//
// A fit is valid only on its declared [TrMin, TrMax] domain and returns
// a DomainError outside it.  Whether to clamp, extrapolate, or fail is
// a policy decision that belongs to the caller (the property
// evaluator), never to the fit itself.
package fit

import (
	"fmt"
	"math"
)

// A Fit is a named, parameterized correlation y = f(Tr).
type Fit interface {
	// Name identifies the correlation family ("Wagner", "Rackett",
	// ...), not the data source it was fitted against.
	Name() string
	// Domain returns the inclusive reduced-temperature range the
	// fit is valid on.
	Domain() (trMin, trMax float64)
	// Evaluate computes the property at reduced temperature Tr, in
	// the property's base unit.  It returns a DomainError outside
	// Domain().
	Evaluate(tr float64) (float64, error)
}

// DomainError indicates a correlation evaluated outside its fitted
// reduced-temperature range.
type DomainError struct {
	Fit          string
	Tr           float64
	TrMin, TrMax float64
}

func (e *DomainError) Error() string {
	return fmt.Sprintf("fit %s: Tr=%g outside fitted domain [%g, %g]",
		e.Fit, e.Tr, e.TrMin, e.TrMax)
}

// Span is the [TrMin, TrMax] validity range embedded in every concrete
// fit.  It carries the Domain accessor; an embedded field named Domain
// would shadow the promoted method and break the Fit interface.
type Span struct {
	TrMin, TrMax float64
}

func (s Span) Domain() (trMin, trMax float64) { return s.TrMin, s.TrMax }

func (s Span) check(name string, tr float64) error {
	if tr < s.TrMin || tr > s.TrMax {
		return &DomainError{Fit: name, Tr: tr, TrMin: s.TrMin, TrMax: s.TrMax}
	}
	return nil
}

// Gas constant in BTU/(lbmol*degR), for the Pitzer heat-of-vaporization
// estimator.
const rBTU = 1.98721

var (
	_ Fit = Rackett{}
	_ Fit = RackettScaled{}
	_ Fit = Wagner{}
	_ Fit = Watson{}
	_ Fit = PitzerHvap{}
	_ Fit = PitzerSurf{}
	_ Fit = PitzerSurfScaled{}
	_ Fit = Andrade{}
	_ Fit = LogQuad{}
	_ Fit = Poly{}
	_ Fit = IdealGasVapor{}
	_ Fit = Table{}
)

// Rackett is the generalized Rackett saturated-liquid density
// correlation (Rackett 1970; Poling, Prausnitz & O'Connell, "The
// Properties of Gases and Liquids" 5th ed. eqn 4-11.1):
//
//	SG(Tr) = SGc * Zc^(-(1-Tr)^(2/7))
//
// It needs only critical constants, at the cost of a few percent error;
// RackettScaled anchored at a measured density is preferred whenever a
// data point exists.
type Rackett struct {
	Span
	SGc float64 // critical specific gravity, g/cc
	Zc  float64 // critical compressibility
}

func (f Rackett) Name() string { return "Rackett" }

func (f Rackett) Evaluate(tr float64) (float64, error) {
	if err := f.check(f.Name(), tr); err != nil {
		return 0, err
	}
	return f.SGc * math.Pow(f.Zc, -math.Pow(1-tr, 2.0/7.0)), nil
}

// RackettScaled is the Rackett correlation anchored at one measured
// liquid density (Poling 5th ed. eqn 4-11.4):
//
//	SG(Tr) = SGref * ZRA^((1-TrRef)^(2/7) - (1-Tr)^(2/7))
//
// ZRA is the fitted Rackett compressibility from the data table, which
// absorbs most of the generalized form's error.
type RackettScaled struct {
	Span
	SGRef float64 // measured density at TrRef, g/cc
	TrRef float64
	ZRA   float64
}

func (f RackettScaled) Name() string { return "RackettScaled" }

func (f RackettScaled) Evaluate(tr float64) (float64, error) {
	if err := f.check(f.Name(), tr); err != nil {
		return 0, err
	}
	exp := math.Pow(1-f.TrRef, 2.0/7.0) - math.Pow(1-tr, 2.0/7.0)
	return f.SGRef * math.Pow(f.ZRA, exp), nil
}

// Wagner is the Wagner "2.5-5" saturated vapor-pressure equation
// (Wagner 1973; Poling 5th ed. eqn 7-3.3):
//
//	ln(P/Pc) = (A*tau + B*tau^1.5 + C*tau^2.5 + D*tau^5) / Tr
//	tau = 1 - Tr
//
// The data tables store B, C, D as fixed shape exponents' coefficients
// and fit A to the substance's normal boiling point.
type Wagner struct {
	Span
	Pc         float64 // psia
	A, B, C, D float64
}

func (f Wagner) Name() string { return "Wagner" }

func (f Wagner) Evaluate(tr float64) (float64, error) {
	if err := f.check(f.Name(), tr); err != nil {
		return 0, err
	}
	tau := 1 - tr
	sum := f.A*tau + f.B*math.Pow(tau, 1.5) + f.C*math.Pow(tau, 2.5) + f.D*math.Pow(tau, 5)
	return f.Pc * math.Exp(sum/tr), nil
}

// Watson scales a measured heat of vaporization along the saturation
// line (Watson 1943; Poling 5th ed. eqn 7-12.1 with the customary 0.38
// exponent):
//
//	Hvap(Tr) = HvapRef * ((1-Tr)/(1-TrRef))^0.38
type Watson struct {
	Span
	HvapRef float64 // BTU/lbm at TrRef
	TrRef   float64
}

func (f Watson) Name() string { return "Watson" }

func (f Watson) Evaluate(tr float64) (float64, error) {
	if err := f.check(f.Name(), tr); err != nil {
		return 0, err
	}
	return f.HvapRef * math.Pow((1-tr)/(1-f.TrRef), 0.38), nil
}

// PitzerHvap is the Pitzer acentric-factor corresponding-states
// estimator for heat of vaporization (Poling 5th ed. eqn 7-12.2),
// returned in BTU/lbm:
//
//	Hvap = R*Tc * (7.08*(1-Tr)^0.354 + 10.95*omega*(1-Tr)^0.456) / MolWt
//
// Used when no measured Hvap anchor exists (notably for runtime-built
// mixtures).
type PitzerHvap struct {
	Span
	Tc    float64 // degR
	MolWt float64
	Omega float64
}

func (f PitzerHvap) Name() string { return "PitzerHvap" }

func (f PitzerHvap) Evaluate(tr float64) (float64, error) {
	if err := f.check(f.Name(), tr); err != nil {
		return 0, err
	}
	tau := 1 - tr
	return rBTU * f.Tc * (7.08*math.Pow(tau, 0.354) + 10.95*f.Omega*math.Pow(tau, 0.456)) / f.MolWt, nil
}

// PitzerSurf is the Pitzer corresponding-states surface-tension
// estimator (Poling 5th ed. eqn 12-3.7), evaluated in dyne/cm with Pc
// in atm and Tc in degK and converted to the lbf/in base unit:
//
//	sigma = Pc^(2/3)*Tc^(1/3) * (1.86+1.18*omega)/19.05
//	        * ((3.75+0.91*omega)/(0.291-0.08*omega))^(2/3) * (1-Tr)^(11/9)
type PitzerSurf struct {
	Span
	Tc    float64 // degR
	Pc    float64 // psia
	Omega float64
}

func (f PitzerSurf) Name() string { return "PitzerSurf" }

func (f PitzerSurf) Evaluate(tr float64) (float64, error) {
	if err := f.check(f.Name(), tr); err != nil {
		return 0, err
	}
	tcK := f.Tc / 1.8
	pcAtm := f.Pc / 14.695948775513449
	sigma := math.Pow(pcAtm, 2.0/3.0) * math.Cbrt(tcK) *
		(1.86 + 1.18*f.Omega) / 19.05 *
		math.Pow((3.75+0.91*f.Omega)/(0.291-0.08*f.Omega), 2.0/3.0) *
		math.Pow(1-tr, 11.0/9.0)
	// dyne/cm -> lbf/in: 1 dyne/cm = 1 mN/m.
	const lbfInPerDyneCm = 0.0254 / 4.4482216152605 / 1000.0
	return sigma * lbfInPerDyneCm, nil
}

// PitzerSurfScaled keeps the Pitzer (1-Tr)^(11/9) temperature shape but
// anchors the magnitude at one measured surface tension, the same way
// Watson anchors Hvap:
//
//	sigma(Tr) = SurfRef * ((1-Tr)/(1-TrRef))^(11/9)
type PitzerSurfScaled struct {
	Span
	SurfRef float64 // lbf/in at TrRef
	TrRef   float64
}

func (f PitzerSurfScaled) Name() string { return "PitzerSurfScaled" }

func (f PitzerSurfScaled) Evaluate(tr float64) (float64, error) {
	if err := f.check(f.Name(), tr); err != nil {
		return 0, err
	}
	return f.SurfRef * math.Pow((1-tr)/(1-f.TrRef), 11.0/9.0), nil
}

// Andrade is the two-constant Arrhenius-form liquid viscosity fit
// (Andrade 1930), mu in poise:
//
//	ln(mu) = A + B/T,  T = Tr*Tc in degR
type Andrade struct {
	Span
	Tc   float64 // degR
	A, B float64
}

func (f Andrade) Name() string { return "Andrade" }

func (f Andrade) Evaluate(tr float64) (float64, error) {
	if err := f.check(f.Name(), tr); err != nil {
		return 0, err
	}
	return math.Exp(f.A + f.B/(tr*f.Tc)), nil
}

// LogQuad is the log-quadratic form the data tables use for liquid
// viscosity:
//
//	log10(y) = a + b*Tr + c*Tr^2
type LogQuad struct {
	Span
	A, B, C float64
}

func (f LogQuad) Name() string { return "LogQuad" }

func (f LogQuad) Evaluate(tr float64) (float64, error) {
	if err := f.check(f.Name(), tr); err != nil {
		return 0, err
	}
	return math.Pow(10, f.A+f.B*tr+f.C*tr*tr), nil
}

// Poly is a plain polynomial in Tr, used by the conductivity, heat
// capacity, and some density tables:
//
//	y = c0 + c1*Tr + c2*Tr^2 + ...
type Poly struct {
	Span
	Coef []float64 // c0 first
}

func (f Poly) Name() string { return "Poly" }

func (f Poly) Evaluate(tr float64) (float64, error) {
	if err := f.check(f.Name(), tr); err != nil {
		return 0, err
	}
	// Horner evaluation, highest order first.
	ret := 0.0
	for i := len(f.Coef) - 1; i >= 0; i-- {
		ret = ret*tr + f.Coef[i]
	}
	return ret, nil
}

// IdealGasVapor computes saturated-vapor specific gravity from the
// ideal gas law at the saturation pressure:
//
//	rho = Pvap*MolWt / (R*T),  SG = rho / rho_water
//
// Pvap is the substance's selected vapor-pressure fit; low saturation
// pressures keep the ideal-gas assumption honest except very near the
// critical point.
type IdealGasVapor struct {
	Span
	Tc    float64 // degR
	MolWt float64
	Pvap  Fit
}

func (f IdealGasVapor) Name() string { return "IdealGasVapor" }

func (f IdealGasVapor) Evaluate(tr float64) (float64, error) {
	if err := f.check(f.Name(), tr); err != nil {
		return 0, err
	}
	pvap, err := f.Pvap.Evaluate(tr)
	if err != nil {
		return 0, err
	}
	// R = 10.731577 psia*ft3/(lbmol*degR); rho in lbm/ft3.
	const rPsiaFt3 = 10.731577089016
	rho := pvap * f.MolWt / (rPsiaFt3 * tr * f.Tc)
	const lbmFt3PerSG = 62.42796057614462 // 1000 kg/m3 in lbm/ft3
	return rho / lbmFt3PerSG, nil
}
