// Copyright (C) 2026  Aphelion Aerospace
//
// SPDX-License-Identifier: Apache-2.0

package mixture

import (
	"regexp"
	"strconv"

	"github.com/Aphelion-Aerospace/RocketProps/pkg/refdata"
)

// Blend-name grammar, applied to the registry-normalized form of the
// name (lowercased, separators stripped), so "MON-15" and "mon 15"
// both parse.
var (
	reMnn  = regexp.MustCompile(`^m([0-9]{1,2})$`)
	reMON  = regexp.MustCompile(`^mon([0-9]{1,2})$`)
	reFLOX = regexp.MustCompile(`^flox([0-9]{1,3})$`)
)

// mmhPcent reports the MMH mass percent of an MMH + N2H4 blend name
// ("M20" is 20% MMH; "MHF3" is the standard 86% MMH grade), or false.
func mmhPcent(name string) (float64, bool) {
	norm := refdata.NormalizeName(name)
	if norm == "mhf3" {
		return 86.0, true
	}
	m := reMnn.FindStringSubmatch(norm)
	if m == nil {
		return 0, false
	}
	pct, err := strconv.ParseFloat(m[1], 64)
	if err != nil || pct < 1 || pct > 99 {
		return 0, false
	}
	return pct, true
}

// noPcent reports the NO mass percent of a mixed-oxides-of-nitrogen
// grade name ("MON15", "MON-15"), or false.
func noPcent(name string) (float64, bool) {
	m := reMON.FindStringSubmatch(refdata.NormalizeName(name))
	if m == nil {
		return 0, false
	}
	pct, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return 0, false
	}
	return pct, true
}

// f2Pcent reports the F2 mass percent of a FLOX oxidizer name
// ("FLOX70"), or false.
func f2Pcent(name string) (float64, bool) {
	m := reFLOX.FindStringSubmatch(refdata.NormalizeName(name))
	if m == nil {
		return 0, false
	}
	pct, err := strconv.ParseFloat(m[1], 64)
	if err != nil || pct < 1 || pct > 99 {
		return 0, false
	}
	return pct, true
}

// IsBlendName reports whether a name parses as a runtime-buildable
// blend, without building it.
func IsBlendName(name string) bool {
	if _, ok := mmhPcent(name); ok {
		return true
	}
	if _, ok := noPcent(name); ok {
		return true
	}
	if _, ok := f2Pcent(name); ok {
		return true
	}
	return false
}
