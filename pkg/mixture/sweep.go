// Copyright (C) 2026  Aphelion Aerospace
//
// SPDX-License-Identifier: Apache-2.0

package mixture

import (
	"github.com/Aphelion-Aerospace/RocketProps/pkg/refdata"
)

// A sweep accumulates per-property value columns over a fixed
// temperature grid, then emits them as selected Table curve specs.
type sweep struct {
	ts   []float64 // degR
	trs  []float64
	cols map[string][]float64
}

func newSweep(tLo, tHi, tc float64) *sweep {
	s := &sweep{
		ts:   make([]float64, nSatPts),
		trs:  make([]float64, nSatPts),
		cols: make(map[string][]float64, len(refdata.CurveProperties)),
	}
	dt := (tHi - tLo) / (nSatPts - 1)
	for i := range s.ts {
		t := tLo + float64(i)*dt
		if i == nSatPts-1 {
			t = tHi
		}
		s.ts[i] = t
		s.trs[i] = t / tc
	}
	for _, p := range refdata.CurveProperties {
		s.cols[p] = make([]float64, nSatPts)
	}
	return s
}

func (s *sweep) set(i int, property string, v float64) {
	s.cols[property][i] = v
}

func (s *sweep) curves(source string) map[string][]refdata.CurveSpec {
	ret := make(map[string][]refdata.CurveSpec, len(s.cols))
	for property, values := range s.cols {
		ret[property] = []refdata.CurveSpec{{
			Fit:      "Table",
			Source:   source,
			Selected: true,
			TrMin:    s.trs[0],
			TrMax:    s.trs[len(s.trs)-1],
			Trs:      s.trs,
			Values:   values,
		}}
	}
	return ret
}
