// Copyright (C) 2026  Aphelion Aerospace
//
// SPDX-License-Identifier: Apache-2.0

package testutil

import (
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/pmezard/go-difflib/difflib"
)

var spewConfig = spew.ConfigState{
	Indent:                  "  ",
	DisableMethods:          true,
	DisableCapacities:       true,
	DisablePointerAddresses: true,
	SortKeys:                true,
}

// Sdump renders a value for comparison in test failures; pointer
// addresses and capacities are suppressed so output is stable.
func Sdump(v interface{}) string {
	return spewConfig.Sdump(v)
}

// AssertEqualText compares two multi-line strings and reports a unified
// diff on mismatch, which reads much better than assert.Equal for
// report-sized text.
func AssertEqualText(t *testing.T, exp, act string) bool {
	t.Helper()
	if exp == act {
		return true
	}
	diff, _ := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(exp),
		B:        difflib.SplitLines(act),
		FromFile: "Expected",
		ToFile:   "Actual",
		Context:  2,
	})
	t.Errorf("text diff:\n%s", diff)
	return false
}

// AssertEqualSdump compares two values via their Sdump rendering and
// reports a unified diff on mismatch.
func AssertEqualSdump(t *testing.T, exp, act interface{}) bool {
	t.Helper()
	return AssertEqualText(t, Sdump(exp), Sdump(act))
}
