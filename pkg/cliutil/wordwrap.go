// Copyright (C) 2026  Aphelion Aerospace
//
// SPDX-License-Identifier: Apache-2.0

package cliutil

import (
	"strings"
)

// Wrap the string `s` to a maximum width `w`.  Pass `w` == 0 to do no wrapping.
//
// In order to have some room for slop to avoid things like a short word being on a line by itself,
// most lines are actually wrapped to `w - 5`.
func Wrap(w int, s string) string {
	return wrap(0, w, s)
}

// WrapIndent wraps the string `s` to a maximum width `w` with leading indent `i`.  The first line
// is not indented (this is assumed to be done by caller).  Pass `w` == 0 to do no wrapping
//
// In order to have some room for slop to avoid things like a short word being on a line by itself,
// most lines are actually wrapped to `w - 5`.
func WrapIndent(i, w int, s string) string {
	return wrap(i, w, s)
}

// wrap greedily fills lines up to w-5 columns, breaking only between words.  Runs of spaces inside
// a line are preserved (so sentence-separating double spaces survive), hard newlines in the input
// are kept as line breaks, and a single word longer than the limit is emitted unbroken.
func wrap(indent, w int, s string) string {
	if w == 0 {
		return s
	}
	limit := w - 5
	pad := strings.Repeat(" ", indent)
	var out strings.Builder
	for li, line := range strings.Split(s, "\n") {
		if li > 0 {
			out.WriteString("\n")
			if line != "" {
				out.WriteString(pad)
			}
		}
		col := indent
		atStart := true
		i := 0
		for i < len(line) {
			j := i
			for j < len(line) && line[j] == ' ' {
				j++
			}
			k := j
			for k < len(line) && line[k] != ' ' {
				k++
			}
			sep, word := line[i:j], line[j:k]
			i = k
			if word == "" {
				break
			}
			if !atStart && col+len(sep)+len(word) >= limit {
				out.WriteString("\n")
				out.WriteString(pad)
				out.WriteString(word)
				col = indent + len(word)
			} else {
				out.WriteString(sep)
				out.WriteString(word)
				col += len(sep) + len(word)
				atStart = false
			}
		}
	}
	return out.String()
}
