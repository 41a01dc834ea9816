// Copyright (C) 2026  Aphelion Aerospace
//
// SPDX-License-Identifier: Apache-2.0

package cliutil

import (
	"os"
	"strconv"

	"golang.org/x/term"
)

// GetTerminalWidth returns the width of the terminal that you should wrap text to.
func GetTerminalWidth() int {
	// Obey COLUMNS if the shell or user sets it.
	if cols, err := strconv.Atoi(os.Getenv("COLUMNS")); err == nil {
		return cols
	}

	// Otherwise detect the size of the stdout file descriptor.
	if cols, _, err := term.GetSize(1); err == nil {
		return cols
	}

	// Stdout is a terminal whose size we could not get; assume the classic 80.
	if term.IsTerminal(1) {
		return 80
	}

	// Stdout is not a terminal; 0 means "don't wrap".
	return 0
}
