// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package color

import (
	"os"
	"strconv"
	"strings"

	"golang.org/x/term"
)

const (
	// NoColor is the environment variable that disables color output.
	NoColor = "NO_COLOR"
	// ForceColor is the environment variable that forces color output.
	ForceColor = "FORCE_COLOR"

	prefix = "\033["
	suffix = "m"
	reset  = "\033[0m"
)

// Code represents an ANSI control code for text formatting.
type Code int

// Control codes used by this module.
const (
	FgRed       Code = 31
	FgYellow    Code = 33
	FgBlue      Code = 34
	FgMagenta   Code = 35
	FgCyan      Code = 36
	FgWhite     Code = 37
	FgHiMagenta Code = 95
)

// Colorize wraps s in the given ANSI control codes, terminated by a reset.
func Colorize(s string, codes ...Code) string {
	if len(codes) == 0 {
		return s
	}

	sb := strings.Builder{}
	sb.Grow(len(prefix) + len(suffix) + len(reset) + len(s) + len(codes)*4)
	sb.WriteString(prefix)

	for i, c := range codes {
		if i > 0 {
			sb.WriteString(";")
		}

		sb.WriteString(strconv.Itoa(int(c)))
	}

	sb.WriteString(suffix)
	sb.WriteString(s)
	sb.WriteString(reset)

	return sb.String()
}

// Enabled reports whether color output should be used for the given file
// descriptor. FORCE_COLOR wins over NO_COLOR, which wins over terminal
// detection.
func Enabled(fd uintptr) bool {
	if os.Getenv(ForceColor) != "" {
		return true
	}

	if os.Getenv(NoColor) != "" {
		return false
	}

	return term.IsTerminal(int(fd))
}
