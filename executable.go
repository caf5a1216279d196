// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package psscript

import "runtime"

const goOSWindows = "windows"

// Executable selects which PowerShell interpreter to invoke.
type Executable int

const (
	// ExecutableSystem is the Windows PowerShell that ships with Windows (powershell.exe).
	ExecutableSystem Executable = iota
	// ExecutableCore is PowerShell Core (pwsh / pwsh.exe).
	ExecutableCore
)

// String implements fmt.Stringer.
func (e Executable) String() string {
	switch e {
	case ExecutableSystem:
		return "system"
	case ExecutableCore:
		return "core"
	default:
		return "unknown"
	}
}

// DefaultExecutable returns the interpreter kind for the host operating
// system: Windows PowerShell on Windows, PowerShell Core everywhere else.
func DefaultExecutable() Executable {
	return defaultExecutable(runtime.GOOS)
}

func defaultExecutable(goos string) Executable {
	if goos == goOSWindows {
		return ExecutableSystem
	}

	return ExecutableCore
}

// binary resolves the interpreter binary name for the given GOOS.
// Non-Windows hosts always resolve to PowerShell Core, since the
// Windows-only binary does not exist there.
func (e Executable) binary(goos string) string {
	if goos != goOSWindows {
		return "pwsh"
	}

	if e == ExecutableCore {
		return "pwsh.exe"
	}

	return "powershell.exe"
}
