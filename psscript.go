// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package psscript runs PowerShell scripts as a child process and returns
// the captured result. It pipes each line of the script to the interpreter's
// standard input, so every line must be an independent command.
//
// On Windows the default interpreter is Windows PowerShell (powershell.exe);
// PowerShell Core (pwsh) can be selected via the builder. On all other
// operating systems PowerShell Core is used regardless of the configured
// kind, as the Windows-only binary does not exist there.
package psscript

var (
	// Version is set during the build process.
	Version = "dev"
	// Commit is set during the build process.
	Commit = "unknown"
)
