// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package psscript

import "errors"

var (
	// ErrSpawn is returned when the PowerShell interpreter cannot be found or started.
	ErrSpawn = errors.New("could not start powershell interpreter")
	// ErrPipe is returned when writing to the interpreter's stdin or collecting
	// its output fails after a successful spawn.
	ErrPipe = errors.New("failed to communicate with powershell interpreter")
	// ErrInvalidUTF8 is returned when captured output is not valid UTF-8 and a
	// string accessor is requested.
	ErrInvalidUTF8 = errors.New("captured output is not valid utf-8")
)
