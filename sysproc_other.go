// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

//go:build !windows

package psscript

import "os/exec"

// hideWindow is a no-op outside Windows; the -WindowStyle Hidden argument
// is still passed to the interpreter.
func hideWindow(_ *exec.Cmd, _ bool) {}
