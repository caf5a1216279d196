// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

//go:build windows

package psscript

import (
	"os/exec"
	"syscall"
)

// createNoWindow prevents a console window from being created for the child.
const createNoWindow = 0x08000000

// hideWindow suppresses the interpreter's console window when hidden is set.
func hideWindow(cmd *exec.Cmd, hidden bool) {
	if !hidden {
		return
	}

	cmd.SysProcAttr = &syscall.SysProcAttr{
		HideWindow:    true,
		CreationFlags: createNoWindow,
	}
}
