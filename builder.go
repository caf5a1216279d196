// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package psscript

import "os"

// Builder accumulates interpreter configuration before producing an
// immutable Script. The zero configuration runs the platform-default
// interpreter with no extra flags.
type Builder struct {
	noProfile      bool
	nonInteractive bool
	hidden         bool
	printCommands  bool
	executable     Executable
}

// NewBuilder creates a builder with all flags off and the platform-default
// interpreter.
func NewBuilder() *Builder {
	return &Builder{
		executable: DefaultExecutable(),
	}
}

// NoProfile adds -NoProfile to the interpreter invocation, preventing
// profile scripts from being loaded.
func (b *Builder) NoProfile(v bool) *Builder {
	b.noProfile = v
	return b
}

// NonInteractive adds -NonInteractive, so the interpreter never presents an
// interactive prompt to the user.
func (b *Builder) NonInteractive(v bool) *Builder {
	b.nonInteractive = v
	return b
}

// Hidden adds -WindowStyle Hidden. On Windows the console window is
// additionally suppressed at process creation; elsewhere only the argument
// is passed.
func (b *Builder) Hidden(v bool) *Builder {
	b.hidden = v
	return b
}

// PrintCommands echoes each command to the parent process's stdout before
// it is sent to the interpreter. Useful for debugging scripts.
func (b *Builder) PrintCommands(v bool) *Builder {
	b.printCommands = v
	return b
}

// Executable selects the interpreter kind. On non-Windows hosts PowerShell
// Core is used regardless of this setting.
func (b *Builder) Executable(e Executable) *Builder {
	b.executable = e
	return b
}

// Build produces the immutable Script. The builder should be discarded
// afterwards.
func (b *Builder) Build() *Script {
	return &Script{
		noProfile:      b.noProfile,
		nonInteractive: b.nonInteractive,
		hidden:         b.hidden,
		printCommands:  b.printCommands,
		executable:     b.executable,
		echo:           os.Stdout,
	}
}
