// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package cmd contains the command-line interface (CLI) for the module.
package cmd

import (
	"os"

	"github.com/matt-FFFFFF/psscript/cmd/run"
	"github.com/matt-FFFFFF/psscript/cmd/version"
	"github.com/urfave/cli/v3"
)

// RootCmd is the root command for the CLI.
var RootCmd = &cli.Command{
	Commands: []*cli.Command{
		run.RunCmd,
		version.VersionCmd,
	},
	Reader:    os.Stdin,
	Writer:    os.Stdout,
	ErrWriter: os.Stderr,
	Name:      "psscript",
	Description: `Psscript runs PowerShell scripts through the Windows PowerShell or
PowerShell Core interpreter. The script is read from a file or from stdin and
each line is piped to the interpreter as an independent command. The captured
output is printed and the process exit code mirrors the script's exit code.`,
	Usage:     "psscript run -f myscript.ps1",
	Copyright: "Copyright (c) matt-FFFFFF 2025. All rights reserved.",
	Authors: []any{
		"Matt White (matt-FFFFFF)",
	},
	EnableShellCompletion: true,
}
