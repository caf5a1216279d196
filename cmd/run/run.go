// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package run

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/TylerBrock/colorjson"
	"github.com/matt-FFFFFF/psscript"
	"github.com/matt-FFFFFF/psscript/internal/config"
	"github.com/matt-FFFFFF/psscript/internal/ctxlog"
	"github.com/spf13/afero"
	"github.com/urfave/cli/v3"
	"golang.org/x/term"
)

const (
	fileFlag           = "file"
	noProfileFlag      = "no-profile"
	nonInteractiveFlag = "non-interactive"
	hiddenFlag         = "hidden"
	printCommandsFlag  = "print-commands"
	executableFlag     = "executable"
	jsonFlag           = "json"
	configFlag         = "config"
	cliExitStr         = ""
)

var jsonFormatter = colorjson.NewFormatter()

func init() {
	jsonFormatter.Indent = 2
	jsonFormatter.DisabledColor = !term.IsTerminal(int(os.Stdout.Fd()))
}

// RunCmd runs a PowerShell script from a file or stdin.
var RunCmd = &cli.Command{
	Name: "run",
	Description: `Run a PowerShell script through the configured interpreter.
The script is read from the file given with --file, or from stdin when no
file is given. Each line is piped to the interpreter as an independent
command; blank lines are skipped.

Flag defaults can be set in a YAML file (see the --config flag). A config
file at ~/.psscript.yaml is picked up automatically when present.`,
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:      fileFlag,
			Aliases:   []string{"f"},
			Usage:     "Read the script from this file instead of stdin",
			TakesFile: true,
			OnlyOnce:  true,
		},
		&cli.BoolFlag{
			Name:        noProfileFlag,
			Usage:       "Do not load PowerShell profile scripts (-NoProfile)",
			Value:       false,
			DefaultText: "false",
			OnlyOnce:    true,
		},
		&cli.BoolFlag{
			Name:        nonInteractiveFlag,
			Usage:       "Do not present an interactive prompt (-NonInteractive)",
			Value:       false,
			DefaultText: "false",
			OnlyOnce:    true,
		},
		&cli.BoolFlag{
			Name:        hiddenFlag,
			Usage:       "Hide the interpreter window (-WindowStyle Hidden)",
			Value:       false,
			DefaultText: "false",
			OnlyOnce:    true,
		},
		&cli.BoolFlag{
			Name:        printCommandsFlag,
			Aliases:     []string{"x"},
			Usage:       "Echo each command to stdout before it is run",
			Value:       false,
			DefaultText: "false",
			OnlyOnce:    true,
		},
		&cli.StringFlag{
			Name:     executableFlag,
			Aliases:  []string{"e"},
			Usage:    "Interpreter kind: 'system' (Windows PowerShell) or 'core' (pwsh)",
			OnlyOnce: true,
		},
		&cli.BoolFlag{
			Name:        jsonFlag,
			Usage:       "Print the result as a JSON document",
			Value:       false,
			DefaultText: "false",
			OnlyOnce:    true,
		},
		&cli.StringFlag{
			Name:      configFlag,
			Usage:     "Path to a YAML file with flag defaults",
			TakesFile: true,
			OnlyOnce:  true,
		},
	},
	Action: actionFunc,
}

func actionFunc(ctx context.Context, cmd *cli.Command) error {
	logger := ctxlog.Logger(ctx).With("command", cmd.Name)

	defaults, err := loadDefaults(cmd)
	if err != nil {
		return cli.Exit(err.Error(), 1)
	}

	builder, err := builderFrom(cmd, defaults)
	if err != nil {
		return cli.Exit(err.Error(), 1)
	}

	text, err := scriptText(cmd)
	if err != nil {
		return cli.Exit(err.Error(), 1)
	}

	logger.Debug("running script", "bytes", len(text))

	out, err := builder.Build().Run(ctx, text)
	if err != nil {
		logger.Error("script run failed", "error", err)
		return cli.Exit(cliExitStr, 1)
	}

	if cmd.Bool(jsonFlag) {
		if err := writeJSON(cmd.Writer, out); err != nil {
			return cli.Exit(err.Error(), 1)
		}
	} else {
		cmd.Writer.Write(out.StdoutBytes())    //nolint:errcheck
		cmd.ErrWriter.Write(out.StderrBytes()) //nolint:errcheck
	}

	if !out.Success() {
		return cli.Exit(cliExitStr, out.ExitCode())
	}

	return nil
}

// loadDefaults reads the YAML defaults file. An explicit --config path must
// exist; the per-user default path is optional.
func loadDefaults(cmd *cli.Command) (*config.Defaults, error) {
	if cmd.IsSet(configFlag) {
		return config.Load(cmd.String(configFlag))
	}

	path := config.DefaultPath()

	ok, err := afero.Exists(config.FsFactory(), path)
	if err != nil || !ok {
		return &config.Defaults{}, nil
	}

	return config.Load(path)
}

// builderFrom maps the defaults and any explicitly set flags onto a builder.
// Command-line flags win over config file values.
func builderFrom(cmd *cli.Command, d *config.Defaults) (*psscript.Builder, error) {
	kind, err := d.ExecutableKind()
	if err != nil {
		return nil, err
	}

	if cmd.IsSet(executableFlag) {
		switch cmd.String(executableFlag) {
		case "system":
			kind = psscript.ExecutableSystem
		case "core":
			kind = psscript.ExecutableCore
		default:
			return nil, fmt.Errorf("%w: %q", config.ErrUnknownExecutable, cmd.String(executableFlag))
		}
	}

	return psscript.NewBuilder().
		NoProfile(flagOr(cmd, noProfileFlag, d.NoProfile)).
		NonInteractive(flagOr(cmd, nonInteractiveFlag, d.NonInteractive)).
		Hidden(flagOr(cmd, hiddenFlag, d.Hidden)).
		PrintCommands(flagOr(cmd, printCommandsFlag, d.PrintCommands)).
		Executable(kind), nil
}

func flagOr(cmd *cli.Command, name string, def bool) bool {
	if cmd.IsSet(name) {
		return cmd.Bool(name)
	}

	return def
}

func scriptText(cmd *cli.Command) (string, error) {
	if cmd.IsSet(fileFlag) {
		data, err := afero.ReadFile(config.FsFactory(), cmd.String(fileFlag))
		if err != nil {
			return "", err
		}

		return string(data), nil
	}

	data, err := io.ReadAll(cmd.Reader)
	if err != nil {
		return "", err
	}

	return string(data), nil
}

func writeJSON(w io.Writer, out *psscript.Output) error {
	// colorjson only renders JSON-decoded value types, so the exit code
	// goes in as a float64.
	doc := map[string]any{
		"success":  out.Success(),
		"exitCode": float64(out.ExitCode()),
		"stdout":   lossy(out.StdoutBytes()),
		"stderr":   lossy(out.StderrBytes()),
	}

	data, err := jsonFormatter.Marshal(doc)
	if err != nil {
		return err
	}

	_, err = fmt.Fprintf(w, "%s\n", data)

	return err
}

func lossy(b []byte) string {
	return strings.ToValidUTF8(string(b), "�")
}
