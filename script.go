// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package psscript

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os/exec"
	"runtime"
	"strings"

	"github.com/matt-FFFFFF/psscript/internal/ctxlog"
	"github.com/matt-FFFFFF/psscript/internal/linewriter"
)

// lookPath resolves an executable on the PATH. It is a variable so tests can
// substitute a stub interpreter.
var lookPath = exec.LookPath

// Script is an immutable interpreter configuration produced by a Builder.
// It is safe for concurrent use; every Run call spawns its own child
// process with its own buffers.
type Script struct {
	noProfile      bool
	nonInteractive bool
	hidden         bool
	printCommands  bool
	executable     Executable
	echo           io.Writer
}

// Run feeds each non-blank line of text to a freshly spawned PowerShell
// interpreter and returns the captured result once it exits.
//
// Each line is an independent command; multi-line constructs such as
// here-strings are not supported. A non-zero exit code is not an error:
// it is surfaced through Output.Success. Run returns ErrSpawn when the
// interpreter cannot be located or started, and ErrPipe when feeding
// commands or collecting output fails after a successful spawn.
//
// Run blocks until the interpreter exits. There is no internal timeout;
// callers that need one should pass a context with a deadline, which kills
// the child process when it expires.
func (s *Script) Run(ctx context.Context, text string) (*Output, error) {
	logger := ctxlog.Logger(ctx).With("executable", s.executable.String())

	binary := s.executable.binary(runtime.GOOS)

	path, err := lookPath(binary)
	if err != nil && !errors.Is(err, exec.ErrDot) {
		return nil, errors.Join(ErrSpawn, err)
	}

	args := s.args()
	logger.Debug("starting interpreter", "path", path, "args", args)

	cmd := exec.CommandContext(ctx, path, args...)
	hideWindow(cmd, s.hidden)

	var stdout, stderr bytes.Buffer

	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	stdin, err := cmd.StdinPipe()
	if err != nil {
		return nil, errors.Join(ErrPipe, err)
	}

	if err := cmd.Start(); err != nil {
		return nil, errors.Join(ErrSpawn, err)
	}

	logger.Debug("interpreter started", "pid", cmd.Process.Pid)

	// The child is reaped on every path: stdin is closed to signal
	// end-of-script and Wait runs before any error is returned.
	writeErr := s.writeCommands(stdin, text)
	if err := stdin.Close(); err != nil && writeErr == nil {
		writeErr = err
	}

	waitErr := cmd.Wait()

	logger.Debug("interpreter finished",
		"stdoutBytes", stdout.Len(),
		"stderrBytes", stderr.Len(),
	)

	if writeErr != nil {
		return nil, errors.Join(ErrPipe, writeErr)
	}

	var exit *exec.ExitError

	switch {
	case waitErr == nil:
		return NewOutput(0, stdout.Bytes(), stderr.Bytes()), nil
	case errors.As(waitErr, &exit):
		// A non-zero exit code is data, not an error.
		return NewOutput(exit.ExitCode(), stdout.Bytes(), stderr.Bytes()), nil
	default:
		return nil, errors.Join(ErrPipe, waitErr)
	}
}

// args assembles the interpreter argument list. The trailing "-Command -"
// makes the interpreter read commands from stdin.
func (s *Script) args() []string {
	args := make([]string, 0, 6)

	if s.noProfile {
		args = append(args, "-NoProfile")
	}

	if s.nonInteractive {
		args = append(args, "-NonInteractive")
	}

	if s.hidden {
		args = append(args, "-WindowStyle", "Hidden")
	}

	return append(args, "-Command", "-")
}

// writeCommands sends each non-blank line of text to w, echoing it first
// when print-commands is enabled.
func (s *Script) writeCommands(w io.Writer, text string) error {
	if s.printCommands {
		w = linewriter.New(w, s.echo)
	}

	for line := range strings.Lines(text) {
		line = strings.TrimRight(line, "\r\n")
		if strings.TrimSpace(line) == "" {
			continue
		}

		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}

	return nil
}

// Run executes the script with the default configuration. It is equivalent
// to NewBuilder().Build().Run(ctx, text).
func Run(ctx context.Context, text string) (*Output, error) {
	return NewBuilder().Build().Run(ctx, text)
}
