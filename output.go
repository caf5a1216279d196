// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package psscript

import (
	"strings"
	"unicode/utf8"
)

// Output is a read-only view over a finished interpreter run: the exit
// status and the captured stdout and stderr bytes.
type Output struct {
	exitCode int
	stdout   []byte
	stderr   []byte
}

// NewOutput wraps an exit code and captured output buffers. Run calls this
// for every finished interpreter; it is exported so callers can fabricate
// outputs in their own tests.
func NewOutput(exitCode int, stdout, stderr []byte) *Output {
	return &Output{
		exitCode: exitCode,
		stdout:   stdout,
		stderr:   stderr,
	}
}

// Success reports whether the script exited with code zero.
func (o *Output) Success() bool {
	return o.exitCode == 0
}

// ExitCode returns the interpreter's exit code.
func (o *Output) ExitCode() int {
	return o.exitCode
}

// Stdout decodes the captured stdout as UTF-8. It returns ErrInvalidUTF8 if
// the bytes do not decode cleanly; use StdoutBytes to bypass decoding.
func (o *Output) Stdout() (string, error) {
	return decode(o.stdout)
}

// Stderr decodes the captured stderr as UTF-8. It returns ErrInvalidUTF8 if
// the bytes do not decode cleanly; use StderrBytes to bypass decoding.
func (o *Output) Stderr() (string, error) {
	return decode(o.stderr)
}

// StdoutBytes returns the raw captured stdout. Callers must not modify the
// returned slice.
func (o *Output) StdoutBytes() []byte {
	return o.stdout
}

// StderrBytes returns the raw captured stderr. Callers must not modify the
// returned slice.
func (o *Output) StderrBytes() []byte {
	return o.stderr
}

// String implements fmt.Stringer. It renders stdout followed by stderr,
// replacing invalid UTF-8 sequences with the Unicode replacement character.
func (o *Output) String() string {
	sb := strings.Builder{}
	sb.Grow(len(o.stdout) + len(o.stderr))
	sb.WriteString(strings.ToValidUTF8(string(o.stdout), "�"))
	sb.WriteString(strings.ToValidUTF8(string(o.stderr), "�"))

	return sb.String()
}

func decode(b []byte) (string, error) {
	if !utf8.Valid(b) {
		return "", ErrInvalidUTF8
	}

	return string(b), nil
}
