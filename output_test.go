// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package psscript

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOutputSuccess(t *testing.T) {
	assert.True(t, NewOutput(0, nil, nil).Success())
	assert.False(t, NewOutput(1, nil, nil).Success())
	assert.Equal(t, 127, NewOutput(127, nil, nil).ExitCode())
}

func TestOutputStringAccessors(t *testing.T) {
	out := NewOutput(0, []byte("standard out\n"), []byte("standard err\n"))

	stdout, err := out.Stdout()
	require.NoError(t, err)
	assert.Equal(t, "standard out\n", stdout)

	stderr, err := out.Stderr()
	require.NoError(t, err)
	assert.Equal(t, "standard err\n", stderr)
}

func TestOutputInvalidUTF8(t *testing.T) {
	invalid := []byte{0x68, 0x69, 0xff, 0xfe}
	out := NewOutput(0, invalid, invalid)

	stdout, err := out.Stdout()
	assert.ErrorIs(t, err, ErrInvalidUTF8)
	assert.Empty(t, stdout)

	stderr, err := out.Stderr()
	assert.ErrorIs(t, err, ErrInvalidUTF8)
	assert.Empty(t, stderr)
}

func TestOutputByteAccessorsBypassDecoding(t *testing.T) {
	invalid := []byte{0xff, 0xfe}
	out := NewOutput(0, invalid, []byte{0x00, 0xff})

	assert.Equal(t, invalid, out.StdoutBytes())
	assert.Equal(t, []byte{0x00, 0xff}, out.StderrBytes())
}

func TestOutputString(t *testing.T) {
	out := NewOutput(1, []byte("out"), []byte("err"))
	assert.Equal(t, "outerr", out.String())

	lossy := NewOutput(0, []byte{0x68, 0xff}, nil)
	assert.Equal(t, "h�", lossy.String())
}
