// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package linewriter

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

// TestMain is used to run the goleak verification before and after tests.
func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

// recordingWriter appends a tagged copy of every write to a shared log so
// tests can assert ordering across writers.
type recordingWriter struct {
	tag string
	log *[]string
}

func (w *recordingWriter) Write(p []byte) (int, error) {
	*w.log = append(*w.log, w.tag+string(p))
	return len(p), nil
}

func TestWriteEchoesBeforeDelivery(t *testing.T) {
	log := []string{}
	dst := &recordingWriter{tag: "dst:", log: &log}
	echo := &recordingWriter{tag: "echo:", log: &log}

	w := New(dst, echo)

	n, err := w.Write([]byte("echo hi\n"))
	require.NoError(t, err)
	assert.Equal(t, 8, n)
	assert.Equal(t, []string{"echo:echo hi\n", "dst:echo hi\n"}, log)
}

func TestWriteBuffersPartialLines(t *testing.T) {
	dst := &bytes.Buffer{}
	echo := &bytes.Buffer{}
	w := New(dst, echo)

	_, err := w.Write([]byte("ec"))
	require.NoError(t, err)
	assert.Empty(t, dst.String())
	assert.Empty(t, echo.String())

	_, err = w.Write([]byte("ho hi\n"))
	require.NoError(t, err)
	assert.Equal(t, "echo hi\n", dst.String())
	assert.Equal(t, "echo hi\n", echo.String())
}

func TestWriteSplitsMultipleLines(t *testing.T) {
	log := []string{}
	dst := &recordingWriter{tag: "dst:", log: &log}
	echo := &recordingWriter{tag: "echo:", log: &log}

	w := New(dst, echo)

	_, err := w.Write([]byte("one\ntwo\nthr"))
	require.NoError(t, err)
	assert.Equal(t, []string{"echo:one\n", "dst:one\n", "echo:two\n", "dst:two\n"}, log)

	require.NoError(t, w.Flush())
	assert.Equal(t, "echo:thr", log[len(log)-2])
	assert.Equal(t, "dst:thr", log[len(log)-1])
}

func TestFlushEmptyBuffer(t *testing.T) {
	w := New(&bytes.Buffer{}, &bytes.Buffer{})
	assert.NoError(t, w.Flush())
}

type failingWriter struct {
	err error
}

func (w *failingWriter) Write(_ []byte) (int, error) {
	return 0, w.err
}

func TestWritePropagatesDeliveryError(t *testing.T) {
	wantErr := errors.New("broken pipe")
	w := New(&failingWriter{err: wantErr}, &bytes.Buffer{})

	_, err := w.Write([]byte("line\n"))
	assert.ErrorIs(t, err, wantErr)
}

func TestWritePropagatesEchoError(t *testing.T) {
	wantErr := errors.New("echo failed")
	dst := &bytes.Buffer{}
	w := New(dst, &failingWriter{err: wantErr})

	_, err := w.Write([]byte("line\n"))
	assert.ErrorIs(t, err, wantErr)
	assert.Empty(t, dst.String())
}
