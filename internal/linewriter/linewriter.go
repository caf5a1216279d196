// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package linewriter

import (
	"bytes"
	"io"
)

// Writer forwards written data to dst line by line, echoing each complete
// line to echo before it is delivered to dst. Partial lines are buffered
// until their newline arrives or Flush is called.
type Writer struct {
	dst  io.Writer
	echo io.Writer
	buf  bytes.Buffer
}

// New creates a Writer that delivers to dst and echoes complete lines to echo.
func New(dst, echo io.Writer) *Writer {
	return &Writer{
		dst:  dst,
		echo: echo,
	}
}

// Write implements io.Writer. The returned count covers all of p on success;
// delivery errors from either writer are returned as-is.
func (w *Writer) Write(p []byte) (int, error) {
	w.buf.Write(p)

	for {
		i := bytes.IndexByte(w.buf.Bytes(), '\n')
		if i < 0 {
			return len(p), nil
		}

		line := w.buf.Next(i + 1)
		if err := w.emit(line); err != nil {
			return len(p), err
		}
	}
}

// Flush delivers any buffered partial line without a trailing newline.
func (w *Writer) Flush() error {
	if w.buf.Len() == 0 {
		return nil
	}

	return w.emit(w.buf.Next(w.buf.Len()))
}

// emit echoes the line first so the caller sees the command before any of
// its effects, then delivers it to dst.
func (w *Writer) emit(line []byte) error {
	if _, err := w.echo.Write(line); err != nil {
		return err
	}

	_, err := w.dst.Write(line)

	return err
}
