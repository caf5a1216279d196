// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package ctxlog

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"

	"github.com/matt-FFFFFF/psscript/internal/color"
)

// TimeFormat is the format used for timestamps in log messages.
const TimeFormat = "[15:04:05.000]"

// PrettyHandler is a slog handler that formats records for the console:
// a timestamp, a colored level, the message and key=value attributes.
type PrettyHandler struct {
	writer io.Writer
	level  slog.Leveler
	attrs  []slog.Attr
	colour bool
	m      *sync.Mutex
}

// NewPrettyHandler creates a PrettyHandler writing to w at the given level.
// Color is enabled when w is a terminal, subject to NO_COLOR / FORCE_COLOR.
func NewPrettyHandler(w io.Writer, level slog.Leveler) *PrettyHandler {
	colour := false
	if f, ok := w.(*os.File); ok {
		colour = color.Enabled(f.Fd())
	}

	return &PrettyHandler{
		writer: w,
		level:  level,
		colour: colour,
		m:      &sync.Mutex{},
	}
}

// Enabled implements slog.Handler.
func (h *PrettyHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level.Level()
}

// WithAttrs implements slog.Handler.
func (h *PrettyHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &PrettyHandler{
		writer: h.writer,
		level:  h.level,
		attrs:  append(h.attrs[:len(h.attrs):len(h.attrs)], attrs...),
		colour: h.colour,
		m:      h.m,
	}
}

// WithGroup implements slog.Handler. Groups are flattened; the handler is
// for human consumption, not for machine parsing.
func (h *PrettyHandler) WithGroup(_ string) slog.Handler {
	return h
}

// Handle implements slog.Handler.
func (h *PrettyHandler) Handle(_ context.Context, r slog.Record) error {
	sb := strings.Builder{}
	sb.WriteString(r.Time.Format(TimeFormat))
	sb.WriteString(" ")
	sb.WriteString(h.levelString(r.Level))
	sb.WriteString(" ")
	sb.WriteString(r.Message)

	for _, a := range h.attrs {
		writeAttr(&sb, a)
	}

	r.Attrs(func(a slog.Attr) bool {
		writeAttr(&sb, a)
		return true
	})

	sb.WriteString("\n")

	h.m.Lock()
	defer h.m.Unlock()

	_, err := io.WriteString(h.writer, sb.String())

	return err
}

func (h *PrettyHandler) levelString(level slog.Level) string {
	s := level.String() + ":"
	if !h.colour {
		return s
	}

	switch {
	case level <= slog.LevelDebug:
		return color.Colorize(s, color.FgWhite)
	case level <= slog.LevelInfo:
		return color.Colorize(s, color.FgCyan)
	case level < slog.LevelError:
		return color.Colorize(s, color.FgYellow)
	case level <= slog.LevelError+1:
		return color.Colorize(s, color.FgRed)
	default:
		return color.Colorize(s, color.FgHiMagenta)
	}
}

func writeAttr(sb *strings.Builder, a slog.Attr) {
	if a.Equal(slog.Attr{}) {
		return
	}

	fmt.Fprintf(sb, " %s=%v", a.Key, a.Value.Resolve().Any())
}
