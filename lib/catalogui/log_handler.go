// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package catalogui

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// logRecordMsg carries a log record into the model for display in the
// status line.
type logRecordMsg struct {
	Summary string
	Level   slog.Level
}

// logRecordFadeMsg clears a status line message. Sequence identifies
// the message it was scheduled for so a newer message is not cleared
// early.
type logRecordFadeMsg struct {
	Sequence int
}

const logRecordFadeDelay = 5 * time.Second

// LogHandler is a slog.Handler that delivers records into a running
// bubbletea program so they show in the status line instead of
// corrupting the alternate screen. Records arriving before SetProgram
// are dropped.
//
// Handlers derived through WithAttrs and WithGroup share the program
// pointer of their parent.
type LogHandler struct {
	level   slog.Leveler
	program *atomic.Pointer[tea.Program]
	attrs   []slog.Attr
	group   string
}

// NewLogHandler returns a handler for records at or above level.
func NewLogHandler(level slog.Leveler) *LogHandler {
	return &LogHandler{
		level:   level,
		program: &atomic.Pointer[tea.Program]{},
	}
}

// SetProgram starts delivery to program. Safe to call from any
// goroutine.
func (handler *LogHandler) SetProgram(program *tea.Program) {
	handler.program.Store(program)
}

func (handler *LogHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= handler.level.Level()
}

func (handler *LogHandler) Handle(_ context.Context, record slog.Record) error {
	program := handler.program.Load()
	if program == nil {
		return nil
	}
	program.Send(logRecordMsg{
		Summary: handler.summarize(record),
		Level:   record.Level,
	})
	return nil
}

// summarize formats "message (key=value, ...)" with handler attrs
// before record attrs.
func (handler *LogHandler) summarize(record slog.Record) string {
	var parts []string
	for _, attr := range handler.attrs {
		parts = append(parts, fmt.Sprintf("%s=%s", attr.Key, attr.Value))
	}
	record.Attrs(func(attr slog.Attr) bool {
		key := attr.Key
		if handler.group != "" {
			key = handler.group + "." + key
		}
		parts = append(parts, fmt.Sprintf("%s=%s", key, attr.Value))
		return true
	})
	if len(parts) == 0 {
		return record.Message
	}
	return record.Message + " (" + strings.Join(parts, ", ") + ")"
}

func (handler *LogHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	qualified := make([]slog.Attr, 0, len(attrs))
	for _, attr := range attrs {
		if handler.group != "" {
			attr.Key = handler.group + "." + attr.Key
		}
		qualified = append(qualified, attr)
	}
	return &LogHandler{
		level:   handler.level,
		program: handler.program,
		attrs:   append(slices.Clone(handler.attrs), qualified...),
		group:   handler.group,
	}
}

func (handler *LogHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return handler
	}
	group := name
	if handler.group != "" {
		group = handler.group + "." + name
	}
	return &LogHandler{
		level:   handler.level,
		program: handler.program,
		attrs:   slices.Clone(handler.attrs),
		group:   group,
	}
}
