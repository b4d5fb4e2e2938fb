// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package logging

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"os"

	"golang.org/x/term"
)

// NewCommandLogger logs to stderr at level: slog.TextHandler when
// stderr is a terminal, slog.JSONHandler when it is piped or
// redirected.
func NewCommandLogger(level slog.Level) *slog.Logger {
	return slog.New(NewStreamHandler(os.Stderr, level, term.IsTerminal(int(os.Stderr.Fd()))))
}

// NewStreamHandler returns a text handler for interactive output and a
// JSON handler otherwise.
func NewStreamHandler(writer io.Writer, level slog.Level, interactive bool) slog.Handler {
	options := &slog.HandlerOptions{Level: level}
	if interactive {
		return slog.NewTextHandler(writer, options)
	}
	return slog.NewJSONHandler(writer, options)
}

// OpenFileHandler creates or truncates path and returns a debug-level
// JSON handler writing to it, with a function that closes the file.
func OpenFileHandler(path string) (slog.Handler, func() error, error) {
	file, err := os.Create(path)
	if err != nil {
		return nil, nil, err
	}
	handler := slog.NewJSONHandler(file, &slog.HandlerOptions{Level: slog.LevelDebug})
	return handler, file.Close, nil
}

// FanoutHandler sends each record to every handler enabled for its
// level. A record is enabled if any handler is enabled for it.
type FanoutHandler []slog.Handler

func (handlers FanoutHandler) Enabled(ctx context.Context, level slog.Level) bool {
	for _, handler := range handlers {
		if handler.Enabled(ctx, level) {
			return true
		}
	}
	return false
}

// Handle delivers record to every enabled handler even when an earlier
// one fails, and joins the failures.
func (handlers FanoutHandler) Handle(ctx context.Context, record slog.Record) error {
	var errs []error
	for _, handler := range handlers {
		if !handler.Enabled(ctx, record.Level) {
			continue
		}
		if err := handler.Handle(ctx, record.Clone()); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func (handlers FanoutHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	derived := make(FanoutHandler, len(handlers))
	for index, handler := range handlers {
		derived[index] = handler.WithAttrs(attrs)
	}
	return derived
}

func (handlers FanoutHandler) WithGroup(name string) slog.Handler {
	derived := make(FanoutHandler, len(handlers))
	for index, handler := range handlers {
		derived[index] = handler.WithGroup(name)
	}
	return derived
}
