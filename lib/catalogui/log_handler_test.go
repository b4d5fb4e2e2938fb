// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package catalogui

import (
	"context"
	"log/slog"
	"testing"
	"time"
)

func TestLogHandlerEnabled(t *testing.T) {
	handler := NewLogHandler(slog.LevelWarn)
	if handler.Enabled(context.Background(), slog.LevelInfo) {
		t.Error("info enabled at warn level")
	}
	if !handler.Enabled(context.Background(), slog.LevelError) {
		t.Error("error disabled at warn level")
	}
}

func TestLogHandlerDropsWithoutProgram(t *testing.T) {
	handler := NewLogHandler(slog.LevelInfo)
	record := slog.NewRecord(time.Now(), slog.LevelWarn, "dropped", 0)
	if err := handler.Handle(context.Background(), record); err != nil {
		t.Fatalf("Handle: %v", err)
	}
}

func TestLogHandlerSummary(t *testing.T) {
	root := NewLogHandler(slog.LevelInfo)
	derived := root.WithAttrs([]slog.Attr{slog.String("operation", "GetPokemonsPage")}).
		WithGroup("fetch").(*LogHandler)

	if derived.program != root.program {
		t.Error("derived handler does not share the program pointer")
	}

	record := slog.NewRecord(time.Now(), slog.LevelWarn, "list fetch failed", 0)
	record.AddAttrs(slog.Int("page", 2))
	want := "list fetch failed (operation=GetPokemonsPage, fetch.page=2)"
	if got := derived.summarize(record); got != want {
		t.Errorf("summary = %q, want %q", got, want)
	}

	bare := slog.NewRecord(time.Now(), slog.LevelWarn, "plain", 0)
	if got := root.summarize(bare); got != "plain" {
		t.Errorf("summary without attrs = %q, want plain", got)
	}
}
