// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"log/slog"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"github.com/bureau-foundation/pokedex/lib/catalog"
	"github.com/bureau-foundation/pokedex/lib/query/querytest"
	"github.com/bureau-foundation/pokedex/lib/snapshot"
)

func clearEnvironment(t *testing.T) {
	t.Helper()
	for _, name := range []string{"POKEDEX_CONFIG", "POKEDEX_API_URL", "VITE_API_URL", "POKEDEX_PER_PAGE", "POKEDEX_SNAPSHOT", "POKEDEX_LOG_LEVEL"} {
		t.Setenv(name, "")
	}
}

func TestSnapshotDownloadsEveryPage(t *testing.T) {
	clearEnvironment(t)
	server := querytest.NewServer(t, &querytest.Catalog{Items: querytest.Starters()})
	directory := t.TempDir()
	output := filepath.Join(directory, "pokedex.snap")

	err := run([]string{
		"--endpoint", server.Endpoint(),
		"--env-file", filepath.Join(directory, "missing.env"),
		"--output", output,
		"--batch-size", "4",
		"--compression", "lz4",
	}, &strings.Builder{}, slog.New(slog.DiscardHandler))
	if err != nil {
		t.Fatalf("run: %v", err)
	}

	if requests := server.Requests("GetPokemonsPage"); requests != 3 {
		t.Errorf("list requests = %d, want 3", requests)
	}
	written, err := snapshot.ReadFile(output)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if written.Endpoint != server.Endpoint() {
		t.Errorf("endpoint = %q, want %q", written.Endpoint, server.Endpoint())
	}
	if !slices.EqualFunc(written.Items, querytest.Starters(), catalog.Item.Equal) {
		t.Errorf("items differ from the catalog: got %d items", len(written.Items))
	}
	if written.CreatedAt.IsZero() {
		t.Error("CreatedAt not set")
	}
}

func TestSnapshotReportsQueryFailure(t *testing.T) {
	clearEnvironment(t)
	server := querytest.NewServer(t, &querytest.Catalog{Items: querytest.Starters()})
	server.FailNext("GetPokemonsPage", "database is locked")
	directory := t.TempDir()

	err := run([]string{
		"--endpoint", server.Endpoint(),
		"--env-file", filepath.Join(directory, "missing.env"),
		"--output", filepath.Join(directory, "pokedex.snap"),
	}, &strings.Builder{}, slog.New(slog.DiscardHandler))
	if err == nil || !strings.Contains(err.Error(), "Query failed: database is locked") {
		t.Errorf("run error = %v, want the query failure", err)
	}
}

func TestSnapshotFlagValidation(t *testing.T) {
	clearEnvironment(t)
	tests := map[string][]string{
		"missing output":  {},
		"batch too large": {"--output", "x.snap", "--batch-size", "500"},
		"bad compression": {"--output", "x.snap", "--compression", "gzip"},
		"stray argument":  {"--output", "x.snap", "extra"},
	}
	for name, args := range tests {
		if err := run(args, &strings.Builder{}, slog.New(slog.DiscardHandler)); err == nil {
			t.Errorf("%s: run succeeded", name)
		}
	}
}

func TestSnapshotVersion(t *testing.T) {
	var output strings.Builder
	if err := run([]string{"--version"}, &output, nil); err != nil {
		t.Fatalf("run --version: %v", err)
	}
	if !strings.Contains(output.String(), "pokedex-snapshot") {
		t.Errorf("version output = %q", output.String())
	}
}
