// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package catalogui

import (
	"context"
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/bureau-foundation/pokedex/lib/store"
)

func printRoute(t *testing.T, source *countingSource, shared *store.Store, route string, page int) (string, error) {
	t.Helper()
	var output strings.Builder
	err := Print(context.Background(), &output, Config{
		Source:  source,
		Store:   shared,
		PerPage: 3,
		Route:   route,
		Page:    page,
	})
	return output.String(), err
}

func exitCode(err error) int {
	var exit *ExitError
	if errors.As(err, &exit) {
		return exit.ExitCode()
	}
	return -1
}

func TestPrintList(t *testing.T) {
	output, err := printRoute(t, newCountingSource(), store.New(), "/", 2)
	if err != nil {
		t.Fatalf("Print: %v", err)
	}
	for _, want := range []string{"#004  charmander", "fire, flying", "Previous 1 [2] 3 Next", "Page 2 of 3 (9 total)"} {
		if !strings.Contains(output, want) {
			t.Errorf("output missing %q:\n%s", want, output)
		}
	}
}

func TestPrintListFirstPageDisablesPrevious(t *testing.T) {
	output, err := printRoute(t, newCountingSource(), store.New(), "/", 1)
	if err != nil {
		t.Fatalf("Print: %v", err)
	}
	if !strings.Contains(output, "(Previous) [1] 2 3 Next") {
		t.Errorf("controls:\n%s", output)
	}
}

func TestPrintListPageFarPastTheEnd(t *testing.T) {
	output, err := printRoute(t, newCountingSource(), store.New(), "/", math.MaxInt/3+2)
	if err != nil {
		t.Fatalf("Print: %v", err)
	}
	for _, want := range []string{"(Next)", "of 3 (9 total)"} {
		if !strings.Contains(output, want) {
			t.Errorf("output missing %q:\n%s", want, output)
		}
	}
	if strings.Contains(output, "#0") {
		t.Errorf("page past the end listed items:\n%s", output)
	}
}

func TestPrintListWithSearch(t *testing.T) {
	shared := store.New()
	shared.SetSearchTerm("pika")
	output, err := printRoute(t, newCountingSource(), shared, "/", 1)
	if err != nil {
		t.Fatalf("Print: %v", err)
	}
	if !strings.Contains(output, `No Pokémon found matching "pika"`) {
		t.Errorf("output:\n%s", output)
	}
}

func TestPrintListFailure(t *testing.T) {
	source := newCountingSource()
	source.failNextList = errors.New("dial tcp: connection refused")
	output, err := printRoute(t, source, store.New(), "/", 1)
	if code := exitCode(err); code != ExitFetchFailed {
		t.Errorf("exit code = %d, want %d", code, ExitFetchFailed)
	}
	if !strings.Contains(output, "Error: dial tcp: connection refused") {
		t.Errorf("output:\n%s", output)
	}
}

func TestPrintDetail(t *testing.T) {
	output, err := printRoute(t, newCountingSource(), store.New(), "/pokemon/4", 0)
	if err != nil {
		t.Fatalf("Print: %v", err)
	}
	for _, want := range []string{"charmander #004", "Height:    0.6 m", "Weight:    8.5 kg", "Abilities: blaze, solar-power", "Cry:"} {
		if !strings.Contains(output, want) {
			t.Errorf("output missing %q:\n%s", want, output)
		}
	}
}

func TestPrintDetailUsesSelectedItem(t *testing.T) {
	source := newCountingSource()
	shared := store.New()
	cached, _ := source.catalog.ItemByID(context.Background(), 7)
	shared.SetSelectedItem(cached)

	if _, err := printRoute(t, source, shared, "/pokemon/7", 0); err != nil {
		t.Fatalf("Print: %v", err)
	}
	if _, detailCalls := source.counts(); detailCalls != 0 {
		t.Errorf("detail fetched %d times, want 0", detailCalls)
	}
}

func TestPrintNotFound(t *testing.T) {
	tests := []struct {
		route string
		want  string
	}{
		{"/pokemon/999", "Pokémon not found"},
		{"/berries", "404 - Page Not Found"},
	}
	for _, test := range tests {
		output, err := printRoute(t, newCountingSource(), store.New(), test.route, 0)
		if code := exitCode(err); code != ExitNotFound {
			t.Errorf("%s: exit code = %d, want %d", test.route, code, ExitNotFound)
		}
		if !strings.Contains(output, test.want) {
			t.Errorf("%s: output %q missing %q", test.route, output, test.want)
		}
	}
}
