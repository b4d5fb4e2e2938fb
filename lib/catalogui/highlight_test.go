// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package catalogui

import (
	"slices"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/junegunn/fzf/src/util"

	"github.com/bureau-foundation/pokedex/lib/catalog"
)

func TestMatchPositions(t *testing.T) {
	slab := util.MakeSlab(100*1024, 2048)
	tests := []struct {
		name string
		term string
		want []int
	}{
		{"charmander", "char", []int{0, 1, 2, 3}},
		{"Charmander", "MAN", []int{4, 5, 6}},
		{"bulbasaur", "saur", []int{5, 6, 7, 8}},
		{"bulbasaur", "", nil},
		{"bulbasaur", "char", nil},
	}
	for _, test := range tests {
		got := matchPositions(test.name, test.term, slab)
		if !slices.Equal(got, test.want) {
			t.Errorf("matchPositions(%q, %q) = %v, want %v", test.name, test.term, got, test.want)
		}
	}
}

// Every item the list filter keeps has a highlight, and every item it
// drops has none.
func TestMatchPositionsAgreeWithFilter(t *testing.T) {
	slab := util.MakeSlab(100*1024, 2048)
	names := []string{"bulbasaur", "Ivysaur", "charmander", "MR-MIME", "porygon-z"}
	for _, term := range []string{"saur", "SAUR", "m", "-", "z", "xyz"} {
		for _, name := range names {
			matches := catalog.Item{Name: name}.MatchesName(term)
			highlighted := matchPositions(name, term, slab) != nil
			if matches != highlighted {
				t.Errorf("%q/%q: filter %v, highlight %v", name, term, matches, highlighted)
			}
		}
	}
}

func TestHighlightRunesSplitsRuns(t *testing.T) {
	base := lipgloss.NewStyle()
	match := lipgloss.NewStyle()
	if got := highlightRunes("charmander", []int{0, 1, 2, 3}, base, match); got != "charmander" {
		t.Errorf("unstyled highlight = %q, want the plain name", got)
	}
	if got := highlightRunes("abc", nil, base, match); got != "abc" {
		t.Errorf("no positions = %q, want abc", got)
	}
}
