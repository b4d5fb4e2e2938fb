// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package catalogui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/bureau-foundation/pokedex/lib/tui"
)

// SearchBar is the search input above the list. The text it holds is
// an edit buffer; the committed term lives in the store and is written
// on every keystroke by the model.
type SearchBar struct {
	Input string

	// Active is true while the bar has keyboard focus.
	Active bool
}

// HandleRune appends a typed character.
func (search *SearchBar) HandleRune(character rune) {
	search.Input += string(character)
}

// HandleBackspace removes the last character. Returns false when the
// input was already empty.
func (search *SearchBar) HandleBackspace() bool {
	if search.Input == "" {
		return false
	}
	runes := []rune(search.Input)
	search.Input = string(runes[:len(runes)-1])
	return true
}

// Clear empties the input and releases focus.
func (search *SearchBar) Clear() {
	search.Input = ""
	search.Active = false
}

// View renders the bar: a cursor while focused, the term in faint
// text when unfocused, and a placeholder when empty.
func (search SearchBar) View(theme tui.Theme, width int) string {
	style := lipgloss.NewStyle().Foreground(theme.NormalText).Width(width)
	if search.Active {
		cursor := lipgloss.NewStyle().
			Foreground(theme.HeaderAccent).
			Bold(true).
			Render("▎")
		return style.Render(" / " + search.Input + cursor)
	}
	faint := lipgloss.NewStyle().Foreground(theme.FaintText).Width(width)
	if search.Input == "" {
		return faint.Render(" / Search Pokémon...")
	}
	return faint.Render(" search: " + search.Input + "  (esc clears)")
}
