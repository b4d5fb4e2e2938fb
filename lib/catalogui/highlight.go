// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package catalogui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/junegunn/fzf/src/algo"
	"github.com/junegunn/fzf/src/util"
)

// matchPositions returns the rune offsets in name covered by the first
// case-insensitive occurrence of term, or nil when term is empty or
// absent. The list filter and the highlight agree on what matches.
func matchPositions(name, term string, slab *util.Slab) []int {
	if term == "" {
		return nil
	}
	chars := util.ToChars([]byte(name))
	pattern := []rune(strings.ToLower(term))
	result, _ := algo.ExactMatchNaive(false, false, true, &chars, pattern, false, slab)
	if result.Start < 0 || result.End <= result.Start {
		return nil
	}
	positions := make([]int, 0, result.End-result.Start)
	for position := result.Start; position < result.End; position++ {
		positions = append(positions, position)
	}
	return positions
}

// highlightRunes renders text with base, switching to match for the
// runes at positions. positions must be sorted.
func highlightRunes(text string, positions []int, base, match lipgloss.Style) string {
	if len(positions) == 0 {
		return base.Render(text)
	}
	var builder strings.Builder
	var run []rune
	inMatch := false
	next := 0
	flush := func() {
		if len(run) == 0 {
			return
		}
		if inMatch {
			builder.WriteString(match.Render(string(run)))
		} else {
			builder.WriteString(base.Render(string(run)))
		}
		run = run[:0]
	}
	for index, character := range []rune(text) {
		matched := next < len(positions) && positions[next] == index
		if matched {
			next++
		}
		if matched != inMatch {
			flush()
			inMatch = matched
		}
		run = append(run, character)
	}
	flush()
	return builder.String()
}
