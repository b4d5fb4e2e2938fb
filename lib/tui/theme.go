// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Theme is the color palette. All colors are ANSI 256-color codes.
type Theme struct {
	NormalText lipgloss.Color
	FaintText  lipgloss.Color

	SelectedBackground lipgloss.Color
	SelectedForeground lipgloss.Color

	HeaderForeground lipgloss.Color
	HeaderAccent     lipgloss.Color
	BorderColor      lipgloss.Color
	HelpText         lipgloss.Color

	// Status line.
	ErrorText   lipgloss.Color
	WarningText lipgloss.Color
	LoadingText lipgloss.Color

	// Pagination bar.
	ActivePageBackground lipgloss.Color
	ActivePageForeground lipgloss.Color
	DisabledControl      lipgloss.Color

	// Search match highlighting.
	SearchHighlightBackground lipgloss.Color

	LinkForeground lipgloss.Color

	// TypeColors maps a lower-case type name to its badge color.
	TypeColors map[string]lipgloss.Color
}

// TypeColor returns the badge color for a type name, FaintText for
// unknown types.
func (theme Theme) TypeColor(name string) lipgloss.Color {
	if color, ok := theme.TypeColors[strings.ToLower(name)]; ok {
		return color
	}
	return theme.FaintText
}

// TypeBadge renders a type name as a colored badge.
func (theme Theme) TypeBadge(name string) string {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color("232")).
		Background(theme.TypeColor(name)).
		Padding(0, 1).
		Render(name)
}

// DefaultTheme targets 256-color terminals with a dark background.
var DefaultTheme = Theme{
	NormalText: lipgloss.Color("252"),
	FaintText:  lipgloss.Color("245"),

	SelectedBackground: lipgloss.Color("236"),
	SelectedForeground: lipgloss.Color("255"),

	HeaderForeground: lipgloss.Color("255"),
	HeaderAccent:     lipgloss.Color("203"), // dex red
	BorderColor:      lipgloss.Color("240"),
	HelpText:         lipgloss.Color("241"),

	ErrorText:   lipgloss.Color("196"),
	WarningText: lipgloss.Color("220"),
	LoadingText: lipgloss.Color("75"),

	ActivePageBackground: lipgloss.Color("203"),
	ActivePageForeground: lipgloss.Color("255"),
	DisabledControl:      lipgloss.Color("238"),

	SearchHighlightBackground: lipgloss.Color("58"),

	LinkForeground: lipgloss.Color("75"),

	TypeColors: map[string]lipgloss.Color{
		"normal":   lipgloss.Color("145"),
		"fire":     lipgloss.Color("208"),
		"water":    lipgloss.Color("69"),
		"electric": lipgloss.Color("220"),
		"grass":    lipgloss.Color("114"),
		"ice":      lipgloss.Color("117"),
		"fighting": lipgloss.Color("160"),
		"poison":   lipgloss.Color("133"),
		"ground":   lipgloss.Color("179"),
		"flying":   lipgloss.Color("141"),
		"psychic":  lipgloss.Color("205"),
		"bug":      lipgloss.Color("148"),
		"rock":     lipgloss.Color("137"),
		"ghost":    lipgloss.Color("97"),
		"dragon":   lipgloss.Color("63"),
		"dark":     lipgloss.Color("95"),
		"steel":    lipgloss.Color("146"),
		"fairy":    lipgloss.Color("218"),
	},
}
