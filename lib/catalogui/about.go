// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package catalogui

import (
	_ "embed"

	"github.com/charmbracelet/lipgloss"

	"github.com/bureau-foundation/pokedex/lib/tui"
)

//go:embed about.md
var aboutMarkdown string

func renderAbout(theme tui.Theme, width int) string {
	return renderMarkdown(aboutMarkdown, theme, width)
}

// renderNotFound is the body of the not-found screen.
func renderNotFound(theme tui.Theme, path string, width int) string {
	title := lipgloss.NewStyle().Bold(true).Foreground(theme.HeaderAccent).Render("404 - Page Not Found")
	body := lipgloss.NewStyle().Foreground(theme.NormalText).Width(max(width, 20)).
		Render("Oops! It looks like the page you're looking for doesn't exist: " + path)
	hint := lipgloss.NewStyle().Foreground(theme.FaintText).Render("Press H to return home.")
	return title + "\n\n" + body + "\n\n" + hint
}
