// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package catalogui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/bureau-foundation/pokedex/lib/catalog"
	"github.com/bureau-foundation/pokedex/lib/query"
	"github.com/bureau-foundation/pokedex/lib/tui"
	"github.com/bureau-foundation/pokedex/lib/viewstate"
)

const loadingAbilitiesText = "Loading abilities..."

func formatHeight(item catalog.Item) string {
	return fmt.Sprintf("%.1f m", item.HeightMeters())
}

func formatWeight(item catalog.Item) string {
	return fmt.Sprintf("%.1f kg", item.WeightKilograms())
}

// renderDetailBody renders the detail screen for the current state of
// detail. art is the rendered sprite, empty when there is none.
func (model Model) renderDetailBody(detail *viewstate.Detail, art string, width int) string {
	theme := model.theme
	item := detail.Item()

	switch detail.Status() {
	case viewstate.DetailNotFound:
		return lipgloss.NewStyle().Foreground(theme.WarningText).Render(query.Describe(query.ErrNotFound))
	case viewstate.DetailError:
		return lipgloss.NewStyle().Foreground(theme.ErrorText).Render("Error: "+query.Describe(detail.Err())) +
			"\n\n" + lipgloss.NewStyle().Foreground(theme.FaintText).Render("Press r to retry.")
	case viewstate.DetailFetching:
		if item == nil {
			return model.spinner.View() + lipgloss.NewStyle().Foreground(theme.LoadingText).Render(" Loading Pokémon details...")
		}
	}

	info := renderItemInfo(theme, *item, width)
	if detail.Status() == viewstate.DetailFetching {
		info += "\n\n" + model.spinner.View() + lipgloss.NewStyle().Foreground(theme.LoadingText).Render(" refreshing")
	}
	if art == "" || lipgloss.Width(art)+lipgloss.Width(info)+2 > width {
		if art != "" {
			return art + "\n\n" + info
		}
		return info
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, art, "  ", info)
}

// renderItemInfo renders the text half of the detail screen.
func renderItemInfo(theme tui.Theme, item catalog.Item, width int) string {
	label := lipgloss.NewStyle().Foreground(theme.FaintText).Width(10)
	value := lipgloss.NewStyle().Foreground(theme.NormalText)
	heading := lipgloss.NewStyle().Foreground(theme.HeaderAccent).Bold(true)

	var lines []string
	lines = append(lines,
		lipgloss.NewStyle().Foreground(theme.HeaderForeground).Bold(true).Render(item.Name)+"  "+
			lipgloss.NewStyle().Foreground(theme.FaintText).Render(itemNumber(item.ID)),
		"")

	badges := make([]string, 0, len(item.Types))
	for _, itemType := range item.Types {
		badges = append(badges, theme.TypeBadge(itemType.Name))
	}
	if len(badges) > 0 {
		lines = append(lines, strings.Join(badges, " "), "")
	}

	lines = append(lines,
		label.Render("Height")+value.Render(formatHeight(item)),
		label.Render("Weight")+value.Render(formatWeight(item)),
		"",
		heading.Render("Abilities"))
	if len(item.Abilities) == 0 {
		lines = append(lines, lipgloss.NewStyle().Foreground(theme.FaintText).Italic(true).Render("  "+loadingAbilitiesText))
	} else {
		for _, ability := range item.Abilities {
			lines = append(lines, value.Render("  • "+ability))
		}
	}

	if item.Cries != "" {
		lines = append(lines, "", heading.Render("Cry"),
			lipgloss.NewStyle().Foreground(theme.LinkForeground).Render("  "+item.Cries))
	}
	return lipgloss.NewStyle().MaxWidth(max(width, 20)).Render(strings.Join(lines, "\n"))
}
