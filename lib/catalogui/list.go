// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package catalogui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/junegunn/fzf/src/util"

	"github.com/bureau-foundation/pokedex/lib/catalog"
	"github.com/bureau-foundation/pokedex/lib/query"
	"github.com/bureau-foundation/pokedex/lib/tui"
	"github.com/bureau-foundation/pokedex/lib/viewstate"
)

// emptyMatchText is shown when the search term hides every row of the
// loaded page.
func emptyMatchText(term string) string {
	return fmt.Sprintf("No Pokémon found matching %q", term)
}

// itemNumber formats an id the way the catalog prints it: #025.
func itemNumber(id int) string {
	return fmt.Sprintf("#%03d", id)
}

// renderListBody renders height rows of the list area: a loading
// line, the error, the empty-match message, or the visible rows with
// a scrollbar.
func (model Model) renderListBody(width, height int) string {
	theme := model.theme
	list := model.list
	var lines []string

	switch list.Status() {
	case viewstate.FetchIdle, viewstate.FetchLoading:
		lines = append(lines, " "+model.spinner.View()+
			lipgloss.NewStyle().Foreground(theme.LoadingText).Render(" Loading Pokémon..."))

	case viewstate.FetchFailed:
		lines = append(lines,
			" "+lipgloss.NewStyle().Foreground(theme.ErrorText).Render("Error: "+query.Describe(list.Err())),
			" "+lipgloss.NewStyle().Foreground(theme.FaintText).Render("Press r to retry."))

	case viewstate.FetchReady:
		rows := list.FilteredItems()
		if list.EmptyMatch() {
			if term := list.SearchTerm(); term != "" {
				lines = append(lines, " "+lipgloss.NewStyle().Foreground(theme.WarningText).Render(emptyMatchText(term)))
			} else {
				lines = append(lines, " "+lipgloss.NewStyle().Foreground(theme.FaintText).Render("This page is empty."))
			}
			break
		}
		rowWidth := width
		scrollable := len(rows) > height
		if scrollable {
			rowWidth--
		}
		slab := util.MakeSlab(100*1024, 2048)
		end := min(list.ScrollTop()+height, len(rows))
		var rendered []string
		for index := list.ScrollTop(); index < end; index++ {
			rendered = append(rendered, renderRow(theme, rows[index], list.SearchTerm(), index == list.Cursor(), rowWidth, slab))
		}
		for len(rendered) < height {
			rendered = append(rendered, strings.Repeat(" ", rowWidth))
		}
		body := strings.Join(rendered, "\n")
		if scrollable {
			bar := tui.RenderScrollbar(theme, height, len(rows), height, list.ScrollTop())
			body = lipgloss.JoinHorizontal(lipgloss.Top, body, bar)
		}
		return body
	}

	for len(lines) < height {
		lines = append(lines, "")
	}
	return lipgloss.NewStyle().Width(width).Render(strings.Join(lines[:height], "\n"))
}

// renderRow renders one list row: cursor marker, number, name with
// the search match highlighted, and type badges.
func renderRow(theme tui.Theme, item catalog.Item, term string, selected bool, width int, slab *util.Slab) string {
	base := lipgloss.NewStyle().Foreground(theme.NormalText)
	faint := lipgloss.NewStyle().Foreground(theme.FaintText)
	marker := "  "
	if selected {
		base = base.Foreground(theme.SelectedForeground).Background(theme.SelectedBackground).Bold(true)
		faint = faint.Background(theme.SelectedBackground)
		marker = "▸ "
	}
	match := base.Background(theme.SearchHighlightBackground).Underline(true)

	name := highlightRunes(item.Name, matchPositions(item.Name, term, slab), base, match)
	nameWidth := ansi.StringWidth(item.Name)
	padding := base.Render(strings.Repeat(" ", max(16-nameWidth, 1)))

	badges := make([]string, 0, len(item.Types))
	for _, itemType := range item.Types {
		badges = append(badges, theme.TypeBadge(itemType.Name))
	}

	row := base.Render(marker) + faint.Render(itemNumber(item.ID)+" ") + name + padding + strings.Join(badges, " ")
	if rowWidth := ansi.StringWidth(row); rowWidth < width {
		fill := lipgloss.NewStyle()
		if selected {
			fill = fill.Background(theme.SelectedBackground)
		}
		row += fill.Render(strings.Repeat(" ", width-rowWidth))
	}
	return ansi.Truncate(row, width, "…")
}

// renderPagination renders the pagination bar followed by a page
// summary. Nothing is shown before the first page arrives.
func renderPagination(theme tui.Theme, list *viewstate.List) string {
	info, ok := list.PageInfo()
	if !ok {
		return ""
	}
	parts := make([]string, 0, 9)
	for _, control := range list.Controls() {
		label := control.Label()
		style := lipgloss.NewStyle().Foreground(theme.NormalText).Padding(0, 1)
		switch {
		case control.Disabled:
			style = style.Foreground(theme.DisabledControl)
		case control.Active:
			style = style.Foreground(theme.ActivePageForeground).Background(theme.ActivePageBackground).Bold(true)
		case control.Kind == viewstate.ControlEllipsis:
			style = style.Foreground(theme.FaintText)
		case control.Kind == viewstate.ControlPrevious:
			label = "‹ " + label
		case control.Kind == viewstate.ControlNext:
			label += " ›"
		}
		parts = append(parts, style.Render(label))
	}
	summary := lipgloss.NewStyle().Foreground(theme.FaintText).
		Render(fmt.Sprintf("  page %d of %d · %d total", list.CurrentPage(), info.LastPage, info.Total))
	return strings.Join(parts, "") + summary
}
