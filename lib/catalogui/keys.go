// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package catalogui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the key bindings of the browser.
type KeyMap struct {
	// List cursor, or detail and about scrolling.
	Up   key.Binding
	Down key.Binding

	// Pagination.
	PrevPage key.Binding
	NextPage key.Binding

	Open key.Binding // Open the highlighted row.

	Search key.Binding // Focus the search bar.
	Clear  key.Binding // Clear the search, or leave a sub-screen.
	Back   key.Binding // Return to the list.

	About   key.Binding
	Home    key.Binding
	Refresh key.Binding
	Quit    key.Binding
}

// DefaultKeyMap pairs vim-style keys with the arrow keys.
var DefaultKeyMap = KeyMap{
	Up: key.NewBinding(
		key.WithKeys("k", "up"),
		key.WithHelp("k/↑", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("j", "down"),
		key.WithHelp("j/↓", "down"),
	),
	PrevPage: key.NewBinding(
		key.WithKeys("h", "left"),
		key.WithHelp("h/←", "prev page"),
	),
	NextPage: key.NewBinding(
		key.WithKeys("l", "right"),
		key.WithHelp("l/→", "next page"),
	),
	Open: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("⏎", "open"),
	),
	Search: key.NewBinding(
		key.WithKeys("/"),
		key.WithHelp("/", "search"),
	),
	Clear: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "clear"),
	),
	Back: key.NewBinding(
		key.WithKeys("backspace"),
		key.WithHelp("BS", "back"),
	),
	About: key.NewBinding(
		key.WithKeys("a"),
		key.WithHelp("a", "about"),
	),
	Home: key.NewBinding(
		key.WithKeys("H"),
		key.WithHelp("H", "home"),
	),
	Refresh: key.NewBinding(
		key.WithKeys("r"),
		key.WithHelp("r", "refresh"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}

// listHelp and pageHelp are the bindings shown in the help line of
// the list screen and of the other screens.
func (keys KeyMap) listHelp() []key.Binding {
	return []key.Binding{keys.Up, keys.Down, keys.PrevPage, keys.NextPage, keys.Open, keys.Search, keys.About, keys.Refresh, keys.Quit}
}

func (keys KeyMap) pageHelp() []key.Binding {
	return []key.Binding{keys.Up, keys.Down, keys.Back, keys.Home, keys.About, keys.Refresh, keys.Quit}
}
