// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package catalogui

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/bureau-foundation/pokedex/lib/catalog"
	"github.com/bureau-foundation/pokedex/lib/clock"
	"github.com/bureau-foundation/pokedex/lib/query"
	"github.com/bureau-foundation/pokedex/lib/sprite"
	"github.com/bureau-foundation/pokedex/lib/store"
	"github.com/bureau-foundation/pokedex/lib/tui"
	"github.com/bureau-foundation/pokedex/lib/viewstate"
)

// Config configures a Model.
type Config struct {
	// Source serves every fetch. Required.
	Source query.Source

	// Store holds the selected item and search term. A fresh store is
	// created when nil.
	Store *store.Store

	// PerPage is the list page size.
	PerPage int

	// Route is the initial location, "/" when empty.
	Route string

	// Page is the list page to open on. Values below 2 mean page 1.
	Page int

	// Sprites renders item artwork on the detail screen. Nil disables
	// artwork.
	Sprites *sprite.Loader

	// Updates signals that the source's data changed, prompting a
	// refresh of whatever is on screen. Nil for sources that never
	// change.
	Updates <-chan struct{}

	// Timeout bounds each fetch. Zero means no bound beyond the
	// source's own.
	Timeout time.Duration

	Clock  clock.Clock
	Logger *slog.Logger
}

// Messages delivered by the commands the model issues.
type (
	pageLoadedMsg struct {
		request viewstate.PageRequest
		page    catalog.Page
		err     error
	}

	detailLoadedMsg struct {
		request viewstate.DetailRequest
		item    *catalog.Item
		err     error
	}

	spriteLoadedMsg struct {
		url string
		art string
	}

	sourceChangedMsg struct{}
)

// Model is the bubbletea model of the browser.
type Model struct {
	source  query.Source
	store   *store.Store
	sprites *sprite.Loader
	updates <-chan struct{}
	timeout time.Duration
	clock   clock.Clock
	logger  *slog.Logger

	theme tui.Theme
	keys  KeyMap

	width  int
	height int
	ready  bool

	route Route

	// The list survives navigation so returning to it restores the
	// page, cursor, and search.
	list        *viewstate.List
	listStarted bool
	startPage   int
	search      SearchBar

	// detail is non-nil on the detail route.
	detail *viewstate.Detail
	art    string

	// viewport scrolls the detail, about, and not-found screens.
	viewport viewport.Model
	spinner  spinner.Model

	// initial holds the commands of the first navigation, issued by
	// Init.
	initial tea.Cmd

	status         *logRecordMsg
	statusSequence int
}

// NewModel returns a model positioned on config.Route.
func NewModel(config Config) Model {
	shared := config.Store
	if shared == nil {
		shared = store.New()
	}
	logger := config.Logger
	if logger == nil {
		logger = slog.Default()
	}
	timeSource := config.Clock
	if timeSource == nil {
		timeSource = clock.Real()
	}

	model := Model{
		source:    config.Source,
		store:     shared,
		sprites:   config.Sprites,
		updates:   config.Updates,
		timeout:   config.Timeout,
		clock:     timeSource,
		logger:    logger,
		theme:     tui.DefaultTheme,
		keys:      DefaultKeyMap,
		list:      viewstate.NewList(shared, config.PerPage),
		startPage: config.Page,
		viewport:  viewport.New(80, 20),
		spinner:   spinner.New(spinner.WithSpinner(spinner.Dot)),
	}
	model.spinner.Style = lipgloss.NewStyle().Foreground(model.theme.LoadingText)
	model.search.Input = shared.GetState().SearchTerm
	model.initial = model.navigate(ParseRoute(config.Route))
	return model
}

// Init implements tea.Model.
func (model Model) Init() tea.Cmd {
	return tea.Batch(model.initial, model.spinner.Tick, listenForUpdates(model.updates))
}

// Route returns the current location.
func (model Model) Route() Route { return model.route }

func listenForUpdates(updates <-chan struct{}) tea.Cmd {
	if updates == nil {
		return nil
	}
	return func() tea.Msg {
		if _, ok := <-updates; !ok {
			return nil
		}
		return sourceChangedMsg{}
	}
}

// navigate switches to route and returns the fetches it needs.
func (model *Model) navigate(route Route) tea.Cmd {
	model.route = route
	model.detail = nil
	model.art = ""
	model.viewport.GotoTop()

	var command tea.Cmd
	switch route.Kind {
	case RouteList:
		if !model.listStarted {
			model.listStarted = true
			if model.startPage > 1 {
				command = model.fetchPage(model.list.StartAt(model.startPage))
			} else {
				command = model.fetchPage(model.list.Start())
			}
		}
	case RouteDetail:
		model.detail = viewstate.NewDetail(model.store, route.Key)
		if request, ok := model.detail.Request(); ok {
			command = model.fetchDetail(request)
		} else {
			command = model.loadArt()
		}
	}
	model.syncViewport()
	return command
}

func (model Model) fetchContext() (context.Context, context.CancelFunc) {
	if model.timeout > 0 {
		return context.WithTimeout(context.Background(), model.timeout)
	}
	return context.WithCancel(context.Background())
}

func (model Model) fetchPage(request viewstate.PageRequest) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := model.fetchContext()
		defer cancel()
		start := model.clock.Now()
		page, err := model.source.ListPage(ctx, request.Page, request.PerPage)
		if err != nil {
			model.logger.Warn("list fetch failed",
				"page", request.Page,
				"per_page", request.PerPage,
				"error", err,
			)
		} else {
			model.logger.Debug("list page fetched",
				"page", request.Page,
				"items", len(page.Items),
				"duration", clock.Since(model.clock, start),
			)
		}
		return pageLoadedMsg{request: request, page: page, err: err}
	}
}

func (model Model) fetchDetail(request viewstate.DetailRequest) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := model.fetchContext()
		defer cancel()
		var item *catalog.Item
		var err error
		if request.Key.ByName() {
			item, err = model.source.ItemByName(ctx, request.Key.Name)
		} else {
			item, err = model.source.ItemByID(ctx, request.Key.ID)
		}
		if err != nil {
			model.logger.Warn("detail fetch failed", "key", request.Key.String(), "error", err)
		}
		return detailLoadedMsg{request: request, item: item, err: err}
	}
}

// loadArt renders the artwork of the item on the detail screen,
// synchronously when the loader has it cached.
func (model *Model) loadArt() tea.Cmd {
	if model.sprites == nil || model.detail == nil || model.detail.Item() == nil {
		return nil
	}
	url := model.detail.Item().ImageURL
	if url == "" {
		return nil
	}
	if art, ok := model.sprites.Cached(url); ok {
		model.art = art
		model.syncViewport()
		return nil
	}
	loader, fetcher := model.sprites, *model
	return func() tea.Msg {
		ctx, cancel := fetcher.fetchContext()
		defer cancel()
		art, err := loader.Load(ctx, url)
		if err != nil {
			// The loader logs failures; the detail screen goes without art.
			return nil
		}
		return spriteLoadedMsg{url: url, art: art}
	}
}

// Update implements tea.Model.
func (model Model) Update(message tea.Msg) (tea.Model, tea.Cmd) {
	switch message := message.(type) {
	case tea.KeyMsg:
		if model.search.Active {
			return model.handleSearchKeys(message)
		}
		return model.handleKeys(message)

	case tea.WindowSizeMsg:
		model.width = message.Width
		model.height = message.Height
		model.ready = true
		model.viewport.Width = max(model.width-1, 1)
		model.viewport.Height = model.bodyHeight()
		model.list.EnsureVisible(model.listHeight())
		model.syncViewport()

	case spinner.TickMsg:
		var command tea.Cmd
		model.spinner, command = model.spinner.Update(message)
		if model.detail != nil && model.detail.Status() == viewstate.DetailFetching {
			model.syncViewport()
		}
		return model, command

	case pageLoadedMsg:
		if model.list.ApplyResult(message.request, message.page, message.err) {
			model.list.EnsureVisible(model.listHeight())
		}

	case detailLoadedMsg:
		if model.detail == nil || !model.detail.Resolve(message.request, message.item, message.err) {
			return model, nil
		}
		model.syncViewport()
		command := model.loadArt()
		return model, command

	case spriteLoadedMsg:
		if model.detail != nil && model.detail.Item() != nil && model.detail.Item().ImageURL == message.url {
			model.art = message.art
			model.syncViewport()
		}

	case sourceChangedMsg:
		commands := []tea.Cmd{listenForUpdates(model.updates)}
		if model.listStarted {
			commands = append(commands, model.fetchPage(model.list.Refresh()))
		}
		if model.detail != nil {
			commands = append(commands, model.fetchDetail(model.detail.Refresh()))
		}
		return model, tea.Batch(commands...)

	case logRecordMsg:
		model.status = &message
		model.statusSequence++
		sequence := model.statusSequence
		return model, tea.Tick(logRecordFadeDelay, func(time.Time) tea.Msg {
			return logRecordFadeMsg{Sequence: sequence}
		})

	case logRecordFadeMsg:
		if message.Sequence == model.statusSequence {
			model.status = nil
		}
	}
	return model, nil
}

func (model Model) handleKeys(message tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(message, model.keys.Quit):
		return model, tea.Quit

	case key.Matches(message, model.keys.About):
		if model.route.Kind != RouteAbout {
			command := model.navigate(Route{Kind: RouteAbout, Path: "/about"})
			return model, command
		}
		return model, nil

	case key.Matches(message, model.keys.Home):
		if model.route.Kind != RouteList {
			command := model.navigate(ParseRoute("/"))
			return model, command
		}
		return model, nil

	case key.Matches(message, model.keys.Refresh):
		command := model.refresh()
		return model, command
	}

	if model.route.Kind == RouteList {
		command := model.handleListKeys(message)
		return model, command
	}

	switch {
	case key.Matches(message, model.keys.Back), key.Matches(message, model.keys.Clear):
		command := model.navigate(ParseRoute("/"))
		return model, command
	case key.Matches(message, model.keys.Up):
		model.viewport.LineUp(1)
	case key.Matches(message, model.keys.Down):
		model.viewport.LineDown(1)
	}
	return model, nil
}

func (model *Model) refresh() tea.Cmd {
	switch model.route.Kind {
	case RouteList:
		return model.fetchPage(model.list.Refresh())
	case RouteDetail:
		command := model.fetchDetail(model.detail.Refresh())
		model.syncViewport()
		return command
	}
	return nil
}

func (model *Model) handleListKeys(message tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(message, model.keys.Up):
		model.list.MoveCursor(-1)
		model.list.EnsureVisible(model.listHeight())

	case key.Matches(message, model.keys.Down):
		model.list.MoveCursor(1)
		model.list.EnsureVisible(model.listHeight())

	case key.Matches(message, model.keys.PrevPage):
		if request, ok := model.list.PrevPage(); ok {
			return model.fetchPage(request)
		}

	case key.Matches(message, model.keys.NextPage):
		if request, ok := model.list.NextPage(); ok {
			return model.fetchPage(request)
		}

	case key.Matches(message, model.keys.Open):
		item, ok := model.list.Selected()
		if !ok {
			return nil
		}
		model.store.SetSelectedItem(&item)
		return model.navigate(DetailRoute(item))

	case key.Matches(message, model.keys.Search):
		model.search.Active = true
		model.search.Input = model.list.SearchTerm()

	case key.Matches(message, model.keys.Clear):
		if model.search.Input != "" || model.list.SearchTerm() != "" {
			model.search.Clear()
			return model.setSearch("")
		}
	}
	return nil
}

// handleSearchKeys routes input to the focused search bar. Every edit
// commits the term so the list narrows as the user types.
func (model Model) handleSearchKeys(message tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case message.Type == tea.KeyCtrlC:
		return model, tea.Quit

	case key.Matches(message, model.keys.Clear):
		if model.search.Input != "" {
			model.search.Clear()
			command := model.setSearch("")
			return model, command
		}
		model.search.Active = false

	case message.Type == tea.KeyEnter:
		model.search.Active = false

	case message.Type == tea.KeyBackspace:
		if model.search.HandleBackspace() {
			command := model.setSearch(model.search.Input)
			return model, command
		}

	case message.Type == tea.KeyRunes || message.Type == tea.KeySpace:
		for _, character := range message.Runes {
			model.search.HandleRune(character)
		}
		command := model.setSearch(model.search.Input)
		return model, command
	}
	return model, nil
}

func (model *Model) setSearch(term string) tea.Cmd {
	if request, ok := model.list.OnSearchChange(term); ok {
		return model.fetchPage(request)
	}
	return nil
}

// syncViewport re-renders the content of the scrollable screens.
func (model *Model) syncViewport() {
	width := model.viewport.Width
	switch model.route.Kind {
	case RouteDetail:
		model.viewport.SetContent(model.renderDetailBody(model.detail, model.art, width))
	case RouteAbout:
		model.viewport.SetContent(renderAbout(model.theme, width))
	case RouteNotFound:
		model.viewport.SetContent(renderNotFound(model.theme, model.route.Path, width))
	}
}

// Chrome rows: header, search bar or blank, pagination, separator,
// help line.
const chromeRows = 5

func (model Model) bodyHeight() int {
	return max(model.height-chromeRows, 1)
}

func (model Model) listHeight() int {
	return model.bodyHeight()
}

// View implements tea.Model.
func (model Model) View() string {
	if !model.ready {
		return "Loading..."
	}

	sections := []string{model.renderHeader()}
	switch model.route.Kind {
	case RouteList:
		sections = append(sections,
			model.search.View(model.theme, model.width),
			model.renderListBody(model.width, model.listHeight()),
			renderPagination(model.theme, model.list))
	default:
		body := lipgloss.NewStyle().Width(model.viewport.Width).Height(model.viewport.Height).Render(model.viewport.View())
		bar := tui.RenderScrollbar(model.theme, model.viewport.Height,
			model.viewport.TotalLineCount(), model.viewport.Height, model.viewport.YOffset)
		sections = append(sections,
			lipgloss.NewStyle().Foreground(model.theme.FaintText).Render(" ← backspace to list"),
			lipgloss.JoinHorizontal(lipgloss.Top, body, bar),
			"")
	}

	sections = append(sections,
		lipgloss.NewStyle().Foreground(model.theme.BorderColor).Render(strings.Repeat("─", model.width)),
		model.renderStatus())
	return strings.Join(sections, "\n")
}

func (model Model) renderHeader() string {
	title := lipgloss.NewStyle().Bold(true).Foreground(model.theme.HeaderAccent).Render(" Pokémon GraphQL")
	link := func(label string, active bool) string {
		style := lipgloss.NewStyle().Foreground(model.theme.FaintText).Padding(0, 1)
		if active {
			style = style.Foreground(model.theme.HeaderForeground).Underline(true)
		}
		return style.Render(label)
	}
	navigation := link("Home", model.route.Kind == RouteList) + link("About", model.route.Kind == RouteAbout)
	gap := max(model.width-lipgloss.Width(title)-lipgloss.Width(navigation), 1)
	return title + strings.Repeat(" ", gap) + navigation
}

// renderStatus shows the latest log message while it is fresh and the
// key help otherwise.
func (model Model) renderStatus() string {
	if model.status != nil {
		color := model.theme.WarningText
		if model.status.Level >= slog.LevelError {
			color = model.theme.ErrorText
		}
		return lipgloss.NewStyle().Foreground(color).MaxWidth(model.width).Render(" " + model.status.Summary)
	}
	bindings := model.keys.pageHelp()
	if model.route.Kind == RouteList {
		bindings = model.keys.listHelp()
	}
	parts := make([]string, 0, len(bindings))
	for _, binding := range bindings {
		help := binding.Help()
		parts = append(parts, help.Key+" "+help.Desc)
	}
	return lipgloss.NewStyle().Foreground(model.theme.HelpText).MaxWidth(model.width).Render(" " + strings.Join(parts, " · "))
}
