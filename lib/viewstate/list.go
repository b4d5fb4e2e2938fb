// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package viewstate

import (
	"github.com/bureau-foundation/pokedex/lib/catalog"
	"github.com/bureau-foundation/pokedex/lib/store"
)

// FetchStatus is the state of the list's most recent fetch.
type FetchStatus int

const (
	// FetchIdle means no fetch has been requested yet.
	FetchIdle FetchStatus = iota
	FetchLoading
	FetchReady
	FetchFailed
)

func (status FetchStatus) String() string {
	switch status {
	case FetchIdle:
		return "idle"
	case FetchLoading:
		return "loading"
	case FetchReady:
		return "ready"
	case FetchFailed:
		return "failed"
	}
	return "unknown"
}

// PageRequest asks the caller to fetch one page. Hand it back to
// ApplyResult together with the outcome.
type PageRequest struct {
	Generation uint64
	Page       int
	PerPage    int
}

// List is the list view state machine. Not safe for concurrent use;
// drive it from a single event loop.
type List struct {
	store   *store.Store
	perPage int

	currentPage int
	generation  uint64
	status      FetchStatus
	err         error

	// items holds the rows of the last successful fetch of
	// currentPage. Cleared on failure so an error never shows beside a
	// stale page.
	items []catalog.Item

	// pageInfo is the metadata of the last successful fetch. It is kept
	// across failures and loads so the navigation guards stay usable
	// while the list is showing an error or a spinner.
	pageInfo  catalog.PageInfo
	havePage  bool
	cursor    int
	scrollTop int
}

// NewList returns a list on page 1. perPage below 1 is treated as 1.
func NewList(shared *store.Store, perPage int) *List {
	return &List{
		store:       shared,
		perPage:     max(perPage, 1),
		currentPage: 1,
	}
}

// Start requests the current page. Call once when the view mounts.
func (list *List) Start() PageRequest {
	return list.begin()
}

// StartAt mounts the list on page instead of page 1, for a list opened
// from a bookmarked position. There is no page metadata yet to guard
// against, so any page of at least 1 is accepted.
func (list *List) StartAt(page int) PageRequest {
	list.currentPage = max(page, 1)
	return list.begin()
}

// Refresh re-requests the current page, superseding any fetch in
// flight.
func (list *List) Refresh() PageRequest {
	return list.begin()
}

// OnPageChange moves to newPage. It is a no-op, returning false, when
// newPage is forward of the current page and there is no next page,
// backward with no previous page, equal to the current page, or below
// 1. A forward jump is capped at the last known page. On success the
// cursor and scroll position reset to the top and the returned request
// must be fetched.
func (list *List) OnPageChange(newPage int) (PageRequest, bool) {
	switch {
	case newPage < 1 || newPage == list.currentPage:
		return PageRequest{}, false
	case newPage > list.currentPage && !list.HasNext():
		return PageRequest{}, false
	case newPage < list.currentPage && !list.HasPrev():
		return PageRequest{}, false
	}
	if list.havePage {
		newPage = min(newPage, list.pageInfo.LastPage)
	}
	list.currentPage = newPage
	list.resetScroll()
	return list.begin(), true
}

// NextPage is OnPageChange(current+1).
func (list *List) NextPage() (PageRequest, bool) { return list.OnPageChange(list.currentPage + 1) }

// PrevPage is OnPageChange(current-1).
func (list *List) PrevPage() (PageRequest, bool) { return list.OnPageChange(list.currentPage - 1) }

// OnSearchChange writes term to the store and returns to page 1. The
// filter applies to the loaded page only, so a fetch is requested only
// when the list was on another page.
func (list *List) OnSearchChange(term string) (PageRequest, bool) {
	list.store.SetSearchTerm(term)
	list.resetScroll()
	if list.currentPage == 1 {
		return PageRequest{}, false
	}
	list.currentPage = 1
	return list.begin(), true
}

// ApplyResult records the outcome of request. It returns false and
// changes nothing when request has been superseded by a later one.
func (list *List) ApplyResult(request PageRequest, page catalog.Page, err error) bool {
	if request.Generation != list.generation {
		return false
	}
	if err != nil {
		list.status = FetchFailed
		list.err = err
		list.items = nil
		return true
	}
	list.status = FetchReady
	list.err = nil
	list.items = page.Items
	// A server may clamp the page size; its count decides lastPage.
	perPage := list.perPage
	if page.PageInfo.PerPage > 0 {
		perPage = page.PageInfo.PerPage
	}
	list.pageInfo = catalog.NewPageInfo(page.PageInfo.Total, list.currentPage, perPage)
	list.havePage = true
	list.cursor = min(list.cursor, max(len(list.FilteredItems())-1, 0))
	return true
}

func (list *List) begin() PageRequest {
	list.generation++
	list.status = FetchLoading
	list.err = nil
	list.items = nil
	return PageRequest{Generation: list.generation, Page: list.currentPage, PerPage: list.perPage}
}

func (list *List) resetScroll() {
	list.cursor = 0
	list.scrollTop = 0
}

// CurrentPage returns the page being shown or loaded.
func (list *List) CurrentPage() int { return list.currentPage }

// PerPage returns the page size requested from the source.
func (list *List) PerPage() int { return list.perPage }

// Status returns the state of the latest fetch.
func (list *List) Status() FetchStatus { return list.status }

// Err returns the failure of the latest fetch, nil unless Status is
// FetchFailed.
func (list *List) Err() error { return list.err }

// PageInfo returns the metadata of the last successful fetch, and
// whether there has been one.
func (list *List) PageInfo() (catalog.PageInfo, bool) { return list.pageInfo, list.havePage }

// HasNext reports whether a later page exists, per the last
// successful fetch.
func (list *List) HasNext() bool {
	return list.havePage && list.currentPage < list.pageInfo.LastPage
}

// HasPrev reports whether an earlier page exists.
func (list *List) HasPrev() bool { return list.currentPage > 1 }

// LastPage returns the last page number, or the current page when no
// fetch has succeeded yet.
func (list *List) LastPage() int {
	if !list.havePage {
		return list.currentPage
	}
	return max(list.pageInfo.LastPage, list.currentPage)
}

// Items returns the unfiltered rows of the loaded page. Nil unless
// Status is FetchReady.
func (list *List) Items() []catalog.Item { return list.items }

// SearchTerm returns the store's current search term.
func (list *List) SearchTerm() string { return list.store.GetState().SearchTerm }

// FilteredItems returns the loaded rows whose name contains the search
// term. Nil unless Status is FetchReady.
func (list *List) FilteredItems() []catalog.Item {
	if list.status != FetchReady {
		return nil
	}
	return FilterItems(list.items, list.SearchTerm())
}

// EmptyMatch reports the "no match" state: the page loaded but nothing
// on it matches the search term. An empty page with no search term is
// also an empty match.
func (list *List) EmptyMatch() bool {
	return list.status == FetchReady && len(list.FilteredItems()) == 0
}

// Controls lays out the pagination bar for the current position.
func (list *List) Controls() []PageControl {
	return PaginationControls(list.currentPage, list.LastPage(), list.HasPrev(), list.HasNext())
}

// Cursor returns the index of the highlighted row within FilteredItems.
func (list *List) Cursor() int { return list.cursor }

// ScrollTop returns the index of the first visible row.
func (list *List) ScrollTop() int { return list.scrollTop }

// MoveCursor shifts the cursor by delta, clamped to the filtered rows.
func (list *List) MoveCursor(delta int) {
	count := len(list.FilteredItems())
	if count == 0 {
		list.cursor = 0
		return
	}
	list.cursor = min(max(list.cursor+delta, 0), count-1)
}

// EnsureVisible adjusts the scroll position so the cursor row falls
// within a viewport of height rows.
func (list *List) EnsureVisible(height int) {
	if height < 1 {
		return
	}
	if list.cursor < list.scrollTop {
		list.scrollTop = list.cursor
	}
	if list.cursor >= list.scrollTop+height {
		list.scrollTop = list.cursor - height + 1
	}
	list.scrollTop = max(list.scrollTop, 0)
}

// Selected returns the row under the cursor.
func (list *List) Selected() (catalog.Item, bool) {
	rows := list.FilteredItems()
	if list.cursor < 0 || list.cursor >= len(rows) {
		return catalog.Item{}, false
	}
	return rows[list.cursor], true
}

// FilterItems keeps, in order, the items whose name contains term,
// ignoring case.
func FilterItems(items []catalog.Item, term string) []catalog.Item {
	filtered := make([]catalog.Item, 0, len(items))
	for _, item := range items {
		if item.MatchesName(term) {
			filtered = append(filtered, item)
		}
	}
	return filtered
}
