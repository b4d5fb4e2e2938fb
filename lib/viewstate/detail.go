// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package viewstate

import (
	"strconv"
	"strings"

	"github.com/bureau-foundation/pokedex/lib/catalog"
	"github.com/bureau-foundation/pokedex/lib/query"
	"github.com/bureau-foundation/pokedex/lib/store"
)

// DetailStatus is the resolution state of a detail view.
type DetailStatus int

const (
	// DetailUsingCache shows the store's selected item without
	// fetching.
	DetailUsingCache DetailStatus = iota
	DetailFetching
	DetailResolved
	DetailNotFound
	DetailError
)

func (status DetailStatus) String() string {
	switch status {
	case DetailUsingCache:
		return "using-cache"
	case DetailFetching:
		return "fetching"
	case DetailResolved:
		return "resolved"
	case DetailNotFound:
		return "not-found"
	case DetailError:
		return "error"
	}
	return "unknown"
}

// DetailKey identifies the requested item: by ID when ID is non-zero,
// otherwise by Name.
type DetailKey struct {
	ID   int
	Name string
}

// ParseDetailKey interprets a route parameter. Positive integers are
// ids; anything else non-empty is a name.
func ParseDetailKey(parameter string) (DetailKey, bool) {
	parameter = strings.TrimSpace(parameter)
	if parameter == "" {
		return DetailKey{}, false
	}
	if id, err := strconv.Atoi(parameter); err == nil {
		if id < 1 {
			return DetailKey{}, false
		}
		return DetailKey{ID: id}, true
	}
	return DetailKey{Name: parameter}, true
}

// ByName reports whether the key looks an item up by name.
func (key DetailKey) ByName() bool { return key.ID == 0 }

// Matches reports whether item is the item key names.
func (key DetailKey) Matches(item *catalog.Item) bool {
	if item == nil {
		return false
	}
	if key.ByName() {
		return key.Name != "" && strings.EqualFold(item.Name, key.Name)
	}
	return item.ID == key.ID
}

func (key DetailKey) String() string {
	if key.ByName() {
		return key.Name
	}
	return strconv.Itoa(key.ID)
}

// DetailRequest asks the caller to fetch the item for Key. Hand it
// back to Resolve with the outcome.
type DetailRequest struct {
	Generation uint64
	Key        DetailKey

	// owner is the Detail that issued the request. Generations restart
	// with every Detail, so they only order requests from one owner.
	owner *Detail
}

// Detail is the detail view state machine. Not safe for concurrent
// use.
type Detail struct {
	store      *store.Store
	key        DetailKey
	status     DetailStatus
	item       *catalog.Item
	err        error
	generation uint64
	pending    bool
}

// NewDetail mounts a detail view for key. When the store's selected
// item is the requested one the view starts in DetailUsingCache and
// needs no fetch; otherwise it starts in DetailFetching and Request
// returns the fetch to run.
func NewDetail(shared *store.Store, key DetailKey) *Detail {
	detail := &Detail{store: shared, key: key}
	if selected := shared.GetState().SelectedItem; key.Matches(selected) {
		detail.status = DetailUsingCache
		detail.item = selected
		return detail
	}
	detail.begin()
	return detail
}

// NeedsFetch reports whether a fetch has been requested and not yet
// resolved.
func (detail *Detail) NeedsFetch() bool { return detail.pending }

// Request returns the outstanding fetch, if any.
func (detail *Detail) Request() (DetailRequest, bool) {
	if !detail.pending {
		return DetailRequest{}, false
	}
	return detail.request(), true
}

// Refresh starts a new fetch regardless of state, superseding any in
// flight. The current item, if any, stays visible until the result
// arrives.
func (detail *Detail) Refresh() DetailRequest {
	detail.begin()
	return detail.request()
}

func (detail *Detail) request() DetailRequest {
	return DetailRequest{Generation: detail.generation, Key: detail.key, owner: detail}
}

func (detail *Detail) begin() {
	detail.generation++
	detail.pending = true
	detail.status = DetailFetching
	detail.err = nil
}

// Resolve applies the outcome of request. A non-nil item is written to
// the store and becomes the displayed item, replacing any cached copy.
// A nil item with nil err means the item does not exist. Returns false
// when request is stale: superseded by a later request, or issued by
// another Detail, including an earlier view of the same key.
func (detail *Detail) Resolve(request DetailRequest, item *catalog.Item, err error) bool {
	if !detail.pending || request.owner != detail || request.Key != detail.key || request.Generation != detail.generation {
		return false
	}
	detail.pending = false
	switch {
	case err != nil:
		detail.status = DetailError
		detail.err = err
		detail.item = nil
	case item == nil:
		detail.status = DetailNotFound
		detail.err = query.ErrNotFound
		detail.item = nil
	default:
		detail.status = DetailResolved
		detail.item = item
		detail.store.SetSelectedItem(item)
	}
	return true
}

// Key returns the requested key.
func (detail *Detail) Key() DetailKey { return detail.key }

// Status returns the resolution state.
func (detail *Detail) Status() DetailStatus { return detail.status }

// Item returns the item to display: the cached item in
// DetailUsingCache, the fetched one in DetailResolved, and during a
// refresh whichever of those was showing. Nil otherwise.
func (detail *Detail) Item() *catalog.Item { return detail.item }

// Err returns the failure in DetailError, query.ErrNotFound in
// DetailNotFound, and nil otherwise.
func (detail *Detail) Err() error { return detail.err }
