// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package store

import (
	"sync"

	"github.com/bureau-foundation/pokedex/lib/catalog"
)

// State is a snapshot of the store.
type State struct {
	// SelectedItem is a cache hint for the detail view: the item the
	// user last opened or the last detail fetch produced. Nil when
	// nothing is selected.
	SelectedItem *catalog.Item

	// SearchTerm narrows the list view's current page.
	SearchTerm string
}

// Listener receives the full state after every change.
type Listener func(State)

type subscription struct {
	id       uint64
	listener Listener
}

// Store holds State and notifies subscribers of changes.
type Store struct {
	mu            sync.Mutex
	state         State
	subscriptions []subscription
	nextID        uint64
}

// New returns an empty store: nothing selected, empty search term.
func New() *Store {
	return &Store{}
}

// GetState returns the current state.
func (store *Store) GetState() State {
	store.mu.Lock()
	defer store.mu.Unlock()
	return store.state
}

// SetSelectedItem replaces the selected item. Nil is accepted and is
// equivalent to ClearSelectedItem.
func (store *Store) SetSelectedItem(item *catalog.Item) {
	store.update(func(state *State) { state.SelectedItem = item })
}

// ClearSelectedItem removes the selection.
func (store *Store) ClearSelectedItem() {
	store.update(func(state *State) { state.SelectedItem = nil })
}

// SetSearchTerm replaces the search term.
func (store *Store) SetSearchTerm(term string) {
	store.update(func(state *State) { state.SearchTerm = term })
}

// ClearSearchTerm empties the search term.
func (store *Store) ClearSearchTerm() {
	store.update(func(state *State) { state.SearchTerm = "" })
}

// Reset returns every field to its zero value.
func (store *Store) Reset() {
	store.update(func(state *State) { *state = State{} })
}

// Subscribe registers listener and returns a function that removes it.
// Calling the returned function more than once is harmless.
func (store *Store) Subscribe(listener Listener) (unsubscribe func()) {
	store.mu.Lock()
	store.nextID++
	id := store.nextID
	store.subscriptions = append(store.subscriptions, subscription{id: id, listener: listener})
	store.mu.Unlock()

	return func() {
		store.mu.Lock()
		defer store.mu.Unlock()
		for index, existing := range store.subscriptions {
			if existing.id == id {
				store.subscriptions = append(store.subscriptions[:index:index], store.subscriptions[index+1:]...)
				return
			}
		}
	}
}

// update applies mutate under the lock, then notifies subscribers
// outside it so a listener may read or write the store.
func (store *Store) update(mutate func(*State)) {
	store.mu.Lock()
	mutate(&store.state)
	state := store.state
	listeners := make([]Listener, len(store.subscriptions))
	for index, existing := range store.subscriptions {
		listeners[index] = existing.listener
	}
	store.mu.Unlock()

	for _, listener := range listeners {
		listener(state)
	}
}
