// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package store

import (
	"testing"

	"github.com/bureau-foundation/pokedex/lib/catalog"
)

func pikachu() *catalog.Item {
	return &catalog.Item{
		ID:        25,
		Name:      "pikachu",
		Types:     []catalog.Type{{ID: 13, Name: "electric"}},
		Height:    4,
		Weight:    60,
		Abilities: []string{"static", "lightning-rod"},
	}
}

func TestSelectedItemRoundTrip(t *testing.T) {
	store := New()
	item := pikachu()

	store.SetSelectedItem(item)
	got := store.GetState().SelectedItem
	if got == nil {
		t.Fatal("SelectedItem = nil after SetSelectedItem")
	}
	if !got.Equal(*pikachu()) {
		t.Errorf("SelectedItem = %+v, want %+v", *got, *pikachu())
	}

	store.ClearSelectedItem()
	if got := store.GetState().SelectedItem; got != nil {
		t.Errorf("SelectedItem = %+v after ClearSelectedItem, want nil", *got)
	}
}

func TestSettersMergeSingleField(t *testing.T) {
	store := New()
	store.SetSearchTerm("pika")
	store.SetSelectedItem(pikachu())

	if got := store.GetState().SearchTerm; got != "pika" {
		t.Errorf("SearchTerm = %q after SetSelectedItem, want %q", got, "pika")
	}

	store.ClearSearchTerm()
	state := store.GetState()
	if state.SearchTerm != "" {
		t.Errorf("SearchTerm = %q after ClearSearchTerm, want empty", state.SearchTerm)
	}
	if state.SelectedItem == nil {
		t.Error("ClearSearchTerm cleared the selected item")
	}
}

func TestSettersAcceptAnyValue(t *testing.T) {
	store := New()
	malformed := &catalog.Item{ID: -3}
	store.SetSelectedItem(malformed)
	if store.GetState().SelectedItem != malformed {
		t.Error("malformed item was not stored as given")
	}

	store.SetSearchTerm("  \x00weird ")
	if got := store.GetState().SearchTerm; got != "  \x00weird " {
		t.Errorf("SearchTerm = %q, want it unchanged", got)
	}

	store.SetSelectedItem(nil)
	if store.GetState().SelectedItem != nil {
		t.Error("SetSelectedItem(nil) did not clear the selection")
	}
}

func TestSubscribersNotifiedBeforeSetterReturns(t *testing.T) {
	store := New()
	var seen []string
	store.Subscribe(func(state State) { seen = append(seen, "first:"+state.SearchTerm) })
	store.Subscribe(func(state State) { seen = append(seen, "second:"+state.SearchTerm) })

	store.SetSearchTerm("char")

	if len(seen) != 2 || seen[0] != "first:char" || seen[1] != "second:char" {
		t.Errorf("notifications = %v, want [first:char second:char]", seen)
	}
}

func TestUnsubscribe(t *testing.T) {
	store := New()
	calls := 0
	unsubscribe := store.Subscribe(func(State) { calls++ })

	store.SetSearchTerm("a")
	unsubscribe()
	unsubscribe()
	store.SetSearchTerm("b")

	if calls != 1 {
		t.Errorf("listener called %d times, want 1", calls)
	}
}

func TestListenerMayWriteStore(t *testing.T) {
	store := New()
	store.Subscribe(func(state State) {
		if state.SearchTerm == "reset me" {
			store.ClearSearchTerm()
		}
	})

	store.SetSearchTerm("reset me")
	if got := store.GetState().SearchTerm; got != "" {
		t.Errorf("SearchTerm = %q, want listener's clear to win", got)
	}
}

func TestReset(t *testing.T) {
	store := New()
	store.SetSearchTerm("bulba")
	store.SetSelectedItem(pikachu())

	var last State
	store.Subscribe(func(state State) { last = state })
	store.Reset()

	if state := store.GetState(); state.SearchTerm != "" || state.SelectedItem != nil {
		t.Errorf("state after Reset = %+v, want zero", state)
	}
	if last.SearchTerm != "" || last.SelectedItem != nil {
		t.Errorf("Reset notified %+v, want zero state", last)
	}
}
