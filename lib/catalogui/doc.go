// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package catalogui provides a bubbletea terminal browser for a
// Pokémon catalog.
//
// The browser has four routes: the paginated list ("/"), an item
// detail ("/pokemon/<id or name>"), a static about page ("/about"),
// and a not-found page for anything else. All fetching goes through a
// [query.Source]; list and detail state live in [viewstate.List] and
// [viewstate.Detail], so the model itself only turns key presses into
// state transitions and runs the fetches those transitions request.
// Fetch results come back as messages carrying the request they
// answer, and the state machines discard any that have been
// superseded.
//
// The selected item and search term are kept in a [store.Store] shared
// with the rest of the process. Opening a row writes it into the store
// before navigating, which lets the detail view render it without a
// round trip.
//
// When the source is a watched snapshot, pass its update channel in
// [Config].Updates and the list refreshes whenever the file is
// replaced.
package catalogui
