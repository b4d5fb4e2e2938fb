// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package catalog defines the records the browser works with: an Item
// (one Pokémon), the PageInfo metadata that accompanies a page of
// items, and the Page pairing the two.
//
// Items are immutable once fetched. A refetch produces a new Item that
// replaces the old one wholesale; nothing in the module mutates an
// Item in place.
//
// PageInfo is always derived from the authoritative total and page
// size. The derived fields a server reports (lastPage, hasNext,
// hasPrev) are recomputed on decode, so a server that guesses "a full
// page means there is more" cannot leak that guess into the view.
package catalog
