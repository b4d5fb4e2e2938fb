// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package viewstate holds the state machines behind the list and
// detail views, independent of any renderer.
//
// Neither machine performs I/O. When a transition needs data it
// returns a request value carrying a generation token; the caller runs
// the fetch however it likes (a tea.Cmd, a goroutine, inline) and
// hands the result back together with that request. A result whose
// generation is no longer current is discarded, so a slow response for
// an abandoned page can never overwrite a newer one.
//
// # List
//
// [List] owns the current page number, the last fetched page, the
// fetch status and the cursor. The search term lives in the shared
// store.Store; the list reads it to derive the filtered rows. Search
// is a client-side filter over the loaded page only.
//
// # Detail
//
// [Detail] resolves one item through the states UsingCache, Fetching,
// Resolved, NotFound and Error. It starts from the store's selected
// item when that item is the one requested and otherwise asks for a
// fetch. A successful fetch is written back into the store.
//
// # Pagination controls
//
// [PaginationControls] computes the Previous / numbered / ellipsis /
// Next button row from the current and last page.
package viewstate
