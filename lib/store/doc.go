// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package store provides the client-side state container shared by the
// list and detail views: the currently selected item and the search
// term.
//
// A Store is an ordinary value created by the caller and passed to the
// components that need it. There is no package-level instance. Any
// holder may read or write any field; setters accept whatever they are
// given without validation.
//
// Every setter merges its field into the state and then calls each
// subscriber, in subscription order, before returning. Subscribers run
// on the caller's goroutine and must not block. In the TUI all writes
// happen on the bubbletea update loop, so subscribers observe a single
// total order of changes.
package store
