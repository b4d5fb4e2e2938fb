// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package tui holds the terminal look shared by the pokedex views: the
// color theme (including one color per elemental type) and small
// rendering helpers such as the scrollbar and type badges.
package tui
