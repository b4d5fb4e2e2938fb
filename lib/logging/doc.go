// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package logging builds the slog handlers the pokedex binaries use:
// a stderr logger that is human-readable on a terminal and JSON
// otherwise, a JSON file handler for --log-output, and a fanout that
// sends each record to several handlers.
package logging
