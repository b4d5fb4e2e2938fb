// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package version carries build information for the pokedex binaries.
//
// Values are injected at link time:
//
//	go build -ldflags "-X github.com/bureau-foundation/pokedex/lib/version.GitCommit=$(git rev-parse --short HEAD)"
//
// Unstamped builds report "0.1.0-dev (unknown, unknown)".
package version
