// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package testutil holds channel helpers shared by tests that observe
// asynchronous work (snapshot reloads, log forwarding). They are the
// only place tests wait on a wall-clock timeout, and they fail the test
// instead of hanging it.
package testutil
