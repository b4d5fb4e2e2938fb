// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package clock provides an injectable time source.
//
// Code that stamps or measures time (request latency in the GraphQL
// client, creation time of a snapshot) takes a Clock instead of
// calling time.Now directly. Production wiring uses Real(); tests use
// Fake() and move time forward explicitly with Advance.
package clock
