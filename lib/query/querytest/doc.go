// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package querytest runs an in-process GraphQL endpoint that answers
// the catalog operations from a query.Source. Tests point a real
// graphql.Client at it to exercise the full request path, inject
// errors per operation, and count how many requests each operation
// received.
package querytest
