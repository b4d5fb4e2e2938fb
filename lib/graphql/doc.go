// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package graphql is a minimal GraphQL-over-HTTP client.
//
// A request is a single POST to the configured endpoint with the JSON
// body {"query", "operationName", "variables"}. The response envelope
// is {"data": ...} on success or {"errors": [...]} on failure.
//
// Failures fall into two typed categories:
//
//   - [NetworkError]: the request never produced a usable GraphQL
//     envelope. Connection failures, timeouts, cancelled contexts and
//     non-2xx responses without an errors body all land here.
//   - [GraphQLError]: the server answered with an errors list, or with
//     an envelope that carried no data.
//
// Callers classify with [IsNetwork] and [IsGraphQL]. Neither category
// is retried by the client.
package graphql
