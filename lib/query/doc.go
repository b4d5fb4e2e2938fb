// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package query declares the catalog's GraphQL operations and the
// Source interface the views fetch through.
//
// The descriptors are pure declarations: a document, an operation name
// and the variables the document requires. There is one canonical
// response shape per operation:
//
//	GetPokemonsPage  { pokemonsPage { items [Item] pageInfo PageInfo } }
//	GetPokemonById   { pokemonById Item|null }
//	GetPokemonByName { pokemonByName Item|null }
//
// [RemoteSource] implements [Source] against a GraphQL endpoint.
// Other implementations (the offline snapshot, test fakes) satisfy the
// same contract: pages carry authoritative PageInfo, and a lookup for
// an item that does not exist returns (nil, nil) rather than an error.
package query
