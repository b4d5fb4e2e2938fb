// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package query

import (
	"fmt"
	"sort"
	"strings"

	"github.com/bureau-foundation/pokedex/lib/catalog"
	"github.com/bureau-foundation/pokedex/lib/graphql"
)

// Descriptor is a named GraphQL document with its required variables.
type Descriptor struct {
	OperationName string
	Document      string
	Variables     []string
}

// Request builds the wire request, failing if a required variable is
// missing. Variables not declared by the descriptor are passed through.
func (descriptor Descriptor) Request(variables map[string]any) (graphql.Request, error) {
	var missing []string
	for _, name := range descriptor.Variables {
		if _, ok := variables[name]; !ok {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		sort.Strings(missing)
		return graphql.Request{}, fmt.Errorf("query: %s: missing required variables: %s",
			descriptor.OperationName, strings.Join(missing, ", "))
	}
	return graphql.Request{
		Query:         descriptor.Document,
		OperationName: descriptor.OperationName,
		Variables:     variables,
	}, nil
}

const listItemFields = `id
      name
      imageUrl
      types { id name }
      height
      weight`

const detailItemFields = `id
    name
    imageUrl
    types { id name }
    height
    weight
    abilities
    cries`

// ListPage fetches one page of the listing.
var ListPage = Descriptor{
	OperationName: "GetPokemonsPage",
	Variables:     []string{"page", "perPage"},
	Document: `query GetPokemonsPage($page: Int!, $perPage: Int!) {
  pokemonsPage(page: $page, perPage: $perPage) {
    items {
      ` + listItemFields + `
    }
    pageInfo { total page perPage lastPage hasNext hasPrev }
  }
}`,
}

// ItemByID fetches one item by its numeric id.
var ItemByID = Descriptor{
	OperationName: "GetPokemonById",
	Variables:     []string{"pokemonId"},
	Document: `query GetPokemonById($pokemonId: Int!) {
  pokemonById(pokemonId: $pokemonId) {
    ` + detailItemFields + `
  }
}`,
}

// ItemByName fetches one item by its exact name.
var ItemByName = Descriptor{
	OperationName: "GetPokemonByName",
	Variables:     []string{"name"},
	Document: `query GetPokemonByName($name: String!) {
  pokemonByName(name: $name) {
    ` + detailItemFields + `
  }
}`,
}

// ListPageResponse is the data member of a ListPage response.
type ListPageResponse struct {
	PokemonsPage *PageResponse `json:"pokemonsPage"`
}

// PageResponse is the pokemonsPage object.
type PageResponse struct {
	Items    []catalog.Item       `json:"items"`
	PageInfo catalog.WirePageInfo `json:"pageInfo"`
}

// ItemByIDResponse is the data member of an ItemByID response.
type ItemByIDResponse struct {
	PokemonByID *catalog.Item `json:"pokemonById"`
}

// ItemByNameResponse is the data member of an ItemByName response.
type ItemByNameResponse struct {
	PokemonByName *catalog.Item `json:"pokemonByName"`
}
