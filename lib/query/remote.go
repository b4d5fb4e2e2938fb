// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package query

import (
	"context"

	"github.com/bureau-foundation/pokedex/lib/catalog"
	"github.com/bureau-foundation/pokedex/lib/graphql"
)

// RemoteSource is a Source backed by a GraphQL endpoint.
type RemoteSource struct {
	client *graphql.Client
}

// NewRemoteSource returns a Source that queries client.
func NewRemoteSource(client *graphql.Client) *RemoteSource {
	return &RemoteSource{client: client}
}

// ListPage runs GetPokemonsPage. The returned PageInfo is recomputed
// from the server's total; the requested page and page size fill in
// any value the server omitted.
func (source *RemoteSource) ListPage(ctx context.Context, page, perPage int) (catalog.Page, error) {
	request, err := ListPage.Request(map[string]any{"page": page, "perPage": perPage})
	if err != nil {
		return catalog.Page{}, err
	}
	var response ListPageResponse
	if err := source.client.Do(ctx, request, &response); err != nil {
		return catalog.Page{}, err
	}
	if response.PokemonsPage == nil {
		return catalog.Page{}, &graphql.GraphQLError{
			OperationName: ListPage.OperationName,
			Errors:        []graphql.ResponseError{{Message: "pokemonsPage missing from response"}},
		}
	}

	items := response.PokemonsPage.Items
	if items == nil {
		items = []catalog.Item{}
	}
	return catalog.Page{
		Items:    items,
		PageInfo: response.PokemonsPage.PageInfo.Resolve(page, perPage),
	}, nil
}

// ItemByID runs GetPokemonById.
func (source *RemoteSource) ItemByID(ctx context.Context, id int) (*catalog.Item, error) {
	request, err := ItemByID.Request(map[string]any{"pokemonId": id})
	if err != nil {
		return nil, err
	}
	var response ItemByIDResponse
	if err := source.client.Do(ctx, request, &response); err != nil {
		return nil, err
	}
	return response.PokemonByID, nil
}

// ItemByName runs GetPokemonByName.
func (source *RemoteSource) ItemByName(ctx context.Context, name string) (*catalog.Item, error) {
	request, err := ItemByName.Request(map[string]any{"name": name})
	if err != nil {
		return nil, err
	}
	var response ItemByNameResponse
	if err := source.client.Do(ctx, request, &response); err != nil {
		return nil, err
	}
	return response.PokemonByName, nil
}
