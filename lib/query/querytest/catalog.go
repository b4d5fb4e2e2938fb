// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package querytest

import (
	"context"
	"strconv"
	"strings"

	"github.com/bureau-foundation/pokedex/lib/catalog"
	"github.com/bureau-foundation/pokedex/lib/query"
)

// Catalog is an in-memory query.Source over a fixed item list.
type Catalog struct {
	Items []catalog.Item
}

func (fixture *Catalog) ListPage(ctx context.Context, page, perPage int) (catalog.Page, error) {
	return query.Paginate(fixture.Items, page, perPage), nil
}

func (fixture *Catalog) ItemByID(ctx context.Context, id int) (*catalog.Item, error) {
	for index := range fixture.Items {
		if fixture.Items[index].ID == id {
			item := fixture.Items[index]
			return &item, nil
		}
	}
	return nil, nil
}

func (fixture *Catalog) ItemByName(ctx context.Context, name string) (*catalog.Item, error) {
	for index := range fixture.Items {
		if strings.EqualFold(fixture.Items[index].Name, name) {
			item := fixture.Items[index]
			return &item, nil
		}
	}
	return nil, nil
}

// Starters is a small fixture: the first nine entries of the national
// dex, enough for three pages of three.
func Starters() []catalog.Item {
	grass := catalog.Type{ID: 12, Name: "grass"}
	poison := catalog.Type{ID: 4, Name: "poison"}
	fire := catalog.Type{ID: 10, Name: "fire"}
	flying := catalog.Type{ID: 3, Name: "flying"}
	water := catalog.Type{ID: 11, Name: "water"}
	entry := func(id int, name string, height, weight int, types ...catalog.Type) catalog.Item {
		return catalog.Item{
			ID:       id,
			Name:     name,
			ImageURL: "https://raw.githubusercontent.com/PokeAPI/sprites/master/sprites/pokemon/other/official-artwork/" + strconv.Itoa(id) + ".png",
			Types:    types,
			Height:   height,
			Weight:   weight,
		}
	}
	items := []catalog.Item{
		entry(1, "bulbasaur", 7, 69, grass, poison),
		entry(2, "ivysaur", 10, 130, grass, poison),
		entry(3, "venusaur", 20, 1000, grass, poison),
		entry(4, "charmander", 6, 85, fire),
		entry(5, "charmeleon", 11, 190, fire),
		entry(6, "charizard", 17, 905, fire, flying),
		entry(7, "squirtle", 5, 90, water),
		entry(8, "wartortle", 10, 225, water),
		entry(9, "blastoise", 16, 855, water),
	}
	items[0].Abilities = []string{"overgrow", "chlorophyll"}
	items[0].Cries = "https://raw.githubusercontent.com/PokeAPI/cries/main/cries/pokemon/latest/1.ogg"
	items[3].Abilities = []string{"blaze", "solar-power"}
	items[3].Cries = "https://raw.githubusercontent.com/PokeAPI/cries/main/cries/pokemon/latest/4.ogg"
	return items
}
