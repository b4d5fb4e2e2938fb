// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package catalog

import (
	"slices"
	"strings"
)

// Type is one elemental type of an Item ("grass", "poison").
type Type struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// Item is a single catalog entry. ID is the identity; two Items with
// the same ID describe the same Pokémon, possibly fetched at
// different times with different levels of detail.
type Item struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	ImageURL string `json:"imageUrl"`
	Types    []Type `json:"types"`

	// Height and Weight are in decimetres and hectograms, as served.
	Height int `json:"height"`
	Weight int `json:"weight"`

	// Abilities is nil when the fetch that produced this Item did not
	// request abilities (list rows). A non-nil empty slice means the
	// server reported none.
	Abilities []string `json:"abilities,omitempty"`

	// Cries is the URL of the cry audio, empty when unknown.
	Cries string `json:"cries,omitempty"`
}

// HeightMeters converts Height to metres.
func (item Item) HeightMeters() float64 { return float64(item.Height) / 10 }

// WeightKilograms converts Weight to kilograms.
func (item Item) WeightKilograms() float64 { return float64(item.Weight) / 10 }

// TypeNames returns the type names in order.
func (item Item) TypeNames() []string {
	names := make([]string, len(item.Types))
	for index, itemType := range item.Types {
		names[index] = itemType.Name
	}
	return names
}

// HasAbilities reports whether abilities were part of the fetch.
func (item Item) HasAbilities() bool { return item.Abilities != nil }

// MatchesName reports whether the item's name contains term, ignoring
// case. The empty term matches everything.
func (item Item) MatchesName(term string) bool {
	return strings.Contains(strings.ToLower(item.Name), strings.ToLower(term))
}

// Equal reports value equality, including the distinction between
// absent and empty abilities.
func (item Item) Equal(other Item) bool {
	if item.ID != other.ID || item.Name != other.Name || item.ImageURL != other.ImageURL ||
		item.Height != other.Height || item.Weight != other.Weight || item.Cries != other.Cries {
		return false
	}
	if (item.Abilities == nil) != (other.Abilities == nil) {
		return false
	}
	return slices.Equal(item.Types, other.Types) && slices.Equal(item.Abilities, other.Abilities)
}
