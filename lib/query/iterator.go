// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package query

import (
	"context"

	"github.com/bureau-foundation/pokedex/lib/catalog"
)

// PageIterator walks a Source page by page, following hasNext. Returns
// nil, nil from Next once the last page has been consumed.
//
// Not safe for concurrent use.
type PageIterator struct {
	source   Source
	perPage  int
	nextPage int
	done     bool
	last     catalog.PageInfo
}

// NewPageIterator starts at page 1 with the given page size.
func NewPageIterator(source Source, perPage int) *PageIterator {
	return &PageIterator{source: source, perPage: max(perPage, 1), nextPage: 1}
}

// Next fetches the next page and returns its items.
func (iterator *PageIterator) Next(ctx context.Context) ([]catalog.Item, error) {
	if iterator.done {
		return nil, nil
	}
	page, err := iterator.source.ListPage(ctx, iterator.nextPage, iterator.perPage)
	if err != nil {
		return nil, err
	}
	iterator.last = page.PageInfo
	// An empty page ends the walk even if the server claims more, so a
	// miscounted total cannot loop forever.
	if !page.PageInfo.HasNext || len(page.Items) == 0 {
		iterator.done = true
	}
	iterator.nextPage++
	return page.Items, nil
}

// PageInfo returns the metadata of the most recently fetched page.
func (iterator *PageIterator) PageInfo() catalog.PageInfo { return iterator.last }

// Collect fetches all remaining pages and concatenates their items.
// On error the items gathered so far are returned with it.
func (iterator *PageIterator) Collect(ctx context.Context) ([]catalog.Item, error) {
	var all []catalog.Item
	for !iterator.done {
		items, err := iterator.Next(ctx)
		if err != nil {
			return all, err
		}
		all = append(all, items...)
	}
	return all, nil
}
