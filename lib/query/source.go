// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package query

import (
	"context"
	"errors"
	"fmt"

	"github.com/bureau-foundation/pokedex/lib/catalog"
	"github.com/bureau-foundation/pokedex/lib/graphql"
)

// Source provides catalog data to the views.
type Source interface {
	// ListPage returns the 1-based page of the listing at the given
	// page size.
	ListPage(ctx context.Context, page, perPage int) (catalog.Page, error)

	// ItemByID returns the item with id, or (nil, nil) if none exists.
	ItemByID(ctx context.Context, id int) (*catalog.Item, error)

	// ItemByName returns the item named name, or (nil, nil) if none
	// exists.
	ItemByName(ctx context.Context, name string) (*catalog.Item, error)
}

// ErrNotFound marks a lookup that succeeded but found nothing. Sources
// return (nil, nil) for that case; callers that need an error value to
// report it use ErrNotFound.
var ErrNotFound = errors.New("not found")

// IsNotFound reports whether err is or wraps ErrNotFound.
func IsNotFound(err error) bool { return errors.Is(err, ErrNotFound) }

// Describe renders err as the message shown to the user.
func Describe(err error) string {
	var graphQLError *graphql.GraphQLError
	var networkError *graphql.NetworkError
	switch {
	case err == nil:
		return ""
	case IsNotFound(err):
		return "Pokémon not found"
	case errors.As(err, &graphQLError):
		return "Query failed: " + joinMessages(graphQLError.Messages())
	case errors.As(err, &networkError):
		if errors.Is(err, context.DeadlineExceeded) {
			return "Network error: request timed out"
		}
		if networkError.StatusCode != 0 {
			return fmt.Sprintf("Network error: server responded %d", networkError.StatusCode)
		}
		return fmt.Sprintf("Network error: %v", networkError.Err)
	default:
		return err.Error()
	}
}

func joinMessages(messages []string) string {
	switch len(messages) {
	case 0:
		return "unknown error"
	case 1:
		return messages[0]
	}
	return fmt.Sprintf("%s (and %d more)", messages[0], len(messages)-1)
}

// Paginate cuts the 1-based page out of items the way the server does,
// for Sources that hold the whole catalog in memory. A page past the
// end is empty but still carries PageInfo.
func Paginate(items []catalog.Item, page, perPage int) catalog.Page {
	info := catalog.NewPageInfo(len(items), page, perPage)
	// A page past the end is checked before multiplying, which would
	// overflow for very large page numbers.
	if len(items) == 0 || info.Page > info.LastPage {
		return catalog.Page{Items: []catalog.Item{}, PageInfo: info}
	}
	start := (info.Page - 1) * info.PerPage
	end := start + min(info.PerPage, len(items)-start)
	pageItems := make([]catalog.Item, end-start)
	copy(pageItems, items[start:end])
	return catalog.Page{Items: pageItems, PageInfo: info}
}
