// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package snapshot

import (
	"context"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/bureau-foundation/pokedex/lib/catalog"
	"github.com/bureau-foundation/pokedex/lib/query"
)

// Source serves a snapshot as a query.Source. Safe for concurrent
// use: Replace may run on the watcher goroutine while the UI reads.
type Source struct {
	mu        sync.RWMutex
	items     []catalog.Item
	byID      map[int]int
	createdAt time.Time
	endpoint  string

	subscribersMu sync.Mutex
	subscribers   []chan struct{}
}

var _ query.Source = (*Source)(nil)

// NewSource serves snapshot.
func NewSource(snapshot Snapshot) *Source {
	source := &Source{}
	source.load(snapshot)
	return source
}

// Open reads the snapshot at path and serves it.
func Open(path string) (*Source, error) {
	snapshot, err := ReadFile(path)
	if err != nil {
		return nil, err
	}
	return NewSource(snapshot), nil
}

func (source *Source) load(snapshot Snapshot) {
	items := slices.Clone(snapshot.Items)
	slices.SortStableFunc(items, func(a, b catalog.Item) int { return a.ID - b.ID })
	byID := make(map[int]int, len(items))
	for index, item := range items {
		byID[item.ID] = index
	}

	source.mu.Lock()
	source.items = items
	source.byID = byID
	source.createdAt = snapshot.CreatedAt
	source.endpoint = snapshot.Endpoint
	source.mu.Unlock()
}

// Replace swaps in a new snapshot and signals subscribers.
func (source *Source) Replace(snapshot Snapshot) {
	source.load(snapshot)

	source.subscribersMu.Lock()
	defer source.subscribersMu.Unlock()
	for _, channel := range source.subscribers {
		// Capacity 1: a pending signal already covers this change.
		select {
		case channel <- struct{}{}:
		default:
		}
	}
}

// Subscribe returns a channel that receives a value after each
// Replace. Bursts of replacements coalesce into one signal.
func (source *Source) Subscribe() <-chan struct{} {
	channel := make(chan struct{}, 1)
	source.subscribersMu.Lock()
	source.subscribers = append(source.subscribers, channel)
	source.subscribersMu.Unlock()
	return channel
}

// Len returns the number of items.
func (source *Source) Len() int {
	source.mu.RLock()
	defer source.mu.RUnlock()
	return len(source.items)
}

// CreatedAt returns when the served snapshot was exported.
func (source *Source) CreatedAt() time.Time {
	source.mu.RLock()
	defer source.mu.RUnlock()
	return source.createdAt
}

// Endpoint returns the endpoint the served snapshot was exported from.
func (source *Source) Endpoint() string {
	source.mu.RLock()
	defer source.mu.RUnlock()
	return source.endpoint
}

func (source *Source) ListPage(ctx context.Context, page, perPage int) (catalog.Page, error) {
	if err := ctx.Err(); err != nil {
		return catalog.Page{}, err
	}
	source.mu.RLock()
	defer source.mu.RUnlock()
	return query.Paginate(source.items, page, perPage), nil
}

func (source *Source) ItemByID(ctx context.Context, id int) (*catalog.Item, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	source.mu.RLock()
	defer source.mu.RUnlock()
	index, ok := source.byID[id]
	if !ok {
		return nil, nil
	}
	item := source.items[index]
	return &item, nil
}

func (source *Source) ItemByName(ctx context.Context, name string) (*catalog.Item, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	source.mu.RLock()
	defer source.mu.RUnlock()
	for _, item := range source.items {
		if strings.EqualFold(item.Name, name) {
			return &item, nil
		}
	}
	return nil, nil
}
