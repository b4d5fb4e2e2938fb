// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package snapshot

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/bureau-foundation/pokedex/lib/catalog"
	"github.com/bureau-foundation/pokedex/lib/testutil"
)

func TestSourceListPage(t *testing.T) {
	source := NewSource(fixture(45))

	page, err := source.ListPage(context.Background(), 2, 15)
	if err != nil {
		t.Fatalf("ListPage: %v", err)
	}
	if len(page.Items) != 15 || page.Items[0].ID != 16 {
		t.Errorf("page 2 starts at id %d with %d items, want id 16 with 15", page.Items[0].ID, len(page.Items))
	}
	if want := catalog.NewPageInfo(45, 2, 15); page.PageInfo != want {
		t.Errorf("PageInfo = %+v, want %+v", page.PageInfo, want)
	}
}

func TestSourceLookups(t *testing.T) {
	source := NewSource(fixture(10))
	ctx := context.Background()

	item, err := source.ItemByID(ctx, 7)
	if err != nil || item == nil || item.Name != "pokemon-007" {
		t.Errorf("ItemByID(7) = %+v, %v", item, err)
	}
	missing, err := source.ItemByID(ctx, 11)
	if err != nil || missing != nil {
		t.Errorf("ItemByID(11) = %+v, %v; want nil, nil", missing, err)
	}
	named, err := source.ItemByName(ctx, "POKEMON-003")
	if err != nil || named == nil || named.ID != 3 {
		t.Errorf("ItemByName = %+v, %v; want id 3", named, err)
	}
	if absent, _ := source.ItemByName(ctx, "missingno"); absent != nil {
		t.Errorf("ItemByName(missingno) = %+v, want nil", absent)
	}

	// Returned items are copies.
	item.Name = "changed"
	again, _ := source.ItemByID(ctx, 7)
	if again.Name != "pokemon-007" {
		t.Error("mutating a returned item changed the source")
	}
}

func TestSourceHonoursCancelledContext(t *testing.T) {
	source := NewSource(fixture(3))
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := source.ListPage(ctx, 1, 10); err == nil {
		t.Error("ListPage succeeded with a cancelled context")
	}
}

func TestSourceReplaceSignalsSubscribers(t *testing.T) {
	source := NewSource(fixture(3))
	changes := source.Subscribe()

	source.Replace(fixture(5))
	source.Replace(fixture(6))

	testutil.RequireReceive(t, changes, time.Second, "waiting for replace signal")
	testutil.RequireNoReceive(t, changes, 20*time.Millisecond, "bursts should coalesce")
	if source.Len() != 6 {
		t.Errorf("Len = %d, want 6", source.Len())
	}
}

func TestOpen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.pkdx")
	if _, err := WriteFile(path, fixture(12), CompressionLZ4); err != nil {
		t.Fatal(err)
	}
	source, err := Open(path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if source.Len() != 12 || source.Endpoint() != "http://localhost:8000/graphql" {
		t.Errorf("Len = %d Endpoint = %q", source.Len(), source.Endpoint())
	}
	if !source.CreatedAt().Equal(fixture(1).CreatedAt) {
		t.Errorf("CreatedAt = %v", source.CreatedAt())
	}
}
