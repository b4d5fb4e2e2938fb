// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package catalogui

import (
	"strings"

	"github.com/bureau-foundation/pokedex/lib/catalog"
	"github.com/bureau-foundation/pokedex/lib/viewstate"
)

// RouteKind identifies which screen a route shows.
type RouteKind int

const (
	RouteList RouteKind = iota
	RouteDetail
	RouteAbout
	RouteNotFound
)

func (kind RouteKind) String() string {
	switch kind {
	case RouteList:
		return "list"
	case RouteDetail:
		return "detail"
	case RouteAbout:
		return "about"
	case RouteNotFound:
		return "not-found"
	}
	return "unknown"
}

// Route is a parsed browser location.
type Route struct {
	Kind RouteKind

	// Path is the location as given, for display on the not-found
	// screen.
	Path string

	// Key names the item for RouteDetail.
	Key viewstate.DetailKey
}

const detailPrefix = "/pokemon/"

// ParseRoute maps a path to a route. A single trailing slash is
// ignored. "/pokemon/<param>" is a detail route when param is a
// positive id or a name; a zero or negative id is not found.
func ParseRoute(path string) Route {
	trimmed := strings.TrimSpace(path)
	if len(trimmed) > 1 {
		trimmed = strings.TrimSuffix(trimmed, "/")
	}
	switch {
	case trimmed == "" || trimmed == "/":
		return Route{Kind: RouteList, Path: "/"}
	case trimmed == "/about":
		return Route{Kind: RouteAbout, Path: trimmed}
	case strings.HasPrefix(trimmed, detailPrefix):
		parameter := strings.TrimPrefix(trimmed, detailPrefix)
		if strings.Contains(parameter, "/") {
			break
		}
		if key, ok := viewstate.ParseDetailKey(parameter); ok {
			return Route{Kind: RouteDetail, Path: trimmed, Key: key}
		}
	}
	return Route{Kind: RouteNotFound, Path: path}
}

// DetailRoute is the route of item's detail screen.
func DetailRoute(item catalog.Item) Route {
	key := viewstate.DetailKey{ID: item.ID}
	return Route{Kind: RouteDetail, Path: detailPrefix + key.String(), Key: key}
}

func (route Route) String() string { return route.Path }
