// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package sprite turns item artwork into terminal text.
//
// Each output cell is the glyph "▀" with its foreground set to the
// upper pixel and its background to the lower pixel, so an image of W
// by H pixels renders as W columns and ceil(H/2) rows. Transparent
// pixels leave the terminal background showing.
//
// [Loader] fetches artwork over HTTP, scales it to a fixed width and
// caches the rendered text per URL. Artwork is decoration: callers
// treat a failed load as "no art" rather than as an error state.
package sprite
