// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package snapshot stores a full copy of the catalog in a single file
// so the browser can run without the GraphQL server.
//
// # File format
//
// A snapshot is a fixed 44-byte header followed by the body:
//
//	offset  size  field
//	0       4     magic "PKDX"
//	4       1     format version (1)
//	5       1     compression tag (0 none, 1 lz4, 2 zstd)
//	6       2     reserved, zero
//	8       4     uncompressed body size, big-endian
//	12      32    BLAKE3 keyed digest of the uncompressed body
//	44      ...   body, compressed per the tag
//
// The body is Core Deterministic CBOR, so the same catalog always
// produces the same bytes and the same digest. Items are sorted by id.
// The digest is keyed with a fixed domain string so it cannot be
// confused with a plain BLAKE3 hash of the same bytes.
//
// When compression does not shrink the body, it is stored
// uncompressed and the tag records that.
//
// # Serving
//
// [Source] implements query.Source over a loaded snapshot with the
// same pagination the server applies. [Watch] reloads the file into a
// Source when it is replaced on disk, using inotify.
package snapshot
