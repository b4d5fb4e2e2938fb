// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package snapshot

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"time"

	"github.com/fxamacker/cbor/v2"
	"github.com/zeebo/blake3"

	"github.com/bureau-foundation/pokedex/lib/catalog"
)

const (
	magic         = "PKDX"
	formatVersion = 1
	headerSize    = 44

	// maxBodySize bounds the uncompressed body. The full national dex
	// encodes to well under a megabyte.
	maxBodySize = 64 << 20
)

// digestKey domain-separates the body digest.
var digestKey = [32]byte{
	'p', 'o', 'k', 'e', 'd', 'e', 'x', '.', 's', 'n', 'a', 'p', 's', 'h', 'o', 't',
	'.', 'b', 'o', 'd', 'y', 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
}

// Digest is the keyed BLAKE3 digest of a snapshot body.
type Digest [32]byte

func (digest Digest) String() string { return fmt.Sprintf("%x", digest[:]) }

func digestOf(body []byte) Digest {
	hasher, err := blake3.NewKeyed(digestKey[:])
	if err != nil {
		panic("snapshot: BLAKE3 keyed hash initialization failed: " + err.Error())
	}
	hasher.Write(body)
	var digest Digest
	copy(digest[:], hasher.Sum(nil))
	return digest
}

// ErrCorrupt is wrapped by every error that reports a malformed or
// tampered snapshot.
var ErrCorrupt = errors.New("snapshot: corrupt file")

// Snapshot is a full copy of the catalog.
type Snapshot struct {
	CreatedAt time.Time

	// Endpoint records where the catalog was exported from.
	Endpoint string

	Items []catalog.Item
}

type body struct {
	CreatedAt int64        `cbor:"1,keyasint"`
	Endpoint  string       `cbor:"2,keyasint,omitempty"`
	Items     []itemRecord `cbor:"3,keyasint"`
}

// itemRecord mirrors catalog.Item with compact integer keys. Abilities
// has no omitempty so nil (not fetched) and empty survive the round
// trip as CBOR null and an empty array.
type itemRecord struct {
	ID        int          `cbor:"1,keyasint"`
	Name      string       `cbor:"2,keyasint"`
	ImageURL  string       `cbor:"3,keyasint,omitempty"`
	Types     []typeRecord `cbor:"4,keyasint"`
	Height    int          `cbor:"5,keyasint"`
	Weight    int          `cbor:"6,keyasint"`
	Abilities []string     `cbor:"7,keyasint"`
	Cries     string       `cbor:"8,keyasint,omitempty"`
}

type typeRecord struct {
	ID   int    `cbor:"1,keyasint"`
	Name string `cbor:"2,keyasint"`
}

var (
	encMode cbor.EncMode
	decMode cbor.DecMode
)

func init() {
	var err error
	encMode, err = cbor.CoreDetEncOptions().EncMode()
	if err != nil {
		panic("snapshot: CBOR encoder initialization failed: " + err.Error())
	}
	decMode, err = cbor.DecOptions{
		MaxArrayElements: 1 << 20,
	}.DecMode()
	if err != nil {
		panic("snapshot: CBOR decoder initialization failed: " + err.Error())
	}
}

func toRecord(item catalog.Item) itemRecord {
	types := make([]typeRecord, len(item.Types))
	for index, itemType := range item.Types {
		types[index] = typeRecord{ID: itemType.ID, Name: itemType.Name}
	}
	return itemRecord{
		ID:        item.ID,
		Name:      item.Name,
		ImageURL:  item.ImageURL,
		Types:     types,
		Height:    item.Height,
		Weight:    item.Weight,
		Abilities: item.Abilities,
		Cries:     item.Cries,
	}
}

func (record itemRecord) item() catalog.Item {
	types := make([]catalog.Type, len(record.Types))
	for index, itemType := range record.Types {
		types[index] = catalog.Type{ID: itemType.ID, Name: itemType.Name}
	}
	return catalog.Item{
		ID:        record.ID,
		Name:      record.Name,
		ImageURL:  record.ImageURL,
		Types:     types,
		Height:    record.Height,
		Weight:    record.Weight,
		Abilities: record.Abilities,
		Cries:     record.Cries,
	}
}

// Encode writes snapshot to writer. Items are written sorted by id;
// duplicate ids are rejected.
func Encode(writer io.Writer, snapshot Snapshot, compression Compression) (Digest, error) {
	items := slices.Clone(snapshot.Items)
	slices.SortStableFunc(items, func(a, b catalog.Item) int { return a.ID - b.ID })
	records := make([]itemRecord, len(items))
	for index, item := range items {
		if index > 0 && items[index-1].ID == item.ID {
			return Digest{}, fmt.Errorf("snapshot: duplicate item id %d", item.ID)
		}
		records[index] = toRecord(item)
	}

	encoded, err := encMode.Marshal(body{
		CreatedAt: snapshot.CreatedAt.UnixMilli(),
		Endpoint:  snapshot.Endpoint,
		Items:     records,
	})
	if err != nil {
		return Digest{}, fmt.Errorf("snapshot: encoding body: %w", err)
	}
	if len(encoded) > maxBodySize {
		return Digest{}, fmt.Errorf("snapshot: body of %d bytes exceeds limit %d", len(encoded), maxBodySize)
	}

	payload, tag, err := compress(encoded, compression)
	if err != nil {
		return Digest{}, fmt.Errorf("snapshot: %w", err)
	}

	digest := digestOf(encoded)
	var header [headerSize]byte
	copy(header[0:4], magic)
	header[4] = formatVersion
	header[5] = byte(tag)
	binary.BigEndian.PutUint32(header[8:12], uint32(len(encoded)))
	copy(header[12:44], digest[:])

	if _, err := writer.Write(header[:]); err != nil {
		return Digest{}, fmt.Errorf("snapshot: writing header: %w", err)
	}
	if _, err := writer.Write(payload); err != nil {
		return Digest{}, fmt.Errorf("snapshot: writing body: %w", err)
	}
	return digest, nil
}

// Decode reads a snapshot, verifying its header and digest.
func Decode(reader io.Reader) (Snapshot, error) {
	var header [headerSize]byte
	if _, err := io.ReadFull(reader, header[:]); err != nil {
		return Snapshot{}, fmt.Errorf("%w: reading header: %v", ErrCorrupt, err)
	}
	if string(header[0:4]) != magic {
		return Snapshot{}, fmt.Errorf("%w: bad magic %q", ErrCorrupt, header[0:4])
	}
	if header[4] != formatVersion {
		return Snapshot{}, fmt.Errorf("snapshot: unsupported format version %d", header[4])
	}
	size := binary.BigEndian.Uint32(header[8:12])
	if size > maxBodySize {
		return Snapshot{}, fmt.Errorf("%w: body size %d exceeds limit", ErrCorrupt, size)
	}
	var expected Digest
	copy(expected[:], header[12:44])

	payload, err := io.ReadAll(io.LimitReader(reader, maxBodySize+1))
	if err != nil {
		return Snapshot{}, fmt.Errorf("snapshot: reading body: %w", err)
	}
	encoded, err := decompress(payload, Compression(header[5]), int(size))
	if err != nil {
		return Snapshot{}, fmt.Errorf("%w: %v", ErrCorrupt, err)
	}
	if actual := digestOf(encoded); actual != expected {
		return Snapshot{}, fmt.Errorf("%w: digest mismatch (header %s, body %s)", ErrCorrupt, expected, actual)
	}

	var decoded body
	if err := decMode.Unmarshal(encoded, &decoded); err != nil {
		return Snapshot{}, fmt.Errorf("%w: decoding body: %v", ErrCorrupt, err)
	}
	items := make([]catalog.Item, len(decoded.Items))
	for index, record := range decoded.Items {
		items[index] = record.item()
	}
	return Snapshot{
		CreatedAt: time.UnixMilli(decoded.CreatedAt).UTC(),
		Endpoint:  decoded.Endpoint,
		Items:     items,
	}, nil
}

// WriteFile writes snapshot to path atomically: a reader (or a
// watcher) sees either the previous file or the complete new one.
func WriteFile(path string, snapshot Snapshot, compression Compression) (Digest, error) {
	var buffer bytes.Buffer
	digest, err := Encode(&buffer, snapshot, compression)
	if err != nil {
		return Digest{}, err
	}

	temporary, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*")
	if err != nil {
		return Digest{}, fmt.Errorf("snapshot: %w", err)
	}
	temporaryPath := temporary.Name()
	defer os.Remove(temporaryPath)

	if _, err := temporary.Write(buffer.Bytes()); err != nil {
		temporary.Close()
		return Digest{}, fmt.Errorf("snapshot: writing %s: %w", temporaryPath, err)
	}
	if err := temporary.Sync(); err != nil {
		temporary.Close()
		return Digest{}, fmt.Errorf("snapshot: syncing %s: %w", temporaryPath, err)
	}
	if err := temporary.Close(); err != nil {
		return Digest{}, fmt.Errorf("snapshot: closing %s: %w", temporaryPath, err)
	}
	if err := os.Rename(temporaryPath, path); err != nil {
		return Digest{}, fmt.Errorf("snapshot: %w", err)
	}
	return digest, nil
}

// ReadFile loads and verifies the snapshot at path.
func ReadFile(path string) (Snapshot, error) {
	file, err := os.Open(path)
	if err != nil {
		return Snapshot{}, fmt.Errorf("snapshot: %w", err)
	}
	defer file.Close()
	snapshot, err := Decode(file)
	if err != nil {
		return Snapshot{}, fmt.Errorf("%s: %w", path, err)
	}
	return snapshot, nil
}
