// Copyright 2026 The Azpack Authors
// SPDX-License-Identifier: Apache-2.0

package manifest

import (
	"fmt"
	"os"
	"slices"
	"strings"
)

// FileName is the manifest's name inside the output directory.
const FileName = "azpack.manifest.cbor"

// FormatVersion is written into every manifest. [Load] rejects other
// versions.
const FormatVersion = 1

// Manifest lists the artifacts of one pack run.
type Manifest struct {
	Version int     `cbor:"version"`
	Entries []Entry `cbor:"entries"`
}

// Entry describes the artifacts produced for one asset.
type Entry struct {
	Asset      string `cbor:"asset"`
	Raw        string `cbor:"raw"`
	Compressed string `cbor:"compressed"`
	Literal    string `cbor:"literal"`

	RawSize        int64 `cbor:"raw_size"`
	CompressedSize int64 `cbor:"compressed_size"`
	LiteralSize    int64 `cbor:"literal_size"`

	// RawDigest is [HashRaw] of the RawArtifact bytes.
	RawDigest Digest `cbor:"raw_digest"`
}

// New builds a manifest from entries, sorted by asset path.
func New(entries []Entry) *Manifest {
	sorted := slices.Clone(entries)
	slices.SortFunc(sorted, func(a, b Entry) int {
		return strings.Compare(a.Asset, b.Asset)
	})
	return &Manifest{Version: FormatVersion, Entries: sorted}
}

// Lookup returns the entry for asset.
func (m *Manifest) Lookup(asset string) (Entry, bool) {
	index, found := slices.BinarySearchFunc(m.Entries, asset, func(entry Entry, target string) int {
		return strings.Compare(entry.Asset, target)
	})
	if !found {
		return Entry{}, false
	}
	return m.Entries[index], true
}

// Matching returns a manifest holding the entries whose RawDigest is
// digest. Identical raw artifacts share a digest, so there may be
// several.
func (m *Manifest) Matching(digest Digest) *Manifest {
	var entries []Entry
	for _, entry := range m.Entries {
		if entry.RawDigest == digest {
			entries = append(entries, entry)
		}
	}
	return New(entries)
}

// Marshal encodes the manifest.
func (m *Manifest) Marshal() ([]byte, error) {
	data, err := encMode.Marshal(m)
	if err != nil {
		return nil, fmt.Errorf("encoding manifest: %w", err)
	}
	return data, nil
}

// Unmarshal decodes and version-checks manifest bytes. Entries are
// re-sorted so Lookup works on manifests written by other tools.
func Unmarshal(data []byte) (*Manifest, error) {
	var manifest Manifest
	if err := decMode.Unmarshal(data, &manifest); err != nil {
		return nil, fmt.Errorf("decoding manifest: %w", err)
	}
	if manifest.Version != FormatVersion {
		return nil, fmt.Errorf("manifest version %d is not supported (want %d)", manifest.Version, FormatVersion)
	}
	return New(manifest.Entries), nil
}

// Write encodes the manifest to path. The bytes go to path+".tmp"
// first and are renamed into place, so a failed run never leaves a
// truncated manifest behind.
func (m *Manifest) Write(path string) error {
	data, err := m.Marshal()
	if err != nil {
		return err
	}

	temporaryPath := path + ".tmp"

	file, err := os.OpenFile(temporaryPath, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0644)
	if err != nil {
		return fmt.Errorf("creating temporary manifest: %w", err)
	}
	if _, err := file.Write(data); err != nil {
		file.Close()
		os.Remove(temporaryPath)
		return fmt.Errorf("writing temporary manifest: %w", err)
	}
	if err := file.Close(); err != nil {
		os.Remove(temporaryPath)
		return fmt.Errorf("closing temporary manifest: %w", err)
	}

	if err := os.Rename(temporaryPath, path); err != nil {
		os.Remove(temporaryPath)
		return fmt.Errorf("renaming manifest into place: %w", err)
	}
	return nil
}

// Load reads and decodes the manifest at path.
func Load(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading manifest: %w", err)
	}
	return Unmarshal(data)
}
