// Copyright 2026 The Azpack Authors
// SPDX-License-Identifier: Apache-2.0

package pack

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/azalea-tools/azpack/lib/envelope"
)

// Artifact file extensions.
const (
	RawExtension        = ".bin"
	CompressedExtension = ".zst"
)

// Layout holds the paths derived from one asset. For an asset with
// extension-stripped stem S:
//
//	Raw        = S.bin
//	Compressed = S.bin.zst
//	Literal    = S + literal extension (default .luau)
type Layout struct {
	Asset      string
	Raw        string
	Compressed string
	Literal    string
}

// NewLayout derives artifact paths for asset. When outputDirectory is
// empty, artifacts sit next to the asset. An empty literalExtension
// means [envelope.DefaultExtension].
func NewLayout(asset, outputDirectory, literalExtension string) Layout {
	if literalExtension == "" {
		literalExtension = envelope.DefaultExtension
	}

	base := filepath.Base(asset)
	stem := strings.TrimSuffix(base, filepath.Ext(base))

	directory := outputDirectory
	if directory == "" {
		directory = filepath.Dir(asset)
	}
	stemPath := filepath.Join(directory, stem)

	raw := stemPath + RawExtension
	return Layout{
		Asset:      asset,
		Raw:        raw,
		Compressed: raw + CompressedExtension,
		Literal:    stemPath + literalExtension,
	}
}

// Layouts derives a layout per asset and rejects batches where two
// assets would write the same artifact, or an artifact would overwrite
// an asset.
func Layouts(assets []string, outputDirectory, literalExtension string) ([]Layout, error) {
	layouts := make([]Layout, 0, len(assets))
	owners := make(map[string]string, len(assets)*4)
	for _, asset := range assets {
		owners[filepath.Clean(asset)] = asset
	}

	for _, asset := range assets {
		layout := NewLayout(asset, outputDirectory, literalExtension)
		for _, path := range []string{layout.Raw, layout.Compressed, layout.Literal} {
			key := filepath.Clean(path)
			if owner, taken := owners[key]; taken {
				if owner == asset {
					return nil, fmt.Errorf("artifact %s of %s would overwrite the asset itself", path, asset)
				}
				return nil, fmt.Errorf("artifact %s of %s collides with %s", path, asset, owner)
			}
			owners[key] = asset
		}
		layouts = append(layouts, layout)
	}
	return layouts, nil
}
