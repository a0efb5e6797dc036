// Copyright 2026 The Azpack Authors
// SPDX-License-Identifier: Apache-2.0

package pack

import (
	"errors"
	"fmt"
	"slices"

	"github.com/bmatcuk/doublestar/v4"
)

// DefaultPattern matches the example models checked into a project.
const DefaultPattern = "examples/*.rbxm"

// ErrNoAssets is returned by [Discover] when no pattern matches a file.
var ErrNoAssets = errors.New("no assets matched")

// Discover expands glob patterns (doublestar syntax: "**", braces,
// character classes) into a sorted, de-duplicated list of asset files.
// Directories are never returned. A batch with no assets is an error:
// a release that silently packages nothing is worse than one that
// stops.
func Discover(patterns []string) ([]string, error) {
	if len(patterns) == 0 {
		patterns = []string{DefaultPattern}
	}

	seen := make(map[string]struct{})
	var assets []string
	for _, pattern := range patterns {
		if !doublestar.ValidatePathPattern(pattern) {
			return nil, fmt.Errorf("invalid pattern %q: %w", pattern, doublestar.ErrBadPattern)
		}
		matches, err := doublestar.FilepathGlob(pattern, doublestar.WithFilesOnly())
		if err != nil {
			return nil, fmt.Errorf("expanding %q: %w", pattern, err)
		}
		for _, match := range matches {
			if _, duplicate := seen[match]; duplicate {
				continue
			}
			seen[match] = struct{}{}
			assets = append(assets, match)
		}
	}

	if len(assets) == 0 {
		return nil, fmt.Errorf("%w: %v", ErrNoAssets, patterns)
	}
	slices.Sort(assets)
	return assets, nil
}
