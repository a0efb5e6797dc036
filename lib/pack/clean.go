// Copyright 2026 The Azpack Authors
// SPDX-License-Identifier: Apache-2.0

package pack

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
)

// Clean removes every generated artifact of layouts plus any extra
// paths (the manifest, the generated decoder). Missing files are not
// an error. It returns the paths actually removed.
func Clean(layouts []Layout, extra ...string) ([]string, error) {
	var paths []string
	for _, layout := range layouts {
		paths = append(paths, layout.Raw, layout.Compressed, layout.Literal)
	}
	paths = append(paths, extra...)

	var removed []string
	for _, path := range paths {
		if path == "" {
			continue
		}
		err := os.Remove(path)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return removed, fmt.Errorf("removing %s: %w", path, err)
		}
		removed = append(removed, path)
	}
	return removed, nil
}
