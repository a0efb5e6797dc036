// Copyright 2026 The Azpack Authors
// SPDX-License-Identifier: Apache-2.0

package pack

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"

	"golang.org/x/sync/errgroup"

	"github.com/azalea-tools/azpack/lib/compress"
	"github.com/azalea-tools/azpack/lib/envelope"
	"github.com/azalea-tools/azpack/lib/manifest"
)

// ErrRoundTrip is wrapped by every verification failure where a
// literal decodes to bytes other than the RawArtifact it was built
// from.
var ErrRoundTrip = errors.New("round trip mismatch")

// ErrNoReference is returned when a literal can be decoded but there
// is nothing to compare it with: the raw artifact is gone and the
// manifest has no entry for the asset.
var ErrNoReference = errors.New("no raw artifact or manifest entry to verify against")

// VerifyOne decodes layout.Literal back to RawArtifact bytes and
// compares them with every reference available: the raw artifact on
// disk, the compressed artifact on disk, and the manifest entry (when
// records is non-nil).
func VerifyOne(layout Layout, records *manifest.Manifest) error {
	literal, err := os.ReadFile(layout.Literal)
	if err != nil {
		return fmt.Errorf("reading literal for %s: %w", layout.Asset, err)
	}
	parsed, err := envelope.Parse(literal)
	if err != nil {
		return fmt.Errorf("%s: %w", layout.Literal, err)
	}
	payload, err := parsed.Payload()
	if err != nil {
		return fmt.Errorf("%s: %w", layout.Literal, err)
	}
	decoded, err := compress.Decompress(payload)
	if err != nil {
		return fmt.Errorf("%s: %w: %v", layout.Literal, ErrRoundTrip, err)
	}

	checked := false

	compressed, err := readOptional(layout.Compressed)
	if err != nil {
		return err
	}
	if compressed != nil {
		if !bytes.Equal(compressed, payload) {
			return fmt.Errorf("%s: %w: payload differs from %s", layout.Literal, ErrRoundTrip, layout.Compressed)
		}
	}

	raw, err := readOptional(layout.Raw)
	if err != nil {
		return err
	}
	if raw != nil {
		if !bytes.Equal(raw, decoded) {
			return fmt.Errorf("%s: %w: decodes to %d bytes that differ from %s (%d bytes)",
				layout.Literal, ErrRoundTrip, len(decoded), layout.Raw, len(raw))
		}
		checked = true
	}

	if records != nil {
		if entry, ok := records.Lookup(layout.Asset); ok {
			if int64(len(decoded)) != entry.RawSize || manifest.HashRaw(decoded) != entry.RawDigest {
				return fmt.Errorf("%s: %w: decoded bytes do not match manifest digest %s",
					layout.Literal, ErrRoundTrip, entry.RawDigest)
			}
			checked = true
		}
	}

	if !checked {
		return fmt.Errorf("%s: %w", layout.Asset, ErrNoReference)
	}
	return nil
}

// readOptional reads path, returning nil data (and no error) when the
// file does not exist.
func readOptional(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return data, nil
}

// Verify runs [VerifyOne] over layouts in parallel and returns the
// first failure.
func Verify(ctx context.Context, layouts []Layout, records *manifest.Manifest, concurrency int, logger *slog.Logger) error {
	logger = orDiscard(logger)
	group, ctx := errgroup.WithContext(ctx)
	group.SetLimit(workerLimit(concurrency))

	for _, layout := range layouts {
		group.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			if err := VerifyOne(layout, records); err != nil {
				return err
			}
			logger.Debug("verified literal", "asset", layout.Asset, "literal", layout.Literal)
			return nil
		})
	}

	return group.Wait()
}
