// Copyright 2026 The Azpack Authors
// SPDX-License-Identifier: Apache-2.0

package pack

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"golang.org/x/sync/errgroup"

	"github.com/azalea-tools/azpack/lib/compress"
	"github.com/azalea-tools/azpack/lib/envelope"
	"github.com/azalea-tools/azpack/lib/manifest"
)

// artifactMode is the permission of every file azpack writes.
const artifactMode = 0644

// Result describes the artifacts written for one asset.
type Result struct {
	Layout Layout

	RawSize        int64
	CompressedSize int64
	LiteralSize    int64

	RawDigest manifest.Digest
}

// ManifestEntry converts the result to its manifest record.
func (r Result) ManifestEntry() manifest.Entry {
	return manifest.Entry{
		Asset:          r.Layout.Asset,
		Raw:            r.Layout.Raw,
		Compressed:     r.Layout.Compressed,
		Literal:        r.Layout.Literal,
		RawSize:        r.RawSize,
		CompressedSize: r.CompressedSize,
		LiteralSize:    r.LiteralSize,
		RawDigest:      r.RawDigest,
	}
}

// PackOne compresses the RawArtifact at layout.Raw into
// layout.Compressed and emits the literal at layout.Literal. It touches
// no other paths.
func PackOne(layout Layout, script envelope.Script) (Result, error) {
	raw, err := os.ReadFile(layout.Raw)
	if err != nil {
		return Result{}, fmt.Errorf("reading raw artifact for %s: %w", layout.Asset, err)
	}

	compressed, err := compress.Compress(raw)
	if err != nil {
		return Result{}, fmt.Errorf("compressing %s: %w", layout.Raw, err)
	}
	if err := os.WriteFile(layout.Compressed, compressed, artifactMode); err != nil {
		return Result{}, fmt.Errorf("writing compressed artifact: %w", err)
	}

	literal, err := envelope.Emit(compressed, script)
	if err != nil {
		return Result{}, fmt.Errorf("emitting literal for %s: %w", layout.Asset, err)
	}
	if err := os.WriteFile(layout.Literal, literal, artifactMode); err != nil {
		return Result{}, fmt.Errorf("writing literal: %w", err)
	}

	return Result{
		Layout:         layout,
		RawSize:        int64(len(raw)),
		CompressedSize: int64(len(compressed)),
		LiteralSize:    int64(len(literal)),
		RawDigest:      manifest.HashRaw(raw),
	}, nil
}

// PackAll runs [PackOne] for every layout in parallel and returns the
// results in layout order. It returns after all started work has
// finished; the first error stops queued assets from starting.
func PackAll(ctx context.Context, layouts []Layout, script envelope.Script, concurrency int, logger *slog.Logger) ([]Result, error) {
	results := make([]Result, len(layouts))
	logger = orDiscard(logger)

	group, ctx := errgroup.WithContext(ctx)
	group.SetLimit(workerLimit(concurrency))

	for index, layout := range layouts {
		group.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			result, err := PackOne(layout, script)
			if err != nil {
				return err
			}
			results[index] = result
			logger.Debug("packaged asset",
				"asset", layout.Asset,
				"raw_bytes", result.RawSize,
				"compressed_bytes", result.CompressedSize,
				"literal", layout.Literal,
			)
			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
