// Copyright 2026 The Azpack Authors
// SPDX-License-Identifier: Apache-2.0

package pack

import (
	"context"
	"fmt"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/azalea-tools/azpack/lib/azalea"
	"github.com/azalea-tools/azpack/lib/envelope"
	"github.com/azalea-tools/azpack/lib/manifest"
)

// Pipeline runs the full encode → package → record batch.
type Pipeline struct {
	// Encoder produces RawArtifacts. Required.
	Encoder azalea.Encoder

	// Decoder, when non-nil and DecoderOutput is set, writes the
	// runtime decoder once per batch, concurrently with encoding.
	Decoder       azalea.DecoderGenerator
	DecoderOutput string

	// Script controls literal rendering.
	Script envelope.Script

	// ManifestPath, when set, receives the manifest after packaging.
	ManifestPath string

	// Concurrency bounds the per-asset worker pools. Zero means one
	// worker per CPU.
	Concurrency int

	// Logger receives progress records. Nil discards them.
	Logger *slog.Logger
}

// Run executes the batch over layouts. On error, no stage after the
// failing one has started.
func (p *Pipeline) Run(ctx context.Context, layouts []Layout) ([]Result, error) {
	logger := orDiscard(p.Logger)

	// Stage 1: encode every asset (and generate the decoder) behind a
	// single barrier.
	group, groupContext := errgroup.WithContext(ctx)
	if p.Decoder != nil && p.DecoderOutput != "" {
		group.Go(func() error {
			if err := p.Decoder.Generate(groupContext, p.DecoderOutput); err != nil {
				return fmt.Errorf("generating decoder: %w", err)
			}
			logger.Debug("generated decoder", "path", p.DecoderOutput)
			return nil
		})
	}
	group.Go(func() error {
		return EncodeAll(groupContext, p.Encoder, layouts, p.Concurrency, logger)
	})
	if err := group.Wait(); err != nil {
		return nil, err
	}
	logger.Info("encoded assets", "count", len(layouts))

	// Stage 2: package.
	results, err := PackAll(ctx, layouts, p.Script, p.Concurrency, logger)
	if err != nil {
		return nil, err
	}
	logger.Info("packaged assets", "count", len(results))

	// Stage 3: record.
	if p.ManifestPath != "" {
		entries := make([]manifest.Entry, len(results))
		for i, result := range results {
			entries[i] = result.ManifestEntry()
		}
		if err := manifest.New(entries).Write(p.ManifestPath); err != nil {
			return nil, err
		}
		logger.Info("wrote manifest", "path", p.ManifestPath)
	}

	return results, nil
}
