// Copyright 2026 The Azpack Authors
// SPDX-License-Identifier: Apache-2.0

package pack

import (
	"context"
	"fmt"
	"log/slog"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/azalea-tools/azpack/lib/azalea"
)

// workerLimit resolves a configured concurrency: zero or negative
// means one worker per CPU.
func workerLimit(concurrency int) int {
	if concurrency <= 0 {
		return runtime.NumCPU()
	}
	return concurrency
}

// orDiscard returns logger, or a logger that drops everything when
// logger is nil.
func orDiscard(logger *slog.Logger) *slog.Logger {
	if logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return logger
}

// EncodeAll runs encoder once per layout, writing each RawArtifact to
// layout.Raw, and returns only after every invocation has finished.
//
// The first failure cancels the context shared by the batch, which
// kills in-flight encoder processes and stops queued ones from
// starting. The returned error is that first failure.
func EncodeAll(ctx context.Context, encoder azalea.Encoder, layouts []Layout, concurrency int, logger *slog.Logger) error {
	logger = orDiscard(logger)
	group, ctx := errgroup.WithContext(ctx)
	group.SetLimit(workerLimit(concurrency))

	for _, layout := range layouts {
		group.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			if err := encoder.Encode(ctx, layout.Asset, layout.Raw); err != nil {
				return fmt.Errorf("encoding %s: %w", layout.Asset, err)
			}
			logger.Debug("encoded asset", "asset", layout.Asset, "raw", layout.Raw)
			return nil
		})
	}

	return group.Wait()
}
