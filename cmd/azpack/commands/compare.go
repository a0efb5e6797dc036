// Copyright 2026 The Azpack Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"context"
	"io"
	"log/slog"

	"github.com/azalea-tools/azpack/cmd/azpack/cli"
	"github.com/azalea-tools/azpack/lib/benchmark"
	"github.com/azalea-tools/azpack/lib/pack"
)

type compareParams struct {
	globalParams
	NoPack     bool `flag:"no-pack" desc:"compare existing artifacts without packaging first"`
	Literal    bool `flag:"literal" desc:"measure the emitted literal instead of the compressed artifact"`
	FailOnLoss bool `flag:"fail-on-loss" desc:"exit with status 1 when any asset is larger than its original"`
}

func compareCommand(stdout io.Writer) *cli.Command {
	var params compareParams

	return &cli.Command{
		Name:    "compare",
		Summary: "Package assets and compare their size with the original models",
		Description: `Package every matched asset (as "azpack pack" does), then compare each
compressed artifact S.bin.zst with the original model file S.rbxm:

  win! examples/tree.bin.zst (via Azalea) is smaller than examples/tree.rbxm (via Roblox) by 6.84 KiB

A loss reports how much larger the packaged artifact is. With more than
one asset, a total line follows. Sizes use 1024-based units.`,
		Usage:  "azpack compare [patterns...] [flags]",
		Params: func() any { return &params },
		Run: func(ctx context.Context, args []string, logger *slog.Logger) error {
			cfg, err := params.loadConfig()
			if err != nil {
				return err
			}

			var layouts []pack.Layout
			if params.NoPack {
				layouts, err = discoverLayouts(cfg, args)
				if err != nil {
					return err
				}
			} else {
				results, err := runPack(ctx, cfg, args, logger)
				if err != nil {
					return err
				}
				layouts = make([]pack.Layout, len(results))
				for i, result := range results {
					layouts[i] = result.Layout
				}
			}

			pairs := make([]benchmark.Pair, len(layouts))
			for i, layout := range layouts {
				packaged := layout.Compressed
				if params.Literal {
					packaged = layout.Literal
				}
				pairs[i] = benchmark.Pair{Packaged: packaged, Reference: layout.Asset}
			}

			reports, err := benchmark.Measure(ctx, pairs, cfg.Concurrency)
			if err != nil {
				return cli.NotFound("%w", err).
					WithHint("Run without --no-pack to produce the artifacts first.")
			}

			printer := benchmark.NewPrinter(stdout, cfg.Benchmark.Decimals, cfg.Benchmark.Color)
			if err := printer.Print(reports); err != nil {
				return cli.Internal("writing report: %w", err)
			}

			if params.FailOnLoss {
				summary := benchmark.Summarize(reports)
				if summary.Losses > 0 {
					logger.Error("packaging lost on some assets", "losses", summary.Losses)
					return &cli.ExitError{Code: cli.ExitFailure}
				}
			}
			return nil
		},
		Examples: []cli.Example{
			{
				Description: "Compare the example models",
				Command:     "azpack compare",
			},
			{
				Description: "Re-check existing artifacts in CI, failing on any loss",
				Command:     "azpack compare --no-pack --no-color --fail-on-loss",
			},
			{
				Description: "Compare the literal text size with three decimals",
				Command:     "azpack compare --literal --decimals 3",
			},
		},
	}
}
