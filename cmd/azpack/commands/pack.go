// Copyright 2026 The Azpack Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"text/tabwriter"

	"github.com/azalea-tools/azpack/cmd/azpack/cli"
	"github.com/azalea-tools/azpack/lib/azalea"
	"github.com/azalea-tools/azpack/lib/byteformat"
	"github.com/azalea-tools/azpack/lib/config"
	"github.com/azalea-tools/azpack/lib/pack"
)

type packParams struct {
	globalParams
	Quiet bool `flag:"quiet,q" desc:"do not print the artifact table"`
}

func packCommand(stdout io.Writer) *cli.Command {
	var params packParams

	return &cli.Command{
		Name:    "pack",
		Summary: "Encode, compress, and emit a literal for every asset",
		Description: `Package every matched asset.

For each asset S.rbxm, azalea writes the flat binary artifact S.bin,
which is compressed to S.bin.zst and wrapped into the literal S.luau:

  return game:GetService("HttpService"):JSONDecode([[{"m":null,"t":"buffer","zbase64":"..."}]])

The runtime decoder is generated once per run, alongside encoding. All
encodes finish before any compression starts, and any failure stops the
run before the next stage. A CBOR manifest recording sizes and BLAKE3
digests is written last.

Patterns are doublestar globs; with none, assets.patterns from the
config file is used (default: examples/*.rbxm).`,
		Usage:  "azpack pack [patterns...] [flags]",
		Params: func() any { return &params },
		Run: func(ctx context.Context, args []string, logger *slog.Logger) error {
			cfg, err := params.loadConfig()
			if err != nil {
				return err
			}
			results, err := runPack(ctx, cfg, args, logger)
			if err != nil {
				return err
			}
			if params.Quiet {
				return nil
			}
			return printResults(stdout, results, cfg.Benchmark.Decimals)
		},
		Examples: []cli.Example{
			{
				Description: "Package the example models with a minified decoder",
				Command:     "azpack pack --minify",
			},
			{
				Description: "Package a model tree into build/ with eight workers",
				Command:     "azpack pack -j 8 --output build 'models/**/*.{rbxm,rbxmx}'",
			},
		},
	}
}

// runPack discovers assets and runs the full pipeline.
func runPack(ctx context.Context, cfg *config.Config, patterns []string, logger *slog.Logger) ([]pack.Result, error) {
	layouts, err := discoverLayouts(cfg, patterns)
	if err != nil {
		return nil, err
	}

	binary, err := azalea.New(cfg.Azalea.Binary, styleOf(cfg))
	if err != nil {
		return nil, cli.NotFound("%w", err)
	}
	logger.Debug("using azalea", "path", binary.Path)

	if err := ensureDirectories(cfg); err != nil {
		return nil, err
	}

	pipeline := &pack.Pipeline{
		Encoder:       binary,
		Decoder:       binary,
		DecoderOutput: cfg.Paths.Decoder,
		Script:        scriptOf(cfg),
		ManifestPath:  cfg.Paths.ManifestPath(),
		Concurrency:   cfg.Concurrency,
		Logger:        logger,
	}
	return pipeline.Run(ctx, layouts)
}

func printResults(w io.Writer, results []pack.Result, decimals int) error {
	tw := tabwriter.NewWriter(w, 2, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ASSET\tRAW\tCOMPRESSED\tLITERAL")
	for _, result := range results {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n",
			result.Layout.Asset,
			byteformat.Format(result.RawSize, decimals),
			byteformat.Format(result.CompressedSize, decimals),
			byteformat.Format(result.LiteralSize, decimals),
		)
	}
	return tw.Flush()
}
