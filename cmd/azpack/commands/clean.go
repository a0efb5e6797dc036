// Copyright 2026 The Azpack Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/azalea-tools/azpack/cmd/azpack/cli"
	"github.com/azalea-tools/azpack/lib/pack"
)

type cleanParams struct {
	globalParams
	KeepDecoder bool `flag:"keep-decoder" desc:"leave the generated decoder in place"`
}

func cleanCommand(stdout io.Writer) *cli.Command {
	var params cleanParams

	return &cli.Command{
		Name:    "clean",
		Summary: "Remove generated artifacts",
		Description: `Remove S.bin, S.bin.zst, and the literal for every matched asset, plus
the manifest and the generated decoder. Assets themselves are never
touched, and files that do not exist are skipped.`,
		Usage:  "azpack clean [patterns...] [flags]",
		Params: func() any { return &params },
		Run: func(_ context.Context, args []string, logger *slog.Logger) error {
			cfg, err := params.loadConfig()
			if err != nil {
				return err
			}

			layouts, err := discoverLayouts(cfg, args)
			if err != nil && !errors.Is(err, pack.ErrNoAssets) {
				return err
			}

			extra := []string{cfg.Paths.ManifestPath()}
			if !params.KeepDecoder {
				extra = append(extra, cfg.Paths.Decoder)
			}

			removed, err := pack.Clean(layouts, extra...)
			for _, path := range removed {
				fmt.Fprintf(stdout, "removed %s\n", path)
			}
			if err != nil {
				return cli.Internal("%w", err)
			}
			logger.Info("cleaned artifacts", "removed", len(removed))
			return nil
		},
		Examples: []cli.Example{
			{
				Description: "Remove everything pack generated for the example models",
				Command:     "azpack clean",
			},
		},
	}
}
