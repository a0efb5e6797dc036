// Copyright 2026 The Azpack Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"

	"github.com/azalea-tools/azpack/cmd/azpack/cli"
	"github.com/azalea-tools/azpack/lib/manifest"
	"github.com/azalea-tools/azpack/lib/pack"
)

type verifyParams struct {
	globalParams
	Manifest string `flag:"manifest" desc:"manifest to check digests against (default: the configured manifest)"`
}

func verifyCommand(stdout io.Writer) *cli.Command {
	var params verifyParams

	return &cli.Command{
		Name:    "verify",
		Summary: "Check that every literal decodes back to its artifact",
		Description: `Decode every emitted literal (parse the envelope, base64-decode,
decompress) and compare the bytes with the raw artifact S.bin when it
is still on disk, and with the BLAKE3 digest recorded in the manifest
when one exists. At least one of the two must be available for each
asset.

Nothing is written; run this after "azpack pack" or in CI before
publishing literals.`,
		Usage:  "azpack verify [patterns...] [flags]",
		Params: func() any { return &params },
		Run: func(ctx context.Context, args []string, logger *slog.Logger) error {
			cfg, err := params.loadConfig()
			if err != nil {
				return err
			}
			layouts, err := discoverLayouts(cfg, args)
			if err != nil {
				return err
			}

			manifestPath := params.Manifest
			if manifestPath == "" {
				manifestPath = cfg.Paths.ManifestPath()
			}
			records, err := manifest.Load(manifestPath)
			switch {
			case errors.Is(err, fs.ErrNotExist) && params.Manifest == "":
				logger.Debug("no manifest, verifying against raw artifacts only", "path", manifestPath)
				records = nil
			case err != nil:
				return cli.Validation("%w", err)
			}

			if err := pack.Verify(ctx, layouts, records, cfg.Concurrency, logger); err != nil {
				return cli.Internal("%w", err)
			}
			fmt.Fprintf(stdout, "verified %s\n", plural(len(layouts), "literal"))
			return nil
		},
		Examples: []cli.Example{
			{
				Description: "Verify the example literals",
				Command:     "azpack verify",
			},
			{
				Description: "Verify literals against a manifest shipped with a release",
				Command:     "azpack verify --output build --manifest release/azpack.manifest.cbor",
			},
		},
	}
}
