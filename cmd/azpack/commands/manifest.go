// Copyright 2026 The Azpack Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"text/tabwriter"

	"github.com/azalea-tools/azpack/cmd/azpack/cli"
	"github.com/azalea-tools/azpack/lib/byteformat"
	"github.com/azalea-tools/azpack/lib/manifest"
)

type manifestParams struct {
	globalParams
	Diag   bool   `flag:"diag" desc:"print CBOR diagnostic notation instead of a table"`
	Digest string `flag:"digest" desc:"show only entries whose raw artifact has this BLAKE3 digest (hex)"`
}

func manifestCommand(stdout io.Writer) *cli.Command {
	var params manifestParams

	return &cli.Command{
		Name:    "manifest",
		Summary: "Show the manifest written by the last pack run",
		Description: `Print the entries of a manifest: one row per asset with its raw,
compressed, and literal sizes and the BLAKE3 digest of its raw
artifact. With --digest, show only the entries whose raw artifact has
that digest. With --diag, print the manifest's exact CBOR encoding in
RFC 8949 diagnostic notation instead.

The path defaults to the configured manifest location.`,
		Usage:  "azpack manifest [path] [flags]",
		Params: func() any { return &params },
		Run: func(_ context.Context, args []string, _ *slog.Logger) error {
			if len(args) > 1 {
				return cli.Validation("expected at most one manifest path, got %d", len(args))
			}
			cfg, err := params.loadConfig()
			if err != nil {
				return err
			}
			var filter *manifest.Digest
			if params.Digest != "" {
				if params.Diag {
					return cli.Validation("--digest and --diag cannot be combined")
				}
				digest, err := manifest.ParseDigest(params.Digest)
				if err != nil {
					return cli.Validation("--digest: %w", err)
				}
				filter = &digest
			}

			path := cfg.Paths.ManifestPath()
			if len(args) == 1 {
				path = args[0]
			}
			data, err := os.ReadFile(path)
			if err != nil {
				return cli.NotFound("reading manifest: %w", err).
					WithHint("Run 'azpack pack' to write one.")
			}

			if params.Diag {
				notation, err := manifest.Diagnose(data)
				if err != nil {
					return cli.Validation("%s: %w", path, err)
				}
				fmt.Fprintln(stdout, notation)
				return nil
			}

			records, err := manifest.Unmarshal(data)
			if err != nil {
				return cli.Validation("%s: %w", path, err)
			}
			if filter != nil {
				records = records.Matching(*filter)
				if len(records.Entries) == 0 {
					return cli.NotFound("no entry in %s has raw digest %s", path, filter)
				}
			}
			return printManifest(stdout, records, cfg.Benchmark.Decimals)
		},
		Examples: []cli.Example{
			{
				Description: "List the packaged assets",
				Command:     "azpack manifest",
			},
			{
				Description: "Find the asset a raw artifact digest belongs to",
				Command:     "azpack manifest --digest 3f9a...c2e1",
			},
			{
				Description: "Inspect the raw CBOR of a release manifest",
				Command:     "azpack manifest --diag release/azpack.manifest.cbor",
			},
		},
	}
}

func printManifest(w io.Writer, records *manifest.Manifest, decimals int) error {
	tw := tabwriter.NewWriter(w, 2, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ASSET\tRAW\tCOMPRESSED\tLITERAL\tDIGEST")
	for _, entry := range records.Entries {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n",
			entry.Asset,
			byteformat.Format(entry.RawSize, decimals),
			byteformat.Format(entry.CompressedSize, decimals),
			byteformat.Format(entry.LiteralSize, decimals),
			entry.RawDigest,
		)
	}
	return tw.Flush()
}
