// Copyright 2026 The Azpack Authors
// SPDX-License-Identifier: Apache-2.0

// Package commands builds the azpack command tree.
package commands

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/azalea-tools/azpack/cmd/azpack/cli"
	"github.com/azalea-tools/azpack/lib/version"
)

// Root builds and returns the complete azpack command tree. Reports
// are written to stdout; logs go to stderr.
func Root() *cli.Command {
	return newRoot(os.Stdout)
}

func newRoot(stdout io.Writer) *cli.Command {
	return &cli.Command{
		Name: "azpack",
		Description: `azpack: package binary model assets as self-decoding Luau literals.

Each asset is encoded by azalea into a flat binary artifact, compressed
with zstd at maximum effort, and wrapped in a JSON envelope that the
runtime's HttpService:JSONDecode turns back into a buffer. The compare
command checks the packaged size against the original model file.`,
		Subcommands: []*cli.Command{
			packCommand(stdout),
			compareCommand(stdout),
			verifyCommand(stdout),
			cleanCommand(stdout),
			manifestCommand(stdout),
			{
				Name:    "version",
				Summary: "Print version information",
				Run: func(_ context.Context, _ []string, _ *slog.Logger) error {
					fmt.Fprintf(stdout, "azpack %s\n", version.Full())
					return nil
				},
			},
		},
		Examples: []cli.Example{
			{
				Description: "Package every model under examples/",
				Command:     "azpack pack",
			},
			{
				Description: "Package, then compare against the original models",
				Command:     "azpack compare",
			},
			{
				Description: "Package models from another tree into build/",
				Command:     "azpack pack --output build 'models/**/*.rbxm'",
			},
			{
				Description: "Check that every literal still decodes to its artifact",
				Command:     "azpack verify --output build",
			},
			{
				Description: "Remove generated artifacts",
				Command:     "azpack clean",
			},
		},
	}
}
