// Copyright 2026 The Azpack Authors
// SPDX-License-Identifier: Apache-2.0

// Command azpack packages binary model assets into self-decoding Luau
// literals and benchmarks them against the original model files.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/azalea-tools/azpack/cmd/azpack/cli"
	"github.com/azalea-tools/azpack/cmd/azpack/commands"
	"github.com/azalea-tools/azpack/lib/process"
)

func main() {
	if err := run(); err != nil {
		// Commands that print their own output (like compare
		// --fail-on-loss) return an ExitError with the desired exit
		// code. Don't print a redundant "error:" line for those.
		if cli.IsExitError(err) {
			os.Exit(cli.ExitStatus(err))
		}
		process.FatalStatus(err, cli.ExitStatus(err))
	}
}

func run() error {
	// Interrupts cancel the batch; running azalea processes are killed
	// and no later stage starts.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return commands.Root().Execute(ctx, os.Args[1:])
}
