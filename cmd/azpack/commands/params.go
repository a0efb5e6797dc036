// Copyright 2026 The Azpack Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"

	"github.com/azalea-tools/azpack/cmd/azpack/cli"
	"github.com/azalea-tools/azpack/lib/azalea"
	"github.com/azalea-tools/azpack/lib/config"
	"github.com/azalea-tools/azpack/lib/envelope"
	"github.com/azalea-tools/azpack/lib/pack"
)

// globalParams are accepted by every command that touches assets.
// Flags left at their zero value fall back to the config file.
type globalParams struct {
	Config      string `flag:"config" desc:"config file (default: $AZPACK_CONFIG, else built-in defaults)"`
	Azalea      string `flag:"azalea" desc:"azalea executable (default: azalea on PATH)"`
	Output      string `flag:"output,o" desc:"artifact directory (default: next to each asset)"`
	Concurrency int    `flag:"concurrency,j" desc:"parallel workers (default: one per CPU)"`
	Decimals    string `flag:"decimals" desc:"precision of reported sizes (default: 2)"`
	Decoder     string `flag:"decoder" desc:"path of the generated runtime decoder"`
	Format      bool   `flag:"format" desc:"pretty-print the generated decoder"`
	Minify      bool   `flag:"minify" desc:"minify the generated decoder"`
	Compat      bool   `flag:"compat" desc:"generate a decoder for runtimes without native buffers"`
	NoColor     bool   `flag:"no-color" desc:"disable colored output"`
	Verbose     bool   `flag:"verbose,v" desc:"log every asset"`
}

// LogLevel implements [cli.LevelSource].
func (p *globalParams) LogLevel() slog.Level {
	if p.Verbose {
		return slog.LevelDebug
	}
	return slog.LevelInfo
}

// loadConfig resolves the config file and applies flag overrides.
func (p *globalParams) loadConfig() (*config.Config, error) {
	cfg, err := config.Resolve(p.Config)
	if err != nil {
		return nil, cli.Validation("%w", err)
	}

	if p.Azalea != "" {
		cfg.Azalea.Binary = p.Azalea
	}
	if p.Output != "" {
		cfg.Paths.Output = p.Output
	}
	if p.Concurrency != 0 {
		cfg.Concurrency = p.Concurrency
	}
	if p.Decimals != "" {
		decimals, err := strconv.Atoi(p.Decimals)
		if err != nil {
			return nil, cli.Validation("--decimals: %w", err)
		}
		cfg.Benchmark.Decimals = decimals
	}
	if p.Decoder != "" {
		cfg.Paths.Decoder = p.Decoder
	}
	// --minify replaces the configured style unless --format is also
	// given, which Validate then rejects.
	if p.Minify {
		cfg.Azalea.Minify = true
		cfg.Azalea.Format = p.Format
	} else if p.Format {
		cfg.Azalea.Format = true
		cfg.Azalea.Minify = false
	}
	if p.Compat {
		cfg.Azalea.Compat = true
	}
	if p.NoColor {
		cfg.Benchmark.Color = false
	}

	if err := cfg.Validate(); err != nil {
		return nil, cli.Validation("invalid configuration: %w", err)
	}
	return cfg, nil
}

// discoverLayouts expands patterns (or the configured ones when none
// are given) into artifact layouts.
func discoverLayouts(cfg *config.Config, patterns []string) ([]pack.Layout, error) {
	if len(patterns) == 0 {
		patterns = cfg.Assets.Patterns
	}
	assets, err := pack.Discover(patterns)
	if errors.Is(err, pack.ErrNoAssets) {
		return nil, cli.NotFound("%w", err).
			WithHint("Pass glob patterns as arguments or set assets.patterns in the config file.")
	}
	if err != nil {
		return nil, cli.Validation("%w", err)
	}

	layouts, err := pack.Layouts(assets, cfg.Paths.Output, cfg.Script.Extension)
	if err != nil {
		return nil, cli.Validation("%w", err)
	}
	return layouts, nil
}

func scriptOf(cfg *config.Config) envelope.Script {
	return envelope.Script{
		DecodeExpression: cfg.Script.DecodeExpression,
		TypeAssertion:    cfg.Script.TypeAssertion,
	}
}

func styleOf(cfg *config.Config) azalea.OutputStyle {
	return azalea.OutputStyle{
		Format: cfg.Azalea.Format,
		Minify: cfg.Azalea.Minify,
		Compat: cfg.Azalea.Compat,
	}
}

// ensureDirectories creates the output directory and the decoder's
// parent directory.
func ensureDirectories(cfg *config.Config) error {
	directories := []string{cfg.Paths.Output}
	if cfg.Paths.Decoder != "" {
		directories = append(directories, filepath.Dir(cfg.Paths.Decoder))
	}
	for _, directory := range directories {
		if directory == "" || directory == "." {
			continue
		}
		if err := os.MkdirAll(directory, 0755); err != nil {
			return cli.Internal("creating %s: %w", directory, err)
		}
	}
	return nil
}

// plural renders "1 literal" / "3 literals".
func plural(count int, noun string) string {
	if count == 1 {
		return fmt.Sprintf("%d %s", count, noun)
	}
	return fmt.Sprintf("%d %ss", count, noun)
}
