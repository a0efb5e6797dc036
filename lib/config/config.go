// Copyright 2026 The Azpack Authors
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/azalea-tools/azpack/lib/byteformat"
)

// EnvironmentVariable names the config file when --config is absent.
const EnvironmentVariable = "AZPACK_CONFIG"

// Config is the master configuration for azpack.
type Config struct {
	// Paths configures where artifacts are written.
	Paths PathsConfig `yaml:"paths"`

	// Assets configures asset discovery.
	Assets AssetsConfig `yaml:"assets"`

	// Azalea configures the external encoder binary.
	Azalea AzaleaConfig `yaml:"azalea"`

	// Script configures the emitted Luau literal.
	Script ScriptConfig `yaml:"script"`

	// Benchmark configures the comparison report.
	Benchmark BenchmarkConfig `yaml:"benchmark"`

	// Concurrency bounds parallel encode and compress work.
	// Default: 0 (one worker per CPU)
	Concurrency int `yaml:"concurrency"`
}

// PathsConfig configures artifact locations.
type PathsConfig struct {
	// Output is the directory artifacts are written to. Empty places
	// each artifact next to its asset.
	Output string `yaml:"output"`

	// Decoder is where the runtime decoder source is generated. Empty
	// skips decoder generation.
	// Default: decoder.luau
	Decoder string `yaml:"decoder"`

	// Manifest is where the CBOR manifest is written. Empty means
	// [ManifestFileName] inside Output, or in the working directory
	// when Output is empty. See [PathsConfig.ManifestPath].
	Manifest string `yaml:"manifest"`
}

// ManifestFileName is the manifest's base name when Paths.Manifest is
// unset.
const ManifestFileName = "azpack.manifest.cbor"

// ManifestPath returns the effective manifest location.
func (p PathsConfig) ManifestPath() string {
	if p.Manifest != "" {
		return p.Manifest
	}
	if p.Output != "" {
		return filepath.Join(p.Output, ManifestFileName)
	}
	return ManifestFileName
}

// AssetsConfig configures asset discovery.
type AssetsConfig struct {
	// Patterns are doublestar globs matched relative to the working
	// directory.
	// Default: [examples/*.rbxm]
	Patterns []string `yaml:"patterns"`
}

// AzaleaConfig configures the azalea binary and decoder style.
type AzaleaConfig struct {
	// Binary is the azalea executable. Empty searches PATH.
	Binary string `yaml:"binary"`

	// Format pretty-prints the generated decoder.
	// Default: true
	Format bool `yaml:"format"`

	// Minify minifies the generated decoder. Mutually exclusive with
	// Format.
	Minify bool `yaml:"minify"`

	// Compat emits a decoder for runtimes without native buffers.
	Compat bool `yaml:"compat"`
}

// ScriptConfig configures the emitted literal.
type ScriptConfig struct {
	// Extension of the literal file, including the dot.
	// Default: .luau
	Extension string `yaml:"extension"`

	// DecodeExpression is called on the JSON envelope.
	// Default: game:GetService("HttpService"):JSONDecode
	DecodeExpression string `yaml:"decode_expression"`

	// TypeAssertion appends ":: buffer" to the returned expression.
	TypeAssertion bool `yaml:"type_assertion"`
}

// BenchmarkConfig configures the comparison report.
type BenchmarkConfig struct {
	// Decimals is the precision of formatted sizes.
	// Default: 2
	Decimals int `yaml:"decimals"`

	// Color enables ANSI colors when stdout is a terminal.
	// Default: true
	Color bool `yaml:"color"`
}

// Default returns the default configuration. Loaded files are merged
// over it, so any field a file omits keeps its default.
func Default() *Config {
	return &Config{
		Paths: PathsConfig{
			Decoder: "decoder.luau",
		},
		Assets: AssetsConfig{
			Patterns: []string{"examples/*.rbxm"},
		},
		Azalea: AzaleaConfig{
			Format: true,
		},
		Script: ScriptConfig{
			Extension:        ".luau",
			DecodeExpression: `game:GetService("HttpService"):JSONDecode`,
		},
		Benchmark: BenchmarkConfig{
			Decimals: byteformat.DefaultDecimals,
			Color:    true,
		},
	}
}

// Load loads configuration from the file named by AZPACK_CONFIG.
// Unlike [Resolve], an unset variable is an error.
func Load() (*Config, error) {
	configPath := os.Getenv(EnvironmentVariable)
	if configPath == "" {
		return nil, fmt.Errorf("%s environment variable not set; "+
			"set it to the path of your azpack.yaml config file, or use --config flag", EnvironmentVariable)
	}

	return LoadFile(configPath)
}

// Resolve picks the configuration source: explicitPath when non-empty,
// then AZPACK_CONFIG, then [Default] with variables expanded.
func Resolve(explicitPath string) (*Config, error) {
	if explicitPath != "" {
		return LoadFile(explicitPath)
	}
	if os.Getenv(EnvironmentVariable) != "" {
		return Load()
	}

	cfg := Default()
	cfg.expandVariables()
	return cfg, nil
}

// LoadFile loads configuration from a specific file path.
//
// The only expansion performed is ${HOME} and similar path variables
// for portability.
func LoadFile(path string) (*Config, error) {
	cfg := Default()

	if err := cfg.loadFile(path); err != nil {
		return nil, fmt.Errorf("loading config %s: %w", path, err)
	}

	cfg.expandVariables()

	return cfg, nil
}

// loadFile merges a single configuration file into the current config.
// Unknown keys are rejected so a typo does not silently fall back to a
// default.
func (c *Config) loadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(c); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}

// expandVariables expands ${VAR} and ${VAR:-default} patterns in paths.
func (c *Config) expandVariables() {
	vars := map[string]string{
		"HOME": os.Getenv("HOME"),
	}

	c.Paths.Output = expandVars(c.Paths.Output, vars)
	vars["AZPACK_OUTPUT"] = c.Paths.Output // Update for dependent paths.

	c.Paths.Decoder = expandVars(c.Paths.Decoder, vars)
	c.Paths.Manifest = expandVars(c.Paths.Manifest, vars)
	c.Azalea.Binary = expandVars(c.Azalea.Binary, vars)
	for i, pattern := range c.Assets.Patterns {
		c.Assets.Patterns[i] = expandVars(pattern, vars)
	}
}

// expandVars expands ${VAR} and ${VAR:-default} patterns.
var varPattern = regexp.MustCompile(`\$\{([^}:]+)(?::-([^}]*))?\}`)

func expandVars(s string, vars map[string]string) string {
	return varPattern.ReplaceAllStringFunc(s, func(match string) string {
		parts := varPattern.FindStringSubmatch(match)
		if len(parts) < 2 {
			return match
		}

		name := parts[1]
		defaultValue := ""
		if len(parts) >= 3 {
			defaultValue = parts[2]
		}

		// Check provided vars first, then environment.
		if value, ok := vars[name]; ok && value != "" {
			return value
		}
		if value := os.Getenv(name); value != "" {
			return value
		}
		return defaultValue
	})
}

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	var errs []error

	if len(c.Assets.Patterns) == 0 {
		errs = append(errs, errors.New("assets.patterns must name at least one pattern"))
	}
	for _, pattern := range c.Assets.Patterns {
		if pattern == "" {
			errs = append(errs, errors.New("assets.patterns contains an empty pattern"))
		}
	}

	if c.Azalea.Format && c.Azalea.Minify {
		errs = append(errs, errors.New("azalea.format and azalea.minify are mutually exclusive"))
	}

	if !strings.HasPrefix(c.Script.Extension, ".") || len(c.Script.Extension) < 2 {
		errs = append(errs, fmt.Errorf("script.extension must start with a dot: %q", c.Script.Extension))
	}
	if strings.TrimSpace(c.Script.DecodeExpression) == "" {
		errs = append(errs, errors.New("script.decode_expression is required"))
	}

	if c.Benchmark.Decimals < 0 {
		errs = append(errs, fmt.Errorf("benchmark.decimals must not be negative: %d", c.Benchmark.Decimals))
	}

	if c.Concurrency < 0 {
		errs = append(errs, fmt.Errorf("concurrency must not be negative: %d", c.Concurrency))
	}

	return errors.Join(errs...)
}
