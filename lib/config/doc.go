// Copyright 2026 The Azpack Authors
// SPDX-License-Identifier: Apache-2.0

// Package config provides YAML configuration loading for azpack.
//
// Configuration comes from at most one file, named by the --config
// flag (via [LoadFile]) or the AZPACK_CONFIG environment variable (via
// [Load]). There is no directory search: with neither set, [Resolve]
// returns [Default], which matches the layout of a project checkout
// (assets under examples/, artifacts next to them).
//
// Variable expansion is performed on path fields after loading:
// ${HOME}, ${AZPACK_OUTPUT}, and ${VAR:-default} patterns are expanded.
// No other environment variables override config values; command-line
// flags are applied by the caller after loading.
//
// Key exports:
//
//   - [Config] -- master struct with Paths, Assets, Azalea, Script, Benchmark
//   - [Default] -- returns a Config with checkout defaults
//   - [Load], [LoadFile], and [Resolve] -- the entry points for loading
//
// This package depends on no other azpack packages.
package config
