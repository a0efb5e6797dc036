// Copyright 2026 The Azpack Authors
// SPDX-License-Identifier: Apache-2.0

// Package version provides build version information for azpack.
//
// Four package-level variables are injected at build time via
// -ldflags -X:
//
//   - [GitCommit] -- short git SHA of the build
//   - [GitDirty] -- "true" if there were uncommitted changes
//   - [BuildTime] -- UTC timestamp of the build
//   - [Version] -- semantic version string (set manually for releases)
//
// When they are not injected (go install, development builds), the VCS
// stamp the Go toolchain embeds in the binary fills GitCommit, GitDirty,
// and BuildTime instead.
//
// Formatting functions produce human-readable version strings:
//
//   - [Info] -- "0.1.0-dev (abc1234, 2026-02-10T...)" for --version
//   - [Full] -- Info plus Go version, GOOS/GOARCH, and the zstd library version
//   - [Short] -- just the version number
//   - [Commit] -- just the git SHA
package version
