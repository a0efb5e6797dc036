// Copyright 2026 The Azpack Authors
// SPDX-License-Identifier: Apache-2.0

package version

import (
	"fmt"
	"runtime"
	"runtime/debug"
	"sync"
)

// These variables are set via -ldflags at build time, for example:
//
//	go build -ldflags "-X github.com/azalea-tools/azpack/lib/version.GitCommit=$(git rev-parse --short HEAD)"
var (
	// GitCommit is the short git SHA of the build.
	GitCommit = "unknown"

	// GitDirty indicates whether there were uncommitted changes.
	GitDirty = "false"

	// BuildTime is the UTC timestamp of the build.
	BuildTime = "unknown"

	// Version is the semantic version. This is set manually for releases.
	Version = "0.1.0-dev"
)

// compressModule is the module whose version determines the exact
// bytes of every compressed artifact.
const compressModule = "github.com/klauspost/compress"

type buildStamp struct {
	commit   string
	dirty    string
	time     string
	compress string
}

var stamp = sync.OnceValue(func() buildStamp {
	result := buildStamp{
		commit:   GitCommit,
		dirty:    GitDirty,
		time:     BuildTime,
		compress: "unknown",
	}
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return result
	}
	return mergeBuildInfo(result, info)
})

// mergeBuildInfo fills fields that ldflags left at their defaults from
// the toolchain's VCS stamp, and records the compressor version.
func mergeBuildInfo(result buildStamp, info *debug.BuildInfo) buildStamp {
	settings := make(map[string]string, len(info.Settings))
	for _, setting := range info.Settings {
		settings[setting.Key] = setting.Value
	}

	// The dirty flag only describes the VCS revision, so it is taken
	// only when the commit is.
	if revision := settings["vcs.revision"]; result.commit == "unknown" && revision != "" {
		result.commit = shortRevision(revision)
		if settings["vcs.modified"] == "true" {
			result.dirty = "true"
		}
	}
	if vcsTime := settings["vcs.time"]; result.time == "unknown" && vcsTime != "" {
		result.time = vcsTime
	}

	for _, module := range info.Deps {
		if module.Path != compressModule {
			continue
		}
		result.compress = module.Version
		if module.Replace != nil {
			result.compress = module.Replace.Version
		}
	}
	return result
}

func shortRevision(revision string) string {
	if len(revision) > 7 {
		return revision[:7]
	}
	return revision
}

// Info returns a formatted version string suitable for --version output.
func Info() string {
	current := stamp()
	dirty := ""
	if current.dirty == "true" {
		dirty = "-dirty"
	}
	return fmt.Sprintf("%s (%s%s, %s)", Version, current.commit, dirty, current.time)
}

// Full returns detailed version information including the Go version
// and the zstd library version. Two builds produce byte-identical
// artifacts only when their zstd versions match.
func Full() string {
	return fmt.Sprintf("%s\n  Go: %s\n  Platform: %s/%s\n  zstd: %s %s",
		Info(), runtime.Version(), runtime.GOOS, runtime.GOARCH, compressModule, stamp().compress)
}

// Short returns just the version number.
func Short() string {
	return Version
}

// Commit returns the git commit SHA.
func Commit() string {
	return stamp().commit
}
