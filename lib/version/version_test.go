// Copyright 2026 The Azpack Authors
// SPDX-License-Identifier: Apache-2.0

package version

import (
	"runtime/debug"
	"strings"
	"testing"
)

func TestMergeBuildInfo_FillsDefaults(t *testing.T) {
	info := &debug.BuildInfo{
		Settings: []debug.BuildSetting{
			{Key: "vcs.revision", Value: "0123456789abcdef"},
			{Key: "vcs.time", Value: "2026-03-01T12:00:00Z"},
			{Key: "vcs.modified", Value: "true"},
		},
		Deps: []*debug.Module{
			{Path: "golang.org/x/sync", Version: "v0.18.0"},
			{Path: compressModule, Version: "v1.18.4"},
		},
	}

	got := mergeBuildInfo(buildStamp{commit: "unknown", dirty: "false", time: "unknown", compress: "unknown"}, info)
	if got.commit != "0123456" {
		t.Errorf("commit = %q, want %q", got.commit, "0123456")
	}
	if got.time != "2026-03-01T12:00:00Z" {
		t.Errorf("time = %q", got.time)
	}
	if got.dirty != "true" {
		t.Errorf("dirty = %q, want true", got.dirty)
	}
	if got.compress != "v1.18.4" {
		t.Errorf("compress = %q, want v1.18.4", got.compress)
	}
}

func TestMergeBuildInfo_LdflagsWin(t *testing.T) {
	info := &debug.BuildInfo{
		Settings: []debug.BuildSetting{
			{Key: "vcs.revision", Value: "ffffffffffff"},
			{Key: "vcs.time", Value: "2020-01-01T00:00:00Z"},
		},
	}

	got := mergeBuildInfo(buildStamp{commit: "abc1234", dirty: "false", time: "2026-02-10T00:00:00Z", compress: "unknown"}, info)
	if got.commit != "abc1234" || got.time != "2026-02-10T00:00:00Z" {
		t.Errorf("ldflags values overwritten: %+v", got)
	}
}

func TestMergeBuildInfo_ReplacedModule(t *testing.T) {
	info := &debug.BuildInfo{
		Deps: []*debug.Module{
			{Path: compressModule, Version: "v1.18.4", Replace: &debug.Module{Path: compressModule, Version: "v1.18.5"}},
		},
	}
	got := mergeBuildInfo(buildStamp{commit: "unknown", time: "unknown", compress: "unknown"}, info)
	if got.compress != "v1.18.5" {
		t.Errorf("compress = %q, want replacement version", got.compress)
	}
}

func TestShortRevision(t *testing.T) {
	if got := shortRevision("abc"); got != "abc" {
		t.Errorf("shortRevision(abc) = %q", got)
	}
	if got := shortRevision("abcdef0123"); got != "abcdef0" {
		t.Errorf("shortRevision(abcdef0123) = %q", got)
	}
}

func TestFormatting(t *testing.T) {
	if Short() != Version {
		t.Errorf("Short() = %q, want %q", Short(), Version)
	}
	if !strings.HasPrefix(Info(), Version+" (") {
		t.Errorf("Info() = %q, want prefix %q", Info(), Version+" (")
	}
	full := Full()
	for _, want := range []string{Info(), "Go: ", "Platform: ", "zstd: " + compressModule} {
		if !strings.Contains(full, want) {
			t.Errorf("Full() = %q, missing %q", full, want)
		}
	}
}
