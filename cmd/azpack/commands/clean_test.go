// Copyright 2026 The Azpack Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/azalea-tools/azpack/lib/manifest"
)

func TestClean(t *testing.T) {
	w := packedWorkspace(t)

	stdout, err := execute(t, w.args("clean")...)
	if err != nil {
		t.Fatalf("clean: %v", err)
	}

	for _, name := range []string{
		"tree.bin", "tree.bin.zst", "tree.luau",
		"noise.bin", "noise.bin.zst", "noise.luau",
		"decoder.luau", manifest.FileName,
	} {
		if exists(w.artifact(name)) {
			t.Errorf("%s survived clean", name)
		}
		if !strings.Contains(stdout, "removed "+w.artifact(name)+"\n") {
			t.Errorf("stdout does not report %s:\n%s", name, stdout)
		}
	}
	if !exists(filepath.Join(w.dir, "tree.rbxm")) {
		t.Error("clean removed an asset")
	}

	// A second run finds nothing to remove.
	stdout, err = execute(t, w.args("clean")...)
	if err != nil {
		t.Fatalf("second clean: %v", err)
	}
	if stdout != "" {
		t.Errorf("second clean removed %q", stdout)
	}
}

func TestClean_KeepDecoder(t *testing.T) {
	w := packedWorkspace(t)

	if _, err := execute(t, w.args("clean", "--keep-decoder")...); err != nil {
		t.Fatalf("clean: %v", err)
	}
	if !exists(w.decoder) {
		t.Error("--keep-decoder removed the decoder")
	}
	if exists(w.artifact("tree.luau")) {
		t.Error("literal survived clean")
	}
}

func TestClean_NoAssets(t *testing.T) {
	w := packedWorkspace(t)
	w.pattern = filepath.Join(w.dir, "*.none")

	stdout, err := execute(t, w.args("clean")...)
	if err != nil {
		t.Fatalf("clean without assets: %v", err)
	}
	if !strings.Contains(stdout, manifest.FileName) {
		t.Errorf("manifest not removed:\n%s", stdout)
	}
	if !exists(w.artifact("tree.luau")) {
		t.Error("clean removed artifacts of unmatched assets")
	}
}
