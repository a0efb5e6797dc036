// Copyright 2026 The Azpack Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"strings"
	"testing"

	"github.com/azalea-tools/azpack/lib/version"
)

func TestVersion(t *testing.T) {
	stdout, err := execute(t, "version")
	if err != nil {
		t.Fatalf("version: %v", err)
	}
	if !strings.HasPrefix(stdout, "azpack "+version.Short()) {
		t.Errorf("stdout = %q", stdout)
	}
}

func TestRoot_SubcommandNames(t *testing.T) {
	root := Root()
	want := []string{"pack", "compare", "verify", "clean", "manifest", "version"}
	if len(root.Subcommands) != len(want) {
		t.Fatalf("got %d subcommands, want %d", len(root.Subcommands), len(want))
	}
	for i, name := range want {
		if root.Subcommands[i].Name != name {
			t.Errorf("subcommand %d = %q, want %q", i, root.Subcommands[i].Name, name)
		}
		if root.Subcommands[i].Summary == "" {
			t.Errorf("subcommand %q has no summary", name)
		}
	}
}

func TestRoot_UnknownCommand(t *testing.T) {
	_, err := execute(t, "compre")
	if err == nil || !strings.Contains(err.Error(), `did you mean "compare"`) {
		t.Errorf("error = %v, want suggestion for compare", err)
	}
}
