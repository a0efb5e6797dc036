// Copyright 2026 The Azpack Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"errors"
	"os"
	"strings"
	"testing"

	"github.com/azalea-tools/azpack/cmd/azpack/cli"
)

func TestCompare(t *testing.T) {
	w := newWorkspace(t)
	noise := w.incompressible(t, "noise.rbxm")
	tree := w.compressible(t, "tree.rbxm")

	stdout, err := execute(t, w.args("compare")...)
	if err != nil {
		t.Fatalf("compare: %v", err)
	}

	report := strings.Split(strings.TrimSpace(stdout), "\n")
	if len(report) != 3 {
		t.Fatalf("got %d lines, want 3:\n%s", len(report), stdout)
	}

	wantLoss := "loss! " + w.artifact("noise.bin.zst") + " (via Azalea) is larger than " + noise + " (via Roblox) by "
	if !strings.HasPrefix(report[0], wantLoss) {
		t.Errorf("line 0 =\n  %q\nwant prefix\n  %q", report[0], wantLoss)
	}
	wantWin := "win! " + w.artifact("tree.bin.zst") + " (via Azalea) is smaller than " + tree + " (via Roblox) by "
	if !strings.HasPrefix(report[1], wantWin) {
		t.Errorf("line 1 =\n  %q\nwant prefix\n  %q", report[1], wantWin)
	}
	if !strings.HasPrefix(report[2], "total: 1 won, 1 lost; ") {
		t.Errorf("summary = %q", report[2])
	}
	if strings.Contains(stdout, "\x1b[") {
		t.Error("--no-color output contains escape sequences")
	}
}

func TestCompare_FailOnLoss(t *testing.T) {
	w := newWorkspace(t)
	w.incompressible(t, "noise.rbxm")

	_, err := execute(t, w.args("compare", "--fail-on-loss")...)
	var exitError *cli.ExitError
	if !errors.As(err, &exitError) {
		t.Fatalf("compare error = %v, want *cli.ExitError", err)
	}
	if exitError.Code != cli.ExitFailure {
		t.Errorf("exit code = %d, want %d", exitError.Code, cli.ExitFailure)
	}
}

func TestCompare_FailOnLossPassesOnWins(t *testing.T) {
	w := newWorkspace(t)
	w.compressible(t, "tree.rbxm")

	if _, err := execute(t, w.args("compare", "--fail-on-loss")...); err != nil {
		t.Fatalf("compare: %v", err)
	}
}

func TestCompare_NoPack(t *testing.T) {
	w := newWorkspace(t)
	w.compressible(t, "tree.rbxm")

	if _, err := execute(t, w.args("pack")...); err != nil {
		t.Fatalf("pack: %v", err)
	}
	// Without repacking, a broken azalea is never run.
	if err := os.WriteFile(w.azalea, []byte("#!/bin/sh\nexit 9\n"), 0755); err != nil {
		t.Fatal(err)
	}

	stdout, err := execute(t, w.args("compare", "--no-pack", "--decimals", "0")...)
	if err != nil {
		t.Fatalf("compare --no-pack: %v", err)
	}
	if !strings.HasPrefix(stdout, "win! ") {
		t.Errorf("stdout = %q", stdout)
	}
}

func TestCompare_NoPackWithoutArtifacts(t *testing.T) {
	w := newWorkspace(t)
	w.compressible(t, "tree.rbxm")

	_, err := execute(t, w.args("compare", "--no-pack")...)
	if cli.Category(err) != cli.CategoryNotFound {
		t.Fatalf("compare error = %v, want not_found", err)
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("error does not wrap os.ErrNotExist: %v", err)
	}
}

func TestCompare_Literal(t *testing.T) {
	w := newWorkspace(t)
	w.compressible(t, "tree.rbxm")

	stdout, err := execute(t, w.args("compare", "--literal")...)
	if err != nil {
		t.Fatalf("compare --literal: %v", err)
	}
	if !strings.Contains(stdout, w.artifact("tree.luau")+" (via Azalea)") {
		t.Errorf("report does not measure the literal:\n%s", stdout)
	}
}
