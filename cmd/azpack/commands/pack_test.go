// Copyright 2026 The Azpack Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/azalea-tools/azpack/cmd/azpack/cli"
	"github.com/azalea-tools/azpack/lib/azalea"
	"github.com/azalea-tools/azpack/lib/compress"
	"github.com/azalea-tools/azpack/lib/envelope"
	"github.com/azalea-tools/azpack/lib/manifest"
	"github.com/azalea-tools/azpack/lib/pack"
)

func TestPack(t *testing.T) {
	w := newWorkspace(t)
	tree := w.compressible(t, "tree.rbxm")
	w.compressible(t, "lamp.rbxm")

	stdout, err := execute(t, w.args("pack")...)
	if err != nil {
		t.Fatalf("pack: %v", err)
	}

	for _, name := range []string{
		"tree.bin", "tree.bin.zst", "tree.luau",
		"lamp.bin", "lamp.bin.zst", "lamp.luau",
		"decoder.luau", manifest.FileName,
	} {
		if !exists(w.artifact(name)) {
			t.Errorf("%s was not written", name)
		}
	}

	literal, err := os.ReadFile(w.artifact("tree.luau"))
	if err != nil {
		t.Fatal(err)
	}
	prefix := `return game:GetService("HttpService"):JSONDecode([[{"m":null,"t":"buffer","zbase64":"`
	if !strings.HasPrefix(string(literal), prefix) || !strings.HasSuffix(string(literal), `"}]])`) {
		t.Errorf("unexpected literal %q", literal)
	}

	parsed, err := envelope.Parse(literal)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	payload, err := parsed.Payload()
	if err != nil {
		t.Fatal(err)
	}
	decoded, err := compress.Decompress(payload)
	if err != nil {
		t.Fatal(err)
	}
	original, _ := os.ReadFile(tree)
	if string(decoded) != string(original) {
		t.Error("literal does not decode to the raw artifact")
	}

	decoder, _ := os.ReadFile(w.decoder)
	if strings.TrimSpace(string(decoder)) != "-- decoder --format" {
		t.Errorf("decoder generated with %q, want default --format", decoder)
	}

	for _, want := range []string{"ASSET", "COMPRESSED", tree} {
		if !strings.Contains(stdout, want) {
			t.Errorf("stdout missing %q:\n%s", want, stdout)
		}
	}

	records, err := manifest.Load(w.artifact(manifest.FileName))
	if err != nil {
		t.Fatalf("Load manifest: %v", err)
	}
	if len(records.Entries) != 2 {
		t.Fatalf("manifest has %d entries, want 2", len(records.Entries))
	}
	if _, ok := records.Lookup(tree); !ok {
		t.Errorf("manifest has no entry for %s", tree)
	}
}

func TestPack_Quiet(t *testing.T) {
	w := newWorkspace(t)
	w.compressible(t, "tree.rbxm")

	stdout, err := execute(t, w.args("pack", "--quiet")...)
	if err != nil {
		t.Fatalf("pack: %v", err)
	}
	if stdout != "" {
		t.Errorf("--quiet printed %q", stdout)
	}
}

func TestPack_DecoderStyle(t *testing.T) {
	w := newWorkspace(t)
	w.compressible(t, "tree.rbxm")

	if _, err := execute(t, w.args("pack", "--minify", "--compat")...); err != nil {
		t.Fatalf("pack: %v", err)
	}
	decoder, _ := os.ReadFile(w.decoder)
	if strings.TrimSpace(string(decoder)) != "-- decoder --minify --compat" {
		t.Errorf("decoder generated with %q", decoder)
	}
}

func TestPack_FormatAndMinifyConflict(t *testing.T) {
	w := newWorkspace(t)
	w.compressible(t, "tree.rbxm")

	_, err := execute(t, w.args("pack", "--format", "--minify")...)
	if cli.Category(err) != cli.CategoryValidation {
		t.Fatalf("pack error = %v, want validation error", err)
	}
	if exists(w.artifact("tree.bin")) {
		t.Error("encoding started despite invalid flags")
	}
}

func TestPack_BadDecimals(t *testing.T) {
	w := newWorkspace(t)
	w.compressible(t, "tree.rbxm")

	_, err := execute(t, w.args("pack", "--decimals", "two")...)
	if cli.Category(err) != cli.CategoryValidation {
		t.Fatalf("pack error = %v, want validation error", err)
	}
}

func TestPack_NoAssets(t *testing.T) {
	w := newWorkspace(t)

	_, err := execute(t, w.args("pack")...)
	if !errors.Is(err, pack.ErrNoAssets) {
		t.Fatalf("pack error = %v, want ErrNoAssets", err)
	}
	if cli.Category(err) != cli.CategoryNotFound {
		t.Errorf("category = %q, want not_found", cli.Category(err))
	}
	if !strings.Contains(err.Error(), "assets.patterns") {
		t.Errorf("error has no hint: %q", err)
	}
}

func TestPack_MissingAzalea(t *testing.T) {
	w := newWorkspace(t)
	w.compressible(t, "tree.rbxm")
	w.azalea = filepath.Join(w.dir, "no-such-azalea")

	_, err := execute(t, w.args("pack")...)
	if cli.Category(err) != cli.CategoryNotFound {
		t.Fatalf("pack error = %v, want not_found", err)
	}
}

func TestPack_EncoderFailureStopsBatch(t *testing.T) {
	w := newWorkspace(t)
	w.compressible(t, "tree.rbxm")
	w.compressible(t, "broken.rbxm")

	_, err := execute(t, w.args("pack")...)
	var processError *azalea.ProcessError
	if !errors.As(err, &processError) {
		t.Fatalf("pack error = %v, want *azalea.ProcessError", err)
	}
	if processError.ExitCode != 3 {
		t.Errorf("exit code = %d, want 3", processError.ExitCode)
	}
	if !strings.Contains(processError.Stderr, "failed to parse model") {
		t.Errorf("stderr = %q", processError.Stderr)
	}
	if cli.ExitStatus(err) != cli.ExitFailure {
		t.Errorf("exit status = %d, want %d", cli.ExitStatus(err), cli.ExitFailure)
	}
	if cli.IsExitError(err) {
		t.Error("azalea failure would exit without printing the error")
	}

	for _, name := range []string{"tree.bin.zst", "tree.luau", manifest.FileName} {
		if exists(w.artifact(name)) {
			t.Errorf("%s written after an encode failure", name)
		}
	}
}

func TestPack_ConfigFile(t *testing.T) {
	w := newWorkspace(t)
	w.compressible(t, "tree.rbxm")

	configPath := filepath.Join(w.dir, "..", "azpack.yaml")
	content := "script:\n  extension: .lua\n  type_assertion: true\nazalea:\n  format: false\n"
	if err := os.WriteFile(configPath, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := execute(t, w.args("pack", "--config", configPath)...); err != nil {
		t.Fatalf("pack: %v", err)
	}

	literal, err := os.ReadFile(w.artifact("tree.lua"))
	if err != nil {
		t.Fatalf("literal with configured extension: %v", err)
	}
	if !strings.HasSuffix(string(literal), "]]) :: buffer") {
		t.Errorf("literal has no type assertion: %q", literal[len(literal)-20:])
	}
	decoder, _ := os.ReadFile(w.decoder)
	if strings.TrimSpace(string(decoder)) != "-- decoder" {
		t.Errorf("decoder generated with %q, want no style flags", decoder)
	}
}
