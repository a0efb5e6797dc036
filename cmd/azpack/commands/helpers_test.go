// Copyright 2026 The Azpack Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"bytes"
	"context"
	"math/rand/v2"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/azalea-tools/azpack/lib/config"
)

// fakeAzalea stands in for the azalea binary. "encode" copies the
// model to the raw artifact (failing for models named *broken*), and
// "generate-full-decoder" records its style flags in the output.
const fakeAzalea = `#!/bin/sh
case "$1" in
encode)
	case "$3" in
	*broken*)
		echo "failed to parse model $3" >&2
		exit 3
		;;
	esac
	cp "$3" "$5"
	;;
generate-full-decoder)
	out="$2"
	shift 2
	echo "-- decoder $*" > "$out"
	;;
*)
	exit 2
	;;
esac
`

// workspace is a temporary project: models in dir, artifacts in out.
type workspace struct {
	dir     string
	out     string
	azalea  string
	decoder string
	pattern string
}

func newWorkspace(t *testing.T) workspace {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("fake azalea is a shell script")
	}
	t.Setenv(config.EnvironmentVariable, "")

	root := t.TempDir()
	w := workspace{
		dir:     filepath.Join(root, "models"),
		out:     filepath.Join(root, "build"),
		azalea:  filepath.Join(root, "azalea"),
		decoder: filepath.Join(root, "build", "decoder.luau"),
	}
	w.pattern = filepath.Join(w.dir, "*.rbxm")

	if err := os.MkdirAll(w.dir, 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(w.azalea, []byte(fakeAzalea), 0755); err != nil {
		t.Fatal(err)
	}
	return w
}

// compressible writes a model that zstd shrinks well.
func (w workspace) compressible(t *testing.T, name string) string {
	t.Helper()
	content := strings.Repeat(`<Item class="Part" referent="RBX0"><Properties/></Item>`, 200)
	return w.write(t, name, []byte(content))
}

// incompressible writes a model of pseudo-random bytes, which zstd
// can only grow.
func (w workspace) incompressible(t *testing.T, name string) string {
	t.Helper()
	source := rand.NewChaCha8([32]byte{7})
	content := make([]byte, 4096)
	source.Read(content)
	return w.write(t, name, content)
}

func (w workspace) write(t *testing.T, name string, content []byte) string {
	t.Helper()
	path := filepath.Join(w.dir, name)
	if err := os.WriteFile(path, content, 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

// args builds a command line against the workspace.
func (w workspace) args(command string, extra ...string) []string {
	args := []string{command,
		"--azalea", w.azalea,
		"--output", w.out,
		"--decoder", w.decoder,
		"--no-color",
	}
	args = append(args, extra...)
	return append(args, w.pattern)
}

func (w workspace) artifact(name string) string {
	return filepath.Join(w.out, name)
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var stdout bytes.Buffer
	err := newRoot(&stdout).Execute(context.Background(), args)
	return stdout.String(), err
}

func exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
