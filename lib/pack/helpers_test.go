// Copyright 2026 The Azpack Authors
// SPDX-License-Identifier: Apache-2.0

package pack

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

var errEncodeFailed = errors.New("encoder exited with status 1")

// fakeEncoder stands in for the azalea binary. It "encodes" an asset
// by prefixing its bytes with a header, so raw artifacts differ from
// their assets. Assets whose name contains failOn fail after delay.
type fakeEncoder struct {
	failOn string
	delay  time.Duration

	mutex    sync.Mutex
	encoded  []string
	active   atomic.Int32
	maxInUse atomic.Int32
}

func (f *fakeEncoder) Encode(ctx context.Context, assetPath, outputPath string) error {
	inUse := f.active.Add(1)
	defer f.active.Add(-1)
	for {
		current := f.maxInUse.Load()
		if inUse <= current || f.maxInUse.CompareAndSwap(current, inUse) {
			break
		}
	}

	if f.delay > 0 {
		select {
		case <-time.After(f.delay): //nolint:realclock simulated encoder latency
		case <-ctx.Done():
			return ctx.Err()
		}
	}

	if f.failOn != "" && strings.Contains(assetPath, f.failOn) {
		return errEncodeFailed
	}

	data, err := os.ReadFile(assetPath)
	if err != nil {
		return err
	}
	if err := os.WriteFile(outputPath, append([]byte("AZL1"), data...), 0644); err != nil {
		return err
	}

	f.mutex.Lock()
	f.encoded = append(f.encoded, assetPath)
	f.mutex.Unlock()
	return nil
}

type fakeDecoderGenerator struct {
	err error
}

func (f *fakeDecoderGenerator) Generate(ctx context.Context, outputPath string) error {
	if f.err != nil {
		return f.err
	}
	return os.WriteFile(outputPath, []byte("return function(buffer) end\n"), 0644)
}

// writeAssets creates count model files in a fresh directory and
// returns their paths.
func writeAssets(t *testing.T, names ...string) []string {
	t.Helper()
	directory := t.TempDir()
	var paths []string
	for i, name := range names {
		path := filepath.Join(directory, name)
		content := strings.Repeat(fmt.Sprintf("Model%d\x00Part\x00Anchored\x01", i), 200+i)
		if err := os.WriteFile(path, []byte(content), 0644); err != nil {
			t.Fatalf("WriteFile: %v", err)
		}
		paths = append(paths, path)
	}
	return paths
}

func mustLayouts(t *testing.T, assets []string) []Layout {
	t.Helper()
	layouts, err := Layouts(assets, "", "")
	if err != nil {
		t.Fatalf("Layouts: %v", err)
	}
	return layouts
}

func fileExists(t *testing.T, path string) bool {
	t.Helper()
	_, err := os.Stat(path)
	if err == nil {
		return true
	}
	if !os.IsNotExist(err) {
		t.Fatalf("Stat(%s): %v", path, err)
	}
	return false
}
