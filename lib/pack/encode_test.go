// Copyright 2026 The Azpack Authors
// SPDX-License-Identifier: Apache-2.0

package pack

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"
)

func TestEncodeAll(t *testing.T) {
	assets := writeAssets(t, "a.rbxm", "b.rbxm", "c.rbxm")
	layouts := mustLayouts(t, assets)
	encoder := &fakeEncoder{}

	if err := EncodeAll(context.Background(), encoder, layouts, 2, testLogger()); err != nil {
		t.Fatalf("EncodeAll: %v", err)
	}

	for _, layout := range layouts {
		if !fileExists(t, layout.Raw) {
			t.Errorf("raw artifact %s missing", layout.Raw)
		}
	}
	if len(encoder.encoded) != len(layouts) {
		t.Errorf("encoded %d assets, want %d", len(encoder.encoded), len(layouts))
	}
}

func TestEncodeAll_RespectsConcurrency(t *testing.T) {
	assets := writeAssets(t, "a.rbxm", "b.rbxm", "c.rbxm", "d.rbxm", "e.rbxm", "f.rbxm")
	encoder := &fakeEncoder{delay: 20 * time.Millisecond}

	if err := EncodeAll(context.Background(), encoder, mustLayouts(t, assets), 2, testLogger()); err != nil {
		t.Fatalf("EncodeAll: %v", err)
	}
	if got := encoder.maxInUse.Load(); got > 2 {
		t.Errorf("observed %d concurrent encodes, limit was 2", got)
	}
}

func TestEncodeAll_FailureIsFatal(t *testing.T) {
	assets := writeAssets(t, "a.rbxm", "broken.rbxm", "c.rbxm")
	encoder := &fakeEncoder{failOn: "broken"}

	err := EncodeAll(context.Background(), encoder, mustLayouts(t, assets), 1, testLogger())
	if !errors.Is(err, errEncodeFailed) {
		t.Fatalf("EncodeAll error = %v, want errEncodeFailed", err)
	}
	if !strings.Contains(err.Error(), "broken.rbxm") {
		t.Errorf("error = %q, want failing asset named", err)
	}
}

func TestEncodeAll_CancelsSiblings(t *testing.T) {
	assets := writeAssets(t, "broken.rbxm", "slow1.rbxm", "slow2.rbxm", "slow3.rbxm")
	encoder := &fakeEncoder{failOn: "broken", delay: 10 * time.Millisecond}

	// With one worker, the failing asset runs first. errgroup cancels
	// the batch context before releasing the worker slot, so every
	// queued sibling sees the cancellation and never encodes.
	err := EncodeAll(context.Background(), encoder, mustLayouts(t, assets), 1, testLogger())
	if !errors.Is(err, errEncodeFailed) {
		t.Fatalf("EncodeAll error = %v, want errEncodeFailed", err)
	}
	if len(encoder.encoded) != 0 {
		t.Errorf("encoded %v after the first failure with concurrency 1, want none", encoder.encoded)
	}
}
