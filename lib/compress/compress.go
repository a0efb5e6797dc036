// Copyright 2026 The Azpack Authors
// SPDX-License-Identifier: Apache-2.0

package compress

import (
	"fmt"

	"github.com/klauspost/compress/zstd"
)

// Level is the zstd encoder level used for every artifact.
const Level = zstd.SpeedBestCompression

// UltraWindowSize caps the match window in ultra mode. 128 MiB is the
// window zstd uses at level 22, the top of its --ultra range.
const UltraWindowSize = 1 << 27

// decoder is shared across calls. zstd.Decoder.DecodeAll is safe for
// concurrent use.
var decoder *zstd.Decoder

func init() {
	var err error
	decoder, err = zstd.NewReader(nil,
		zstd.WithDecoderMaxWindow(UltraWindowSize),
	)
	if err != nil {
		panic("compress: zstd decoder initialization failed: " + err.Error())
	}
}

// WindowSize returns the match window used for an input of length n.
// Ultra mode sizes the window to cover the whole input (rounded up to
// a power of two) so that a match can reach back to any earlier byte,
// bounded by [UltraWindowSize].
func WindowSize(n int) int {
	size := zstd.MinWindowSize
	for size < n && size < UltraWindowSize {
		size <<= 1
	}
	return size
}

// Compress returns a single zstd frame holding data. The frame carries
// the content size and a checksum. Empty input produces a valid empty
// frame rather than no output, so every artifact decodes.
func Compress(data []byte) ([]byte, error) {
	// A fresh encoder per call: the window depends on the input length,
	// and no encoder state outlives the call.
	encoder, err := zstd.NewWriter(nil,
		zstd.WithEncoderLevel(Level),
		zstd.WithWindowSize(WindowSize(len(data))),
		zstd.WithEncoderConcurrency(1),
		zstd.WithAllLitEntropyCompression(true),
		zstd.WithEncoderCRC(true),
		zstd.WithZeroFrames(true),
	)
	if err != nil {
		return nil, fmt.Errorf("zstd encoder: %w", err)
	}
	defer encoder.Close()

	return encoder.EncodeAll(data, make([]byte, 0, len(data)/2+64)), nil
}

// Decompress reverses [Compress]. It is used by verification and
// tests; the target runtime ships its own decoder.
func Decompress(compressed []byte) ([]byte, error) {
	result, err := decoder.DecodeAll(compressed, nil)
	if err != nil {
		return nil, fmt.Errorf("zstd decompress: %w", err)
	}
	return result, nil
}
