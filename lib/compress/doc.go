// Copyright 2026 The Azpack Authors
// SPDX-License-Identifier: Apache-2.0

// Package compress is the publish-time compression stage. It runs
// zstd at the highest effort the encoder offers, with "ultra" window
// sizing, because output size matters far more than CPU time: the
// result is embedded in scripts that are downloaded and decoded by
// every consumer.
//
// The configuration is fixed. Callers cannot tune it, which keeps the
// output a pure function of the input bytes: compressing the same
// RawArtifact twice yields byte-identical frames. Nothing in a frame
// depends on time, randomness, or process state.
//
// [Compress] and [Decompress] are safe for concurrent use and share no
// mutable state between calls, so the packager fans them out across
// assets freely.
package compress
