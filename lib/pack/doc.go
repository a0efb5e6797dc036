// Copyright 2026 The Azpack Authors
// SPDX-License-Identifier: Apache-2.0

// Package pack turns model assets into embeddable Luau literals.
//
// A run is a single-shot batch in three stages, each fully joined
// before the next begins:
//
//  1. Encode: the external encoder serializes every asset to its
//     RawArtifact (S.bin). The decoder generator runs alongside. This
//     is a barrier: stage 2 reads the encoder's files from disk, so
//     nothing is packaged until every encode has finished. One failed
//     encode cancels the rest and aborts the run; no asset reaches the
//     packaged state.
//  2. Package: per asset, compress S.bin to S.bin.zst and emit the
//     literal S.luau. Assets are independent and run in parallel.
//  3. Record: write the manifest (see lib/manifest).
//
// Every stage is fail-fast with no retries. All outputs are a pure
// function of the inputs, so the recovery for any failure is to fix the
// cause and rerun the batch.
//
// [Verify] checks already-packaged literals by decoding them back to
// RawArtifact bytes. [Clean] removes generated artifacts.
package pack
