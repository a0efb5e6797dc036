// Copyright 2026 The Azpack Authors
// SPDX-License-Identifier: Apache-2.0

// Package azalea provides typed access to the azalea binary, the
// external tool that owns the model format. azpack consumes two of its
// capabilities and treats both as opaque:
//
//   - [Encoder]: serialize one model file into a flat binary artifact.
//   - [DecoderGenerator]: emit the Luau decoder that reconstructs
//     buffers from packaged literals and deserializes them.
//
// [Binary] implements both by running the executable. Any non-zero
// exit is reported as a [*ProcessError] carrying the command line,
// the exit code, and captured stderr (azalea writes its diagnostics
// there). Callers treat a ProcessError as fatal for the batch.
package azalea
