// Copyright 2026 The Azpack Authors
// SPDX-License-Identifier: Apache-2.0

// Package manifest records what a pack run produced. One [Entry] per
// asset lists the artifact paths, their sizes, and a BLAKE3 digest of
// the RawArtifact, so that "azpack verify" can later prove each
// literal still decodes to the bytes the encoder produced, even after
// the raw .bin files have been cleaned away.
//
// The manifest is CBOR with Core Deterministic Encoding (RFC 8949
// §4.2): sorted map keys, smallest integer encoding, no
// indefinite-length items. Entries are sorted by asset path and carry
// no timestamps, so identical runs write identical manifests.
package manifest
