// Copyright 2026 The Azpack Authors
// SPDX-License-Identifier: Apache-2.0

package manifest

import (
	"encoding/hex"
	"fmt"

	"github.com/zeebo/blake3"
)

// Digest is a 32-byte keyed BLAKE3 hash of a RawArtifact.
type Digest [32]byte

// rawDomainKey separates manifest digests from any other BLAKE3 use of
// the same bytes. ASCII "azpack.manifest.raw", zero-padded to 32
// bytes. Changing it invalidates every recorded digest.
var rawDomainKey = [32]byte{
	'a', 'z', 'p', 'a', 'c', 'k', '.', 'm', 'a', 'n', 'i', 'f', 'e', 's', 't', '.',
	'r', 'a', 'w', 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
}

// HashRaw computes the manifest digest of RawArtifact bytes.
func HashRaw(data []byte) Digest {
	// NewKeyed only fails for keys that are not 32 bytes.
	hasher, err := blake3.NewKeyed(rawDomainKey[:])
	if err != nil {
		panic("manifest: BLAKE3 keyed hash initialization failed: " + err.Error())
	}
	hasher.Write(data)
	var digest Digest
	copy(digest[:], hasher.Sum(nil))
	return digest
}

// String returns the hex encoding of the digest.
func (d Digest) String() string {
	return hex.EncodeToString(d[:])
}

// ParseDigest parses a 64-character hex string.
func ParseDigest(hexString string) (Digest, error) {
	var digest Digest
	decoded, err := hex.DecodeString(hexString)
	if err != nil {
		return digest, fmt.Errorf("parsing digest: %w", err)
	}
	if len(decoded) != len(digest) {
		return digest, fmt.Errorf("digest is %d bytes, want %d", len(decoded), len(digest))
	}
	copy(digest[:], decoded)
	return digest, nil
}
