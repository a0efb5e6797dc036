// Copyright 2026 The Azpack Authors
// SPDX-License-Identifier: Apache-2.0

package manifest

import (
	"github.com/fxamacker/cbor/v2"
)

// encMode encodes with Core Deterministic Encoding. Same logical data
// always produces identical bytes.
var encMode cbor.EncMode

// decMode rejects duplicate map keys. Unknown fields are ignored so a
// newer manifest with extra fields still loads.
var decMode cbor.DecMode

func init() {
	var err error

	encMode, err = cbor.CoreDetEncOptions().EncMode()
	if err != nil {
		panic("manifest: CBOR encoder initialization failed: " + err.Error())
	}

	decMode, err = cbor.DecOptions{
		DupMapKey: cbor.DupMapKeyEnforcedAPF,
	}.DecMode()
	if err != nil {
		panic("manifest: CBOR decoder initialization failed: " + err.Error())
	}
}

// Diagnose returns the RFC 8949 diagnostic notation of encoded
// manifest bytes, for inspection from the command line.
func Diagnose(data []byte) (string, error) {
	return cbor.Diagnose(data)
}
