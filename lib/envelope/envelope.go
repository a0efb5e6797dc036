// Copyright 2026 The Azpack Authors
// SPDX-License-Identifier: Apache-2.0

package envelope

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
)

// BufferType is the only accepted value of the "t" key.
const BufferType = "buffer"

// Wire key names. Frozen.
const (
	KeyMetadata = "m"
	KeyType     = "t"
	KeyPayload  = "zbase64"
)

// ErrMalformed is wrapped by every error that reports an envelope or
// literal not matching the frozen format.
var ErrMalformed = errors.New("malformed envelope")

// Envelope is the three-key structure embedded in a literal. Field
// order here is the key order on the wire.
type Envelope struct {
	// Metadata is always nil and encodes as JSON null.
	Metadata any `json:"m"`

	// Type is always [BufferType].
	Type string `json:"t"`

	// ZBase64 is the standard (padded) base64 encoding of a zstd frame.
	ZBase64 string `json:"zbase64"`
}

// New wraps compressed bytes in an envelope.
func New(compressed []byte) Envelope {
	return Envelope{
		Metadata: nil,
		Type:     BufferType,
		ZBase64:  base64.StdEncoding.EncodeToString(compressed),
	}
}

// Encode returns the compact JSON form of the envelope. HTML escaping
// is disabled so the output is exactly what the decoder expects to
// read, byte for byte.
func (e Envelope) Encode() ([]byte, error) {
	var buffer bytes.Buffer
	encoder := json.NewEncoder(&buffer)
	encoder.SetEscapeHTML(false)
	if err := encoder.Encode(e); err != nil {
		return nil, fmt.Errorf("encoding envelope: %w", err)
	}
	// json.Encoder terminates each value with a newline.
	return bytes.TrimSuffix(buffer.Bytes(), []byte("\n")), nil
}

// Payload decodes the base64 payload, returning the compressed bytes.
func (e Envelope) Payload() ([]byte, error) {
	compressed, err := base64.StdEncoding.DecodeString(e.ZBase64)
	if err != nil {
		return nil, fmt.Errorf("%w: zbase64 payload: %v", ErrMalformed, err)
	}
	return compressed, nil
}

// Decode parses JSON envelope text and checks it against the frozen
// schema: exactly the keys m, t, and zbase64; m null; t "buffer";
// zbase64 a string.
func Decode(data []byte) (Envelope, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return Envelope{}, fmt.Errorf("%w: %v", ErrMalformed, err)
	}

	if len(fields) != 3 {
		return Envelope{}, fmt.Errorf("%w: got %d keys, want 3", ErrMalformed, len(fields))
	}
	for _, key := range []string{KeyMetadata, KeyType, KeyPayload} {
		if _, ok := fields[key]; !ok {
			return Envelope{}, fmt.Errorf("%w: missing key %q", ErrMalformed, key)
		}
	}

	if string(bytes.TrimSpace(fields[KeyMetadata])) != "null" {
		return Envelope{}, fmt.Errorf("%w: %q must be null, got %s", ErrMalformed, KeyMetadata, fields[KeyMetadata])
	}

	var envelope Envelope
	if err := json.Unmarshal(fields[KeyType], &envelope.Type); err != nil {
		return Envelope{}, fmt.Errorf("%w: %q: %v", ErrMalformed, KeyType, err)
	}
	if envelope.Type != BufferType {
		return Envelope{}, fmt.Errorf("%w: %q is %q, want %q", ErrMalformed, KeyType, envelope.Type, BufferType)
	}
	if err := json.Unmarshal(fields[KeyPayload], &envelope.ZBase64); err != nil {
		return Envelope{}, fmt.Errorf("%w: %q: %v", ErrMalformed, KeyPayload, err)
	}

	return envelope, nil
}
