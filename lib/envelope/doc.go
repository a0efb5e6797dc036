// Copyright 2026 The Azpack Authors
// SPDX-License-Identifier: Apache-2.0

// Package envelope defines the wire format that embeds a compressed
// artifact in a Luau script.
//
// The envelope is a JSON object with exactly three keys, in this
// order:
//
//	{"m":null,"t":"buffer","zbase64":"<standard base64 of a zstd frame>"}
//
// "m" is always null, "t" is always "buffer", and "zbase64" carries
// the payload. The generated decoder recognizes this shape when it
// JSON-decodes the literal at load time, so the key names, key count,
// and value shapes are frozen. Changing any of them is a breaking
// format change that must ship together with a regenerated decoder.
//
// A literal script is the envelope passed verbatim, inside a Luau long
// bracket string, to a JSON decode call:
//
//	return game:GetService("HttpService"):JSONDecode([[{...}]])
//
// Base64 text never contains "]]", so the long bracket needs no
// escaping.
package envelope
