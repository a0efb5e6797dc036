// Copyright 2026 The Azpack Authors
// SPDX-License-Identifier: Apache-2.0

package envelope

import (
	"bytes"
	"fmt"
)

// DefaultDecodeExpression is the runtime call that turns the envelope
// text into a buffer.
const DefaultDecodeExpression = `game:GetService("HttpService"):JSONDecode`

// DefaultExtension is the file extension of emitted literal scripts.
const DefaultExtension = ".luau"

// typeAssertion is appended when [Script.TypeAssertion] is set.
const typeAssertion = " :: buffer"

const (
	literalPrefix = "return "
	openBracket   = "([["
	closeBracket  = "]])"
)

// Script controls how an envelope is wrapped into a literal.
type Script struct {
	// DecodeExpression is the callee receiving the envelope text.
	// Empty means [DefaultDecodeExpression].
	DecodeExpression string

	// TypeAssertion appends a Luau "buffer" type assertion to the
	// return expression.
	TypeAssertion bool
}

func (s Script) decodeExpression() string {
	if s.DecodeExpression == "" {
		return DefaultDecodeExpression
	}
	return s.DecodeExpression
}

// Render returns the full literal script for envelope:
//
//	return <decode-expression>([[<envelope json>]])
func Render(envelope Envelope, script Script) ([]byte, error) {
	encoded, err := envelope.Encode()
	if err != nil {
		return nil, err
	}

	var buffer bytes.Buffer
	buffer.WriteString(literalPrefix)
	buffer.WriteString(script.decodeExpression())
	buffer.WriteString(openBracket)
	buffer.Write(encoded)
	buffer.WriteString(closeBracket)
	if script.TypeAssertion {
		buffer.WriteString(typeAssertion)
	}
	return buffer.Bytes(), nil
}

// Emit is New followed by Render: compressed bytes in, literal script
// out.
func Emit(compressed []byte, script Script) ([]byte, error) {
	return Render(New(compressed), script)
}

// Parse extracts and validates the envelope from a literal script
// produced by [Render]. The decode expression is not checked, so
// literals rendered with any [Script] parse.
func Parse(literal []byte) (Envelope, error) {
	literal = bytes.TrimSpace(literal)
	if !bytes.HasPrefix(literal, []byte(literalPrefix)) {
		return Envelope{}, fmt.Errorf("%w: literal does not start with %q", ErrMalformed, literalPrefix)
	}
	literal = bytes.TrimSuffix(literal, []byte(typeAssertion))

	start := bytes.Index(literal, []byte(openBracket))
	if start < 0 {
		return Envelope{}, fmt.Errorf("%w: no %q in literal", ErrMalformed, openBracket)
	}
	if !bytes.HasSuffix(literal, []byte(closeBracket)) {
		return Envelope{}, fmt.Errorf("%w: literal does not end with %q", ErrMalformed, closeBracket)
	}
	body := literal[start+len(openBracket) : len(literal)-len(closeBracket)]

	return Decode(body)
}
