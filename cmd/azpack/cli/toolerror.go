// Copyright 2026 The Azpack Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"errors"
	"fmt"
)

// ErrorCategory classifies command errors so that main (and scripts
// driving azpack) can tell bad input from a failed run without parsing
// error text.
type ErrorCategory string

const (
	// CategoryValidation indicates the caller provided invalid input:
	// unknown commands or flags, bad flag values, an invalid config
	// file. The caller should fix the input and retry.
	CategoryValidation ErrorCategory = "validation"

	// CategoryNotFound indicates a referenced input does not exist:
	// no asset matched the patterns, or the azalea binary is missing.
	CategoryNotFound ErrorCategory = "not_found"

	// CategoryInternal indicates an unexpected error: a failed external
	// process, I/O failures, a broken round trip.
	CategoryInternal ErrorCategory = "internal"
)

// Exit statuses by category.
const (
	ExitFailure = 1
	ExitUsage   = 2
)

// ToolError is a categorized error returned by CLI commands.
//
// ToolError wraps an inner error, preserving the full error chain for
// debugging while adding category metadata. Use the category-specific
// constructors rather than constructing ToolError directly.
type ToolError struct {
	// Category classifies the error for programmatic handling.
	Category ErrorCategory

	// Err is the underlying error with the human-readable message.
	Err error

	// Hint, when set, tells the user how to fix the problem. It is
	// appended to the message after a blank line.
	Hint string
}

// Error returns the underlying error message followed by the hint, if
// any. The category is not included in the string.
func (e *ToolError) Error() string {
	if e.Hint == "" {
		return e.Err.Error()
	}
	return e.Err.Error() + "\n\n" + e.Hint
}

// WithHint sets the hint and returns the receiver for chaining.
func (e *ToolError) WithHint(hint string) *ToolError {
	e.Hint = hint
	return e
}

// Unwrap returns the underlying error, allowing errors.Is and
// errors.As to walk the full chain through the ToolError wrapper.
func (e *ToolError) Unwrap() error { return e.Err }

// Validation creates a validation error: the caller provided bad input.
func Validation(format string, args ...any) *ToolError {
	return &ToolError{Category: CategoryValidation, Err: fmt.Errorf(format, args...)}
}

// NotFound creates a not-found error: a referenced input does not exist.
func NotFound(format string, args ...any) *ToolError {
	return &ToolError{Category: CategoryNotFound, Err: fmt.Errorf(format, args...)}
}

// Internal creates an internal error: an unexpected failure, bug, or I/O error.
func Internal(format string, args ...any) *ToolError {
	return &ToolError{Category: CategoryInternal, Err: fmt.Errorf(format, args...)}
}

// Category returns the category of the first ToolError in err's chain,
// or [CategoryInternal] when there is none.
func Category(err error) ErrorCategory {
	var toolError *ToolError
	if errors.As(err, &toolError) {
		return toolError.Category
	}
	return CategoryInternal
}

// ExitStatus maps an error to a process exit status: 0 for nil,
// [ExitUsage] for validation errors, the requested code for an
// [ExitError], and [ExitFailure] otherwise. Other errors with an
// ExitCode method (a failed azalea run wraps *exec.ExitError) are not
// exit requests and map to [ExitFailure].
func ExitStatus(err error) int {
	if err == nil {
		return 0
	}
	var exitError *ExitError
	if errors.As(err, &exitError) {
		return exitError.Code
	}
	if Category(err) == CategoryValidation {
		return ExitUsage
	}
	return ExitFailure
}
