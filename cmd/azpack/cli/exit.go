// Copyright 2026 The Azpack Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"errors"
	"fmt"
)

// ExitError signals a non-zero exit code without printing an extra
// error message. The command is expected to have already written its
// own output; "azpack compare --fail-on-loss" uses it to fail a build
// after printing the report.
type ExitError struct {
	Code int
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("exit code %d", e.Code)
}

// ExitCode returns the exit code.
func (e *ExitError) ExitCode() int {
	return e.Code
}

// IsExitError reports whether err carries an [ExitError]: a non-zero
// exit whose output the command has already written. main prints no
// "error:" line for these.
func IsExitError(err error) bool {
	var exitError *ExitError
	return errors.As(err, &exitError)
}
