// Copyright 2026 The Azpack Authors
// SPDX-License-Identifier: Apache-2.0

package process

import (
	"fmt"
	"io"
	"os"
)

// Fatal writes "error: err" to stderr and exits with code 1. Use it in
// main() for errors from run() where the structured logger may not be
// initialized.
func Fatal(err error) {
	FatalStatus(err, 1)
}

// FatalStatus is [Fatal] with an explicit exit status. A status below 1
// is raised to 1 so an error never exits successfully.
func FatalStatus(err error, status int) {
	report(os.Stderr, err)
	os.Exit(max(status, 1))
}

func report(w io.Writer, err error) {
	fmt.Fprintf(w, "error: %v\n", err)
}
