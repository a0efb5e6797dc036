// Copyright 2026 The Azpack Authors
// SPDX-License-Identifier: Apache-2.0

// Package process provides the binary entrypoint error handler for
// azpack. It covers the one legitimate raw write to stderr that exists
// outside the structured logger: reporting the error that ended main()
// before exiting.
package process
