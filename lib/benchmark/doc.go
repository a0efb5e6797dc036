// Copyright 2026 The Azpack Authors
// SPDX-License-Identifier: Apache-2.0

// Package benchmark compares packaged artifacts with the reference
// artifacts the platform itself produces, to check that packaging
// actually wins on size.
//
// For each asset, delta = reference size − packaged size. A negative
// delta is a loss of |delta| bytes (packaging inflated the asset);
// anything else is a win saving delta bytes. Sizes are read from files
// that already exist; nothing here writes to disk.
package benchmark
