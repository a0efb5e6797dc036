// Copyright 2026 The Azpack Authors
// SPDX-License-Identifier: Apache-2.0

// Package byteformat renders byte counts as human-readable strings
// using binary (1024-based) units: bytes, KiB, MiB, GiB, TiB, PiB,
// EiB, ZiB, YiB.
//
// The largest unit whose scaled magnitude is at least 1 is chosen, and
// the scaled value is rounded to a caller-supplied number of decimals
// with trailing zeros dropped:
//
//	Format(0, 2)       → "0 bytes"
//	Format(1536, 2)    → "1.5 KiB"
//	Format(7000, 2)    → "6.84 KiB"
//	Format(1048576, 2) → "1 MiB"
package byteformat
