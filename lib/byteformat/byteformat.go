// Copyright 2026 The Azpack Authors
// SPDX-License-Identifier: Apache-2.0

package byteformat

import (
	"math"
	"strconv"
)

// DefaultDecimals is the precision used by benchmark reports when no
// explicit precision is configured.
const DefaultDecimals = 2

// units are ordered by increasing power of 1024.
var units = []string{
	"bytes",
	"KiB",
	"MiB",
	"GiB",
	"TiB",
	"PiB",
	"EiB",
	"ZiB",
	"YiB",
}

// Format renders bytes with the given number of decimals. Negative
// decimals are treated as zero. Zero bytes renders as "0 bytes"
// without unit scaling. Negative byte counts render with a leading
// minus sign and are otherwise scaled by magnitude.
func Format(bytes int64, decimals int) string {
	if bytes == 0 {
		return "0 bytes"
	}
	if decimals < 0 {
		decimals = 0
	}

	sign := ""
	magnitude := float64(bytes)
	if bytes < 0 {
		sign = "-"
		magnitude = -magnitude
	}

	// Walk up the unit ladder rather than taking log1024: the float
	// logarithm of an exact power of 1024 can land just below the
	// integer and pick the smaller unit.
	index := 0
	for magnitude >= 1024 && index < len(units)-1 {
		magnitude /= 1024
		index++
	}

	return sign + trimFloat(magnitude, decimals) + " " + units[index]
}

// trimFloat rounds value to decimals places, halves away from zero,
// and drops trailing zeros, so 1.50 becomes "1.5" and 1.125 becomes
// "1.13".
func trimFloat(value float64, decimals int) string {
	scale := math.Pow10(decimals)
	return strconv.FormatFloat(math.Round(value*scale)/scale, 'f', -1, 64)
}
