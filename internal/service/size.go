// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"strconv"
	"strings"
)

var sizeUnits = [...]string{"B", "KB", "MB", "GB"}

// FormatSize renders size with binary prefixes: the unit is picked by the
// integer log base 1024 of size (capped at GB) and the quotient is rounded to
// two decimals, ties to even on the exact binary value (1152 is "1.12 KB").
// Trailing zeros are trimmed but one fractional digit is kept, so 1024 is
// "1.0 KB" and 1500 is "1.46 KB". Zero is "0B".
func FormatSize(size int64) string {
	if size <= 0 {
		return "0B"
	}

	unit := 0
	divisor := int64(1)
	for unit < len(sizeUnits)-1 && size/divisor >= 1024 {
		divisor *= 1024
		unit++
	}

	value := strconv.FormatFloat(float64(size)/float64(divisor), 'f', 2, 64)
	// "x.y0" becomes "x.y" and "x.00" becomes "x.0".
	if strings.HasSuffix(value, "0") {
		value = value[:len(value)-1]
	}

	return value + " " + sizeUnits[unit]
}
