// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatSize(t *testing.T) {
	tests := []struct {
		name string
		size int64
		want string
	}{
		{name: "zero", size: 0, want: "0B"},
		{name: "negative", size: -1, want: "0B"},
		{name: "single byte", size: 1, want: "1.0 B"},
		{name: "bytes", size: 5, want: "5.0 B"},
		{name: "round thousand bytes", size: 1000, want: "1000.0 B"},
		{name: "largest byte count", size: 1023, want: "1023.0 B"},
		{name: "one kilobyte", size: 1024, want: "1.0 KB"},
		{name: "two decimals", size: 1500, want: "1.46 KB"},
		{name: "one decimal", size: 1536, want: "1.5 KB"},
		{name: "tie rounds to even down", size: 1152, want: "1.12 KB"},
		{name: "tie rounds to even down again", size: 1664, want: "1.62 KB"},
		{name: "tie rounds to even up", size: 1408, want: "1.38 KB"},
		{name: "tie in megabytes", size: 1179648, want: "1.12 MB"},
		{name: "trims one trailing zero", size: 1126, want: "1.1 KB"},
		{name: "rounds up within unit", size: 1048575, want: "1024.0 KB"},
		{name: "one megabyte", size: 1048576, want: "1.0 MB"},
		{name: "megabytes", size: 5 * 1048576, want: "5.0 MB"},
		{name: "one gigabyte", size: 1 << 30, want: "1.0 GB"},
		{name: "capped at gigabytes", size: 1 << 40, want: "1024.0 GB"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatSize(tt.size))
		})
	}
}
