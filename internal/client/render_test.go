// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"strings"
	"testing"

	"github.com/MKhiriev/go-temp-share/models"
	"github.com/stretchr/testify/assert"
)

func TestRenderListing_Empty(t *testing.T) {
	out := renderListing(models.BatchListing{ID: "1000"})

	assert.Contains(t, out, "Batch 1000")
	assert.Contains(t, out, "no files")
	assert.NotContains(t, out, "NAME")
}

func TestRenderListing_AlignsColumns(t *testing.T) {
	out := renderListing(models.BatchListing{
		ID: "1000",
		Files: []models.FileInfo{
			{Name: "short", Size: "0B", Bytes: 0},
			{Name: "a-much-longer-name.txt", Size: "1.46 KB", Bytes: 1500},
		},
	})

	lines := strings.Split(out, "\n")
	// title, header, two rows, summary
	assert.Len(t, lines, 5)
	assert.Contains(t, lines[1], "NAME")
	assert.Contains(t, lines[1], "SIZE")
	assert.True(t, strings.HasPrefix(lines[2], "short"))
	assert.True(t, strings.HasSuffix(strings.TrimRight(lines[2], " "), "0B"))
	assert.True(t, strings.HasSuffix(lines[3], "1.46 KB"))
	assert.Contains(t, lines[4], "2 file(s), 1.5 KiB")
}

func TestRenderUploaded(t *testing.T) {
	out := renderUploaded("4242", "http://localhost:42701/4242", []models.UploadFile{
		{Name: "a", Content: make([]byte, 1024)},
		{Name: "b", Content: make([]byte, 1024)},
	})

	assert.Contains(t, out, "Batch 4242")
	assert.Contains(t, out, "http://localhost:42701/4242")
	assert.Contains(t, out, "2 file(s), 2.0 KiB")
}
