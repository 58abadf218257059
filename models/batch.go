// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"io"
	"time"
)

// UploadFile is a single named blob received in one upload request.
// Content is fully buffered in memory.
type UploadFile struct {
	Name    string
	Content []byte
}

// StoredFile is an immutable file held by a [Batch].
//
// Content must never be mutated after the batch is stored: concurrent
// downloads read it through independent readers.
type StoredFile struct {
	Name        string
	Content     []byte
	ContentType string
}

// Size returns the length of the file content in bytes.
func (f StoredFile) Size() int64 {
	return int64(len(f.Content))
}

// Batch is the set of files uploaded together and addressed by one id.
type Batch struct {
	// ID is the short numeric identifier shared by every file in the batch.
	ID string

	// Files keeps the files in upload order. Names are unique within a batch.
	Files []StoredFile

	// CreatedAt is the moment the batch was stored; the expiry timer is
	// armed relative to it.
	CreatedAt time.Time
}

// File returns the file stored under name.
func (b *Batch) File(name string) (StoredFile, bool) {
	for _, f := range b.Files {
		if f.Name == name {
			return f, true
		}
	}
	return StoredFile{}, false
}

// TotalSize returns the combined size of every file in the batch.
func (b *Batch) TotalSize() int64 {
	var total int64
	for _, f := range b.Files {
		total += f.Size()
	}
	return total
}

// FileInfo describes one file of a batch listing.
type FileInfo struct {
	Name        string `json:"name"`
	Size        string `json:"size"`
	Bytes       int64  `json:"bytes"`
	ContentType string `json:"content_type"`
}

// BatchListing is the JSON representation of GET /{batchId}.
type BatchListing struct {
	ID    string     `json:"id"`
	Files []FileInfo `json:"files"`
}

// RegistryStats is a point-in-time snapshot of the registry table.
type RegistryStats struct {
	Batches int
	Files   int
	Bytes   int64
}

// Download is a retrieval result. Content is an independent reader: its
// cursor is never shared with another request.
type Download struct {
	Name        string
	Size        int64
	ContentType string
	Content     io.ReadSeeker
}
