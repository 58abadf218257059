// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"archive/zip"
	"bytes"
	"fmt"

	"github.com/MKhiriev/go-temp-share/models"
)

// buildArchive packs every file of batch into a zip archive held in memory.
// Entries use the original file names at the archive root.
func buildArchive(batch *models.Batch) ([]byte, error) {
	buf := bytes.NewBuffer(make([]byte, 0, batch.TotalSize()))
	zw := zip.NewWriter(buf)

	for _, f := range batch.Files {
		header := &zip.FileHeader{
			Name:     f.Name,
			Method:   zip.Deflate,
			Modified: batch.CreatedAt,
		}

		w, err := zw.CreateHeader(header)
		if err != nil {
			return nil, fmt.Errorf("error creating archive entry %q: %w", f.Name, err)
		}
		if _, err = w.Write(f.Content); err != nil {
			return nil, fmt.Errorf("error writing archive entry %q: %w", f.Name, err)
		}
	}

	if err := zw.Close(); err != nil {
		return nil, fmt.Errorf("error finalizing archive: %w", err)
	}

	return buf.Bytes(), nil
}
