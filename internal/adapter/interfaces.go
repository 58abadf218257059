// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter lets the command-line client talk to the go-temp-share
// server.
//
// [ServerAdapter] hides the HTTP surface behind plain Go calls. Error values
// defined in errors.go are mapped from HTTP status codes by mapHTTPError so
// callers can match them with [errors.Is] (e.g. [ErrNotFound] for 404).
package adapter

import (
	"context"
	"io"

	"github.com/MKhiriev/go-temp-share/models"
)

// ServerAdapter is the client side of the file-sharing server.
type ServerAdapter interface {
	// Upload sends files as one batch and returns the id the server assigned.
	Upload(ctx context.Context, files []models.UploadFile) (string, error)

	// List returns the files of a batch with their sizes.
	List(ctx context.Context, batchID string) (models.BatchListing, error)

	// Download writes the bytes of one file of a batch to w and returns the
	// number of bytes written.
	Download(ctx context.Context, batchID, filename string, w io.Writer) (int64, error)

	// DownloadAll writes the zip archive of a batch to w and returns the
	// number of bytes written.
	DownloadAll(ctx context.Context, batchID string, w io.Writer) (int64, error)

	// Version returns the version reported by the server.
	Version(ctx context.Context) (string, error)

	// ShareURL returns the address of the batch listing page.
	ShareURL(batchID string) string
}
