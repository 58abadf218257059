// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-temp-share/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/registry_service_mock.go -package=mock

// RegistryService is the upload registry: it stores uploaded batches in
// memory, hands out short ids and serves files until the batch lifetime
// elapses.
type RegistryService interface {
	// Upload stores files as a new batch, arms its expiry timer and returns
	// the batch id.
	Upload(ctx context.Context, files []models.UploadFile) (string, error)

	// ListFiles returns name and human-readable size of every file in the
	// batch, in upload order.
	ListFiles(ctx context.Context, batchID string) ([]models.FileInfo, error)

	// DownloadOne returns the exact bytes of one file of the batch.
	DownloadOne(ctx context.Context, batchID, filename string) (models.Download, error)

	// DownloadAll returns a freshly built zip archive holding every file of
	// the batch.
	DownloadAll(ctx context.Context, batchID string) (models.Download, error)

	// Close stops all pending expiry timers. Used on process shutdown only.
	Close()
}

// AppInfoService reports static information about the running server.
type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}

// RegistryServiceWrapper defines middleware composition for RegistryService.
// Implementations wrap an existing RegistryService to add behavior such as
// logging.
type RegistryServiceWrapper interface {
	Wrap(RegistryService) RegistryService
}
