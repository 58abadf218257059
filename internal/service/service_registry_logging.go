// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-temp-share/internal/logger"
	"github.com/MKhiriev/go-temp-share/models"
	"github.com/dustin/go-humanize"
)

// RegistryLoggingService logs every registry operation with the
// request-scoped logger found in ctx.
type RegistryLoggingService struct {
	inner RegistryService
}

func NewRegistryLoggingService() RegistryServiceWrapper {
	return &RegistryLoggingService{}
}

func (l *RegistryLoggingService) Upload(ctx context.Context, files []models.UploadFile) (string, error) {
	log := logger.FromContext(ctx)

	var total uint64
	for _, f := range files {
		total += uint64(len(f.Content))
	}

	id, err := l.inner.Upload(ctx, files)
	if err != nil {
		log.Err(err).Int("files", len(files)).Msg("error uploading batch")
		return "", err
	}

	log.Info().
		Str("batch_id", id).
		Int("files", len(files)).
		Str("total_size", humanize.IBytes(total)).
		Msg("batch uploaded")

	return id, nil
}

func (l *RegistryLoggingService) ListFiles(ctx context.Context, batchID string) ([]models.FileInfo, error) {
	infos, err := l.inner.ListFiles(ctx, batchID)
	if err != nil {
		logger.FromContext(ctx).Debug().Err(err).Str("batch_id", batchID).Msg("error listing batch")
		return nil, err
	}

	return infos, nil
}

func (l *RegistryLoggingService) DownloadOne(ctx context.Context, batchID, filename string) (models.Download, error) {
	log := logger.FromContext(ctx)

	download, err := l.inner.DownloadOne(ctx, batchID, filename)
	if err != nil {
		log.Debug().Err(err).Str("batch_id", batchID).Str("filename", filename).Msg("error downloading file")
		return models.Download{}, err
	}

	log.Info().
		Str("batch_id", batchID).
		Str("filename", filename).
		Str("size", humanize.IBytes(uint64(download.Size))).
		Msg("file downloaded")

	return download, nil
}

func (l *RegistryLoggingService) DownloadAll(ctx context.Context, batchID string) (models.Download, error) {
	log := logger.FromContext(ctx)

	download, err := l.inner.DownloadAll(ctx, batchID)
	if err != nil {
		log.Debug().Err(err).Str("batch_id", batchID).Msg("error downloading archive")
		return models.Download{}, err
	}

	log.Info().
		Str("batch_id", batchID).
		Str("archive_size", humanize.IBytes(uint64(download.Size))).
		Msg("archive downloaded")

	return download, nil
}

func (l *RegistryLoggingService) Close() {
	l.inner.Close()
}

func (l *RegistryLoggingService) Wrap(inner RegistryService) RegistryService {
	l.inner = inner
	return l
}
