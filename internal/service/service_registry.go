// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"bytes"
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/MKhiriev/go-temp-share/internal/config"
	"github.com/MKhiriev/go-temp-share/internal/logger"
	"github.com/MKhiriev/go-temp-share/internal/store"
	"github.com/MKhiriev/go-temp-share/internal/utils"
	"github.com/MKhiriev/go-temp-share/models"
	"github.com/gabriel-vasile/mimetype"
)

const (
	archiveName        = "all_files.zip"
	archiveContentType = "application/zip"
	fileContentType    = "application/octet-stream"
)

// strictIDAttempts bounds id draws in strict mode before giving up.
var strictIDAttempts = 4 * utils.BatchIDSpace()

type registryService struct {
	batches     store.BatchStorage
	idGenerator utils.IDGenerator
	lifetime    time.Duration
	strictIDs   bool

	// timers holds the armed expiry timer of every live batch.
	mu     sync.Mutex
	timers map[*models.Batch]*time.Timer
	closed bool

	now func() time.Time

	logger *logger.Logger
}

func NewRegistryService(batches store.BatchStorage, idGenerator utils.IDGenerator, cfg config.Registry, logger *logger.Logger) (RegistryService, error) {
	if batches == nil {
		return nil, ErrNoStorage
	}
	if cfg.LifetimeMinutes <= 0 {
		return nil, config.ErrInvalidRegistryConfigs
	}

	return newRegistryService(batches, idGenerator, cfg.Lifetime(), cfg.StrictIDs, logger), nil
}

func newRegistryService(batches store.BatchStorage, idGenerator utils.IDGenerator, lifetime time.Duration, strictIDs bool, logger *logger.Logger) *registryService {
	return &registryService{
		batches:     batches,
		idGenerator: idGenerator,
		lifetime:    lifetime,
		strictIDs:   strictIDs,
		timers:      make(map[*models.Batch]*time.Timer),
		now:         time.Now,
		logger:      logger,
	}
}

func (s *registryService) Upload(ctx context.Context, files []models.UploadFile) (string, error) {
	batch := &models.Batch{
		Files:     collectFiles(files),
		CreatedAt: s.now(),
	}

	if err := s.store(ctx, batch); err != nil {
		return "", err
	}

	s.scheduleExpiry(batch)

	return batch.ID, nil
}

// store draws an id and saves batch. Outside strict mode a collision replaces
// the batch that held the id.
func (s *registryService) store(ctx context.Context, batch *models.Batch) error {
	if !s.strictIDs {
		batch.ID = s.idGenerator.Generate()

		replaced, err := s.batches.Save(ctx, batch)
		if err != nil {
			return fmt.Errorf("error saving batch: %w", err)
		}
		if replaced {
			s.logger.Warn().Str("batch_id", batch.ID).Msg("batch id reused, previous batch replaced")
		}

		return nil
	}

	for range strictIDAttempts {
		batch.ID = s.idGenerator.Generate()

		saved, err := s.batches.SaveIfAbsent(ctx, batch)
		if err != nil {
			return fmt.Errorf("error saving batch: %w", err)
		}
		if saved {
			return nil
		}
	}

	return ErrIDSpaceExhausted
}

func (s *registryService) scheduleExpiry(batch *models.Batch) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return
	}

	s.timers[batch] = time.AfterFunc(s.lifetime, func() {
		s.expire(batch)
	})
}

func (s *registryService) expire(batch *models.Batch) {
	s.mu.Lock()
	delete(s.timers, batch)
	s.mu.Unlock()

	if s.batches.Expire(context.Background(), batch) {
		s.logger.Info().
			Str("batch_id", batch.ID).
			Int("files", len(batch.Files)).
			Msg("batch expired")
	}
}

func (s *registryService) ListFiles(ctx context.Context, batchID string) ([]models.FileInfo, error) {
	batch, err := s.batches.Get(ctx, batchID)
	if err != nil {
		return nil, err
	}

	infos := make([]models.FileInfo, 0, len(batch.Files))
	for _, f := range batch.Files {
		infos = append(infos, models.FileInfo{
			Name:        f.Name,
			Size:        FormatSize(f.Size()),
			Bytes:       f.Size(),
			ContentType: f.ContentType,
		})
	}

	return infos, nil
}

func (s *registryService) DownloadOne(ctx context.Context, batchID, filename string) (models.Download, error) {
	batch, err := s.batches.Get(ctx, batchID)
	if err != nil {
		return models.Download{}, err
	}

	file, ok := batch.File(filename)
	if !ok {
		return models.Download{}, store.ErrFileNotFound
	}

	return models.Download{
		Name:        file.Name,
		Size:        file.Size(),
		ContentType: fileContentType,
		Content:     bytes.NewReader(file.Content),
	}, nil
}

func (s *registryService) DownloadAll(ctx context.Context, batchID string) (models.Download, error) {
	batch, err := s.batches.Get(ctx, batchID)
	if err != nil {
		return models.Download{}, err
	}

	archive, err := buildArchive(batch)
	if err != nil {
		return models.Download{}, fmt.Errorf("error building archive for batch %s: %w", batchID, err)
	}

	return models.Download{
		Name:        archiveName,
		Size:        int64(len(archive)),
		ContentType: archiveContentType,
		Content:     bytes.NewReader(archive),
	}, nil
}

func (s *registryService) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	for batch, timer := range s.timers {
		timer.Stop()
		delete(s.timers, batch)
	}
	s.closed = true
}

// collectFiles keeps files in upload order. A repeated name keeps its first
// position and the content of its last occurrence.
func collectFiles(files []models.UploadFile) []models.StoredFile {
	stored := make([]models.StoredFile, 0, len(files))
	positions := make(map[string]int, len(files))

	for _, f := range files {
		file := models.StoredFile{
			Name:        f.Name,
			Content:     f.Content,
			ContentType: mimetype.Detect(f.Content).String(),
		}

		if i, ok := positions[f.Name]; ok {
			stored[i] = file
			continue
		}
		positions[f.Name] = len(stored)
		stored = append(stored, file)
	}

	return stored
}
