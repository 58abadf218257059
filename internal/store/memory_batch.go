// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"sync"

	"github.com/MKhiriev/go-temp-share/models"
)

// memoryBatchStorage keeps every batch in process memory. All state is lost
// on restart.
//
// A single RWMutex guards the map. Batches themselves are never mutated after
// Save, so readers may keep using a batch after releasing the lock.
type memoryBatchStorage struct {
	mu      sync.RWMutex
	batches map[string]*models.Batch
}

// NewMemoryBatchStorage constructs an empty in-memory [BatchStorage].
func NewMemoryBatchStorage() BatchStorage {
	return &memoryBatchStorage{
		batches: make(map[string]*models.Batch),
	}
}

func (s *memoryBatchStorage) Save(ctx context.Context, batch *models.Batch) (bool, error) {
	if batch == nil {
		return false, ErrNilBatch
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	_, replaced := s.batches[batch.ID]
	s.batches[batch.ID] = batch

	return replaced, nil
}

func (s *memoryBatchStorage) SaveIfAbsent(ctx context.Context, batch *models.Batch) (bool, error) {
	if batch == nil {
		return false, ErrNilBatch
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.batches[batch.ID]; exists {
		return false, nil
	}
	s.batches[batch.ID] = batch

	return true, nil
}

func (s *memoryBatchStorage) Get(ctx context.Context, id string) (*models.Batch, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	batch, ok := s.batches[id]
	if !ok {
		return nil, ErrBatchNotFound
	}

	return batch, nil
}

func (s *memoryBatchStorage) Expire(ctx context.Context, batch *models.Batch) bool {
	if batch == nil {
		return false
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	// the id may have been reused by a newer upload
	if current, ok := s.batches[batch.ID]; !ok || current != batch {
		return false
	}
	delete(s.batches, batch.ID)

	return true
}

func (s *memoryBatchStorage) Stats(ctx context.Context) models.RegistryStats {
	s.mu.RLock()
	defer s.mu.RUnlock()

	stats := models.RegistryStats{Batches: len(s.batches)}
	for _, batch := range s.batches {
		stats.Files += len(batch.Files)
		stats.Bytes += batch.TotalSize()
	}

	return stats
}
