// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/MKhiriev/go-temp-share/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

func newBatch(id string, files map[string]string) *models.Batch {
	batch := &models.Batch{ID: id, CreatedAt: time.Now()}
	for name, content := range files {
		batch.Files = append(batch.Files, models.StoredFile{Name: name, Content: []byte(content)})
	}
	return batch
}

// ─────────────────────────────────────────────
// Save / Get
// ─────────────────────────────────────────────

func TestMemoryBatchStorage_SaveAndGet(t *testing.T) {
	s := NewMemoryBatchStorage()
	ctx := context.Background()
	batch := newBatch("1234", map[string]string{"a.txt": "hello"})

	replaced, err := s.Save(ctx, batch)
	require.NoError(t, err)
	assert.False(t, replaced)

	got, err := s.Get(ctx, "1234")
	require.NoError(t, err)
	assert.Same(t, batch, got)
}

func TestMemoryBatchStorage_Get_Unknown(t *testing.T) {
	s := NewMemoryBatchStorage()

	got, err := s.Get(context.Background(), "9999")

	assert.Nil(t, got)
	assert.ErrorIs(t, err, ErrBatchNotFound)
}

func TestMemoryBatchStorage_Save_Nil(t *testing.T) {
	s := NewMemoryBatchStorage()

	_, err := s.Save(context.Background(), nil)
	assert.ErrorIs(t, err, ErrNilBatch)

	_, err = s.SaveIfAbsent(context.Background(), nil)
	assert.ErrorIs(t, err, ErrNilBatch)
}

func TestMemoryBatchStorage_Save_ReplacesSameID(t *testing.T) {
	s := NewMemoryBatchStorage()
	ctx := context.Background()
	first := newBatch("1000", map[string]string{"old.txt": "old"})
	second := newBatch("1000", map[string]string{"new.txt": "new"})

	_, err := s.Save(ctx, first)
	require.NoError(t, err)
	replaced, err := s.Save(ctx, second)
	require.NoError(t, err)
	assert.True(t, replaced)

	got, err := s.Get(ctx, "1000")
	require.NoError(t, err)
	assert.Same(t, second, got)
}

func TestMemoryBatchStorage_SaveIfAbsent(t *testing.T) {
	s := NewMemoryBatchStorage()
	ctx := context.Background()
	first := newBatch("1000", nil)
	second := newBatch("1000", nil)

	saved, err := s.SaveIfAbsent(ctx, first)
	require.NoError(t, err)
	assert.True(t, saved)

	saved, err = s.SaveIfAbsent(ctx, second)
	require.NoError(t, err)
	assert.False(t, saved)

	got, err := s.Get(ctx, "1000")
	require.NoError(t, err)
	assert.Same(t, first, got)
}

func TestMemoryBatchStorage_EmptyBatchIsStored(t *testing.T) {
	s := NewMemoryBatchStorage()
	ctx := context.Background()

	_, err := s.Save(ctx, newBatch("4321", nil))
	require.NoError(t, err)

	got, err := s.Get(ctx, "4321")
	require.NoError(t, err)
	assert.Empty(t, got.Files)
}

// ─────────────────────────────────────────────
// Expire
// ─────────────────────────────────────────────

func TestMemoryBatchStorage_Expire_RemovesBatch(t *testing.T) {
	s := NewMemoryBatchStorage()
	ctx := context.Background()
	batch := newBatch("2000", map[string]string{"a": "1"})
	_, err := s.Save(ctx, batch)
	require.NoError(t, err)

	assert.True(t, s.Expire(ctx, batch))

	_, err = s.Get(ctx, "2000")
	assert.ErrorIs(t, err, ErrBatchNotFound)
}

func TestMemoryBatchStorage_Expire_Idempotent(t *testing.T) {
	s := NewMemoryBatchStorage()
	ctx := context.Background()
	batch := newBatch("2000", nil)
	_, err := s.Save(ctx, batch)
	require.NoError(t, err)

	assert.True(t, s.Expire(ctx, batch))
	assert.False(t, s.Expire(ctx, batch))
	assert.False(t, s.Expire(ctx, nil))
}

func TestMemoryBatchStorage_Expire_KeepsReplacement(t *testing.T) {
	s := NewMemoryBatchStorage()
	ctx := context.Background()
	first := newBatch("3000", map[string]string{"a": "1"})
	second := newBatch("3000", map[string]string{"b": "2"})
	_, err := s.Save(ctx, first)
	require.NoError(t, err)
	_, err = s.Save(ctx, second)
	require.NoError(t, err)

	assert.False(t, s.Expire(ctx, first))

	got, err := s.Get(ctx, "3000")
	require.NoError(t, err)
	assert.Same(t, second, got)
}

// ─────────────────────────────────────────────
// Stats
// ─────────────────────────────────────────────

func TestMemoryBatchStorage_Stats(t *testing.T) {
	s := NewMemoryBatchStorage()
	ctx := context.Background()

	assert.Equal(t, models.RegistryStats{}, s.Stats(ctx))

	_, err := s.Save(ctx, newBatch("1111", map[string]string{"a": "hello", "b": "world!"}))
	require.NoError(t, err)
	_, err = s.Save(ctx, newBatch("2222", map[string]string{"c": "x"}))
	require.NoError(t, err)

	assert.Equal(t, models.RegistryStats{Batches: 2, Files: 3, Bytes: 12}, s.Stats(ctx))
}

// ─────────────────────────────────────────────
// Concurrency
// ─────────────────────────────────────────────

func TestMemoryBatchStorage_ConcurrentAccess(t *testing.T) {
	s := NewMemoryBatchStorage()
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := range 50 {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			batch := newBatch(fmt.Sprintf("%d", 1000+i%10), map[string]string{"f": "data"})
			_, _ = s.Save(ctx, batch)
			if got, err := s.Get(ctx, batch.ID); err == nil {
				assert.Len(t, got.Files, 1)
			}
			s.Expire(ctx, batch)
			_ = s.Stats(ctx)
		}(i)
	}
	wg.Wait()
}
