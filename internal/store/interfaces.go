// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"

	"github.com/MKhiriev/go-temp-share/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/batch_storage_mock.go -package=mock

// BatchStorage is the registry table: a mapping from batch id to [models.Batch].
//
// Implementations must be safe for concurrent use. A batch returned by Get is
// immutable and stays valid for the caller even after it is removed from the
// table.
type BatchStorage interface {
	// Save stores batch under batch.ID, replacing any batch already stored
	// under the same id. It reports whether a previous batch was replaced.
	Save(ctx context.Context, batch *models.Batch) (bool, error)

	// SaveIfAbsent stores batch only when its id is unused. It reports
	// whether the batch was stored.
	SaveIfAbsent(ctx context.Context, batch *models.Batch) (bool, error)

	// Get returns the batch stored under id or [ErrBatchNotFound].
	Get(ctx context.Context, id string) (*models.Batch, error)

	// Expire removes the entry for batch.ID only if it still holds batch.
	// Expiring a batch that is already gone or was replaced is a no-op.
	// It reports whether an entry was removed.
	Expire(ctx context.Context, batch *models.Batch) bool

	// Stats returns a snapshot of the table size.
	Stats(ctx context.Context) models.RegistryStats
}
