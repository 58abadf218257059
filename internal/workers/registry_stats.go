// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/go-temp-share/internal/logger"
	"github.com/MKhiriev/go-temp-share/internal/store"
	"github.com/dustin/go-humanize"
)

// RegistryStatsWorker periodically logs how many batches the registry holds
// and how much memory their files take.
type RegistryStatsWorker struct {
	batches  store.BatchStorage
	interval time.Duration

	logger *logger.Logger
}

func NewRegistryStatsWorker(batches store.BatchStorage, interval time.Duration, logger *logger.Logger) *RegistryStatsWorker {
	return &RegistryStatsWorker{
		batches:  batches,
		interval: interval,
		logger:   logger,
	}
}

func (w *RegistryStatsWorker) Run(ctx context.Context) {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			w.logger.Info().Msg("registry stats worker stopped")
			return
		case <-ticker.C:
			w.report(ctx)
		}
	}
}

func (w *RegistryStatsWorker) report(ctx context.Context) {
	stats := w.batches.Stats(ctx)

	w.logger.Info().
		Int("batches", stats.Batches).
		Int("files", stats.Files).
		Int64("bytes", stats.Bytes).
		Str("memory", humanize.IBytes(uint64(stats.Bytes))).
		Msg("registry stats")
}
