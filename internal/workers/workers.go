// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"sync"

	"github.com/MKhiriev/go-temp-share/internal/config"
	"github.com/MKhiriev/go-temp-share/internal/logger"
	"github.com/MKhiriev/go-temp-share/internal/store"
)

type Workers struct {
	workers []Worker
}

func NewWorkers(storages *store.Storages, cfg config.Workers, logger *logger.Logger) (*Workers, error) {
	if cfg.StatsInterval <= 0 {
		return nil, config.ErrInvalidWorkerConfigs
	}

	logger.Info().Dur("stats_interval", cfg.StatsInterval).Msg("creating workers...")

	return &Workers{
		workers: []Worker{
			NewRegistryStatsWorker(storages.BatchStorage, cfg.StatsInterval, logger),
		},
	}, nil
}

// Run starts every worker in its own goroutine and blocks until all of them
// return after ctx is cancelled.
func (w *Workers) Run(ctx context.Context) {
	var wg sync.WaitGroup
	for _, worker := range w.workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			worker.Run(ctx)
		}()
	}
	wg.Wait()
}
