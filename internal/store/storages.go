// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"github.com/MKhiriev/go-temp-share/internal/config"
	"github.com/MKhiriev/go-temp-share/internal/logger"
)

type Storages struct {
	BatchStorage BatchStorage
}

func NewStorages(cfg config.Storage, logger *logger.Logger) (*Storages, error) {
	if cfg.Registry.LifetimeMinutes <= 0 {
		return nil, config.ErrInvalidRegistryConfigs
	}

	logger.Info().Msg("creating in-memory batch storage...")

	return &Storages{
		BatchStorage: NewMemoryBatchStorage(),
	}, nil
}
