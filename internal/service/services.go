// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"github.com/MKhiriev/go-temp-share/internal/config"
	"github.com/MKhiriev/go-temp-share/internal/logger"
	"github.com/MKhiriev/go-temp-share/internal/store"
	"github.com/MKhiriev/go-temp-share/internal/utils"
)

type Services struct {
	RegistryService RegistryService
	AppInfoService  AppInfoService
}

func NewServices(storages *store.Storages, cfg *config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	logger.Info().Msg("creating new services...")

	registryService, err := NewRegistryService(storages.BatchStorage, utils.NewBatchIDGenerator(), cfg.Storage.Registry, logger)
	if err != nil {
		return nil, err
	}

	appInfoService, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, err
	}

	return &Services{
		RegistryService: NewRegistryLoggingService().Wrap(registryService),
		AppInfoService:  appInfoService,
	}, nil
}
