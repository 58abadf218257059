// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package handler

import (
	"github.com/MKhiriev/go-temp-share/internal/config"
	"github.com/MKhiriev/go-temp-share/internal/handler/http"
	"github.com/MKhiriev/go-temp-share/internal/logger"
	"github.com/MKhiriev/go-temp-share/internal/service"
)

type Handlers struct {
	HTTP *http.Handler
}

func NewHandlers(services *service.Services, cfg *config.StructuredConfig, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	if cfg.Server.HTTPAddress == "" {
		return nil, errNoHandlersAreCreated
	}

	return &Handlers{
		HTTP: http.NewHandler(services, cfg.Storage.Registry.MaxUploadBytes, cfg.Server.UploadTimeout, logger),
	}, nil
}
