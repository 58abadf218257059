// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"time"

	"github.com/MKhiriev/go-temp-share/internal/logger"
	"github.com/MKhiriev/go-temp-share/internal/service"
)

type Handler struct {
	services *service.Services

	// maxUploadBytes caps the size of an upload request body. A value below
	// one disables the cap.
	maxUploadBytes int64

	// uploadTimeout replaces the server read timeout while an upload body is
	// read. Zero means no deadline.
	uploadTimeout time.Duration

	logger *logger.Logger
}

func NewHandler(services *service.Services, maxUploadBytes int64, uploadTimeout time.Duration, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:       services,
		maxUploadBytes: maxUploadBytes,
		uploadTimeout:  uploadTimeout,
		logger:         logger,
	}
}
