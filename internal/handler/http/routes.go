// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID, h.withLogging)

	router.Get("/", h.index)
	router.Post("/upload/", h.upload)

	router.Get("/api/version/", h.getServerVersion)
	router.Get("/health", h.health)

	router.Route("/{batchID}", func(r chi.Router) {
		r.With(withGZip).Get("/", h.listFiles)
		r.Get("/download/{filename}", h.downloadFile)
		r.Get("/download_all", h.downloadAll)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
