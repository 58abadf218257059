// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/MKhiriev/go-temp-share/internal/logger"
	"github.com/MKhiriev/go-temp-share/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ─────────────────────────────────────────────
// NewHandler
// ─────────────────────────────────────────────

func TestNewHandler(t *testing.T) {
	svc := &service.Services{}
	log := logger.Nop()

	h := NewHandler(svc, 1024, time.Minute, log)

	require.NotNil(t, h)
	assert.Equal(t, svc, h.services)
	assert.EqualValues(t, 1024, h.maxUploadBytes)
	assert.Equal(t, time.Minute, h.uploadTimeout)
	assert.Equal(t, log, h.logger)
}

// ─────────────────────────────────────────────
// Init: route registration
// ─────────────────────────────────────────────

func TestInit_RegistersAllRoutes(t *testing.T) {
	router := newRegistryTestServer(t, fixedIDs("1234")).router

	tests := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/"},
		{http.MethodGet, "/api/version/"},
		{http.MethodGet, "/health"},
		{http.MethodGet, "/1234"},
		{http.MethodGet, "/1234/download/a.txt"},
		{http.MethodGet, "/1234/download_all"},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, httptest.NewRequest(tt.method, tt.path, nil))

			// unknown ids answer 404 with a JSON detail, an unregistered route
			// answers chi's plain 404
			if rec.Code == http.StatusNotFound {
				assert.Contains(t, rec.Body.String(), "detail", "route not registered: %s %s", tt.method, tt.path)
			}
			assert.NotEqual(t, http.StatusMethodNotAllowed, rec.Code)
		})
	}
}

func TestInit_UploadRouteRegistered(t *testing.T) {
	router := newRegistryTestServer(t, fixedIDs("1234")).router

	body, contentType := multipartBody(t, nil)
	req := httptest.NewRequest(http.MethodPost, "/upload/", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusSeeOther, rec.Code)
}

func TestInit_WrongMethodReturns404(t *testing.T) {
	router := newRegistryTestServer(t, fixedIDs("1234")).router

	for _, tt := range []struct{ method, path string }{
		{http.MethodPost, "/api/version/"},
		{http.MethodGet, "/upload/"},
		{http.MethodPost, "/"},
		{http.MethodDelete, "/1234"},
	} {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(tt.method, tt.path, nil))

		assert.Equal(t, http.StatusNotFound, rec.Code, "%s %s", tt.method, tt.path)
	}
}

func TestInit_SetsTraceIDHeader(t *testing.T) {
	router := newRegistryTestServer(t, fixedIDs("1234")).router

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.NotEmpty(t, rec.Header().Get(traceIDHeader))
}
