// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import (
	"context"
	"io"
	"net"
	"net/http"
	"testing"
	"time"

	"github.com/MKhiriev/go-temp-share/internal/config"
	"github.com/MKhiriev/go-temp-share/internal/handler"
	myHTTP "github.com/MKhiriev/go-temp-share/internal/handler/http"
	"github.com/MKhiriev/go-temp-share/internal/logger"
	"github.com/MKhiriev/go-temp-share/internal/mock"
	"github.com/MKhiriev/go-temp-share/internal/service"
	"github.com/MKhiriev/go-temp-share/internal/store"
	"github.com/MKhiriev/go-temp-share/internal/workers"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestNewServer_NoHandlers(t *testing.T) {
	s, err := NewServer(nil, &service.Services{}, nil, config.Server{HTTPAddress: ":0"}, logger.Nop())

	assert.Nil(t, s)
	assert.ErrorIs(t, err, errNoServersAreCreated)
}

func TestNewServer_NoAddress(t *testing.T) {
	handlers := &handler.Handlers{HTTP: myHTTP.NewHandler(&service.Services{}, 0, 0, logger.Nop())}

	s, err := NewServer(handlers, &service.Services{}, nil, config.Server{}, logger.Nop())

	assert.Nil(t, s)
	assert.ErrorIs(t, err, errNoServersAreCreated)
}

func TestServer_RunServesUntilContextCancelled(t *testing.T) {
	ctrl := gomock.NewController(t)
	registry := mock.NewMockRegistryService(ctrl)
	registry.EXPECT().Close().Times(1)

	services := &service.Services{RegistryService: registry}
	handlers := &handler.Handlers{HTTP: myHTTP.NewHandler(services, 0, 0, logger.Nop())}

	ws, err := workers.NewWorkers(
		&store.Storages{BatchStorage: store.NewMemoryBatchStorage()},
		config.Workers{StatsInterval: time.Hour},
		logger.Nop(),
	)
	require.NoError(t, err)

	srv, err := NewServer(handlers, services, ws, config.Server{HTTPAddress: "127.0.0.1:0", RequestTimeout: time.Second}, logger.Nop())
	require.NoError(t, err)

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		srv.(*server).run(ctx, ln)
		close(done)
	}()

	resp, err := http.Get("http://" + ln.Addr().String() + "/health")
	require.NoError(t, err)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.NoError(t, resp.Body.Close())

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.JSONEq(t, `{"status":"ok"}`, string(body))

	cancel()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("server did not shut down")
	}

	_, err = http.Get("http://" + ln.Addr().String() + "/health")
	assert.Error(t, err)
}
