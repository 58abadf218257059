// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import (
	"context"
	"net"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-temp-share/internal/config"
	"github.com/MKhiriev/go-temp-share/internal/handler"
	"github.com/MKhiriev/go-temp-share/internal/logger"
	"github.com/MKhiriev/go-temp-share/internal/service"
	"github.com/MKhiriev/go-temp-share/internal/workers"
)

type server struct {
	httpServer *httpServer
	workers    *workers.Workers
	registry   service.RegistryService

	logger *logger.Logger
}

func NewServer(handlers *handler.Handlers, services *service.Services, workers *workers.Workers, cfg config.Server, logger *logger.Logger) (Server, error) {
	logger.Info().Msg("creating new server...")

	if handlers == nil || handlers.HTTP == nil || cfg.HTTPAddress == "" {
		return nil, errNoServersAreCreated
	}

	return &server{
		httpServer: newHTTPServer(handlers.HTTP.Init(), cfg, logger),
		workers:    workers,
		registry:   services.RegistryService,
		logger:     logger,
	}, nil
}

func (s *server) RunServer() {
	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	ln, err := net.Listen("tcp", s.httpServer.server.Addr)
	if err != nil {
		s.logger.Err(err).Str("address", s.httpServer.server.Addr).Msg("error listening")
		return
	}

	s.run(ctx, ln)
}

// Shutdown stops accepting requests, waits for in-flight ones and then
// stops every pending expiry timer of the registry.
func (s *server) Shutdown() {
	s.httpServer.Shutdown()

	if s.registry != nil {
		s.registry.Close()
	}
}

// run serves on ln and runs the workers until ctx is done, then shuts
// everything down.
func (s *server) run(ctx context.Context, ln net.Listener) {
	workersCtx, stopWorkers := context.WithCancel(context.Background())
	workersDone := make(chan struct{})
	go func() {
		defer close(workersDone)
		if s.workers != nil {
			s.workers.Run(workersCtx)
		}
	}()

	serveDone := make(chan struct{})
	go func() {
		defer close(serveDone)
		s.logger.Info().Str("address", ln.Addr().String()).Msg("Launching HTTP server")
		s.httpServer.Serve(ln)
	}()

	select {
	case <-ctx.Done():
	case <-serveDone:
		s.logger.Error().Msg("HTTP server stopped unexpectedly")
	}

	s.Shutdown()
	<-serveDone

	stopWorkers()
	<-workersDone

	s.logger.Info().Msg("server Shutdown gracefully")
}
