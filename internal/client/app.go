// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"io"
	"os"

	"github.com/MKhiriev/go-temp-share/internal/adapter"
	"github.com/MKhiriev/go-temp-share/internal/config"
	"github.com/MKhiriev/go-temp-share/internal/logger"
	"github.com/MKhiriev/go-temp-share/models"
	"github.com/atotto/clipboard"
)

type App struct {
	cfg       *config.ClientConfig
	buildInfo models.AppBuildInfo

	// newAdapter builds the server adapter once command-line overrides have
	// been applied to cfg.
	newAdapter func(config.ClientAdapter, *logger.Logger) (adapter.ServerAdapter, error)
	// copyText puts text on the system clipboard.
	copyText func(text string) error

	out    io.Writer
	errOut io.Writer

	logger *logger.Logger
}

func NewApp(cfg *config.ClientConfig, buildInfo models.AppBuildInfo, logger *logger.Logger) *App {
	return &App{
		cfg:        cfg,
		buildInfo:  buildInfo,
		newAdapter: adapter.NewHTTPServerAdapter,
		copyText:   clipboard.WriteAll,
		out:        os.Stdout,
		errOut:     os.Stderr,
		logger:     logger,
	}
}

func (a *App) Run(ctx context.Context, args []string) error {
	root := a.newRootCommand()
	root.SetArgs(args)
	root.SetOut(a.out)
	root.SetErr(a.errOut)

	return root.ExecuteContext(ctx)
}
