// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-temp-share/internal/client"
	"github.com/MKhiriev/go-temp-share/internal/config"
	"github.com/MKhiriev/go-temp-share/internal/logger"
	"github.com/MKhiriev/go-temp-share/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	log := logger.NewClientLogger("go-temp-share-client")
	cfg, err := config.GetClientConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var app client.Client = client.NewApp(cfg, buildInfo(), log)
	if err = app.Run(ctx, os.Args[1:]); err != nil {
		stop()
		os.Exit(1)
	}
}

func buildInfo() models.AppBuildInfo {
	version, date, commit := buildVersion, buildDate, buildCommit
	if version == "" {
		version = "N/A"
	}
	if date == "" {
		date = "N/A"
	}
	if commit == "" {
		commit = "N/A"
	}
	return models.NewAppBuildInfo(version, date, commit)
}
