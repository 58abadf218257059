// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

func (cfg *StructuredConfig) validate() error {
	if cfg.Storage.Registry.LifetimeMinutes <= 0 || cfg.Storage.Registry.MaxUploadBytes < NoUploadLimit {
		return ErrInvalidRegistryConfigs
	}

	if cfg.Server.HTTPAddress == "" || cfg.Server.RequestTimeout < 0 || cfg.Server.UploadTimeout < 0 {
		return ErrInvalidServerConfigs
	}

	if cfg.Workers.StatsInterval < 0 {
		return ErrInvalidWorkerConfigs
	}

	return nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.Adapter.HTTPAddress == "" || cfg.Adapter.RequestTimeout <= 0 {
		return ErrInvalidAdapterConfigs
	}

	return nil
}
