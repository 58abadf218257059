// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"time"
)

// ClientAdapter holds the settings the command-line client uses to reach the
// server.
type ClientAdapter struct {
	// HTTPAddress is the base URL of the server, e.g. http://localhost:42701.
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds every request made by the client.
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// ClientConfig is the configuration of the command-line client.
type ClientConfig struct {
	Adapter ClientAdapter `envPrefix:"ADAPTER_"`
}

// GetClientConfig reads the client configuration from environment variables
// and fills unset fields with defaults. Values given on the command line are
// applied by the caller through [ClientConfig.Override].
func GetClientConfig() (*ClientConfig, error) {
	cfg := &ClientConfig{}
	if err := parseEnv(cfg); err != nil {
		return nil, fmt.Errorf("error get client config: %w", err)
	}

	if cfg.Adapter.HTTPAddress == "" {
		cfg.Adapter.HTTPAddress = DefaultClientServerURL
	}
	if cfg.Adapter.RequestTimeout == 0 {
		cfg.Adapter.RequestTimeout = DefaultClientTimeout
	}

	return cfg, cfg.validate()
}

// Override replaces fields with non-zero values from the command line and
// validates the result.
func (cfg *ClientConfig) Override(serverURL string, timeout time.Duration) error {
	if serverURL != "" {
		cfg.Adapter.HTTPAddress = serverURL
	}
	if timeout != 0 {
		cfg.Adapter.RequestTimeout = timeout
	}

	return cfg.validate()
}
