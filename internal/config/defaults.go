// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "time"

const (
	DefaultHTTPAddress     = ":42701"
	DefaultLifetimeMinutes = 30
	DefaultMaxUploadBytes  = 100 << 20
	DefaultRequestTimeout  = 30 * time.Second
	DefaultUploadTimeout   = 10 * time.Minute
	DefaultStatsInterval   = time.Minute
	DefaultVersion         = "dev"

	// NoUploadLimit as MaxUploadBytes disables the upload size cap. Zero
	// cannot mean that: it is the unset value and gets the default.
	NoUploadLimit = -1

	DefaultClientServerURL = "http://localhost:42701"
	DefaultClientTimeout   = 60 * time.Second
)

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			Version: DefaultVersion,
		},
		Storage: Storage{
			Registry: Registry{
				LifetimeMinutes: DefaultLifetimeMinutes,
				MaxUploadBytes:  DefaultMaxUploadBytes,
			},
		},
		Server: Server{
			HTTPAddress:    DefaultHTTPAddress,
			RequestTimeout: DefaultRequestTimeout,
			UploadTimeout:  DefaultUploadTimeout,
		},
		Workers: Workers{
			StatsInterval: DefaultStatsInterval,
		},
	}
}
