// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "errors"

var (
	// ErrInvalidRegistryConfigs is returned when the batch lifetime is not
	// positive or the upload size cap is negative.
	ErrInvalidRegistryConfigs = errors.New("invalid registry configuration")

	// ErrInvalidServerConfigs is returned when no listen address is set or
	// the request timeout is negative.
	ErrInvalidServerConfigs = errors.New("invalid server configuration")

	// ErrInvalidWorkerConfigs is returned when a worker interval is negative.
	ErrInvalidWorkerConfigs = errors.New("invalid worker configuration")

	// ErrInvalidAdapterConfigs is returned when the client has no server URL
	// or no positive request timeout.
	ErrInvalidAdapterConfigs = errors.New("invalid adapter configuration")
)
