// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetClientConfig_Defaults(t *testing.T) {
	clearEnvVars(t)

	cfg, err := GetClientConfig()
	require.NoError(t, err)

	assert.Equal(t, DefaultClientServerURL, cfg.Adapter.HTTPAddress)
	assert.Equal(t, DefaultClientTimeout, cfg.Adapter.RequestTimeout)
}

func TestGetClientConfig_FromEnv(t *testing.T) {
	setEnvVars(t, map[string]string{"ADAPTER_ADDRESS": "http://10.0.0.1:42701"})

	cfg, err := GetClientConfig()
	require.NoError(t, err)

	assert.Equal(t, "http://10.0.0.1:42701", cfg.Adapter.HTTPAddress)
}

func TestClientConfig_Override(t *testing.T) {
	cfg := &ClientConfig{Adapter: ClientAdapter{HTTPAddress: "http://a", RequestTimeout: time.Second}}

	require.NoError(t, cfg.Override("", 0))
	assert.Equal(t, "http://a", cfg.Adapter.HTTPAddress)

	require.NoError(t, cfg.Override("http://b", 3*time.Second))
	assert.Equal(t, "http://b", cfg.Adapter.HTTPAddress)
	assert.Equal(t, 3*time.Second, cfg.Adapter.RequestTimeout)

	assert.ErrorIs(t, cfg.Override("", -time.Second), ErrInvalidAdapterConfigs)
}
