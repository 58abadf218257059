// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package server runs the HTTP server of the file-sharing service together
// with its background workers, and shuts both down gracefully on
// SIGTERM, SIGINT or SIGQUIT.
package server
