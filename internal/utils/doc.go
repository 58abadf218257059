// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package utils holds small helpers shared by the server and the client:
// batch and trace id generation, JSON response writing and the preconfigured
// HTTP client.
package utils
