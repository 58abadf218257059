// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package workers runs the background workers of the server.
// It defines the Worker interface and a Workers aggregate that runs every
// worker until the shared context is cancelled.
package workers

import "context"

// Worker is a background task. Run blocks until ctx is cancelled.
type Worker interface {
	Run(ctx context.Context)
}
