// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "errors"

// Sentinel errors returned by storage methods. Callers should use
// [errors.Is] to match against these values.
var (
	// ErrBatchNotFound is returned when no batch is stored under the
	// requested id: it never existed, it expired, or it was replaced by a
	// newer upload that drew the same id.
	ErrBatchNotFound = errors.New("batch not found or expired")

	// ErrFileNotFound is returned when the batch exists but holds no file
	// with the requested name.
	ErrFileNotFound = errors.New("file not found or expired")

	// ErrNilBatch is returned when a nil batch is passed to a save method.
	ErrNilBatch = errors.New("nil batch")
)
