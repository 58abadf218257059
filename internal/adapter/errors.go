// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import "errors"

var (
	ErrBadRequest          = errors.New("bad request")
	ErrNotFound            = errors.New("not found or expired")
	ErrPayloadTooLarge     = errors.New("upload too large")
	ErrServiceUnavailable  = errors.New("service unavailable")
	ErrInternalServerError = errors.New("internal server error")

	// ErrNoBatchID is returned when an upload response does not point at the
	// created batch.
	ErrNoBatchID = errors.New("server did not return a batch id")
)
