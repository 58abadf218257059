// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// go-temp-share server handlers.
//
// All Msg* constants are human-readable strings written into the "detail"
// field of JSON error responses.
package app

const (
	// MsgBatchNotFound is returned when a batch id does not resolve: it was
	// never issued, it expired or a newer upload took it over.
	MsgBatchNotFound = "Files not found or expired"

	// MsgFileNotFound is returned for a download whose batch or file name
	// does not resolve.
	MsgFileNotFound = "File not found or expired"

	// MsgUploadTooLarge is returned when an upload body exceeds the
	// configured size limit.
	MsgUploadTooLarge = "upload exceeds the size limit"

	// MsgInvalidDataProvided is returned when an upload body is not a
	// readable multipart form.
	MsgInvalidDataProvided = "malformed or unreadable upload"
)
