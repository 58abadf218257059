// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "errors"

var (
	ErrVersionIsNotSpecified = errors.New("app version is not specified")

	// ErrIDSpaceExhausted is returned in strict id mode when no unused batch
	// id could be drawn.
	ErrIDSpaceExhausted = errors.New("no free batch id available")

	ErrNoStorage = errors.New("no batch storage provided")

	// ErrUploadTooLarge is returned when an upload request exceeds the
	// configured size limit. The whole batch is rejected.
	ErrUploadTooLarge = errors.New("upload exceeds the size limit")

	// ErrUnreadableUpload is returned when the upload body or one of its file
	// parts cannot be read. The whole batch is rejected.
	ErrUnreadableUpload = errors.New("malformed or unreadable upload")
)
