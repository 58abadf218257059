// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-temp-share/internal/app"
	"github.com/MKhiriev/go-temp-share/internal/service"
	"github.com/MKhiriev/go-temp-share/internal/store"
	"github.com/MKhiriev/go-temp-share/internal/utils"
	"github.com/MKhiriev/go-temp-share/models"
)

var errorStatusMap = map[error]int{
	store.ErrBatchNotFound: http.StatusNotFound,
	store.ErrFileNotFound:  http.StatusNotFound,
	errBadFilename:         http.StatusNotFound,

	service.ErrUploadTooLarge:   http.StatusRequestEntityTooLarge,
	service.ErrUnreadableUpload: http.StatusBadRequest,
	service.ErrIDSpaceExhausted: http.StatusServiceUnavailable,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// writeError answers with the status mapped from err and a JSON detail.
// Unresolvable ids and names share notFoundDetail, so an expired batch and
// one that never existed look the same to the caller.
func writeError(w http.ResponseWriter, err error, notFoundDetail string) {
	status := statusFromError(err)

	detail := http.StatusText(status)
	switch status {
	case http.StatusNotFound:
		detail = notFoundDetail
	case http.StatusRequestEntityTooLarge:
		detail = app.MsgUploadTooLarge
	case http.StatusBadRequest:
		detail = app.MsgInvalidDataProvided
	}

	utils.WriteJSON(w, models.ErrorResponse{Detail: detail}, status)
}
