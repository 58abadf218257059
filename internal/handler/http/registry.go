// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"fmt"
	"io"
	"mime"
	"mime/multipart"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/MKhiriev/go-temp-share/internal/app"
	"github.com/MKhiriev/go-temp-share/internal/logger"
	"github.com/MKhiriev/go-temp-share/internal/service"
	"github.com/MKhiriev/go-temp-share/internal/utils"
	"github.com/MKhiriev/go-temp-share/models"
	"github.com/go-chi/chi/v5"
)

const (
	filesField = "files"

	// multipartMemory is the part of a multipart body kept in memory while
	// parsing; the rest spills to temporary files until the parts are read.
	multipartMemory = 32 << 20
)

func (h *Handler) index(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := pages.ExecuteTemplate(w, indexPage, nil); err != nil {
		logger.FromRequest(r).Err(err).Msg("error rendering index page")
	}
}

func (h *Handler) upload(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	// The server read timeout is sized for small requests; an upload body
	// gets its own deadline.
	var deadline time.Time
	if h.uploadTimeout > 0 {
		deadline = time.Now().Add(h.uploadTimeout)
	}
	if err := http.NewResponseController(w).SetReadDeadline(deadline); err != nil {
		log.Debug().Err(err).Msg("upload read deadline not extended")
	}

	files, err := h.readUploadFiles(w, r)
	if err != nil {
		log.Err(err).Msg("error reading upload request")
		writeError(w, err, app.MsgBatchNotFound)
		return
	}

	batchID, err := h.services.RegistryService.Upload(r.Context(), files)
	if err != nil {
		log.Err(err).Msg("error storing uploaded files")
		writeError(w, err, app.MsgBatchNotFound)
		return
	}

	http.Redirect(w, r, "/"+batchID, http.StatusSeeOther)
}

// readUploadFiles buffers every part of the "files" form field. Any part that
// cannot be read rejects the whole upload. Parts with an empty file name are
// what browsers send for an empty picker and are skipped.
func (h *Handler) readUploadFiles(w http.ResponseWriter, r *http.Request) ([]models.UploadFile, error) {
	if h.maxUploadBytes > 0 {
		if r.ContentLength > h.maxUploadBytes {
			return nil, fmt.Errorf("%w: content length %d", service.ErrUploadTooLarge, r.ContentLength)
		}
		r.Body = http.MaxBytesReader(w, r.Body, h.maxUploadBytes)
	}

	if err := r.ParseMultipartForm(multipartMemory); err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			return nil, fmt.Errorf("%w: %w", service.ErrUploadTooLarge, err)
		}
		return nil, fmt.Errorf("%w: %w", service.ErrUnreadableUpload, err)
	}
	defer r.MultipartForm.RemoveAll()

	headers := r.MultipartForm.File[filesField]
	files := make([]models.UploadFile, 0, len(headers))
	for _, header := range headers {
		if header.Filename == "" {
			continue
		}

		content, err := readPart(header)
		if err != nil {
			return nil, fmt.Errorf("%w: file %q: %w", service.ErrUnreadableUpload, header.Filename, err)
		}

		files = append(files, models.UploadFile{Name: header.Filename, Content: content})
	}

	return files, nil
}

func readPart(header *multipart.FileHeader) ([]byte, error) {
	part, err := header.Open()
	if err != nil {
		return nil, err
	}
	defer part.Close()

	return io.ReadAll(part)
}

func (h *Handler) listFiles(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)
	batchID := chi.URLParam(r, "batchID")

	infos, err := h.services.RegistryService.ListFiles(r.Context(), batchID)
	if err != nil {
		writeError(w, err, app.MsgBatchNotFound)
		return
	}

	if wantsJSON(r) {
		if _, err = utils.WriteJSON(w, models.BatchListing{ID: batchID, Files: infos}, http.StatusOK); err != nil {
			log.Err(err).Msg("error writing batch listing")
		}
		return
	}

	data := filesPageData{ID: batchID, Files: make([]fileRow, 0, len(infos))}
	for _, info := range infos {
		data.Files = append(data.Files, fileRow{Name: info.Name, Size: info.Size})
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err = pages.ExecuteTemplate(w, filesPage, data); err != nil {
		log.Err(err).Msg("error rendering files page")
	}
}

func (h *Handler) downloadFile(w http.ResponseWriter, r *http.Request) {
	batchID := chi.URLParam(r, "batchID")

	filename, err := filenameParam(r)
	if err != nil {
		writeError(w, err, app.MsgFileNotFound)
		return
	}

	download, err := h.services.RegistryService.DownloadOne(r.Context(), batchID, filename)
	if err != nil {
		writeError(w, err, app.MsgFileNotFound)
		return
	}

	h.sendDownload(w, r, download)
}

func (h *Handler) downloadAll(w http.ResponseWriter, r *http.Request) {
	batchID := chi.URLParam(r, "batchID")

	download, err := h.services.RegistryService.DownloadAll(r.Context(), batchID)
	if err != nil {
		writeError(w, err, app.MsgBatchNotFound)
		return
	}

	h.sendDownload(w, r, download)
}

// sendDownload streams download byte-exact as an attachment.
func (h *Handler) sendDownload(w http.ResponseWriter, r *http.Request, download models.Download) {
	w.Header().Set("Content-Type", download.ContentType)
	w.Header().Set("Content-Disposition", contentDisposition(download.Name))
	w.Header().Set("Content-Length", strconv.FormatInt(download.Size, 10))
	w.WriteHeader(http.StatusOK)

	if _, err := io.Copy(w, download.Content); err != nil {
		logger.FromRequest(r).Err(err).Str("filename", download.Name).Msg("error sending download")
	}
}

func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	if _, err := utils.WriteJSON(w, models.HealthStatus{Status: "ok"}, http.StatusOK); err != nil {
		logger.FromRequest(r).Err(err).Msg("error writing health status")
	}
}

// filenameParam returns the decoded {filename} segment. chi reads params from
// RawPath when the request path carries escaped slashes.
func filenameParam(r *http.Request) (string, error) {
	filename := chi.URLParam(r, "filename")
	if r.URL.RawPath == "" {
		return filename, nil
	}

	decoded, err := url.PathUnescape(filename)
	if err != nil {
		return "", errBadFilename
	}
	return decoded, nil
}

func contentDisposition(filename string) string {
	if disposition := mime.FormatMediaType("attachment", map[string]string{"filename": filename}); disposition != "" {
		return disposition
	}
	return "attachment"
}

func wantsJSON(r *http.Request) bool {
	return strings.Contains(r.Header.Get("Accept"), "application/json")
}
