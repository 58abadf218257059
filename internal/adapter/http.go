// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/MKhiriev/go-temp-share/internal/config"
	"github.com/MKhiriev/go-temp-share/internal/logger"
	"github.com/MKhiriev/go-temp-share/internal/utils"
	"github.com/MKhiriev/go-temp-share/models"
)

const filesField = "files"

type httpServerAdapter struct {
	client  *utils.HTTPClient
	baseURL string

	logger *logger.Logger
}

// NewHTTPServerAdapter builds a [ServerAdapter] for the server at
// adapterCfg.HTTPAddress. A scheme-less address is treated as http.
func NewHTTPServerAdapter(adapterCfg config.ClientAdapter, logger *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	return &httpServerAdapter{
		client:  utils.NewHTTPClient(baseURL, adapterCfg.RequestTimeout),
		baseURL: baseURL,
		logger:  logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

func (h *httpServerAdapter) Upload(ctx context.Context, files []models.UploadFile) (string, error) {
	req := h.client.R().SetContext(ctx)
	for _, f := range files {
		req.SetFileReader(filesField, f.Name, bytes.NewReader(f.Content))
	}
	if len(files) == 0 {
		req.SetMultipartFormData(map[string]string{})
	}

	resp, err := req.Post("/upload/")
	if err != nil {
		return "", fmt.Errorf("upload request: %w", err)
	}
	if resp.StatusCode() != http.StatusSeeOther {
		if err = mapHTTPError(resp.StatusCode(), resp.Body()); err != nil {
			return "", err
		}
		return "", fmt.Errorf("%w: unexpected status %d", ErrNoBatchID, resp.StatusCode())
	}

	batchID := strings.Trim(resp.Header().Get("Location"), "/")
	if batchID == "" {
		return "", ErrNoBatchID
	}

	h.logger.Info().Str("batch_id", batchID).Int("files", len(files)).Msg("files uploaded")

	return batchID, nil
}

func (h *httpServerAdapter) List(ctx context.Context, batchID string) (models.BatchListing, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Accept", "application/json").
		Get("/" + url.PathEscape(batchID))
	if err != nil {
		return models.BatchListing{}, fmt.Errorf("list request: %w", err)
	}
	if err = mapHTTPError(resp.StatusCode(), resp.Body()); err != nil {
		return models.BatchListing{}, err
	}

	var listing models.BatchListing
	if err = json.Unmarshal(resp.Body(), &listing); err != nil {
		return models.BatchListing{}, fmt.Errorf("decode listing response: %w", err)
	}

	return listing, nil
}

func (h *httpServerAdapter) Download(ctx context.Context, batchID, filename string, w io.Writer) (int64, error) {
	return h.stream(ctx, "/"+url.PathEscape(batchID)+"/download/"+url.PathEscape(filename), w)
}

func (h *httpServerAdapter) DownloadAll(ctx context.Context, batchID string, w io.Writer) (int64, error) {
	return h.stream(ctx, "/"+url.PathEscape(batchID)+"/download_all", w)
}

// stream copies the response body of GET path to w without buffering it.
func (h *httpServerAdapter) stream(ctx context.Context, path string, w io.Writer) (int64, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetDoNotParseResponse(true).
		Get(path)
	if err != nil {
		return 0, fmt.Errorf("download request: %w", err)
	}
	body := resp.RawBody()
	defer body.Close()

	if resp.StatusCode() != http.StatusOK {
		data, _ := io.ReadAll(body)
		if err = mapHTTPError(resp.StatusCode(), data); err != nil {
			return 0, err
		}
	}

	n, err := io.Copy(w, body)
	if err != nil {
		return n, fmt.Errorf("download body: %w", err)
	}

	h.logger.Info().Str("path", path).Int64("bytes", n).Msg("download finished")

	return n, nil
}

func (h *httpServerAdapter) Version(ctx context.Context) (string, error) {
	resp, err := h.client.R().SetContext(ctx).Get("/api/version/")
	if err != nil {
		return "", fmt.Errorf("version request: %w", err)
	}
	if err = mapHTTPError(resp.StatusCode(), resp.Body()); err != nil {
		return "", err
	}

	return strings.TrimSpace(resp.String()), nil
}

func (h *httpServerAdapter) ShareURL(batchID string) string {
	return h.baseURL + "/" + url.PathEscape(batchID)
}
