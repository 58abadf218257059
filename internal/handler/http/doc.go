// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package http implements the HTTP surface of the file-sharing server.
//
// It serves the upload page, accepts multipart uploads, renders batch
// listings as HTML or JSON and streams single files and zip bundles as
// attachments. Request tracing, access logging and listing compression are
// handled by middleware before requests reach the registry service.
package http
