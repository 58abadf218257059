// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the go-temp-share command-line client.
//
// It wires the cobra command tree to the server adapter: files are uploaded
// as one batch, listings are rendered as a table and downloads are written
// to disk or stdout.
package client
