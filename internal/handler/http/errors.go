// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// errBadFilename is returned when the {filename} path segment is not a valid
// escaped path element. It resolves to a 404 like any unknown file.
var errBadFilename = errors.New("bad filename in request path")
