// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"embed"
	"html/template"
	"net/url"
)

//go:embed templates/*.html
var templatesFS embed.FS

var pages = template.Must(
	template.New("pages").
		Funcs(template.FuncMap{"pathEscape": url.PathEscape}).
		ParseFS(templatesFS, "templates/*.html"),
)

const (
	indexPage = "index.html"
	filesPage = "files.html"
)

// filesPageData feeds files.html.
type filesPageData struct {
	ID    string
	Files []fileRow
}

type fileRow struct {
	Name string
	Size string
}
