// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"strings"

	"github.com/MKhiriev/go-temp-share/models"
	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true)
	headStyle  = lipgloss.NewStyle().Bold(true).Underline(true)
	faintStyle = lipgloss.NewStyle().Faint(true)
	urlStyle   = lipgloss.NewStyle().Underline(true)
)

const columnGap = "  "

// renderListing draws the files of a batch as a name/size table.
func renderListing(listing models.BatchListing) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Batch " + listing.ID))
	b.WriteString("\n")

	if len(listing.Files) == 0 {
		b.WriteString(faintStyle.Render("no files"))
		return b.String()
	}

	nameWidth := lipgloss.Width("NAME")
	sizeWidth := lipgloss.Width("SIZE")
	for _, f := range listing.Files {
		nameWidth = max(nameWidth, lipgloss.Width(f.Name))
		sizeWidth = max(sizeWidth, lipgloss.Width(f.Size))
	}

	nameCol := lipgloss.NewStyle().Width(nameWidth)
	sizeCol := lipgloss.NewStyle().Width(sizeWidth).Align(lipgloss.Right)

	b.WriteString(headStyle.Render(nameCol.Render("NAME")))
	b.WriteString(columnGap)
	b.WriteString(headStyle.Render(sizeCol.Render("SIZE")))

	var total uint64
	for _, f := range listing.Files {
		b.WriteString("\n")
		b.WriteString(nameCol.Render(f.Name))
		b.WriteString(columnGap)
		b.WriteString(sizeCol.Render(f.Size))
		total += uint64(f.Bytes)
	}

	b.WriteString("\n")
	b.WriteString(faintStyle.Render(humanize.Comma(int64(len(listing.Files))) + " file(s), " + humanize.IBytes(total)))

	return b.String()
}

// renderUploaded summarises a finished upload.
func renderUploaded(batchID, shareURL string, files []models.UploadFile) string {
	var total uint64
	for _, f := range files {
		total += uint64(len(f.Content))
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("Batch " + batchID))
	b.WriteString("\n")
	b.WriteString(urlStyle.Render(shareURL))
	b.WriteString("\n")
	b.WriteString(faintStyle.Render(humanize.Comma(int64(len(files))) + " file(s), " + humanize.IBytes(total)))

	return b.String()
}
