// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"strings"

	"github.com/MKhiriev/go-elevate-uploader/models"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

const statusColumn = 2

// RenderTable renders records as a Filename/Identifier/Status table.
func RenderTable(records models.JobRecords) string {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(borderStyle).
		Headers(models.TableHeaders...).
		Rows(records.Rows()...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return headerStyle
			case col == statusColumn && row >= 0 && row < len(records):
				return statusStyle(records[row])
			default:
				return cellStyle
			}
		})

	return t.String()
}

func statusStyle(r models.JobRecord) lipgloss.Style {
	switch {
	case r.Status == models.StatusProcessed:
		return doneStyle
	case r.IsTerminal(), r.Status == models.StatusUploadError:
		return failedStyle
	default:
		return pendingStyle
	}
}

// identifiers returns the non-empty interaction identifiers, one per line.
func identifiers(records models.JobRecords) string {
	ids := make([]string, 0, len(records))
	for _, r := range records {
		if strings.TrimSpace(r.JobID) != "" {
			ids = append(ids, r.JobID)
		}
	}
	return strings.Join(ids, "\n")
}

func countTerminal(records models.JobRecords) int {
	n := 0
	for _, r := range records {
		if r.IsTerminal() {
			n++
		}
	}
	return n
}
