// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "strings"

// Status values assigned locally or compared against vendor responses.
const (
	// StatusUploaded is recorded when the declare call returned 201 Created.
	StatusUploaded = "Uploaded Successfully"
	// StatusUploadError is recorded when the declare call returned any other status.
	StatusUploadError = "Upload error"
	// StatusProcessed is the vendor status of a fully analysed interaction.
	StatusProcessed = "processed"
	// StatusFailedMarker is contained in every vendor failure status
	// (e.g. "fileUploadFailed", "processingFailed").
	StatusFailedMarker = "Failed"
)

// JobRecord tracks one input file and the vendor interaction created for it.
type JobRecord struct {
	// FileLabel is the input as resolved on the command line (path or URL).
	FileLabel string `json:"file_label"`
	// JobID is the vendor interaction identifier. It may be empty when the
	// declare response carried no identifier.
	JobID string `json:"job_id"`
	// Status is the latest known status string.
	Status string `json:"status"`
}

// IsTerminal reports whether the vendor will not update the interaction any
// further: it is either processed or in one of the failure states.
func (r JobRecord) IsTerminal() bool {
	return r.Status == StatusProcessed || strings.Contains(r.Status, StatusFailedMarker)
}

// JobRecords is the ordered list of records, one per resolved input.
type JobRecords []JobRecord

// AllTerminal reports whether every record is terminal. It is vacuously true
// for an empty list.
func (rs JobRecords) AllTerminal() bool {
	for _, r := range rs {
		if !r.IsTerminal() {
			return false
		}
	}
	return true
}

// Clone returns an independent copy safe to hand to another goroutine.
func (rs JobRecords) Clone() JobRecords {
	if rs == nil {
		return nil
	}
	out := make(JobRecords, len(rs))
	copy(out, rs)
	return out
}

// Rows returns the records as Filename/Identifier/Status string rows.
func (rs JobRecords) Rows() [][]string {
	rows := make([][]string, 0, len(rs))
	for _, r := range rs {
		rows = append(rows, []string{r.FileLabel, r.JobID, r.Status})
	}
	return rows
}

// TableHeaders are the column titles used by every presenter and exporter.
var TableHeaders = []string{"Filename", "Identifier", "Status"}
