// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package service contains the uploader's business logic: resolving the
// inputs given on the command line, uploading every input as a vendor
// interaction and refreshing the statuses of the created interactions.
//
// Services depend on [adapter.VendorAdapter] and [adapter.RemoteFetcher] only,
// so tests run them against the gomock mocks from internal/mock.
package service

import (
	"context"

	"github.com/MKhiriev/go-elevate-uploader/models"
)

// InputResolver builds the ordered list of inputs to upload.
type InputResolver interface {
	// Resolve returns the explicit files first, in the given order, followed
	// by every file found by a recursive walk of dir. dir may be empty.
	// Duplicates are kept. A walk failure is returned as an error wrapping
	// ErrWalkDirectory.
	Resolve(files []string, dir string) ([]string, error)
}

// UploadService turns inputs into vendor interactions.
type UploadService interface {
	// UploadAll processes inputs sequentially: remote inputs are fetched,
	// every input is declared and uploaded. It returns one record per input,
	// in input order. The first fatal error aborts the run and is returned
	// together with the records created so far.
	UploadAll(ctx context.Context, inputs []string) (models.JobRecords, error)
}

// StatusService queries the vendor for the current interaction statuses.
type StatusService interface {
	// Refresh returns a copy of records with every Status replaced by the
	// vendor's current value. Order and identifiers are preserved. The first
	// failed query is returned as an error.
	Refresh(ctx context.Context, records models.JobRecords) (models.JobRecords, error)
}
