// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"io"

	"github.com/MKhiriev/go-elevate-uploader/internal/adapter"
	"github.com/MKhiriev/go-elevate-uploader/internal/logger"
)

type ClientServices struct {
	InputResolver InputResolver
	UploadService UploadService
	StatusService StatusService
}

func NewClientServices(vendor adapter.VendorAdapter, fetcher adapter.RemoteFetcher, out io.Writer, log *logger.Logger) *ClientServices {
	return &ClientServices{
		InputResolver: NewInputResolver(log),
		UploadService: NewUploadService(vendor, fetcher, out, log),
		StatusService: NewStatusService(vendor, log),
	}
}
