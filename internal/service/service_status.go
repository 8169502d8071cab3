// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-elevate-uploader/internal/adapter"
	"github.com/MKhiriev/go-elevate-uploader/internal/logger"
	"github.com/MKhiriev/go-elevate-uploader/models"
)

type statusService struct {
	vendor adapter.VendorAdapter

	logger *logger.Logger
}

// NewStatusService constructs a [StatusService] backed by vendor.
func NewStatusService(vendor adapter.VendorAdapter, log *logger.Logger) StatusService {
	return &statusService{vendor: vendor, logger: log}
}

// Refresh implements [StatusService].
func (s *statusService) Refresh(ctx context.Context, records models.JobRecords) (models.JobRecords, error) {
	refreshed := records.Clone()
	for i := range refreshed {
		status, err := s.vendor.GetInteractionStatus(ctx, refreshed[i].JobID)
		if err != nil {
			return nil, fmt.Errorf("%w %q for %q: %w", ErrStatusQuery, refreshed[i].JobID, refreshed[i].FileLabel, err)
		}

		if status.Status != refreshed[i].Status {
			s.logger.Debug().
				Str("interaction_id", refreshed[i].JobID).
				Str("from", refreshed[i].Status).
				Str("to", status.Status).
				Msg("interaction status changed")
		}
		refreshed[i].Status = status.Status
	}

	return refreshed, nil
}
