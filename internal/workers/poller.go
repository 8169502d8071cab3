// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-elevate-uploader/internal/logger"
	"github.com/MKhiriev/go-elevate-uploader/internal/service"
	"github.com/MKhiriev/go-elevate-uploader/models"
)

// StatusPoller refreshes interaction statuses on every scheduler tick until
// all of them are terminal.
type StatusPoller struct {
	statuses  service.StatusService
	renderer  Renderer
	scheduler Scheduler

	logger *logger.Logger
}

// NewStatusPoller creates a StatusPoller. renderer may be nil.
func NewStatusPoller(statuses service.StatusService, renderer Renderer, scheduler Scheduler, log *logger.Logger) *StatusPoller {
	return &StatusPoller{
		statuses:  statuses,
		renderer:  renderer,
		scheduler: scheduler,
		logger:    log,
	}
}

// Run blocks until every record is terminal, a refresh fails or ctx is
// cancelled. The first refresh happens on the first tick, never before.
// It always returns the latest known records; the error is nil only when
// every record reached a terminal status. The scheduler is stopped on return.
func (p *StatusPoller) Run(ctx context.Context, records models.JobRecords) (models.JobRecords, error) {
	defer p.scheduler.Stop()

	for cycle := 1; ; cycle++ {
		select {
		case <-ctx.Done():
			p.logger.Info().Int("cycle", cycle).Msg("status polling cancelled")
			return records, ctx.Err()
		case <-p.scheduler.C():
		}
		if ctx.Err() != nil {
			return records, ctx.Err()
		}

		refreshed, err := p.statuses.Refresh(ctx, records)
		if err != nil {
			return records, fmt.Errorf("poll cycle %d: %w", cycle, err)
		}
		records = refreshed

		if p.renderer != nil {
			p.renderer.Render(records.Clone())
		}

		if records.AllTerminal() {
			p.logger.Info().Int("cycle", cycle).Int("records", len(records)).Msg("all interactions are terminal")
			return records, nil
		}
		p.logger.Debug().Int("cycle", cycle).Msg("poll cycle finished")
	}
}
