// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/MKhiriev/go-elevate-uploader/internal/adapter"
	"github.com/MKhiriev/go-elevate-uploader/internal/config"
	"github.com/MKhiriev/go-elevate-uploader/internal/logger"
	"github.com/MKhiriev/go-elevate-uploader/internal/report"
	"github.com/MKhiriev/go-elevate-uploader/internal/service"
	"github.com/MKhiriev/go-elevate-uploader/internal/tui"
	"github.com/MKhiriev/go-elevate-uploader/internal/workers"
	"github.com/MKhiriev/go-elevate-uploader/models"
)

// PresenterFactory builds the presenter for a run. cancel interrupts the run.
type PresenterFactory func(out io.Writer, plain bool, cancel context.CancelFunc) tui.Presenter

// SchedulerFactory builds the tick source of the status poller.
type SchedulerFactory func(interval time.Duration) workers.Scheduler

type App struct {
	cfg      *config.ClientConfig
	vendor   adapter.VendorAdapter
	services *service.ClientServices
	out      io.Writer

	newPresenter PresenterFactory
	newScheduler SchedulerFactory

	logger *logger.Logger
}

// Option customises an [App].
type Option func(*App)

// WithPresenterFactory replaces [tui.New].
func WithPresenterFactory(f PresenterFactory) Option {
	return func(a *App) { a.newPresenter = f }
}

// WithSchedulerFactory replaces [workers.NewTickerScheduler].
func WithSchedulerFactory(f SchedulerFactory) Option {
	return func(a *App) { a.newScheduler = f }
}

// NewApp creates the uploader application. User-facing progress lines are
// written to out.
func NewApp(cfg *config.ClientConfig, vendor adapter.VendorAdapter, services *service.ClientServices, out io.Writer, log *logger.Logger, opts ...Option) (*App, error) {
	if cfg == nil || vendor == nil || services == nil {
		return nil, errors.New("client app: config, vendor adapter and services are required")
	}

	a := &App{
		cfg:          cfg,
		vendor:       vendor,
		services:     services,
		out:          out,
		newPresenter: tui.New,
		newScheduler: workers.NewTickerScheduler,
		logger:       log,
	}
	for _, opt := range opts {
		opt(a)
	}
	if a.out == nil {
		a.out = io.Discard
	}

	return a, nil
}

// Run uploads every input and polls the vendor until all interactions are
// terminal. A cancelled ctx, or quitting the live table, returns
// [ErrInterrupted]. Uploaded interactions are never cancelled on the vendor
// side.
func (a *App) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	a.vendor.SetToken(a.cfg.Credentials.APIToken)

	inputs, err := a.services.InputResolver.Resolve(a.cfg.Inputs.Files, a.cfg.Inputs.Directory)
	if err != nil {
		return fmt.Errorf("resolve inputs: %w", err)
	}
	a.logger.Info().Int("inputs", len(inputs)).Msg("inputs resolved")

	if len(inputs) == 0 {
		fmt.Fprint(a.out, "\nNo files found to upload.\n")
		return nil
	}

	records, err := a.services.UploadService.UploadAll(ctx, inputs)
	if err != nil {
		return a.interruptedOr(ctx, fmt.Errorf("upload inputs: %w", err))
	}

	fmt.Fprint(a.out, "\nPress C-c to exit. Processing will not be interrupted.\n")

	presenter := a.newPresenter(a.out, a.cfg.UI.Plain, cancel)
	if err = presenter.Start(records); err != nil {
		return fmt.Errorf("start presenter: %w", err)
	}

	poller := workers.NewStatusPoller(
		a.services.StatusService,
		presenter,
		a.newScheduler(a.cfg.Workers.PollInterval),
		a.logger,
	)
	records, err = poller.Run(ctx, records)
	if stopErr := presenter.Stop(); stopErr != nil {
		a.logger.Error().Err(stopErr).Msg("progress display failed")
		fmt.Fprintf(a.out, "\nProgress display failed: %v\n", stopErr)
	}

	a.exportReport(records)

	if err != nil {
		return a.interruptedOr(ctx, fmt.Errorf("poll statuses: %w", err))
	}

	fmt.Fprint(a.out, "\nAll files have been processed. Exiting.\n")
	return nil
}

// interruptedOr maps cancellation to [ErrInterrupted] and returns err
// otherwise.
func (a *App) interruptedOr(ctx context.Context, err error) error {
	if ctx.Err() != nil && errors.Is(err, context.Canceled) {
		a.logger.Info().Msg("run interrupted by user")
		return fmt.Errorf("%w: %w", ErrInterrupted, err)
	}
	return err
}

func (a *App) exportReport(records models.JobRecords) {
	path := a.cfg.UI.ReportPath
	if path == "" {
		return
	}

	if err := report.Export(path, records); err != nil {
		a.logger.Error().Err(err).Str("path", path).Msg("report export failed")
		fmt.Fprintf(a.out, "\nReport was not written: %v\n", err)
		return
	}
	a.logger.Info().Str("path", path).Int("records", len(records)).Msg("report exported")
	fmt.Fprintf(a.out, "\nReport written to %s\n", path)
}
