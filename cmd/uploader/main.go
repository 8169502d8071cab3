// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-elevate-uploader/internal/adapter"
	"github.com/MKhiriev/go-elevate-uploader/internal/client"
	"github.com/MKhiriev/go-elevate-uploader/internal/config"
	"github.com/MKhiriev/go-elevate-uploader/internal/logger"
	"github.com/MKhiriev/go-elevate-uploader/internal/service"
	"github.com/MKhiriev/go-elevate-uploader/internal/utils"
	"github.com/MKhiriev/go-elevate-uploader/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)

	cfg, err := config.GetClientConfig(args)
	switch {
	case errors.Is(err, config.ErrHelpRequested):
		fmt.Fprint(stdout, config.Usage())
		return 0
	case errors.Is(err, config.ErrVersionRequested):
		fmt.Fprint(stdout, buildInfo.String())
		return 0
	case err != nil:
		fmt.Fprintln(stderr, err)
		return 1
	}

	log := logger.NewClientLogger("go-elevate-uploader", cfg.LogFile).WithRunID(utils.NewRunID())
	log.Info().
		Str("version", buildInfo.BuildVersion()).
		Str("commit", buildInfo.BuildCommit()).
		Int("files", len(cfg.Inputs.Files)).
		Str("directory", cfg.Inputs.Directory).
		Str("base_url", cfg.Adapter.BaseURL).
		Dur("poll_interval", cfg.Workers.PollInterval).
		Msg("starting uploader")
	for _, warning := range cfg.Warnings {
		log.Warn().Err(warning).Msg("configuration warning")
		fmt.Fprintf(stderr, "warning: %v\n", warning)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	vendor, err := adapter.NewElevateAIAdapter(cfg.Adapter, log)
	if err != nil {
		log.Error().Err(err).Msg("create vendor adapter")
		fmt.Fprintln(stderr, err)
		return 1
	}

	workDir, err := os.Getwd()
	if err != nil {
		log.Error().Err(err).Msg("resolve working directory")
		fmt.Fprintln(stderr, err)
		return 1
	}
	fetcher := adapter.NewHTTPFetcher(workDir, cfg.Adapter.RequestTimeout, log)

	services := service.NewClientServices(vendor, fetcher, stdout, log)

	app, err := client.NewApp(cfg, vendor, services, stdout, log)
	if err != nil {
		log.Error().Err(err).Msg("init client app")
		fmt.Fprintln(stderr, err)
		return 1
	}

	err = app.Run(ctx)
	switch {
	case errors.Is(err, client.ErrInterrupted):
		fmt.Fprintln(stdout, "\nGoodbye!")
		return 0
	case err != nil:
		log.Error().Err(err).Msg("uploader run error")
		fmt.Fprintf(stderr, "error: %v\n", err)
		return 1
	}

	log.Info().Msg("uploader finished")
	return 0
}
