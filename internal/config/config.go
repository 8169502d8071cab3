// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"

	"github.com/MKhiriev/go-elevate-uploader/models"
)

// Default values applied to settings left empty by every source.
const (
	DefaultConfigPath     = "config.json"
	DefaultBaseURL        = "https://api.elevateai.com/v1"
	DefaultRequestTimeout = 5 * time.Minute
	DefaultPollInterval   = 15 * time.Second
)

// StructuredConfig is the top-level configuration container for the uploader.
// It aggregates all sub-configurations and is populated by merging values
// from environment variables, the JSON config file and command-line flags.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env:       direct environment variable name for scalar fields.
type StructuredConfig struct {
	// Inputs holds the explicit files and the directory to walk. Only flags
	// populate it.
	Inputs Inputs

	// Credentials holds the inline API key from flags or the token read from
	// the JSON config file.
	Credentials Credentials

	// Adapter holds the vendor endpoint settings.
	Adapter Adapter `envPrefix:"ELEVATEAI_"`

	// Workers holds the status poller settings.
	Workers Workers `envPrefix:"ELEVATEAI_"`

	// UI holds presenter and report settings.
	UI UI

	// LogFile is the client log destination.
	// Env: ELEVATEAI_LOG_FILE
	LogFile string `env:"ELEVATEAI_LOG_FILE"`

	// JSONFilePath is the path to the JSON config file (-c / --config,
	// default "config.json").
	JSONFilePath string
}

// Inputs lists what should be uploaded.
type Inputs struct {
	// Files are explicit paths or https URLs, in command-line order.
	Files []string

	// Directory is walked recursively; every regular file is uploaded.
	Directory string
}

// Credentials carries the vendor API token.
type Credentials struct {
	APIToken string
}

// Adapter holds the vendor HTTP client settings.
type Adapter struct {
	// BaseURL is the vendor API root.
	// Env: ELEVATEAI_BASE_URL
	BaseURL string `env:"BASE_URL"`

	// RequestTimeout bounds every single vendor request, uploads included.
	// Env: ELEVATEAI_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Workers holds the status poller settings.
type Workers struct {
	// PollInterval is the pause between two status refresh cycles.
	// Env: ELEVATEAI_POLL_INTERVAL
	PollInterval time.Duration `env:"POLL_INTERVAL"`
}

// UI holds presenter settings.
type UI struct {
	// Plain forces the plain text table even on a terminal.
	Plain bool

	// ReportPath is an optional XLSX file written when the run ends.
	ReportPath string
}

// ClientInputs is the client view of [Inputs].
type ClientInputs struct {
	Files     []string
	Directory string
}

// ClientAdapter holds network settings used by the vendor adapter.
type ClientAdapter struct {
	BaseURL        string
	RequestTimeout time.Duration
}

// ClientWorkers contains poller settings.
type ClientWorkers struct {
	PollInterval time.Duration
}

// ClientUI contains presenter settings.
type ClientUI struct {
	Plain      bool
	ReportPath string
}

// ClientConfig is the validated configuration the uploader runs with,
// assembled from [StructuredConfig].
type ClientConfig struct {
	Inputs      ClientInputs
	Credentials models.Credentials
	Adapter     ClientAdapter
	Workers     ClientWorkers
	UI          ClientUI
	LogFile     string

	// Warnings lists problems that did not stop the configuration from
	// loading, e.g. an unusable config file next to an inline key.
	Warnings []error
}

// GetClientConfig loads, merges and validates the configuration for the
// given command-line arguments (without the program name). Sources are
// applied in the following priority order (later sources override earlier
// non-zero fields):
//  1. Environment variables
//  2. JSON config file
//  3. Command-line flags
//
// It returns [ErrHelpRequested] when no inputs were given or -h was passed,
// [ErrVersionRequested] for --version, and an error matching
// [ErrConfigNotFound] when neither an inline key nor the config file is
// available.
func GetClientConfig(args []string) (*ClientConfig, error) {
	builder := newConfigBuilder().
		withFlags(args).
		withEnv().
		withJSON()
	cfg, err := builder.build()
	if err != nil {
		return nil, err
	}

	clientCfg := &ClientConfig{
		Inputs: ClientInputs{
			Files:     cfg.Inputs.Files,
			Directory: cfg.Inputs.Directory,
		},
		Credentials: models.Credentials{APIToken: cfg.Credentials.APIToken},
		Adapter: ClientAdapter{
			BaseURL:        cfg.Adapter.BaseURL,
			RequestTimeout: cfg.Adapter.RequestTimeout,
		},
		Workers: ClientWorkers{PollInterval: cfg.Workers.PollInterval},
		UI: ClientUI{
			Plain:      cfg.UI.Plain,
			ReportPath: cfg.UI.ReportPath,
		},
		LogFile:  cfg.LogFile,
		Warnings: builder.warnings,
	}

	return clientCfg, clientCfg.validate()
}
