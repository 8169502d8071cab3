// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/spf13/pflag"
)

const usageHeader = `Upload audio files to ElevateAI.

Usage:
  uploader [-f FILE...] [-d DIRECTORY] [-c CONFIG] [-k API_KEY] [FILE...]

Flags:
`

type cliFlags struct {
	files        []string
	directory    string
	configPath   string
	apiKey       string
	plain        bool
	reportPath   string
	pollInterval time.Duration
	logFile      string
	version      bool
}

func newFlagSet(f *cliFlags) *pflag.FlagSet {
	fs := pflag.NewFlagSet("uploader", pflag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.Usage = func() {}
	fs.SortFlags = false

	fs.StringArrayVarP(&f.files, "files", "f", nil, "Audio files to upload (repeatable; trailing arguments are files too)")
	fs.StringVarP(&f.directory, "directory", "d", "", "Directory containing audio files to upload")
	fs.StringVarP(&f.configPath, "config", "c", DefaultConfigPath, "Path to config.json file")
	fs.StringVarP(&f.apiKey, "api_key", "k", "", "API key")
	fs.BoolVar(&f.plain, "plain", false, "Print a plain table after every refresh instead of the live view")
	fs.StringVar(&f.reportPath, "report", "", "Write the final status table to this .xlsx file")
	fs.DurationVar(&f.pollInterval, "poll-interval", 0, "Pause between status refreshes (default 15s)")
	fs.StringVar(&f.logFile, "log-file", "", "Log file path (default: \"logs\" next to the executable)")
	fs.BoolVar(&f.version, "version", false, "Print build information and exit")

	return fs
}

// ParseFlags parses the command-line arguments (without the program name).
//
// Flags:
//
//	-f/--files        audio files or https URLs, repeatable
//	-d/--directory    directory walked recursively for audio files
//	-c/--config       JSON config file path (default config.json)
//	-k/--api_key      inline API key, overrides the config file token
//	--plain           plain table output
//	--report          XLSX report path
//	--poll-interval   status refresh interval
//	--log-file        client log file
//	--version         print build info
//
// Positional arguments are appended to the explicit files, so that
// "-f a.wav b.wav" uploads both. Values are never split on commas. Positional
// arguments without -f are rejected with [ErrUnexpectedArguments]. It returns
// [ErrHelpRequested] for -h/--help or when neither files nor a directory were
// given.
func ParseFlags(args []string) (*StructuredConfig, error) {
	var f cliFlags
	fs := newFlagSet(&f)

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return nil, ErrHelpRequested
		}
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	if f.version {
		return nil, ErrVersionRequested
	}

	if fs.NArg() > 0 && !fs.Changed("files") {
		return nil, fmt.Errorf("%w: %s", ErrUnexpectedArguments, strings.Join(fs.Args(), " "))
	}

	files := append(f.files, fs.Args()...)
	if len(files) == 0 && f.directory == "" {
		return nil, ErrHelpRequested
	}

	return &StructuredConfig{
		Inputs: Inputs{
			Files:     files,
			Directory: f.directory,
		},
		Credentials: Credentials{APIToken: strings.TrimSpace(f.apiKey)},
		Workers:     Workers{PollInterval: f.pollInterval},
		UI: UI{
			Plain:      f.plain,
			ReportPath: f.reportPath,
		},
		LogFile:      f.logFile,
		JSONFilePath: f.configPath,
	}, nil
}

// Usage returns the help text printed when no inputs were given.
func Usage() string {
	var f cliFlags
	return usageHeader + newFlagSet(&f).FlagUsages()
}
