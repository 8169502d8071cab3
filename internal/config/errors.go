// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"fmt"
)

var (
	// ErrHelpRequested is returned when -h/--help was passed or when neither
	// files nor a directory were given. It is not a failure: the caller prints
	// [Usage] and exits with status 0.
	ErrHelpRequested = errors.New("help requested")
	// ErrVersionRequested is returned for --version.
	ErrVersionRequested = errors.New("version requested")
	// ErrConfigNotFound matches [*ConfigNotFoundError].
	ErrConfigNotFound = errors.New("config file not found")
	// ErrMissingAPIToken indicates that no inline key was given and the config
	// file carries no api_token.
	ErrMissingAPIToken = errors.New("api_token is required")
	// ErrInvalidConfigFile indicates a config file that is not valid JSON or
	// does not match the expected schema.
	ErrInvalidConfigFile = errors.New("invalid config file")
	// ErrInvalidAdapterConfigs indicates invalid vendor adapter settings
	// (for example, empty base URL or non-positive request timeout).
	ErrInvalidAdapterConfigs = errors.New("invalid adapter configuration")
	// ErrUnexpectedArguments is returned for positional arguments given
	// without -f/--files.
	ErrUnexpectedArguments = errors.New("unrecognized arguments")
	// ErrInvalidWorkerConfigs indicates a non-positive poll interval.
	ErrInvalidWorkerConfigs = errors.New("invalid worker configuration")
)

// ConfigNotFoundError reports a missing config file when no inline API key
// was supplied. Its message is the diagnostic shown to the user.
type ConfigNotFoundError struct {
	Path string
}

func (e *ConfigNotFoundError) Error() string {
	return fmt.Sprintf("Config file '%s' not found. A config.json file or API key is required.", e.Path)
}

// Is makes errors.Is(err, ErrConfigNotFound) succeed.
func (e *ConfigNotFoundError) Is(target error) bool {
	return target == ErrConfigNotFound
}
