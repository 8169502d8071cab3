// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"fmt"
	"os"

	"dario.cat/mergo"
)

type configBuilder struct {
	configs  []*StructuredConfig
	flags    *StructuredConfig
	err      error
	warnings []error
}

func newConfigBuilder() *configBuilder {
	return &configBuilder{
		configs: make([]*StructuredConfig, 0, 2),
	}
}

// build merges env and JSON configs in the order they were added, then the
// flags on top, and finally fills defaults for whatever is still empty.
func (b *configBuilder) build() (*StructuredConfig, error) {
	if b.err != nil {
		return nil, fmt.Errorf("error occured during building config: %w", b.err)
	}

	config := new(StructuredConfig)
	sources := b.configs
	if b.flags != nil {
		sources = append(sources, b.flags)
	}
	for _, cfg := range sources {
		if err := mergo.Merge(config, cfg, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("error merging configs: %w", err)
		}
	}

	config.applyDefaults()
	return config, config.validate()
}

func (b *configBuilder) withFlags(args []string) *configBuilder {
	if b.err != nil {
		return b
	}

	flags, err := ParseFlags(args)
	if err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	b.flags = flags
	return b
}

func (b *configBuilder) withEnv() *configBuilder {
	if b.err != nil {
		return b
	}

	envCfg := &StructuredConfig{}
	if err := parseEnv(envCfg); err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	b.configs = append(b.configs, envCfg)
	return b
}

// withJSON reads the config file named by the flags. The file is mandatory
// only when no inline API key was supplied. With an inline key an existing
// file still contributes its vendor settings, and a file that cannot be used
// is recorded as a warning and skipped.
func (b *configBuilder) withJSON() *configBuilder {
	if b.err != nil {
		return b
	}

	jsonPath := DefaultConfigPath
	inlineKey := ""
	if b.flags != nil {
		if b.flags.JSONFilePath != "" {
			jsonPath = b.flags.JSONFilePath
		}
		inlineKey = b.flags.Credentials.APIToken
	}

	if !fileExists(jsonPath) {
		if inlineKey == "" {
			b.err = errors.Join(b.err, &ConfigNotFoundError{Path: jsonPath})
		}
		return b
	}

	jsonCfg, err := parseJSON(jsonPath, inlineKey == "")
	if err != nil {
		if inlineKey != "" {
			b.warnings = append(b.warnings, fmt.Errorf("config file ignored: %w", err))
			return b
		}
		b.err = errors.Join(b.err, err)
		return b
	}

	b.configs = append(b.configs, jsonCfg)
	return b
}

func (cfg *StructuredConfig) applyDefaults() {
	if cfg.JSONFilePath == "" {
		cfg.JSONFilePath = DefaultConfigPath
	}
	if cfg.Adapter.BaseURL == "" {
		cfg.Adapter.BaseURL = DefaultBaseURL
	}
	if cfg.Adapter.RequestTimeout == 0 {
		cfg.Adapter.RequestTimeout = DefaultRequestTimeout
	}
	if cfg.Workers.PollInterval == 0 {
		cfg.Workers.PollInterval = DefaultPollInterval
	}
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
