// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

// validate checks the merged [StructuredConfig] before it is mapped to the
// client view.
func (cfg *StructuredConfig) validate() error {
	if len(cfg.Inputs.Files) == 0 && cfg.Inputs.Directory == "" {
		return ErrHelpRequested
	}

	if cfg.Credentials.APIToken == "" {
		return ErrMissingAPIToken
	}

	return nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.Adapter.BaseURL == "" || cfg.Adapter.RequestTimeout <= 0 {
		return ErrInvalidAdapterConfigs
	}

	if cfg.Workers.PollInterval <= 0 {
		return ErrInvalidWorkerConfigs
	}

	return nil
}
