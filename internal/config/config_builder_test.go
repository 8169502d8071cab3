// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── newConfigBuilder ──────────────────────────────────────────────────────────

// TestNewConfigBuilder_InitialState verifies that a freshly created builder
// has no error and an empty configs slice.
func TestNewConfigBuilder_InitialState(t *testing.T) {
	b := newConfigBuilder()
	require.NotNil(t, b)
	assert.NoError(t, b.err)
	assert.Empty(t, b.configs)
	assert.Nil(t, b.flags)
}

// ── build ─────────────────────────────────────────────────────────────────────

// TestBuild_PropagatesBuilderError verifies that a pre-set b.err is wrapped
// and returned, with nil config.
func TestBuild_PropagatesBuilderError(t *testing.T) {
	b := newConfigBuilder()
	b.err = assert.AnError

	cfg, err := b.build()
	assert.Nil(t, cfg)
	assert.ErrorIs(t, err, assert.AnError)
}

// TestBuild_FlagsOverrideEarlierSources verifies the env < json < flags order.
func TestBuild_FlagsOverrideEarlierSources(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{Adapter: Adapter{BaseURL: "https://env.test"}, Workers: Workers{PollInterval: time.Minute}},
		&StructuredConfig{Credentials: Credentials{APIToken: "file-token"}, Workers: Workers{PollInterval: time.Second}},
	)
	b.flags = &StructuredConfig{
		Inputs:      Inputs{Files: []string{"a.wav"}},
		Credentials: Credentials{APIToken: "inline-key"},
	}

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, "https://env.test", cfg.Adapter.BaseURL)
	assert.Equal(t, time.Second, cfg.Workers.PollInterval)
	assert.Equal(t, "inline-key", cfg.Credentials.APIToken)
	assert.Equal(t, []string{"a.wav"}, cfg.Inputs.Files)
}

func TestBuild_AppliesDefaults(t *testing.T) {
	b := newConfigBuilder()
	b.flags = &StructuredConfig{
		Inputs:      Inputs{Directory: "dir"},
		Credentials: Credentials{APIToken: "t"},
	}

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, DefaultBaseURL, cfg.Adapter.BaseURL)
	assert.Equal(t, DefaultRequestTimeout, cfg.Adapter.RequestTimeout)
	assert.Equal(t, DefaultPollInterval, cfg.Workers.PollInterval)
	assert.Equal(t, DefaultConfigPath, cfg.JSONFilePath)
}

func TestBuild_MissingToken(t *testing.T) {
	b := newConfigBuilder()
	b.flags = &StructuredConfig{Inputs: Inputs{Directory: "dir"}}

	_, err := b.build()
	assert.ErrorIs(t, err, ErrMissingAPIToken)
}

// ── withJSON ──────────────────────────────────────────────────────────────────

// TestWithJSON_ReturnsBuilder verifies the fluent interface.
func TestWithJSON_ReturnsBuilder(t *testing.T) {
	b := newConfigBuilder()
	b.flags = &StructuredConfig{Credentials: Credentials{APIToken: "k"}, JSONFilePath: filepath.Join(t.TempDir(), "none.json")}
	assert.Same(t, b, b.withJSON())
}

func TestWithJSON_MissingFileWithoutKey(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	b := newConfigBuilder()
	b.flags = &StructuredConfig{JSONFilePath: path}

	b.withJSON()

	require.ErrorIs(t, b.err, ErrConfigNotFound)
	assert.Contains(t, b.err.Error(), path)
	assert.Empty(t, b.configs)
}

func TestWithJSON_MissingFileWithKey(t *testing.T) {
	b := newConfigBuilder()
	b.flags = &StructuredConfig{
		Credentials:  Credentials{APIToken: "inline"},
		JSONFilePath: filepath.Join(t.TempDir(), "config.json"),
	}

	b.withJSON()

	assert.NoError(t, b.err)
	assert.Empty(t, b.configs)
}

func TestWithJSON_AppendsConfig_WhenValidFile(t *testing.T) {
	path := writeConfigFile(t, `{"api_token": "file-token", "poll_interval": "5s"}`)
	b := newConfigBuilder()
	b.flags = &StructuredConfig{JSONFilePath: path}

	b.withJSON()

	require.NoError(t, b.err)
	require.Len(t, b.configs, 1)
	assert.Equal(t, "file-token", b.configs[0].Credentials.APIToken)
	assert.Equal(t, 5*time.Second, b.configs[0].Workers.PollInterval)
}

// TestWithJSON_InlineKeyIgnoresFileToken verifies that an inline key is used
// even when the file has no api_token at all.
func TestWithJSON_InlineKeyIgnoresFileToken(t *testing.T) {
	path := writeConfigFile(t, `{"base_url": "https://file.test"}`)
	b := newConfigBuilder()
	b.flags = &StructuredConfig{
		Inputs:       Inputs{Files: []string{"a.wav"}},
		Credentials:  Credentials{APIToken: "inline"},
		JSONFilePath: path,
	}

	cfg, err := b.withJSON().build()

	require.NoError(t, err)
	assert.Equal(t, "inline", cfg.Credentials.APIToken)
	assert.Equal(t, "https://file.test", cfg.Adapter.BaseURL)
}

// TestWithJSON_InlineKeyUnusableFileIsWarning verifies that with an inline key
// a config file that cannot be used does not stop the run: its settings are
// skipped and the problem is kept as a warning.
func TestWithJSON_InlineKeyUnusableFileIsWarning(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "not json", body: `api_token=abc`},
		{name: "bad duration", body: `{"poll_interval": "soon", "base_url": "https://file.test"}`},
		{name: "wrong type", body: `{"api_token": 42}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := newConfigBuilder()
			b.flags = &StructuredConfig{
				Inputs:       Inputs{Files: []string{"a.wav"}},
				Credentials:  Credentials{APIToken: "inline"},
				JSONFilePath: writeConfigFile(t, tt.body),
			}

			cfg, err := b.withJSON().build()

			require.NoError(t, err)
			assert.Equal(t, "inline", cfg.Credentials.APIToken)
			assert.Equal(t, DefaultBaseURL, cfg.Adapter.BaseURL, "file settings are skipped")
			assert.Equal(t, DefaultPollInterval, cfg.Workers.PollInterval)
			require.Len(t, b.warnings, 1)
			assert.ErrorIs(t, b.warnings[0], ErrInvalidConfigFile)
		})
	}
}

// TestWithJSON_InlineKeyAllowsEmptyFileToken verifies that an empty api_token
// is accepted when the key comes from the command line.
func TestWithJSON_InlineKeyAllowsEmptyFileToken(t *testing.T) {
	b := newConfigBuilder()
	b.flags = &StructuredConfig{
		Credentials:  Credentials{APIToken: "inline"},
		JSONFilePath: writeConfigFile(t, `{"api_token": "", "base_url": "https://file.test"}`),
	}

	b.withJSON()

	require.NoError(t, b.err)
	assert.Empty(t, b.warnings)
	require.Len(t, b.configs, 1)
	assert.Equal(t, "https://file.test", b.configs[0].Adapter.BaseURL)
}

func TestWithJSON_SkippedAfterError(t *testing.T) {
	b := newConfigBuilder()
	b.err = ErrHelpRequested

	b.withJSON().withEnv()

	assert.Empty(t, b.configs)
	assert.ErrorIs(t, b.err, ErrHelpRequested)
	assert.NotErrorIs(t, b.err, ErrConfigNotFound)
}

// ── GetClientConfig ───────────────────────────────────────────────────────────

func TestGetClientConfig_NoInputs_HelpWithoutConfig(t *testing.T) {
	clearEnvVars(t)
	_, err := GetClientConfig([]string{"-c", filepath.Join(t.TempDir(), "absent.json")})

	assert.ErrorIs(t, err, ErrHelpRequested)
	assert.NotErrorIs(t, err, ErrConfigNotFound)
}

func TestGetClientConfig_MissingConfig(t *testing.T) {
	clearEnvVars(t)
	_, err := GetClientConfig([]string{"-f", "a.wav", "-c", filepath.Join(t.TempDir(), "absent.json")})

	assert.ErrorIs(t, err, ErrConfigNotFound)
}

func TestGetClientConfig_ConfigWithoutToken(t *testing.T) {
	clearEnvVars(t)
	path := writeConfigFile(t, `{"base_url": "https://file.test"}`)

	_, err := GetClientConfig([]string{"-f", "a.wav", "-c", path})

	assert.ErrorIs(t, err, ErrMissingAPIToken)
}

func TestGetClientConfig_InlineKeyWithBrokenFile(t *testing.T) {
	clearEnvVars(t)
	path := writeConfigFile(t, `not json at all`)

	cfg, err := GetClientConfig([]string{"-f", "x.wav", "-c", path, "-k", "inline"})

	require.NoError(t, err)
	assert.Equal(t, "inline", cfg.Credentials.APIToken)
	require.Len(t, cfg.Warnings, 1)
	assert.ErrorIs(t, cfg.Warnings[0], ErrInvalidConfigFile)
}

func TestGetClientConfig_BrokenFileWithoutKeyIsFatal(t *testing.T) {
	clearEnvVars(t)
	path := writeConfigFile(t, `not json at all`)

	_, err := GetClientConfig([]string{"-f", "x.wav", "-c", path})

	assert.ErrorIs(t, err, ErrInvalidConfigFile)
}

func TestGetClientConfig_FromFile(t *testing.T) {
	clearEnvVars(t)
	path := writeConfigFile(t, `{"api_token": "file-token"}`)

	cfg, err := GetClientConfig([]string{"-f", "a.wav", "-f", "b.wav", "-d", "dir", "-c", path, "--plain"})

	require.NoError(t, err)
	assert.Equal(t, "file-token", cfg.Credentials.APIToken)
	assert.Equal(t, []string{"a.wav", "b.wav"}, cfg.Inputs.Files)
	assert.Equal(t, "dir", cfg.Inputs.Directory)
	assert.Equal(t, DefaultBaseURL, cfg.Adapter.BaseURL)
	assert.Equal(t, DefaultPollInterval, cfg.Workers.PollInterval)
	assert.True(t, cfg.UI.Plain)
}

func TestGetClientConfig_EnvSettings(t *testing.T) {
	setEnvVars(t, map[string]string{
		"ELEVATEAI_BASE_URL":      "https://env.test/v1",
		"ELEVATEAI_POLL_INTERVAL": "1s",
	})
	path := writeConfigFile(t, `{"api_token": "file-token", "poll_interval": "2s"}`)

	cfg, err := GetClientConfig([]string{"-f", "a.wav", "-c", path})

	require.NoError(t, err)
	assert.Equal(t, "https://env.test/v1", cfg.Adapter.BaseURL)
	assert.Equal(t, 2*time.Second, cfg.Workers.PollInterval, "config file overrides env")
}

func TestGetClientConfig_InlineKey(t *testing.T) {
	clearEnvVars(t)
	path := writeConfigFile(t, `{"api_token": "file-token"}`)

	cfg, err := GetClientConfig([]string{"-f", "a.wav", "-c", path, "-k", "inline"})

	require.NoError(t, err)
	assert.Equal(t, "inline", cfg.Credentials.APIToken)
}
