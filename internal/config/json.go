// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// StructuredJSONConfig is the on-disk shape of config.json.
type StructuredJSONConfig struct {
	APIToken       string   `json:"api_token"`
	BaseURL        string   `json:"base_url,omitempty"`
	RequestTimeout Duration `json:"request_timeout,omitempty"`
	PollInterval   Duration `json:"poll_interval,omitempty"`
}

// configSchema describes config.json. When no inline key was supplied
// api_token is required and must not be empty.
func configSchema(requireToken bool) map[string]any {
	duration := map[string]any{"type": []string{"string", "integer"}}
	token := map[string]any{"type": "string"}
	schema := map[string]any{
		"type": "object",
		"properties": map[string]any{
			"api_token":       token,
			"base_url":        map[string]any{"type": "string", "minLength": 1},
			"request_timeout": duration,
			"poll_interval":   duration,
		},
	}
	if requireToken {
		token["minLength"] = 1
		schema["required"] = []string{"api_token"}
	}
	return schema
}

// validateAgainstSchema validates raw JSON against schemaMap.
func validateAgainstSchema(schemaMap map[string]any, data []byte) error {
	b, err := json.Marshal(schemaMap)
	if err != nil {
		return fmt.Errorf("marshal schema: %w", err)
	}
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource("config.schema.json", bytes.NewReader(b)); err != nil {
		return fmt.Errorf("add schema: %w", err)
	}
	schema, err := compiler.Compile("config.schema.json")
	if err != nil {
		return fmt.Errorf("compile schema: %w", err)
	}
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return fmt.Errorf("unmarshal config: %w", err)
	}
	if err := schema.Validate(v); err != nil {
		return fmt.Errorf("config does not match schema: %w", err)
	}
	return nil
}

// parseJSON reads and validates the config file. With requireToken the file
// must carry a non-empty api_token, otherwise [ErrMissingAPIToken] is
// returned.
func parseJSON(jsonFilePath string, requireToken bool) (*StructuredConfig, error) {
	data, err := os.ReadFile(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}

	if err = validateAgainstSchema(configSchema(requireToken), data); err != nil {
		if requireToken && missingAPIToken(data) {
			return nil, fmt.Errorf("%w in '%s'", ErrMissingAPIToken, jsonFilePath)
		}
		return nil, fmt.Errorf("%w '%s': %w", ErrInvalidConfigFile, jsonFilePath, err)
	}

	var jsonCfg StructuredJSONConfig
	if err = json.Unmarshal(data, &jsonCfg); err != nil {
		return nil, fmt.Errorf("%w '%s': %w", ErrInvalidConfigFile, jsonFilePath, err)
	}

	cfg := &StructuredConfig{
		Credentials: Credentials{APIToken: jsonCfg.APIToken},
		Adapter: Adapter{
			BaseURL:        jsonCfg.BaseURL,
			RequestTimeout: time.Duration(jsonCfg.RequestTimeout),
		},
		Workers: Workers{PollInterval: time.Duration(jsonCfg.PollInterval)},
	}

	return cfg, nil
}

// missingAPIToken reports whether data is a JSON object whose api_token is
// absent or empty.
func missingAPIToken(data []byte) bool {
	var probe map[string]any
	if err := json.Unmarshal(data, &probe); err != nil {
		return false
	}
	token, ok := probe["api_token"]
	return !ok || token == ""
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling
// from strings like "1h", "30s" as well as from integer nanoseconds.
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
