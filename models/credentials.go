// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Credentials hold the vendor API token. Loaded once at startup and never
// modified afterwards.
type Credentials struct {
	APIToken string `json:"api_token"`
}
