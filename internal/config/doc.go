// Package config provides configuration loading, merging, and validation
// for the uploader.
//
// Configuration is assembled from multiple sources in the following priority
// order (later sources override earlier non-zero fields):
//  1. Environment variables
//  2. JSON config file (schema-validated)
//  3. Command-line flags
//
// Inputs and the inline API key come from flags only. The main entry point is
// [GetClientConfig].
package config
