// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the uploader run: it wires the vendor adapter,
// the upload and status services, the status poller and the progress
// presenter into a single process lifecycle.
package client
