// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import "errors"

// ErrInterrupted is returned by [App.Run] when the run was cancelled by the
// user. It is not a failure.
var ErrInterrupted = errors.New("interrupted by user")
