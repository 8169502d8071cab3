// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import "errors"

var ErrAlreadyStarted = errors.New("presenter already started")
