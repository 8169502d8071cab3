// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "errors"

var (
	ErrWalkDirectory = errors.New("cannot walk input directory")
	ErrFetchRemote   = errors.New("cannot fetch remote input")
	ErrDeclare       = errors.New("cannot declare interaction")
	ErrUpload        = errors.New("cannot upload interaction")
	ErrStatusQuery   = errors.New("cannot query interaction status")
)
