// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/MKhiriev/go-elevate-uploader/internal/logger"
)

type inputResolver struct {
	logger *logger.Logger
}

// NewInputResolver returns the filesystem implementation of [InputResolver].
func NewInputResolver(log *logger.Logger) InputResolver {
	return &inputResolver{logger: log}
}

// Resolve implements [InputResolver]. Directory entries are visited in
// lexical order. Symbolic links are listed when they point to a regular file
// and are never followed into directories. A directory that does not exist
// contributes nothing and is only logged.
func (r *inputResolver) Resolve(files []string, dir string) ([]string, error) {
	inputs := make([]string, 0, len(files))
	inputs = append(inputs, files...)

	if dir == "" {
		return inputs, nil
	}

	if _, err := os.Stat(dir); errors.Is(err, fs.ErrNotExist) {
		r.logger.Warn().Str("directory", dir).Msg("input directory does not exist, nothing to walk")
		return inputs, nil
	}

	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		if d.Type()&fs.ModeSymlink != 0 {
			info, statErr := os.Stat(path)
			if statErr != nil || !info.Mode().IsRegular() {
				return nil
			}
		}
		inputs = append(inputs, path)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w %q: %w", ErrWalkDirectory, dir, err)
	}

	return inputs, nil
}
