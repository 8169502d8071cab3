// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/MKhiriev/go-elevate-uploader/internal/adapter"
	"github.com/MKhiriev/go-elevate-uploader/internal/logger"
	"github.com/MKhiriev/go-elevate-uploader/models"
)

// remotePrefix marks an input that has to be downloaded before upload.
const remotePrefix = "https"

type uploadService struct {
	vendor  adapter.VendorAdapter
	fetcher adapter.RemoteFetcher
	out     io.Writer

	logger *logger.Logger
}

// NewUploadService constructs an [UploadService]. Progress lines are written
// to out.
func NewUploadService(vendor adapter.VendorAdapter, fetcher adapter.RemoteFetcher, out io.Writer, log *logger.Logger) UploadService {
	if out == nil {
		out = io.Discard
	}
	return &uploadService{
		vendor:  vendor,
		fetcher: fetcher,
		out:     out,
		logger:  log,
	}
}

// UploadAll implements [UploadService].
func (s *uploadService) UploadAll(ctx context.Context, inputs []string) (models.JobRecords, error) {
	fmt.Fprint(s.out, "\nUploading files...\n\n")

	records := make(models.JobRecords, 0, len(inputs))
	for _, input := range inputs {
		record, err := s.upload(ctx, input)
		if err != nil {
			return records, err
		}
		records = append(records, record)

		fmt.Fprintf(s.out, "%s: %s (%s)\n", record.FileLabel, record.Status, record.JobID)
	}

	return records, nil
}

func (s *uploadService) upload(ctx context.Context, input string) (models.JobRecord, error) {
	filePath, err := s.localize(ctx, input)
	if err != nil {
		return models.JobRecord{}, err
	}
	fileName := filepath.Base(filePath)

	declared, err := s.vendor.DeclareInteraction(ctx, models.NewAudioDeclareRequest(fileName))
	if err != nil {
		return models.JobRecord{}, fmt.Errorf("%w for %q: %w", ErrDeclare, input, err)
	}
	if !declared.Created() {
		s.logger.Warn().
			Str("input", input).
			Int("http_status", declared.HTTPStatus).
			Msg("declare was not acknowledged with 201 Created")
	}

	err = s.vendor.UploadInteraction(ctx, declared.InteractionIdentifier, filePath, fileName)
	switch {
	case err == nil:
	case errors.Is(err, adapter.ErrHTTPStatus):
		s.logger.Warn().Err(err).
			Str("input", input).
			Str("interaction_id", declared.InteractionIdentifier).
			Msg("upload was rejected by vendor")
	default:
		return models.JobRecord{}, fmt.Errorf("%w for %q: %w", ErrUpload, input, err)
	}

	status := models.StatusUploadError
	if declared.Created() {
		status = models.StatusUploaded
	}

	s.logger.Info().
		Str("input", input).
		Str("interaction_id", declared.InteractionIdentifier).
		Str("status", status).
		Msg("input uploaded")

	return models.JobRecord{
		FileLabel: input,
		JobID:     declared.InteractionIdentifier,
		Status:    status,
	}, nil
}

// localize returns the path to upload for input. Remote inputs that pass the
// preflight check are downloaded; the ones that fail it are returned as is.
func (s *uploadService) localize(ctx context.Context, input string) (string, error) {
	if !strings.HasPrefix(input, remotePrefix) {
		return input, nil
	}

	localPath, err := s.fetcher.Fetch(ctx, input)
	if err != nil {
		if errors.Is(err, adapter.ErrPreflightFailed) {
			s.logger.Warn().Err(err).Str("input", input).Msg("remote input is passed on unchanged")
			return input, nil
		}
		return "", fmt.Errorf("%w %q: %w", ErrFetchRemote, input, err)
	}

	return localPath, nil
}
