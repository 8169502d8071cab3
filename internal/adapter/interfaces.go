// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the transport layer towards the ElevateAI
// speech-analytics service and towards remote (https) audio sources.
//
// [VendorAdapter] decouples the upload orchestration and the status poller
// from HTTP: the production implementation ([NewElevateAIAdapter]) is built on
// resty, tests substitute the gomock mock from internal/mock.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] (e.g. [ErrUnauthorized] for
// 401, [ErrHTTPStatus] for any non-2xx answer).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-elevate-uploader/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/vendor_adapter_mock.go -package=mock

// VendorAdapter defines the three vendor operations used by the uploader.
// Implementations attach the API token set via SetToken to every request.
type VendorAdapter interface {
	// SetToken stores the API token attached to all subsequent requests.
	SetToken(token string)

	// Token returns the API token currently stored in the adapter.
	Token() string

	// DeclareInteraction announces a new interaction. It does not treat a
	// non-201 answer as an error: the HTTP status is returned in
	// [models.DeclareResponse.HTTPStatus] and the identifier is decoded from
	// the body regardless. A transport failure, a body that is not JSON or a
	// body without interactionIdentifier is returned as an error.
	DeclareInteraction(ctx context.Context, req models.DeclareRequest) (models.DeclareResponse, error)

	// UploadInteraction sends the bytes of the file at filePath for the
	// declared interaction, announcing it as fileName. A non-2xx answer is
	// returned as an error wrapping [ErrHTTPStatus].
	UploadInteraction(ctx context.Context, interactionID, filePath, fileName string) error

	// GetInteractionStatus returns the current vendor status of the
	// interaction.
	GetInteractionStatus(ctx context.Context, interactionID string) (models.InteractionStatus, error)
}

// RemoteFetcher downloads audio given as an https URL.
type RemoteFetcher interface {
	// Fetch checks rawURL with a HEAD request and, when it answers 200,
	// downloads the content into a local file named after the last URL path
	// segment. It returns the local path. A failed check is reported as an
	// error wrapping [ErrPreflightFailed]; any other error means the download
	// itself failed.
	Fetch(ctx context.Context, rawURL string) (string, error)
}
