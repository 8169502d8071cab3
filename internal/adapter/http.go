// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"os"
	"strings"

	"github.com/MKhiriev/go-elevate-uploader/internal/config"
	"github.com/MKhiriev/go-elevate-uploader/internal/logger"
	"github.com/MKhiriev/go-elevate-uploader/internal/utils"
	"github.com/MKhiriev/go-elevate-uploader/models"
	"github.com/go-resty/resty/v2"
)

// TokenHeader carries the API token on every vendor request.
const TokenHeader = "X-API-Token"

// uploadFormField is the multipart field the vendor reads the audio from.
const uploadFormField = "filename"

type elevateAIAdapter struct {
	client *utils.HTTPClient
	token  string

	logger *logger.Logger
}

// NewElevateAIAdapter constructs the HTTP implementation of [VendorAdapter].
// It normalises and validates adapterCfg.BaseURL and configures the request
// timeout.
//
// Returns an error if the base URL is empty or cannot be parsed.
func NewElevateAIAdapter(adapterCfg config.ClientAdapter, logger *logger.Logger) (VendorAdapter, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid vendor base url: %w", err)
	}

	client := utils.NewHTTPClient(adapterCfg.RequestTimeout)
	client.
		SetBaseURL(baseURL).
		SetHeader("Accept", "application/json")

	return &elevateAIAdapter{client: client, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "https://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// SetToken implements [VendorAdapter].
func (a *elevateAIAdapter) SetToken(token string) {
	a.token = strings.TrimSpace(token)
}

// Token implements [VendorAdapter].
func (a *elevateAIAdapter) Token() string {
	return a.token
}

// declareBody mirrors models.DeclareResponse with a pointer so that a missing
// identifier is told apart from an empty one.
type declareBody struct {
	InteractionIdentifier *string `json:"interactionIdentifier"`
}

// DeclareInteraction implements [VendorAdapter]. It POSTs req to
// POST /interactions.
func (a *elevateAIAdapter) DeclareInteraction(ctx context.Context, req models.DeclareRequest) (models.DeclareResponse, error) {
	resp, err := a.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		Post("/interactions")
	if err != nil {
		return models.DeclareResponse{}, fmt.Errorf("declare request: %w", err)
	}

	out := models.DeclareResponse{HTTPStatus: resp.StatusCode()}

	var body declareBody
	if err = json.Unmarshal(resp.Body(), &body); err != nil {
		return out, fmt.Errorf("%w: decode declare response (http %d): %w", ErrMalformedResponse, resp.StatusCode(), err)
	}
	if body.InteractionIdentifier == nil {
		return out, fmt.Errorf("%w: declare response (http %d) has no interactionIdentifier: %s",
			ErrMalformedResponse, resp.StatusCode(), strings.TrimSpace(string(resp.Body())))
	}

	out.InteractionIdentifier = *body.InteractionIdentifier
	a.logger.Debug().
		Str("interaction_id", out.InteractionIdentifier).
		Int("http_status", out.HTTPStatus).
		Msg("interaction declared")

	return out, nil
}

// UploadInteraction implements [VendorAdapter]. It streams the file as
// multipart/form-data to POST /interactions/{id}/upload.
func (a *elevateAIAdapter) UploadInteraction(ctx context.Context, interactionID, filePath, fileName string) error {
	file, err := os.Open(filePath)
	if err != nil {
		return fmt.Errorf("open audio file: %w", err)
	}
	defer file.Close()

	resp, err := a.authedRequest(ctx).
		SetPathParam("id", interactionID).
		SetFileReader(uploadFormField, fileName, file).
		Post("/interactions/{id}/upload")
	if err != nil {
		return fmt.Errorf("upload request: %w", err)
	}

	return mapHTTPError(resp)
}

// GetInteractionStatus implements [VendorAdapter]. It GETs
// GET /interactions/{id}/status.
func (a *elevateAIAdapter) GetInteractionStatus(ctx context.Context, interactionID string) (models.InteractionStatus, error) {
	resp, err := a.authedRequest(ctx).
		SetPathParam("id", interactionID).
		Get("/interactions/{id}/status")
	if err != nil {
		return models.InteractionStatus{}, fmt.Errorf("get status request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.InteractionStatus{}, err
	}

	var status models.InteractionStatus
	if err = json.Unmarshal(resp.Body(), &status); err != nil {
		return models.InteractionStatus{}, fmt.Errorf("%w: decode status response: %w", ErrMalformedResponse, err)
	}
	if status.Status == "" {
		return models.InteractionStatus{}, fmt.Errorf("%w: status response has no status", ErrMalformedResponse)
	}

	return status, nil
}

func (a *elevateAIAdapter) authedRequest(ctx context.Context) *resty.Request {
	req := a.client.R().SetContext(ctx)
	if token := a.Token(); token != "" {
		req.SetHeader(TokenHeader, token)
	}
	return req
}
