// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import "errors"

var (
	// ErrHTTPStatus is wrapped by every error produced from a non-2xx answer.
	ErrHTTPStatus = errors.New("unexpected http status")

	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("conflict")
	ErrTooManyRequests     = errors.New("too many requests")
	ErrInternalServerError = errors.New("internal server error")
	ErrBadGateway          = errors.New("bad gateway")

	// ErrMalformedResponse indicates a vendor body that could not be decoded
	// or lacks a required field.
	ErrMalformedResponse = errors.New("malformed vendor response")

	// ErrPreflightFailed indicates that a remote audio URL did not answer the
	// HEAD check with 200 OK.
	ErrPreflightFailed = errors.New("remote file preflight failed")
)
