// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/MKhiriev/go-elevate-uploader/internal/config"
	"github.com/MKhiriev/go-elevate-uploader/internal/logger"
	"github.com/MKhiriev/go-elevate-uploader/models"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testToken = "test-token"

// newVendorServer mounts the given routes under /v1 the way the real API is
// laid out.
func newVendorServer(t *testing.T, routes func(r chi.Router)) *httptest.Server {
	t.Helper()
	r := chi.NewRouter()
	r.Route("/v1", routes)
	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)
	return srv
}

func newTestAdapter(t *testing.T, serverURL string) *elevateAIAdapter {
	t.Helper()
	a, err := NewElevateAIAdapter(config.ClientAdapter{
		BaseURL:        serverURL + "/v1/",
		RequestTimeout: 5 * time.Second,
	}, logger.Nop())
	require.NoError(t, err)
	a.SetToken(" " + testToken + " ")
	return a.(*elevateAIAdapter)
}

func writeAudio(t *testing.T, content string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), "call.wav")
	require.NoError(t, os.WriteFile(p, []byte(content), 0o600))
	return p
}

// ── NewElevateAIAdapter ──────────────────────────────────────────────────────

func TestNewElevateAIAdapter_InvalidBaseURL(t *testing.T) {
	_, err := NewElevateAIAdapter(config.ClientAdapter{BaseURL: "  "}, logger.Nop())
	require.Error(t, err)
}

func TestNormalizeBaseURL(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{in: "https://api.elevateai.com/v1/", want: "https://api.elevateai.com/v1"},
		{in: "api.elevateai.com/v1", want: "https://api.elevateai.com/v1"},
		{in: "http://localhost:8080", want: "http://localhost:8080"},
		{in: "", wantErr: true},
		{in: "https://", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := normalizeBaseURL(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSetToken_Trims(t *testing.T) {
	a := &elevateAIAdapter{}
	a.SetToken("  abc \n")
	assert.Equal(t, "abc", a.Token())
}

// ── DeclareInteraction ───────────────────────────────────────────────────────

func TestDeclareInteraction_Created(t *testing.T) {
	srv := newVendorServer(t, func(r chi.Router) {
		r.Post("/interactions", func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, testToken, r.Header.Get(TokenHeader))
			assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

			var body map[string]any
			assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			assert.Equal(t, "audio", body["type"])
			assert.Equal(t, "en-us", body["languageTag"])
			assert.Equal(t, "default", body["version"])
			assert.Equal(t, "highAccuracy", body["audioTranscriptionMode"])
			assert.Equal(t, false, body["diarization"])
			assert.Equal(t, "call.wav", body["originalFileName"])

			w.WriteHeader(http.StatusCreated)
			_, _ = w.Write([]byte(`{"interactionIdentifier":"id-1"}`))
		})
	})

	a := newTestAdapter(t, srv.URL)
	got, err := a.DeclareInteraction(context.Background(), models.NewAudioDeclareRequest("call.wav"))

	require.NoError(t, err)
	assert.Equal(t, "id-1", got.InteractionIdentifier)
	assert.Equal(t, http.StatusCreated, got.HTTPStatus)
	assert.True(t, got.Created())
}

// TestDeclareInteraction_NonCreatedIsNotAnError verifies that the status is
// reported back instead of failing, as long as the body has an identifier.
func TestDeclareInteraction_NonCreatedIsNotAnError(t *testing.T) {
	srv := newVendorServer(t, func(r chi.Router) {
		r.Post("/interactions", func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadRequest)
			_, _ = w.Write([]byte(`{"interactionIdentifier":"id-2","errorMessage":"bad language"}`))
		})
	})

	a := newTestAdapter(t, srv.URL)
	got, err := a.DeclareInteraction(context.Background(), models.NewAudioDeclareRequest("call.wav"))

	require.NoError(t, err)
	assert.Equal(t, "id-2", got.InteractionIdentifier)
	assert.Equal(t, http.StatusBadRequest, got.HTTPStatus)
	assert.False(t, got.Created())
}

func TestDeclareInteraction_MalformedBodies(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
	}{
		{name: "error without identifier", status: http.StatusUnauthorized, body: `{"message":"invalid token"}`},
		{name: "created without identifier", status: http.StatusCreated, body: `{}`},
		{name: "not json", status: http.StatusInternalServerError, body: `<html>oops</html>`},
		{name: "empty body", status: http.StatusBadGateway, body: ``},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := newVendorServer(t, func(r chi.Router) {
				r.Post("/interactions", func(w http.ResponseWriter, r *http.Request) {
					w.WriteHeader(tt.status)
					_, _ = w.Write([]byte(tt.body))
				})
			})

			a := newTestAdapter(t, srv.URL)
			got, err := a.DeclareInteraction(context.Background(), models.NewAudioDeclareRequest("call.wav"))

			require.ErrorIs(t, err, ErrMalformedResponse)
			assert.Equal(t, tt.status, got.HTTPStatus)
		})
	}
}

func TestDeclareInteraction_TransportError(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	a := newTestAdapter(t, url)
	_, err := a.DeclareInteraction(context.Background(), models.NewAudioDeclareRequest("call.wav"))

	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrMalformedResponse)
}

// ── UploadInteraction ────────────────────────────────────────────────────────

func TestUploadInteraction_Success(t *testing.T) {
	srv := newVendorServer(t, func(r chi.Router) {
		r.Post("/interactions/{id}/upload", func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "id-1", chi.URLParam(r, "id"))
			assert.Equal(t, testToken, r.Header.Get(TokenHeader))

			file, header, err := r.FormFile("filename")
			if !assert.NoError(t, err) {
				w.WriteHeader(http.StatusBadRequest)
				return
			}
			defer file.Close()
			data, err := io.ReadAll(file)
			assert.NoError(t, err)

			assert.Equal(t, "renamed.wav", header.Filename)
			assert.Equal(t, "RIFF-audio", string(data))
			w.WriteHeader(http.StatusCreated)
		})
	})

	a := newTestAdapter(t, srv.URL)
	err := a.UploadInteraction(context.Background(), "id-1", writeAudio(t, "RIFF-audio"), "renamed.wav")

	require.NoError(t, err)
}

func TestUploadInteraction_MissingFile_NoRequest(t *testing.T) {
	called := false
	srv := newVendorServer(t, func(r chi.Router) {
		r.Post("/interactions/{id}/upload", func(w http.ResponseWriter, r *http.Request) {
			called = true
		})
	})

	a := newTestAdapter(t, srv.URL)
	err := a.UploadInteraction(context.Background(), "id-1", filepath.Join(t.TempDir(), "absent.wav"), "absent.wav")

	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
	assert.False(t, called)
}

func TestUploadInteraction_Unauthorized(t *testing.T) {
	srv := newVendorServer(t, func(r chi.Router) {
		r.Post("/interactions/{id}/upload", func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = w.Write([]byte("invalid token"))
		})
	})

	a := newTestAdapter(t, srv.URL)
	err := a.UploadInteraction(context.Background(), "id-1", writeAudio(t, "x"), "call.wav")

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrHTTPStatus)
	assert.ErrorIs(t, err, ErrUnauthorized)
	assert.Contains(t, err.Error(), "invalid token")
}

// ── GetInteractionStatus ─────────────────────────────────────────────────────

func TestGetInteractionStatus_Success(t *testing.T) {
	srv := newVendorServer(t, func(r chi.Router) {
		r.Get("/interactions/{id}/status", func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "id-9", chi.URLParam(r, "id"))
			assert.Equal(t, testToken, r.Header.Get(TokenHeader))
			w.Header().Set("Content-Type", "application/json")
			_ = json.NewEncoder(w).Encode(models.InteractionStatus{Status: "processing"})
		})
	})

	a := newTestAdapter(t, srv.URL)
	got, err := a.GetInteractionStatus(context.Background(), "id-9")

	require.NoError(t, err)
	assert.Equal(t, "processing", got.Status)
}

func TestGetInteractionStatus_Errors(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		wantErr error
	}{
		{name: "not found", status: http.StatusNotFound, body: "no such interaction", wantErr: ErrNotFound},
		{name: "throttled", status: http.StatusTooManyRequests, body: "", wantErr: ErrTooManyRequests},
		{name: "teapot", status: http.StatusTeapot, body: "", wantErr: ErrHTTPStatus},
		{name: "malformed", status: http.StatusOK, body: "not json", wantErr: ErrMalformedResponse},
		{name: "no status", status: http.StatusOK, body: `{"other":"x"}`, wantErr: ErrMalformedResponse},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := newVendorServer(t, func(r chi.Router) {
				r.Get("/interactions/{id}/status", func(w http.ResponseWriter, r *http.Request) {
					w.WriteHeader(tt.status)
					_, _ = w.Write([]byte(tt.body))
				})
			})

			a := newTestAdapter(t, srv.URL)
			_, err := a.GetInteractionStatus(context.Background(), "id-9")

			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestGetInteractionStatus_ContextCanceled(t *testing.T) {
	srv := newVendorServer(t, func(r chi.Router) {
		r.Get("/interactions/{id}/status", func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"status":"processing"}`))
		})
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	a := newTestAdapter(t, srv.URL)
	_, err := a.GetInteractionStatus(ctx, "id-9")

	assert.ErrorIs(t, err, context.Canceled)
}
