// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "net/http"

// Fixed declare parameters used for every uploaded file.
const (
	InteractionTypeAudio          = "audio"
	DefaultLanguageTag            = "en-us"
	DefaultModelVersion           = "default"
	TranscriptionModeHighAccuracy = "highAccuracy"
)

// DeclareRequest is the body of POST /interactions. It announces a new
// interaction before any audio bytes are sent.
type DeclareRequest struct {
	// Type is always "audio" for this tool.
	Type string `json:"type"`

	// LanguageTag selects the transcription language (e.g. "en-us").
	LanguageTag string `json:"languageTag"`

	// Version selects the vendor model version.
	Version string `json:"version"`

	// Vendor is an optional call-recording vendor hint.
	Vendor *string `json:"vendor"`

	// DownloadURI lets the vendor fetch the audio itself. The tool always
	// uploads bytes, so it is left nil.
	DownloadURI *string `json:"downloadUri"`

	// AudioTranscriptionMode is "highAccuracy" or "highSpeed".
	AudioTranscriptionMode string `json:"audioTranscriptionMode"`

	// Diarization requests speaker separation.
	Diarization bool `json:"diarization"`

	// OriginalFileName is shown in the vendor dashboard.
	OriginalFileName string `json:"originalFileName,omitempty"`
}

// NewAudioDeclareRequest returns the declare request with the fixed
// parameters: en-us, default version, highAccuracy, diarization disabled.
func NewAudioDeclareRequest(fileName string) DeclareRequest {
	return DeclareRequest{
		Type:                   InteractionTypeAudio,
		LanguageTag:            DefaultLanguageTag,
		Version:                DefaultModelVersion,
		AudioTranscriptionMode: TranscriptionModeHighAccuracy,
		Diarization:            false,
		OriginalFileName:       fileName,
	}
}

// DeclareResponse is the decoded declare response together with the HTTP
// status the vendor answered with.
type DeclareResponse struct {
	InteractionIdentifier string `json:"interactionIdentifier"`

	// HTTPStatus is not part of the body.
	HTTPStatus int `json:"-"`
}

// Created reports whether the vendor answered 201 Created.
func (r DeclareResponse) Created() bool {
	return r.HTTPStatus == http.StatusCreated
}

// InteractionStatus is the body of GET /interactions/{id}/status.
type InteractionStatus struct {
	Status string `json:"status"`
}
