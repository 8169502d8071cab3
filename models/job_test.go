// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestJobRecord_IsTerminal(t *testing.T) {
	tests := []struct {
		status string
		want   bool
	}{
		{StatusProcessed, true},
		{"fileUploadFailed", true},
		{"processingFailed", true},
		{StatusUploaded, false},
		{StatusUploadError, false},
		{"processing", false},
		{"Processed", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.status, func(t *testing.T) {
			assert.Equal(t, tt.want, JobRecord{Status: tt.status}.IsTerminal())
		})
	}
}

func TestJobRecords_AllTerminal(t *testing.T) {
	assert.True(t, JobRecords{}.AllTerminal(), "vacuously true")
	assert.True(t, JobRecords(nil).AllTerminal())

	assert.True(t, JobRecords{
		{Status: StatusProcessed},
		{Status: "processingFailed"},
	}.AllTerminal())

	assert.False(t, JobRecords{
		{Status: StatusProcessed},
		{Status: "processing"},
	}.AllTerminal())
}

func TestJobRecords_CloneIsIndependent(t *testing.T) {
	orig := JobRecords{{FileLabel: "a.wav", JobID: "1", Status: StatusUploaded}}
	cp := orig.Clone()
	cp[0].Status = StatusProcessed

	assert.Equal(t, StatusUploaded, orig[0].Status)
	assert.Nil(t, JobRecords(nil).Clone())
}

func TestJobRecords_Rows(t *testing.T) {
	rs := JobRecords{
		{FileLabel: "a.wav", JobID: "id-a", Status: StatusUploaded},
		{FileLabel: "b.wav", JobID: "", Status: StatusUploadError},
	}

	assert.Equal(t, [][]string{
		{"a.wav", "id-a", StatusUploaded},
		{"b.wav", "", StatusUploadError},
	}, rs.Rows())
}

func TestNewAudioDeclareRequest_FixedParameters(t *testing.T) {
	req := NewAudioDeclareRequest("call.wav")

	assert.Equal(t, "audio", req.Type)
	assert.Equal(t, "en-us", req.LanguageTag)
	assert.Equal(t, "default", req.Version)
	assert.Equal(t, "highAccuracy", req.AudioTranscriptionMode)
	assert.False(t, req.Diarization)
	assert.Nil(t, req.DownloadURI)
	assert.Equal(t, "call.wav", req.OriginalFileName)
}

func TestAppBuildInfo_DefaultsToNA(t *testing.T) {
	info := NewAppBuildInfo("", " ", "abc123")

	assert.Equal(t, "N/A", info.BuildVersion())
	assert.Equal(t, "N/A", info.BuildDate())
	assert.Equal(t, "abc123", info.BuildCommit())
	assert.Equal(t, "Build version: N/A\nBuild date: N/A\nBuild commit: abc123\n", info.String())
}

func TestDeclareResponse_Created(t *testing.T) {
	assert.True(t, DeclareResponse{HTTPStatus: 201}.Created())
	assert.False(t, DeclareResponse{HTTPStatus: 200}.Created())
	assert.False(t, DeclareResponse{HTTPStatus: 400}.Created())
}
