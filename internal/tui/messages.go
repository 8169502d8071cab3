package tui

import "github.com/MKhiriev/go-elevate-uploader/models"

type recordsMsg struct {
	records models.JobRecords
}

type finishMsg struct{}

type copiedMsg struct {
	count int
}

type copyFailedMsg struct {
	err error
}

type clearStatusMsg struct{}
