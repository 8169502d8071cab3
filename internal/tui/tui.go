// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package tui shows the progress table of uploaded interactions, either as a
// live bubbletea view or as plain text for pipes and log files.
package tui

import (
	"context"
	"io"

	"github.com/MKhiriev/go-elevate-uploader/models"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-isatty"
)

// Presenter displays the job records.
type Presenter interface {
	// Start shows the initial records.
	Start(records models.JobRecords) error
	// Render replaces the displayed records.
	Render(records models.JobRecords)
	// Stop finishes the display and reports a failure of the display
	// itself. The last frame stays visible.
	Stop() error
}

type fdWriter interface {
	io.Writer
	Fd() uintptr
}

// New picks the presenter for out. The live table is used only when out is a
// terminal and plain is false. cancel is called when the user quits the live
// table.
func New(out io.Writer, plain bool, cancel context.CancelFunc) Presenter {
	if plain || !IsTerminal(out) {
		return NewPlainTable(out)
	}
	return NewLiveTable(cancel, tea.WithOutput(out))
}

// IsTerminal reports whether w is a terminal file descriptor.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(fdWriter)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
