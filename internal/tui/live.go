// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"errors"
	"sync"

	"github.com/MKhiriev/go-elevate-uploader/models"
	tea "github.com/charmbracelet/bubbletea"
)

// LiveTable redraws the table in place with a bubbletea program. Quitting
// the program with q or ctrl+c calls the cancel function given to
// [NewLiveTable].
type LiveTable struct {
	cancel context.CancelFunc
	opts   []tea.ProgramOption

	program *tea.Program
	done    chan struct{}
	once    sync.Once

	err error
}

// NewLiveTable creates a LiveTable. opts are passed to [tea.NewProgram].
func NewLiveTable(cancel context.CancelFunc, opts ...tea.ProgramOption) *LiveTable {
	return &LiveTable{
		cancel: cancel,
		opts:   opts,
		done:   make(chan struct{}),
	}
}

// Start implements [Presenter]. The program runs in its own goroutine.
func (l *LiveTable) Start(records models.JobRecords) error {
	if l.program != nil {
		return ErrAlreadyStarted
	}
	l.program = tea.NewProgram(newTableModel(records, l.cancel), l.opts...)

	go func() {
		defer close(l.done)
		_, err := l.program.Run()
		if err != nil && !errors.Is(err, tea.ErrInterrupted) && !errors.Is(err, tea.ErrProgramKilled) {
			l.err = err
		}
	}()

	return nil
}

// Render implements [Presenter]. It is a no-op once the program has exited.
func (l *LiveTable) Render(records models.JobRecords) {
	if l.program == nil {
		return
	}
	l.program.Send(recordsMsg{records: records.Clone()})
}

// Stop implements [Presenter]. It leaves the last frame on screen, waits for
// the program to exit and returns the error it failed with, if any. Quitting
// by the user is not an error.
func (l *LiveTable) Stop() error {
	if l.program == nil {
		return nil
	}
	l.once.Do(func() {
		l.program.Send(finishMsg{})
		<-l.done
	})
	return l.err
}
