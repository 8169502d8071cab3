// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-elevate-uploader/models"
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

var (
	defaultWriteClipboard = clipboard.WriteAll
	// writeClipboard is replaced in tests.
	writeClipboard = defaultWriteClipboard
)

type tableModel struct {
	records models.JobRecords
	spinner spinner.Model
	cancel  context.CancelFunc

	status   string
	errMsg   string
	finished bool
	quit     bool
}

func newTableModel(records models.JobRecords, cancel context.CancelFunc) tableModel {
	s := spinner.New()
	s.Spinner = spinner.MiniDot
	return tableModel{
		records: records.Clone(),
		spinner: s,
		cancel:  cancel,
	}
}

func (m tableModel) Init() tea.Cmd {
	return m.spinner.Tick
}

func (m tableModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case recordsMsg:
		m.records = msg.records
		return m, nil
	case finishMsg:
		m.finished = true
		return m, tea.Quit
	case copiedMsg:
		m.errMsg = ""
		m.status = fmt.Sprintf("Copied %d identifiers", msg.count)
		return m, cmdClearStatus()
	case copyFailedMsg:
		m.errMsg = fmt.Sprintf("Copy failed: %v", msg.err)
		return m, cmdClearStatus()
	case clearStatusMsg:
		m.status = ""
		m.errMsg = ""
		return m, nil
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.quit):
			m.quit = true
			if m.cancel != nil {
				m.cancel()
			}
			return m, tea.Quit
		case key.Matches(msg, keys.copy):
			return m, cmdCopyToClipboard(identifiers(m.records))
		}
	}
	return m, nil
}

func (m tableModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("ElevateAI interactions"))
	b.WriteString("\n\n")
	b.WriteString(RenderTable(m.records))
	b.WriteString("\n\n")

	switch {
	case m.finished:
		b.WriteString(fmt.Sprintf("%d/%d terminal", countTerminal(m.records), len(m.records)))
	case m.quit:
		b.WriteString("Interrupted")
	default:
		b.WriteString(m.spinner.View())
		b.WriteString(fmt.Sprintf(" %d/%d terminal, waiting for next status refresh", countTerminal(m.records), len(m.records)))
	}
	b.WriteString("\n")

	if m.errMsg != "" {
		b.WriteString(errorStyle.Render(m.errMsg))
		b.WriteString("\n")
	} else if m.status != "" {
		b.WriteString(m.status)
		b.WriteString("\n")
	}

	if !m.finished && !m.quit {
		b.WriteString(helpStyle.Render(fmt.Sprintf("%s: %s • %s: %s",
			keys.copy.Help().Key, keys.copy.Help().Desc,
			keys.quit.Help().Key, keys.quit.Help().Desc)))
	}

	return appStyle.Render(b.String())
}

func cmdCopyToClipboard(text string) tea.Cmd {
	return func() tea.Msg {
		if text == "" {
			return copiedMsg{}
		}
		if err := writeClipboard(text); err != nil {
			return copyFailedMsg{err: err}
		}
		return copiedMsg{count: strings.Count(text, "\n") + 1}
	}
}

func cmdClearStatus() tea.Cmd {
	return tea.Tick(2*time.Second, func(time.Time) tea.Msg {
		return clearStatusMsg{}
	})
}
