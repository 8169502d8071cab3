// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"fmt"
	"io"

	"github.com/MKhiriev/go-elevate-uploader/models"
)

// PlainTable prints the whole table after every refresh. It is used when the
// output is not a terminal.
type PlainTable struct {
	out io.Writer
}

// NewPlainTable creates a PlainTable writing to out.
func NewPlainTable(out io.Writer) *PlainTable {
	return &PlainTable{out: out}
}

// Start implements [Presenter].
func (p *PlainTable) Start(records models.JobRecords) error {
	p.Render(records)
	return nil
}

// Render implements [Presenter].
func (p *PlainTable) Render(records models.JobRecords) {
	fmt.Fprintf(p.out, "\n%s\n", RenderTable(records))
}

// Stop implements [Presenter].
func (p *PlainTable) Stop() error { return nil }
