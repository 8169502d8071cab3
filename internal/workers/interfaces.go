// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package workers runs the periodic status refresh of uploaded interactions.
//
// The loop is driven by a [Scheduler], so production code ticks on a
// [time.Ticker] while tests push ticks by hand and observe every cycle.
package workers

import (
	"time"

	"github.com/MKhiriev/go-elevate-uploader/models"
)

// Scheduler is the tick source of the poll loop.
//
// Example implementation:
//
//	type manual chan time.Time
//
//	func (m manual) C() <-chan time.Time { return m }
//	func (m manual) Stop()               {}
type Scheduler interface {
	// C delivers one value per poll cycle.
	C() <-chan time.Time

	// Stop releases the scheduler. No more ticks are delivered afterwards.
	Stop()
}

// Renderer receives the records after every refresh.
type Renderer interface {
	Render(records models.JobRecords)
}
