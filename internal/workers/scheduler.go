// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import "time"

// DefaultPollInterval is used when a non-positive interval is requested.
const DefaultPollInterval = 15 * time.Second

type tickerScheduler struct {
	ticker *time.Ticker
}

// NewTickerScheduler returns a [Scheduler] that ticks every interval. It
// defaults to [DefaultPollInterval] if interval is zero or negative.
func NewTickerScheduler(interval time.Duration) Scheduler {
	if interval <= 0 {
		interval = DefaultPollInterval
	}
	return &tickerScheduler{ticker: time.NewTicker(interval)}
}

func (s *tickerScheduler) C() <-chan time.Time {
	return s.ticker.C
}

func (s *tickerScheduler) Stop() {
	s.ticker.Stop()
}
