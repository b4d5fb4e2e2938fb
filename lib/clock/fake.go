// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package clock

import (
	"sync"
	"time"
)

// Fake returns a FakeClock frozen at initial.
func Fake(initial time.Time) *FakeClock {
	return &FakeClock{current: initial}
}

// FakeClock is a Clock whose time changes only when Advance or Set is
// called. Safe for concurrent use.
type FakeClock struct {
	mu      sync.Mutex
	current time.Time
}

// Now returns the fake current time.
func (clock *FakeClock) Now() time.Time {
	clock.mu.Lock()
	defer clock.mu.Unlock()
	return clock.current
}

// Advance moves the clock forward by duration. Negative durations panic.
func (clock *FakeClock) Advance(duration time.Duration) {
	if duration < 0 {
		panic("clock: Advance called with negative duration")
	}
	clock.mu.Lock()
	clock.current = clock.current.Add(duration)
	clock.mu.Unlock()
}

// Set jumps the clock to an absolute time.
func (clock *FakeClock) Set(instant time.Time) {
	clock.mu.Lock()
	clock.current = instant
	clock.mu.Unlock()
}
