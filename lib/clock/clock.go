// Copyright 2026 The Halloy Authors
// SPDX-License-Identifier: Apache-2.0

// Package clock provides an injectable time abstraction so that code
// which waits — the connect sequencer's delay handling — can be tested
// deterministically. Production code injects Real(); tests inject
// Fake() and drive time with Advance.
package clock

import "time"

// Clock abstracts the time operations this client uses. Anything that
// waits takes a Clock (or is a method on a struct holding one) instead
// of calling the time package directly.
type Clock interface {
	// Now returns the current time.
	Now() time.Time

	// After returns a channel that receives the current time once
	// duration d has elapsed. If d <= 0 the channel receives
	// immediately; the channel is still a valid select case, so a
	// zero wait remains a scheduling point.
	After(d time.Duration) <-chan time.Time
}

// Real returns a Clock backed by the standard time package.
func Real() Clock { return realClock{} }

type realClock struct{}

func (realClock) Now() time.Time { return time.Now() }

func (realClock) After(d time.Duration) <-chan time.Time {
	if d <= 0 {
		fired := make(chan time.Time, 1)
		fired <- time.Now()
		return fired
	}
	return time.After(d)
}
