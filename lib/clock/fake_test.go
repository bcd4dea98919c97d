// Copyright 2026 The Halloy Authors
// SPDX-License-Identifier: Apache-2.0

package clock_test

import (
	"testing"
	"time"

	"github.com/Frikilinux/halloy/lib/clock"
)

func TestFakeNow(t *testing.T) {
	start := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	fake := clock.Fake(start)
	if !fake.Now().Equal(start) {
		t.Errorf("Now() = %v, want %v", fake.Now(), start)
	}
	fake.Advance(time.Minute)
	if !fake.Now().Equal(start.Add(time.Minute)) {
		t.Errorf("Now() after advance = %v", fake.Now())
	}
}

func TestFakeAfter(t *testing.T) {
	fake := clock.Fake(time.Unix(0, 0))
	fired := fake.After(5 * time.Second)

	select {
	case <-fired:
		t.Fatal("timer fired before the clock advanced")
	default:
	}

	fake.Advance(4 * time.Second)
	select {
	case <-fired:
		t.Fatal("timer fired before its deadline")
	default:
	}

	fake.Advance(time.Second)
	select {
	case <-fired:
	default:
		t.Fatal("timer did not fire at its deadline")
	}
}

func TestFakeAfterZeroFiresImmediately(t *testing.T) {
	fake := clock.Fake(time.Unix(0, 0))
	select {
	case <-fake.After(0):
	default:
		t.Fatal("After(0) should receive immediately")
	}
	if fake.PendingCount() != 0 {
		t.Errorf("After(0) registered a waiter")
	}
}

func TestFakeDeadlineOrder(t *testing.T) {
	fake := clock.Fake(time.Unix(0, 0))
	second := fake.After(2 * time.Second)
	first := fake.After(time.Second)

	fake.Advance(3 * time.Second)
	firstAt := <-first
	secondAt := <-second
	if !firstAt.Equal(secondAt) {
		// Both receive the post-advance time; order of delivery within
		// one Advance follows deadlines, checked by PendingCount below.
		t.Errorf("fire times differ: %v vs %v", firstAt, secondAt)
	}
	if fake.PendingCount() != 0 {
		t.Errorf("pending = %d, want 0", fake.PendingCount())
	}
}

func TestFakeWaitForTimers(t *testing.T) {
	fake := clock.Fake(time.Unix(0, 0))
	released := make(chan struct{})
	go func() {
		<-fake.After(time.Second)
		close(released)
	}()

	fake.WaitForTimers(1)
	fake.Advance(time.Second)

	select {
	case <-released:
	case <-time.After(5 * time.Second):
		t.Fatal("goroutine never released")
	}
}

func TestRealAfterZero(t *testing.T) {
	select {
	case <-clock.Real().After(0):
	case <-time.After(time.Second):
		t.Fatal("Real().After(0) should receive immediately")
	}
}
