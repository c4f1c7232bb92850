// Package testutil holds helpers shared by the package tests.
package testutil

import (
	"sync"
	"time"

	"github.com/agbru/progresskit/numeric"
)

// Recorder is a progress listener that records every notification. It is
// safe for concurrent use and must be registered by pointer.
type Recorder[T numeric.Value] struct {
	mu       sync.Mutex
	currents []T
	maxes    []MaxEvent[T]
}

// MaxEvent is one recorded OnMaxChanged call.
type MaxEvent[T numeric.Value] struct {
	Value T
	Known bool
}

// OnCurrentChanged records v.
func (r *Recorder[T]) OnCurrentChanged(v T) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.currents = append(r.currents, v)
}

// OnMaxChanged records (v, known).
func (r *Recorder[T]) OnMaxChanged(v T, known bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.maxes = append(r.maxes, MaxEvent[T]{Value: v, Known: known})
}

// CurrentCalls returns the number of OnCurrentChanged calls.
func (r *Recorder[T]) CurrentCalls() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.currents)
}

// MaxCalls returns the number of OnMaxChanged calls.
func (r *Recorder[T]) MaxCalls() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.maxes)
}

// Currents returns a copy of the recorded current values.
func (r *Recorder[T]) Currents() []T {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]T(nil), r.currents...)
}

// LastCurrent returns the last recorded current value.
func (r *Recorder[T]) LastCurrent() (T, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.currents) == 0 {
		var zero T
		return zero, false
	}
	return r.currents[len(r.currents)-1], true
}

// LastMax returns the last recorded max event.
func (r *Recorder[T]) LastMax() (MaxEvent[T], bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.maxes) == 0 {
		return MaxEvent[T]{}, false
	}
	return r.maxes[len(r.maxes)-1], true
}

// ManualClock is a clock advanced explicitly by tests.
type ManualClock struct {
	mu  sync.Mutex
	now time.Time
}

// NewManualClock returns a clock set to start.
func NewManualClock(start time.Time) *ManualClock {
	return &ManualClock{now: start}
}

// Now returns the current time of the clock.
func (c *ManualClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

// Advance moves the clock forward by d.
func (c *ManualClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}
