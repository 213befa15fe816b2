// Package anim drives timed visual updates (statistics counters) from a single
// frame-scheduling primitive, independent of what draws the frames.
package anim

import (
	"sync"
	"time"
)

// FrameInterval is the cadence of one animation frame (about 60 per second).
const FrameInterval = 16 * time.Millisecond

// FrameScheduler runs fn once, on the next frame.
type FrameScheduler interface {
	RequestFrame(fn func())
}

// ManualScheduler queues frames until the caller advances it; used by tests and
// by surfaces that pump frames themselves.
type ManualScheduler struct {
	mu      sync.Mutex
	pending []func()
}

func (s *ManualScheduler) RequestFrame(fn func()) {
	s.mu.Lock()
	s.pending = append(s.pending, fn)
	s.mu.Unlock()
}

// Step runs the frames queued before the call and reports whether any ran.
func (s *ManualScheduler) Step() bool {
	s.mu.Lock()
	frames := s.pending
	s.pending = nil
	s.mu.Unlock()

	for _, fn := range frames {
		fn()
	}
	return len(frames) > 0
}

// Drain steps until no frames remain or max steps have run, returning the step count.
func (s *ManualScheduler) Drain(max int) int {
	n := 0
	for n < max && s.Step() {
		n++
	}
	return n
}

// TickerScheduler runs each requested frame after FrameInterval on the runtime timer.
type TickerScheduler struct {
	Interval time.Duration
}

func (s TickerScheduler) RequestFrame(fn func()) {
	interval := s.Interval
	if interval <= 0 {
		interval = FrameInterval
	}
	time.AfterFunc(interval, fn)
}
