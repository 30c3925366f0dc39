package runtime

import "time"

// Scheduler decides when frames run. The runtime drains one tick per
// channel receive.
type Scheduler interface {
	// Ticks returns the channel the run loop waits on.
	Ticks() <-chan time.Time

	// Stop releases the scheduler's resources.
	Stop()
}

// IntervalScheduler fires frames at a fixed interval.
type IntervalScheduler struct {
	ticker *time.Ticker
}

// NewIntervalScheduler creates a scheduler ticking every interval.
func NewIntervalScheduler(interval time.Duration) *IntervalScheduler {
	if interval <= 0 {
		interval = 16 * time.Millisecond
	}
	return &IntervalScheduler{ticker: time.NewTicker(interval)}
}

// Ticks implements Scheduler.
func (s *IntervalScheduler) Ticks() <-chan time.Time { return s.ticker.C }

// Stop implements Scheduler.
func (s *IntervalScheduler) Stop() { s.ticker.Stop() }

// ManualScheduler fires a frame only when Fire is called. Useful in tests
// and for frame-stepped debugging.
type ManualScheduler struct {
	ch chan time.Time
}

// NewManualScheduler creates a manual scheduler.
func NewManualScheduler() *ManualScheduler {
	return &ManualScheduler{ch: make(chan time.Time, 1)}
}

// Ticks implements Scheduler.
func (s *ManualScheduler) Ticks() <-chan time.Time { return s.ch }

// Fire requests one frame. A fire while one is already pending coalesces.
func (s *ManualScheduler) Fire() {
	select {
	case s.ch <- time.Now():
	default:
	}
}

// Stop implements Scheduler.
func (s *ManualScheduler) Stop() {}
