// Package host adapts the overlay lifecycle subsystem to its environment:
// timer scheduling and an in-memory document focus model. Production code
// uses the system scheduler; tests and headless drivers use the manual one.
package host

import (
	"sync"
	"time"
)

// SystemScheduler schedules callbacks on real wall-clock timers
type SystemScheduler struct{}

// NewSystemScheduler creates a wall-clock scheduler
func NewSystemScheduler() *SystemScheduler {
	return &SystemScheduler{}
}

// After runs fn once d has elapsed. The returned cancel stops the timer if
// it has not fired yet; cancellation is best-effort, callers must tolerate a
// late fire.
func (s *SystemScheduler) After(d time.Duration, fn func()) (cancel func()) {
	t := time.AfterFunc(d, fn)
	return func() { t.Stop() }
}

// ManualScheduler is a deterministic scheduler driven by explicit Advance
// calls. Timers fire in deadline order (registration order on ties), and
// never fire spontaneously.
type ManualScheduler struct {
	mu     sync.Mutex
	now    time.Time
	seq    int
	timers map[int]*manualTimer
}

type manualTimer struct {
	at  time.Time
	seq int
	fn  func()
}

// NewManualScheduler creates a manual scheduler anchored at the current time
func NewManualScheduler() *ManualScheduler {
	return &ManualScheduler{
		now:    time.Now(),
		timers: make(map[int]*manualTimer),
	}
}

// After registers fn to fire once the scheduler has been advanced d past the
// current manual time
func (s *ManualScheduler) After(d time.Duration, fn func()) (cancel func()) {
	s.mu.Lock()
	s.seq++
	id := s.seq
	s.timers[id] = &manualTimer{at: s.now.Add(d), seq: id, fn: fn}
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		delete(s.timers, id)
		s.mu.Unlock()
	}
}

// Advance moves the manual clock forward and fires every due timer, in
// deadline order. Callbacks run without the scheduler lock held, so they may
// schedule or cancel further timers; timers they schedule within the
// advanced window also fire before Advance returns.
func (s *ManualScheduler) Advance(d time.Duration) {
	s.mu.Lock()
	target := s.now.Add(d)

	for {
		var next *manualTimer
		var nextID int
		for id, t := range s.timers {
			if t.at.After(target) {
				continue
			}
			if next == nil || t.at.Before(next.at) || (t.at.Equal(next.at) && t.seq < next.seq) {
				next = t
				nextID = id
			}
		}
		if next == nil {
			break
		}

		delete(s.timers, nextID)
		if next.at.After(s.now) {
			s.now = next.at
		}
		fn := next.fn
		s.mu.Unlock()
		fn()
		s.mu.Lock()
	}

	s.now = target
	s.mu.Unlock()
}

// Pending returns the number of timers not yet fired or cancelled
func (s *ManualScheduler) Pending() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.timers)
}

// Now returns the current manual time
func (s *ManualScheduler) Now() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.now
}
