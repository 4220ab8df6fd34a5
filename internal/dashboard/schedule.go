package dashboard

import (
	"sync"
	"time"

	"github.com/juju/clock"
)

// Schedule runs a task every period, starting one period after Start. It
// holds at most one timer; Start and Stop are idempotent.
type Schedule struct {
	clock  clock.Clock
	period time.Duration
	task   func()

	mu         sync.Mutex
	timer      clock.Timer
	generation uint64
}

func NewSchedule(clk clock.Clock, period time.Duration, task func()) *Schedule {
	return &Schedule{
		clock:  clk,
		period: period,
		task:   task,
	}
}

// Start reports whether a new schedule was created.
func (s *Schedule) Start() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.timer != nil {
		return false
	}
	s.generation++
	s.arm(s.generation)
	return true
}

// Stop reports whether a running schedule was cancelled. A timer that has
// already fired but not yet run its task is discarded.
func (s *Schedule) Stop() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.timer == nil {
		return false
	}
	s.timer.Stop()
	s.timer = nil
	s.generation++
	return true
}

func (s *Schedule) Active() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.timer != nil
}

// arm must be called with s.mu held.
func (s *Schedule) arm(generation uint64) {
	s.timer = s.clock.AfterFunc(s.period, func() {
		s.fire(generation)
	})
}

func (s *Schedule) fire(generation uint64) {
	s.mu.Lock()
	if generation != s.generation || s.timer == nil {
		s.mu.Unlock()
		return
	}
	s.arm(generation)
	s.mu.Unlock()

	s.task()
}
