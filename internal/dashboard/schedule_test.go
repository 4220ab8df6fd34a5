package dashboard

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/juju/clock/testclock"
)

func newTestSchedule(t *testing.T) (*Schedule, *testclock.Clock, *atomic.Int32) {
	t.Helper()
	clk := testclock.NewClock(testStart)
	var runs atomic.Int32
	s := NewSchedule(clk, 10*time.Second, func() { runs.Add(1) })
	t.Cleanup(func() { s.Stop() })
	return s, clk, &runs
}

func TestSchedule_StartStopIdempotent(t *testing.T) {
	s, _, _ := newTestSchedule(t)

	if s.Active() {
		t.Error("new schedule should be inactive")
	}
	if !s.Start() {
		t.Error("first Start() should create a timer")
	}
	if s.Start() {
		t.Error("second Start() should be a no-op")
	}
	if !s.Active() {
		t.Error("schedule should be active")
	}
	if !s.Stop() {
		t.Error("first Stop() should cancel")
	}
	if s.Stop() {
		t.Error("second Stop() should be a no-op")
	}
}

func TestSchedule_FirstRunAfterOnePeriod(t *testing.T) {
	s, clk, runs := newTestSchedule(t)
	s.Start()

	clk.Advance(9 * time.Second)
	if n := runs.Load(); n != 0 {
		t.Fatalf("runs = %d before one period, want 0", n)
	}

	for want := int32(1); want <= 3; want++ {
		if err := clk.WaitAdvance(time.Second, waitTimeout, 1); err != nil {
			t.Fatalf("WaitAdvance() error = %v", err)
		}
		waitFor(t, "scheduled run", func() bool { return runs.Load() == want })
		clk.Advance(9 * time.Second)
	}
}

func TestSchedule_StopPreventsRuns(t *testing.T) {
	s, clk, runs := newTestSchedule(t)
	s.Start()
	s.Stop()

	clk.Advance(time.Minute)
	if n := runs.Load(); n != 0 {
		t.Errorf("runs = %d after Stop, want 0", n)
	}
}

func TestSchedule_StaleFireIsDropped(t *testing.T) {
	s, _, runs := newTestSchedule(t)
	s.Start()

	s.mu.Lock()
	stale := s.generation
	s.mu.Unlock()

	s.Stop()
	s.Start()
	s.fire(stale)

	if n := runs.Load(); n != 0 {
		t.Errorf("runs = %d for a superseded timer, want 0", n)
	}
}
