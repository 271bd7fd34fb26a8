package widget

import (
	"math/rand"
	"sync"
	"time"
)

// TimerHandle is a cancellable one-shot timer. Stop reports whether the
// timer was stopped before firing.
type TimerHandle interface {
	Stop() bool
}

// Scheduler creates one-shot timers. The default implementation wraps
// time.AfterFunc; tests use ManualScheduler to drive timers deterministically.
type Scheduler interface {
	AfterFunc(d time.Duration, fn func()) TimerHandle
}

type realTimer struct {
	t *time.Timer
}

func (r realTimer) Stop() bool {
	return r.t.Stop()
}

type realScheduler struct{}

func (realScheduler) AfterFunc(d time.Duration, fn func()) TimerHandle {
	return realTimer{t: time.AfterFunc(d, fn)}
}

// NewScheduler returns the wall-clock Scheduler.
func NewScheduler() Scheduler {
	return realScheduler{}
}

// DelayRange bounds the simulated typing delay before a bot reply appears.
type DelayRange struct {
	Min time.Duration
	Max time.Duration
}

// DefaultDelayRange is the human-plausible typing delay used when no range
// is configured.
var DefaultDelayRange = DelayRange{Min: 800 * time.Millisecond, Max: 1800 * time.Millisecond}

// pick draws a delay uniformly from the range.
func (r DelayRange) pick() time.Duration {
	if r.Max <= r.Min {
		return r.Min
	}
	return r.Min + time.Duration(rand.Int63n(int64(r.Max-r.Min)))
}

// TypingSimulator schedules the delayed bot turn so the UI can show a
// typing indicator in the meantime. At most one turn is in flight at a time.
type TypingSimulator struct {
	sched Scheduler

	mu      sync.Mutex
	pending TimerHandle
}

// NewTypingSimulator creates a simulator backed by the given scheduler.
func NewTypingSimulator(sched Scheduler) *TypingSimulator {
	return &TypingSimulator{sched: sched}
}

// ScheduleBotTurn draws a delay from the range and arranges for fire to run
// once it elapses. A previously scheduled turn that has not fired yet is
// replaced. Returns the chosen delay.
func (t *TypingSimulator) ScheduleBotTurn(r DelayRange, fire func()) time.Duration {
	d := r.pick()

	t.mu.Lock()
	defer t.mu.Unlock()

	if t.pending != nil {
		t.pending.Stop()
		t.pending = nil
	}

	var h TimerHandle
	h = t.sched.AfterFunc(d, func() {
		t.clear(h)
		fire()
	})
	t.pending = h
	return d
}

// Cancel stops the in-flight turn, if any. Reports whether a timer was
// stopped before it fired.
func (t *TypingSimulator) Cancel() bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.pending == nil {
		return false
	}
	stopped := t.pending.Stop()
	t.pending = nil
	return stopped
}

// clear forgets the handle once its timer has fired. The handle comparison
// guards against clearing a newer turn scheduled after this one fired.
func (t *TypingSimulator) clear(h TimerHandle) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.pending == h {
		t.pending = nil
	}
}

// ManualScheduler is a Scheduler whose timers fire only when Fire is called.
// It exists for deterministic tests of timer-driven behavior.
type ManualScheduler struct {
	mu        sync.Mutex
	timers    []*manualTimer
	lastDelay time.Duration
}

type manualTimer struct {
	mu      sync.Mutex
	fn      func()
	stopped bool
	fired   bool
}

func (m *manualTimer) Stop() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.fired || m.stopped {
		return false
	}
	m.stopped = true
	return true
}

// take marks the timer fired and returns its function, or nil if it was
// stopped or already fired.
func (m *manualTimer) take() func() {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.fired || m.stopped {
		return nil
	}
	m.fired = true
	return m.fn
}

// NewManualScheduler creates a scheduler for tests.
func NewManualScheduler() *ManualScheduler {
	return &ManualScheduler{}
}

// AfterFunc registers fn to run on the next Fire call.
func (s *ManualScheduler) AfterFunc(d time.Duration, fn func()) TimerHandle {
	t := &manualTimer{fn: fn}
	s.mu.Lock()
	s.timers = append(s.timers, t)
	s.lastDelay = d
	s.mu.Unlock()
	return t
}

// Fire synchronously runs every timer that is still pending and returns how
// many fired.
func (s *ManualScheduler) Fire() int {
	s.mu.Lock()
	timers := s.timers
	s.timers = nil
	s.mu.Unlock()

	count := 0
	for _, t := range timers {
		if fn := t.take(); fn != nil {
			fn()
			count++
		}
	}
	return count
}

// PendingCount returns the number of registered timers that have neither
// fired nor been stopped.
func (s *ManualScheduler) PendingCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	count := 0
	for _, t := range s.timers {
		t.mu.Lock()
		if !t.fired && !t.stopped {
			count++
		}
		t.mu.Unlock()
	}
	return count
}

// LastDelay returns the delay requested by the most recent AfterFunc call.
func (s *ManualScheduler) LastDelay() time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastDelay
}
