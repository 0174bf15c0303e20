package clock

import (
	"sync"
	"time"
)

// Fake is a virtual Clock. Time only moves when Advance is called, and due
// callbacks run synchronously on the goroutine calling Advance.
type Fake struct {
	mu     sync.Mutex
	now    time.Time
	seq    uint64
	timers []*fakeTimer
}

type fakeTimer struct {
	clock    *Fake
	deadline time.Time
	seq      uint64
	fn       func()
	done     bool
}

// NewFake returns a Fake clock starting at start.
func NewFake(start time.Time) *Fake {
	return &Fake{now: start}
}

// Now returns the current virtual time.
func (f *Fake) Now() time.Time {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.now
}

// AfterFunc schedules fn to run once virtual time reaches now+d.
func (f *Fake) AfterFunc(d time.Duration, fn func()) Timer {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.seq++
	t := &fakeTimer{
		clock:    f,
		deadline: f.now.Add(d),
		seq:      f.seq,
		fn:       fn,
	}
	f.timers = append(f.timers, t)
	return t
}

// Advance moves virtual time forward by d, firing every callback whose
// deadline falls within the window. Callbacks fire in deadline order, ties
// broken by scheduling order, and may themselves schedule or stop timers.
func (f *Fake) Advance(d time.Duration) {
	f.mu.Lock()
	target := f.now.Add(d)

	for {
		next := f.nextDueLocked(target)
		if next == nil {
			break
		}
		f.now = next.deadline
		next.done = true
		f.removeLocked(next)

		f.mu.Unlock()
		next.fn()
		f.mu.Lock()
	}

	if target.After(f.now) {
		f.now = target
	}
	f.mu.Unlock()
}

// Pending reports how many timers are scheduled and not yet fired or stopped.
func (f *Fake) Pending() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.timers)
}

func (f *Fake) nextDueLocked(target time.Time) *fakeTimer {
	var next *fakeTimer
	for _, t := range f.timers {
		if t.deadline.After(target) {
			continue
		}
		if next == nil || t.deadline.Before(next.deadline) ||
			(t.deadline.Equal(next.deadline) && t.seq < next.seq) {
			next = t
		}
	}
	return next
}

func (f *Fake) removeLocked(target *fakeTimer) {
	for i, t := range f.timers {
		if t == target {
			f.timers = append(f.timers[:i], f.timers[i+1:]...)
			return
		}
	}
}

func (t *fakeTimer) Stop() bool {
	t.clock.mu.Lock()
	defer t.clock.mu.Unlock()

	if t.done {
		return false
	}
	t.done = true
	t.clock.removeLocked(t)
	return true
}
