// Package clock abstracts the time source used to schedule toast expiry so
// that callers can substitute virtual time in tests.
package clock

import "time"

// Clock reports the current time and schedules one-shot callbacks.
type Clock interface {
	Now() time.Time
	AfterFunc(d time.Duration, f func()) Timer
}

// Timer is a cancellable handle for a callback scheduled with AfterFunc.
type Timer interface {
	// Stop prevents the callback from firing. It reports whether the call
	// stopped the timer; false means the timer already fired or was stopped.
	Stop() bool
}

type realClock struct{}

// Real returns a Clock backed by the time package. Callbacks run on their own
// goroutine, as with time.AfterFunc.
func Real() Clock {
	return realClock{}
}

func (realClock) Now() time.Time {
	return time.Now()
}

func (realClock) AfterFunc(d time.Duration, f func()) Timer {
	return time.AfterFunc(d, f)
}
