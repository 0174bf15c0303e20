package toast

import (
	"time"

	"github.com/wisp-ui/wisp/internal/clock"
	"github.com/wisp-ui/wisp/internal/logger"
)

const (
	// DefaultMax is the queue capacity when WithMax is not supplied.
	DefaultMax = 5
	// DefaultDuration is the time-to-live applied when Options.Duration is nil.
	DefaultDuration = 5 * time.Second
)

// Option configures a Queue at construction time.
type Option func(*Queue)

// WithMax sets the queue capacity. Values below 1 are ignored.
func WithMax(n int) Option {
	return func(q *Queue) {
		if n >= 1 {
			q.max = n
		}
	}
}

// WithDefaultDuration sets the time-to-live used when Options.Duration is nil.
// Zero or negative makes toasts persistent by default.
func WithDefaultDuration(d time.Duration) Option {
	return func(q *Queue) {
		q.defaultDuration = d
	}
}

// WithClock replaces the time source used for timestamps and expiry timers.
func WithClock(c clock.Clock) Option {
	return func(q *Queue) {
		if c != nil {
			q.clock = c
		}
	}
}

// WithIDGenerator replaces the per-queue counter used for generated ids.
func WithIDGenerator(gen IDGenerator) Option {
	return func(q *Queue) {
		if gen != nil {
			q.nextID = gen
		}
	}
}

// WithObserver registers fn to receive lifecycle events. It may be supplied
// more than once.
func WithObserver(fn Observer) Option {
	return func(q *Queue) {
		if fn != nil {
			q.addObserverLocked(fn)
		}
	}
}

// WithLogger attaches a logger for debug output about evictions and expiry.
func WithLogger(log *logger.Logger) Option {
	return func(q *Queue) {
		q.log = log
	}
}
