package toast

import (
	"sync"
	"time"

	"github.com/wisp-ui/wisp/internal/clock"
	"github.com/wisp-ui/wisp/internal/logger"
)

// Queue is a bounded, ordered collection of active toasts. The zero value is
// not usable; construct queues with New.
type Queue struct {
	mu sync.Mutex

	max             int
	defaultDuration time.Duration
	clock           clock.Clock
	nextID          IDGenerator
	observers       []subscriber
	subSeq          uint64
	log             *logger.Logger

	records []Record
	timers  map[string]expiry
	token   uint64
	closed  bool
}

type subscriber struct {
	id uint64
	fn Observer
}

// expiry pairs a live timer with the token its callback must present.
type expiry struct {
	timer clock.Timer
	token uint64
}

// New creates an empty queue. Each queue owns its own id counter.
func New(opts ...Option) *Queue {
	q := &Queue{
		max:             DefaultMax,
		defaultDuration: DefaultDuration,
		clock:           clock.Real(),
		nextID:          CounterIDs(),
		timers:          make(map[string]expiry),
	}
	for _, opt := range opts {
		opt(q)
	}
	return q
}

// Enqueue appends a toast and returns its id. When the queue exceeds its
// capacity the oldest records are evicted before the new one settles. An
// explicit id that is already queued replaces the earlier record. After Close,
// Enqueue records nothing and returns "".
func (q *Queue) Enqueue(opts Options) string {
	q.mu.Lock()
	if q.closed {
		q.mu.Unlock()
		return ""
	}

	now := q.clock.Now()
	var events []Event

	id := opts.ID
	if id == "" {
		id = q.nextID()
		for q.indexLocked(id) >= 0 {
			id = q.nextID()
		}
	} else if idx := q.indexLocked(id); idx >= 0 {
		events = append(events, Event{Type: EventReplaced, Record: q.removeAtLocked(idx), At: now})
	}

	duration := q.defaultDuration
	if opts.Duration != nil {
		duration = *opts.Duration
	}

	variant := opts.Variant
	if variant == "" {
		variant = VariantDefault
	}

	rec := Record{
		ID:          id,
		Title:       opts.Title,
		Description: opts.Description,
		Variant:     variant,
		Icon:        opts.Icon,
		Action:      opts.Action,
		Duration:    duration,
		CreatedAt:   now,
	}
	q.records = append(q.records, rec)
	events = append(events, Event{Type: EventEnqueued, Record: rec, At: now})

	for len(q.records) > q.max {
		evicted := q.removeAtLocked(0)
		events = append(events, Event{Type: EventEvicted, Record: evicted, At: now})
		q.log.WithFields(map[string]any{"toast_id": evicted.ID, "max": q.max}).Debug("evicted oldest toast")
	}

	if duration > 0 {
		q.scheduleLocked(id, duration)
	}
	q.mu.Unlock()

	q.notify(events)
	return id
}

// Dismiss removes the toast with the given id and cancels its timer. Unknown
// ids are ignored.
func (q *Queue) Dismiss(id string) {
	q.mu.Lock()
	idx := q.indexLocked(id)
	if idx < 0 {
		q.mu.Unlock()
		return
	}
	rec := q.removeAtLocked(idx)
	at := q.clock.Now()
	q.mu.Unlock()

	q.notify([]Event{{Type: EventDismissed, Record: rec, At: at}})
}

// DismissAll cancels every timer and empties the queue.
func (q *Queue) DismissAll() {
	q.mu.Lock()
	events := q.clearLocked()
	q.mu.Unlock()

	q.notify(events)
}

// Close tears the queue down: all timers are cancelled, the queue is emptied,
// and later calls to Enqueue are ignored. Close is idempotent.
func (q *Queue) Close() {
	q.mu.Lock()
	if q.closed {
		q.mu.Unlock()
		return
	}
	q.closed = true
	events := q.clearLocked()
	q.mu.Unlock()

	q.notify(events)
}

// Records returns a snapshot of the queued toasts, oldest first.
func (q *Queue) Records() []Record {
	q.mu.Lock()
	defer q.mu.Unlock()

	out := make([]Record, len(q.records))
	copy(out, q.records)
	return out
}

// Get returns the queued toast with the given id.
func (q *Queue) Get(id string) (Record, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()

	if idx := q.indexLocked(id); idx >= 0 {
		return q.records[idx], true
	}
	return Record{}, false
}

// Len returns the number of queued toasts.
func (q *Queue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.records)
}

// Max returns the queue capacity.
func (q *Queue) Max() int {
	return q.max
}

// Closed reports whether Close has been called.
func (q *Queue) Closed() bool {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.closed
}

func (q *Queue) expire(id string, token uint64) {
	q.mu.Lock()
	live, ok := q.timers[id]
	if !ok || live.token != token {
		// Superseded: the record was removed, or replaced under the same id.
		q.mu.Unlock()
		return
	}
	idx := q.indexLocked(id)
	if idx < 0 {
		delete(q.timers, id)
		q.mu.Unlock()
		return
	}
	rec := q.removeAtLocked(idx)
	at := q.clock.Now()
	q.mu.Unlock()

	q.log.WithFields(map[string]any{"toast_id": id}).Debug("toast expired")
	q.notify([]Event{{Type: EventExpired, Record: rec, At: at}})
}

func (q *Queue) scheduleLocked(id string, d time.Duration) {
	q.token++
	token := q.token
	timer := q.clock.AfterFunc(d, func() {
		q.expire(id, token)
	})
	q.timers[id] = expiry{timer: timer, token: token}
}

func (q *Queue) cancelLocked(id string) {
	if live, ok := q.timers[id]; ok {
		live.timer.Stop()
		delete(q.timers, id)
	}
}

func (q *Queue) removeAtLocked(idx int) Record {
	rec := q.records[idx]
	q.cancelLocked(rec.ID)
	q.records = append(q.records[:idx], q.records[idx+1:]...)
	return rec
}

func (q *Queue) clearLocked() []Event {
	if len(q.records) == 0 {
		return nil
	}
	at := q.clock.Now()
	events := make([]Event, 0, len(q.records))
	for _, rec := range q.records {
		q.cancelLocked(rec.ID)
		events = append(events, Event{Type: EventCleared, Record: rec, At: at})
	}
	q.records = nil
	return events
}

func (q *Queue) indexLocked(id string) int {
	for i, rec := range q.records {
		if rec.ID == id {
			return i
		}
	}
	return -1
}

// Subscribe registers fn for lifecycle events and returns a function that
// removes it. Observers run outside the queue lock and may call back into
// the queue.
func (q *Queue) Subscribe(fn Observer) (unsubscribe func()) {
	if fn == nil {
		return func() {}
	}

	q.mu.Lock()
	id := q.addObserverLocked(fn)
	q.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			q.mu.Lock()
			defer q.mu.Unlock()
			for i, sub := range q.observers {
				if sub.id == id {
					q.observers = append(q.observers[:i:i], q.observers[i+1:]...)
					return
				}
			}
		})
	}
}

func (q *Queue) addObserverLocked(fn Observer) uint64 {
	q.subSeq++
	q.observers = append(q.observers, subscriber{id: q.subSeq, fn: fn})
	return q.subSeq
}

func (q *Queue) notify(events []Event) {
	if len(events) == 0 {
		return
	}

	q.mu.Lock()
	observers := make([]subscriber, len(q.observers))
	copy(observers, q.observers)
	q.mu.Unlock()

	for _, ev := range events {
		for _, sub := range observers {
			sub.fn(ev)
		}
	}
}
