package toast

import "time"

// EventType names a queue lifecycle transition.
type EventType string

const (
	EventEnqueued  EventType = "enqueued"
	EventDismissed EventType = "dismissed"
	EventExpired   EventType = "expired"
	EventEvicted   EventType = "evicted"
	EventReplaced  EventType = "replaced"
	EventCleared   EventType = "cleared"
)

// Removal reports whether the event removed a record from the queue.
func (t EventType) Removal() bool {
	return t != EventEnqueued
}

// Event is delivered to observers after the queue state has changed.
type Event struct {
	Type   EventType
	Record Record
	At     time.Time
}

// Observer receives queue events. Observers run after the queue lock is
// released, so they may call back into the queue. Expiry events are delivered
// from the clock's callback goroutine.
type Observer func(Event)
