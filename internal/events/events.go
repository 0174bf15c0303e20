// Package events distributes toast lifecycle events to structured logs and
// in-process subscribers.
package events

import (
	"context"

	"github.com/wisp-ui/wisp/internal/toast"
)

const (
	// TypeToastEnqueued is published when a toast joins the queue.
	TypeToastEnqueued = "toast.enqueued"
	// TypeToastDismissed is published when a toast is dismissed by id.
	TypeToastDismissed = "toast.dismissed"
	// TypeToastExpired is published when a toast's timer fires.
	TypeToastExpired = "toast.expired"
	// TypeToastEvicted is published when overflow pushes out the oldest toast.
	TypeToastEvicted = "toast.evicted"
	// TypeToastReplaced is published when an enqueue reuses a queued id.
	TypeToastReplaced = "toast.replaced"
	// TypeToastCleared is published for each toast removed by DismissAll or Close.
	TypeToastCleared = "toast.cleared"
)

// Event is a significant occurrence carrying a structured payload.
type Event interface {
	EventType() string
	Payload() map[string]any
}

// Publisher delivers events to subscribers. Publish is synchronous and
// returns once every handler has run.
type Publisher interface {
	Publish(ctx context.Context, event Event) error
	Subscribe(eventType string, handler Handler) (Subscription, error)
}

// Handler processes one event. Returned errors are logged and do not stop
// delivery to other handlers.
type Handler func(context.Context, Event) error

// Subscription is a registered handler.
type Subscription interface {
	Unsubscribe()
}

// ToastEvent adapts a queue event to the Event interface.
type ToastEvent struct {
	toast.Event
}

// EventType maps the queue transition to its published name.
func (e ToastEvent) EventType() string {
	return "toast." + string(e.Type)
}

// Payload exposes the record fields worth logging. Descriptions are omitted.
func (e ToastEvent) Payload() map[string]any {
	payload := map[string]any{
		"toast_id":    e.Record.ID,
		"variant":     string(e.Record.Variant),
		"duration_ms": e.Record.Duration.Milliseconds(),
	}
	if e.Record.Title != "" {
		payload["title"] = e.Record.Title
	}
	return payload
}

// Observer returns a toast.Observer that publishes every queue event with ctx.
func Observer(ctx context.Context, p Publisher) toast.Observer {
	return func(ev toast.Event) {
		if p == nil {
			return
		}
		_ = p.Publish(ctx, ToastEvent{Event: ev})
	}
}
