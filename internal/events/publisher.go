package events

import (
	"context"
	"sync"

	"github.com/wisp-ui/wisp/internal/logger"
)

// LoggingPublisher writes each event as a debug log entry and fans it out to
// subscribers of its type.
type LoggingPublisher struct {
	logger *logger.Logger
	subs   map[string][]subscriptionEntry
	nextID int
	mu     sync.RWMutex
}

// NewLoggingPublisher creates a publisher backed by log. A nil logger still
// delivers to subscribers.
func NewLoggingPublisher(log *logger.Logger) *LoggingPublisher {
	return &LoggingPublisher{
		logger: log,
		subs:   make(map[string][]subscriptionEntry),
	}
}

// Publish logs the event and invokes its subscribers in registration order.
func (p *LoggingPublisher) Publish(ctx context.Context, event Event) error {
	if p == nil || event == nil {
		return nil
	}

	p.mu.RLock()
	handlers := append([]subscriptionEntry(nil), p.subs[event.EventType()]...)
	p.mu.RUnlock()

	fields := map[string]any{"event_type": event.EventType()}
	for key, value := range event.Payload() {
		fields[key] = value
	}
	p.logger.WithFields(fields).Debug("toast event")

	for _, entry := range handlers {
		if err := entry.handler(ctx, event); err != nil {
			p.logger.WithFields(map[string]any{"event_type": event.EventType()}).Error(err, "event handler failed")
		}
	}

	return nil
}

// Subscribe registers handler for eventType.
func (p *LoggingPublisher) Subscribe(eventType string, handler Handler) (Subscription, error) {
	if p == nil || handler == nil {
		return noopSubscription{}, nil
	}

	p.mu.Lock()
	p.nextID++
	id := p.nextID
	p.subs[eventType] = append(p.subs[eventType], subscriptionEntry{id: id, handler: handler})
	p.mu.Unlock()

	return subscription{
		cancel: func() {
			p.mu.Lock()
			defer p.mu.Unlock()
			handlers := p.subs[eventType]
			for i, entry := range handlers {
				if entry.id == id {
					p.subs[eventType] = append(handlers[:i], handlers[i+1:]...)
					break
				}
			}
		},
	}, nil
}

type noopSubscription struct{}

func (noopSubscription) Unsubscribe() {}

type subscription struct {
	cancel func()
}

func (s subscription) Unsubscribe() {
	if s.cancel != nil {
		s.cancel()
	}
}

type subscriptionEntry struct {
	id      int
	handler Handler
}

var _ Publisher = (*LoggingPublisher)(nil)
