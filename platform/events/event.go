// Package events provides the in-process event bus the ingestion
// pipeline publishes on. This is part of the platform layer and carries
// no lead semantics; the event types themselves live with the domain.
package events

import (
	"context"
	"time"
)

// Event is implemented by every domain event carried on the bus.
type Event interface {
	// EventName identifies the event type for subscription matching.
	EventName() string
	// OccurredAt returns when the event was raised.
	OccurredAt() time.Time
}

// BaseEvent carries the raise timestamp; domain events embed it.
type BaseEvent struct {
	Timestamp time.Time `json:"timestamp"`
}

// OccurredAt returns when the event was raised.
func (e BaseEvent) OccurredAt() time.Time {
	return e.Timestamp
}

// NewBaseEvent stamps a base event with the current time.
func NewBaseEvent() BaseEvent {
	return BaseEvent{Timestamp: time.Now()}
}

// Handler consumes events of one subscribed type.
type Handler interface {
	Handle(ctx context.Context, event Event) error
}

// HandlerFunc adapts a plain function into a Handler.
type HandlerFunc func(ctx context.Context, event Event) error

// Handle calls the underlying function.
func (f HandlerFunc) Handle(ctx context.Context, event Event) error {
	return f(ctx, event)
}

// Bus publishes domain events to subscribed handlers. Publication is
// fire-and-forget on the hot path; PublishSync exists so tests can
// assert on handler effects without sleeping.
type Bus interface {
	// Publish dispatches the event to every handler subscribed to its
	// name, asynchronously. Handler errors are logged, not returned.
	Publish(ctx context.Context, event Event)

	// PublishSync dispatches the event and waits for all handlers,
	// returning the first handler error.
	PublishSync(ctx context.Context, event Event) error

	// Subscribe registers a handler for the name an Event reports via
	// EventName.
	Subscribe(eventName string, handler Handler)
}
