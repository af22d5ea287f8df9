// Package eventhandlers reacts to committed domain events. Handlers run after
// the transaction that raised the event, so their failures are logged and
// counted but never undo or fail the originating command.
package eventhandlers

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"logitrack/internal/core/domain/model/kernel"
	"logitrack/internal/core/ports"
)

// Handler processes one domain event.
type Handler interface {
	Handle(ctx context.Context, event kernel.DomainEvent) error
}

// HandlerFunc adapts a function to Handler.
type HandlerFunc func(ctx context.Context, event kernel.DomainEvent) error

// Handle calls f.
func (f HandlerFunc) Handle(ctx context.Context, event kernel.DomainEvent) error {
	return f(ctx, event)
}

var _ ports.DomainEventDispatcher = (*EventBus)(nil)

// EventBus routes events to handlers subscribed by event name. Handlers run
// synchronously in subscription order.
type EventBus struct {
	mu       sync.RWMutex
	handlers map[string][]namedHandler
	logger   *slog.Logger
}

type namedHandler struct {
	name    string
	handler Handler
}

// NewEventBus creates a bus with no subscribers.
func NewEventBus(logger *slog.Logger) *EventBus {
	return &EventBus{
		handlers: make(map[string][]namedHandler),
		logger:   logger.With("component", "event_bus"),
	}
}

// Subscribe registers handler for eventName. name only labels log lines.
func (b *EventBus) Subscribe(eventName, name string, handler Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.handlers[eventName] = append(b.handlers[eventName], namedHandler{name: name, handler: handler})
}

// Dispatch delivers every event to its handlers. A failing or panicking
// handler does not stop the others.
func (b *EventBus) Dispatch(ctx context.Context, events []kernel.DomainEvent) {
	for _, event := range events {
		b.mu.RLock()
		handlers := b.handlers[event.EventName()]
		b.mu.RUnlock()

		for _, h := range handlers {
			if err := b.invoke(ctx, h.handler, event); err != nil {
				b.logger.ErrorContext(ctx, "Event handler failed",
					"handler", h.name,
					"event", event.EventName(),
					"eventId", event.EventID().String(),
					"aggregateId", event.AggregateID().String(),
					"error", err)
			}
		}
	}
}

func (b *EventBus) invoke(ctx context.Context, h Handler, event kernel.DomainEvent) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("handler panic: %v", r)
		}
	}()
	return h.Handle(ctx, event)
}
