package eventhandlers

import (
	"context"
	"log/slog"

	"logitrack/internal/core/domain/model/kernel"
	"logitrack/internal/core/domain/model/parcel"
	"logitrack/internal/core/ports"
)

// ParcelEventForwarder publishes parcel transitions to the broker.
type ParcelEventForwarder struct {
	publisher ports.ParcelEventPublisher
}

// NewParcelEventForwarder creates a forwarder publishing through publisher.
func NewParcelEventForwarder(publisher ports.ParcelEventPublisher) *ParcelEventForwarder {
	return &ParcelEventForwarder{publisher: publisher}
}

// Handle publishes parcel.StatusChanged events and ignores every other event.
func (f *ParcelEventForwarder) Handle(ctx context.Context, event kernel.DomainEvent) error {
	ev, ok := event.(parcel.StatusChanged)
	if !ok {
		return nil
	}
	return f.publisher.PublishStatusChanged(ctx, ev)
}

// EventLogger writes every event it receives to the log. It stands in for the
// broker when none is configured.
type EventLogger struct {
	logger *slog.Logger
}

// NewEventLogger creates a subscriber that only logs events.
func NewEventLogger(logger *slog.Logger) *EventLogger {
	return &EventLogger{logger: logger.With("component", "event_logger")}
}

// Handle logs the event at info level.
func (l *EventLogger) Handle(ctx context.Context, event kernel.DomainEvent) error {
	attrs := []any{
		"event", event.EventName(),
		"eventId", event.EventID().String(),
		"aggregateId", event.AggregateID().String(),
		"occurredAt", event.OccurredAt(),
	}
	if ev, ok := event.(parcel.StatusChanged); ok {
		attrs = append(attrs,
			"trackingId", ev.TrackingID.String(),
			"from", ev.Previous.String(),
			"to", ev.Entry.Status().String(),
			"location", ev.Entry.Location())
	}
	l.logger.InfoContext(ctx, "Domain event", attrs...)
	return nil
}
