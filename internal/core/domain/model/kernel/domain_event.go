package kernel

import "time"

// DomainEvent is a fact recorded by an aggregate during a command. Events are
// collected by the unit of work and dispatched only after a successful commit.
type DomainEvent interface {
	EventID() UUID
	EventName() string
	AggregateID() UUID
	OccurredAt() time.Time
}

// EventSource is implemented by aggregates that record domain events.
type EventSource interface {
	DomainEvents() []DomainEvent
	ClearDomainEvents()
}
