package ports

import (
	"context"

	"logitrack/internal/core/domain/model/kernel"
	"logitrack/internal/core/domain/model/parcel"
)

// DomainEventDispatcher receives the events of a committed transaction.
// Dispatch is best effort: handler failures never reach the caller.
type DomainEventDispatcher interface {
	Dispatch(ctx context.Context, events []kernel.DomainEvent)
}

// ParcelEventPublisher ships parcel transitions to an external broker.
type ParcelEventPublisher interface {
	PublishStatusChanged(ctx context.Context, ev parcel.StatusChanged) error
	Close() error
}
