package ports

import (
	"context"
)

// UnitOfWorkFactory creates a fresh UnitOfWork for each command.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork is a business transaction boundary. Repositories obtained from it
// run inside the transaction started by Begin. Domain events recorded by the
// aggregates it saved are dispatched only after a successful Commit.
type UnitOfWork interface {
	Begin(ctx context.Context) error

	// Commit commits the transaction and then dispatches the collected domain events.
	// Returns error if no active transaction or commit fails.
	Commit(ctx context.Context) error

	// Rollback discards the transaction and every collected event.
	// Returns error if no active transaction or rollback fails.
	Rollback(ctx context.Context) error

	ParcelRepository() ParcelRepository
	OfficeRepository() OfficeRepository
	NotificationRepository() NotificationRepository
}
