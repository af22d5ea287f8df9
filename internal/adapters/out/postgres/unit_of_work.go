// Package postgres provides the GORM-based Unit of Work and database bootstrap.
//
// A unit of work wraps one transaction. Repositories it hands out are bound to
// that transaction and report every saved aggregate back to it. After a
// successful Commit the unit of work drains the domain events of those
// aggregates and passes them to the configured dispatcher:
//
//	uow := factory.Create()
//	if err := uow.Begin(ctx); err != nil {
//	    return err
//	}
//	defer func() { _ = uow.Rollback(ctx) }()
//
//	if err := uow.ParcelRepository().Update(ctx, p); err != nil {
//	    return err
//	}
//	return uow.Commit(ctx) // StatusChanged events are dispatched here
//
// Rollback drops the collected aggregates, so events of a failed transaction
// are never dispatched.
package postgres

import (
	"context"

	"logitrack/internal/adapters/out/postgres/notificationrepo"
	"logitrack/internal/adapters/out/postgres/officerepo"
	"logitrack/internal/adapters/out/postgres/parcelrepo"
	"logitrack/internal/core/domain/model/kernel"
	"logitrack/internal/core/ports"

	"gorm.io/gorm"
)

type trackedAggregate struct {
	ID        kernel.UUID
	Aggregate any
}

// GormUnitOfWorkFactory creates UnitOfWork instances sharing one connection pool
// and one event dispatcher.
type GormUnitOfWorkFactory struct {
	db         *gorm.DB
	dispatcher ports.DomainEventDispatcher
}

// NewGormUnitOfWorkFactory builds the factory. A nil dispatcher discards events.
func NewGormUnitOfWorkFactory(db *gorm.DB, dispatcher ports.DomainEventDispatcher) *GormUnitOfWorkFactory {
	return &GormUnitOfWorkFactory{db: db, dispatcher: dispatcher}
}

// Create returns a new unit of work. Without Begin its repositories run
// outside any transaction.
func (f *GormUnitOfWorkFactory) Create() ports.UnitOfWork {
	return &GormUnitOfWork{
		db:                f.db,
		dispatcher:        f.dispatcher,
		trackedAggregates: make([]trackedAggregate, 0),
	}
}

// GormUnitOfWork is not safe for concurrent use; each command creates its own.
type GormUnitOfWork struct {
	db                *gorm.DB
	tx                *gorm.DB
	dispatcher        ports.DomainEventDispatcher
	trackedAggregates []trackedAggregate
}

// Begin starts the transaction. Calling it twice is a no-op.
func (uow *GormUnitOfWork) Begin(ctx context.Context) error {
	if uow.tx != nil {
		return nil
	}

	uow.tx = uow.db.WithContext(ctx).Begin()
	if uow.tx.Error != nil {
		err := uow.tx.Error
		uow.tx = nil
		return err
	}

	return nil
}

// Commit finalizes the transaction and then dispatches the domain events of
// every aggregate saved through this unit of work. Dispatch failures are the
// dispatcher's concern and never turn a committed transaction into an error.
func (uow *GormUnitOfWork) Commit(ctx context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Commit().Error
	uow.tx = nil
	if err != nil {
		uow.trackedAggregates = uow.trackedAggregates[:0]
		return err
	}

	events := uow.drainEvents()
	if uow.dispatcher != nil && len(events) > 0 {
		uow.dispatcher.Dispatch(ctx, events)
	}
	return nil
}

// Rollback discards the transaction and the tracked aggregates.
func (uow *GormUnitOfWork) Rollback(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Rollback().Error
	uow.tx = nil
	uow.trackedAggregates = uow.trackedAggregates[:0]
	return err
}

// ParcelRepository returns the parcel repository bound to the current transaction.
func (uow *GormUnitOfWork) ParcelRepository() ports.ParcelRepository {
	return parcelrepo.NewGormParcelRepository(uow.conn(), uow)
}

// OfficeRepository returns the office repository bound to the current transaction.
func (uow *GormUnitOfWork) OfficeRepository() ports.OfficeRepository {
	return officerepo.NewGormOfficeRepository(uow.conn())
}

// NotificationRepository returns the notification repository bound to the current transaction.
func (uow *GormUnitOfWork) NotificationRepository() ports.NotificationRepository {
	return notificationrepo.NewGormNotificationRepository(uow.conn())
}

// TrackAggregate registers an aggregate saved within this unit of work.
func (uow *GormUnitOfWork) TrackAggregate(id kernel.UUID, aggregate any) {
	uow.trackedAggregates = append(uow.trackedAggregates, trackedAggregate{
		ID:        id,
		Aggregate: aggregate,
	})
}

// TrackedAggregates returns the aggregates saved since Begin, in save order.
func (uow *GormUnitOfWork) TrackedAggregates() []any {
	out := make([]any, 0, len(uow.trackedAggregates))
	for _, t := range uow.trackedAggregates {
		out = append(out, t.Aggregate)
	}
	return out
}

func (uow *GormUnitOfWork) conn() *gorm.DB {
	if uow.tx != nil {
		return uow.tx
	}
	return uow.db
}

// drainEvents collects and clears pending events in save order. An aggregate
// tracked more than once contributes its events only the first time.
func (uow *GormUnitOfWork) drainEvents() []kernel.DomainEvent {
	var events []kernel.DomainEvent
	for _, t := range uow.trackedAggregates {
		source, ok := t.Aggregate.(kernel.EventSource)
		if !ok {
			continue
		}
		events = append(events, source.DomainEvents()...)
		source.ClearDomainEvents()
	}
	uow.trackedAggregates = uow.trackedAggregates[:0]
	return events
}
