package eventhandlers

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"logitrack/internal/core/domain/model/kernel"
	"logitrack/internal/core/domain/model/notification"
	"logitrack/internal/core/domain/model/parcel"
	"logitrack/internal/core/domain/services"
	"logitrack/internal/core/ports"
	"logitrack/internal/pkg/metrics"
)

// DefaultRetryBufferSize bounds the notifications kept for a later flush.
const DefaultRetryBufferSize = 1000

type (
	NotificationUoW interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
		NotificationRepository() ports.NotificationRepository
	}

	NotificationUoWFactory interface {
		Create() NotificationUoW
	}
)

// NotificationRecorder composes the notifications of a parcel transition and
// stores them. Records that fail to store are kept in a bounded buffer and
// retried by Flush; when the buffer is full the oldest record is dropped.
type NotificationRecorder struct {
	uowFactory NotificationUoWFactory
	dispatcher services.NotificationDispatcher
	logger     *slog.Logger

	mu       sync.Mutex
	pending  []*notification.Notification
	capacity int
}

// NewNotificationRecorder creates a recorder keeping up to bufferSize failed
// notifications for retry.
func NewNotificationRecorder(
	uowFactory NotificationUoWFactory,
	dispatcher services.NotificationDispatcher,
	capacity int,
	logger *slog.Logger,
) *NotificationRecorder {
	if capacity <= 0 {
		capacity = DefaultRetryBufferSize
	}
	return &NotificationRecorder{
		uowFactory: uowFactory,
		dispatcher: dispatcher,
		logger:     logger.With("component", "notification_recorder"),
		capacity:   capacity,
	}
}

// Handle records the notifications bound to a parcel.StatusChanged event.
// Other events are ignored.
func (r *NotificationRecorder) Handle(ctx context.Context, event kernel.DomainEvent) error {
	ev, ok := event.(parcel.StatusChanged)
	if !ok {
		return nil
	}

	composed, composeErr := r.dispatcher.OnTransition(ev)
	if len(composed) == 0 {
		return composeErr
	}

	if err := r.store(ctx, composed); err != nil {
		metrics.NotificationFailuresTotal.Add(float64(len(composed)))
		r.enqueue(composed)
		return errors.Join(composeErr, fmt.Errorf("record %d notifications for %s: %w", len(composed), ev.TrackingID, err))
	}

	metrics.NotificationsRecordedTotal.Add(float64(len(composed)))
	r.logger.DebugContext(ctx, "Notifications recorded",
		"trackingId", ev.TrackingID.String(),
		"status", ev.Entry.Status().String(),
		"count", len(composed))
	return composeErr
}

// Flush retries buffered notifications one at a time and returns how many were
// stored. Records that fail again go back to the buffer.
func (r *NotificationRecorder) Flush(ctx context.Context) (int, error) {
	r.mu.Lock()
	batch := r.pending
	r.pending = nil
	metrics.NotificationRetryBuffer.Set(0)
	r.mu.Unlock()

	var (
		stored  int
		failed  []*notification.Notification
		errList []error
	)
	for _, n := range batch {
		if err := r.store(ctx, []*notification.Notification{n}); err != nil {
			failed = append(failed, n)
			errList = append(errList, err)
			continue
		}
		stored++
	}

	if stored > 0 {
		metrics.NotificationsRecordedTotal.Add(float64(stored))
	}
	if len(failed) > 0 {
		r.enqueue(failed)
		return stored, fmt.Errorf("%d notifications still pending: %w", len(failed), errors.Join(errList...))
	}
	return stored, nil
}

// Pending returns the number of buffered notifications.
func (r *NotificationRecorder) Pending() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.pending)
}

func (r *NotificationRecorder) store(ctx context.Context, batch []*notification.Notification) error {
	uow := r.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.NotificationRepository()
	for _, n := range batch {
		if err := repo.Add(ctx, n); err != nil {
			return err
		}
	}

	return uow.Commit(ctx)
}

func (r *NotificationRecorder) enqueue(batch []*notification.Notification) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.pending = append(r.pending, batch...)
	if overflow := len(r.pending) - r.capacity; overflow > 0 {
		metrics.NotificationsDroppedTotal.Add(float64(overflow))
		r.logger.Warn("Notification retry buffer full, dropping oldest", "dropped", overflow)
		r.pending = append([]*notification.Notification(nil), r.pending[overflow:]...)
	}
	metrics.NotificationRetryBuffer.Set(float64(len(r.pending)))
}
