package eventhandlers_test

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"logitrack/internal/core/application/eventhandlers"
	"logitrack/internal/core/domain/model/kernel"
	"logitrack/internal/core/domain/model/notification"
	"logitrack/internal/core/domain/model/parcel"
	"logitrack/internal/core/ports"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type MockNotificationRepository struct{ mock.Mock }

func (m *MockNotificationRepository) Add(ctx context.Context, n *notification.Notification) error {
	args := m.Called(ctx, n)
	return args.Error(0)
}

type MockNotificationUoW struct{ mock.Mock }

func (m *MockNotificationUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockNotificationUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockNotificationUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockNotificationUoW) NotificationRepository() ports.NotificationRepository {
	args := m.Called()
	return args.Get(0).(ports.NotificationRepository)
}

type MockNotificationUoWFactory struct{ mock.Mock }

func (m *MockNotificationUoWFactory) Create() eventhandlers.NotificationUoW {
	args := m.Called()
	return args.Get(0).(eventhandlers.NotificationUoW)
}

type MockParcelEventPublisher struct{ mock.Mock }

func (m *MockParcelEventPublisher) PublishStatusChanged(ctx context.Context, ev parcel.StatusChanged) error {
	args := m.Called(ctx, ev)
	return args.Error(0)
}

func (m *MockParcelEventPublisher) Close() error {
	return m.Called().Error(0)
}

// newUoW returns a unit of work that always begins and commits.
func newUoW(ctx context.Context, repo *MockNotificationRepository) *MockNotificationUoW {
	uow := new(MockNotificationUoW)
	uow.On("Begin", ctx).Return(nil)
	uow.On("NotificationRepository").Return(repo)
	uow.On("Commit", ctx).Return(nil)
	uow.On("Rollback", ctx).Return(nil)
	return uow
}

func bookingEvent(t *testing.T) parcel.StatusChanged {
	t.Helper()

	sender, err := parcel.NewParty("sender", "Alice", "555-0100")
	require.NoError(t, err)
	receiver, err := parcel.NewParty("receiver", "Bob", "555-0199")
	require.NoError(t, err)
	trackingID, err := kernel.NewTrackingID(246810)
	require.NoError(t, err)

	p, err := parcel.NewParcel(kernel.NewUUID(), trackingID, parcel.Shipment{
		Sender:              sender,
		Receiver:            receiver,
		SourceOfficeID:      "off_1",
		DestinationOfficeID: "off_3",
		GoodsType:           "Clothes",
		Quantity:            4,
		Price:               60,
		PaymentMode:         parcel.SenderPays,
	}, time.Date(2024, 7, 1, 8, 0, 0, 0, time.UTC), "Central Hub NY")
	require.NoError(t, err)

	return p.DomainEvents()[0].(parcel.StatusChanged)
}
