package queries_test

import (
	"context"
	"testing"
	"time"

	"logitrack/internal/core/domain/model/kernel"
	"logitrack/internal/core/domain/model/office"
	"logitrack/internal/core/domain/model/parcel"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockParcelReader struct {
	mock.Mock
}

func (m *MockParcelReader) Get(ctx context.Context, id kernel.UUID) (*parcel.Parcel, error) {
	args := m.Called(ctx, id)
	if p, ok := args.Get(0).(*parcel.Parcel); ok {
		return p, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockParcelReader) GetByTrackingID(ctx context.Context, trackingID kernel.TrackingID) (*parcel.Parcel, error) {
	args := m.Called(ctx, trackingID)
	if p, ok := args.Get(0).(*parcel.Parcel); ok {
		return p, args.Error(1)
	}
	return nil, args.Error(1)
}

type MockOfficeLookup struct {
	mock.Mock
}

func (m *MockOfficeLookup) Name(ctx context.Context, officeID string) string {
	return m.Called(ctx, officeID).String(0)
}

func (m *MockOfficeLookup) Lookup(ctx context.Context, officeID string) (*office.Office, error) {
	args := m.Called(ctx, officeID)
	if o, ok := args.Get(0).(*office.Office); ok {
		return o, args.Error(1)
	}
	return nil, args.Error(1)
}

var bookedAt = time.Date(2024, 6, 1, 9, 0, 0, 0, time.UTC)

func testParcel(t *testing.T, number int, mode parcel.PaymentMode) *parcel.Parcel {
	t.Helper()

	trackingID, err := kernel.NewTrackingID(number)
	require.NoError(t, err)
	sender, err := parcel.NewParty("sender", "Alice", "555-0100")
	require.NoError(t, err)
	receiver, err := parcel.NewParty("receiver", "Bob", "555-0199")
	require.NoError(t, err)

	p, err := parcel.NewParcel(kernel.NewUUID(), trackingID, parcel.Shipment{
		Sender:              sender,
		Receiver:            receiver,
		SourceOfficeID:      "off_1",
		DestinationOfficeID: "off_2",
		GoodsType:           "Electronics",
		Quantity:            2,
		Price:               120.5,
		PaymentMode:         mode,
	}, bookedAt, "Central Hub NY")
	require.NoError(t, err)
	p.ClearDomainEvents()
	return p
}

func mustOffice(t *testing.T, id, name, city, code string) *office.Office {
	t.Helper()
	o, err := office.NewOffice(id, name, city, code)
	require.NoError(t, err)
	return o
}
