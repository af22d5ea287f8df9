package services_test

import (
	"testing"
	"time"

	"logitrack/internal/core/domain/model/kernel"
	"logitrack/internal/core/domain/model/parcel"

	"github.com/stretchr/testify/require"
)

var bookedAt = time.Date(2024, 3, 10, 9, 30, 0, 0, time.UTC)

func bookParcel(t *testing.T) *parcel.Parcel {
	t.Helper()

	sender, err := parcel.NewParty("sender", "Alice", "555-0100")
	require.NoError(t, err)
	receiver, err := parcel.NewParty("receiver", "Bob", "555-0199")
	require.NoError(t, err)
	trackingID, err := kernel.NewTrackingID(700123)
	require.NoError(t, err)

	p, err := parcel.NewParcel(kernel.NewUUID(), trackingID, parcel.Shipment{
		Sender:              sender,
		Receiver:            receiver,
		SourceOfficeID:      "off_1",
		DestinationOfficeID: "off_2",
		GoodsType:           "Electronics",
		Quantity:            1,
		Price:               99.5,
		PaymentMode:         parcel.CollectOnDelivery,
	}, bookedAt, "Central Hub NY")
	require.NoError(t, err)
	return p
}

// advance walks p forward to target one step at a time, an hour apart.
func advance(t *testing.T, p *parcel.Parcel, target parcel.Status) {
	t.Helper()
	at := p.LastEvent().Timestamp()
	for p.Status() != target {
		next, ok := p.Status().Next()
		require.True(t, ok)
		at = at.Add(time.Hour)
		_, err := p.ChangeStatus(parcel.ForwardOnly, next, "Transit", "", at)
		require.NoError(t, err)
	}
}

func lastStatusChanged(t *testing.T, p *parcel.Parcel) parcel.StatusChanged {
	t.Helper()
	events := p.DomainEvents()
	require.NotEmpty(t, events)
	ev, ok := events[len(events)-1].(parcel.StatusChanged)
	require.True(t, ok)
	return ev
}
