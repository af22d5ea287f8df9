package parcel

import (
	"time"

	"logitrack/internal/core/domain/model/kernel"
)

// StatusChangedEventName identifies StatusChanged on the event bus and on the wire.
const StatusChangedEventName = "parcel.status_changed"

// StatusChanged is recorded every time a history entry is appended, including
// the initial BOOKED entry. It carries a snapshot of the parcel facts that
// downstream handlers need, so they never reload the aggregate.
type StatusChanged struct {
	ID           kernel.UUID
	ParcelID     kernel.UUID
	TrackingID   kernel.TrackingID
	Sender       Party
	Receiver     Party
	SourceOffice string
	DestOffice   string
	Previous     Status
	Entry        TrackingEvent
}

var _ kernel.DomainEvent = StatusChanged{}

// EventID returns the unique event identifier.
func (e StatusChanged) EventID() kernel.UUID { return e.ID }

// EventName returns StatusChangedEventName.
func (e StatusChanged) EventName() string { return StatusChangedEventName }

// AggregateID returns the parcel id.
func (e StatusChanged) AggregateID() kernel.UUID { return e.ParcelID }

// OccurredAt returns the timestamp of the new history entry.
func (e StatusChanged) OccurredAt() time.Time { return e.Entry.Timestamp() }

// IsBooking reports whether the event is the creation entry.
func (e StatusChanged) IsBooking() bool {
	return e.Previous == Unknown && e.Entry.Status() == Booked
}
