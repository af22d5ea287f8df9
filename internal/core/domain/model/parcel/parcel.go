package parcel

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"logitrack/internal/core/domain/model/kernel"
	"logitrack/internal/pkg/errs"
	"logitrack/internal/pkg/guard"
)

// BookingNote is the note written on the initial history entry.
const BookingNote = "Parcel booked at source office"

var (
	// ErrParcelIsNotConstructed is returned when a Parcel was not built by NewParcel or RestoreParcel.
	ErrParcelIsNotConstructed = errors.New("Parcel must be created via NewParcel or RestoreParcel constructor")
	// ErrDuplicateTrackingID is returned by the registry when a tracking id is already taken.
	ErrDuplicateTrackingID = errors.New("tracking id is already in use")
	// ErrHistoryIsInconsistent is returned by RestoreParcel when stored history breaks an invariant.
	ErrHistoryIsInconsistent = errors.New("parcel history is inconsistent")
)

// Shipment groups the booking details a parcel is created with. None of these
// fields change after booking.
type Shipment struct {
	Sender              Party
	Receiver            Party
	SourceOfficeID      string
	DestinationOfficeID string
	GoodsType           string
	Quantity            int
	Price               float64
	PaymentMode         PaymentMode
}

// Parcel is the aggregate root of a tracked shipment.
//
// Invariants:
//   - history is never empty and its first entry is BOOKED
//   - history timestamps are non-decreasing
//   - the last history entry's status equals the current status
//   - status and history only change together, through ChangeStatus
type Parcel struct {
	id         kernel.UUID
	trackingID kernel.TrackingID
	shipment   Shipment
	createdAt  time.Time
	status     Status
	history    []TrackingEvent

	events []kernel.DomainEvent
	guard  guard.ConstructorGuard
}

var _ kernel.EventSource = (*Parcel)(nil)

// NewParcel books a parcel. It writes the initial BOOKED entry at bookingLocation
// (the source office's display name) and records a StatusChanged event.
//
// Example:
//
//	sender, _ := parcel.NewParty("sender", "Alice", "555-0100")
//	receiver, _ := parcel.NewParty("receiver", "Bob", "555-0199")
//	p, err := parcel.NewParcel(kernel.NewUUID(), trackingID, parcel.Shipment{
//	    Sender: sender, Receiver: receiver,
//	    SourceOfficeID: "off_1", DestinationOfficeID: "off_2",
//	    GoodsType: "Documents", Quantity: 1, Price: 12.5,
//	    PaymentMode: parcel.SenderPays,
//	}, time.Now(), "Central Hub NY")
func NewParcel(
	id kernel.UUID,
	trackingID kernel.TrackingID,
	shipment Shipment,
	bookedAt time.Time,
	bookingLocation string,
) (*Parcel, error) {
	p := &Parcel{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		p.setID(id),
		p.setTrackingID(trackingID),
		p.setShipment(shipment),
	); err != nil {
		return nil, err
	}

	entry, err := NewTrackingEvent(Booked, bookedAt, bookingLocation, BookingNote)
	if err != nil {
		return nil, err
	}

	p.createdAt = entry.Timestamp()
	p.apply(entry)
	return p, nil
}

// RestoreParcel rebuilds a parcel from storage. The history must satisfy the
// aggregate invariants; no domain events are recorded.
func RestoreParcel(
	id kernel.UUID,
	trackingID kernel.TrackingID,
	shipment Shipment,
	createdAt time.Time,
	status Status,
	history []TrackingEvent,
) (*Parcel, error) {
	p := &Parcel{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		p.setID(id),
		p.setTrackingID(trackingID),
		p.setShipment(shipment),
		status.Validate(),
		validateHistory(status, history),
	); err != nil {
		return nil, err
	}

	p.createdAt = createdAt.UTC()
	p.status = status
	p.history = make([]TrackingEvent, len(history))
	copy(p.history, history)
	return p, nil
}

// Validate ensures the parcel was built through a constructor.
func (p *Parcel) Validate() error {
	if p == nil {
		return ErrParcelIsNotConstructed
	}
	return p.guard.Validate(ErrParcelIsNotConstructed)
}

// ID returns the parcel's internal identifier.
func (p *Parcel) ID() kernel.UUID { return p.id }

// TrackingID returns the public tracking identifier.
func (p *Parcel) TrackingID() kernel.TrackingID { return p.trackingID }

// Sender returns the sending party.
func (p *Parcel) Sender() Party { return p.shipment.Sender }

// Receiver returns the receiving party.
func (p *Parcel) Receiver() Party { return p.shipment.Receiver }

// SourceOfficeID returns the booking office.
func (p *Parcel) SourceOfficeID() string { return p.shipment.SourceOfficeID }

// DestinationOfficeID returns the office the parcel is addressed to.
func (p *Parcel) DestinationOfficeID() string { return p.shipment.DestinationOfficeID }

// GoodsType returns the declared contents.
func (p *Parcel) GoodsType() string { return p.shipment.GoodsType }

// Quantity returns the number of pieces.
func (p *Parcel) Quantity() int { return p.shipment.Quantity }

// Price returns the freight charge.
func (p *Parcel) Price() float64 { return p.shipment.Price }

// PaymentMode returns who pays the freight.
func (p *Parcel) PaymentMode() PaymentMode { return p.shipment.PaymentMode }

// CreatedAt returns the booking timestamp.
func (p *Parcel) CreatedAt() time.Time { return p.createdAt }

// Status returns the current lifecycle status.
func (p *Parcel) Status() Status { return p.status }

// IsEqual reports whether both parcels have the same id.
func (p *Parcel) IsEqual(other *Parcel) bool { return other != nil && p.id.IsEqual(other.id) }

// IsDelivered reports whether the parcel reached the terminal status.
func (p *Parcel) IsDelivered() bool { return p.status == Delivered }

// HistoryLen returns the number of tracking events.
func (p *Parcel) HistoryLen() int { return len(p.history) }

// History returns a copy of the history log in insertion order.
func (p *Parcel) History() []TrackingEvent {
	out := make([]TrackingEvent, len(p.history))
	copy(out, p.history)
	return out
}

// LastEvent returns the most recent history entry.
func (p *Parcel) LastEvent() TrackingEvent {
	return p.history[len(p.history)-1]
}

// FirstEventWith returns the earliest history entry with the given status.
func (p *Parcel) FirstEventWith(status Status) (TrackingEvent, bool) {
	for _, e := range p.history {
		if e.Status() == status {
			return e, true
		}
	}
	return TrackingEvent{}, false
}

// ChangeStatus moves the parcel to target and appends the matching history entry.
//
// The transition is checked against policy (ForwardOnly when nil) before anything
// changes, so a rejected call leaves status and history untouched. A timestamp
// earlier than the last entry is raised to it to keep the log non-decreasing.
func (p *Parcel) ChangeStatus(
	policy TransitionPolicy,
	target Status,
	location, note string,
	at time.Time,
) (TrackingEvent, error) {
	if err := p.Validate(); err != nil {
		return TrackingEvent{}, err
	}
	if policy == nil {
		policy = ForwardOnly
	}

	if err := policy.Allow(p.status, target); err != nil {
		return TrackingEvent{}, err
	}

	if last := p.LastEvent().Timestamp(); at.Before(last) {
		at = last
	}

	entry, err := NewTrackingEvent(target, at, location, note)
	if err != nil {
		return TrackingEvent{}, err
	}

	p.apply(entry)
	return entry, nil
}

// DomainEvents returns the events recorded since the last ClearDomainEvents.
func (p *Parcel) DomainEvents() []kernel.DomainEvent {
	out := make([]kernel.DomainEvent, len(p.events))
	copy(out, p.events)
	return out
}

// ClearDomainEvents drops raised events once they have been dispatched.
func (p *Parcel) ClearDomainEvents() {
	p.events = nil
}

// apply appends entry, sets the status and records the event in one step.
func (p *Parcel) apply(entry TrackingEvent) {
	previous := p.status
	p.history = append(p.history, entry)
	p.status = entry.Status()
	p.events = append(p.events, StatusChanged{
		ID:           kernel.NewUUID(),
		ParcelID:     p.id,
		TrackingID:   p.trackingID,
		Sender:       p.shipment.Sender,
		Receiver:     p.shipment.Receiver,
		SourceOffice: p.shipment.SourceOfficeID,
		DestOffice:   p.shipment.DestinationOfficeID,
		Previous:     previous,
		Entry:        entry,
	})
}

func (p *Parcel) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	p.id = id
	return nil
}

func (p *Parcel) setTrackingID(id kernel.TrackingID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	p.trackingID = id
	return nil
}

func (p *Parcel) setShipment(s Shipment) error {
	s.SourceOfficeID = strings.TrimSpace(s.SourceOfficeID)
	s.DestinationOfficeID = strings.TrimSpace(s.DestinationOfficeID)
	s.GoodsType = strings.TrimSpace(s.GoodsType)

	var errList []error
	if s.Sender.IsZero() {
		errList = append(errList, errs.NewValueIsRequiredError("sender"))
	}
	if s.Receiver.IsZero() {
		errList = append(errList, errs.NewValueIsRequiredError("receiver"))
	}
	if s.SourceOfficeID == "" {
		errList = append(errList, errs.NewValueIsRequiredError("sourceOfficeId"))
	}
	if s.DestinationOfficeID == "" {
		errList = append(errList, errs.NewValueIsRequiredError("destinationOfficeId"))
	}
	if s.SourceOfficeID != "" && s.SourceOfficeID == s.DestinationOfficeID {
		errList = append(errList, errs.NewValueIsInvalidErrorWithCause(
			"destinationOfficeId",
			fmt.Errorf("%s is also the source office", s.DestinationOfficeID),
		))
	}
	if s.GoodsType == "" {
		errList = append(errList, errs.NewValueIsRequiredError("goodsType"))
	}
	if s.Quantity <= 0 {
		errList = append(errList, errs.NewValueIsInvalidErrorWithCause(
			"quantity",
			fmt.Errorf("%d is not greater than 0", s.Quantity),
		))
	}
	if s.Price < 0 {
		errList = append(errList, errs.NewValueIsInvalidErrorWithCause(
			"price",
			fmt.Errorf("%.2f is negative", s.Price),
		))
	}
	if err := s.PaymentMode.Validate(); err != nil {
		errList = append(errList, err)
	}

	if err := errors.Join(errList...); err != nil {
		return err
	}

	p.shipment = s
	return nil
}

func validateHistory(status Status, history []TrackingEvent) error {
	if len(history) == 0 {
		return fmt.Errorf("%w: history is empty", ErrHistoryIsInconsistent)
	}
	if history[0].Status() != Booked {
		return fmt.Errorf("%w: first entry is %s", ErrHistoryIsInconsistent, history[0].Status())
	}
	for i := 1; i < len(history); i++ {
		if history[i].Timestamp().Before(history[i-1].Timestamp()) {
			return fmt.Errorf("%w: entry %d is older than entry %d", ErrHistoryIsInconsistent, i, i-1)
		}
	}
	if last := history[len(history)-1].Status(); last != status {
		return fmt.Errorf("%w: last entry is %s but status is %s", ErrHistoryIsInconsistent, last, status)
	}
	return nil
}
