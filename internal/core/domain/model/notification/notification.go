// Package notification holds the record of an outbound message composed for a
// parcel party. Delivery itself happens outside the service.
package notification

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"logitrack/internal/core/domain/model/kernel"
	"logitrack/internal/pkg/errs"
	"logitrack/internal/pkg/guard"
)

// Recipient is the parcel party a notification is addressed to.
type Recipient int

const (
	UnknownRecipient Recipient = iota
	Sender
	Receiver
)

var recipientLabels = map[Recipient]string{
	UnknownRecipient: "Unknown",
	Sender:           "Sender",
	Receiver:         "Receiver",
}

// RecipientFromString parses a recipient label.
func RecipientFromString(s string) (Recipient, error) {
	for r, label := range recipientLabels {
		if r != UnknownRecipient && label == s {
			return r, nil
		}
	}
	return UnknownRecipient, errs.NewValueIsInvalidErrorWithCause("recipient", fmt.Errorf("%q is not a known recipient", s))
}

// String returns the display label, "Sender" or "Receiver".
func (r Recipient) String() string {
	if label, ok := recipientLabels[r]; ok {
		return label
	}
	return recipientLabels[UnknownRecipient]
}

// Validate rejects unknown recipients.
func (r Recipient) Validate() error {
	if r != Sender && r != Receiver {
		return errs.NewValueIsInvalidErrorWithCause("recipient", fmt.Errorf("%d is not a valid recipient", r))
	}
	return nil
}

var ErrNotificationIsNotConstructed = errors.New("Notification must be created via NewNotification constructor")

// Notification is immutable once created.
type Notification struct {
	id         kernel.UUID
	parcelID   kernel.UUID
	trackingID kernel.TrackingID
	recipient  Recipient
	phone      string
	message    string
	createdAt  time.Time
	guard      guard.ConstructorGuard
}

// NewNotification validates every field. The message must be non-empty.
func NewNotification(
	id kernel.UUID,
	parcelID kernel.UUID,
	trackingID kernel.TrackingID,
	recipient Recipient,
	phone, message string,
	createdAt time.Time,
) (*Notification, error) {
	n := &Notification{
		id:         id,
		parcelID:   parcelID,
		trackingID: trackingID,
		recipient:  recipient,
		phone:      strings.TrimSpace(phone),
		message:    strings.TrimSpace(message),
		createdAt:  createdAt.UTC(),
		guard:      guard.NewConstructorGuard(),
	}

	var phoneErr, messageErr, timeErr error
	if n.phone == "" {
		phoneErr = errs.NewValueIsRequiredError("phone")
	}
	if n.message == "" {
		messageErr = errs.NewValueIsRequiredError("message")
	}
	if createdAt.IsZero() {
		timeErr = errs.NewValueIsRequiredError("createdAt")
	}

	if err := errors.Join(
		id.Validate(),
		parcelID.Validate(),
		trackingID.Validate(),
		recipient.Validate(),
		phoneErr,
		messageErr,
		timeErr,
	); err != nil {
		return nil, err
	}

	return n, nil
}

// Validate reports whether the notification was built by NewNotification.
func (n *Notification) Validate() error {
	if n == nil {
		return ErrNotificationIsNotConstructed
	}
	return n.guard.Validate(ErrNotificationIsNotConstructed)
}

// ID returns the notification's unique identifier.
func (n *Notification) ID() kernel.UUID { return n.id }

// ParcelID returns the parcel the notification is about.
func (n *Notification) ParcelID() kernel.UUID { return n.parcelID }

// TrackingID returns the tracking id quoted in the message.
func (n *Notification) TrackingID() kernel.TrackingID { return n.trackingID }

// Recipient returns which party the message is addressed to.
func (n *Notification) Recipient() Recipient { return n.recipient }

// Phone returns the recipient's phone number.
func (n *Notification) Phone() string { return n.phone }

// Message returns the SMS text.
func (n *Notification) Message() string { return n.message }

// CreatedAt returns the timestamp of the transition that caused it.
func (n *Notification) CreatedAt() time.Time { return n.createdAt }
