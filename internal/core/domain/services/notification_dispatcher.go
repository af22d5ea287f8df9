package services

import (
	"errors"
	"fmt"

	"logitrack/internal/core/domain/model/kernel"
	"logitrack/internal/core/domain/model/notification"
	"logitrack/internal/core/domain/model/parcel"
)

// messageTemplate composes one message from the transition snapshot.
type messageTemplate struct {
	recipient notification.Recipient
	compose   func(ev parcel.StatusChanged) string
}

// triggers maps the status of an appended entry to the notifications it fires.
// Statuses missing from the table fire nothing.
//
//nolint:exhaustive // statuses without notifications are omitted
var triggers = map[parcel.Status][]messageTemplate{
	parcel.Booked: {
		{notification.Sender, func(ev parcel.StatusChanged) string {
			return fmt.Sprintf("Your parcel %s to %s is booked!", ev.TrackingID, ev.Receiver.Name())
		}},
		{notification.Receiver, func(ev parcel.StatusChanged) string {
			return fmt.Sprintf("A parcel from %s (%s) has been booked for you.", ev.Sender.Name(), ev.TrackingID)
		}},
	},
	parcel.InTransit: {
		{notification.Receiver, func(ev parcel.StatusChanged) string {
			return fmt.Sprintf("Parcel %s is now in transit.", ev.TrackingID)
		}},
	},
	parcel.Arrived: {
		{notification.Receiver, func(ev parcel.StatusChanged) string {
			return fmt.Sprintf("Good news! Parcel %s has arrived at destination office.", ev.TrackingID)
		}},
	},
	parcel.Delivered: {
		{notification.Sender, func(ev parcel.StatusChanged) string {
			return fmt.Sprintf("Parcel %s was successfully delivered.", ev.TrackingID)
		}},
		{notification.Receiver, func(ev parcel.StatusChanged) string {
			return fmt.Sprintf("You have collected parcel %s. Thanks!", ev.TrackingID)
		}},
	},
}

// NotificationDispatcher composes the notifications bound to a transition.
type NotificationDispatcher struct {
	newID func() kernel.UUID
}

// NewNotificationDispatcher creates a dispatcher minting random notification ids.
func NewNotificationDispatcher() NotificationDispatcher {
	return NotificationDispatcher{newID: kernel.NewUUID}
}

// OnTransition is a pure function of the event: it returns zero or more
// notifications, stamped with the event time, and records nothing.
func (d NotificationDispatcher) OnTransition(ev parcel.StatusChanged) ([]*notification.Notification, error) {
	templates := triggers[ev.Entry.Status()]
	if len(templates) == 0 {
		return nil, nil
	}

	newID := d.newID
	if newID == nil {
		newID = kernel.NewUUID
	}

	out := make([]*notification.Notification, 0, len(templates))
	var errList []error
	for _, tmpl := range templates {
		n, err := notification.NewNotification(
			newID(),
			ev.ParcelID,
			ev.TrackingID,
			tmpl.recipient,
			phoneFor(ev, tmpl.recipient),
			tmpl.compose(ev),
			ev.Entry.Timestamp(),
		)
		if err != nil {
			errList = append(errList, fmt.Errorf("compose %s notification: %w", tmpl.recipient, err))
			continue
		}
		out = append(out, n)
	}

	return out, errors.Join(errList...)
}

func phoneFor(ev parcel.StatusChanged, r notification.Recipient) string {
	if r == notification.Sender {
		return ev.Sender.Phone()
	}
	return ev.Receiver.Phone()
}
