package parcel

import (
	"strings"
	"time"

	"logitrack/internal/pkg/errs"
)

// TrackingEvent is one entry of a parcel's history. It is a value object and
// never changes once appended.
type TrackingEvent struct {
	status    Status
	timestamp time.Time
	location  string
	note      string
}

// NewTrackingEvent validates the status, requires a location label and a
// timestamp, and trims the optional note.
func NewTrackingEvent(status Status, timestamp time.Time, location, note string) (TrackingEvent, error) {
	if err := status.Validate(); err != nil {
		return TrackingEvent{}, err
	}
	location = strings.TrimSpace(location)
	if location == "" {
		return TrackingEvent{}, errs.NewValueIsRequiredError("location")
	}
	if timestamp.IsZero() {
		return TrackingEvent{}, errs.NewValueIsRequiredError("timestamp")
	}

	return TrackingEvent{
		status:    status,
		timestamp: timestamp.UTC(),
		location:  location,
		note:      strings.TrimSpace(note),
	}, nil
}

// Status returns the status the parcel entered.
func (e TrackingEvent) Status() Status { return e.status }

// Timestamp returns when the status was entered.
func (e TrackingEvent) Timestamp() time.Time { return e.timestamp }

// Location returns where the event was recorded.
func (e TrackingEvent) Location() string { return e.location }

// Note returns the optional free-text note, or "" when none was given.
func (e TrackingEvent) Note() string { return e.note }
