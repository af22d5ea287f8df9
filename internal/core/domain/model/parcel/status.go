package parcel

import (
	"fmt"

	"logitrack/internal/pkg/errs"
)

// Status is the lifecycle state of a parcel. Values are ordered: a larger value
// is further along the progression.
//
//	Booked ──> InTransit ──> Arrived ──> Delivered
//
// New states must be added to the progression and, if they end the lifecycle,
// to the terminal set.
type Status int

const (
	// Unknown catches uninitialised values and is never valid.
	Unknown Status = iota
	// Booked is the state written when the parcel is created at the source office.
	Booked
	// InTransit means the parcel left the source office.
	InTransit
	// Arrived means the parcel reached the destination office.
	Arrived
	// Delivered means the receiver collected the parcel. It is terminal.
	Delivered
)

var statusNames = map[Status]string{
	Unknown:   "UNKNOWN",
	Booked:    "BOOKED",
	InTransit: "IN_TRANSIT",
	Arrived:   "ARRIVED",
	Delivered: "DELIVERED",
}

// progression lists the valid statuses in lifecycle order.
var progression = []Status{Booked, InTransit, Arrived, Delivered}

//nolint:exhaustive // only terminal states are listed
var terminalStatuses = map[Status]bool{
	Delivered: true,
}

// Progression returns the valid statuses in lifecycle order.
func Progression() []Status {
	out := make([]Status, len(progression))
	copy(out, progression)
	return out
}

// StatusFromString parses the wire name of a status ("BOOKED", "IN_TRANSIT", ...).
func StatusFromString(s string) (Status, error) {
	for _, st := range progression {
		if statusNames[st] == s {
			return st, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a known status", s))
}

func (s Status) String() string {
	if name, ok := statusNames[s]; ok {
		return name
	}
	return statusNames[Unknown]
}

// Validate rejects Unknown and any value outside the progression.
func (s Status) Validate() error {
	if s.position() < 0 {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// IsTerminal reports whether the status accepts no further transitions.
func (s Status) IsTerminal() bool {
	return terminalStatuses[s]
}

// Next returns the status directly after s. ok is false for terminal and invalid statuses.
func (s Status) Next() (next Status, ok bool) {
	pos := s.position()
	if pos < 0 || s.IsTerminal() || pos+1 >= len(progression) {
		return Unknown, false
	}
	return progression[pos+1], true
}

// IsBefore reports whether s comes strictly earlier than other in the progression.
func (s Status) IsBefore(other Status) bool {
	return s.position() >= 0 && other.position() >= 0 && s.position() < other.position()
}

func (s Status) position() int {
	for i, st := range progression {
		if st == s {
			return i
		}
	}
	return -1
}
