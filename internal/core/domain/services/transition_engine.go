package services

import (
	"time"

	"logitrack/internal/core/domain/model/office"
	"logitrack/internal/core/domain/model/operator"
	"logitrack/internal/core/domain/model/parcel"
)

const (
	// HQLocation labels events recorded by a global operator.
	HQLocation = "HQ Update"
	// TransitLocation labels events recorded by an operator with no office.
	TransitLocation = "Transit"
)

// TransitionEngine applies status changes under a single TransitionPolicy.
type TransitionEngine struct {
	policy parcel.TransitionPolicy
}

// NewTransitionEngine returns an engine enforcing policy, or parcel.ForwardOnly when nil.
func NewTransitionEngine(policy parcel.TransitionPolicy) TransitionEngine {
	if policy == nil {
		policy = parcel.ForwardOnly
	}
	return TransitionEngine{policy: policy}
}

// Policy returns the policy transitions are checked against.
func (e TransitionEngine) Policy() parcel.TransitionPolicy {
	return e.policy
}

// ResolveLocation derives the history location label from the acting operator.
// officeName is the display name of the operator's office and is only used for
// office-bound operators.
func (e TransitionEngine) ResolveLocation(op operator.Operator, officeName string) string {
	switch {
	case op.IsOfficeBound():
		if officeName == "" {
			return office.UnknownOfficeName
		}
		return officeName
	case op.IsGlobal():
		return HQLocation
	default:
		return TransitLocation
	}
}

// Transition validates the move to target and appends the history entry. On
// error the parcel is unchanged.
func (e TransitionEngine) Transition(
	p *parcel.Parcel,
	target parcel.Status,
	op operator.Operator,
	officeName, note string,
	at time.Time,
) (parcel.TrackingEvent, error) {
	if err := p.Validate(); err != nil {
		return parcel.TrackingEvent{}, err
	}
	return p.ChangeStatus(e.policy, target, e.ResolveLocation(op, officeName), note, at)
}
