package parcel

import (
	"errors"
	"fmt"

	"logitrack/internal/pkg/errs"
)

// ErrInvalidTransition is the sentinel matched by InvalidTransitionError.
var ErrInvalidTransition = errors.New("invalid status transition")

// InvalidTransitionError reports a target status that the active policy does
// not allow from the current status.
type InvalidTransitionError struct {
	From   Status
	To     Status
	Reason string
}

// NewInvalidTransitionError reports a rejected move from one status to another.
func NewInvalidTransitionError(from, to Status, reason string) *InvalidTransitionError {
	return &InvalidTransitionError{From: from, To: to, Reason: reason}
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("%s: %s -> %s (%s)", ErrInvalidTransition, e.From, e.To, e.Reason)
}

func (e *InvalidTransitionError) Unwrap() error {
	return ErrInvalidTransition
}

// TransitionPolicy decides whether a parcel may move from one status to another.
type TransitionPolicy interface {
	Name() string
	Allow(from, to Status) error
}

// Policy names accepted by PolicyFromString.
const (
	ForwardOnlyPolicyName = "forward_only"
	PermissivePolicyName  = "permissive"
)

// ForwardOnly allows exactly one step forward along the progression.
// Skipping, repeating and moving backwards are rejected.
var ForwardOnly TransitionPolicy = forwardOnly{}

// Permissive reproduces the legacy rule set: any valid target is accepted as long
// as it differs from the current status and the current status is not terminal.
var Permissive TransitionPolicy = permissive{}

// PolicyFromString resolves a configured policy name. The empty string selects ForwardOnly.
func PolicyFromString(name string) (TransitionPolicy, error) {
	switch name {
	case "", ForwardOnlyPolicyName:
		return ForwardOnly, nil
	case PermissivePolicyName:
		return Permissive, nil
	default:
		return nil, errs.NewValueIsInvalidErrorWithCause("transitionPolicy", fmt.Errorf("unknown policy %q", name))
	}
}

type forwardOnly struct{}

func (forwardOnly) Name() string { return ForwardOnlyPolicyName }

func (forwardOnly) Allow(from, to Status) error {
	if err := checkEndpoints(from, to); err != nil {
		return err
	}

	next, _ := from.Next()
	if to != next {
		if to.IsBefore(from) || to == from {
			return NewInvalidTransitionError(from, to, "status can only move forward")
		}
		return NewInvalidTransitionError(from, to, fmt.Sprintf("next status must be %s", next))
	}
	return nil
}

type permissive struct{}

func (permissive) Name() string { return PermissivePolicyName }

func (permissive) Allow(from, to Status) error {
	if err := checkEndpoints(from, to); err != nil {
		return err
	}
	if from == to {
		return NewInvalidTransitionError(from, to, "parcel already has this status")
	}
	return nil
}

func checkEndpoints(from, to Status) error {
	if err := to.Validate(); err != nil {
		return err
	}
	if from.IsTerminal() {
		return NewInvalidTransitionError(from, to, "status is terminal")
	}
	return nil
}
