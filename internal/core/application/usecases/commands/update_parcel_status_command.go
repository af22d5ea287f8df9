package commands

import (
	"errors"
	"strings"

	"logitrack/internal/core/domain/model/kernel"
	"logitrack/internal/core/domain/model/operator"
	"logitrack/internal/core/domain/model/parcel"
	"logitrack/internal/pkg/guard"
)

var ErrUpdateParcelStatusCommandIsNotConstructed = errors.New(
	"UpdateParcelStatusCommand must be created via NewUpdateParcelStatusCommand constructor",
)

// UpdateParcelStatusCommand moves a parcel to a new status on behalf of an operator.
// The operator decides the location label of the new history entry.
type UpdateParcelStatusCommand struct { //nolint:recvcheck //using for validation
	parcelID kernel.UUID
	target   parcel.Status
	note     string
	operator operator.Operator

	guard guard.ConstructorGuard
}

// NewUpdateParcelStatusCommand validates the parcel id, target status and operator.
func NewUpdateParcelStatusCommand(
	parcelID kernel.UUID,
	target parcel.Status,
	note string,
	op operator.Operator,
) (UpdateParcelStatusCommand, error) {
	if err := errors.Join(parcelID.Validate(), target.Validate()); err != nil {
		return UpdateParcelStatusCommand{}, err
	}

	return UpdateParcelStatusCommand{
		parcelID: parcelID,
		target:   target,
		note:     strings.TrimSpace(note),
		operator: op,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate reports whether the command was built by NewUpdateParcelStatusCommand.
func (c UpdateParcelStatusCommand) Validate() error {
	return c.guard.Validate(ErrUpdateParcelStatusCommandIsNotConstructed)
}

func (c UpdateParcelStatusCommand) ParcelID() kernel.UUID { return c.parcelID }
func (c UpdateParcelStatusCommand) Target() parcel.Status { return c.target }
func (c UpdateParcelStatusCommand) Note() string { return c.note }
func (c UpdateParcelStatusCommand) Operator() operator.Operator { return c.operator }
