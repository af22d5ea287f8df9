package commands

import (
	"errors"

	"logitrack/internal/core/domain/model/office"
	"logitrack/internal/pkg/guard"
)

var ErrCreateOfficeCommandIsNotConstructed = errors.New(
	"CreateOfficeCommand must be created via NewCreateOfficeCommand constructor",
)

// CreateOfficeCommand registers a directory entry.
type CreateOfficeCommand struct { //nolint:recvcheck //using for validation
	office *office.Office

	guard guard.ConstructorGuard
}

// NewCreateOfficeCommand validates the office fields.
func NewCreateOfficeCommand(id, name, city, code string) (CreateOfficeCommand, error) {
	o, err := office.NewOffice(id, name, city, code)
	if err != nil {
		return CreateOfficeCommand{}, err
	}
	return CreateOfficeCommand{office: o, guard: guard.NewConstructorGuard()}, nil
}

// Validate reports whether the command was built by NewCreateOfficeCommand.
func (c CreateOfficeCommand) Validate() error {
	return c.guard.Validate(ErrCreateOfficeCommandIsNotConstructed)
}

// Office returns the office to insert.
func (c CreateOfficeCommand) Office() *office.Office {
	return c.office
}
