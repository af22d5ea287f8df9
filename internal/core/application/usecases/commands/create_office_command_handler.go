package commands

import (
	"context"

	"logitrack/internal/core/domain/model/office"
)

// CreateOfficeCommandHandler adds offices to the directory.
type CreateOfficeCommandHandler struct {
	uowFactory OfficeUoWFactory
}

// NewCreateOfficeCommandHandler creates a handler opening one unit of work per command.
func NewCreateOfficeCommandHandler(uowFactory OfficeUoWFactory) CreateOfficeCommandHandler {
	return CreateOfficeCommandHandler{uowFactory: uowFactory}
}

// Handle stores the office. A taken id returns errs.ObjectAlreadyExistError.
func (h *CreateOfficeCommandHandler) Handle(ctx context.Context, cmd CreateOfficeCommand) (*office.Office, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err := uow.OfficeRepository().Add(ctx, cmd.Office()); err != nil {
		return nil, err
	}

	if err := uow.Commit(ctx); err != nil {
		return nil, err
	}

	return cmd.Office(), nil
}
