package ports

import (
	"context"

	"logitrack/internal/core/domain/model/office"
)

// OfficeRepository is the office directory store.
type OfficeRepository interface {
	// Add inserts an office. An id that is already taken returns errs.ObjectAlreadyExistError.
	Add(ctx context.Context, o *office.Office) error

	// Get returns errs.ObjectNotFoundError for an unknown id.
	Get(ctx context.Context, id string) (*office.Office, error)

	// GetAll returns every office ordered by id.
	GetAll(ctx context.Context) ([]*office.Office, error)
}
