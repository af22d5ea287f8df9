// Package directory answers office lookups for the rest of the application.
package directory

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"logitrack/internal/core/domain/model/office"
	"logitrack/internal/pkg/errs"
)

// OfficeReader is the read side of the office store.
type OfficeReader interface {
	Get(ctx context.Context, id string) (*office.Office, error)
	GetAll(ctx context.Context) ([]*office.Office, error)
}

// OfficeDirectory resolves office ids. Ids that match no office are shown as
// office.UnknownOfficeName.
type OfficeDirectory struct {
	reader OfficeReader
	logger *slog.Logger
}

// NewOfficeDirectory creates a directory reading through reader.
func NewOfficeDirectory(reader OfficeReader, logger *slog.Logger) *OfficeDirectory {
	return &OfficeDirectory{
		reader: reader,
		logger: logger.With("component", "office_directory"),
	}
}

// Lookup returns the office or errs.ObjectNotFoundError.
func (d *OfficeDirectory) Lookup(ctx context.Context, id string) (*office.Office, error) {
	return d.reader.Get(ctx, id)
}

// ResolveName returns the office display name, or office.UnknownOfficeName when
// no office has that id. Any other reader error is returned. Use it where the
// name is persisted.
func (d *OfficeDirectory) ResolveName(ctx context.Context, id string) (string, error) {
	o, err := d.reader.Get(ctx, id)
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) || errors.Is(err, errs.ErrValueIsRequired) {
			return office.UnknownOfficeName, nil
		}
		return "", fmt.Errorf("resolve office %q: %w", id, err)
	}
	return o.Name(), nil
}

// Name is ResolveName for display paths: reader failures are logged and shown
// as office.UnknownOfficeName.
func (d *OfficeDirectory) Name(ctx context.Context, id string) string {
	name, err := d.ResolveName(ctx, id)
	if err != nil {
		d.logger.WarnContext(ctx, "Office lookup failed", "officeId", id, "error", err)
		return office.UnknownOfficeName
	}
	return name
}

// All returns every office ordered by id.
func (d *OfficeDirectory) All(ctx context.Context) ([]*office.Office, error) {
	return d.reader.GetAll(ctx)
}
