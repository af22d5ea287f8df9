// Package ports defines the contracts between the parcel domain and the
// infrastructure that stores it and carries its events.
package ports

import (
	"context"

	"logitrack/internal/core/domain/model/kernel"
	"logitrack/internal/core/domain/model/parcel"
)

// ParcelRepository is the parcel registry. Implementations persist the full
// history with the aggregate and only ever append history rows.
type ParcelRepository interface {
	// Add persists a newly booked parcel. A tracking id clash is reported as
	// parcel.ErrDuplicateTrackingID.
	Add(ctx context.Context, aggregate *parcel.Parcel) error

	// Update persists the new status and the history entries appended since load.
	Update(ctx context.Context, aggregate *parcel.Parcel) error

	// Get loads a parcel by internal id. A miss returns errs.ObjectNotFoundError.
	Get(ctx context.Context, id kernel.UUID) (*parcel.Parcel, error)

	// GetForUpdate loads a parcel and locks its row until the transaction ends,
	// so concurrent status changes on one parcel serialize.
	GetForUpdate(ctx context.Context, id kernel.UUID) (*parcel.Parcel, error)

	// GetByTrackingID resolves the public tracking id. Matching is exact.
	GetByTrackingID(ctx context.Context, trackingID kernel.TrackingID) (*parcel.Parcel, error)

	ExistsByTrackingID(ctx context.Context, trackingID kernel.TrackingID) (bool, error)
}
