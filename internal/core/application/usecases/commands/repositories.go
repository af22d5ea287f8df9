// Package commands contains the operations that change parcel and office state.
// Every handler validates its command, opens a unit of work and commits once;
// domain events raised by the change are dispatched by the unit of work after commit.
package commands

import (
	"context"

	"logitrack/internal/core/ports"
)

type (
	// TxManager handles database transaction lifecycle.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	ParcelRepoFactory interface {
		ParcelRepository() ports.ParcelRepository
	}

	OfficeRepoFactory interface {
		OfficeRepository() ports.OfficeRepository
	}

	// ParcelUoW manages transactions for parcel-only operations.
	ParcelUoW interface {
		TxManager
		ParcelRepoFactory
	}

	ParcelUoWFactory interface {
		Create() ParcelUoW
	}

	// OfficeUoW manages transactions for directory writes.
	OfficeUoW interface {
		TxManager
		OfficeRepoFactory
	}

	OfficeUoWFactory interface {
		Create() OfficeUoW
	}

	// OfficeNames resolves an office id to its display name. Unknown ids
	// resolve to office.UnknownOfficeName; storage failures are returned.
	OfficeNames interface {
		ResolveName(ctx context.Context, officeID string) (string, error)
	}
)
