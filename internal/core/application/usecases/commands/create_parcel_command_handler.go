package commands

import (
	"context"
	"errors"
	"time"

	"logitrack/internal/core/domain/model/kernel"
	"logitrack/internal/core/domain/model/parcel"
	"logitrack/internal/core/domain/services"
	"logitrack/internal/pkg/metrics"
)

// DefaultCreateAttempts bounds how often a create is retried after the unique
// index rejected a tracking id that passed the existence check.
const DefaultCreateAttempts = 3

// CreateParcelCommandHandler books parcels. The source office's display name
// becomes the location of the initial BOOKED entry.
type CreateParcelCommandHandler struct {
	uowFactory ParcelUoWFactory
	offices    OfficeNames
	generator  *services.TrackingIDGenerator
	attempts   int
	now        func() time.Time
}

// NewCreateParcelCommandHandler creates a handler using the wall clock and
// DefaultCreateAttempts.
func NewCreateParcelCommandHandler(
	uowFactory ParcelUoWFactory,
	offices OfficeNames,
	generator *services.TrackingIDGenerator,
) CreateParcelCommandHandler {
	return CreateParcelCommandHandler{
		uowFactory: uowFactory,
		offices:    offices,
		generator:  generator,
		attempts:   DefaultCreateAttempts,
		now:        time.Now,
	}
}

// WithClock returns a copy of the handler reading time from now.
func (h CreateParcelCommandHandler) WithClock(now func() time.Time) CreateParcelCommandHandler {
	h.now = now
	return h
}

// Handle creates the parcel in its own transaction and returns it. A tracking id
// clash detected at insert time restarts the whole transaction with a fresh id.
func (h *CreateParcelCommandHandler) Handle(ctx context.Context, cmd CreateParcelCommand) (*parcel.Parcel, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	location, err := h.offices.ResolveName(ctx, cmd.Shipment().SourceOfficeID)
	if err != nil {
		return nil, err
	}

	attempts := max(h.attempts, 1)
	for attempt := 1; ; attempt++ {
		p, err := h.create(ctx, cmd, location)
		if errors.Is(err, parcel.ErrDuplicateTrackingID) && attempt < attempts {
			metrics.TrackingIDCollisionsTotal.Inc()
			continue
		}
		if err != nil {
			return nil, err
		}

		metrics.ParcelsCreatedTotal.Inc()
		metrics.StatusTransitionsTotal.WithLabelValues(parcel.Booked.String()).Inc()
		return p, nil
	}
}

func (h *CreateParcelCommandHandler) create(
	ctx context.Context,
	cmd CreateParcelCommand,
	location string,
) (*parcel.Parcel, error) {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	parcelRepo := uow.ParcelRepository()
	trackingID, err := h.generator.Generate(ctx, parcelRepo)
	if err != nil {
		return nil, err
	}

	p, err := parcel.NewParcel(kernel.NewUUID(), trackingID, cmd.Shipment(), h.now(), location)
	if err != nil {
		return nil, err
	}

	if err = parcelRepo.Add(ctx, p); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return p, nil
}
