package commands

import (
	"context"
	"errors"
	"time"

	"logitrack/internal/core/domain/model/parcel"
	"logitrack/internal/core/domain/services"
	"logitrack/internal/pkg/metrics"
)

// UpdateParcelStatusCommandHandler applies status transitions. The parcel row
// is locked for the duration of the transaction, so concurrent updates of one
// parcel run one after the other and each sees the previous result.
type UpdateParcelStatusCommandHandler struct {
	uowFactory ParcelUoWFactory
	offices    OfficeNames
	engine     services.TransitionEngine
	now        func() time.Time
}

// NewUpdateParcelStatusCommandHandler creates a handler using the wall clock.
func NewUpdateParcelStatusCommandHandler(
	uowFactory ParcelUoWFactory,
	offices OfficeNames,
	engine services.TransitionEngine,
) UpdateParcelStatusCommandHandler {
	return UpdateParcelStatusCommandHandler{
		uowFactory: uowFactory,
		offices:    offices,
		engine:     engine,
		now:        time.Now,
	}
}

// WithClock returns a copy of the handler reading time from now.
func (h UpdateParcelStatusCommandHandler) WithClock(now func() time.Time) UpdateParcelStatusCommandHandler {
	h.now = now
	return h
}

// Handle returns the updated parcel. A rejected transition returns
// parcel.InvalidTransitionError and nothing is written.
func (h *UpdateParcelStatusCommandHandler) Handle(
	ctx context.Context,
	cmd UpdateParcelStatusCommand,
) (*parcel.Parcel, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	var officeName string
	if op := cmd.Operator(); op.IsOfficeBound() {
		name, err := h.offices.ResolveName(ctx, op.OfficeID())
		if err != nil {
			return nil, err
		}
		officeName = name
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	parcelRepo := uow.ParcelRepository()
	p, err := parcelRepo.GetForUpdate(ctx, cmd.ParcelID())
	if err != nil {
		return nil, err
	}

	if _, err = h.engine.Transition(p, cmd.Target(), cmd.Operator(), officeName, cmd.Note(), h.now()); err != nil {
		if errors.Is(err, parcel.ErrInvalidTransition) {
			metrics.TransitionRejectionsTotal.WithLabelValues(h.engine.Policy().Name()).Inc()
		}
		return nil, err
	}

	if err = parcelRepo.Update(ctx, p); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	metrics.StatusTransitionsTotal.WithLabelValues(cmd.Target().String()).Inc()
	return p, nil
}
