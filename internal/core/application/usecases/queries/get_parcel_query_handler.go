package queries

import (
	"context"
)

// GetParcelQueryHandler returns a parcel with its history and office names.
type GetParcelQueryHandler struct {
	parcels ParcelReader
	offices OfficeLookup
}

// NewGetParcelQueryHandler creates a handler reading through parcels and offices.
func NewGetParcelQueryHandler(parcels ParcelReader, offices OfficeLookup) GetParcelQueryHandler {
	return GetParcelQueryHandler{parcels: parcels, offices: offices}
}

// Handle returns the parcel view or errs.ObjectNotFoundError.
func (h GetParcelQueryHandler) Handle(ctx context.Context, query GetParcelQuery) (ParcelView, error) {
	if err := query.Validate(); err != nil {
		return ParcelView{}, err
	}

	p, err := h.parcels.Get(ctx, query.ParcelID())
	if err != nil {
		return ParcelView{}, err
	}

	return NewParcelView(ctx, p, h.offices), nil
}
