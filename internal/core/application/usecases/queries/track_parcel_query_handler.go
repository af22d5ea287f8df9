package queries

import (
	"context"

	"logitrack/internal/core/domain/model/kernel"
	"logitrack/internal/core/domain/services"
	"logitrack/internal/pkg/errs"
)

// TrackParcelQueryHandler returns a parcel with its display timeline.
type TrackParcelQueryHandler struct {
	parcels   ParcelReader
	offices   OfficeLookup
	projector services.TimelineProjector
}

// NewTrackParcelQueryHandler creates a handler reading through parcels and offices.
func NewTrackParcelQueryHandler(parcels ParcelReader, offices OfficeLookup) TrackParcelQueryHandler {
	return TrackParcelQueryHandler{
		parcels:   parcels,
		offices:   offices,
		projector: services.NewTimelineProjector(),
	}
}

// Handle returns errs.ObjectNotFoundError when nothing matches, including ids
// that are not in the TRK-NNNNNN format.
func (h TrackParcelQueryHandler) Handle(ctx context.Context, query TrackParcelQuery) (TrackParcelQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return TrackParcelQueryResponse{}, err
	}

	trackingID, err := kernel.TrackingIDFromString(query.TrackingID())
	if err != nil {
		return TrackParcelQueryResponse{}, errs.NewObjectNotFoundErrorWithCause("parcel", query.TrackingID(), err)
	}

	p, err := h.parcels.GetByTrackingID(ctx, trackingID)
	if err != nil {
		return TrackParcelQueryResponse{}, err
	}

	return TrackParcelQueryResponse{
		Parcel:   NewParcelView(ctx, p, h.offices),
		Timeline: h.projector.Project(p),
	}, nil
}
