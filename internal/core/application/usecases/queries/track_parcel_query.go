package queries

import (
	"errors"
	"strings"

	"logitrack/internal/core/domain/services"
	"logitrack/internal/pkg/errs"
	"logitrack/internal/pkg/guard"
)

var ErrTrackParcelQueryIsNotConstructed = errors.New(
	"TrackParcelQuery must be created via NewTrackParcelQuery constructor",
)

// TrackParcelQuery resolves a public tracking id. Surrounding whitespace is
// ignored; matching is otherwise exact and case-sensitive.
type TrackParcelQuery struct {
	trackingID string

	guard guard.ConstructorGuard
}

// NewTrackParcelQuery trims the tracking id and requires it to be non-empty.
func NewTrackParcelQuery(trackingID string) (TrackParcelQuery, error) {
	trackingID = strings.TrimSpace(trackingID)
	if trackingID == "" {
		return TrackParcelQuery{}, errs.NewValueIsRequiredError("trackingId")
	}
	return TrackParcelQuery{trackingID: trackingID, guard: guard.NewConstructorGuard()}, nil
}

// Validate reports whether the query was built by NewTrackParcelQuery.
func (q TrackParcelQuery) Validate() error {
	return q.guard.Validate(ErrTrackParcelQueryIsNotConstructed)
}

// TrackingID returns the trimmed tracking id.
func (q TrackParcelQuery) TrackingID() string {
	return q.trackingID
}

// TrackParcelQueryResponse is the parcel with its display timeline.
type TrackParcelQueryResponse struct {
	Parcel   ParcelView
	Timeline []services.Milestone
}
