package queries

import (
	"errors"
	"strings"
	"time"

	"logitrack/internal/core/domain/model/kernel"
	"logitrack/internal/pkg/guard"
)

var ErrGetNotificationsQueryIsNotConstructed = errors.New(
	"GetNotificationsQuery must be created via NewGetNotificationsQuery constructor",
)

// GetNotificationsQuery lists recorded notifications newest first, optionally
// for a single tracking id.
type GetNotificationsQuery struct {
	trackingID string
	limit      int

	guard guard.ConstructorGuard
}

// NewGetNotificationsQuery lists notifications of one tracking id, or all when it
// is empty. A non-positive limit selects DefaultListLimit; larger values are
// capped at MaxListLimit.
func NewGetNotificationsQuery(trackingID string, limit int) GetNotificationsQuery {
	return GetNotificationsQuery{
		trackingID: strings.TrimSpace(trackingID),
		limit:      clampLimit(limit),
		guard:      guard.NewConstructorGuard(),
	}
}

// Validate reports whether the query was built by NewGetNotificationsQuery.
func (q GetNotificationsQuery) Validate() error {
	return q.guard.Validate(ErrGetNotificationsQueryIsNotConstructed)
}

func (q GetNotificationsQuery) TrackingID() string { return q.trackingID }
func (q GetNotificationsQuery) Limit() int         { return q.limit }

// GetNotificationsQueryResponse is one notification row.
type GetNotificationsQueryResponse struct {
	ID         kernel.UUID
	ParcelID   kernel.UUID
	TrackingID string
	Recipient  string
	Phone      string
	Message    string
	CreatedAt  time.Time
}
