package queries

import (
	"errors"
	"strings"
	"time"

	"logitrack/internal/core/domain/model/kernel"
	"logitrack/internal/pkg/guard"
)

var ErrListParcelsQueryIsNotConstructed = errors.New(
	"ListParcelsQuery must be created via NewListParcelsQuery constructor",
)

// ListParcelsQuery lists parcels newest first. A non-empty office id keeps the
// parcels booked from or addressed to that office. Limit is clamped to
// [1, MaxListLimit]; zero or negative means DefaultListLimit.
//
// Example:
//
//	query := NewListParcelsQuery("off_1", 20)
//	parcels, err := handler.Handle(ctx, query)
type ListParcelsQuery struct {
	officeID string
	limit    int

	guard guard.ConstructorGuard
}

// NewListParcelsQuery lists parcels booked from or addressed to officeID, or all
// parcels when it is empty. A non-positive limit selects DefaultListLimit;
// larger values are capped at MaxListLimit.
func NewListParcelsQuery(officeID string, limit int) ListParcelsQuery {
	return ListParcelsQuery{
		officeID: strings.TrimSpace(officeID),
		limit:    clampLimit(limit),
		guard:    guard.NewConstructorGuard(),
	}
}

// Validate reports whether the query was built by NewListParcelsQuery.
func (q ListParcelsQuery) Validate() error {
	return q.guard.Validate(ErrListParcelsQueryIsNotConstructed)
}

func (q ListParcelsQuery) OfficeID() string { return q.officeID }
func (q ListParcelsQuery) Limit() int       { return q.limit }

// ListParcelsQueryResponse is one row of the parcel list.
type ListParcelsQueryResponse struct {
	ID                  kernel.UUID
	TrackingID          string
	SenderName          string
	ReceiverName        string
	SourceOfficeID      string
	DestinationOfficeID string
	GoodsType           string
	Price               float64
	PaymentMode         string
	Status              string
	CreatedAt           time.Time
	// LastUpdatedAt is the timestamp of the latest history entry.
	LastUpdatedAt time.Time
}
