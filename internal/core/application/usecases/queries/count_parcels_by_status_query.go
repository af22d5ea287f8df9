package queries

import (
	"errors"
	"strings"

	"logitrack/internal/core/domain/model/parcel"
	"logitrack/internal/pkg/guard"
)

var ErrCountParcelsByStatusQueryIsNotConstructed = errors.New(
	"CountParcelsByStatusQuery must be created via NewCountParcelsByStatusQuery constructor",
)

// CountParcelsByStatusQuery counts parcels per status, network-wide or for
// the parcels booked from or addressed to one office.
type CountParcelsByStatusQuery struct {
	officeID string

	guard guard.ConstructorGuard
}

// NewCountParcelsByStatusQuery counts parcels touching officeID, or all parcels when it is empty.
func NewCountParcelsByStatusQuery(officeID string) CountParcelsByStatusQuery {
	return CountParcelsByStatusQuery{officeID: strings.TrimSpace(officeID), guard: guard.NewConstructorGuard()}
}

// Validate reports whether the query was built by NewCountParcelsByStatusQuery.
func (q CountParcelsByStatusQuery) Validate() error {
	return q.guard.Validate(ErrCountParcelsByStatusQueryIsNotConstructed)
}

func (q CountParcelsByStatusQuery) OfficeID() string { return q.officeID }

// CountParcelsByStatusQueryResponse holds a count for every status of the
// progression, zero included. Statuses not in the progression are ignored.
type CountParcelsByStatusQueryResponse struct {
	Total    int64
	ByStatus map[parcel.Status]int64
}

// Count returns the number of parcels in status s.
func (r CountParcelsByStatusQueryResponse) Count(s parcel.Status) int64 {
	return r.ByStatus[s]
}
