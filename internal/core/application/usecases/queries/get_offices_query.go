package queries

import (
	"errors"

	"logitrack/internal/pkg/guard"
)

var ErrGetOfficesQueryIsNotConstructed = errors.New(
	"GetOfficesQuery must be created via NewGetOfficesQuery constructor",
)

// GetOfficesQuery lists the whole office directory.
type GetOfficesQuery struct {
	guard guard.ConstructorGuard
}

// NewGetOfficesQuery creates the query.
func NewGetOfficesQuery() GetOfficesQuery {
	return GetOfficesQuery{guard: guard.NewConstructorGuard()}
}

// Validate reports whether the query was built by NewGetOfficesQuery.
func (q GetOfficesQuery) Validate() error {
	return q.guard.Validate(ErrGetOfficesQueryIsNotConstructed)
}

// GetOfficesQueryResponse is one directory entry.
type GetOfficesQueryResponse struct {
	ID   string
	Name string
	City string
	Code string
}
