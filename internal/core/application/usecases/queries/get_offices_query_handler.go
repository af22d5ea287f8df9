package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetOfficesQueryHandler lists the office directory ordered by id.
type GetOfficesQueryHandler struct {
	db *gorm.DB
}

// NewGetOfficesQueryHandler creates a handler reading db directly.
func NewGetOfficesQueryHandler(db *gorm.DB) GetOfficesQueryHandler {
	return GetOfficesQueryHandler{db: db}
}

// Handle returns every office ordered by id.
func (h GetOfficesQueryHandler) Handle(ctx context.Context, query GetOfficesQuery) ([]GetOfficesQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	offices := make([]GetOfficesQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT id, name, city, code
		FROM offices
		ORDER BY id
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var resp GetOfficesQueryResponse
		if err = rows.Scan(&resp.ID, &resp.Name, &resp.City, &resp.Code); err != nil {
			return nil, err
		}
		offices = append(offices, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return offices, nil
}
