package queries

import (
	"context"

	"logitrack/internal/core/domain/model/parcel"

	"gorm.io/gorm"
)

// CountParcelsByStatusQueryHandler backs the office dashboard statistics and
// the parcel status gauge.
type CountParcelsByStatusQueryHandler struct {
	db *gorm.DB
}

// NewCountParcelsByStatusQueryHandler creates a handler reading db directly.
func NewCountParcelsByStatusQueryHandler(db *gorm.DB) CountParcelsByStatusQueryHandler {
	return CountParcelsByStatusQueryHandler{db: db}
}

// Handle returns the total and per-status counts. Every progression status is
// present, zero when no parcel has it.
func (h CountParcelsByStatusQueryHandler) Handle(
	ctx context.Context,
	query CountParcelsByStatusQuery,
) (CountParcelsByStatusQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return CountParcelsByStatusQueryResponse{}, err
	}

	resp := CountParcelsByStatusQueryResponse{ByStatus: make(map[parcel.Status]int64)}
	for _, s := range parcel.Progression() {
		resp.ByStatus[s] = 0
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT status, COUNT(*)
		FROM parcels
		WHERE @office = '' OR source_office_id = @office OR destination_office_id = @office
		GROUP BY status
	`, map[string]any{"office": query.OfficeID()}).Rows()
	if err != nil {
		return CountParcelsByStatusQueryResponse{}, err
	}
	defer rows.Close()

	for rows.Next() {
		var name string
		var count int64
		if err = rows.Scan(&name, &count); err != nil {
			return CountParcelsByStatusQueryResponse{}, err
		}

		status, statusErr := parcel.StatusFromString(name)
		if statusErr != nil {
			continue
		}
		resp.ByStatus[status] = count
		resp.Total += count
	}

	if err = rows.Err(); err != nil {
		return CountParcelsByStatusQueryResponse{}, err
	}

	return resp, nil
}
