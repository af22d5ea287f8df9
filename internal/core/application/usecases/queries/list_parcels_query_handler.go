package queries

import (
	"context"

	"logitrack/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ListParcelsQueryHandler reads the parcel list straight from the parcels and
// tracking_events tables. Ties on creation time are broken by tracking id so
// pages are stable.
type ListParcelsQueryHandler struct {
	db *gorm.DB
}

// NewListParcelsQueryHandler creates a handler reading db directly.
func NewListParcelsQueryHandler(db *gorm.DB) ListParcelsQueryHandler {
	return ListParcelsQueryHandler{db: db}
}

// Handle returns parcel summaries newest first.
func (h ListParcelsQueryHandler) Handle(
	ctx context.Context,
	query ListParcelsQuery,
) ([]ListParcelsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	parcels := make([]ListParcelsQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			p.id,
			p.tracking_id,
			p.sender_name,
			p.receiver_name,
			p.source_office_id,
			p.destination_office_id,
			p.goods_type,
			p.price,
			p.payment_mode,
			p.status,
			p.created_at,
			COALESCE(
				(SELECT MAX(e.occurred_at) FROM tracking_events e WHERE e.parcel_id = p.id),
				p.created_at
			) AS last_updated_at
		FROM parcels p
		WHERE @office = '' OR p.source_office_id = @office OR p.destination_office_id = @office
		ORDER BY p.created_at DESC, p.tracking_id DESC
		LIMIT @limit
	`, map[string]any{"office": query.OfficeID(), "limit": query.Limit()}).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var resp ListParcelsQueryResponse
		var id uuid.UUID

		err = rows.Scan(
			&id,
			&resp.TrackingID,
			&resp.SenderName,
			&resp.ReceiverName,
			&resp.SourceOfficeID,
			&resp.DestinationOfficeID,
			&resp.GoodsType,
			&resp.Price,
			&resp.PaymentMode,
			&resp.Status,
			&resp.CreatedAt,
			&resp.LastUpdatedAt,
		)
		if err != nil {
			return nil, err
		}

		parcelID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		resp.ID = parcelID
		parcels = append(parcels, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return parcels, nil
}
