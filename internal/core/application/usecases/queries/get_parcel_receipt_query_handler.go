package queries

import (
	"context"
	"strings"
	"time"

	"logitrack/internal/core/domain/model/office"
)

// GetParcelReceiptQueryHandler builds the bill of supply record of a parcel.
type GetParcelReceiptQueryHandler struct {
	parcels ParcelReader
	offices OfficeLookup
	now     func() time.Time
}

// NewGetParcelReceiptQueryHandler creates a handler stamping receipts with the wall clock.
func NewGetParcelReceiptQueryHandler(parcels ParcelReader, offices OfficeLookup) GetParcelReceiptQueryHandler {
	return GetParcelReceiptQueryHandler{parcels: parcels, offices: offices, now: time.Now}
}

// WithClock returns a copy of the handler that stamps receipts with now.
func (h GetParcelReceiptQueryHandler) WithClock(now func() time.Time) GetParcelReceiptQueryHandler {
	h.now = now
	return h
}

// Handle returns the receipt. A source office missing from the directory is
// printed as office.UnknownOfficeName with empty city and code.
func (h GetParcelReceiptQueryHandler) Handle(
	ctx context.Context,
	query GetParcelReceiptQuery,
) (GetParcelReceiptQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetParcelReceiptQueryResponse{}, err
	}

	p, err := h.parcels.Get(ctx, query.ParcelID())
	if err != nil {
		return GetParcelReceiptQueryResponse{}, err
	}

	source := ReceiptOffice{Name: office.UnknownOfficeName}
	if o, lookupErr := h.offices.Lookup(ctx, p.SourceOfficeID()); lookupErr == nil {
		source = ReceiptOffice{Name: o.Name(), City: o.City(), Code: o.Code()}
	}

	return GetParcelReceiptQueryResponse{
		TrackingID:            p.TrackingID().String(),
		LRNumber:              p.TrackingID().Number(),
		BookedAt:              p.CreatedAt(),
		PrintedAt:             h.now().UTC(),
		Sender:                PartyView{Name: p.Sender().Name(), Phone: p.Sender().Phone()},
		Receiver:              PartyView{Name: p.Receiver().Name(), Phone: p.Receiver().Phone()},
		SourceOffice:          source,
		DestinationOfficeName: h.offices.Name(ctx, p.DestinationOfficeID()),
		GoodsType:             p.GoodsType(),
		Quantity:              p.Quantity(),
		Price:                 p.Price(),
		PaymentLabel:          p.PaymentMode().Label(),
		OperatorDisplayName:   operatorDisplayName(query.OperatorName()),
	}, nil
}

// operatorDisplayName is the first word of the operator name.
func operatorDisplayName(name string) string {
	fields := strings.Fields(name)
	if len(fields) == 0 {
		return SystemOperatorName
	}
	return fields[0]
}
