// Package queries contains the read operations of the service. Handlers that
// need the full aggregate go through the parcel registry; list and statistics
// handlers read the tables directly with SQL.
package queries

import (
	"context"
	"time"

	"logitrack/internal/core/domain/model/kernel"
	"logitrack/internal/core/domain/model/office"
	"logitrack/internal/core/domain/model/parcel"
)

// DefaultListLimit and MaxListLimit bound list queries.
const (
	DefaultListLimit = 50
	MaxListLimit     = 500
)

type (
	// ParcelReader loads parcel aggregates outside a transaction.
	ParcelReader interface {
		Get(ctx context.Context, id kernel.UUID) (*parcel.Parcel, error)
		GetByTrackingID(ctx context.Context, trackingID kernel.TrackingID) (*parcel.Parcel, error)
	}

	// OfficeLookup resolves offices for display. Name soft-fails to
	// office.UnknownOfficeName.
	OfficeLookup interface {
		Name(ctx context.Context, officeID string) string
		Lookup(ctx context.Context, officeID string) (*office.Office, error)
	}
)

// PartyView is a sender or receiver.
type PartyView struct {
	Name  string
	Phone string
}

// HistoryEntryView is one tracking event.
type HistoryEntryView struct {
	Status    string
	Timestamp time.Time
	Location  string
	Note      string
}

// ParcelView is the full read model of one parcel, history included.
type ParcelView struct {
	ID                    kernel.UUID
	TrackingID            string
	Sender                PartyView
	Receiver              PartyView
	SourceOfficeID        string
	SourceOfficeName      string
	DestinationOfficeID   string
	DestinationOfficeName string
	GoodsType             string
	Quantity              int
	Price                 float64
	PaymentMode           string
	Status                string
	CreatedAt             time.Time
	History               []HistoryEntryView
}

// NewParcelView flattens p, resolving office names through offices.
func NewParcelView(ctx context.Context, p *parcel.Parcel, offices OfficeLookup) ParcelView {
	history := p.History()
	entries := make([]HistoryEntryView, 0, len(history))
	for _, e := range history {
		entries = append(entries, HistoryEntryView{
			Status:    e.Status().String(),
			Timestamp: e.Timestamp(),
			Location:  e.Location(),
			Note:      e.Note(),
		})
	}

	return ParcelView{
		ID:                    p.ID(),
		TrackingID:            p.TrackingID().String(),
		Sender:                PartyView{Name: p.Sender().Name(), Phone: p.Sender().Phone()},
		Receiver:              PartyView{Name: p.Receiver().Name(), Phone: p.Receiver().Phone()},
		SourceOfficeID:        p.SourceOfficeID(),
		SourceOfficeName:      offices.Name(ctx, p.SourceOfficeID()),
		DestinationOfficeID:   p.DestinationOfficeID(),
		DestinationOfficeName: offices.Name(ctx, p.DestinationOfficeID()),
		GoodsType:             p.GoodsType(),
		Quantity:              p.Quantity(),
		Price:                 p.Price(),
		PaymentMode:           p.PaymentMode().String(),
		Status:                p.Status().String(),
		CreatedAt:             p.CreatedAt(),
		History:               entries,
	}
}

func clampLimit(limit int) int {
	switch {
	case limit <= 0:
		return DefaultListLimit
	case limit > MaxListLimit:
		return MaxListLimit
	default:
		return limit
	}
}
