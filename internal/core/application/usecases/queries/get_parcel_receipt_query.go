package queries

import (
	"errors"
	"strings"
	"time"

	"logitrack/internal/core/domain/model/kernel"
	"logitrack/internal/pkg/guard"
)

// SystemOperatorName is printed on receipts requested without an operator name.
const SystemOperatorName = "SYS"

var ErrGetParcelReceiptQueryIsNotConstructed = errors.New(
	"GetParcelReceiptQuery must be created via NewGetParcelReceiptQuery constructor",
)

// GetParcelReceiptQuery builds the bill of supply for one parcel. The
// operator name is the person printing it and may be empty.
type GetParcelReceiptQuery struct {
	parcelID     kernel.UUID
	operatorName string

	guard guard.ConstructorGuard
}

// NewGetParcelReceiptQuery requires a parcel id. An empty operatorName prints as
// SystemOperatorName.
func NewGetParcelReceiptQuery(parcelID kernel.UUID, operatorName string) (GetParcelReceiptQuery, error) {
	if err := parcelID.Validate(); err != nil {
		return GetParcelReceiptQuery{}, err
	}
	return GetParcelReceiptQuery{
		parcelID:     parcelID,
		operatorName: strings.TrimSpace(operatorName),
		guard:        guard.NewConstructorGuard(),
	}, nil
}

// Validate reports whether the query was built by NewGetParcelReceiptQuery.
func (q GetParcelReceiptQuery) Validate() error {
	return q.guard.Validate(ErrGetParcelReceiptQueryIsNotConstructed)
}

func (q GetParcelReceiptQuery) ParcelID() kernel.UUID { return q.parcelID }
func (q GetParcelReceiptQuery) OperatorName() string  { return q.operatorName }

// ReceiptOffice is the source office block of a receipt.
type ReceiptOffice struct {
	Name string
	City string
	Code string
}

// GetParcelReceiptQueryResponse is the receipt record. Layout is left to the
// consumer.
type GetParcelReceiptQueryResponse struct {
	TrackingID            string
	LRNumber              string
	BookedAt              time.Time
	PrintedAt             time.Time
	Sender                PartyView
	Receiver              PartyView
	SourceOffice          ReceiptOffice
	DestinationOfficeName string
	GoodsType             string
	Quantity              int
	Price                 float64
	PaymentLabel          string
	OperatorDisplayName   string
}
