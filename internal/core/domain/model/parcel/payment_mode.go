package parcel

import (
	"fmt"

	"logitrack/internal/pkg/errs"
)

// PaymentMode tells who pays for the shipment.
type PaymentMode int

const (
	UnknownPaymentMode PaymentMode = iota
	// SenderPays means the freight was paid at booking.
	SenderPays
	// CollectOnDelivery means the receiver pays when collecting.
	CollectOnDelivery
)

var paymentModeNames = map[PaymentMode]string{
	UnknownPaymentMode: "UNKNOWN",
	SenderPays:         "SENDER_PAYS",
	CollectOnDelivery:  "COLLECT_ON_DELIVERY",
}

// PaymentModeFromString parses a payment mode wire name.
func PaymentModeFromString(s string) (PaymentMode, error) {
	for mode, name := range paymentModeNames {
		if mode != UnknownPaymentMode && name == s {
			return mode, nil
		}
	}
	return UnknownPaymentMode, errs.NewValueIsInvalidErrorWithCause(
		"paymentMode",
		fmt.Errorf("%q is not a known payment mode", s),
	)
}

func (m PaymentMode) String() string {
	if name, ok := paymentModeNames[m]; ok {
		return name
	}
	return paymentModeNames[UnknownPaymentMode]
}

// Validate rejects unknown payment modes.
func (m PaymentMode) Validate() error {
	if m != SenderPays && m != CollectOnDelivery {
		return errs.NewValueIsInvalidErrorWithCause("paymentMode", fmt.Errorf("%d is not a valid payment mode", m))
	}
	return nil
}

// Label is the text printed on receipts: "PAID" when the sender paid, "TO PAY" otherwise.
func (m PaymentMode) Label() string {
	if m == SenderPays {
		return "PAID"
	}
	return "TO PAY"
}
