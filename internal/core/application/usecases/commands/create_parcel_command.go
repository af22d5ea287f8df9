package commands

import (
	"errors"
	"strings"

	"logitrack/internal/core/domain/model/parcel"
	"logitrack/internal/pkg/errs"
	"logitrack/internal/pkg/guard"
)

var ErrCreateParcelCommandIsNotConstructed = errors.New(
	"CreateParcelCommand must be created via NewCreateParcelCommand constructor",
)

// CreateParcelCommand books a new parcel at its source office.
//
// Example:
//
//	sender, _ := parcel.NewParty("sender", "Alice", "555-0100")
//	receiver, _ := parcel.NewParty("receiver", "Bob", "555-0199")
//	cmd, err := NewCreateParcelCommand(parcel.Shipment{
//	    Sender: sender, Receiver: receiver,
//	    SourceOfficeID: "off_1", DestinationOfficeID: "off_2",
//	    GoodsType: "Documents", Quantity: 1, Price: 12.5,
//	    PaymentMode: parcel.SenderPays,
//	})
//	p, err := handler.Handle(ctx, cmd)
//	fmt.Println(p.TrackingID()) // TRK-482913
type CreateParcelCommand struct { //nolint:recvcheck //using for validation
	shipment parcel.Shipment

	guard guard.ConstructorGuard
}

// NewCreateParcelCommand checks the request shape. Business rules such as
// distinct offices and positive quantity are enforced by the parcel aggregate.
func NewCreateParcelCommand(shipment parcel.Shipment) (CreateParcelCommand, error) {
	cmd := CreateParcelCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setShipment(shipment); err != nil {
		return CreateParcelCommand{}, err
	}

	return cmd, nil
}

// Validate reports whether the command was built by NewCreateParcelCommand.
func (c CreateParcelCommand) Validate() error {
	return c.guard.Validate(ErrCreateParcelCommandIsNotConstructed)
}

// Shipment returns the normalized booking details.
func (c CreateParcelCommand) Shipment() parcel.Shipment {
	return c.shipment
}

func (c *CreateParcelCommand) setShipment(s parcel.Shipment) error {
	s.SourceOfficeID = strings.TrimSpace(s.SourceOfficeID)
	s.DestinationOfficeID = strings.TrimSpace(s.DestinationOfficeID)

	var errList []error
	if s.Sender.IsZero() {
		errList = append(errList, errs.NewValueIsRequiredError("sender"))
	}
	if s.Receiver.IsZero() {
		errList = append(errList, errs.NewValueIsRequiredError("receiver"))
	}
	if s.SourceOfficeID == "" {
		errList = append(errList, errs.NewValueIsRequiredError("sourceOfficeId"))
	}
	if s.DestinationOfficeID == "" {
		errList = append(errList, errs.NewValueIsRequiredError("destinationOfficeId"))
	}
	if err := errors.Join(errList...); err != nil {
		return err
	}

	c.shipment = s
	return nil
}
