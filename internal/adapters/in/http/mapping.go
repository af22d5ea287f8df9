package http

import (
	"errors"

	"logitrack/internal/core/application/usecases/queries"
	"logitrack/internal/core/domain/model/parcel"
	"logitrack/internal/generated/servers"
)

func shipmentFromRequest(body servers.NewParcel) (parcel.Shipment, error) {
	sender, senderErr := parcel.NewParty("sender", body.Sender.Name, body.Sender.Phone)
	receiver, receiverErr := parcel.NewParty("receiver", body.Receiver.Name, body.Receiver.Phone)
	mode, modeErr := parcel.PaymentModeFromString(string(body.PaymentMode))
	if err := errors.Join(senderErr, receiverErr, modeErr); err != nil {
		return parcel.Shipment{}, err
	}

	return parcel.Shipment{
		Sender:              sender,
		Receiver:            receiver,
		SourceOfficeID:      body.SourceOfficeId,
		DestinationOfficeID: body.DestinationOfficeId,
		GoodsType:           body.GoodsType,
		Quantity:            body.Quantity,
		Price:               body.Price,
		PaymentMode:         mode,
	}, nil
}

func parcelResponse(v queries.ParcelView) servers.Parcel {
	history := make([]servers.TrackingEvent, len(v.History))
	for i, e := range v.History {
		history[i] = servers.TrackingEvent{
			Status:    servers.Status(e.Status),
			Timestamp: e.Timestamp,
			Location:  e.Location,
		}
		if e.Note != "" {
			note := e.Note
			history[i].Note = &note
		}
	}

	return servers.Parcel{
		Id:                    v.ID.Bytes(),
		TrackingId:            v.TrackingID,
		Sender:                servers.Party{Name: v.Sender.Name, Phone: v.Sender.Phone},
		Receiver:              servers.Party{Name: v.Receiver.Name, Phone: v.Receiver.Phone},
		SourceOfficeId:        v.SourceOfficeID,
		SourceOfficeName:      v.SourceOfficeName,
		DestinationOfficeId:   v.DestinationOfficeID,
		DestinationOfficeName: v.DestinationOfficeName,
		GoodsType:             v.GoodsType,
		Quantity:              v.Quantity,
		Price:                 v.Price,
		PaymentMode:           servers.PaymentMode(v.PaymentMode),
		Status:                servers.Status(v.Status),
		CreatedAt:             v.CreatedAt,
		History:               history,
	}
}

func parcelSummaryResponse(item queries.ListParcelsQueryResponse) servers.ParcelSummary {
	return servers.ParcelSummary{
		Id:                  item.ID.Bytes(),
		TrackingId:          item.TrackingID,
		SenderName:          item.SenderName,
		ReceiverName:        item.ReceiverName,
		SourceOfficeId:      item.SourceOfficeID,
		DestinationOfficeId: item.DestinationOfficeID,
		GoodsType:           item.GoodsType,
		Price:               item.Price,
		PaymentMode:         servers.PaymentMode(item.PaymentMode),
		Status:              servers.Status(item.Status),
		CreatedAt:           item.CreatedAt,
		LastUpdatedAt:       item.LastUpdatedAt,
	}
}

func receiptResponse(r queries.GetParcelReceiptQueryResponse) servers.Receipt {
	return servers.Receipt{
		TrackingId:            r.TrackingID,
		LrNumber:              r.LRNumber,
		BookedAt:              r.BookedAt,
		PrintedAt:             r.PrintedAt,
		Sender:                servers.Party{Name: r.Sender.Name, Phone: r.Sender.Phone},
		Receiver:              servers.Party{Name: r.Receiver.Name, Phone: r.Receiver.Phone},
		SourceOffice:          servers.ReceiptOffice{Name: r.SourceOffice.Name, City: r.SourceOffice.City, Code: r.SourceOffice.Code},
		DestinationOfficeName: r.DestinationOfficeName,
		GoodsType:             r.GoodsType,
		Quantity:              r.Quantity,
		Price:                 r.Price,
		PaymentLabel:          servers.ReceiptPaymentLabel(r.PaymentLabel),
		Operator:              r.OperatorDisplayName,
	}
}

