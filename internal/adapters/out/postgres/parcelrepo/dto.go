package parcelrepo

import (
	"errors"
	"time"

	"logitrack/internal/core/domain/model/kernel"
	"logitrack/internal/core/domain/model/parcel"

	"github.com/google/uuid"
)

// ParcelDTO is the parcels row. Status and payment mode are stored by wire name
// so read-model queries can return them as-is.
type ParcelDTO struct {
	ID                  uuid.UUID          `gorm:"type:uuid;primaryKey"`
	TrackingID          string             `gorm:"type:varchar(16);not null;uniqueIndex"`
	SenderName          string             `gorm:"type:varchar(255);not null"`
	SenderPhone         string             `gorm:"type:varchar(32);not null"`
	ReceiverName        string             `gorm:"type:varchar(255);not null"`
	ReceiverPhone       string             `gorm:"type:varchar(32);not null"`
	SourceOfficeID      string             `gorm:"type:varchar(64);not null;index"`
	DestinationOfficeID string             `gorm:"type:varchar(64);not null;index"`
	GoodsType           string             `gorm:"type:varchar(255);not null"`
	Quantity            int                `gorm:"type:int;not null"`
	Price               float64            `gorm:"type:double precision;not null"`
	PaymentMode         string             `gorm:"type:varchar(32);not null"`
	Status              string             `gorm:"type:varchar(32);not null;index"`
	CreatedAt           time.Time          `gorm:"not null;index"`
	Events              []TrackingEventDTO `gorm:"foreignKey:ParcelID;constraint:OnDelete:CASCADE"`
}

func (ParcelDTO) TableName() string {
	return "parcels"
}

// TrackingEventDTO is one history row. (parcel_id, seq) is the insertion order.
type TrackingEventDTO struct {
	ParcelID   uuid.UUID `gorm:"type:uuid;primaryKey"`
	Seq        int       `gorm:"primaryKey;autoIncrement:false"`
	Status     string    `gorm:"type:varchar(32);not null"`
	OccurredAt time.Time `gorm:"not null"`
	Location   string    `gorm:"type:varchar(255);not null"`
	Note       string    `gorm:"type:text;not null;default:''"`
}

func (TrackingEventDTO) TableName() string {
	return "tracking_events"
}

func fromDomain(p *parcel.Parcel) ParcelDTO {
	parcelID := p.ID().Bytes()
	history := p.History()
	events := make([]TrackingEventDTO, 0, len(history))
	for i, e := range history {
		events = append(events, TrackingEventDTO{
			ParcelID:   parcelID,
			Seq:        i,
			Status:     e.Status().String(),
			OccurredAt: e.Timestamp(),
			Location:   e.Location(),
			Note:       e.Note(),
		})
	}

	return ParcelDTO{
		ID:                  parcelID,
		TrackingID:          p.TrackingID().String(),
		SenderName:          p.Sender().Name(),
		SenderPhone:         p.Sender().Phone(),
		ReceiverName:        p.Receiver().Name(),
		ReceiverPhone:       p.Receiver().Phone(),
		SourceOfficeID:      p.SourceOfficeID(),
		DestinationOfficeID: p.DestinationOfficeID(),
		GoodsType:           p.GoodsType(),
		Quantity:            p.Quantity(),
		Price:               p.Price(),
		PaymentMode:         p.PaymentMode().String(),
		Status:              p.Status().String(),
		CreatedAt:           p.CreatedAt(),
		Events:              events,
	}
}

func toDomain(dto ParcelDTO) (*parcel.Parcel, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	trackingID, err := kernel.TrackingIDFromString(dto.TrackingID)
	if err != nil {
		return nil, err
	}

	sender, senderErr := parcel.NewParty("sender", dto.SenderName, dto.SenderPhone)
	receiver, receiverErr := parcel.NewParty("receiver", dto.ReceiverName, dto.ReceiverPhone)
	paymentMode, paymentErr := parcel.PaymentModeFromString(dto.PaymentMode)
	status, statusErr := parcel.StatusFromString(dto.Status)
	if err := errors.Join(senderErr, receiverErr, paymentErr, statusErr); err != nil {
		return nil, err
	}

	history := make([]parcel.TrackingEvent, 0, len(dto.Events))
	for _, eventDTO := range dto.Events {
		e, eventErr := trackingEventToDomain(eventDTO)
		if eventErr != nil {
			return nil, eventErr
		}
		history = append(history, e)
	}

	return parcel.RestoreParcel(id, trackingID, parcel.Shipment{
		Sender:              sender,
		Receiver:            receiver,
		SourceOfficeID:      dto.SourceOfficeID,
		DestinationOfficeID: dto.DestinationOfficeID,
		GoodsType:           dto.GoodsType,
		Quantity:            dto.Quantity,
		Price:               dto.Price,
		PaymentMode:         paymentMode,
	}, dto.CreatedAt, status, history)
}

func trackingEventToDomain(dto TrackingEventDTO) (parcel.TrackingEvent, error) {
	status, err := parcel.StatusFromString(dto.Status)
	if err != nil {
		return parcel.TrackingEvent{}, err
	}
	return parcel.NewTrackingEvent(status, dto.OccurredAt, dto.Location, dto.Note)
}
