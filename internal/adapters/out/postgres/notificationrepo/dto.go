package notificationrepo

import (
	"time"

	"logitrack/internal/core/domain/model/notification"

	"github.com/google/uuid"
)

// NotificationDTO is the notifications table row.
type NotificationDTO struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	ParcelID   uuid.UUID `gorm:"type:uuid;not null;index"`
	TrackingID string    `gorm:"type:varchar(16);not null;index"`
	Recipient  string    `gorm:"type:varchar(16);not null"`
	Phone      string    `gorm:"type:varchar(32);not null"`
	Message    string    `gorm:"type:text;not null"`
	CreatedAt  time.Time `gorm:"not null;index"`
}

func (NotificationDTO) TableName() string {
	return "notifications"
}

func fromDomain(n *notification.Notification) NotificationDTO {
	return NotificationDTO{
		ID:         n.ID().Bytes(),
		ParcelID:   n.ParcelID().Bytes(),
		TrackingID: n.TrackingID().String(),
		Recipient:  n.Recipient().String(),
		Phone:      n.Phone(),
		Message:    n.Message(),
		CreatedAt:  n.CreatedAt(),
	}
}
