package ports

import (
	"context"

	"logitrack/internal/core/domain/model/notification"
)

// NotificationRepository records composed notifications. Records are never updated.
type NotificationRepository interface {
	Add(ctx context.Context, n *notification.Notification) error
}
