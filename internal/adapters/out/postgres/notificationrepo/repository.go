package notificationrepo

import (
	"context"

	"logitrack/internal/core/domain/model/notification"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormNotificationRepository stores notification records. Rows are insert-only.
type GormNotificationRepository struct {
	db *gorm.DB
}

// NewGormNotificationRepository creates a repository on db, which may be a transaction.
func NewGormNotificationRepository(db *gorm.DB) *GormNotificationRepository {
	return &GormNotificationRepository{db: db}
}

// Add inserts the record. Re-adding an id already stored is a no-op, which
// keeps retried flushes from duplicating messages.
func (r *GormNotificationRepository) Add(ctx context.Context, n *notification.Notification) error {
	if err := n.Validate(); err != nil {
		return err
	}

	dto := fromDomain(n)
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(&dto).Error
}
