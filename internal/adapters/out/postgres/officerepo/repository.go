package officerepo

import (
	"context"
	"errors"
	"strings"

	"logitrack/internal/core/domain/model/office"
	"logitrack/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormOfficeRepository stores the office directory.
type GormOfficeRepository struct {
	db *gorm.DB
}

// NewGormOfficeRepository creates a repository on db, which may be a transaction.
func NewGormOfficeRepository(db *gorm.DB) *GormOfficeRepository {
	return &GormOfficeRepository{db: db}
}

// Add inserts the office. A taken id returns errs.ObjectAlreadyExistError.
func (r *GormOfficeRepository) Add(ctx context.Context, o *office.Office) error {
	if err := o.Validate(); err != nil {
		return err
	}

	dto := fromDomain(o)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return errs.NewObjectAlreadyExistError("office", o.ID())
		}
		return err
	}
	return nil
}

// Get returns the office with id or errs.ObjectNotFoundError.
func (r *GormOfficeRepository) Get(ctx context.Context, id string) (*office.Office, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, errs.NewValueIsRequiredError("officeId")
	}

	var dto OfficeDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("office", id)
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAll returns every office ordered by id.
func (r *GormOfficeRepository) GetAll(ctx context.Context) ([]*office.Office, error) {
	var dtos []OfficeDTO
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&dtos).Error; err != nil {
		return nil, err
	}

	offices := make([]*office.Office, 0, len(dtos))
	for _, dto := range dtos {
		o, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		offices = append(offices, o)
	}
	return offices, nil
}
