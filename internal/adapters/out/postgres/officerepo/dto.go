package officerepo

import (
	"logitrack/internal/core/domain/model/office"
)

// OfficeDTO is the offices table row.
type OfficeDTO struct {
	ID   string `gorm:"type:varchar(64);primaryKey"`
	Name string `gorm:"type:varchar(255);not null"`
	City string `gorm:"type:varchar(255);not null"`
	Code string `gorm:"type:varchar(16);not null"`
}

func (OfficeDTO) TableName() string {
	return "offices"
}

func fromDomain(o *office.Office) OfficeDTO {
	return OfficeDTO{
		ID:   o.ID(),
		Name: o.Name(),
		City: o.City(),
		Code: o.Code(),
	}
}

func toDomain(dto OfficeDTO) (*office.Office, error) {
	return office.NewOffice(dto.ID, dto.Name, dto.City, dto.Code)
}
