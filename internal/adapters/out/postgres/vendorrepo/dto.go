// Package vendorrepo provides data transfer objects and mapping functions
// for vendor persistence. Vendor names carry a unique index.
package vendorrepo

import (
	"supplychain/internal/core/domain/model/kernel"
	"supplychain/internal/core/domain/model/vendor"

	"github.com/google/uuid"
)

// VendorDTO represents the database structure for persisting vendors.
type VendorDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name        string    `gorm:"type:varchar(100);not null;uniqueIndex"`
	ContactInfo string    `gorm:"type:varchar(255);not null"`
	ServiceType string    `gorm:"type:varchar(50);not null"`
	IsActive    bool      `gorm:"not null"`
}

// TableName overrides GORM's default naming to use "vendors".
func (VendorDTO) TableName() string {
	return "vendors"
}

func fromDomain(aggregate *vendor.Vendor) VendorDTO {
	return VendorDTO{
		ID:          aggregate.ID().Bytes(),
		Name:        aggregate.Name(),
		ContactInfo: aggregate.ContactInfo(),
		ServiceType: aggregate.ServiceType().String(),
		IsActive:    aggregate.IsActive(),
	}
}

func toDomain(dto VendorDTO) (*vendor.Vendor, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	serviceType, err := vendor.ServiceTypeFromString(dto.ServiceType)
	if err != nil {
		return nil, err
	}

	return vendor.RestoreVendor(id, dto.Name, dto.ContactInfo, serviceType, dto.IsActive)
}
