// Package deliveryrepo provides data transfer objects and mapping functions
// for delivery persistence. The deliveries table carries a unique index on
// shipment_id: the one-delivery-per-shipment invariant is enforced here, at
// the storage layer, so concurrent materializations cannot slip past the
// application-level existence check.
package deliveryrepo

import (
	"time"

	"supplychain/internal/core/domain/model/delivery"
	"supplychain/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// DeliveryDTO represents the database structure for persisting delivery
// records. CreatedAt is store-managed, write-once and excluded from
// updates.
type DeliveryDTO struct {
	ID                 uuid.UUID  `gorm:"type:uuid;primaryKey"`
	ShipmentID         uuid.UUID  `gorm:"type:uuid;not null;uniqueIndex"`
	ActualDeliveryDate *time.Time `gorm:"type:timestamptz"`
	Recipient          string     `gorm:"type:varchar(100);not null"`
	Status             string     `gorm:"type:varchar(20);not null"`
	CreatedAt          time.Time  `gorm:"type:timestamptz;autoCreateTime;<-:create"`
}

// TableName overrides GORM's default naming to use "deliveries".
func (DeliveryDTO) TableName() string {
	return "deliveries"
}

// fromDomain converts a delivery aggregate to its database representation.
func fromDomain(aggregate *delivery.Delivery) DeliveryDTO {
	return DeliveryDTO{
		ID:                 aggregate.ID().Bytes(),
		ShipmentID:         aggregate.ShipmentID().Bytes(),
		ActualDeliveryDate: aggregate.ActualDeliveryDate(),
		Recipient:          aggregate.Recipient(),
		Status:             aggregate.Status().String(),
	}
}

// toDomain converts a database DTO to a delivery aggregate.
func toDomain(dto DeliveryDTO) (*delivery.Delivery, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	shipmentID, err := kernel.UUIDFromBytes(dto.ShipmentID[:])
	if err != nil {
		return nil, err
	}

	status, err := delivery.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	return delivery.RestoreDelivery(id, shipmentID, dto.ActualDeliveryDate, dto.Recipient, status)
}
