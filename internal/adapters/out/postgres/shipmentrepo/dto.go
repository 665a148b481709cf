// Package shipmentrepo provides data transfer objects and mapping functions
// for shipment persistence. Implements the repository pattern for the
// shipment aggregate, converting between domain entities and database rows.
package shipmentrepo

import (
	"time"

	"supplychain/internal/core/domain/model/kernel"
	"supplychain/internal/core/domain/model/shipment"

	"github.com/google/uuid"
)

// ShipmentDTO represents the database structure for persisting shipment
// aggregates. Statuses are stored as their string names so rows stay
// readable in ad-hoc queries. Route and vendor are weak references, no
// foreign keys: removing a route or vendor leaves shipments untouched.
// The timestamps are store-managed; CreatedAt is write-once and excluded
// from updates so Save cannot zero it.
type ShipmentDTO struct {
	ID                uuid.UUID  `gorm:"type:uuid;primaryKey"`
	Origin            string     `gorm:"type:varchar(100);not null"`
	Destination       string     `gorm:"type:varchar(100);not null"`
	Status            string     `gorm:"type:varchar(20);not null"`
	EstimatedDelivery *time.Time `gorm:"type:timestamptz"`
	RouteID           *uuid.UUID `gorm:"type:uuid;index"`
	VendorID          *uuid.UUID `gorm:"type:uuid;index"`
	CreatedAt         time.Time  `gorm:"type:timestamptz;autoCreateTime;<-:create"`
	UpdatedAt         time.Time  `gorm:"type:timestamptz;autoUpdateTime"`
}

// TableName overrides GORM's default naming to use "shipments".
func (ShipmentDTO) TableName() string {
	return "shipments"
}

// fromDomain converts a shipment aggregate to its database representation.
func fromDomain(aggregate *shipment.Shipment) ShipmentDTO {
	var routeID, vendorID *uuid.UUID
	if aggregate.RouteID() != nil {
		raw := aggregate.RouteID().Bytes()
		routeID = &raw
	}
	if aggregate.VendorID() != nil {
		raw := aggregate.VendorID().Bytes()
		vendorID = &raw
	}

	return ShipmentDTO{
		ID:                aggregate.ID().Bytes(),
		Origin:            aggregate.Origin(),
		Destination:       aggregate.Destination(),
		Status:            aggregate.Status().String(),
		EstimatedDelivery: aggregate.EstimatedDelivery(),
		RouteID:           routeID,
		VendorID:          vendorID,
	}
}

// toDomain converts a database DTO to a shipment aggregate using
// RestoreShipment, so corrupt rows fail loudly on load.
func toDomain(dto ShipmentDTO) (*shipment.Shipment, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	status, err := shipment.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	routeID, err := optionalUUID(dto.RouteID)
	if err != nil {
		return nil, err
	}
	vendorID, err := optionalUUID(dto.VendorID)
	if err != nil {
		return nil, err
	}

	return shipment.RestoreShipment(id, dto.Origin, dto.Destination, status, dto.EstimatedDelivery, routeID, vendorID)
}

func optionalUUID(raw *uuid.UUID) (*kernel.UUID, error) {
	if raw == nil {
		return nil, nil //nolint:nilnil //nil means the reference is unset
	}
	id, err := kernel.UUIDFromBytes((*raw)[:])
	if err != nil {
		return nil, err
	}
	return &id, nil
}
