// Package cargorepo provides data transfer objects and mapping functions
// for cargo persistence. Cargo rows belong to a shipment through a foreign
// key with ON DELETE CASCADE, so removing a shipment removes its cargo at
// the database level without application involvement.
package cargorepo

import (
	"supplychain/internal/adapters/out/postgres/shipmentrepo"
	"supplychain/internal/core/domain/model/cargo"
	"supplychain/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// CargoDTO represents the database structure for persisting cargo items.
// The Shipment association exists only to let the migration create the
// cascading foreign key; it is never preloaded.
type CargoDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	ShipmentID  uuid.UUID `gorm:"type:uuid;not null;index"`
	CargoType   string    `gorm:"type:varchar(50)"`
	Description string    `gorm:"type:varchar(255)"`
	Value       *float64  `gorm:"type:numeric"`
	Weight      *float64  `gorm:"type:numeric"`
	WeightUnit  string    `gorm:"type:varchar(10)"`

	Shipment shipmentrepo.ShipmentDTO `gorm:"foreignKey:ShipmentID;constraint:OnDelete:CASCADE"`
}

// TableName overrides GORM's default naming to use "cargo".
func (CargoDTO) TableName() string {
	return "cargo"
}

func fromDomain(aggregate *cargo.Cargo) CargoDTO {
	return CargoDTO{
		ID:          aggregate.ID().Bytes(),
		ShipmentID:  aggregate.ShipmentID().Bytes(),
		CargoType:   aggregate.CargoType(),
		Description: aggregate.Description(),
		Value:       aggregate.Value(),
		Weight:      aggregate.Weight(),
		WeightUnit:  aggregate.WeightUnit(),
	}
}

func toDomain(dto CargoDTO) (*cargo.Cargo, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	shipmentID, err := kernel.UUIDFromBytes(dto.ShipmentID[:])
	if err != nil {
		return nil, err
	}

	return cargo.RestoreCargo(id, shipmentID, dto.CargoType, dto.Description, dto.Value, dto.Weight, dto.WeightUnit)
}
