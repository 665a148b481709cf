// Package cargo contains the Cargo entity: an item carried by a shipment.
// Cargo is exclusively owned by its shipment; rows are cascade-deleted at
// the storage layer when the parent shipment is removed.
package cargo

import (
	"errors"

	"supplychain/internal/core/domain/model/kernel"
	"supplychain/internal/pkg/errs"
)

// ErrCargoIsNotConstructed is returned when a Cargo instance was not
// created through NewCargo or RestoreCargo.
var ErrCargoIsNotConstructed = errors.New("Cargo must be created via NewCargo or RestoreCargo")

// Cargo is a single item inside a shipment. All descriptive fields are
// optional; only the owning shipment reference is required.
type Cargo struct {
	id          kernel.UUID
	shipmentID  kernel.UUID
	cargoType   string
	description string
	value       *float64
	weight      *float64
	weightUnit  string

	isConstructed bool
}

// NewCargo creates a validated Cargo item owned by a shipment.
func NewCargo(
	id kernel.UUID,
	shipmentID kernel.UUID,
	cargoType string,
	description string,
	value *float64,
	weight *float64,
	weightUnit string,
) (*Cargo, error) {
	c := &Cargo{
		isConstructed: true,
	}

	if err := id.Validate(); err != nil {
		return nil, err
	}
	if err := shipmentID.Validate(); err != nil {
		return nil, errs.NewValueIsRequiredErrorWithCause("shipmentId", err)
	}

	c.id = id
	c.shipmentID = shipmentID
	c.cargoType = cargoType
	c.description = description
	c.value = value
	c.weight = weight
	c.weightUnit = weightUnit
	return c, nil
}

// RestoreCargo reconstructs a Cargo item from persistence.
func RestoreCargo(
	id kernel.UUID,
	shipmentID kernel.UUID,
	cargoType string,
	description string,
	value *float64,
	weight *float64,
	weightUnit string,
) (*Cargo, error) {
	return NewCargo(id, shipmentID, cargoType, description, value, weight, weightUnit)
}

// Validate ensures the Cargo was created through a constructor.
func (c *Cargo) Validate() error {
	if c == nil || !c.isConstructed {
		return ErrCargoIsNotConstructed
	}
	return nil
}

// ID returns the cargo item's unique identifier.
func (c *Cargo) ID() kernel.UUID { return c.id }

// ShipmentID returns the owning shipment's identifier.
func (c *Cargo) ShipmentID() kernel.UUID { return c.shipmentID }

// CargoType returns the item classification (e.g. Electronics).
func (c *Cargo) CargoType() string { return c.cargoType }

// Description returns the free-form item description.
func (c *Cargo) Description() string { return c.description }

// Value returns the declared value, or nil.
func (c *Cargo) Value() *float64 { return c.value }

// Weight returns the item weight, or nil.
func (c *Cargo) Weight() *float64 { return c.weight }

// WeightUnit returns the unit of Weight (kg, lbs, tons).
func (c *Cargo) WeightUnit() string { return c.weightUnit }

// ApplyUpdate replaces the descriptive fields. The owning shipment
// reference is fixed for the item's lifetime.
func (c *Cargo) ApplyUpdate(cargoType, description string, value, weight *float64, weightUnit string) {
	c.cargoType = cargoType
	c.description = description
	c.value = value
	c.weight = weight
	c.weightUnit = weightUnit
}
