package commands

import (
	"errors"

	"supplychain/internal/core/domain/model/cargo"
	"supplychain/internal/core/domain/model/kernel"
	"supplychain/internal/pkg/guard"
)

// ErrCreateCargoCommandIsNotConstructed is returned when the command was
// not created through NewCreateCargoCommand.
var ErrCreateCargoCommandIsNotConstructed = errors.New(
	"CreateCargoCommand must be created via NewCreateCargoCommand constructor",
)

// CreateCargoCommand represents a request to register a cargo item on a
// shipment. Everything beyond the shipment reference is descriptive and
// optional.
type CreateCargoCommand struct { //nolint:recvcheck //using for validation
	cargoID     kernel.UUID
	shipmentID  kernel.UUID
	cargoType   string
	description string
	value       *float64
	weight      *float64
	weightUnit  string

	guard guard.ConstructorGuard
}

// NewCreateCargoCommand creates a command to register a cargo item.
func NewCreateCargoCommand(
	cargoID kernel.UUID,
	shipmentID kernel.UUID,
	cargoType string,
	description string,
	value *float64,
	weight *float64,
	weightUnit string,
) (CreateCargoCommand, error) {
	if _, err := cargo.NewCargo(cargoID, shipmentID, cargoType, description, value, weight, weightUnit); err != nil {
		return CreateCargoCommand{}, err
	}

	return CreateCargoCommand{
		cargoID:     cargoID,
		shipmentID:  shipmentID,
		cargoType:   cargoType,
		description: description,
		value:       value,
		weight:      weight,
		weightUnit:  weightUnit,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateCargoCommand) Validate() error {
	return c.guard.Validate(ErrCreateCargoCommandIsNotConstructed)
}

// CargoID returns the identifier for the new cargo item.
func (c CreateCargoCommand) CargoID() kernel.UUID { return c.cargoID }

// ShipmentID returns the owning shipment's identifier.
func (c CreateCargoCommand) ShipmentID() kernel.UUID { return c.shipmentID }

// CargoType returns the cargo category label.
func (c CreateCargoCommand) CargoType() string { return c.cargoType }

// Description returns the free-form description.
func (c CreateCargoCommand) Description() string { return c.description }

// Value returns the declared value, or nil.
func (c CreateCargoCommand) Value() *float64 { return c.value }

// Weight returns the weight, or nil.
func (c CreateCargoCommand) Weight() *float64 { return c.weight }

// WeightUnit returns the unit the weight is expressed in.
func (c CreateCargoCommand) WeightUnit() string { return c.weightUnit }
