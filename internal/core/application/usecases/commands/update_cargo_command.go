package commands

import (
	"errors"

	"supplychain/internal/core/domain/model/kernel"
	"supplychain/internal/pkg/guard"
)

// ErrUpdateCargoCommandIsNotConstructed is returned when the command was
// not created through NewUpdateCargoCommand.
var ErrUpdateCargoCommandIsNotConstructed = errors.New(
	"UpdateCargoCommand must be created via NewUpdateCargoCommand constructor",
)

// UpdateCargoCommand represents an update of a cargo item's descriptive
// fields. The shipment reference cannot be changed.
type UpdateCargoCommand struct { //nolint:recvcheck //using for validation
	cargoID     kernel.UUID
	cargoType   string
	description string
	value       *float64
	weight      *float64
	weightUnit  string

	guard guard.ConstructorGuard
}

// NewUpdateCargoCommand creates a command to update a cargo item. All
// descriptive fields are optional, so only the identifier is validated.
func NewUpdateCargoCommand(
	cargoID kernel.UUID,
	cargoType string,
	description string,
	value *float64,
	weight *float64,
	weightUnit string,
) (UpdateCargoCommand, error) {
	if err := cargoID.Validate(); err != nil {
		return UpdateCargoCommand{}, err
	}

	return UpdateCargoCommand{
		cargoID:     cargoID,
		cargoType:   cargoType,
		description: description,
		value:       value,
		weight:      weight,
		weightUnit:  weightUnit,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateCargoCommand) Validate() error {
	return c.guard.Validate(ErrUpdateCargoCommandIsNotConstructed)
}

// CargoID returns the identifier of the cargo item to update.
func (c UpdateCargoCommand) CargoID() kernel.UUID { return c.cargoID }

// CargoType returns the new cargo category label.
func (c UpdateCargoCommand) CargoType() string { return c.cargoType }

// Description returns the new description.
func (c UpdateCargoCommand) Description() string { return c.description }

// Value returns the new declared value, or nil.
func (c UpdateCargoCommand) Value() *float64 { return c.value }

// Weight returns the new weight, or nil.
func (c UpdateCargoCommand) Weight() *float64 { return c.weight }

// WeightUnit returns the new weight unit.
func (c UpdateCargoCommand) WeightUnit() string { return c.weightUnit }
