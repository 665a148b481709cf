package commands

import (
	"errors"

	"supplychain/internal/core/domain/model/kernel"
	"supplychain/internal/pkg/guard"
)

// ErrDeleteCargoCommandIsNotConstructed is returned when the command was
// not created through NewDeleteCargoCommand.
var ErrDeleteCargoCommandIsNotConstructed = errors.New(
	"DeleteCargoCommand must be created via NewDeleteCargoCommand constructor",
)

// DeleteCargoCommand represents a request to remove a cargo item.
type DeleteCargoCommand struct { //nolint:recvcheck //using for validation
	cargoID kernel.UUID

	guard guard.ConstructorGuard
}

// NewDeleteCargoCommand creates a command to delete a cargo item.
func NewDeleteCargoCommand(cargoID kernel.UUID) (DeleteCargoCommand, error) {
	if err := cargoID.Validate(); err != nil {
		return DeleteCargoCommand{}, err
	}

	return DeleteCargoCommand{
		cargoID: cargoID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c DeleteCargoCommand) Validate() error {
	return c.guard.Validate(ErrDeleteCargoCommandIsNotConstructed)
}

// CargoID returns the identifier of the cargo item to delete.
func (c DeleteCargoCommand) CargoID() kernel.UUID { return c.cargoID }
