package commands

import (
	"errors"

	"supplychain/internal/pkg/guard"
)

// ErrCleanupDeliveriesCommandIsNotConstructed is returned when the command
// was not created through NewCleanupDeliveriesCommand.
var ErrCleanupDeliveriesCommandIsNotConstructed = errors.New(
	"CleanupDeliveriesCommand must be created via NewCleanupDeliveriesCommand constructor",
)

// CleanupDeliveriesCommand triggers the sweep removing delivery records
// whose shipment is missing or no longer in Delivered status. The sweep is
// the deferred half of the delivery-consistency rules: a status change away
// from Delivered leaves its record behind until this runs.
type CleanupDeliveriesCommand struct {
	guard guard.ConstructorGuard
}

// NewCleanupDeliveriesCommand creates a command to run the consistency
// sweep. Parameterless: the sweep always covers every delivery record.
func NewCleanupDeliveriesCommand() CleanupDeliveriesCommand {
	return CleanupDeliveriesCommand{
		guard: guard.NewConstructorGuard(),
	}
}

// Validate ensures the command was created through the constructor.
func (c *CleanupDeliveriesCommand) Validate() error {
	return c.guard.Validate(ErrCleanupDeliveriesCommandIsNotConstructed)
}
