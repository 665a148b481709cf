package commands

import (
	"errors"

	"supplychain/internal/core/domain/model/kernel"
	"supplychain/internal/pkg/guard"
)

// ErrDeleteVendorCommandIsNotConstructed is returned when the command was
// not created through NewDeleteVendorCommand.
var ErrDeleteVendorCommandIsNotConstructed = errors.New(
	"DeleteVendorCommand must be created via NewDeleteVendorCommand constructor",
)

// DeleteVendorCommand represents a request to remove a vendor. Shipments
// referencing the vendor keep their weak reference.
type DeleteVendorCommand struct { //nolint:recvcheck //using for validation
	vendorID kernel.UUID

	guard guard.ConstructorGuard
}

// NewDeleteVendorCommand creates a command to delete a vendor.
func NewDeleteVendorCommand(vendorID kernel.UUID) (DeleteVendorCommand, error) {
	if err := vendorID.Validate(); err != nil {
		return DeleteVendorCommand{}, err
	}

	return DeleteVendorCommand{
		vendorID: vendorID,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c DeleteVendorCommand) Validate() error {
	return c.guard.Validate(ErrDeleteVendorCommandIsNotConstructed)
}

// VendorID returns the identifier of the vendor to delete.
func (c DeleteVendorCommand) VendorID() kernel.UUID { return c.vendorID }
