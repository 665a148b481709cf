package commands

import (
	"errors"

	"supplychain/internal/core/domain/model/kernel"
	"supplychain/internal/core/domain/model/vendor"
	"supplychain/internal/pkg/guard"
)

// ErrUpdateVendorCommandIsNotConstructed is returned when the command was
// not created through NewUpdateVendorCommand.
var ErrUpdateVendorCommandIsNotConstructed = errors.New(
	"UpdateVendorCommand must be created via NewUpdateVendorCommand constructor",
)

// UpdateVendorCommand represents a full field update of a vendor.
type UpdateVendorCommand struct { //nolint:recvcheck //using for validation
	vendorID    kernel.UUID
	name        string
	contactInfo string
	serviceType vendor.ServiceType
	isActive    bool

	guard guard.ConstructorGuard
}

// NewUpdateVendorCommand creates a command to update a vendor.
func NewUpdateVendorCommand(
	vendorID kernel.UUID,
	name string,
	contactInfo string,
	serviceType vendor.ServiceType,
	isActive bool,
) (UpdateVendorCommand, error) {
	if _, err := vendor.NewVendor(vendorID, name, contactInfo, serviceType, isActive); err != nil {
		return UpdateVendorCommand{}, err
	}

	return UpdateVendorCommand{
		vendorID:    vendorID,
		name:        name,
		contactInfo: contactInfo,
		serviceType: serviceType,
		isActive:    isActive,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateVendorCommand) Validate() error {
	return c.guard.Validate(ErrUpdateVendorCommandIsNotConstructed)
}

// VendorID returns the identifier of the vendor to update.
func (c UpdateVendorCommand) VendorID() kernel.UUID { return c.vendorID }

// Name returns the new vendor name.
func (c UpdateVendorCommand) Name() string { return c.name }

// ContactInfo returns the new contact details.
func (c UpdateVendorCommand) ContactInfo() string { return c.contactInfo }

// ServiceType returns the new service type.
func (c UpdateVendorCommand) ServiceType() vendor.ServiceType { return c.serviceType }

// IsActive reports whether the vendor should be marked active.
func (c UpdateVendorCommand) IsActive() bool { return c.isActive }
