package commands

import (
	"errors"

	"supplychain/internal/core/domain/model/kernel"
	"supplychain/internal/core/domain/model/vendor"
	"supplychain/internal/pkg/guard"
)

// ErrCreateVendorCommandIsNotConstructed is returned when the command was
// not created through NewCreateVendorCommand.
var ErrCreateVendorCommandIsNotConstructed = errors.New(
	"CreateVendorCommand must be created via NewCreateVendorCommand constructor",
)

// CreateVendorCommand represents a request to register a vendor.
type CreateVendorCommand struct { //nolint:recvcheck //using for validation
	vendorID    kernel.UUID
	name        string
	contactInfo string
	serviceType vendor.ServiceType
	isActive    bool

	guard guard.ConstructorGuard
}

// NewCreateVendorCommand creates a command to register a vendor.
func NewCreateVendorCommand(
	vendorID kernel.UUID,
	name string,
	contactInfo string,
	serviceType vendor.ServiceType,
	isActive bool,
) (CreateVendorCommand, error) {
	if _, err := vendor.NewVendor(vendorID, name, contactInfo, serviceType, isActive); err != nil {
		return CreateVendorCommand{}, err
	}

	return CreateVendorCommand{
		vendorID:    vendorID,
		name:        name,
		contactInfo: contactInfo,
		serviceType: serviceType,
		isActive:    isActive,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateVendorCommand) Validate() error {
	return c.guard.Validate(ErrCreateVendorCommandIsNotConstructed)
}

// VendorID returns the identifier for the new vendor.
func (c CreateVendorCommand) VendorID() kernel.UUID { return c.vendorID }

// Name returns the vendor's unique name.
func (c CreateVendorCommand) Name() string { return c.name }

// ContactInfo returns the vendor's contact details.
func (c CreateVendorCommand) ContactInfo() string { return c.contactInfo }

// ServiceType returns the kind of service the vendor provides.
func (c CreateVendorCommand) ServiceType() vendor.ServiceType { return c.serviceType }

// IsActive reports whether the vendor is accepting work.
func (c CreateVendorCommand) IsActive() bool { return c.isActive }
