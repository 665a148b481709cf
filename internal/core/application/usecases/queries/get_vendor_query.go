package queries

import (
	"errors"

	"supplychain/internal/core/domain/model/kernel"
	"supplychain/internal/pkg/guard"
)

// ErrGetVendorQueryIsNotConstructed is returned when the query was not
// created through NewGetVendorQuery.
var ErrGetVendorQueryIsNotConstructed = errors.New(
	"GetVendorQuery must be created via NewGetVendorQuery constructor",
)

// GetVendorQuery retrieves a single vendor by identifier.
type GetVendorQuery struct {
	vendorID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetVendorQuery creates a query to retrieve one vendor.
func NewGetVendorQuery(vendorID kernel.UUID) (GetVendorQuery, error) {
	if err := vendorID.Validate(); err != nil {
		return GetVendorQuery{}, err
	}

	return GetVendorQuery{
		vendorID: vendorID,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetVendorQuery) Validate() error {
	return q.guard.Validate(ErrGetVendorQueryIsNotConstructed)
}

// VendorID returns the identifier of the requested vendor.
func (q GetVendorQuery) VendorID() kernel.UUID { return q.vendorID }
