package queries

import (
	"errors"

	"supplychain/internal/core/domain/model/kernel"
	"supplychain/internal/pkg/guard"
)

// ErrGetAllVendorsQueryIsNotConstructed is returned when the query was not
// created through NewGetAllVendorsQuery.
var ErrGetAllVendorsQueryIsNotConstructed = errors.New(
	"GetAllVendorsQuery must be created via NewGetAllVendorsQuery constructor",
)

// GetAllVendorsQuery retrieves every vendor.
type GetAllVendorsQuery struct {
	guard guard.ConstructorGuard
}

// NewGetAllVendorsQuery creates a query to retrieve all vendors.
func NewGetAllVendorsQuery() GetAllVendorsQuery {
	return GetAllVendorsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetAllVendorsQuery) Validate() error {
	return q.guard.Validate(ErrGetAllVendorsQueryIsNotConstructed)
}

// VendorResponse is the vendor read model.
type VendorResponse struct {
	ID          kernel.UUID
	Name        string
	ContactInfo string
	ServiceType string
	IsActive    bool
}
