package queries

import (
	"errors"

	"supplychain/internal/core/domain/model/kernel"
	"supplychain/internal/pkg/guard"
)

// ErrGetAllCargoQueryIsNotConstructed is returned when the query was not
// created through NewGetAllCargoQuery.
var ErrGetAllCargoQueryIsNotConstructed = errors.New(
	"GetAllCargoQuery must be created via NewGetAllCargoQuery constructor",
)

// GetAllCargoQuery retrieves cargo items, optionally restricted to one
// shipment.
type GetAllCargoQuery struct {
	shipmentID *kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetAllCargoQuery creates a query to retrieve all cargo items.
func NewGetAllCargoQuery() GetAllCargoQuery {
	return GetAllCargoQuery{guard: guard.NewConstructorGuard()}
}

// NewGetCargoForShipmentQuery creates a query restricted to the cargo of
// one shipment.
func NewGetCargoForShipmentQuery(shipmentID kernel.UUID) (GetAllCargoQuery, error) {
	if err := shipmentID.Validate(); err != nil {
		return GetAllCargoQuery{}, err
	}

	return GetAllCargoQuery{
		shipmentID: &shipmentID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through a constructor.
func (q GetAllCargoQuery) Validate() error {
	return q.guard.Validate(ErrGetAllCargoQueryIsNotConstructed)
}

// ShipmentID returns the shipment filter, or nil for an unrestricted list.
func (q GetAllCargoQuery) ShipmentID() *kernel.UUID { return q.shipmentID }

// CargoResponse is the cargo read model.
type CargoResponse struct {
	ID          kernel.UUID
	ShipmentID  kernel.UUID
	CargoType   string
	Description string
	Value       *float64
	Weight      *float64
	WeightUnit  string
}
