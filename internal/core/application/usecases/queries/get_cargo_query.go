package queries

import (
	"errors"

	"supplychain/internal/core/domain/model/kernel"
	"supplychain/internal/pkg/guard"
)

// ErrGetCargoQueryIsNotConstructed is returned when the query was not
// created through NewGetCargoQuery.
var ErrGetCargoQueryIsNotConstructed = errors.New(
	"GetCargoQuery must be created via NewGetCargoQuery constructor",
)

// GetCargoQuery retrieves a single cargo item by identifier.
type GetCargoQuery struct {
	cargoID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetCargoQuery creates a query to retrieve one cargo item.
func NewGetCargoQuery(cargoID kernel.UUID) (GetCargoQuery, error) {
	if err := cargoID.Validate(); err != nil {
		return GetCargoQuery{}, err
	}

	return GetCargoQuery{
		cargoID: cargoID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetCargoQuery) Validate() error {
	return q.guard.Validate(ErrGetCargoQueryIsNotConstructed)
}

// CargoID returns the identifier of the requested cargo item.
func (q GetCargoQuery) CargoID() kernel.UUID { return q.cargoID }
