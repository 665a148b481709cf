package queries

import (
	"errors"

	"supplychain/internal/core/domain/model/kernel"
	"supplychain/internal/pkg/guard"
)

// ErrGetAllRoutesQueryIsNotConstructed is returned when the query was not
// created through NewGetAllRoutesQuery.
var ErrGetAllRoutesQueryIsNotConstructed = errors.New(
	"GetAllRoutesQuery must be created via NewGetAllRoutesQuery constructor",
)

// GetAllRoutesQuery retrieves every shipping route.
type GetAllRoutesQuery struct {
	guard guard.ConstructorGuard
}

// NewGetAllRoutesQuery creates a query to retrieve all routes.
func NewGetAllRoutesQuery() GetAllRoutesQuery {
	return GetAllRoutesQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetAllRoutesQuery) Validate() error {
	return q.guard.Validate(ErrGetAllRoutesQueryIsNotConstructed)
}

// RouteResponse is the route read model.
type RouteResponse struct {
	ID                 kernel.UUID
	OriginPort         string
	DestinationPort    string
	Duration           int
	Status             string
	Distance           *float64
	TransportationMode string
	Cost               *float64
}
