// Package queries contains read operations returning view models directly
// from the database. The read side of the CQRS split: handlers issue raw
// SQL and never load aggregates, so list endpoints stay cheap.
package queries

import (
	"errors"
	"time"

	"supplychain/internal/core/domain/model/kernel"
	"supplychain/internal/pkg/guard"
)

// ErrGetAllShipmentsQueryIsNotConstructed is returned when the query was
// not created through NewGetAllShipmentsQuery.
var ErrGetAllShipmentsQueryIsNotConstructed = errors.New(
	"GetAllShipmentsQuery must be created via NewGetAllShipmentsQuery constructor",
)

// GetAllShipmentsQuery retrieves every shipment for tracking dashboards.
type GetAllShipmentsQuery struct {
	guard guard.ConstructorGuard
}

// NewGetAllShipmentsQuery creates a query to retrieve all shipments.
func NewGetAllShipmentsQuery() GetAllShipmentsQuery {
	return GetAllShipmentsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetAllShipmentsQuery) Validate() error {
	return q.guard.Validate(ErrGetAllShipmentsQueryIsNotConstructed)
}

// ShipmentResponse is the shipment read model shared by the list and
// by-id queries.
type ShipmentResponse struct {
	ID                kernel.UUID
	Origin            string
	Destination       string
	Status            string
	EstimatedDelivery *time.Time
	RouteID           *kernel.UUID
	VendorID          *kernel.UUID
	CreatedAt         time.Time
	UpdatedAt         time.Time
}
