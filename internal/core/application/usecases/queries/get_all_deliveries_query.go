package queries

import (
	"errors"
	"time"

	"supplychain/internal/core/domain/model/kernel"
	"supplychain/internal/pkg/guard"
)

// ErrGetAllDeliveriesQueryIsNotConstructed is returned when the query was
// not created through NewGetAllDeliveriesQuery.
var ErrGetAllDeliveriesQueryIsNotConstructed = errors.New(
	"GetAllDeliveriesQuery must be created via NewGetAllDeliveriesQuery constructor",
)

// GetAllDeliveriesQuery retrieves delivery records whose shipment is
// currently in Delivered status. Records awaiting the cleanup sweep are
// filtered out at read time, so consumers never observe an inconsistent
// record even between sweeps.
type GetAllDeliveriesQuery struct {
	guard guard.ConstructorGuard
}

// NewGetAllDeliveriesQuery creates a query to retrieve consistent
// deliveries.
func NewGetAllDeliveriesQuery() GetAllDeliveriesQuery {
	return GetAllDeliveriesQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetAllDeliveriesQuery) Validate() error {
	return q.guard.Validate(ErrGetAllDeliveriesQueryIsNotConstructed)
}

// DeliveryResponse is the delivery read model shared by the list and by-id
// queries.
type DeliveryResponse struct {
	ID                 kernel.UUID
	ShipmentID         kernel.UUID
	ActualDeliveryDate *time.Time
	Recipient          string
	Status             string
	CreatedAt          time.Time
}
