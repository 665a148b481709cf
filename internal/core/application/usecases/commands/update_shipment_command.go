package commands

import (
	"errors"
	"time"

	"supplychain/internal/core/domain/model/kernel"
	"supplychain/internal/core/domain/model/shipment"
	"supplychain/internal/pkg/guard"
)

// ErrUpdateShipmentCommandIsNotConstructed is returned when the command was
// not created through NewUpdateShipmentCommand.
var ErrUpdateShipmentCommandIsNotConstructed = errors.New(
	"UpdateShipmentCommand must be created via NewUpdateShipmentCommand constructor",
)

// UpdateShipmentCommand represents a full field update of a shipment,
// including its status. Route and vendor references are only replaced when
// supplied; nil keeps the current assignment.
type UpdateShipmentCommand struct { //nolint:recvcheck //using for validation
	shipmentID        kernel.UUID
	origin            string
	destination       string
	status            shipment.Status
	estimatedDelivery *time.Time
	routeID           *kernel.UUID
	vendorID          *kernel.UUID

	guard guard.ConstructorGuard
}

// NewUpdateShipmentCommand creates a command to update a shipment.
// Validates identifier, locations and status membership; transitions are
// not restricted.
func NewUpdateShipmentCommand(
	shipmentID kernel.UUID,
	origin string,
	destination string,
	status shipment.Status,
	estimatedDelivery *time.Time,
	routeID *kernel.UUID,
	vendorID *kernel.UUID,
) (UpdateShipmentCommand, error) {
	// The aggregate constructor carries the field rules for every updatable
	// field, so constructing a throwaway instance validates the command.
	if _, err := shipment.NewShipment(shipmentID, origin, destination, status, estimatedDelivery, routeID, vendorID); err != nil {
		return UpdateShipmentCommand{}, err
	}

	return UpdateShipmentCommand{
		shipmentID:        shipmentID,
		origin:            origin,
		destination:       destination,
		status:            status,
		estimatedDelivery: estimatedDelivery,
		routeID:           routeID,
		vendorID:          vendorID,
		guard:             guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateShipmentCommand) Validate() error {
	return c.guard.Validate(ErrUpdateShipmentCommandIsNotConstructed)
}

// ShipmentID returns the identifier of the shipment to update.
func (c UpdateShipmentCommand) ShipmentID() kernel.UUID { return c.shipmentID }

// Origin returns the new origin location name.
func (c UpdateShipmentCommand) Origin() string { return c.origin }

// Destination returns the new destination location name.
func (c UpdateShipmentCommand) Destination() string { return c.destination }

// Status returns the new status.
func (c UpdateShipmentCommand) Status() shipment.Status { return c.status }

// EstimatedDelivery returns the new expected delivery date, or nil.
func (c UpdateShipmentCommand) EstimatedDelivery() *time.Time { return c.estimatedDelivery }

// RouteID returns the route reference to assign, or nil to keep current.
func (c UpdateShipmentCommand) RouteID() *kernel.UUID { return c.routeID }

// VendorID returns the vendor reference to assign, or nil to keep current.
func (c UpdateShipmentCommand) VendorID() *kernel.UUID { return c.vendorID }
