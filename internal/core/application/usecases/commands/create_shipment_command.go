package commands

import (
	"errors"
	"time"

	"supplychain/internal/core/domain/model/kernel"
	"supplychain/internal/core/domain/model/shipment"
	"supplychain/internal/pkg/guard"
)

// ErrCreateShipmentCommandIsNotConstructed is returned when the command was
// not created through NewCreateShipmentCommand.
var ErrCreateShipmentCommandIsNotConstructed = errors.New(
	"CreateShipmentCommand must be created via NewCreateShipmentCommand constructor",
)

// CreateShipmentCommand represents a request to register a new shipment.
// Status defaults to Created when not supplied; route and vendor
// assignment is optional.
type CreateShipmentCommand struct { //nolint:recvcheck //using for validation
	shipmentID        kernel.UUID
	origin            string
	destination       string
	status            shipment.Status
	estimatedDelivery *time.Time
	routeID           *kernel.UUID
	vendorID          *kernel.UUID

	guard guard.ConstructorGuard
}

// NewCreateShipmentCommand creates a command to register a new shipment.
// Field validation is delegated to the shipment aggregate, so the same
// rules apply to requests and stored rows.
func NewCreateShipmentCommand(
	shipmentID kernel.UUID,
	origin string,
	destination string,
	status shipment.Status,
	estimatedDelivery *time.Time,
	routeID *kernel.UUID,
	vendorID *kernel.UUID,
) (CreateShipmentCommand, error) {
	if status == shipment.Unknown {
		status = shipment.Created
	}

	// Construct the aggregate once up front so invalid commands are
	// rejected before any store call.
	if _, err := shipment.NewShipment(shipmentID, origin, destination, status, estimatedDelivery, routeID, vendorID); err != nil {
		return CreateShipmentCommand{}, err
	}

	return CreateShipmentCommand{
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
func (c CreateShipmentCommand) Validate() error {
	return c.guard.Validate(ErrCreateShipmentCommandIsNotConstructed)
}

// ShipmentID returns the identifier for the new shipment.
func (c CreateShipmentCommand) ShipmentID() kernel.UUID { return c.shipmentID }

// Origin returns the origin location name.
func (c CreateShipmentCommand) Origin() string { return c.origin }

// Destination returns the destination location name.
func (c CreateShipmentCommand) Destination() string { return c.destination }

// Status returns the initial status.
func (c CreateShipmentCommand) Status() shipment.Status { return c.status }

// EstimatedDelivery returns the expected delivery date, or nil.
func (c CreateShipmentCommand) EstimatedDelivery() *time.Time { return c.estimatedDelivery }

// RouteID returns the optional route reference.
func (c CreateShipmentCommand) RouteID() *kernel.UUID { return c.routeID }

// VendorID returns the optional vendor reference.
func (c CreateShipmentCommand) VendorID() *kernel.UUID { return c.vendorID }
