package commands

import (
	"errors"
	"time"

	"supplychain/internal/core/domain/model/delivery"
	"supplychain/internal/core/domain/model/kernel"
	"supplychain/internal/pkg/guard"
)

// ErrCreateDeliveryCommandIsNotConstructed is returned when the command was
// not created through NewCreateDeliveryCommand.
var ErrCreateDeliveryCommandIsNotConstructed = errors.New(
	"CreateDeliveryCommand must be created via NewCreateDeliveryCommand constructor",
)

// CreateDeliveryCommand represents a manual registration of a delivery
// record for a shipment. Most records are materialized automatically when a
// shipment enters Delivered status; this command covers the direct API path.
type CreateDeliveryCommand struct { //nolint:recvcheck //using for validation
	deliveryID         kernel.UUID
	shipmentID         kernel.UUID
	actualDeliveryDate *time.Time
	recipient          string
	status             delivery.Status

	guard guard.ConstructorGuard
}

// NewCreateDeliveryCommand creates a command to register a delivery record.
// Status defaults to Pending when not supplied.
func NewCreateDeliveryCommand(
	deliveryID kernel.UUID,
	shipmentID kernel.UUID,
	actualDeliveryDate *time.Time,
	recipient string,
	status delivery.Status,
) (CreateDeliveryCommand, error) {
	if status == delivery.Unknown {
		status = delivery.Pending
	}

	if _, err := delivery.NewDelivery(deliveryID, shipmentID, actualDeliveryDate, recipient, status); err != nil {
		return CreateDeliveryCommand{}, err
	}

	return CreateDeliveryCommand{
		deliveryID:         deliveryID,
		shipmentID:         shipmentID,
		actualDeliveryDate: actualDeliveryDate,
		recipient:          recipient,
		status:             status,
		guard:              guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateDeliveryCommand) Validate() error {
	return c.guard.Validate(ErrCreateDeliveryCommandIsNotConstructed)
}

// DeliveryID returns the identifier for the new delivery record.
func (c CreateDeliveryCommand) DeliveryID() kernel.UUID { return c.deliveryID }

// ShipmentID returns the referenced shipment's identifier.
func (c CreateDeliveryCommand) ShipmentID() kernel.UUID { return c.shipmentID }

// ActualDeliveryDate returns the hand-over timestamp, or nil.
func (c CreateDeliveryCommand) ActualDeliveryDate() *time.Time { return c.actualDeliveryDate }

// Recipient returns who received the shipment.
func (c CreateDeliveryCommand) Recipient() string { return c.recipient }

// Status returns the delivery record status.
func (c CreateDeliveryCommand) Status() delivery.Status { return c.status }
