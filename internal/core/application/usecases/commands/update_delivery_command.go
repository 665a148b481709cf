package commands

import (
	"errors"
	"time"

	"supplychain/internal/core/domain/model/delivery"
	"supplychain/internal/core/domain/model/kernel"
	"supplychain/internal/pkg/guard"
)

// ErrUpdateDeliveryCommandIsNotConstructed is returned when the command was
// not created through NewUpdateDeliveryCommand.
var ErrUpdateDeliveryCommandIsNotConstructed = errors.New(
	"UpdateDeliveryCommand must be created via NewUpdateDeliveryCommand constructor",
)

// UpdateDeliveryCommand represents an update of a delivery record's mutable
// fields. The shipment reference cannot be changed.
type UpdateDeliveryCommand struct { //nolint:recvcheck //using for validation
	deliveryID         kernel.UUID
	actualDeliveryDate *time.Time
	recipient          string
	status             delivery.Status

	guard guard.ConstructorGuard
}

// NewUpdateDeliveryCommand creates a command to update a delivery record.
func NewUpdateDeliveryCommand(
	deliveryID kernel.UUID,
	actualDeliveryDate *time.Time,
	recipient string,
	status delivery.Status,
) (UpdateDeliveryCommand, error) {
	// Validate against the aggregate's field rules with a placeholder
	// shipment reference, since the command does not carry one.
	if _, err := delivery.NewDelivery(deliveryID, kernel.NewUUID(), actualDeliveryDate, recipient, status); err != nil {
		return UpdateDeliveryCommand{}, err
	}

	return UpdateDeliveryCommand{
		deliveryID:         deliveryID,
		actualDeliveryDate: actualDeliveryDate,
		recipient:          recipient,
		status:             status,
		guard:              guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateDeliveryCommand) Validate() error {
	return c.guard.Validate(ErrUpdateDeliveryCommandIsNotConstructed)
}

// DeliveryID returns the identifier of the delivery to update.
func (c UpdateDeliveryCommand) DeliveryID() kernel.UUID { return c.deliveryID }

// ActualDeliveryDate returns the new hand-over timestamp, or nil.
func (c UpdateDeliveryCommand) ActualDeliveryDate() *time.Time { return c.actualDeliveryDate }

// Recipient returns the new recipient.
func (c UpdateDeliveryCommand) Recipient() string { return c.recipient }

// Status returns the new delivery record status.
func (c UpdateDeliveryCommand) Status() delivery.Status { return c.status }
