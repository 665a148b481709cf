package commands

import (
	"context"
	"fmt"

	"supplychain/internal/core/domain/model/shipment"
	"supplychain/internal/core/ports"
)

// CreateShipmentCommandHandler handles the business logic for registering
// a new shipment. After a successful commit, a change notification is
// published on the shipment topic.
type CreateShipmentCommandHandler struct {
	uowFactory ShipmentUoWFactory
	publisher  ports.EventPublisher
}

// NewCreateShipmentCommandHandler creates a handler for shipment creation.
func NewCreateShipmentCommandHandler(uowFactory ShipmentUoWFactory, publisher ports.EventPublisher) CreateShipmentCommandHandler {
	return CreateShipmentCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
	}
}

// Handle processes the shipment creation command. The event is published
// only after the transaction committed; a store failure emits nothing.
func (h *CreateShipmentCommandHandler) Handle(ctx context.Context, cmd CreateShipmentCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	aggregate, err := shipment.NewShipment(
		cmd.ShipmentID(),
		cmd.Origin(),
		cmd.Destination(),
		cmd.Status(),
		cmd.EstimatedDelivery(),
		cmd.RouteID(),
		cmd.VendorID(),
	)
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.ShipmentRepository().Add(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.publisher.Publish(ports.ShipmentEventsTopic,
		fmt.Sprintf("Shipment created with ID: %s", aggregate.ID()))
	return nil
}
