package commands

import (
	"context"
	"fmt"

	"supplychain/internal/core/ports"
	"supplychain/internal/pkg/errs"
)

// DeleteShipmentCommandHandler handles the business logic for removing a
// shipment. Delivery records referencing the shipment are removed in the
// same transaction before the shipment row; cargo items go with the
// shipment via the storage-level cascade.
type DeleteShipmentCommandHandler struct {
	uowFactory ShipmentUoWFactory
	publisher  ports.EventPublisher
}

// NewDeleteShipmentCommandHandler creates a handler for shipment deletion.
func NewDeleteShipmentCommandHandler(uowFactory ShipmentUoWFactory, publisher ports.EventPublisher) DeleteShipmentCommandHandler {
	return DeleteShipmentCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
	}
}

// Handle processes the shipment deletion command. Deliveries are deleted
// first so the transaction never holds a window where a delivery references
// a missing shipment.
func (h *DeleteShipmentCommandHandler) Handle(ctx context.Context, cmd DeleteShipmentCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	exists, err := uow.ShipmentRepository().Exists(ctx, cmd.ShipmentID())
	if err != nil {
		return err
	}
	if !exists {
		return errs.NewObjectNotFoundError("shipmentId", cmd.ShipmentID())
	}

	if err = uow.DeliveryRepository().DeleteForShipment(ctx, cmd.ShipmentID()); err != nil {
		return err
	}

	if err = uow.ShipmentRepository().Delete(ctx, cmd.ShipmentID()); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.publisher.Publish(ports.ShipmentEventsTopic,
		fmt.Sprintf("Shipment deleted with ID: %s", cmd.ShipmentID()))
	return nil
}
