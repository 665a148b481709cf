package commands

import (
	"context"
	"fmt"

	"supplychain/internal/core/domain/model/delivery"
	"supplychain/internal/core/ports"
	"supplychain/internal/pkg/errs"
)

// CreateDeliveryCommandHandler handles the business logic for registering a
// delivery record through the direct API path. The referenced shipment must
// exist; the one-record-per-shipment invariant is enforced by the store, so
// a second record for the same shipment is rejected.
type CreateDeliveryCommandHandler struct {
	uowFactory DeliveryUoWFactory
	publisher  ports.EventPublisher
}

// NewCreateDeliveryCommandHandler creates a handler for delivery creation.
func NewCreateDeliveryCommandHandler(uowFactory DeliveryUoWFactory, publisher ports.EventPublisher) CreateDeliveryCommandHandler {
	return CreateDeliveryCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
	}
}

// Handle processes the delivery creation command. Unlike the automatic
// materialization on a shipment status change, a duplicate here is a caller
// error and surfaces as ports.ErrDuplicateDelivery.
func (h *CreateDeliveryCommandHandler) Handle(ctx context.Context, cmd CreateDeliveryCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	aggregate, err := delivery.NewDelivery(
		cmd.DeliveryID(),
		cmd.ShipmentID(),
		cmd.ActualDeliveryDate(),
		cmd.Recipient(),
		cmd.Status(),
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

	exists, err := uow.ShipmentRepository().Exists(ctx, cmd.ShipmentID())
	if err != nil {
		return err
	}
	if !exists {
		return errs.NewObjectNotFoundError("shipmentId", cmd.ShipmentID())
	}

	if err = uow.DeliveryRepository().Add(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.publisher.Publish(ports.DeliveryEventsTopic,
		fmt.Sprintf("Delivery created: ID=%s, Recipient=%s", aggregate.ID(), aggregate.Recipient()))
	return nil
}
