package commands

import (
	"context"
	"fmt"

	"supplychain/internal/core/ports"
)

// UpdateDeliveryCommandHandler handles the business logic for updating a
// delivery record.
type UpdateDeliveryCommandHandler struct {
	uowFactory DeliveryUoWFactory
	publisher  ports.EventPublisher
}

// NewUpdateDeliveryCommandHandler creates a handler for delivery updates.
func NewUpdateDeliveryCommandHandler(uowFactory DeliveryUoWFactory, publisher ports.EventPublisher) UpdateDeliveryCommandHandler {
	return UpdateDeliveryCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
	}
}

// Handle processes the delivery update command.
func (h *UpdateDeliveryCommandHandler) Handle(ctx context.Context, cmd UpdateDeliveryCommand) error {
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

	aggregate, err := uow.DeliveryRepository().Get(ctx, cmd.DeliveryID())
	if err != nil {
		return err
	}

	if err = aggregate.ApplyUpdate(cmd.ActualDeliveryDate(), cmd.Recipient(), cmd.Status()); err != nil {
		return err
	}

	if err = uow.DeliveryRepository().Update(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.publisher.Publish(ports.DeliveryEventsTopic,
		fmt.Sprintf("Delivery updated: ID=%s, Recipient=%s", aggregate.ID(), aggregate.Recipient()))
	return nil
}
