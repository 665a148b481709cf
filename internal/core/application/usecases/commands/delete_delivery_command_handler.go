package commands

import (
	"context"
	"fmt"

	"supplychain/internal/core/ports"
	"supplychain/internal/pkg/errs"
)

// DeleteDeliveryCommandHandler handles the business logic for removing a
// delivery record.
type DeleteDeliveryCommandHandler struct {
	uowFactory DeliveryUoWFactory
	publisher  ports.EventPublisher
}

// NewDeleteDeliveryCommandHandler creates a handler for delivery deletion.
func NewDeleteDeliveryCommandHandler(uowFactory DeliveryUoWFactory, publisher ports.EventPublisher) DeleteDeliveryCommandHandler {
	return DeleteDeliveryCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
	}
}

// Handle processes the delivery deletion command.
func (h *DeleteDeliveryCommandHandler) Handle(ctx context.Context, cmd DeleteDeliveryCommand) error {
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

	exists, err := uow.DeliveryRepository().Exists(ctx, cmd.DeliveryID())
	if err != nil {
		return err
	}
	if !exists {
		return errs.NewObjectNotFoundError("deliveryId", cmd.DeliveryID())
	}

	if err = uow.DeliveryRepository().Delete(ctx, cmd.DeliveryID()); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.publisher.Publish(ports.DeliveryEventsTopic,
		fmt.Sprintf("Delivery deleted: ID=%s", cmd.DeliveryID()))
	return nil
}
