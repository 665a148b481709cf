package commands

import (
	"context"
	"errors"
	"fmt"
	"time"

	"supplychain/internal/core/domain/model/kernel"
	"supplychain/internal/core/domain/model/shipment"
	"supplychain/internal/core/domain/services"
	"supplychain/internal/core/ports"
	"supplychain/internal/pkg/errs"
)

// UpdateShipmentCommandHandler handles the business logic for updating a
// shipment, including status changes. A transition into Delivered status
// materializes the delivery record inside the same transaction; a
// transition out of Delivered leaves the record for the cleanup sweep.
type UpdateShipmentCommandHandler struct {
	uowFactory         ShipmentUoWFactory
	consistencyService services.DeliveryConsistencyService
	publisher          ports.EventPublisher
}

// NewUpdateShipmentCommandHandler creates a handler for shipment updates.
func NewUpdateShipmentCommandHandler(
	uowFactory ShipmentUoWFactory,
	consistencyService services.DeliveryConsistencyService,
	publisher ports.EventPublisher,
) UpdateShipmentCommandHandler {
	return UpdateShipmentCommandHandler{
		uowFactory:         uowFactory,
		consistencyService: consistencyService,
		publisher:          publisher,
	}
}

// Handle processes the shipment update command.
//
// The previous status is captured before the update is applied; when the
// shipment was not in Delivered status before and is after, a delivery
// record is ensured to exist for it. Because the shipment row and the
// delivery row change in one transaction, an observer never sees the
// shipment become Delivered without its record.
func (h *UpdateShipmentCommandHandler) Handle(ctx context.Context, cmd UpdateShipmentCommand) error {
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

	aggregate, err := uow.ShipmentRepository().Get(ctx, cmd.ShipmentID())
	if err != nil {
		return err
	}

	wasDelivered := aggregate.IsDelivered()

	if err = aggregate.ApplyUpdate(
		cmd.Origin(),
		cmd.Destination(),
		cmd.Status(),
		cmd.EstimatedDelivery(),
		cmd.RouteID(),
		cmd.VendorID(),
	); err != nil {
		return err
	}

	if err = uow.ShipmentRepository().Update(ctx, aggregate); err != nil {
		return err
	}

	if !wasDelivered && aggregate.IsDelivered() {
		if err = h.ensureDeliveryExists(ctx, uow, aggregate); err != nil {
			return err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.publisher.Publish(ports.ShipmentEventsTopic,
		fmt.Sprintf("Shipment %s updated. New status: %s", aggregate.ID(), aggregate.Status()))
	return nil
}

// ensureDeliveryExists makes sure exactly one delivery record references the
// shipment. A record left behind by an earlier Delivered episode is reused
// untouched. The insert goes through AddIfAbsent: a concurrent
// materialization losing the race writes nothing, and the conflict never
// aborts the transaction carrying the shipment update.
func (h *UpdateShipmentCommandHandler) ensureDeliveryExists(
	ctx context.Context,
	uow ShipmentUoW,
	aggregate *shipment.Shipment,
) error {
	_, err := uow.DeliveryRepository().GetForShipment(ctx, aggregate.ID())
	if err == nil {
		return nil
	}

	var notFound *errs.ObjectNotFoundError
	if !errors.As(err, &notFound) {
		return err
	}

	record, err := h.consistencyService.MaterializeDelivery(kernel.NewUUID(), aggregate, time.Now())
	if err != nil {
		return err
	}

	if _, err = uow.DeliveryRepository().AddIfAbsent(ctx, record); err != nil {
		return err
	}
	return nil
}
