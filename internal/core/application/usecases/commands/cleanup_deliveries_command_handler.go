package commands

import (
	"context"
	"fmt"

	"supplychain/internal/core/domain/model/kernel"
	"supplychain/internal/core/domain/model/shipment"
	"supplychain/internal/core/domain/services"
	"supplychain/internal/core/ports"
)

// CleanupDeliveriesCommandHandler removes delivery records that are
// inconsistent with shipment state. Runs from the scheduled job and from
// the manual cleanup endpoint.
type CleanupDeliveriesCommandHandler struct {
	uowFactory         ShipmentUoWFactory
	consistencyService services.DeliveryConsistencyService
	publisher          ports.EventPublisher
}

// NewCleanupDeliveriesCommandHandler creates a handler for the consistency
// sweep.
func NewCleanupDeliveriesCommandHandler(
	uowFactory ShipmentUoWFactory,
	consistencyService services.DeliveryConsistencyService,
	publisher ports.EventPublisher,
) CleanupDeliveriesCommandHandler {
	return CleanupDeliveriesCommandHandler{
		uowFactory:         uowFactory,
		consistencyService: consistencyService,
		publisher:          publisher,
	}
}

// Handle runs one sweep and returns the number of records removed. The
// whole sweep is one transaction: records and shipments are read and the
// inconsistent records deleted under the same snapshot, so a shipment
// delivered mid-sweep cannot lose a record it just gained.
func (h *CleanupDeliveriesCommandHandler) Handle(ctx context.Context, cmd CleanupDeliveriesCommand) (int, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	deliveries, err := uow.DeliveryRepository().GetAll(ctx)
	if err != nil {
		return 0, err
	}
	if len(deliveries) == 0 {
		return 0, uow.Commit(ctx)
	}

	shipments, err := uow.ShipmentRepository().GetAll(ctx)
	if err != nil {
		return 0, err
	}

	byID := make(map[kernel.UUID]*shipment.Shipment, len(shipments))
	for _, s := range shipments {
		byID[s.ID()] = s
	}

	inconsistent := h.consistencyService.SelectInconsistent(deliveries, byID)
	if len(inconsistent) == 0 {
		return 0, uow.Commit(ctx)
	}

	if err = uow.DeliveryRepository().DeleteAll(ctx, inconsistent); err != nil {
		return 0, err
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	for _, d := range inconsistent {
		h.publisher.Publish(ports.DeliveryEventsTopic,
			fmt.Sprintf("Delivery deleted: ID=%s", d.ID()))
	}
	return len(inconsistent), nil
}
