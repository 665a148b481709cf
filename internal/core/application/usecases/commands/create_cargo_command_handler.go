package commands

import (
	"context"
	"fmt"

	"supplychain/internal/core/domain/model/cargo"
	"supplychain/internal/core/ports"
	"supplychain/internal/pkg/errs"
)

// CreateCargoCommandHandler handles the business logic for registering a
// cargo item. The owning shipment must exist.
type CreateCargoCommandHandler struct {
	uowFactory CargoUoWFactory
	publisher  ports.EventPublisher
}

// NewCreateCargoCommandHandler creates a handler for cargo creation.
func NewCreateCargoCommandHandler(uowFactory CargoUoWFactory, publisher ports.EventPublisher) CreateCargoCommandHandler {
	return CreateCargoCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
	}
}

// Handle processes the cargo creation command.
func (h *CreateCargoCommandHandler) Handle(ctx context.Context, cmd CreateCargoCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	aggregate, err := cargo.NewCargo(
		cmd.CargoID(),
		cmd.ShipmentID(),
		cmd.CargoType(),
		cmd.Description(),
		cmd.Value(),
		cmd.Weight(),
		cmd.WeightUnit(),
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

	if err = uow.CargoRepository().Add(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.publisher.Publish(ports.CargoEventsTopic, cargoCreatedMessage(aggregate))
	return nil
}

// cargoCreatedMessage formats the creation notification. Weight and value
// render as "unknown" when unset.
func cargoCreatedMessage(aggregate *cargo.Cargo) string {
	weight := "unknown"
	if w := aggregate.Weight(); w != nil {
		weight = fmt.Sprintf("%v", *w)
	}
	value := "unknown"
	if v := aggregate.Value(); v != nil {
		value = fmt.Sprintf("%v", *v)
	}
	return fmt.Sprintf("Cargo created: ID=%s, Type=%s, Weight=%skg, Value=$%s",
		aggregate.ID(), aggregate.CargoType(), weight, value)
}
