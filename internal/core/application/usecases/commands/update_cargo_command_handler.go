package commands

import (
	"context"
	"fmt"

	"supplychain/internal/core/ports"
)

// UpdateCargoCommandHandler handles the business logic for updating a
// cargo item.
type UpdateCargoCommandHandler struct {
	uowFactory CargoUoWFactory
	publisher  ports.EventPublisher
}

// NewUpdateCargoCommandHandler creates a handler for cargo updates.
func NewUpdateCargoCommandHandler(uowFactory CargoUoWFactory, publisher ports.EventPublisher) UpdateCargoCommandHandler {
	return UpdateCargoCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
	}
}

// Handle processes the cargo update command.
func (h *UpdateCargoCommandHandler) Handle(ctx context.Context, cmd UpdateCargoCommand) error {
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

	aggregate, err := uow.CargoRepository().Get(ctx, cmd.CargoID())
	if err != nil {
		return err
	}

	aggregate.ApplyUpdate(cmd.CargoType(), cmd.Description(), cmd.Value(), cmd.Weight(), cmd.WeightUnit())

	if err = uow.CargoRepository().Update(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.publisher.Publish(ports.CargoEventsTopic,
		fmt.Sprintf("Cargo updated: ID=%s, Type=%s", aggregate.ID(), aggregate.CargoType()))
	return nil
}
