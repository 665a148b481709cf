package commands

import (
	"context"
	"fmt"

	"supplychain/internal/core/ports"
	"supplychain/internal/pkg/errs"
)

// DeleteCargoCommandHandler handles the business logic for removing a
// cargo item.
type DeleteCargoCommandHandler struct {
	uowFactory CargoUoWFactory
	publisher  ports.EventPublisher
}

// NewDeleteCargoCommandHandler creates a handler for cargo deletion.
func NewDeleteCargoCommandHandler(uowFactory CargoUoWFactory, publisher ports.EventPublisher) DeleteCargoCommandHandler {
	return DeleteCargoCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
	}
}

// Handle processes the cargo deletion command.
func (h *DeleteCargoCommandHandler) Handle(ctx context.Context, cmd DeleteCargoCommand) error {
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

	exists, err := uow.CargoRepository().Exists(ctx, cmd.CargoID())
	if err != nil {
		return err
	}
	if !exists {
		return errs.NewObjectNotFoundError("cargoId", cmd.CargoID())
	}

	if err = uow.CargoRepository().Delete(ctx, cmd.CargoID()); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.publisher.Publish(ports.CargoEventsTopic,
		fmt.Sprintf("Cargo deleted: ID=%s", cmd.CargoID()))
	return nil
}
