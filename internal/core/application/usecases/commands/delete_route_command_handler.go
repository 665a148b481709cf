package commands

import (
	"context"
	"fmt"

	"supplychain/internal/core/ports"
	"supplychain/internal/pkg/errs"
)

// DeleteRouteCommandHandler handles the business logic for removing a
// route.
type DeleteRouteCommandHandler struct {
	uowFactory RouteUoWFactory
	publisher  ports.EventPublisher
}

// NewDeleteRouteCommandHandler creates a handler for route deletion.
func NewDeleteRouteCommandHandler(uowFactory RouteUoWFactory, publisher ports.EventPublisher) DeleteRouteCommandHandler {
	return DeleteRouteCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
	}
}

// Handle processes the route deletion command.
func (h *DeleteRouteCommandHandler) Handle(ctx context.Context, cmd DeleteRouteCommand) error {
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

	exists, err := uow.RouteRepository().Exists(ctx, cmd.RouteID())
	if err != nil {
		return err
	}
	if !exists {
		return errs.NewObjectNotFoundError("routeId", cmd.RouteID())
	}

	if err = uow.RouteRepository().Delete(ctx, cmd.RouteID()); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.publisher.Publish(ports.RouteEventsTopic,
		fmt.Sprintf("Route deleted: ID=%s", cmd.RouteID()))
	return nil
}
