package commands

import (
	"context"
	"fmt"

	"supplychain/internal/core/ports"
)

// UpdateRouteCommandHandler handles the business logic for updating a
// shipping route.
type UpdateRouteCommandHandler struct {
	uowFactory RouteUoWFactory
	publisher  ports.EventPublisher
}

// NewUpdateRouteCommandHandler creates a handler for route updates.
func NewUpdateRouteCommandHandler(uowFactory RouteUoWFactory, publisher ports.EventPublisher) UpdateRouteCommandHandler {
	return UpdateRouteCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
	}
}

// Handle processes the route update command.
func (h *UpdateRouteCommandHandler) Handle(ctx context.Context, cmd UpdateRouteCommand) error {
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

	aggregate, err := uow.RouteRepository().Get(ctx, cmd.RouteID())
	if err != nil {
		return err
	}

	if err = aggregate.ApplyUpdate(
		cmd.OriginPort(),
		cmd.DestinationPort(),
		cmd.Duration(),
		cmd.Status(),
		cmd.Distance(),
		cmd.TransportationMode(),
		cmd.Cost(),
	); err != nil {
		return err
	}

	if err = uow.RouteRepository().Update(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.publisher.Publish(ports.RouteEventsTopic,
		fmt.Sprintf("Route updated: ID=%s, From=%s to %s", aggregate.ID(), aggregate.OriginPort(), aggregate.DestinationPort()))
	return nil
}
