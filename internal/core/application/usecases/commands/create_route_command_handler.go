package commands

import (
	"context"
	"fmt"

	"supplychain/internal/core/domain/model/route"
	"supplychain/internal/core/ports"
)

// CreateRouteCommandHandler handles the business logic for registering a
// shipping route.
type CreateRouteCommandHandler struct {
	uowFactory RouteUoWFactory
	publisher  ports.EventPublisher
}

// NewCreateRouteCommandHandler creates a handler for route creation.
func NewCreateRouteCommandHandler(uowFactory RouteUoWFactory, publisher ports.EventPublisher) CreateRouteCommandHandler {
	return CreateRouteCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
	}
}

// Handle processes the route creation command.
func (h *CreateRouteCommandHandler) Handle(ctx context.Context, cmd CreateRouteCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	aggregate, err := route.NewRoute(
		cmd.RouteID(),
		cmd.OriginPort(),
		cmd.DestinationPort(),
		cmd.Duration(),
		cmd.Status(),
		cmd.Distance(),
		cmd.TransportationMode(),
		cmd.Cost(),
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

	if err = uow.RouteRepository().Add(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.publisher.Publish(ports.RouteEventsTopic,
		fmt.Sprintf("Route created: ID=%s, From=%s to %s", aggregate.ID(), aggregate.OriginPort(), aggregate.DestinationPort()))
	return nil
}
