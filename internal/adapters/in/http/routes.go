package http

import (
	"net/http"

	"supplychain/internal/core/application/usecases/commands"
	"supplychain/internal/core/application/usecases/queries"
	"supplychain/internal/core/domain/model/kernel"
	"supplychain/internal/core/domain/model/route"

	"github.com/labstack/echo/v4"
)

func (s *Server) getRoutes(ctx echo.Context) error {
	routes, err := s.queries.GetAllRoutes.Handle(
		ctx.Request().Context(), queries.NewGetAllRoutesQuery(),
	)
	if err != nil {
		return writeError(ctx, err)
	}

	response := make([]RouteResponse, len(routes))
	for i, item := range routes {
		response[i] = toRouteResponse(item)
	}
	return ctx.JSON(http.StatusOK, response)
}

func (s *Server) getRoute(ctx echo.Context) error {
	id, err := pathID(ctx)
	if err != nil {
		return badRequest(ctx, "Invalid route id")
	}

	query, err := queries.NewGetRouteQuery(id)
	if err != nil {
		return badRequest(ctx, "Invalid route id")
	}

	result, err := s.queries.GetRoute.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}
	return ctx.JSON(http.StatusOK, toRouteResponse(result))
}

func (s *Server) createRoute(ctx echo.Context) error {
	var req RouteRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	status, err := parseRouteStatus(req.Status)
	if err != nil {
		return badRequest(ctx, "Invalid route data: "+err.Error())
	}

	routeID := kernel.NewUUID()
	cmd, err := commands.NewCreateRouteCommand(
		routeID, req.OriginPort, req.DestinationPort, req.Duration,
		status, req.Distance, req.TransportationMode, req.Cost,
	)
	if err != nil {
		return badRequest(ctx, "Invalid route data: "+err.Error())
	}

	if err := s.commands.CreateRoute.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}
	return ctx.JSON(http.StatusCreated, CreatedResponse{ID: routeID.String()})
}

func (s *Server) updateRoute(ctx echo.Context) error {
	id, err := pathID(ctx)
	if err != nil {
		return badRequest(ctx, "Invalid route id")
	}

	var req RouteRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	status, err := parseRouteStatus(req.Status)
	if err != nil {
		return badRequest(ctx, "Invalid route data: "+err.Error())
	}

	cmd, err := commands.NewUpdateRouteCommand(
		id, req.OriginPort, req.DestinationPort, req.Duration,
		status, req.Distance, req.TransportationMode, req.Cost,
	)
	if err != nil {
		return badRequest(ctx, "Invalid route data: "+err.Error())
	}

	if err := s.commands.UpdateRoute.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

func (s *Server) deleteRoute(ctx echo.Context) error {
	id, err := pathID(ctx)
	if err != nil {
		return badRequest(ctx, "Invalid route id")
	}

	cmd, err := commands.NewDeleteRouteCommand(id)
	if err != nil {
		return badRequest(ctx, "Invalid route id")
	}

	if err := s.commands.DeleteRoute.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

func parseRouteStatus(raw string) (route.Status, error) {
	if raw == "" {
		return route.StatusUnknown, nil
	}
	return route.StatusFromString(raw)
}
