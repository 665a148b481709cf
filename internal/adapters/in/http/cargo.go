package http

import (
	"net/http"

	"supplychain/internal/core/application/usecases/commands"
	"supplychain/internal/core/application/usecases/queries"
	"supplychain/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
)

func (s *Server) getCargo(ctx echo.Context) error {
	query := queries.NewGetAllCargoQuery()

	if raw := ctx.QueryParam("shipmentId"); raw != "" {
		shipmentID, err := kernel.UUIDFromString(raw)
		if err != nil {
			return badRequest(ctx, "Invalid shipment id")
		}
		query, err = queries.NewGetCargoForShipmentQuery(shipmentID)
		if err != nil {
			return badRequest(ctx, "Invalid shipment id")
		}
	}

	cargoItems, err := s.queries.GetAllCargo.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	response := make([]CargoResponse, len(cargoItems))
	for i, item := range cargoItems {
		response[i] = toCargoResponse(item)
	}
	return ctx.JSON(http.StatusOK, response)
}

func (s *Server) getCargoItem(ctx echo.Context) error {
	id, err := pathID(ctx)
	if err != nil {
		return badRequest(ctx, "Invalid cargo id")
	}

	query, err := queries.NewGetCargoQuery(id)
	if err != nil {
		return badRequest(ctx, "Invalid cargo id")
	}

	result, err := s.queries.GetCargo.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}
	return ctx.JSON(http.StatusOK, toCargoResponse(result))
}

func (s *Server) createCargo(ctx echo.Context) error {
	var req CargoRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	shipmentID, err := kernel.UUIDFromString(req.ShipmentID)
	if err != nil {
		return badRequest(ctx, "Invalid shipment id")
	}

	cargoID := kernel.NewUUID()
	cmd, err := commands.NewCreateCargoCommand(
		cargoID, shipmentID, req.CargoType, req.Description, req.Value, req.Weight, req.WeightUnit,
	)
	if err != nil {
		return badRequest(ctx, "Invalid cargo data: "+err.Error())
	}

	if err := s.commands.CreateCargo.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}
	return ctx.JSON(http.StatusCreated, CreatedResponse{ID: cargoID.String()})
}

func (s *Server) updateCargo(ctx echo.Context) error {
	id, err := pathID(ctx)
	if err != nil {
		return badRequest(ctx, "Invalid cargo id")
	}

	var req CargoRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewUpdateCargoCommand(
		id, req.CargoType, req.Description, req.Value, req.Weight, req.WeightUnit,
	)
	if err != nil {
		return badRequest(ctx, "Invalid cargo data: "+err.Error())
	}

	if err := s.commands.UpdateCargo.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

func (s *Server) deleteCargo(ctx echo.Context) error {
	id, err := pathID(ctx)
	if err != nil {
		return badRequest(ctx, "Invalid cargo id")
	}

	cmd, err := commands.NewDeleteCargoCommand(id)
	if err != nil {
		return badRequest(ctx, "Invalid cargo id")
	}

	if err := s.commands.DeleteCargo.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}
