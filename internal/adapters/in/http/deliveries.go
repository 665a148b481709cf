package http

import (
	"net/http"

	"supplychain/internal/core/application/usecases/commands"
	"supplychain/internal/core/application/usecases/queries"
	"supplychain/internal/core/domain/model/delivery"
	"supplychain/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
)

func (s *Server) getDeliveries(ctx echo.Context) error {
	deliveries, err := s.queries.GetAllDeliveries.Handle(
		ctx.Request().Context(), queries.NewGetAllDeliveriesQuery(),
	)
	if err != nil {
		return writeError(ctx, err)
	}

	response := make([]DeliveryResponse, len(deliveries))
	for i, item := range deliveries {
		response[i] = toDeliveryResponse(item)
	}
	return ctx.JSON(http.StatusOK, response)
}

func (s *Server) getDelivery(ctx echo.Context) error {
	id, err := pathID(ctx)
	if err != nil {
		return badRequest(ctx, "Invalid delivery id")
	}

	query, err := queries.NewGetDeliveryQuery(id)
	if err != nil {
		return badRequest(ctx, "Invalid delivery id")
	}

	result, err := s.queries.GetDelivery.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}
	return ctx.JSON(http.StatusOK, toDeliveryResponse(result))
}

func (s *Server) createDelivery(ctx echo.Context) error {
	var req DeliveryRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	shipmentID, err := kernel.UUIDFromString(req.ShipmentID)
	if err != nil {
		return badRequest(ctx, "Invalid shipment id")
	}

	status, err := parseDeliveryStatus(req.Status)
	if err != nil {
		return badRequest(ctx, "Invalid delivery data: "+err.Error())
	}

	deliveryID := kernel.NewUUID()
	cmd, err := commands.NewCreateDeliveryCommand(
		deliveryID, shipmentID, req.ActualDeliveryDate, req.Recipient, status,
	)
	if err != nil {
		return badRequest(ctx, "Invalid delivery data: "+err.Error())
	}

	if err := s.commands.CreateDelivery.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}
	return ctx.JSON(http.StatusCreated, CreatedResponse{ID: deliveryID.String()})
}

func (s *Server) updateDelivery(ctx echo.Context) error {
	id, err := pathID(ctx)
	if err != nil {
		return badRequest(ctx, "Invalid delivery id")
	}

	var req DeliveryRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	status, err := parseDeliveryStatus(req.Status)
	if err != nil {
		return badRequest(ctx, "Invalid delivery data: "+err.Error())
	}

	cmd, err := commands.NewUpdateDeliveryCommand(id, req.ActualDeliveryDate, req.Recipient, status)
	if err != nil {
		return badRequest(ctx, "Invalid delivery data: "+err.Error())
	}

	if err := s.commands.UpdateDelivery.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

func (s *Server) deleteDelivery(ctx echo.Context) error {
	id, err := pathID(ctx)
	if err != nil {
		return badRequest(ctx, "Invalid delivery id")
	}

	cmd, err := commands.NewDeleteDeliveryCommand(id)
	if err != nil {
		return badRequest(ctx, "Invalid delivery id")
	}

	if err := s.commands.DeleteDelivery.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

func (s *Server) cleanupDeliveries(ctx echo.Context) error {
	deleted, err := s.commands.CleanupDeliveries.Handle(
		ctx.Request().Context(), commands.NewCleanupDeliveriesCommand(),
	)
	if err != nil {
		return writeError(ctx, err)
	}
	return ctx.JSON(http.StatusOK, CleanupResponse{Deleted: deleted})
}

func parseDeliveryStatus(raw string) (delivery.Status, error) {
	if raw == "" {
		return delivery.Unknown, nil
	}
	return delivery.StatusFromString(raw)
}
