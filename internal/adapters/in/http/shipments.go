package http

import (
	"net/http"

	"supplychain/internal/core/application/usecases/commands"
	"supplychain/internal/core/application/usecases/queries"
	"supplychain/internal/core/domain/model/kernel"
	"supplychain/internal/core/domain/model/shipment"

	"github.com/labstack/echo/v4"
)

func (s *Server) getShipments(ctx echo.Context) error {
	shipments, err := s.queries.GetAllShipments.Handle(
		ctx.Request().Context(), queries.NewGetAllShipmentsQuery(),
	)
	if err != nil {
		return writeError(ctx, err)
	}

	response := make([]ShipmentResponse, len(shipments))
	for i, item := range shipments {
		response[i] = toShipmentResponse(item)
	}
	return ctx.JSON(http.StatusOK, response)
}

func (s *Server) getShipment(ctx echo.Context) error {
	id, err := pathID(ctx)
	if err != nil {
		return badRequest(ctx, "Invalid shipment id")
	}

	query, err := queries.NewGetShipmentQuery(id)
	if err != nil {
		return badRequest(ctx, "Invalid shipment id")
	}

	result, err := s.queries.GetShipment.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}
	return ctx.JSON(http.StatusOK, toShipmentResponse(result))
}

func (s *Server) createShipment(ctx echo.Context) error {
	var req ShipmentRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	status, routeID, vendorID, err := parseShipmentFields(req)
	if err != nil {
		return badRequest(ctx, "Invalid shipment data: "+err.Error())
	}

	shipmentID := kernel.NewUUID()
	cmd, err := commands.NewCreateShipmentCommand(
		shipmentID, req.Origin, req.Destination, status, req.EstimatedDelivery, routeID, vendorID,
	)
	if err != nil {
		return badRequest(ctx, "Invalid shipment data: "+err.Error())
	}

	if err := s.commands.CreateShipment.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}
	return ctx.JSON(http.StatusCreated, CreatedResponse{ID: shipmentID.String()})
}

func (s *Server) updateShipment(ctx echo.Context) error {
	id, err := pathID(ctx)
	if err != nil {
		return badRequest(ctx, "Invalid shipment id")
	}

	var req ShipmentRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	status, routeID, vendorID, err := parseShipmentFields(req)
	if err != nil {
		return badRequest(ctx, "Invalid shipment data: "+err.Error())
	}

	cmd, err := commands.NewUpdateShipmentCommand(
		id, req.Origin, req.Destination, status, req.EstimatedDelivery, routeID, vendorID,
	)
	if err != nil {
		return badRequest(ctx, "Invalid shipment data: "+err.Error())
	}

	if err := s.commands.UpdateShipment.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

func (s *Server) deleteShipment(ctx echo.Context) error {
	id, err := pathID(ctx)
	if err != nil {
		return badRequest(ctx, "Invalid shipment id")
	}

	cmd, err := commands.NewDeleteShipmentCommand(id)
	if err != nil {
		return badRequest(ctx, "Invalid shipment id")
	}

	if err := s.commands.DeleteShipment.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

// parseShipmentFields parses the enum and reference fields of a shipment
// body. An absent status stays Unknown so the command applies its default.
func parseShipmentFields(req ShipmentRequest) (shipment.Status, *kernel.UUID, *kernel.UUID, error) {
	status := shipment.Unknown
	if req.Status != "" {
		parsed, err := shipment.StatusFromString(req.Status)
		if err != nil {
			return shipment.Unknown, nil, nil, err
		}
		status = parsed
	}

	routeID, err := optionalRefID(req.RouteID)
	if err != nil {
		return shipment.Unknown, nil, nil, err
	}

	vendorID, err := optionalRefID(req.VendorID)
	if err != nil {
		return shipment.Unknown, nil, nil, err
	}

	return status, routeID, vendorID, nil
}

// optionalRefID parses an optional UUID reference from the wire.
func optionalRefID(raw *string) (*kernel.UUID, error) {
	if raw == nil || *raw == "" {
		return nil, nil
	}
	id, err := kernel.UUIDFromString(*raw)
	if err != nil {
		return nil, err
	}
	return &id, nil
}
