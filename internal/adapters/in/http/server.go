// Package http provides the REST surface and the server-sent-event stream.
// Handlers translate between wire DTOs and the application's commands and
// queries; no business logic lives here.
package http

import (
	"errors"
	"net/http"

	"supplychain/internal/core/application/usecases/commands"
	"supplychain/internal/core/application/usecases/queries"
	"supplychain/internal/core/domain/model/kernel"
	"supplychain/internal/core/ports"
	"supplychain/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// CommandHandlers bundles the write-side handlers the server dispatches to.
type CommandHandlers struct {
	CreateShipment    commands.CreateShipmentCommandHandler
	UpdateShipment    commands.UpdateShipmentCommandHandler
	DeleteShipment    commands.DeleteShipmentCommandHandler
	CreateDelivery    commands.CreateDeliveryCommandHandler
	UpdateDelivery    commands.UpdateDeliveryCommandHandler
	DeleteDelivery    commands.DeleteDeliveryCommandHandler
	CleanupDeliveries commands.CleanupDeliveriesCommandHandler
	CreateRoute       commands.CreateRouteCommandHandler
	UpdateRoute       commands.UpdateRouteCommandHandler
	DeleteRoute       commands.DeleteRouteCommandHandler
	CreateVendor      commands.CreateVendorCommandHandler
	UpdateVendor      commands.UpdateVendorCommandHandler
	DeleteVendor      commands.DeleteVendorCommandHandler
	CreateCargo       commands.CreateCargoCommandHandler
	UpdateCargo       commands.UpdateCargoCommandHandler
	DeleteCargo       commands.DeleteCargoCommandHandler
}

// QueryHandlers bundles the read-side handlers.
type QueryHandlers struct {
	GetAllShipments  queries.GetAllShipmentsQueryHandler
	GetShipment      queries.GetShipmentQueryHandler
	GetAllDeliveries queries.GetAllDeliveriesQueryHandler
	GetDelivery      queries.GetDeliveryQueryHandler
	GetAllRoutes     queries.GetAllRoutesQueryHandler
	GetRoute         queries.GetRouteQueryHandler
	GetAllVendors    queries.GetAllVendorsQueryHandler
	GetVendor        queries.GetVendorQueryHandler
	GetAllCargo      queries.GetAllCargoQueryHandler
	GetCargo         queries.GetCargoQueryHandler
}

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	commands CommandHandlers
	queries  QueryHandlers
	hub      *EventHub
}

// NewServer creates an HTTP server dispatching to the given handlers. The
// hub serves the /api/events stream.
func NewServer(commandHandlers CommandHandlers, queryHandlers QueryHandlers, hub *EventHub) *Server {
	return &Server{
		commands: commandHandlers,
		queries:  queryHandlers,
		hub:      hub,
	}
}

// RegisterRoutes mounts the API on the given echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api")

	api.GET("/shipments", s.getShipments)
	api.GET("/shipments/:id", s.getShipment)
	api.POST("/shipments", s.createShipment)
	api.PUT("/shipments/:id", s.updateShipment)
	api.DELETE("/shipments/:id", s.deleteShipment)

	api.GET("/deliveries", s.getDeliveries)
	api.GET("/deliveries/:id", s.getDelivery)
	api.POST("/deliveries", s.createDelivery)
	api.PUT("/deliveries/:id", s.updateDelivery)
	api.DELETE("/deliveries/:id", s.deleteDelivery)
	api.POST("/deliveries/cleanup", s.cleanupDeliveries)

	api.GET("/routes", s.getRoutes)
	api.GET("/routes/:id", s.getRoute)
	api.POST("/routes", s.createRoute)
	api.PUT("/routes/:id", s.updateRoute)
	api.DELETE("/routes/:id", s.deleteRoute)

	api.GET("/vendors", s.getVendors)
	api.GET("/vendors/:id", s.getVendor)
	api.POST("/vendors", s.createVendor)
	api.PUT("/vendors/:id", s.updateVendor)
	api.DELETE("/vendors/:id", s.deleteVendor)

	api.GET("/cargo", s.getCargo)
	api.GET("/cargo/:id", s.getCargoItem)
	api.POST("/cargo", s.createCargo)
	api.PUT("/cargo/:id", s.updateCargo)
	api.DELETE("/cargo/:id", s.deleteCargo)

	api.GET("/events", s.hub.handleEvents)

	e.GET("/health", s.health)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
}

func (s *Server) health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// pathID parses the :id path parameter.
func pathID(ctx echo.Context) (kernel.UUID, error) {
	return kernel.UUIDFromString(ctx.Param("id"))
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, ErrorResponse{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

// writeError maps an application error to the wire: missing objects are
// 404, a delivery that already exists for the shipment is 409, anything
// else is 500.
func writeError(ctx echo.Context, err error) error {
	var notFound *errs.ObjectNotFoundError
	switch {
	case errors.As(err, &notFound):
		return ctx.JSON(http.StatusNotFound, ErrorResponse{
			Code:    http.StatusNotFound,
			Message: err.Error(),
		})
	case errors.Is(err, ports.ErrDuplicateDelivery):
		return ctx.JSON(http.StatusConflict, ErrorResponse{
			Code:    http.StatusConflict,
			Message: err.Error(),
		})
	default:
		return ctx.JSON(http.StatusInternalServerError, ErrorResponse{
			Code:    http.StatusInternalServerError,
			Message: "Internal server error",
		})
	}
}
