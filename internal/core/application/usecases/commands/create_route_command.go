package commands

import (
	"errors"

	"supplychain/internal/core/domain/model/kernel"
	"supplychain/internal/core/domain/model/route"
	"supplychain/internal/pkg/guard"
)

// ErrCreateRouteCommandIsNotConstructed is returned when the command was
// not created through NewCreateRouteCommand.
var ErrCreateRouteCommandIsNotConstructed = errors.New(
	"CreateRouteCommand must be created via NewCreateRouteCommand constructor",
)

// CreateRouteCommand represents a request to register a shipping route.
type CreateRouteCommand struct { //nolint:recvcheck //using for validation
	routeID            kernel.UUID
	originPort         string
	destinationPort    string
	duration           int
	status             route.Status
	distance           *float64
	transportationMode string
	cost               *float64

	guard guard.ConstructorGuard
}

// NewCreateRouteCommand creates a command to register a route. Status
// defaults to Active when not supplied.
func NewCreateRouteCommand(
	routeID kernel.UUID,
	originPort string,
	destinationPort string,
	duration int,
	status route.Status,
	distance *float64,
	transportationMode string,
	cost *float64,
) (CreateRouteCommand, error) {
	if status == route.StatusUnknown {
		status = route.StatusActive
	}

	if _, err := route.NewRoute(routeID, originPort, destinationPort, duration, status, distance, transportationMode, cost); err != nil {
		return CreateRouteCommand{}, err
	}

	return CreateRouteCommand{
		routeID:            routeID,
		originPort:         originPort,
		destinationPort:    destinationPort,
		duration:           duration,
		status:             status,
		distance:           distance,
		transportationMode: transportationMode,
		cost:               cost,
		guard:              guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateRouteCommand) Validate() error {
	return c.guard.Validate(ErrCreateRouteCommandIsNotConstructed)
}

// RouteID returns the identifier for the new route.
func (c CreateRouteCommand) RouteID() kernel.UUID { return c.routeID }

// OriginPort returns the route's origin port name.
func (c CreateRouteCommand) OriginPort() string { return c.originPort }

// DestinationPort returns the route's destination port name.
func (c CreateRouteCommand) DestinationPort() string { return c.destinationPort }

// Duration returns the transit duration in days.
func (c CreateRouteCommand) Duration() int { return c.duration }

// Status returns the route status.
func (c CreateRouteCommand) Status() route.Status { return c.status }

// Distance returns the route distance, or nil.
func (c CreateRouteCommand) Distance() *float64 { return c.distance }

// TransportationMode returns the transport mode label.
func (c CreateRouteCommand) TransportationMode() string { return c.transportationMode }

// Cost returns the route cost, or nil.
func (c CreateRouteCommand) Cost() *float64 { return c.cost }
