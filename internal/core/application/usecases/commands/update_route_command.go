package commands

import (
	"errors"

	"supplychain/internal/core/domain/model/kernel"
	"supplychain/internal/core/domain/model/route"
	"supplychain/internal/pkg/guard"
)

// ErrUpdateRouteCommandIsNotConstructed is returned when the command was
// not created through NewUpdateRouteCommand.
var ErrUpdateRouteCommandIsNotConstructed = errors.New(
	"UpdateRouteCommand must be created via NewUpdateRouteCommand constructor",
)

// UpdateRouteCommand represents a full field update of a route.
type UpdateRouteCommand struct { //nolint:recvcheck //using for validation
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

// NewUpdateRouteCommand creates a command to update a route.
func NewUpdateRouteCommand(
	routeID kernel.UUID,
	originPort string,
	destinationPort string,
	duration int,
	status route.Status,
	distance *float64,
	transportationMode string,
	cost *float64,
) (UpdateRouteCommand, error) {
	if _, err := route.NewRoute(routeID, originPort, destinationPort, duration, status, distance, transportationMode, cost); err != nil {
		return UpdateRouteCommand{}, err
	}

	return UpdateRouteCommand{
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
func (c UpdateRouteCommand) Validate() error {
	return c.guard.Validate(ErrUpdateRouteCommandIsNotConstructed)
}

// RouteID returns the identifier of the route to update.
func (c UpdateRouteCommand) RouteID() kernel.UUID { return c.routeID }

// OriginPort returns the new origin port name.
func (c UpdateRouteCommand) OriginPort() string { return c.originPort }

// DestinationPort returns the new destination port name.
func (c UpdateRouteCommand) DestinationPort() string { return c.destinationPort }

// Duration returns the new transit duration in days.
func (c UpdateRouteCommand) Duration() int { return c.duration }

// Status returns the new route status.
func (c UpdateRouteCommand) Status() route.Status { return c.status }

// Distance returns the new distance, or nil.
func (c UpdateRouteCommand) Distance() *float64 { return c.distance }

// TransportationMode returns the new transport mode label.
func (c UpdateRouteCommand) TransportationMode() string { return c.transportationMode }

// Cost returns the new cost, or nil.
func (c UpdateRouteCommand) Cost() *float64 { return c.cost }
