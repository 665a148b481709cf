// Package route contains the Route reference entity: a named lane between
// two ports that shipments may be assigned to by weak reference.
package route

import (
	"errors"
	"fmt"

	"supplychain/internal/core/domain/model/kernel"
	"supplychain/internal/pkg/errs"
)

const (
	maxPortLength = 100
	maxDuration   = 365
)

// ErrRouteIsNotConstructed is returned when a Route instance was not
// created through NewRoute or RestoreRoute.
var ErrRouteIsNotConstructed = errors.New("Route must be created via NewRoute or RestoreRoute")

// Status represents the operational state of a route.
type Status int

const (
	// StatusUnknown represents an invalid or undefined status.
	StatusUnknown Status = iota

	// StatusActive means the route accepts shipments.
	StatusActive

	// StatusDelayed means the route is operating with delays.
	StatusDelayed

	// StatusClosed means the route is not operating.
	StatusClosed
)

func statusStrings() map[Status]string {
	return map[Status]string{
		StatusActive:  "Active",
		StatusDelayed: "Delayed",
		StatusClosed:  "Closed",
	}
}

// StatusFromString parses a route status name.
func StatusFromString(s string) (Status, error) {
	for status, name := range statusStrings() {
		if name == s {
			return status, nil
		}
	}
	return StatusUnknown, errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a valid route status", s))
}

// Validate checks that the Status is one of the defined values.
func (s Status) Validate() error {
	if _, ok := statusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String implements fmt.Stringer.
func (s Status) String() string {
	if str, ok := statusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// Route describes a transportation lane. Distance, transportation mode and
// cost are descriptive and optional.
type Route struct {
	id                 kernel.UUID
	originPort         string
	destinationPort    string
	duration           int
	status             Status
	distance           *float64
	transportationMode string
	cost               *float64

	isConstructed bool
}

// NewRoute creates a validated Route. Duration is in days and must be
// between 1 and 365.
func NewRoute(
	id kernel.UUID,
	originPort string,
	destinationPort string,
	duration int,
	status Status,
	distance *float64,
	transportationMode string,
	cost *float64,
) (*Route, error) {
	r := &Route{
		isConstructed: true,
	}

	if err := errors.Join(
		id.Validate(),
		validatePort("originPort", originPort),
		validatePort("destinationPort", destinationPort),
		validateDuration(duration),
		status.Validate(),
	); err != nil {
		return nil, err
	}

	r.id = id
	r.originPort = originPort
	r.destinationPort = destinationPort
	r.duration = duration
	r.status = status
	r.distance = distance
	r.transportationMode = transportationMode
	r.cost = cost
	return r, nil
}

// RestoreRoute reconstructs a Route from persistence.
func RestoreRoute(
	id kernel.UUID,
	originPort string,
	destinationPort string,
	duration int,
	status Status,
	distance *float64,
	transportationMode string,
	cost *float64,
) (*Route, error) {
	return NewRoute(id, originPort, destinationPort, duration, status, distance, transportationMode, cost)
}

// Validate ensures the Route was created through a constructor.
func (r *Route) Validate() error {
	if r == nil || !r.isConstructed {
		return ErrRouteIsNotConstructed
	}
	return nil
}

// ID returns the route's unique identifier.
func (r *Route) ID() kernel.UUID { return r.id }

// OriginPort returns the origin port name.
func (r *Route) OriginPort() string { return r.originPort }

// DestinationPort returns the destination port name.
func (r *Route) DestinationPort() string { return r.destinationPort }

// Duration returns the transit duration in days.
func (r *Route) Duration() int { return r.duration }

// Status returns the operational status.
func (r *Route) Status() Status { return r.status }

// Distance returns the lane distance in kilometers, or nil.
func (r *Route) Distance() *float64 { return r.distance }

// TransportationMode returns the mode of transport (Sea, Air, Land, Rail).
func (r *Route) TransportationMode() string { return r.transportationMode }

// Cost returns the lane cost, or nil.
func (r *Route) Cost() *float64 { return r.cost }

// ApplyUpdate replaces all mutable fields of the route.
func (r *Route) ApplyUpdate(
	originPort string,
	destinationPort string,
	duration int,
	status Status,
	distance *float64,
	transportationMode string,
	cost *float64,
) error {
	if err := errors.Join(
		validatePort("originPort", originPort),
		validatePort("destinationPort", destinationPort),
		validateDuration(duration),
		status.Validate(),
	); err != nil {
		return err
	}

	r.originPort = originPort
	r.destinationPort = destinationPort
	r.duration = duration
	r.status = status
	r.distance = distance
	r.transportationMode = transportationMode
	r.cost = cost
	return nil
}

func validatePort(name, value string) error {
	if value == "" {
		return errs.NewValueIsRequiredError(name)
	}
	if len(value) > maxPortLength {
		return errs.NewValueIsOutOfRangeError(name+" length", len(value), 1, maxPortLength)
	}
	return nil
}

func validateDuration(duration int) error {
	if duration < 1 || duration > maxDuration {
		return errs.NewValueIsOutOfRangeError("duration", duration, 1, maxDuration)
	}
	return nil
}
