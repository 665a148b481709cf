package shipment

import (
	"errors"
	"time"

	"supplychain/internal/core/domain/model/kernel"
	"supplychain/internal/pkg/errs"
)

const maxLocationLength = 100

// ErrShipmentIsNotConstructed is returned when a Shipment instance was not
// created through NewShipment or RestoreShipment.
var ErrShipmentIsNotConstructed = errors.New("Shipment must be created via NewShipment or RestoreShipment")

// Shipment is the aggregate root for a tracked movement of cargo from an
// origin to a destination.
//
// Invariants:
//   - origin and destination are non-empty and at most 100 characters
//   - status is always one of the defined Status values
//   - route and vendor references are optional weak references
//
// Cargo items belong to the shipment exclusively; their cascade delete is
// enforced at the storage layer, not here. The associated delivery record
// is derived state owned by the delivery-consistency operations.
type Shipment struct {
	id                kernel.UUID
	origin            string
	destination       string
	status            Status
	estimatedDelivery *time.Time
	routeID           *kernel.UUID
	vendorID          *kernel.UUID

	isConstructed bool
}

// NewShipment creates a validated Shipment. Estimated delivery, route and
// vendor may be nil: assignment policy treats them as optional.
func NewShipment(
	id kernel.UUID,
	origin string,
	destination string,
	status Status,
	estimatedDelivery *time.Time,
	routeID *kernel.UUID,
	vendorID *kernel.UUID,
) (*Shipment, error) {
	s := &Shipment{
		isConstructed: true,
	}

	if err := errors.Join(
		s.setID(id),
		s.setOrigin(origin),
		s.setDestination(destination),
		s.setStatus(status),
		s.setRouteID(routeID),
		s.setVendorID(vendorID),
	); err != nil {
		return nil, err
	}

	s.estimatedDelivery = estimatedDelivery
	return s, nil
}

// RestoreShipment reconstructs a Shipment from persistence. It applies the
// same validation as NewShipment so corrupt rows are caught on load.
func RestoreShipment(
	id kernel.UUID,
	origin string,
	destination string,
	status Status,
	estimatedDelivery *time.Time,
	routeID *kernel.UUID,
	vendorID *kernel.UUID,
) (*Shipment, error) {
	return NewShipment(id, origin, destination, status, estimatedDelivery, routeID, vendorID)
}

// Validate ensures the Shipment was created through a constructor.
func (s *Shipment) Validate() error {
	if s == nil || !s.isConstructed {
		return ErrShipmentIsNotConstructed
	}
	return nil
}

// IsEqual compares two shipments by identifier.
func (s *Shipment) IsEqual(other *Shipment) bool {
	return other != nil && s.id.IsEqual(other.id)
}

// ID returns the shipment's unique identifier.
func (s *Shipment) ID() kernel.UUID {
	return s.id
}

// Origin returns the origin location name.
func (s *Shipment) Origin() string {
	return s.origin
}

// Destination returns the destination location name.
func (s *Shipment) Destination() string {
	return s.destination
}

// Status returns the current lifecycle status.
func (s *Shipment) Status() Status {
	return s.status
}

// EstimatedDelivery returns the expected delivery date, or nil when unset.
func (s *Shipment) EstimatedDelivery() *time.Time {
	return s.estimatedDelivery
}

// RouteID returns the assigned route reference, or nil when unassigned.
func (s *Shipment) RouteID() *kernel.UUID {
	return s.routeID
}

// VendorID returns the assigned vendor reference, or nil when unassigned.
func (s *Shipment) VendorID() *kernel.UUID {
	return s.vendorID
}

// IsDelivered reports whether the shipment is in Delivered status.
func (s *Shipment) IsDelivered() bool {
	return s.status == Delivered
}

// ApplyUpdate applies a full field update. Origin, destination, status and
// estimated delivery are always replaced; route and vendor are replaced only
// when a value is supplied, so an update that omits them keeps the current
// assignment (matching the update semantics of the HTTP surface).
//
// Any defined status may be set; transitions are not restricted. The caller
// is responsible for capturing the previous status before applying the
// update when it needs to react to a status change.
func (s *Shipment) ApplyUpdate(
	origin string,
	destination string,
	status Status,
	estimatedDelivery *time.Time,
	routeID *kernel.UUID,
	vendorID *kernel.UUID,
) error {
	if err := errors.Join(
		s.validateOrigin(origin),
		s.validateDestination(destination),
		status.Validate(),
	); err != nil {
		return err
	}

	s.origin = origin
	s.destination = destination
	s.status = status
	s.estimatedDelivery = estimatedDelivery

	if routeID != nil {
		if err := routeID.Validate(); err != nil {
			return err
		}
		s.routeID = routeID
	}
	if vendorID != nil {
		if err := vendorID.Validate(); err != nil {
			return err
		}
		s.vendorID = vendorID
	}

	return nil
}

func (s *Shipment) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	s.id = id
	return nil
}

func (s *Shipment) validateOrigin(origin string) error {
	if origin == "" {
		return errs.NewValueIsRequiredError("origin")
	}
	if len(origin) > maxLocationLength {
		return errs.NewValueIsOutOfRangeError("origin length", len(origin), 1, maxLocationLength)
	}
	return nil
}

func (s *Shipment) setOrigin(origin string) error {
	if err := s.validateOrigin(origin); err != nil {
		return err
	}
	s.origin = origin
	return nil
}

func (s *Shipment) validateDestination(destination string) error {
	if destination == "" {
		return errs.NewValueIsRequiredError("destination")
	}
	if len(destination) > maxLocationLength {
		return errs.NewValueIsOutOfRangeError("destination length", len(destination), 1, maxLocationLength)
	}
	return nil
}

func (s *Shipment) setDestination(destination string) error {
	if err := s.validateDestination(destination); err != nil {
		return err
	}
	s.destination = destination
	return nil
}

func (s *Shipment) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	s.status = status
	return nil
}

func (s *Shipment) setRouteID(routeID *kernel.UUID) error {
	if routeID == nil {
		return nil
	}
	if err := routeID.Validate(); err != nil {
		return err
	}
	s.routeID = routeID
	return nil
}

func (s *Shipment) setVendorID(vendorID *kernel.UUID) error {
	if vendorID == nil {
		return nil
	}
	if err := vendorID.Validate(); err != nil {
		return err
	}
	s.vendorID = vendorID
	return nil
}
