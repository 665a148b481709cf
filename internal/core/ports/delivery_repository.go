package ports

import (
	"context"
	"errors"

	"supplychain/internal/core/domain/model/delivery"
	"supplychain/internal/core/domain/model/kernel"
)

// ErrDuplicateDelivery is returned by Add when a delivery already exists
// for the referenced shipment. The deliveries table carries a unique index
// on the shipment reference, so a lost check-then-act race surfaces here
// instead of producing a second row. Callers upholding the one-delivery
// invariant treat it as "already exists", not as a failure.
var ErrDuplicateDelivery = errors.New("delivery already exists for shipment")

// DeliveryRepository defines the persistence contract for delivery records.
type DeliveryRepository interface {
	// Add persists a new delivery record. Returns ErrDuplicateDelivery when
	// a record for the same shipment already exists.
	Add(ctx context.Context, aggregate *delivery.Delivery) error

	// AddIfAbsent persists a new delivery record unless one already
	// references the same shipment, and reports whether a row was written.
	// Unlike Add, a lost insert race is not an error: the conflict must be
	// absorbed by the insert statement itself, so that an enclosing
	// transaction stays usable and can still commit its other writes.
	AddIfAbsent(ctx context.Context, aggregate *delivery.Delivery) (bool, error)

	// Update persists changes to an existing delivery record.
	Update(ctx context.Context, aggregate *delivery.Delivery) error

	// Get retrieves a delivery by its unique identifier.
	// Returns errs.ObjectNotFoundError when no such delivery exists.
	Get(ctx context.Context, id kernel.UUID) (*delivery.Delivery, error)

	// GetAll retrieves every delivery row, including rows that are
	// inconsistent with their shipment. Consumer-facing reads must apply
	// the consistency predicate; this method exists for the cleanup sweep.
	GetAll(ctx context.Context) ([]*delivery.Delivery, error)

	// GetForShipment retrieves the delivery referencing the given shipment.
	// Returns errs.ObjectNotFoundError when none exists.
	GetForShipment(ctx context.Context, shipmentID kernel.UUID) (*delivery.Delivery, error)

	// Exists reports whether a delivery with the given id is stored.
	Exists(ctx context.Context, id kernel.UUID) (bool, error)

	// Delete removes a delivery row by id.
	Delete(ctx context.Context, id kernel.UUID) error

	// DeleteAll removes the given delivery rows in bulk.
	DeleteAll(ctx context.Context, aggregates []*delivery.Delivery) error

	// DeleteForShipment removes all delivery rows referencing a shipment.
	// Used by the shipment delete cascade, before the shipment row goes.
	DeleteForShipment(ctx context.Context, shipmentID kernel.UUID) error
}
