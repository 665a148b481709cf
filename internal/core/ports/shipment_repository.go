package ports

import (
	"context"

	"supplychain/internal/core/domain/model/kernel"
	"supplychain/internal/core/domain/model/shipment"
)

// ShipmentRepository defines the persistence contract for shipment
// aggregates.
type ShipmentRepository interface {
	// Add persists a new shipment aggregate to storage.
	Add(ctx context.Context, aggregate *shipment.Shipment) error

	// Update persists changes to an existing shipment aggregate.
	Update(ctx context.Context, aggregate *shipment.Shipment) error

	// Get retrieves a shipment by its unique identifier.
	// Returns errs.ObjectNotFoundError when no such shipment exists.
	Get(ctx context.Context, id kernel.UUID) (*shipment.Shipment, error)

	// GetAll retrieves every shipment.
	GetAll(ctx context.Context) ([]*shipment.Shipment, error)

	// Exists reports whether a shipment with the given id is stored.
	Exists(ctx context.Context, id kernel.UUID) (bool, error)

	// Delete removes the shipment row. Cargo rows owned by the shipment go
	// with it via the storage-level cascade; delivery rows must be removed
	// by the caller beforehand.
	Delete(ctx context.Context, id kernel.UUID) error
}
