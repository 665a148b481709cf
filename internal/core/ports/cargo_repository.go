package ports

import (
	"context"

	"supplychain/internal/core/domain/model/cargo"
	"supplychain/internal/core/domain/model/kernel"
)

// CargoRepository defines the persistence contract for cargo items.
// Cargo rows are cascade-deleted by the database when their owning
// shipment is removed; the repository only handles direct item CRUD.
type CargoRepository interface {
	Add(ctx context.Context, aggregate *cargo.Cargo) error
	Update(ctx context.Context, aggregate *cargo.Cargo) error
	Get(ctx context.Context, id kernel.UUID) (*cargo.Cargo, error)
	GetAll(ctx context.Context) ([]*cargo.Cargo, error)
	GetForShipment(ctx context.Context, shipmentID kernel.UUID) ([]*cargo.Cargo, error)
	Exists(ctx context.Context, id kernel.UUID) (bool, error)
	Delete(ctx context.Context, id kernel.UUID) error
}
