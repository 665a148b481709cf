package ports

import (
	"context"

	"supplychain/internal/core/domain/model/kernel"
	"supplychain/internal/core/domain/model/vendor"
)

// VendorRepository defines the persistence contract for vendor entities.
type VendorRepository interface {
	Add(ctx context.Context, aggregate *vendor.Vendor) error
	Update(ctx context.Context, aggregate *vendor.Vendor) error
	Get(ctx context.Context, id kernel.UUID) (*vendor.Vendor, error)
	GetAll(ctx context.Context) ([]*vendor.Vendor, error)
	Exists(ctx context.Context, id kernel.UUID) (bool, error)
	Delete(ctx context.Context, id kernel.UUID) error
}
