package cargorepo

import (
	"context"
	"errors"

	"supplychain/internal/core/domain/model/cargo"
	"supplychain/internal/core/domain/model/kernel"
	"supplychain/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormCargoRepository implements CargoRepository using GORM.
type GormCargoRepository struct {
	db *gorm.DB
}

// NewGormCargoRepository creates a new GORM cargo repository.
func NewGormCargoRepository(db *gorm.DB) *GormCargoRepository {
	return &GormCargoRepository{db: db}
}

// Add saves a new cargo item. The Shipment association is omitted from the
// write; the shipment row must already exist.
func (r *GormCargoRepository) Add(ctx context.Context, aggregate *cargo.Cargo) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	return r.db.WithContext(ctx).Omit("Shipment").Create(&dto).Error
}

// Update saves an existing cargo item.
func (r *GormCargoRepository) Update(ctx context.Context, aggregate *cargo.Cargo) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Omit("Shipment").Save(&dto)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// Get retrieves a cargo item by ID.
func (r *GormCargoRepository) Get(ctx context.Context, id kernel.UUID) (*cargo.Cargo, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto CargoDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("cargo", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAll retrieves every cargo item.
func (r *GormCargoRepository) GetAll(ctx context.Context) ([]*cargo.Cargo, error) {
	var dtos []CargoDTO
	if err := r.db.WithContext(ctx).Find(&dtos).Error; err != nil {
		return nil, err
	}

	return toDomainSlice(dtos)
}

// GetForShipment retrieves the cargo items owned by a shipment.
func (r *GormCargoRepository) GetForShipment(ctx context.Context, shipmentID kernel.UUID) ([]*cargo.Cargo, error) {
	if err := shipmentID.Validate(); err != nil {
		return nil, err
	}

	var dtos []CargoDTO
	if err := r.db.WithContext(ctx).Find(&dtos, "shipment_id = ?", shipmentID.Bytes()).Error; err != nil {
		return nil, err
	}

	return toDomainSlice(dtos)
}

// Exists reports whether a cargo row with the given id is stored.
func (r *GormCargoRepository) Exists(ctx context.Context, id kernel.UUID) (bool, error) {
	if err := id.Validate(); err != nil {
		return false, err
	}

	var count int64
	if err := r.db.WithContext(ctx).Model(&CargoDTO{}).Where("id = ?", id.Bytes()).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// Delete removes a cargo row by id.
func (r *GormCargoRepository) Delete(ctx context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	return r.db.WithContext(ctx).Delete(&CargoDTO{}, "id = ?", id.Bytes()).Error
}

func toDomainSlice(dtos []CargoDTO) ([]*cargo.Cargo, error) {
	items := make([]*cargo.Cargo, 0, len(dtos))
	for _, dto := range dtos {
		c, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		items = append(items, c)
	}
	return items, nil
}
