package deliveryrepo

import (
	"context"
	"errors"

	"supplychain/internal/core/domain/model/delivery"
	"supplychain/internal/core/domain/model/kernel"
	"supplychain/internal/core/ports"
	"supplychain/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormDeliveryRepository implements DeliveryRepository using GORM.
type GormDeliveryRepository struct {
	db *gorm.DB
}

// NewGormDeliveryRepository creates a new GORM delivery repository.
func NewGormDeliveryRepository(db *gorm.DB) *GormDeliveryRepository {
	return &GormDeliveryRepository{db: db}
}

// Add saves a new delivery record. A violation of the unique shipment index
// surfaces as ports.ErrDuplicateDelivery; relies on the connection being
// opened with TranslateError so the driver's duplicate-key error maps to
// gorm.ErrDuplicatedKey.
func (r *GormDeliveryRepository) Add(ctx context.Context, aggregate *delivery.Delivery) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ports.ErrDuplicateDelivery
		}
		return err
	}
	return nil
}

// AddIfAbsent saves a new delivery record unless one already references the
// same shipment. The conflict is handled by the INSERT itself (ON CONFLICT
// DO NOTHING), not by translating the unique violation afterwards: in
// PostgreSQL a violated constraint aborts the whole enclosing transaction,
// and the shipment update sharing that transaction must survive a lost
// materialization race.
func (r *GormDeliveryRepository) AddIfAbsent(ctx context.Context, aggregate *delivery.Delivery) (bool, error) {
	if err := aggregate.Validate(); err != nil {
		return false, err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "shipment_id"}},
		DoNothing: true,
	}).Create(&dto)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

// Update saves an existing delivery record.
func (r *GormDeliveryRepository) Update(ctx context.Context, aggregate *delivery.Delivery) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Save(&dto)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// Get retrieves a delivery by ID.
func (r *GormDeliveryRepository) Get(ctx context.Context, id kernel.UUID) (*delivery.Delivery, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto DeliveryDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("delivery", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAll retrieves every delivery row, consistent or not. The cleanup sweep
// depends on seeing the inconsistent ones.
func (r *GormDeliveryRepository) GetAll(ctx context.Context) ([]*delivery.Delivery, error) {
	var dtos []DeliveryDTO
	if err := r.db.WithContext(ctx).Find(&dtos).Error; err != nil {
		return nil, err
	}

	deliveries := make([]*delivery.Delivery, 0, len(dtos))
	for _, dto := range dtos {
		d, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		deliveries = append(deliveries, d)
	}

	return deliveries, nil
}

// GetForShipment retrieves the delivery referencing the given shipment.
func (r *GormDeliveryRepository) GetForShipment(ctx context.Context, shipmentID kernel.UUID) (*delivery.Delivery, error) {
	if err := shipmentID.Validate(); err != nil {
		return nil, err
	}

	var dto DeliveryDTO
	if err := r.db.WithContext(ctx).First(&dto, "shipment_id = ?", shipmentID.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("delivery for shipment", shipmentID.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// Exists reports whether a delivery row with the given id is stored.
func (r *GormDeliveryRepository) Exists(ctx context.Context, id kernel.UUID) (bool, error) {
	if err := id.Validate(); err != nil {
		return false, err
	}

	var count int64
	if err := r.db.WithContext(ctx).Model(&DeliveryDTO{}).Where("id = ?", id.Bytes()).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// Delete removes a delivery row by id.
func (r *GormDeliveryRepository) Delete(ctx context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	return r.db.WithContext(ctx).Delete(&DeliveryDTO{}, "id = ?", id.Bytes()).Error
}

// DeleteAll removes the given delivery rows in one statement.
func (r *GormDeliveryRepository) DeleteAll(ctx context.Context, aggregates []*delivery.Delivery) error {
	if len(aggregates) == 0 {
		return nil
	}

	ids := make([]uuid.UUID, 0, len(aggregates))
	for _, aggregate := range aggregates {
		if err := aggregate.Validate(); err != nil {
			return err
		}
		ids = append(ids, aggregate.ID().Bytes())
	}

	return r.db.WithContext(ctx).Delete(&DeliveryDTO{}, "id IN ?", ids).Error
}

// DeleteForShipment removes all delivery rows referencing a shipment.
func (r *GormDeliveryRepository) DeleteForShipment(ctx context.Context, shipmentID kernel.UUID) error {
	if err := shipmentID.Validate(); err != nil {
		return err
	}

	return r.db.WithContext(ctx).Delete(&DeliveryDTO{}, "shipment_id = ?", shipmentID.Bytes()).Error
}
