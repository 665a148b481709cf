package queries

import (
	"context"

	"supplychain/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetCargoQueryHandler retrieves a single cargo read model from the
// database.
type GetCargoQueryHandler struct {
	db *gorm.DB
}

// NewGetCargoQueryHandler creates a handler for by-id cargo queries.
func NewGetCargoQueryHandler(db *gorm.DB) GetCargoQueryHandler {
	return GetCargoQueryHandler{db: db}
}

// Handle executes the query. Returns errs.ObjectNotFoundError when no
// cargo item has the requested id.
func (h GetCargoQueryHandler) Handle(
	ctx context.Context,
	query GetCargoQuery,
) (CargoResponse, error) {
	if err := query.Validate(); err != nil {
		return CargoResponse{}, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT id, shipment_id, cargo_type, description, value, weight, weight_unit
		FROM cargo
		WHERE id = ?
	`, query.CargoID().Bytes()).Rows()
	if err != nil {
		return CargoResponse{}, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return CargoResponse{}, err
		}
		return CargoResponse{}, errs.NewObjectNotFoundError("cargoId", query.CargoID())
	}

	return scanCargoResponse(rows)
}
