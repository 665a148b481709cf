package queries

import (
	"context"
	"database/sql"

	"supplychain/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetAllCargoQueryHandler retrieves cargo read models directly from the
// database.
type GetAllCargoQueryHandler struct {
	db *gorm.DB
}

// NewGetAllCargoQueryHandler creates a handler for cargo list queries.
func NewGetAllCargoQueryHandler(db *gorm.DB) GetAllCargoQueryHandler {
	return GetAllCargoQueryHandler{db: db}
}

// Handle executes the query to retrieve cargo items, sorted by id. When the
// query carries a shipment filter, only that shipment's items are returned.
func (h GetAllCargoQueryHandler) Handle(
	ctx context.Context,
	query GetAllCargoQuery,
) ([]CargoResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	items := make([]CargoResponse, 0)

	stmt := h.db.WithContext(ctx)
	if shipmentID := query.ShipmentID(); shipmentID != nil {
		stmt = stmt.Raw(`
			SELECT id, shipment_id, cargo_type, description, value, weight, weight_unit
			FROM cargo
			WHERE shipment_id = ?
			ORDER BY id
		`, shipmentID.Bytes())
	} else {
		stmt = stmt.Raw(`
			SELECT id, shipment_id, cargo_type, description, value, weight, weight_unit
			FROM cargo
			ORDER BY id
		`)
	}

	rows, err := stmt.Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		resp, scanErr := scanCargoResponse(rows)
		if scanErr != nil {
			return nil, scanErr
		}
		items = append(items, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return items, nil
}

// scanCargoResponse reads one cargo row. Shared with the by-id query,
// which selects the same columns.
func scanCargoResponse(rows *sql.Rows) (CargoResponse, error) {
	var resp CargoResponse
	var id, shipmentID uuid.UUID
	var value, weight sql.NullFloat64

	if err := rows.Scan(
		&id,
		&shipmentID,
		&resp.CargoType,
		&resp.Description,
		&value,
		&weight,
		&resp.WeightUnit,
	); err != nil {
		return CargoResponse{}, err
	}

	cargoID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return CargoResponse{}, err
	}
	resp.ID = cargoID

	owner, err := kernel.UUIDFromBytes(shipmentID[:])
	if err != nil {
		return CargoResponse{}, err
	}
	resp.ShipmentID = owner
	resp.Value = optionalFloat(value)
	resp.Weight = optionalFloat(weight)

	return resp, nil
}
