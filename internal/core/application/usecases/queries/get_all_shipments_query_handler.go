package queries

import (
	"context"
	"database/sql"
	"time"

	"supplychain/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetAllShipmentsQueryHandler retrieves shipment read models directly from
// the database.
type GetAllShipmentsQueryHandler struct {
	db *gorm.DB
}

// NewGetAllShipmentsQueryHandler creates a handler for shipment list
// queries.
func NewGetAllShipmentsQueryHandler(db *gorm.DB) GetAllShipmentsQueryHandler {
	return GetAllShipmentsQueryHandler{db: db}
}

// Handle executes the query to retrieve all shipments, sorted by id for
// consistent output.
func (h GetAllShipmentsQueryHandler) Handle(
	ctx context.Context,
	query GetAllShipmentsQuery,
) ([]ShipmentResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	shipments := make([]ShipmentResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			origin,
			destination,
			status,
			estimated_delivery,
			route_id,
			vendor_id,
			created_at,
			updated_at
		FROM shipments
		ORDER BY id
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		resp, scanErr := scanShipmentResponse(rows)
		if scanErr != nil {
			return nil, scanErr
		}
		shipments = append(shipments, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return shipments, nil
}

// scanShipmentResponse reads one shipment row. Shared with the by-id query,
// which selects the same columns.
func scanShipmentResponse(rows *sql.Rows) (ShipmentResponse, error) {
	var resp ShipmentResponse
	var id uuid.UUID
	var estimatedDelivery sql.NullTime
	var routeID, vendorID uuid.NullUUID

	if err := rows.Scan(
		&id,
		&resp.Origin,
		&resp.Destination,
		&resp.Status,
		&estimatedDelivery,
		&routeID,
		&vendorID,
		&resp.CreatedAt,
		&resp.UpdatedAt,
	); err != nil {
		return ShipmentResponse{}, err
	}
	resp.CreatedAt = resp.CreatedAt.UTC()
	resp.UpdatedAt = resp.UpdatedAt.UTC()

	shipmentID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return ShipmentResponse{}, err
	}
	resp.ID = shipmentID

	resp.EstimatedDelivery = utcTime(estimatedDelivery)
	if resp.RouteID, err = optionalUUID(routeID); err != nil {
		return ShipmentResponse{}, err
	}
	if resp.VendorID, err = optionalUUID(vendorID); err != nil {
		return ShipmentResponse{}, err
	}

	return resp, nil
}

// optionalUUID converts a nullable database UUID to a domain identifier.
func optionalUUID(id uuid.NullUUID) (*kernel.UUID, error) {
	if !id.Valid {
		return nil, nil //nolint:nilnil //nil means the reference is unset
	}
	converted, err := kernel.UUIDFromBytes(id.UUID[:])
	if err != nil {
		return nil, err
	}
	return &converted, nil
}

// utcTime normalizes a nullable timestamp to UTC.
func utcTime(t sql.NullTime) *time.Time {
	if !t.Valid {
		return nil
	}
	utc := t.Time.UTC()
	return &utc
}
