package queries

import (
	"context"
	"database/sql"

	"supplychain/internal/core/domain/model/kernel"
	"supplychain/internal/core/domain/model/shipment"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetAllDeliveriesQueryHandler retrieves consistent delivery records from
// the database. The join against shipments enforces the read-side
// consistency filter: a record only appears while its shipment is in
// Delivered status.
type GetAllDeliveriesQueryHandler struct {
	db *gorm.DB
}

// NewGetAllDeliveriesQueryHandler creates a handler for delivery list
// queries.
func NewGetAllDeliveriesQueryHandler(db *gorm.DB) GetAllDeliveriesQueryHandler {
	return GetAllDeliveriesQueryHandler{db: db}
}

// Handle executes the query to retrieve all consistent deliveries, sorted
// by id for consistent output.
func (h GetAllDeliveriesQueryHandler) Handle(
	ctx context.Context,
	query GetAllDeliveriesQuery,
) ([]DeliveryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	deliveries := make([]DeliveryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			d.id,
			d.shipment_id,
			d.actual_delivery_date,
			d.recipient,
			d.status,
			d.created_at
		FROM deliveries d
		JOIN shipments s ON s.id = d.shipment_id
		WHERE s.status = ?
		ORDER BY d.id
	`, shipment.Delivered.String()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		resp, scanErr := scanDeliveryResponse(rows)
		if scanErr != nil {
			return nil, scanErr
		}
		deliveries = append(deliveries, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return deliveries, nil
}

// scanDeliveryResponse reads one delivery row. Shared with the by-id query,
// which selects the same columns.
func scanDeliveryResponse(rows *sql.Rows) (DeliveryResponse, error) {
	var resp DeliveryResponse
	var id, shipmentID uuid.UUID
	var actualDeliveryDate sql.NullTime

	if err := rows.Scan(
		&id,
		&shipmentID,
		&actualDeliveryDate,
		&resp.Recipient,
		&resp.Status,
		&resp.CreatedAt,
	); err != nil {
		return DeliveryResponse{}, err
	}
	resp.CreatedAt = resp.CreatedAt.UTC()

	deliveryID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return DeliveryResponse{}, err
	}
	resp.ID = deliveryID

	owner, err := kernel.UUIDFromBytes(shipmentID[:])
	if err != nil {
		return DeliveryResponse{}, err
	}
	resp.ShipmentID = owner
	resp.ActualDeliveryDate = utcTime(actualDeliveryDate)

	return resp, nil
}
