package queries

import (
	"context"
	"database/sql"

	"supplychain/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetAllVendorsQueryHandler retrieves vendor read models directly from the
// database.
type GetAllVendorsQueryHandler struct {
	db *gorm.DB
}

// NewGetAllVendorsQueryHandler creates a handler for vendor list queries.
func NewGetAllVendorsQueryHandler(db *gorm.DB) GetAllVendorsQueryHandler {
	return GetAllVendorsQueryHandler{db: db}
}

// Handle executes the query to retrieve all vendors, sorted by name.
func (h GetAllVendorsQueryHandler) Handle(
	ctx context.Context,
	query GetAllVendorsQuery,
) ([]VendorResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	vendors := make([]VendorResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			name,
			contact_info,
			service_type,
			is_active
		FROM vendors
		ORDER BY name
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		resp, scanErr := scanVendorResponse(rows)
		if scanErr != nil {
			return nil, scanErr
		}
		vendors = append(vendors, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return vendors, nil
}

// scanVendorResponse reads one vendor row. Shared with the by-id query,
// which selects the same columns.
func scanVendorResponse(rows *sql.Rows) (VendorResponse, error) {
	var resp VendorResponse
	var id uuid.UUID

	if err := rows.Scan(
		&id,
		&resp.Name,
		&resp.ContactInfo,
		&resp.ServiceType,
		&resp.IsActive,
	); err != nil {
		return VendorResponse{}, err
	}

	vendorID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return VendorResponse{}, err
	}
	resp.ID = vendorID

	return resp, nil
}
