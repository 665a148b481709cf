package queries

import (
	"context"

	"supplychain/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetVendorQueryHandler retrieves a single vendor read model from the
// database.
type GetVendorQueryHandler struct {
	db *gorm.DB
}

// NewGetVendorQueryHandler creates a handler for by-id vendor queries.
func NewGetVendorQueryHandler(db *gorm.DB) GetVendorQueryHandler {
	return GetVendorQueryHandler{db: db}
}

// Handle executes the query. Returns errs.ObjectNotFoundError when no
// vendor has the requested id.
func (h GetVendorQueryHandler) Handle(
	ctx context.Context,
	query GetVendorQuery,
) (VendorResponse, error) {
	if err := query.Validate(); err != nil {
		return VendorResponse{}, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			name,
			contact_info,
			service_type,
			is_active
		FROM vendors
		WHERE id = ?
	`, query.VendorID().Bytes()).Rows()
	if err != nil {
		return VendorResponse{}, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return VendorResponse{}, err
		}
		return VendorResponse{}, errs.NewObjectNotFoundError("vendorId", query.VendorID())
	}

	return scanVendorResponse(rows)
}
