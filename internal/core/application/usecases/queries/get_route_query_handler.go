package queries

import (
	"context"

	"supplychain/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetRouteQueryHandler retrieves a single route read model from the
// database.
type GetRouteQueryHandler struct {
	db *gorm.DB
}

// NewGetRouteQueryHandler creates a handler for by-id route queries.
func NewGetRouteQueryHandler(db *gorm.DB) GetRouteQueryHandler {
	return GetRouteQueryHandler{db: db}
}

// Handle executes the query. Returns errs.ObjectNotFoundError when no
// route has the requested id.
func (h GetRouteQueryHandler) Handle(
	ctx context.Context,
	query GetRouteQuery,
) (RouteResponse, error) {
	if err := query.Validate(); err != nil {
		return RouteResponse{}, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			origin_port,
			destination_port,
			duration,
			status,
			distance,
			transportation_mode,
			cost
		FROM routes
		WHERE id = ?
	`, query.RouteID().Bytes()).Rows()
	if err != nil {
		return RouteResponse{}, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return RouteResponse{}, err
		}
		return RouteResponse{}, errs.NewObjectNotFoundError("routeId", query.RouteID())
	}

	return scanRouteResponse(rows)
}
