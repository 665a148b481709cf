package queries

import (
	"context"
	"database/sql"

	"supplychain/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetAllRoutesQueryHandler retrieves route read models directly from the
// database.
type GetAllRoutesQueryHandler struct {
	db *gorm.DB
}

// NewGetAllRoutesQueryHandler creates a handler for route list queries.
func NewGetAllRoutesQueryHandler(db *gorm.DB) GetAllRoutesQueryHandler {
	return GetAllRoutesQueryHandler{db: db}
}

// Handle executes the query to retrieve all routes, sorted by origin port.
func (h GetAllRoutesQueryHandler) Handle(
	ctx context.Context,
	query GetAllRoutesQuery,
) ([]RouteResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	routes := make([]RouteResponse, 0)

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
		ORDER BY origin_port, destination_port
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		resp, scanErr := scanRouteResponse(rows)
		if scanErr != nil {
			return nil, scanErr
		}
		routes = append(routes, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return routes, nil
}

// scanRouteResponse reads one route row. Shared with the by-id query,
// which selects the same columns.
func scanRouteResponse(rows *sql.Rows) (RouteResponse, error) {
	var resp RouteResponse
	var id uuid.UUID
	var distance, cost sql.NullFloat64

	if err := rows.Scan(
		&id,
		&resp.OriginPort,
		&resp.DestinationPort,
		&resp.Duration,
		&resp.Status,
		&distance,
		&resp.TransportationMode,
		&cost,
	); err != nil {
		return RouteResponse{}, err
	}

	routeID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return RouteResponse{}, err
	}
	resp.ID = routeID
	resp.Distance = optionalFloat(distance)
	resp.Cost = optionalFloat(cost)

	return resp, nil
}

// optionalFloat converts a nullable database float to a pointer.
func optionalFloat(f sql.NullFloat64) *float64 {
	if !f.Valid {
		return nil
	}
	return &f.Float64
}
