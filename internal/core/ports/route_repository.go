package ports

import (
	"context"

	"supplychain/internal/core/domain/model/kernel"
	"supplychain/internal/core/domain/model/route"
)

// RouteRepository defines the persistence contract for route entities.
type RouteRepository interface {
	Add(ctx context.Context, aggregate *route.Route) error
	Update(ctx context.Context, aggregate *route.Route) error
	Get(ctx context.Context, id kernel.UUID) (*route.Route, error)
	GetAll(ctx context.Context) ([]*route.Route, error)
	Exists(ctx context.Context, id kernel.UUID) (bool, error)
	Delete(ctx context.Context, id kernel.UUID) error
}
