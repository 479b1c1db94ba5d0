package routes

import (
	"context"

	"github.com/google/uuid"

	"github.com/roadtripmate/backend/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/roadtripmate/backend/services/routes RouteRepo

// RouteRepo represents the route repository interface
type RouteRepo interface {
	// UpsertRoute atomically creates the trip's route or overwrites the
	// core fields of the existing one. The bool reports creation.
	UpsertRoute(ctx context.Context, route *models.Route) (bool, error)
	GetRouteByTripID(ctx context.Context, tripID uuid.UUID) (*models.Route, error)
	ListRoutesByAuthor(ctx context.Context, authorID uuid.UUID) ([]*models.Route, error)
	UpdateRoute(ctx context.Context, route *models.Route) error
}
