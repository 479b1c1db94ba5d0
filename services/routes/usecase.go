package routes

import (
	"context"

	"github.com/google/uuid"

	"github.com/roadtripmate/backend/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/roadtripmate/backend/services/routes RouteUC

// RouteUC represents the route usecase interface
type RouteUC interface {
	// UpsertRoute creates or replaces the route of a trip. The bool
	// reports whether a new row was created.
	UpsertRoute(ctx context.Context, userID uuid.UUID, req *models.UpsertRouteRequest) (*models.Route, bool, error)
	GetRouteByTripID(ctx context.Context, userID, tripID uuid.UUID) (*models.Route, error)
	ListRoutes(ctx context.Context, userID uuid.UUID) ([]*models.Route, error)
	AddPitstop(ctx context.Context, userID, tripID uuid.UUID, pitstop string) (*models.Route, error)
	UpdateRoute(ctx context.Context, userID, tripID uuid.UUID, patch *models.RoutePatch) (*models.Route, error)
}
