package usecase

import (
	"github.com/roadtripmate/backend/internal/pkg/models"
	"github.com/roadtripmate/backend/services/routes"
	"github.com/roadtripmate/backend/services/trips"
)

// RouteUC implements route planning. Access to a route is always decided
// by the owning trip, so the trip repository is part of the wiring.
type RouteUC struct {
	routeRepo routes.RouteRepo
	tripRepo  trips.TripRepo
	cfg       *models.Config
}

// NewRouteUC creates a new route usecase instance
func NewRouteUC(
	routeRepo routes.RouteRepo,
	tripRepo trips.TripRepo,
	cfg *models.Config,
) *RouteUC {
	return &RouteUC{
		routeRepo: routeRepo,
		tripRepo:  tripRepo,
		cfg:       cfg,
	}
}
