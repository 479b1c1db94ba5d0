package usecase

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/roadtripmate/backend/internal/pkg/apperrors"
	"github.com/roadtripmate/backend/internal/pkg/models"
)

// checkTripAccess loads the trip and decides whether the user may touch
// its route. Route access always follows trip access.
func (u *RouteUC) checkTripAccess(ctx context.Context, userID, tripID uuid.UUID) error {
	trip, err := u.tripRepo.GetTripByID(ctx, tripID)
	if err != nil {
		return err
	}
	if !trip.IsUserAllowed(userID) {
		return fmt.Errorf("you do not have access to this trip: %w", apperrors.ErrForbidden)
	}
	return nil
}

// UpsertRoute creates or replaces the route of a trip. At most one route
// exists per trip; a repeat upsert overwrites the core fields and leaves
// pitstops, petrol cost and shares untouched.
func (u *RouteUC) UpsertRoute(ctx context.Context, userID uuid.UUID, req *models.UpsertRouteRequest) (*models.Route, bool, error) {
	if req.TripID == uuid.Nil {
		return nil, false, apperrors.NewValidation("trip", "trip is required")
	}
	if req.StartLocation == "" {
		return nil, false, apperrors.NewValidation("start_location", "start location is required")
	}
	if req.Destination == "" {
		return nil, false, apperrors.NewValidation("destination", "destination is required")
	}

	if err := u.checkTripAccess(ctx, userID, req.TripID); err != nil {
		return nil, false, err
	}

	route := &models.Route{
		TripID:        req.TripID,
		StartLocation: req.StartLocation,
		Destination:   req.Destination,
		Distance:      req.Distance,
		Duration:      req.Duration,
		RoutePath:     req.RoutePath,
	}
	if route.RoutePath == nil {
		route.RoutePath = []models.Waypoint{}
	}

	created, err := u.routeRepo.UpsertRoute(ctx, route)
	if err != nil {
		return nil, false, err
	}

	stored, err := u.routeRepo.GetRouteByTripID(ctx, req.TripID)
	if err != nil {
		return nil, false, err
	}

	return stored, created, nil
}

// GetRouteByTripID returns the trip's route, gated by trip access
func (u *RouteUC) GetRouteByTripID(ctx context.Context, userID, tripID uuid.UUID) (*models.Route, error) {
	if err := u.checkTripAccess(ctx, userID, tripID); err != nil {
		return nil, err
	}
	return u.routeRepo.GetRouteByTripID(ctx, tripID)
}

// ListRoutes returns the routes of the requester's own trips
func (u *RouteUC) ListRoutes(ctx context.Context, userID uuid.UUID) ([]*models.Route, error) {
	return u.routeRepo.ListRoutesByAuthor(ctx, userID)
}

// AddPitstop appends a pitstop to the route's sequence. The order of the
// existing stops is preserved and a value already present is not added
// again; the repeat request succeeds without changing anything.
func (u *RouteUC) AddPitstop(ctx context.Context, userID, tripID uuid.UUID, pitstop string) (*models.Route, error) {
	if pitstop == "" {
		return nil, apperrors.NewValidation("pitstop", "pitstop is required")
	}

	if err := u.checkTripAccess(ctx, userID, tripID); err != nil {
		return nil, err
	}

	route, err := u.routeRepo.GetRouteByTripID(ctx, tripID)
	if err != nil {
		return nil, err
	}

	for _, existing := range route.Pitstops {
		if existing == pitstop {
			return route, nil
		}
	}

	route.Pitstops = append(route.Pitstops, pitstop)
	if err := u.routeRepo.UpdateRoute(ctx, route); err != nil {
		return nil, err
	}

	return route, nil
}

// UpdateRoute applies a partial route update. Only fields present in the
// patch change; everything else keeps its stored value.
func (u *RouteUC) UpdateRoute(ctx context.Context, userID, tripID uuid.UUID, patch *models.RoutePatch) (*models.Route, error) {
	if err := u.checkTripAccess(ctx, userID, tripID); err != nil {
		return nil, err
	}

	route, err := u.routeRepo.GetRouteByTripID(ctx, tripID)
	if err != nil {
		return nil, err
	}

	if patch.Distance != nil {
		route.Distance = *patch.Distance
	}
	if patch.Duration != nil {
		route.Duration = *patch.Duration
	}
	if patch.RoutePath != nil {
		route.RoutePath = *patch.RoutePath
	}
	if patch.Pitstops != nil {
		route.Pitstops = *patch.Pitstops
	}
	if patch.PetrolCost != nil {
		cost := *patch.PetrolCost
		route.PetrolCost = &cost
	}
	if patch.PassengerShares != nil {
		route.PassengerShares = *patch.PassengerShares
	}

	if err := u.routeRepo.UpdateRoute(ctx, route); err != nil {
		return nil, err
	}

	return route, nil
}
