package usecase

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/roadtripmate/backend/internal/pkg/apperrors"
	"github.com/roadtripmate/backend/internal/pkg/models"
	"github.com/roadtripmate/backend/services/trips"
)

// CreateTrip creates a trip authored by the requester
func (u *TripUC) CreateTrip(ctx context.Context, authorID uuid.UUID, req *models.CreateTripRequest) (*models.Trip, error) {
	if req.Title == "" {
		return nil, apperrors.NewValidation("title", "title is required")
	}
	if req.StartLocation == "" {
		return nil, apperrors.NewValidation("start_location", "start location is required")
	}
	if req.Destination == "" {
		return nil, apperrors.NewValidation("destination", "destination is required")
	}

	tripDate, err := models.ParseDate(req.TripDate)
	if err != nil {
		return nil, apperrors.NewValidation("trip_date", "trip date must be in YYYY-MM-DD format")
	}

	trip := &models.Trip{
		Title:         req.Title,
		StartLocation: req.StartLocation,
		Destination:   req.Destination,
		TripDate:      tripDate,
		AuthorID:      authorID,
	}

	if err := u.tripRepo.CreateTrip(ctx, trip); err != nil {
		return nil, fmt.Errorf("failed to create trip: %w", err)
	}

	return trip, nil
}

// GetTrip returns a trip if the requester is its author or a collaborator
func (u *TripUC) GetTrip(ctx context.Context, userID, tripID uuid.UUID) (*models.Trip, error) {
	trip, err := u.tripRepo.GetTripByID(ctx, tripID)
	if err != nil {
		return nil, err
	}

	if !trip.IsUserAllowed(userID) {
		return nil, fmt.Errorf("you do not have access to this trip: %w", apperrors.ErrForbidden)
	}

	return trip, nil
}

// ListTrips returns every trip visible on the requester's dashboard
func (u *TripUC) ListTrips(ctx context.Context, userID uuid.UUID) ([]*models.Trip, error) {
	return u.tripRepo.ListTripsForUser(ctx, userID)
}

// UpdateTrip applies a partial update. Both the author and collaborators
// may edit; the author field itself is immutable.
func (u *TripUC) UpdateTrip(ctx context.Context, userID, tripID uuid.UUID, patch *models.TripPatch) (*models.Trip, error) {
	trip, err := u.tripRepo.GetTripByID(ctx, tripID)
	if err != nil {
		return nil, err
	}

	if !trip.IsUserAllowed(userID) {
		return nil, fmt.Errorf("you do not have access to this trip: %w", apperrors.ErrForbidden)
	}

	if patch.Title != nil {
		if *patch.Title == "" {
			return nil, apperrors.NewValidation("title", "title cannot be empty")
		}
		trip.Title = *patch.Title
	}
	if patch.StartLocation != nil {
		trip.StartLocation = *patch.StartLocation
	}
	if patch.Destination != nil {
		trip.Destination = *patch.Destination
	}
	if patch.TripDate != nil {
		tripDate, err := models.ParseDate(*patch.TripDate)
		if err != nil {
			return nil, apperrors.NewValidation("trip_date", "trip date must be in YYYY-MM-DD format")
		}
		trip.TripDate = tripDate
	}

	if err := u.tripRepo.UpdateTrip(ctx, trip); err != nil {
		return nil, err
	}

	return trip, nil
}

// DeleteOrLeaveTrip resolves a delete request by role. The author deletes
// the trip for everyone; a collaborator only leaves it, the trip itself
// survives for the author and remaining collaborators. Anyone else is
// rejected.
func (u *TripUC) DeleteOrLeaveTrip(ctx context.Context, userID, tripID uuid.UUID) (trips.DeleteOutcome, error) {
	trip, err := u.tripRepo.GetTripByID(ctx, tripID)
	if err != nil {
		return 0, err
	}

	if trip.AuthorID == userID {
		if err := u.tripRepo.DeleteTrip(ctx, tripID); err != nil {
			return 0, err
		}
		return trips.OutcomeDeleted, nil
	}

	if trip.IsUserAllowed(userID) {
		if err := u.tripRepo.RemoveCollaborator(ctx, tripID, userID); err != nil {
			return 0, err
		}
		return trips.OutcomeLeft, nil
	}

	return 0, fmt.Errorf("you do not have access to this trip: %w", apperrors.ErrForbidden)
}
