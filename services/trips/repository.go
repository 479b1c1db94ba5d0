package trips

import (
	"context"

	"github.com/google/uuid"

	"github.com/roadtripmate/backend/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/roadtripmate/backend/services/trips TripRepo

// TripRepo represents the trip repository interface. Reads hydrate the
// collaborator list so authorization can be decided in memory.
type TripRepo interface {
	CreateTrip(ctx context.Context, trip *models.Trip) error
	GetTripByID(ctx context.Context, id uuid.UUID) (*models.Trip, error)
	ListTripsForUser(ctx context.Context, userID uuid.UUID) ([]*models.Trip, error)
	UpdateTrip(ctx context.Context, trip *models.Trip) error
	DeleteTrip(ctx context.Context, id uuid.UUID) error

	AddCollaborator(ctx context.Context, tripID, userID uuid.UUID) error
	RemoveCollaborator(ctx context.Context, tripID, userID uuid.UUID) error
}
