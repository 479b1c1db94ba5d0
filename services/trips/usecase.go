package trips

import (
	"context"

	"github.com/google/uuid"

	"github.com/roadtripmate/backend/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/roadtripmate/backend/services/trips TripUC

// DeleteOutcome describes what a delete-or-leave request actually did
type DeleteOutcome int

const (
	// OutcomeDeleted means the author removed the trip for everyone
	OutcomeDeleted DeleteOutcome = iota
	// OutcomeLeft means a collaborator removed the trip from their own dashboard
	OutcomeLeft
)

// TripUC represents the trip usecase interface
type TripUC interface {
	CreateTrip(ctx context.Context, authorID uuid.UUID, req *models.CreateTripRequest) (*models.Trip, error)
	GetTrip(ctx context.Context, userID, tripID uuid.UUID) (*models.Trip, error)
	ListTrips(ctx context.Context, userID uuid.UUID) ([]*models.Trip, error)
	UpdateTrip(ctx context.Context, userID, tripID uuid.UUID, patch *models.TripPatch) (*models.Trip, error)
	DeleteOrLeaveTrip(ctx context.Context, userID, tripID uuid.UUID) (DeleteOutcome, error)

	GetCollaborators(ctx context.Context, userID, tripID uuid.UUID) (*models.TripCollaborators, error)
	AddCollaborator(ctx context.Context, userID, tripID uuid.UUID, email string) (*models.CollaboratorInfo, error)
	RemoveCollaborator(ctx context.Context, userID, tripID uuid.UUID, email string) (bool, error)
}
