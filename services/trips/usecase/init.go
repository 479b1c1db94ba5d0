package usecase

import (
	"github.com/roadtripmate/backend/internal/pkg/models"
	"github.com/roadtripmate/backend/services/trips"
	"github.com/roadtripmate/backend/services/users"
)

// TripUC implements trip planning and collaborator management. It reaches
// into the user repository to resolve collaborator emails.
type TripUC struct {
	tripRepo trips.TripRepo
	userRepo users.UserRepo
	tripGW   trips.TripGW
	cfg      *models.Config
}

// NewTripUC creates a new trip usecase instance
func NewTripUC(
	tripRepo trips.TripRepo,
	userRepo users.UserRepo,
	tripGW trips.TripGW,
	cfg *models.Config,
) *TripUC {
	return &TripUC{
		tripRepo: tripRepo,
		userRepo: userRepo,
		tripGW:   tripGW,
		cfg:      cfg,
	}
}
