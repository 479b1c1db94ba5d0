package trips

import (
	"context"

	"github.com/roadtripmate/backend/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/roadtripmate/backend/services/trips TripGW

// TripGW represents the trip gateway interface for outbound events
type TripGW interface {
	PublishCollaboratorAdded(ctx context.Context, event *models.CollaboratorAddedEvent) error
}
