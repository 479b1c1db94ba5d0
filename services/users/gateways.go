package users

import (
	"context"

	"github.com/roadtripmate/backend/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/roadtripmate/backend/services/users UserGW

// UserGW represents the user gateway interface for outbound events
type UserGW interface {
	PublishUserRegistered(ctx context.Context, event *models.UserRegisteredEvent) error
}
