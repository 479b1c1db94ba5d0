package gateway

import (
	natspkg "github.com/roadtripmate/backend/internal/pkg/nats"
	"github.com/roadtripmate/backend/services/users"
)

// UserGW publishes user lifecycle events to NATS
type UserGW struct {
	natsClient *natspkg.Client
}

// NewUserGW creates a new NATS gateway instance
func NewUserGW(natsClient *natspkg.Client) users.UserGW {
	return &UserGW{
		natsClient: natsClient,
	}
}
