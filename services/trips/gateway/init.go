package gateway

import (
	natspkg "github.com/roadtripmate/backend/internal/pkg/nats"
	"github.com/roadtripmate/backend/services/trips"
)

// TripGW publishes trip collaboration events to NATS
type TripGW struct {
	natsClient *natspkg.Client
}

// NewTripGW creates a new NATS gateway instance
func NewTripGW(natsClient *natspkg.Client) trips.TripGW {
	return &TripGW{
		natsClient: natsClient,
	}
}
