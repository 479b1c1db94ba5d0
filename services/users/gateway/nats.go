package gateway

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/roadtripmate/backend/internal/pkg/constants"
	"github.com/roadtripmate/backend/internal/pkg/models"
)

// PublishUserRegistered publishes a registration event to NATS
func (g *UserGW) PublishUserRegistered(ctx context.Context, event *models.UserRegisteredEvent) error {
	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal registration event: %w", err)
	}
	return g.natsClient.Publish(constants.SubjectUserRegistered, data)
}
