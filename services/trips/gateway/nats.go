package gateway

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/roadtripmate/backend/internal/pkg/constants"
	"github.com/roadtripmate/backend/internal/pkg/models"
)

// PublishCollaboratorAdded publishes a collaborator added event to NATS
func (g *TripGW) PublishCollaboratorAdded(ctx context.Context, event *models.CollaboratorAddedEvent) error {
	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal collaborator event: %w", err)
	}
	return g.natsClient.Publish(constants.SubjectCollaboratorAdded, data)
}
