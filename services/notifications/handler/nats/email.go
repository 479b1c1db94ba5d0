package nats

import (
	"encoding/json"
	"fmt"

	"github.com/roadtripmate/backend/internal/pkg/logger"
	"github.com/roadtripmate/backend/internal/pkg/models"
)

// handleUserRegistered sends the welcome email for a new account
func (h *Handler) handleUserRegistered(msg []byte) error {
	var event models.UserRegisteredEvent
	if err := json.Unmarshal(msg, &event); err != nil {
		return fmt.Errorf("failed to unmarshal registration event: %w", err)
	}

	body := fmt.Sprintf(
		"Hi %s,\n\n"+
			"Welcome to Roadtrip Mate!\n"+
			"We are here to help you plan unforgettable road trips across the UK.\n\n"+
			"Happy travels,\n"+
			"– The Roadtrip Mate Team 🚐💨",
		event.FirstName,
	)

	if err := h.mailer.Send(event.Email, "Welcome to Roadtrip Mate!", body); err != nil {
		return err
	}

	logger.Info("Welcome email sent",
		logger.String("user_id", event.UserID),
		logger.String("email", event.Email))
	return nil
}

// handleCollaboratorAdded notifies a user that they were added to a trip
func (h *Handler) handleCollaboratorAdded(msg []byte) error {
	var event models.CollaboratorAddedEvent
	if err := json.Unmarshal(msg, &event); err != nil {
		return fmt.Errorf("failed to unmarshal collaborator event: %w", err)
	}

	body := fmt.Sprintf(
		"Hi %s,\n\n"+
			"You've been added as a collaborator to the trip %q by %s %s.\n\n"+
			"Log in to view and help plan the route:\n"+
			"Happy travels! 🚗💨",
		event.FirstName, event.TripTitle, event.AuthorFirstName, event.AuthorLastName,
	)

	if err := h.mailer.Send(event.Email, "You've been added to a trip on Roadtrip Mate!", body); err != nil {
		return err
	}

	logger.Info("Collaborator email sent",
		logger.String("trip_id", event.TripID),
		logger.String("email", event.Email))
	return nil
}
