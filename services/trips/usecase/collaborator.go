package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/roadtripmate/backend/internal/pkg/apperrors"
	"github.com/roadtripmate/backend/internal/pkg/logger"
	"github.com/roadtripmate/backend/internal/pkg/models"
	"github.com/roadtripmate/backend/internal/utils"
)

func collaboratorInfo(user *models.User) models.CollaboratorInfo {
	return models.CollaboratorInfo{
		ID:        user.ID,
		Email:     user.Email,
		FirstName: user.FirstName,
		LastName:  user.LastName,
	}
}

// GetCollaborators lists the trip's owner and collaborators. Visible to
// the author and to collaborators themselves.
func (u *TripUC) GetCollaborators(ctx context.Context, userID, tripID uuid.UUID) (*models.TripCollaborators, error) {
	trip, err := u.tripRepo.GetTripByID(ctx, tripID)
	if err != nil {
		return nil, err
	}

	if !trip.IsUserAllowed(userID) {
		return nil, fmt.Errorf("you do not have access to this trip: %w", apperrors.ErrForbidden)
	}

	owner, err := u.userRepo.GetUserByID(ctx, trip.AuthorID)
	if err != nil {
		return nil, fmt.Errorf("failed to load trip owner: %w", err)
	}

	collaborators := make([]models.CollaboratorInfo, 0, len(trip.Collaborators))
	for i := range trip.Collaborators {
		collaborators = append(collaborators, collaboratorInfo(&trip.Collaborators[i]))
	}

	return &models.TripCollaborators{
		Owner:              collaboratorInfo(owner),
		Collaborators:      collaborators,
		CurrentUserIsOwner: trip.AuthorID == userID,
	}, nil
}

// AddCollaborator adds a registered user to the trip by email. Only the
// author may manage collaborators. The author can never be added to their
// own trip's collaborator set.
func (u *TripUC) AddCollaborator(ctx context.Context, userID, tripID uuid.UUID, email string) (*models.CollaboratorInfo, error) {
	trip, err := u.tripRepo.GetTripByID(ctx, tripID)
	if err != nil {
		return nil, err
	}

	if trip.AuthorID != userID {
		return nil, fmt.Errorf("only the trip author can manage collaborators: %w", apperrors.ErrForbidden)
	}

	email = utils.NormalizeEmail(email)
	if !utils.IsValidEmail(email) {
		return nil, apperrors.NewValidation("email", "a valid email address is required")
	}

	target, err := u.userRepo.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("no user found with this email: %w", apperrors.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}

	if target.ID == trip.AuthorID {
		return nil, apperrors.NewValidation("email", "the trip author cannot be added as a collaborator")
	}

	for _, c := range trip.Collaborators {
		if c.ID == target.ID {
			return nil, fmt.Errorf("user is already a collaborator on this trip: %w", apperrors.ErrConflict)
		}
	}

	if err := u.tripRepo.AddCollaborator(ctx, tripID, target.ID); err != nil {
		return nil, err
	}

	// Invitation email is best-effort, the membership stands either way
	author, err := u.userRepo.GetUserByID(ctx, trip.AuthorID)
	if err != nil {
		logger.Warn("Failed to load author for collaborator notification",
			logger.String("trip_id", tripID.String()),
			logger.Err(err))
	} else {
		event := &models.CollaboratorAddedEvent{
			TripID:          trip.ID.String(),
			TripTitle:       trip.Title,
			AuthorFirstName: author.FirstName,
			AuthorLastName:  author.LastName,
			Email:           target.Email,
			FirstName:       target.FirstName,
			Timestamp:       models.Now(),
		}
		if err := u.tripGW.PublishCollaboratorAdded(ctx, event); err != nil {
			logger.Warn("Failed to publish collaborator added event",
				logger.String("trip_id", tripID.String()),
				logger.String("email", target.Email),
				logger.Err(err))
		}
	}

	info := collaboratorInfo(target)
	return &info, nil
}

// RemoveCollaborator removes a user from the trip by email. Only the
// author may manage collaborators. Removing a registered user who is not
// on the trip is a no-op; the returned bool reports whether a membership
// was actually removed.
func (u *TripUC) RemoveCollaborator(ctx context.Context, userID, tripID uuid.UUID, email string) (bool, error) {
	trip, err := u.tripRepo.GetTripByID(ctx, tripID)
	if err != nil {
		return false, err
	}

	if trip.AuthorID != userID {
		return false, fmt.Errorf("only the trip author can manage collaborators: %w", apperrors.ErrForbidden)
	}

	email = utils.NormalizeEmail(email)

	target, err := u.userRepo.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return false, fmt.Errorf("no user found with this email: %w", apperrors.ErrNotFound)
		}
		return false, fmt.Errorf("failed to look up user: %w", err)
	}

	if target.ID == trip.AuthorID {
		return false, apperrors.NewValidation("email", "the trip author cannot be removed from their own trip")
	}

	isCollaborator := false
	for _, c := range trip.Collaborators {
		if c.ID == target.ID {
			isCollaborator = true
			break
		}
	}
	if !isCollaborator {
		return false, nil
	}

	if err := u.tripRepo.RemoveCollaborator(ctx, tripID, target.ID); err != nil {
		return false, err
	}

	return true, nil
}
