package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/roadtripmate/backend/internal/pkg/apperrors"
	"github.com/roadtripmate/backend/internal/pkg/models"
	"github.com/roadtripmate/backend/internal/utils"
)

// GetProfile returns the authenticated user's own record
func (u *UserUC) GetProfile(ctx context.Context, userID uuid.UUID) (*models.User, error) {
	return u.userRepo.GetUserByID(ctx, userID)
}

// UpdateProfile applies a partial profile update. Only fields present in
// the patch are touched; an email change re-checks uniqueness.
func (u *UserUC) UpdateProfile(ctx context.Context, userID uuid.UUID, patch *models.ProfilePatch) (*models.User, error) {
	user, err := u.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if patch.Email != nil {
		email := utils.NormalizeEmail(*patch.Email)
		if !utils.IsValidEmail(email) {
			return nil, apperrors.NewValidation("email", "a valid email address is required")
		}
		if email != user.Email {
			if _, err := u.userRepo.GetUserByEmail(ctx, email); err == nil {
				return nil, fmt.Errorf("email already registered: %w", apperrors.ErrConflict)
			} else if !errors.Is(err, apperrors.ErrNotFound) {
				return nil, fmt.Errorf("failed to check existing email: %w", err)
			}
		}
		user.Email = email
	}
	if patch.FirstName != nil {
		user.FirstName = *patch.FirstName
	}
	if patch.LastName != nil {
		user.LastName = *patch.LastName
	}

	if err := u.userRepo.UpdateUser(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

// ChangePassword verifies the current password before storing a new hash
func (u *UserUC) ChangePassword(ctx context.Context, userID uuid.UUID, currentPassword, newPassword string) error {
	user, err := u.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		return err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(currentPassword)); err != nil {
		return apperrors.NewValidation("current_password", "current password is incorrect")
	}

	if !utils.IsValidPassword(newPassword) {
		return apperrors.NewValidation("new_password", fmt.Sprintf("new password must be at least %d characters long", utils.MinPasswordLength))
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	return u.userRepo.UpdatePassword(ctx, userID, string(hash))
}

// DeleteAccount permanently removes the account; the store cascades to
// authored trips, their routes and collaborator memberships.
func (u *UserUC) DeleteAccount(ctx context.Context, userID uuid.UUID) error {
	return u.userRepo.DeleteUser(ctx, userID)
}

// GetUserByID fetches any user's public record
func (u *UserUC) GetUserByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	return u.userRepo.GetUserByID(ctx, id)
}
