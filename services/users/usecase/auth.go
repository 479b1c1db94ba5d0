package usecase

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/roadtripmate/backend/internal/pkg/apperrors"
	jwtpkg "github.com/roadtripmate/backend/internal/pkg/jwt"
	"github.com/roadtripmate/backend/internal/pkg/logger"
	"github.com/roadtripmate/backend/internal/pkg/models"
	"github.com/roadtripmate/backend/internal/utils"
)

// Register creates a new account. Email is the login identity: a second
// registration with the same address fails with a conflict and must not
// create a row. A welcome notification is published best-effort after the
// account exists.
func (u *UserUC) Register(ctx context.Context, req *models.RegisterRequest) (*models.User, error) {
	email := utils.NormalizeEmail(req.Email)

	if !utils.IsValidEmail(email) {
		return nil, apperrors.NewValidation("email", "a valid email address is required")
	}
	if !utils.IsValidPassword(req.Password) {
		return nil, apperrors.NewValidation("password", fmt.Sprintf("password must be at least %d characters long", utils.MinPasswordLength))
	}
	if req.FirstName == "" {
		return nil, apperrors.NewValidation("first_name", "first name is required")
	}
	if req.LastName == "" {
		return nil, apperrors.NewValidation("last_name", "last name is required")
	}

	// Fail fast on an address that is already registered. The unique
	// constraint on users.email backs this up under races.
	if _, err := u.userRepo.GetUserByEmail(ctx, email); err == nil {
		return nil, fmt.Errorf("email already registered: %w", apperrors.ErrConflict)
	} else if !errors.Is(err, apperrors.ErrNotFound) {
		return nil, fmt.Errorf("failed to check existing email: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		Email:        email,
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		PasswordHash: string(hash),
		IsActive:     true,
	}

	if err := u.userRepo.CreateUser(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	// Welcome email is best-effort: a publish failure is logged, never
	// surfaced to the caller.
	event := &models.UserRegisteredEvent{
		UserID:    user.ID.String(),
		Email:     user.Email,
		FirstName: user.FirstName,
		Timestamp: models.Now(),
	}
	if err := u.userGW.PublishUserRegistered(ctx, event); err != nil {
		logger.Warn("Failed to publish user registered event",
			logger.String("user_id", user.ID.String()),
			logger.Err(err))
	}

	return user, nil
}

// Login verifies credentials and issues a JWT
func (u *UserUC) Login(ctx context.Context, req *models.LoginRequest) (*models.AuthResponse, error) {
	email := utils.NormalizeEmail(req.Email)

	user, err := u.userRepo.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("no account found with this email: %w", apperrors.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to look up account: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, fmt.Errorf("incorrect password: %w", apperrors.ErrForbidden)
	}

	token, expiresAt, err := jwtpkg.GenerateToken(user.ID, user.Email, u.cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	return &models.AuthResponse{
		Token:     token,
		UserID:    user.ID.String(),
		ExpiresAt: expiresAt,
	}, nil
}
