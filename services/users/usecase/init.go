package usecase

import (
	"github.com/roadtripmate/backend/internal/pkg/models"
	"github.com/roadtripmate/backend/services/users"
)

type UserUC struct {
	userRepo users.UserRepo
	userGW   users.UserGW
	cfg      *models.Config
}

// NewUserUC creates a new user usecase instance
func NewUserUC(
	userRepo users.UserRepo,
	userGW users.UserGW,
	cfg *models.Config,
) *UserUC {
	return &UserUC{
		userRepo: userRepo,
		userGW:   userGW,
		cfg:      cfg,
	}
}
