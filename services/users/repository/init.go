package repository

import (
	"github.com/jmoiron/sqlx"

	"github.com/roadtripmate/backend/internal/pkg/models"
)

// UserRepo handles user persistence against PostgreSQL
type UserRepo struct {
	cfg *models.Config
	db  *sqlx.DB
}

// NewUserRepo creates a new user repository instance
func NewUserRepo(cfg *models.Config, db *sqlx.DB) *UserRepo {
	return &UserRepo{
		cfg: cfg,
		db:  db,
	}
}
