package repository

import (
	"github.com/jmoiron/sqlx"

	"github.com/roadtripmate/backend/internal/pkg/models"
)

// TripRepo handles trip persistence against PostgreSQL
type TripRepo struct {
	cfg *models.Config
	db  *sqlx.DB
}

// NewTripRepo creates a new trip repository instance
func NewTripRepo(cfg *models.Config, db *sqlx.DB) *TripRepo {
	return &TripRepo{
		cfg: cfg,
		db:  db,
	}
}
