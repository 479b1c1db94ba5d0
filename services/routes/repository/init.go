package repository

import (
	"github.com/jmoiron/sqlx"

	"github.com/roadtripmate/backend/internal/pkg/models"
)

// RouteRepo handles route persistence against PostgreSQL
type RouteRepo struct {
	cfg *models.Config
	db  *sqlx.DB
}

// NewRouteRepo creates a new route repository instance
func NewRouteRepo(cfg *models.Config, db *sqlx.DB) *RouteRepo {
	return &RouteRepo{
		cfg: cfg,
		db:  db,
	}
}
