package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/roadtripmate/backend/internal/pkg/apperrors"
	"github.com/roadtripmate/backend/internal/pkg/models"
)

// CreateTrip inserts a new trip authored by trip.AuthorID
func (r *TripRepo) CreateTrip(ctx context.Context, trip *models.Trip) error {
	trip.ID = uuid.New()
	now := models.Now()
	trip.CreatedAt = now
	trip.UpdatedAt = now

	query := `
		INSERT INTO trips (id, title, start_location, destination, trip_date,
			author_id, created_at, updated_at
		) VALUES (:id, :title, :start_location, :destination, :trip_date,
			:author_id, :created_at, :updated_at)
	`
	_, err := r.db.NamedExecContext(ctx, query, trip)
	if err != nil {
		return fmt.Errorf("failed to insert trip: %w", err)
	}

	return nil
}

// GetTripByID retrieves a trip with its collaborator list hydrated so the
// caller can decide access in memory.
func (r *TripRepo) GetTripByID(ctx context.Context, id uuid.UUID) (*models.Trip, error) {
	query := `
		SELECT id, title, start_location, destination, trip_date, author_id, created_at, updated_at
		FROM trips
		WHERE id = $1
	`

	var trip models.Trip
	err := r.db.GetContext(ctx, &trip, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("trip %s: %w", id, apperrors.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get trip: %w", err)
	}

	collaborators, err := r.getCollaborators(ctx, id)
	if err != nil {
		return nil, err
	}
	trip.Collaborators = collaborators

	return &trip, nil
}

func (r *TripRepo) getCollaborators(ctx context.Context, tripID uuid.UUID) ([]models.User, error) {
	query := `
		SELECT u.id, u.email, u.first_name, u.last_name, u.password_hash, u.is_active, u.created_at, u.updated_at
		FROM users u
		INNER JOIN trip_collaborators tc ON tc.user_id = u.id
		WHERE tc.trip_id = $1
		ORDER BY tc.added_at
	`

	var collaborators []models.User
	if err := r.db.SelectContext(ctx, &collaborators, query, tripID); err != nil {
		return nil, fmt.Errorf("failed to get collaborators: %w", err)
	}

	return collaborators, nil
}

// ListTripsForUser returns every trip the user authored or collaborates
// on, most recent trip date first. Each trip carries its collaborators.
func (r *TripRepo) ListTripsForUser(ctx context.Context, userID uuid.UUID) ([]*models.Trip, error) {
	query := `
		SELECT DISTINCT t.id, t.title, t.start_location, t.destination, t.trip_date,
			t.author_id, t.created_at, t.updated_at
		FROM trips t
		LEFT JOIN trip_collaborators tc ON tc.trip_id = t.id
		WHERE t.author_id = $1 OR tc.user_id = $1
		ORDER BY t.trip_date DESC
	`

	var trips []*models.Trip
	if err := r.db.SelectContext(ctx, &trips, query, userID); err != nil {
		return nil, fmt.Errorf("failed to list trips: %w", err)
	}

	for _, trip := range trips {
		collaborators, err := r.getCollaborators(ctx, trip.ID)
		if err != nil {
			return nil, err
		}
		trip.Collaborators = collaborators
	}

	return trips, nil
}

// UpdateTrip persists the mutable trip fields. The author column is never
// part of the update.
func (r *TripRepo) UpdateTrip(ctx context.Context, trip *models.Trip) error {
	trip.UpdatedAt = models.Now()

	query := `
		UPDATE trips
		SET title = :title, start_location = :start_location,
			destination = :destination, trip_date = :trip_date,
			updated_at = :updated_at
		WHERE id = :id
	`

	result, err := r.db.NamedExecContext(ctx, query, trip)
	if err != nil {
		return fmt.Errorf("failed to update trip: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check update result: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("trip %s: %w", trip.ID, apperrors.ErrNotFound)
	}

	return nil
}

// DeleteTrip hard-deletes a trip. The route and collaborator rows go with
// it via the schema's cascade rules.
func (r *TripRepo) DeleteTrip(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM trips WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete trip: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check delete result: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("trip %s: %w", id, apperrors.ErrNotFound)
	}

	return nil
}

// AddCollaborator inserts a membership row
func (r *TripRepo) AddCollaborator(ctx context.Context, tripID, userID uuid.UUID) error {
	query := `
		INSERT INTO trip_collaborators (trip_id, user_id, added_at)
		VALUES ($1, $2, $3)
	`

	_, err := r.db.ExecContext(ctx, query, tripID, userID, models.Now())
	if err != nil {
		return fmt.Errorf("failed to add collaborator: %w", err)
	}

	return nil
}

// RemoveCollaborator deletes a membership row. Removing a user who is not
// a collaborator is a no-op.
func (r *TripRepo) RemoveCollaborator(ctx context.Context, tripID, userID uuid.UUID) error {
	query := `DELETE FROM trip_collaborators WHERE trip_id = $1 AND user_id = $2`

	_, err := r.db.ExecContext(ctx, query, tripID, userID)
	if err != nil {
		return fmt.Errorf("failed to remove collaborator: %w", err)
	}

	return nil
}
