package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/roadtripmate/backend/internal/pkg/apperrors"
	"github.com/roadtripmate/backend/internal/pkg/models"
)

// routeRow is the persisted shape of a route. The sequence columns are
// JSONB and come back as raw bytes; decoding happens on read so malformed
// legacy values never break a fetch.
type routeRow struct {
	TripID          uuid.UUID           `db:"trip_id"`
	StartLocation   string              `db:"start_location"`
	Destination     string              `db:"destination"`
	Distance        string              `db:"distance"`
	Duration        string              `db:"duration"`
	RoutePath       []byte              `db:"route_path"`
	Pitstops        []byte              `db:"pitstops"`
	PetrolCost      decimal.NullDecimal `db:"petrol_cost"`
	PassengerShares []byte              `db:"passenger_shares"`
	CreatedAt       time.Time           `db:"created_at"`
	UpdatedAt       time.Time           `db:"updated_at"`
}

func (row *routeRow) toModel() *models.Route {
	route := &models.Route{
		TripID:          row.TripID,
		StartLocation:   row.StartLocation,
		Destination:     row.Destination,
		Distance:        row.Distance,
		Duration:        row.Duration,
		RoutePath:       []models.Waypoint{},
		Pitstops:        models.DecodePitstops(row.Pitstops),
		PassengerShares: []models.PassengerShare{},
		CreatedAt:       row.CreatedAt,
		UpdatedAt:       row.UpdatedAt,
	}

	if len(row.RoutePath) > 0 {
		var path []models.Waypoint
		if err := json.Unmarshal(row.RoutePath, &path); err == nil {
			route.RoutePath = path
		}
	}
	if len(row.PassengerShares) > 0 {
		var shares []models.PassengerShare
		if err := json.Unmarshal(row.PassengerShares, &shares); err == nil {
			route.PassengerShares = shares
		}
	}
	if row.PetrolCost.Valid {
		cost := row.PetrolCost.Decimal
		route.PetrolCost = &cost
	}

	return route
}

func encodeSequence(v interface{}) ([]byte, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("failed to encode route sequence: %w", err)
	}
	return data, nil
}

// UpsertRoute creates the trip's route or overwrites the core fields of
// the existing one in a single statement, so two concurrent upserts can
// never produce two rows. Pitstops, petrol cost and shares are left alone
// on the update branch.
func (r *RouteRepo) UpsertRoute(ctx context.Context, route *models.Route) (bool, error) {
	routePath, err := encodeSequence(route.RoutePath)
	if err != nil {
		return false, err
	}

	now := models.Now()

	query := `
		INSERT INTO routes (trip_id, start_location, destination, distance,
			duration, route_path, pitstops, passenger_shares, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, '[]', '[]', $7, $7)
		ON CONFLICT (trip_id) DO UPDATE
		SET start_location = EXCLUDED.start_location,
			destination = EXCLUDED.destination,
			distance = EXCLUDED.distance,
			duration = EXCLUDED.duration,
			route_path = EXCLUDED.route_path,
			updated_at = EXCLUDED.updated_at
		RETURNING (xmax = 0) AS created
	`

	var created bool
	err = r.db.QueryRowContext(ctx, query,
		route.TripID, route.StartLocation, route.Destination,
		route.Distance, route.Duration, routePath, now,
	).Scan(&created)
	if err != nil {
		return false, fmt.Errorf("failed to upsert route: %w", err)
	}

	return created, nil
}

// GetRouteByTripID retrieves the route attached to a trip
func (r *RouteRepo) GetRouteByTripID(ctx context.Context, tripID uuid.UUID) (*models.Route, error) {
	query := `
		SELECT trip_id, start_location, destination, distance, duration,
			route_path, pitstops, petrol_cost, passenger_shares, created_at, updated_at
		FROM routes
		WHERE trip_id = $1
	`

	var row routeRow
	err := r.db.GetContext(ctx, &row, query, tripID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("route for trip %s: %w", tripID, apperrors.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get route: %w", err)
	}

	return row.toModel(), nil
}

// ListRoutesByAuthor returns the routes of every trip the user authored
func (r *RouteRepo) ListRoutesByAuthor(ctx context.Context, authorID uuid.UUID) ([]*models.Route, error) {
	query := `
		SELECT r.trip_id, r.start_location, r.destination, r.distance, r.duration,
			r.route_path, r.pitstops, r.petrol_cost, r.passenger_shares, r.created_at, r.updated_at
		FROM routes r
		INNER JOIN trips t ON t.id = r.trip_id
		WHERE t.author_id = $1
		ORDER BY r.created_at DESC
	`

	var rows []routeRow
	if err := r.db.SelectContext(ctx, &rows, query, authorID); err != nil {
		return nil, fmt.Errorf("failed to list routes: %w", err)
	}

	result := make([]*models.Route, 0, len(rows))
	for i := range rows {
		result = append(result, rows[i].toModel())
	}

	return result, nil
}

// UpdateRoute persists the full current state of a route
func (r *RouteRepo) UpdateRoute(ctx context.Context, route *models.Route) error {
	routePath, err := encodeSequence(route.RoutePath)
	if err != nil {
		return err
	}
	pitstops, err := encodeSequence(route.Pitstops)
	if err != nil {
		return err
	}
	shares, err := encodeSequence(route.PassengerShares)
	if err != nil {
		return err
	}

	petrolCost := decimal.NullDecimal{}
	if route.PetrolCost != nil {
		petrolCost = decimal.NullDecimal{Decimal: *route.PetrolCost, Valid: true}
	}

	query := `
		UPDATE routes
		SET start_location = $2, destination = $3, distance = $4, duration = $5,
			route_path = $6, pitstops = $7, petrol_cost = $8,
			passenger_shares = $9, updated_at = $10
		WHERE trip_id = $1
	`

	result, err := r.db.ExecContext(ctx, query,
		route.TripID, route.StartLocation, route.Destination,
		route.Distance, route.Duration, routePath, pitstops,
		petrolCost, shares, models.Now(),
	)
	if err != nil {
		return fmt.Errorf("failed to update route: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check update result: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("route for trip %s: %w", route.TripID, apperrors.ErrNotFound)
	}

	return nil
}
