package models

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Waypoint is a single point along a route path
type Waypoint struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// PassengerShare is one person's slice of the petrol cost. Share is a
// fixed-point decimal so splitting never drifts through floating point.
type PassengerShare struct {
	Name  string          `json:"name"`
	Share decimal.Decimal `json:"share"`
}

// Route is the single route record attached to a trip. It shares its
// identity with the trip: at most one route exists per trip, enforced by
// the primary key on trip_id.
//
// RoutePath, Pitstops and PassengerShares are persisted as JSONB text but
// always exposed as ordered native sequences; repositories decode on read.
type Route struct {
	TripID          uuid.UUID        `json:"trip" db:"trip_id"`
	StartLocation   string           `json:"start_location" db:"start_location"`
	Destination     string           `json:"destination" db:"destination"`
	Distance        string           `json:"distance" db:"distance"`
	Duration        string           `json:"duration" db:"duration"`
	RoutePath       []Waypoint       `json:"route_path"`
	Pitstops        []string         `json:"pitstops"`
	PetrolCost      *decimal.Decimal `json:"petrol_cost,omitempty" db:"petrol_cost"`
	PassengerShares []PassengerShare `json:"passenger_shares"`
	CreatedAt       time.Time        `json:"created_at" db:"created_at"`
	UpdatedAt       time.Time        `json:"updated_at" db:"updated_at"`
}

// UpsertRouteRequest is the payload for creating or replacing a trip's
// route. TripID selects the target trip; optional sequences default to
// empty on the create path.
type UpsertRouteRequest struct {
	TripID        uuid.UUID  `json:"trip"`
	StartLocation string     `json:"start_location"`
	Destination   string     `json:"destination"`
	Distance      string     `json:"distance"`
	Duration      string     `json:"duration"`
	RoutePath     []Waypoint `json:"route_path"`
}

// RoutePatch carries a partial route update. Only non-nil fields are
// applied; absent fields keep their stored values.
type RoutePatch struct {
	Distance        *string           `json:"distance"`
	Duration        *string           `json:"duration"`
	RoutePath       *[]Waypoint       `json:"route_path"`
	Pitstops        *[]string         `json:"pitstops"`
	PetrolCost      *decimal.Decimal  `json:"petrol_cost"`
	PassengerShares *[]PassengerShare `json:"passenger_shares"`
}

// AddPitstopRequest is the payload for appending a single pitstop
type AddPitstopRequest struct {
	Pitstop string `json:"pitstop"`
}

// DecodePitstops restores a pitstop sequence from its stored form. Older
// rows may carry a doubly-encoded JSON string; both shapes decode to an
// ordered list, and undecodable values come back empty rather than failing
// the read.
func DecodePitstops(raw []byte) []string {
	if len(raw) == 0 {
		return []string{}
	}
	var stops []string
	if err := json.Unmarshal(raw, &stops); err == nil {
		return stops
	}
	var encoded string
	if err := json.Unmarshal(raw, &encoded); err == nil {
		if err := json.Unmarshal([]byte(encoded), &stops); err == nil {
			return stops
		}
	}
	return []string{}
}
