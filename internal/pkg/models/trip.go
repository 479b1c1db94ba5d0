package models

import (
	"time"

	"github.com/google/uuid"
)

// Trip represents a planned journey. The author is set at creation time and
// never changes. Collaborators may view and contribute to the trip but hold
// no destructive rights over it; the author never appears in Collaborators.
type Trip struct {
	ID            uuid.UUID `json:"id" db:"id"`
	Title         string    `json:"title" db:"title"`
	StartLocation string    `json:"start_location" db:"start_location"`
	Destination   string    `json:"destination" db:"destination"`
	TripDate      time.Time `json:"trip_date" db:"trip_date"`
	AuthorID      uuid.UUID `json:"author" db:"author_id"`
	Collaborators []User    `json:"collaborators,omitempty"`
	CreatedAt     time.Time `json:"created_at" db:"created_at"`
	UpdatedAt     time.Time `json:"updated_at" db:"updated_at"`
}

// IsUserAllowed reports whether the given user may view or contribute to
// the trip: the author always may, and so does any listed collaborator.
func (t *Trip) IsUserAllowed(userID uuid.UUID) bool {
	if t.AuthorID == userID {
		return true
	}
	for _, c := range t.Collaborators {
		if c.ID == userID {
			return true
		}
	}
	return false
}

// CreateTripRequest is the payload for trip creation
type CreateTripRequest struct {
	Title         string `json:"title"`
	StartLocation string `json:"start_location"`
	Destination   string `json:"destination"`
	TripDate      string `json:"trip_date"`
}

// TripPatch carries a partial trip update. Only non-nil fields are applied.
// The author is not patchable.
type TripPatch struct {
	Title         *string `json:"title"`
	StartLocation *string `json:"start_location"`
	Destination   *string `json:"destination"`
	TripDate      *string `json:"trip_date"`
}

// CollaboratorRequest identifies a collaborator by email for add/remove
type CollaboratorRequest struct {
	Email string `json:"email"`
}

// CollaboratorInfo is the public view of a user in collaborator listings
type CollaboratorInfo struct {
	ID        uuid.UUID `json:"id"`
	Email     string    `json:"email"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
}

// TripCollaborators is the response shape for the collaborator listing
type TripCollaborators struct {
	Owner              CollaboratorInfo   `json:"owner"`
	Collaborators      []CollaboratorInfo `json:"collaborators"`
	CurrentUserIsOwner bool               `json:"current_user_is_owner"`
}
