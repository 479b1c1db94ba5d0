package models

import "time"

// UserRegisteredEvent is published after a new account is created. The
// mail worker turns it into a welcome email; delivery is best-effort and
// never affects the registration itself.
type UserRegisteredEvent struct {
	UserID    string    `json:"user_id"`
	Email     string    `json:"email"`
	FirstName string    `json:"first_name"`
	Timestamp time.Time `json:"timestamp"`
}

// CollaboratorAddedEvent is published after a user is added to a trip's
// collaborator set.
type CollaboratorAddedEvent struct {
	TripID          string    `json:"trip_id"`
	TripTitle       string    `json:"trip_title"`
	AuthorFirstName string    `json:"author_first_name"`
	AuthorLastName  string    `json:"author_last_name"`
	Email           string    `json:"email"`
	FirstName       string    `json:"first_name"`
	Timestamp       time.Time `json:"timestamp"`
}
