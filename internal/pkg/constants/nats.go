package constants

// NATS Subjects
const (
	// User events
	SubjectUserRegistered = "user.registered"

	// Trip events
	SubjectCollaboratorAdded = "trip.collaborator.added"
)
