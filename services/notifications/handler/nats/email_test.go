package nats

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/roadtripmate/backend/internal/pkg/models"
)

type sentMail struct {
	to      string
	subject string
	body    string
}

type fakeMailer struct {
	sent []sentMail
	err  error
}

func (f *fakeMailer) Send(to, subject, body string) error {
	if f.err != nil {
		return f.err
	}
	f.sent = append(f.sent, sentMail{to: to, subject: subject, body: body})
	return nil
}

func TestHandleUserRegistered(t *testing.T) {
	mailer := &fakeMailer{}
	h := &Handler{mailer: mailer}

	payload, err := json.Marshal(models.UserRegisteredEvent{
		UserID:    "some-id",
		Email:     "alice@example.com",
		FirstName: "Alice",
	})
	assert.NoError(t, err)

	err = h.handleUserRegistered(payload)

	assert.NoError(t, err)
	assert.Len(t, mailer.sent, 1)
	assert.Equal(t, "alice@example.com", mailer.sent[0].to)
	assert.Equal(t, "Welcome to Roadtrip Mate!", mailer.sent[0].subject)
	assert.Contains(t, mailer.sent[0].body, "Hi Alice")
}

func TestHandleCollaboratorAdded(t *testing.T) {
	mailer := &fakeMailer{}
	h := &Handler{mailer: mailer}

	payload, err := json.Marshal(models.CollaboratorAddedEvent{
		TripID:          "trip-id",
		TripTitle:       "Coast Run",
		AuthorFirstName: "Alice",
		AuthorLastName:  "Anderson",
		Email:           "bob@example.com",
		FirstName:       "Bob",
	})
	assert.NoError(t, err)

	err = h.handleCollaboratorAdded(payload)

	assert.NoError(t, err)
	assert.Len(t, mailer.sent, 1)
	assert.Equal(t, "bob@example.com", mailer.sent[0].to)
	assert.Contains(t, mailer.sent[0].body, `"Coast Run"`)
	assert.Contains(t, mailer.sent[0].body, "Alice Anderson")
}

func TestHandleUserRegistered_BadPayload(t *testing.T) {
	h := &Handler{mailer: &fakeMailer{}}

	err := h.handleUserRegistered([]byte(`{not json`))
	assert.Error(t, err)
}

func TestHandleCollaboratorAdded_MailFailureSurfacesToCaller(t *testing.T) {
	mailer := &fakeMailer{err: errors.New("smtp down")}
	h := &Handler{mailer: mailer}

	payload, _ := json.Marshal(models.CollaboratorAddedEvent{Email: "bob@example.com"})

	err := h.handleCollaboratorAdded(payload)
	assert.Error(t, err)
}
