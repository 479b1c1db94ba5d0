package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/roadtripmate/backend/internal/pkg/apperrors"
	"github.com/roadtripmate/backend/internal/pkg/models"
)

func TestGetCollaborators(t *testing.T) {
	f, ctrl := newTripUCFixture(t)
	defer ctrl.Finish()

	tripID := uuid.New()
	author := &models.User{ID: uuid.New(), Email: "alice@example.com", FirstName: "Alice"}
	collaborator := models.User{ID: uuid.New(), Email: "bob@example.com", FirstName: "Bob"}

	f.tripRepo.EXPECT().
		GetTripByID(gomock.Any(), tripID).
		Return(&models.Trip{
			ID:            tripID,
			AuthorID:      author.ID,
			Collaborators: []models.User{collaborator},
		}, nil)
	f.userRepo.EXPECT().
		GetUserByID(gomock.Any(), author.ID).
		Return(author, nil)

	// A collaborator asking sees the owner flag off
	result, err := f.uc.GetCollaborators(context.Background(), collaborator.ID, tripID)

	assert.NoError(t, err)
	assert.Equal(t, "alice@example.com", result.Owner.Email)
	assert.Len(t, result.Collaborators, 1)
	assert.Equal(t, "bob@example.com", result.Collaborators[0].Email)
	assert.False(t, result.CurrentUserIsOwner)
}

func TestAddCollaborator_Success(t *testing.T) {
	f, ctrl := newTripUCFixture(t)
	defer ctrl.Finish()

	tripID := uuid.New()
	author := &models.User{ID: uuid.New(), FirstName: "Alice", LastName: "Anderson"}
	target := &models.User{ID: uuid.New(), Email: "bob@example.com", FirstName: "Bob"}

	f.tripRepo.EXPECT().
		GetTripByID(gomock.Any(), tripID).
		Return(&models.Trip{ID: tripID, Title: "Coast Run", AuthorID: author.ID}, nil)
	f.userRepo.EXPECT().
		GetUserByEmail(gomock.Any(), "bob@example.com").
		Return(target, nil)
	f.tripRepo.EXPECT().
		AddCollaborator(gomock.Any(), tripID, target.ID).
		Return(nil)
	f.userRepo.EXPECT().
		GetUserByID(gomock.Any(), author.ID).
		Return(author, nil)
	f.tripGW.EXPECT().
		PublishCollaboratorAdded(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, event *models.CollaboratorAddedEvent) error {
			assert.Equal(t, "Coast Run", event.TripTitle)
			assert.Equal(t, "bob@example.com", event.Email)
			assert.Equal(t, "Alice", event.AuthorFirstName)
			return nil
		})

	info, err := f.uc.AddCollaborator(context.Background(), author.ID, tripID, "Bob@Example.com")

	assert.NoError(t, err)
	assert.Equal(t, target.ID, info.ID)
}

func TestAddCollaborator_Failures(t *testing.T) {
	tripID := uuid.New()
	authorID := uuid.New()
	existing := models.User{ID: uuid.New(), Email: "bob@example.com"}

	tripRow := func() *models.Trip {
		return &models.Trip{
			ID:            tripID,
			AuthorID:      authorID,
			Collaborators: []models.User{existing},
		}
	}

	t.Run("non-author forbidden", func(t *testing.T) {
		f, ctrl := newTripUCFixture(t)
		defer ctrl.Finish()

		f.tripRepo.EXPECT().GetTripByID(gomock.Any(), tripID).Return(tripRow(), nil)

		_, err := f.uc.AddCollaborator(context.Background(), existing.ID, tripID, "carol@example.com")
		assert.ErrorIs(t, err, apperrors.ErrForbidden)
	})

	t.Run("unknown email is not found", func(t *testing.T) {
		f, ctrl := newTripUCFixture(t)
		defer ctrl.Finish()

		f.tripRepo.EXPECT().GetTripByID(gomock.Any(), tripID).Return(tripRow(), nil)
		f.userRepo.EXPECT().
			GetUserByEmail(gomock.Any(), "ghost@example.com").
			Return(nil, apperrors.ErrNotFound)

		_, err := f.uc.AddCollaborator(context.Background(), authorID, tripID, "ghost@example.com")
		assert.ErrorIs(t, err, apperrors.ErrNotFound)
	})

	t.Run("already a collaborator is a conflict", func(t *testing.T) {
		f, ctrl := newTripUCFixture(t)
		defer ctrl.Finish()

		f.tripRepo.EXPECT().GetTripByID(gomock.Any(), tripID).Return(tripRow(), nil)
		f.userRepo.EXPECT().
			GetUserByEmail(gomock.Any(), "bob@example.com").
			Return(&existing, nil)

		_, err := f.uc.AddCollaborator(context.Background(), authorID, tripID, "bob@example.com")
		assert.ErrorIs(t, err, apperrors.ErrConflict)
	})

	t.Run("author cannot collaborate on own trip", func(t *testing.T) {
		f, ctrl := newTripUCFixture(t)
		defer ctrl.Finish()

		author := &models.User{ID: authorID, Email: "alice@example.com"}
		f.tripRepo.EXPECT().GetTripByID(gomock.Any(), tripID).Return(tripRow(), nil)
		f.userRepo.EXPECT().
			GetUserByEmail(gomock.Any(), "alice@example.com").
			Return(author, nil)

		_, err := f.uc.AddCollaborator(context.Background(), authorID, tripID, "alice@example.com")
		ve, ok := apperrors.IsValidation(err)
		assert.True(t, ok)
		assert.Equal(t, "email", ve.Field)
	})

	t.Run("membership stands when event publish fails", func(t *testing.T) {
		f, ctrl := newTripUCFixture(t)
		defer ctrl.Finish()

		carol := &models.User{ID: uuid.New(), Email: "carol@example.com"}
		f.tripRepo.EXPECT().GetTripByID(gomock.Any(), tripID).Return(tripRow(), nil)
		f.userRepo.EXPECT().GetUserByEmail(gomock.Any(), "carol@example.com").Return(carol, nil)
		f.tripRepo.EXPECT().AddCollaborator(gomock.Any(), tripID, carol.ID).Return(nil)
		f.userRepo.EXPECT().GetUserByID(gomock.Any(), authorID).Return(&models.User{ID: authorID}, nil)
		f.tripGW.EXPECT().
			PublishCollaboratorAdded(gomock.Any(), gomock.Any()).
			Return(errors.New("nats unavailable"))

		info, err := f.uc.AddCollaborator(context.Background(), authorID, tripID, "carol@example.com")

		assert.NoError(t, err)
		assert.Equal(t, carol.ID, info.ID)
	})
}

func TestRemoveCollaborator(t *testing.T) {
	tripID := uuid.New()
	authorID := uuid.New()
	member := models.User{ID: uuid.New(), Email: "bob@example.com"}

	tripRow := func() *models.Trip {
		return &models.Trip{
			ID:            tripID,
			AuthorID:      authorID,
			Collaborators: []models.User{member},
		}
	}

	t.Run("removes a member", func(t *testing.T) {
		f, ctrl := newTripUCFixture(t)
		defer ctrl.Finish()

		f.tripRepo.EXPECT().GetTripByID(gomock.Any(), tripID).Return(tripRow(), nil)
		f.userRepo.EXPECT().GetUserByEmail(gomock.Any(), "bob@example.com").Return(&member, nil)
		f.tripRepo.EXPECT().RemoveCollaborator(gomock.Any(), tripID, member.ID).Return(nil)

		removed, err := f.uc.RemoveCollaborator(context.Background(), authorID, tripID, "bob@example.com")

		assert.NoError(t, err)
		assert.True(t, removed)
	})

	t.Run("registered non-member is a quiet no-op", func(t *testing.T) {
		f, ctrl := newTripUCFixture(t)
		defer ctrl.Finish()

		outsider := &models.User{ID: uuid.New(), Email: "carol@example.com"}
		f.tripRepo.EXPECT().GetTripByID(gomock.Any(), tripID).Return(tripRow(), nil)
		f.userRepo.EXPECT().GetUserByEmail(gomock.Any(), "carol@example.com").Return(outsider, nil)

		removed, err := f.uc.RemoveCollaborator(context.Background(), authorID, tripID, "carol@example.com")

		assert.NoError(t, err)
		assert.False(t, removed)
	})

	t.Run("unknown email is not found", func(t *testing.T) {
		f, ctrl := newTripUCFixture(t)
		defer ctrl.Finish()

		f.tripRepo.EXPECT().GetTripByID(gomock.Any(), tripID).Return(tripRow(), nil)
		f.userRepo.EXPECT().
			GetUserByEmail(gomock.Any(), "ghost@example.com").
			Return(nil, apperrors.ErrNotFound)

		_, err := f.uc.RemoveCollaborator(context.Background(), authorID, tripID, "ghost@example.com")
		assert.ErrorIs(t, err, apperrors.ErrNotFound)
	})

	t.Run("non-author forbidden", func(t *testing.T) {
		f, ctrl := newTripUCFixture(t)
		defer ctrl.Finish()

		f.tripRepo.EXPECT().GetTripByID(gomock.Any(), tripID).Return(tripRow(), nil)

		_, err := f.uc.RemoveCollaborator(context.Background(), member.ID, tripID, "bob@example.com")
		assert.ErrorIs(t, err, apperrors.ErrForbidden)
	})
}
