package usecase

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"

	"github.com/roadtripmate/backend/internal/pkg/apperrors"
	"github.com/roadtripmate/backend/internal/pkg/models"
	"github.com/roadtripmate/backend/services/users/mocks"
)

func strPtr(s string) *string { return &s }

func TestUpdateProfile_PartialPatch(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockUserRepo(ctrl)
	mockGW := mocks.NewMockUserGW(ctrl)

	userID := uuid.New()
	current := &models.User{
		ID:        userID,
		Email:     "alice@example.com",
		FirstName: "Alice",
		LastName:  "Anderson",
	}

	mockRepo.EXPECT().
		GetUserByID(gomock.Any(), userID).
		Return(current, nil)

	mockRepo.EXPECT().
		UpdateUser(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, user *models.User) error {
			assert.Equal(t, "Alicia", user.FirstName)
			assert.Equal(t, "Anderson", user.LastName, "untouched field keeps its value")
			assert.Equal(t, "alice@example.com", user.Email)
			return nil
		})

	uc := NewUserUC(mockRepo, mockGW, testConfig())

	// Act
	updated, err := uc.UpdateProfile(context.Background(), userID, &models.ProfilePatch{
		FirstName: strPtr("Alicia"),
	})

	// Assert
	assert.NoError(t, err)
	assert.Equal(t, "Alicia", updated.FirstName)
}

func TestUpdateProfile_EmailConflict(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockUserRepo(ctrl)
	mockGW := mocks.NewMockUserGW(ctrl)

	userID := uuid.New()

	mockRepo.EXPECT().
		GetUserByID(gomock.Any(), userID).
		Return(&models.User{ID: userID, Email: "alice@example.com"}, nil)

	mockRepo.EXPECT().
		GetUserByEmail(gomock.Any(), "bob@example.com").
		Return(&models.User{ID: uuid.New(), Email: "bob@example.com"}, nil)

	uc := NewUserUC(mockRepo, mockGW, testConfig())

	_, err := uc.UpdateProfile(context.Background(), userID, &models.ProfilePatch{
		Email: strPtr("Bob@Example.com"),
	})

	assert.ErrorIs(t, err, apperrors.ErrConflict)
}

func TestUpdateProfile_SameEmailNoConflictCheck(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockUserRepo(ctrl)
	mockGW := mocks.NewMockUserGW(ctrl)

	userID := uuid.New()

	mockRepo.EXPECT().
		GetUserByID(gomock.Any(), userID).
		Return(&models.User{ID: userID, Email: "alice@example.com"}, nil)
	mockRepo.EXPECT().
		UpdateUser(gomock.Any(), gomock.Any()).
		Return(nil)

	uc := NewUserUC(mockRepo, mockGW, testConfig())

	// Re-submitting the current address must not trip the conflict check
	_, err := uc.UpdateProfile(context.Background(), userID, &models.ProfilePatch{
		Email: strPtr("Alice@Example.com"),
	})

	assert.NoError(t, err)
}

func TestChangePassword_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockUserRepo(ctrl)
	mockGW := mocks.NewMockUserGW(ctrl)

	userID := uuid.New()
	hash, err := bcrypt.GenerateFromPassword([]byte("oldpassword"), bcrypt.DefaultCost)
	assert.NoError(t, err)

	mockRepo.EXPECT().
		GetUserByID(gomock.Any(), userID).
		Return(&models.User{ID: userID, PasswordHash: string(hash)}, nil)

	mockRepo.EXPECT().
		UpdatePassword(gomock.Any(), userID, gomock.Any()).
		DoAndReturn(func(ctx context.Context, id uuid.UUID, newHash string) error {
			assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(newHash), []byte("newpassword")))
			return nil
		})

	uc := NewUserUC(mockRepo, mockGW, testConfig())

	err = uc.ChangePassword(context.Background(), userID, "oldpassword", "newpassword")
	assert.NoError(t, err)
}

func TestChangePassword_WrongCurrentPassword(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockUserRepo(ctrl)
	mockGW := mocks.NewMockUserGW(ctrl)

	userID := uuid.New()
	hash, err := bcrypt.GenerateFromPassword([]byte("oldpassword"), bcrypt.DefaultCost)
	assert.NoError(t, err)

	mockRepo.EXPECT().
		GetUserByID(gomock.Any(), userID).
		Return(&models.User{ID: userID, PasswordHash: string(hash)}, nil)

	uc := NewUserUC(mockRepo, mockGW, testConfig())

	err = uc.ChangePassword(context.Background(), userID, "wrong", "newpassword")
	ve, ok := apperrors.IsValidation(err)
	assert.True(t, ok)
	assert.Equal(t, "current_password", ve.Field)
}

func TestChangePassword_ShortNewPassword(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockUserRepo(ctrl)
	mockGW := mocks.NewMockUserGW(ctrl)

	userID := uuid.New()
	hash, err := bcrypt.GenerateFromPassword([]byte("oldpassword"), bcrypt.DefaultCost)
	assert.NoError(t, err)

	mockRepo.EXPECT().
		GetUserByID(gomock.Any(), userID).
		Return(&models.User{ID: userID, PasswordHash: string(hash)}, nil)

	uc := NewUserUC(mockRepo, mockGW, testConfig())

	err = uc.ChangePassword(context.Background(), userID, "oldpassword", "tiny")
	ve, ok := apperrors.IsValidation(err)
	assert.True(t, ok)
	assert.Equal(t, "new_password", ve.Field)
}

func TestDeleteAccount(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockUserRepo(ctrl)
	mockGW := mocks.NewMockUserGW(ctrl)

	userID := uuid.New()
	mockRepo.EXPECT().
		DeleteUser(gomock.Any(), userID).
		Return(nil)

	uc := NewUserUC(mockRepo, mockGW, testConfig())
	assert.NoError(t, uc.DeleteAccount(context.Background(), userID))
}

func TestGetUserByID_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockUserRepo(ctrl)
	mockGW := mocks.NewMockUserGW(ctrl)

	id := uuid.New()
	mockRepo.EXPECT().
		GetUserByID(gomock.Any(), id).
		Return(nil, apperrors.ErrNotFound)

	uc := NewUserUC(mockRepo, mockGW, testConfig())

	user, err := uc.GetUserByID(context.Background(), id)
	assert.Nil(t, user)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}
