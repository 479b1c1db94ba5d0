package http

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/roadtripmate/backend/internal/pkg/apperrors"
	"github.com/roadtripmate/backend/internal/pkg/models"
	"github.com/roadtripmate/backend/services/trips/mocks"
)

func TestAddCollaborator_StatusMatrix(t *testing.T) {
	userID := uuid.New()
	tripID := uuid.New()

	tests := []struct {
		name     string
		ucResult *models.CollaboratorInfo
		ucErr    error
		wantCode int
	}{
		{
			name:     "success",
			ucResult: &models.CollaboratorInfo{Email: "bob@example.com"},
			wantCode: http.StatusCreated,
		},
		{
			name:     "unknown email",
			ucErr:    fmt.Errorf("no user found with this email: %w", apperrors.ErrNotFound),
			wantCode: http.StatusNotFound,
		},
		{
			name:     "already a collaborator",
			ucErr:    fmt.Errorf("user is already a collaborator on this trip: %w", apperrors.ErrConflict),
			wantCode: http.StatusConflict,
		},
		{
			name:     "author as target",
			ucErr:    apperrors.NewValidation("email", "the trip author cannot be added as a collaborator"),
			wantCode: http.StatusBadRequest,
		},
		{
			name:     "non-author",
			ucErr:    fmt.Errorf("only the trip author can manage collaborators: %w", apperrors.ErrForbidden),
			wantCode: http.StatusForbidden,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockTripUC := mocks.NewMockTripUC(ctrl)
			handler := NewCollaboratorHandler(mockTripUC)

			c, rec := newTripContext(http.MethodPost, "/trip/"+tripID.String()+"/collaborators",
				`{"email": "bob@example.com"}`, userID)
			c.SetParamNames("trip_id")
			c.SetParamValues(tripID.String())

			mockTripUC.EXPECT().
				AddCollaborator(gomock.Any(), userID, tripID, "bob@example.com").
				Return(tt.ucResult, tt.ucErr)

			err := handler.AddCollaborator(c)

			assert.NoError(t, err)
			assert.Equal(t, tt.wantCode, rec.Code)
		})
	}
}

func TestRemoveCollaborator_NoOpStillSucceeds(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockTripUC := mocks.NewMockTripUC(ctrl)
	handler := NewCollaboratorHandler(mockTripUC)

	userID := uuid.New()
	tripID := uuid.New()
	c, rec := newTripContext(http.MethodDelete, "/trip/"+tripID.String()+"/collaborators",
		`{"email": "carol@example.com"}`, userID)
	c.SetParamNames("trip_id")
	c.SetParamValues(tripID.String())

	mockTripUC.EXPECT().
		RemoveCollaborator(gomock.Any(), userID, tripID, "carol@example.com").
		Return(false, nil)

	err := handler.RemoveCollaborator(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "not a collaborator")
}

func TestGetCollaborators_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockTripUC := mocks.NewMockTripUC(ctrl)
	handler := NewCollaboratorHandler(mockTripUC)

	userID := uuid.New()
	tripID := uuid.New()
	c, rec := newTripContext(http.MethodGet, "/trip/"+tripID.String()+"/collaborators", "", userID)
	c.SetParamNames("trip_id")
	c.SetParamValues(tripID.String())

	mockTripUC.EXPECT().
		GetCollaborators(gomock.Any(), userID, tripID).
		Return(&models.TripCollaborators{
			Owner:              models.CollaboratorInfo{Email: "alice@example.com"},
			CurrentUserIsOwner: true,
		}, nil)

	err := handler.GetCollaborators(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "current_user_is_owner")
}
