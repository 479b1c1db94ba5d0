package http

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"

	"github.com/roadtripmate/backend/internal/pkg/apperrors"
	"github.com/roadtripmate/backend/internal/pkg/models"
	"github.com/roadtripmate/backend/services/trips"
	"github.com/roadtripmate/backend/services/trips/mocks"
)

func newTripContext(method, target, body string, userID uuid.UUID) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("user_id", userID)
	return c, rec
}

func TestCreateTrip_ReturnsCreated(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockTripUC := mocks.NewMockTripUC(ctrl)
	handler := NewTripHandler(mockTripUC)

	userID := uuid.New()
	c, rec := newTripContext(http.MethodPost, "/trips",
		`{"title": "Coast Run", "start_location": "Lisbon", "destination": "Porto", "trip_date": "2026-09-12"}`, userID)

	mockTripUC.EXPECT().
		CreateTrip(gomock.Any(), userID, gomock.Any()).
		Return(&models.Trip{Title: "Coast Run", AuthorID: userID}, nil)

	err := handler.CreateTrip(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), "Coast Run")
}

func TestGetTrip_ForbiddenForStranger(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockTripUC := mocks.NewMockTripUC(ctrl)
	handler := NewTripHandler(mockTripUC)

	userID := uuid.New()
	tripID := uuid.New()
	c, rec := newTripContext(http.MethodGet, "/trips/"+tripID.String(), "", userID)
	c.SetParamNames("id")
	c.SetParamValues(tripID.String())

	mockTripUC.EXPECT().
		GetTrip(gomock.Any(), userID, tripID).
		Return(nil, fmt.Errorf("you do not have access to this trip: %w", apperrors.ErrForbidden))

	err := handler.GetTrip(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestDeleteTrip_AuthorGetsNoContent(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockTripUC := mocks.NewMockTripUC(ctrl)
	handler := NewTripHandler(mockTripUC)

	userID := uuid.New()
	tripID := uuid.New()
	c, rec := newTripContext(http.MethodDelete, "/trips/"+tripID.String(), "", userID)
	c.SetParamNames("id")
	c.SetParamValues(tripID.String())

	mockTripUC.EXPECT().
		DeleteOrLeaveTrip(gomock.Any(), userID, tripID).
		Return(trips.OutcomeDeleted, nil)

	err := handler.DeleteTrip(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, rec.Body.String())
}

func TestDeleteTrip_CollaboratorGetsMessage(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockTripUC := mocks.NewMockTripUC(ctrl)
	handler := NewTripHandler(mockTripUC)

	userID := uuid.New()
	tripID := uuid.New()
	c, rec := newTripContext(http.MethodDelete, "/trips/"+tripID.String(), "", userID)
	c.SetParamNames("id")
	c.SetParamValues(tripID.String())

	mockTripUC.EXPECT().
		DeleteOrLeaveTrip(gomock.Any(), userID, tripID).
		Return(trips.OutcomeLeft, nil)

	err := handler.DeleteTrip(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Trip removed from your dashboard.")
}

func TestUpdateTrip_InvalidID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockTripUC := mocks.NewMockTripUC(ctrl)
	handler := NewTripHandler(mockTripUC)

	c, rec := newTripContext(http.MethodPatch, "/trips/nope", `{"title": "x"}`, uuid.New())
	c.SetParamNames("id")
	c.SetParamValues("nope")

	err := handler.UpdateTrip(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
