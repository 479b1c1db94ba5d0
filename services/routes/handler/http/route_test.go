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
	"github.com/roadtripmate/backend/services/routes/mocks"
)

func newRouteContext(method, target, body string, userID uuid.UUID) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("user_id", userID)
	return c, rec
}

func TestUpsertRoute_StatusByBranch(t *testing.T) {
	userID := uuid.New()
	tripID := uuid.New()
	body := fmt.Sprintf(`{"trip": %q, "start_location": "Lisbon", "destination": "Porto"}`, tripID)

	tests := []struct {
		name     string
		created  bool
		wantCode int
	}{
		{"create answers 201", true, http.StatusCreated},
		{"update answers 200", false, http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockRouteUC := mocks.NewMockRouteUC(ctrl)
			handler := NewRouteHandler(mockRouteUC)

			c, rec := newRouteContext(http.MethodPost, "/routes", body, userID)

			mockRouteUC.EXPECT().
				UpsertRoute(gomock.Any(), userID, gomock.Any()).
				Return(&models.Route{TripID: tripID}, tt.created, nil)

			err := handler.UpsertRoute(c)

			assert.NoError(t, err)
			assert.Equal(t, tt.wantCode, rec.Code)
		})
	}
}

func TestUpsertRoute_Forbidden(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRouteUC := mocks.NewMockRouteUC(ctrl)
	handler := NewRouteHandler(mockRouteUC)

	userID := uuid.New()
	c, rec := newRouteContext(http.MethodPost, "/routes",
		fmt.Sprintf(`{"trip": %q, "start_location": "Lisbon", "destination": "Porto"}`, uuid.New()), userID)

	mockRouteUC.EXPECT().
		UpsertRoute(gomock.Any(), userID, gomock.Any()).
		Return(nil, false, fmt.Errorf("you do not have access to this trip: %w", apperrors.ErrForbidden))

	err := handler.UpsertRoute(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestAddPitstop_MissingValue(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRouteUC := mocks.NewMockRouteUC(ctrl)
	handler := NewRouteHandler(mockRouteUC)

	userID := uuid.New()
	tripID := uuid.New()
	c, rec := newRouteContext(http.MethodPost, "/routes/"+tripID.String()+"/add-pitstop", `{}`, userID)
	c.SetParamNames("trip_id")
	c.SetParamValues(tripID.String())

	mockRouteUC.EXPECT().
		AddPitstop(gomock.Any(), userID, tripID, "").
		Return(nil, apperrors.NewValidation("pitstop", "pitstop is required"))

	err := handler.AddPitstop(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetRouteByTrip_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRouteUC := mocks.NewMockRouteUC(ctrl)
	handler := NewRouteHandler(mockRouteUC)

	userID := uuid.New()
	tripID := uuid.New()
	c, rec := newRouteContext(http.MethodGet, "/routes/by-trip/"+tripID.String(), "", userID)
	c.SetParamNames("trip_id")
	c.SetParamValues(tripID.String())

	mockRouteUC.EXPECT().
		GetRouteByTripID(gomock.Any(), userID, tripID).
		Return(nil, fmt.Errorf("route for trip %s: %w", tripID, apperrors.ErrNotFound))

	err := handler.GetRouteByTrip(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
