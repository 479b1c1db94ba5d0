package http

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/roadtripmate/backend/internal/pkg/logger"
	"github.com/roadtripmate/backend/internal/pkg/middleware"
	"github.com/roadtripmate/backend/internal/pkg/models"
	"github.com/roadtripmate/backend/internal/utils"
	"github.com/roadtripmate/backend/services/trips"
)

// TripHandler handles HTTP requests for trip operations
type TripHandler struct {
	tripUC trips.TripUC
}

// NewTripHandler creates a new trip handler
func NewTripHandler(tripUC trips.TripUC) *TripHandler {
	return &TripHandler{
		tripUC: tripUC,
	}
}

// ListTrips handles the requester's trip dashboard
func (h *TripHandler) ListTrips(c echo.Context) error {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	tripList, err := h.tripUC.ListTrips(c.Request().Context(), userID)
	if err != nil {
		logger.Error("Failed to list trips",
			logger.ErrorField(err),
			logger.String("user_id", userID.String()),
		)
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Trips retrieved successfully", tripList)
}

// CreateTrip handles trip creation requests
func (h *TripHandler) CreateTrip(c echo.Context) error {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	var req models.CreateTripRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	trip, err := h.tripUC.CreateTrip(c.Request().Context(), userID, &req)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusCreated, "Trip created successfully", trip)
}

// GetTrip handles single trip retrieval
func (h *TripHandler) GetTrip(c echo.Context) error {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	tripID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid trip ID")
	}

	trip, err := h.tripUC.GetTrip(c.Request().Context(), userID, tripID)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Trip retrieved successfully", trip)
}

// UpdateTrip handles partial trip updates
func (h *TripHandler) UpdateTrip(c echo.Context) error {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	tripID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid trip ID")
	}

	var patch models.TripPatch
	if err := c.Bind(&patch); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	trip, err := h.tripUC.UpdateTrip(c.Request().Context(), userID, tripID, &patch)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Trip updated successfully", trip)
}

// DeleteTrip handles delete-or-leave requests. The author's delete comes
// back as a bare 204; a collaborator leaving gets a 200 with a message
// because their trip still exists for everyone else.
func (h *TripHandler) DeleteTrip(c echo.Context) error {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	tripID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid trip ID")
	}

	outcome, err := h.tripUC.DeleteOrLeaveTrip(c.Request().Context(), userID, tripID)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	if outcome == trips.OutcomeLeft {
		return utils.SuccessResponse(c, http.StatusOK, "Trip removed from your dashboard.", nil)
	}

	return c.NoContent(http.StatusNoContent)
}
