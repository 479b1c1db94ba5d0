package http

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/roadtripmate/backend/internal/pkg/middleware"
	"github.com/roadtripmate/backend/internal/pkg/models"
	"github.com/roadtripmate/backend/internal/utils"
	"github.com/roadtripmate/backend/services/trips"
)

// CollaboratorHandler handles HTTP requests for collaborator management
type CollaboratorHandler struct {
	tripUC trips.TripUC
}

// NewCollaboratorHandler creates a new collaborator handler
func NewCollaboratorHandler(tripUC trips.TripUC) *CollaboratorHandler {
	return &CollaboratorHandler{
		tripUC: tripUC,
	}
}

// GetCollaborators handles collaborator listing requests
func (h *CollaboratorHandler) GetCollaborators(c echo.Context) error {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	tripID, err := uuid.Parse(c.Param("trip_id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid trip ID")
	}

	collaborators, err := h.tripUC.GetCollaborators(c.Request().Context(), userID, tripID)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Collaborators retrieved successfully", collaborators)
}

// AddCollaborator handles collaborator addition requests
func (h *CollaboratorHandler) AddCollaborator(c echo.Context) error {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	tripID, err := uuid.Parse(c.Param("trip_id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid trip ID")
	}

	var req models.CollaboratorRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	info, err := h.tripUC.AddCollaborator(c.Request().Context(), userID, tripID, req.Email)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusCreated, "Collaborator added successfully", info)
}

// RemoveCollaborator handles collaborator removal requests. Removing a
// registered user who is not on the trip succeeds without changing
// anything.
func (h *CollaboratorHandler) RemoveCollaborator(c echo.Context) error {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	tripID, err := uuid.Parse(c.Param("trip_id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid trip ID")
	}

	var req models.CollaboratorRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	removed, err := h.tripUC.RemoveCollaborator(c.Request().Context(), userID, tripID, req.Email)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	message := "User is not a collaborator on this trip"
	if removed {
		message = "Collaborator removed successfully"
	}

	return utils.SuccessResponse(c, http.StatusOK, message, nil)
}
