package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/roadtripmate/backend/internal/pkg/middleware"
	"github.com/roadtripmate/backend/internal/pkg/models"
	"github.com/roadtripmate/backend/services/trips/handler/http"
)

// Handler coordinates the HTTP handlers for the trips service
type Handler struct {
	tripHandler         *http.TripHandler
	collaboratorHandler *http.CollaboratorHandler
	cfg                 *models.Config
}

// NewHandler creates and initializes all handlers
func NewHandler(
	tripHandler *http.TripHandler,
	collaboratorHandler *http.CollaboratorHandler,
	cfg *models.Config,
) *Handler {
	return &Handler{
		tripHandler:         tripHandler,
		collaboratorHandler: collaboratorHandler,
		cfg:                 cfg,
	}
}

// RegisterRoutes registers the trips service routes. All of them require
// authentication.
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	protected := e.Group("", middleware.JWTAuthMiddleware(h.cfg.JWT))

	tripGroup := protected.Group("/trips")
	tripGroup.GET("", h.tripHandler.ListTrips)
	tripGroup.POST("", h.tripHandler.CreateTrip)
	tripGroup.GET("/:id", h.tripHandler.GetTrip)
	tripGroup.PUT("/:id", h.tripHandler.UpdateTrip)
	tripGroup.PATCH("/:id", h.tripHandler.UpdateTrip)
	tripGroup.DELETE("/:id", h.tripHandler.DeleteTrip)
	// Legacy delete path kept for existing clients
	tripGroup.DELETE("/delete/:id", h.tripHandler.DeleteTrip)

	collabGroup := protected.Group("/trip/:trip_id/collaborators")
	collabGroup.GET("", h.collaboratorHandler.GetCollaborators)
	collabGroup.POST("", h.collaboratorHandler.AddCollaborator)
	collabGroup.DELETE("", h.collaboratorHandler.RemoveCollaborator)
}
