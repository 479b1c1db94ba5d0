package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/roadtripmate/backend/internal/pkg/middleware"
	"github.com/roadtripmate/backend/internal/pkg/models"
	"github.com/roadtripmate/backend/services/routes/handler/http"
)

// Handler coordinates the HTTP handlers for the routes service
type Handler struct {
	routeHandler *http.RouteHandler
	cfg          *models.Config
}

// NewHandler creates and initializes all handlers
func NewHandler(routeHandler *http.RouteHandler, cfg *models.Config) *Handler {
	return &Handler{
		routeHandler: routeHandler,
		cfg:          cfg,
	}
}

// RegisterRoutes registers the routes service endpoints. All of them
// require authentication.
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	protected := e.Group("", middleware.JWTAuthMiddleware(h.cfg.JWT))

	routeGroup := protected.Group("/routes")
	routeGroup.GET("", h.routeHandler.ListRoutes)
	routeGroup.POST("", h.routeHandler.UpsertRoute)
	routeGroup.GET("/:trip_id", h.routeHandler.GetRouteByTrip)
	routeGroup.GET("/by-trip/:trip_id", h.routeHandler.GetRouteByTrip)
	routeGroup.POST("/:trip_id/add-pitstop", h.routeHandler.AddPitstop)
	routeGroup.PATCH("/:trip_id/update", h.routeHandler.UpdateRoute)
}
