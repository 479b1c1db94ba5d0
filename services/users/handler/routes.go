package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/roadtripmate/backend/internal/pkg/middleware"
	"github.com/roadtripmate/backend/internal/pkg/models"
	"github.com/roadtripmate/backend/services/users/handler/http"
)

// Handler coordinates the HTTP handlers for the users service
type Handler struct {
	authHandler *http.AuthHandler
	userHandler *http.UserHandler
	cfg         *models.Config
}

// NewHandler creates and initializes all handlers
func NewHandler(
	authHandler *http.AuthHandler,
	userHandler *http.UserHandler,
	cfg *models.Config,
) *Handler {
	return &Handler{
		authHandler: authHandler,
		userHandler: userHandler,
		cfg:         cfg,
	}
}

// RegisterRoutes registers the users service routes. The auth group is
// public; rateLimiter may be nil when Redis is unavailable.
func (h *Handler) RegisterRoutes(e *echo.Echo, rateLimiter echo.MiddlewareFunc) {
	authGroup := e.Group("/auth")
	if rateLimiter != nil {
		authGroup.Use(rateLimiter)
	}
	authGroup.POST("/register", h.authHandler.Register)
	authGroup.POST("/login", h.authHandler.Login)

	protected := e.Group("", middleware.JWTAuthMiddleware(h.cfg.JWT))

	userGroup := protected.Group("/user")
	userGroup.GET("/profile", h.userHandler.GetProfile)
	userGroup.PATCH("/profile", h.userHandler.UpdateProfile)
	userGroup.PATCH("/change-password", h.userHandler.ChangePassword)
	userGroup.DELETE("/delete", h.userHandler.DeleteAccount)
	userGroup.GET("/:id", h.userHandler.GetUser)
}
