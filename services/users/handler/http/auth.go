package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/roadtripmate/backend/internal/pkg/apperrors"
	"github.com/roadtripmate/backend/internal/pkg/logger"
	"github.com/roadtripmate/backend/internal/pkg/models"
	"github.com/roadtripmate/backend/internal/utils"
	"github.com/roadtripmate/backend/services/users"
)

// AuthHandler handles registration and login requests
type AuthHandler struct {
	userUC users.UserUC
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(userUC users.UserUC) *AuthHandler {
	return &AuthHandler{
		userUC: userUC,
	}
}

// Register handles account creation requests
func (h *AuthHandler) Register(c echo.Context) error {
	var req models.RegisterRequest
	if err := c.Bind(&req); err != nil {
		logger.Warn("Invalid request payload for registration",
			logger.ErrorField(err),
			logger.String("endpoint", "Register"),
		)
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	user, err := h.userUC.Register(c.Request().Context(), &req)
	if err != nil {
		logger.Warn("Registration failed",
			logger.ErrorField(err),
			logger.String("email", req.Email),
		)
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusCreated, "Account created successfully", user)
}

// Login handles credential verification and token issuance. Bad
// credentials always come back as 401 regardless of whether the email
// or the password was wrong internally.
func (h *AuthHandler) Login(c echo.Context) error {
	var req models.LoginRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	auth, err := h.userUC.Login(c.Request().Context(), &req)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) || errors.Is(err, apperrors.ErrForbidden) {
			return utils.UnauthorizedResponse(c, err.Error())
		}
		if _, ok := apperrors.IsValidation(err); ok {
			return utils.DomainErrorResponse(c, err)
		}
		logger.Error("Login failed unexpectedly",
			logger.ErrorField(err),
			logger.String("email", req.Email),
		)
		return utils.InternalServerErrorResponse(c, "")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Login successful", auth)
}
