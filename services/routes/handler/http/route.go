package http

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/roadtripmate/backend/internal/pkg/logger"
	"github.com/roadtripmate/backend/internal/pkg/middleware"
	"github.com/roadtripmate/backend/internal/pkg/models"
	"github.com/roadtripmate/backend/internal/utils"
	"github.com/roadtripmate/backend/services/routes"
)

// RouteHandler handles HTTP requests for route operations
type RouteHandler struct {
	routeUC routes.RouteUC
}

// NewRouteHandler creates a new route handler
func NewRouteHandler(routeUC routes.RouteUC) *RouteHandler {
	return &RouteHandler{
		routeUC: routeUC,
	}
}

// ListRoutes handles listing the requester's routes
func (h *RouteHandler) ListRoutes(c echo.Context) error {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	routeList, err := h.routeUC.ListRoutes(c.Request().Context(), userID)
	if err != nil {
		logger.Error("Failed to list routes",
			logger.ErrorField(err),
			logger.String("user_id", userID.String()),
		)
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Routes retrieved successfully", routeList)
}

// UpsertRoute handles route creation and replacement. A first upsert for
// a trip answers 201, a repeat answers 200.
func (h *RouteHandler) UpsertRoute(c echo.Context) error {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	var req models.UpsertRouteRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	route, created, err := h.routeUC.UpsertRoute(c.Request().Context(), userID, &req)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	if created {
		return utils.SuccessResponse(c, http.StatusCreated, "Route created successfully", route)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Route updated successfully", route)
}

// GetRouteByTrip handles route retrieval by owning trip
func (h *RouteHandler) GetRouteByTrip(c echo.Context) error {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	tripID, err := uuid.Parse(c.Param("trip_id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid trip ID")
	}

	route, err := h.routeUC.GetRouteByTripID(c.Request().Context(), userID, tripID)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Route retrieved successfully", route)
}

// AddPitstop handles appending a pitstop to a trip's route
func (h *RouteHandler) AddPitstop(c echo.Context) error {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	tripID, err := uuid.Parse(c.Param("trip_id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid trip ID")
	}

	var req models.AddPitstopRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	route, err := h.routeUC.AddPitstop(c.Request().Context(), userID, tripID, req.Pitstop)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Pitstop added successfully", route)
}

// UpdateRoute handles partial route updates
func (h *RouteHandler) UpdateRoute(c echo.Context) error {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	tripID, err := uuid.Parse(c.Param("trip_id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid trip ID")
	}

	var patch models.RoutePatch
	if err := c.Bind(&patch); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	route, err := h.routeUC.UpdateRoute(c.Request().Context(), userID, tripID, &patch)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Route updated successfully", route)
}
