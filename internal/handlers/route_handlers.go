package handlers

import (
	"net/http"

	"github.com/agasthyasuperfoods/nutromilk-indent/internal/common"
	"github.com/agasthyasuperfoods/nutromilk-indent/internal/models"
	"github.com/agasthyasuperfoods/nutromilk-indent/internal/services"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// RouteHandlers handles delivery route master endpoints.
type RouteHandlers struct {
	routeService services.RouteService
}

func NewRouteHandlers(routeService services.RouteService) *RouteHandlers {
	return &RouteHandlers{routeService: routeService}
}

// RouteRequest represents the create/update payload
type RouteRequest struct {
	Name        string  `json:"name" validate:"required"`
	Area        *string `json:"area"`
	Description *string `json:"description"`
}

func (h *RouteHandlers) CreateRoute(c echo.Context) error {
	ctx := c.Request().Context()

	var req RouteRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request format")
	}
	if req.Name == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "Name is required")
	}

	route := &models.Route{
		ID:          uuid.New(),
		Name:        req.Name,
		Area:        req.Area,
		Description: req.Description,
	}

	if err := h.routeService.Create(ctx, route); err != nil {
		return common.RespondError(c, err)
	}

	return c.JSON(http.StatusCreated, route)
}

func (h *RouteHandlers) GetRoute(c echo.Context) error {
	ctx := c.Request().Context()

	id, err := common.ValidateUUID(c.Param("id"), "id")
	if err != nil {
		return common.RespondError(c, err)
	}

	route, err := h.routeService.GetByID(ctx, id)
	if err != nil {
		return common.RespondError(c, err)
	}

	return c.JSON(http.StatusOK, route)
}

func (h *RouteHandlers) UpdateRoute(c echo.Context) error {
	ctx := c.Request().Context()

	id, err := common.ValidateUUID(c.Param("id"), "id")
	if err != nil {
		return common.RespondError(c, err)
	}

	var req RouteRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request format")
	}
	if req.Name == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "Name is required")
	}

	route := &models.Route{
		ID:          id,
		Name:        req.Name,
		Area:        req.Area,
		Description: req.Description,
	}

	if err := h.routeService.Update(ctx, route); err != nil {
		return common.RespondError(c, err)
	}

	return c.JSON(http.StatusOK, route)
}

func (h *RouteHandlers) DeleteRoute(c echo.Context) error {
	ctx := c.Request().Context()

	id, err := common.ValidateUUID(c.Param("id"), "id")
	if err != nil {
		return common.RespondError(c, err)
	}

	if err := h.routeService.Delete(ctx, id); err != nil {
		return common.RespondError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// ListRoutesRequest represents query parameters for listing routes
type ListRoutesRequest struct {
	Limit  int `query:"limit"`
	Offset int `query:"offset"`
}

func (h *RouteHandlers) ListRoutes(c echo.Context) error {
	ctx := c.Request().Context()

	var req ListRoutesRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid query parameters")
	}
	limit, offset := common.ValidatePaginationParams(req.Limit, req.Offset)

	routes, err := h.routeService.List(ctx, limit, offset)
	if err != nil {
		return common.RespondError(c, err)
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"routes": routes,
		"limit":  limit,
		"offset": offset,
	})
}
