package handlers

import (
	"net/http"

	"github.com/agasthyasuperfoods/nutromilk-indent/internal/common"
	"github.com/agasthyasuperfoods/nutromilk-indent/internal/models"
	"github.com/agasthyasuperfoods/nutromilk-indent/internal/services"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// DeliveryPartnerHandlers handles delivery partner master endpoints.
type DeliveryPartnerHandlers struct {
	partnerService services.DeliveryPartnerService
}

func NewDeliveryPartnerHandlers(partnerService services.DeliveryPartnerService) *DeliveryPartnerHandlers {
	return &DeliveryPartnerHandlers{partnerService: partnerService}
}

// PartnerRequest represents the create/update payload
type PartnerRequest struct {
	Name    string  `json:"name" validate:"required"`
	Phone   *string `json:"phone"`
	RouteID *string `json:"route_id"`
	Active  *bool   `json:"active"`
}

func (r *PartnerRequest) toModel(id uuid.UUID) (*models.DeliveryPartner, error) {
	partner := &models.DeliveryPartner{
		ID:     id,
		Name:   r.Name,
		Phone:  r.Phone,
		Active: true,
	}
	if r.Active != nil {
		partner.Active = *r.Active
	}
	if r.RouteID != nil && *r.RouteID != "" {
		routeID, err := common.ValidateUUID(*r.RouteID, "route_id")
		if err != nil {
			return nil, err
		}
		partner.RouteID = &routeID
	}
	return partner, nil
}

func (h *DeliveryPartnerHandlers) CreatePartner(c echo.Context) error {
	ctx := c.Request().Context()

	var req PartnerRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request format")
	}
	if req.Name == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "Name is required")
	}

	partner, err := req.toModel(uuid.New())
	if err != nil {
		return common.RespondError(c, err)
	}

	if err := h.partnerService.Create(ctx, partner); err != nil {
		return common.RespondError(c, err)
	}

	return c.JSON(http.StatusCreated, partner)
}

func (h *DeliveryPartnerHandlers) GetPartner(c echo.Context) error {
	ctx := c.Request().Context()

	id, err := common.ValidateUUID(c.Param("id"), "id")
	if err != nil {
		return common.RespondError(c, err)
	}

	partner, err := h.partnerService.GetByID(ctx, id)
	if err != nil {
		return common.RespondError(c, err)
	}

	return c.JSON(http.StatusOK, partner)
}

func (h *DeliveryPartnerHandlers) UpdatePartner(c echo.Context) error {
	ctx := c.Request().Context()

	id, err := common.ValidateUUID(c.Param("id"), "id")
	if err != nil {
		return common.RespondError(c, err)
	}

	var req PartnerRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request format")
	}
	if req.Name == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "Name is required")
	}

	partner, err := req.toModel(id)
	if err != nil {
		return common.RespondError(c, err)
	}

	if err := h.partnerService.Update(ctx, partner); err != nil {
		return common.RespondError(c, err)
	}

	return c.JSON(http.StatusOK, partner)
}

func (h *DeliveryPartnerHandlers) DeletePartner(c echo.Context) error {
	ctx := c.Request().Context()

	id, err := common.ValidateUUID(c.Param("id"), "id")
	if err != nil {
		return common.RespondError(c, err)
	}

	if err := h.partnerService.Delete(ctx, id); err != nil {
		return common.RespondError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// ListPartnersRequest represents query parameters for listing partners
type ListPartnersRequest struct {
	Limit  int `query:"limit"`
	Offset int `query:"offset"`
}

func (h *DeliveryPartnerHandlers) ListPartners(c echo.Context) error {
	ctx := c.Request().Context()

	var req ListPartnersRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid query parameters")
	}
	limit, offset := common.ValidatePaginationParams(req.Limit, req.Offset)

	partners, err := h.partnerService.List(ctx, limit, offset)
	if err != nil {
		return common.RespondError(c, err)
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"partners": partners,
		"limit":    limit,
		"offset":   offset,
	})
}
