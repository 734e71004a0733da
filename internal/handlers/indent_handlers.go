package handlers

import (
	"net/http"

	"github.com/agasthyasuperfoods/nutromilk-indent/internal/common"
	"github.com/agasthyasuperfoods/nutromilk-indent/internal/services"

	"github.com/labstack/echo/v4"
)

// IndentHandlers handles the daily indent ledger endpoints.
type IndentHandlers struct {
	indentService services.IndentService
}

func NewIndentHandlers(indentService services.IndentService) *IndentHandlers {
	return &IndentHandlers{indentService: indentService}
}

// CreateBulkIndentRequest represents a bulk customer order for one day.
type CreateBulkIndentRequest struct {
	CompanyID   string  `json:"company_id" validate:"required"`
	CompanyName string  `json:"company_name"`
	IndentDate  string  `json:"indent_date" validate:"required"`
	Quantity    float64 `json:"quantity" validate:"required"`
	ItemType    string  `json:"item_type"`
}

// CreateBulkIndent records a bulk order against a company.
func (h *IndentHandlers) CreateBulkIndent(c echo.Context) error {
	ctx := c.Request().Context()

	var req CreateBulkIndentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request format")
	}

	companyID, err := common.ValidateUUID(req.CompanyID, "company_id")
	if err != nil {
		return common.RespondError(c, err)
	}
	date, err := common.ParseDate(req.IndentDate, "indent_date")
	if err != nil {
		return common.RespondError(c, err)
	}

	result, err := h.indentService.CreateBulkOrder(ctx, companyID, req.CompanyName, date, req.Quantity, req.ItemType)
	if err != nil {
		return common.RespondError(c, err)
	}

	return c.JSON(http.StatusCreated, map[string]interface{}{
		"indent": result.Indent,
		"tier":   result.Tier,
	})
}

// CreateDeliveryIndentRequest represents a route dispatch for one day.
type CreateDeliveryIndentRequest struct {
	DeliveryBoyID string  `json:"delivery_boy_id" validate:"required"`
	IndentDate    string  `json:"indent_date" validate:"required"`
	Quantity      float64 `json:"quantity" validate:"required"`
	ItemType      string  `json:"item_type"`
}

// CreateDeliveryIndent records the volume handed to a delivery partner.
func (h *IndentHandlers) CreateDeliveryIndent(c echo.Context) error {
	ctx := c.Request().Context()

	var req CreateDeliveryIndentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request format")
	}

	partnerID, err := common.ValidateUUID(req.DeliveryBoyID, "delivery_boy_id")
	if err != nil {
		return common.RespondError(c, err)
	}
	date, err := common.ParseDate(req.IndentDate, "indent_date")
	if err != nil {
		return common.RespondError(c, err)
	}

	result, err := h.indentService.CreateDeliveryDispatch(ctx, partnerID, date, req.Quantity, req.ItemType)
	if err != nil {
		return common.RespondError(c, err)
	}

	return c.JSON(http.StatusCreated, map[string]interface{}{
		"indent": result.Indent,
		"tier":   result.Tier,
	})
}

// ListIndents returns all indents for the date given in the "date" query
// parameter, along with which tier served them.
func (h *IndentHandlers) ListIndents(c echo.Context) error {
	ctx := c.Request().Context()

	date, err := common.ParseDate(c.QueryParam("date"), "date")
	if err != nil {
		return common.RespondError(c, err)
	}

	indents, tier, err := h.indentService.ListByDate(ctx, date)
	if err != nil {
		return common.RespondError(c, err)
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"indents": indents,
		"tier":    tier,
		"date":    date.Format("2006-01-02"),
	})
}

// ListIndentsByRange returns indents between the "start" and "end" query
// dates, both inclusive.
func (h *IndentHandlers) ListIndentsByRange(c echo.Context) error {
	ctx := c.Request().Context()

	start, err := common.ParseDate(c.QueryParam("start"), "start")
	if err != nil {
		return common.RespondError(c, err)
	}
	end, err := common.ParseDate(c.QueryParam("end"), "end")
	if err != nil {
		return common.RespondError(c, err)
	}

	indents, err := h.indentService.ListByRange(ctx, start, end)
	if err != nil {
		return common.RespondError(c, err)
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"indents": indents,
		"start":   start.Format("2006-01-02"),
		"end":     end.Format("2006-01-02"),
	})
}
