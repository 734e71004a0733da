package handlers

import (
	"net/http"

	"github.com/agasthyasuperfoods/nutromilk-indent/internal/common"
	"github.com/agasthyasuperfoods/nutromilk-indent/internal/models"
	"github.com/agasthyasuperfoods/nutromilk-indent/internal/services"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// CustomerHandlers handles bulk customer master endpoints, including the
// per-month quantity overrides.
type CustomerHandlers struct {
	customerService services.CustomerService
}

func NewCustomerHandlers(customerService services.CustomerService) *CustomerHandlers {
	return &CustomerHandlers{customerService: customerService}
}

// CreateCustomerRequest represents the customer creation payload
type CreateCustomerRequest struct {
	Name             string   `json:"name" validate:"required"`
	Area             *string  `json:"area"`
	PaymentTerms     *string  `json:"payment_terms"`
	QuantityWeekdays *float64 `json:"quantity_weekdays"`
	QuantitySaturday *float64 `json:"quantity_saturday"`
	QuantitySunday   *float64 `json:"quantity_sunday"`
	QuantityHoliday  *float64 `json:"quantity_holiday"`
}

func (h *CustomerHandlers) CreateCustomer(c echo.Context) error {
	ctx := c.Request().Context()

	var req CreateCustomerRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request format")
	}
	if req.Name == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "Name is required")
	}

	customer := &models.Customer{
		ID:               uuid.New(),
		Name:             req.Name,
		Area:             req.Area,
		PaymentTerms:     req.PaymentTerms,
		QuantityWeekdays: req.QuantityWeekdays,
		QuantitySaturday: req.QuantitySaturday,
		QuantitySunday:   req.QuantitySunday,
		QuantityHoliday:  req.QuantityHoliday,
	}

	if err := h.customerService.Create(ctx, customer); err != nil {
		return common.RespondError(c, err)
	}

	return c.JSON(http.StatusCreated, customer)
}

func (h *CustomerHandlers) GetCustomer(c echo.Context) error {
	ctx := c.Request().Context()

	id, err := common.ValidateUUID(c.Param("id"), "id")
	if err != nil {
		return common.RespondError(c, err)
	}

	customer, err := h.customerService.GetByID(ctx, id)
	if err != nil {
		return common.RespondError(c, err)
	}

	return c.JSON(http.StatusOK, customer)
}

// ListCustomersRequest represents query parameters for listing customers
type ListCustomersRequest struct {
	Limit  int `query:"limit"`
	Offset int `query:"offset"`
}

func (h *CustomerHandlers) ListCustomers(c echo.Context) error {
	ctx := c.Request().Context()

	var req ListCustomersRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid query parameters")
	}
	limit, offset := common.ValidatePaginationParams(req.Limit, req.Offset)

	customers, err := h.customerService.List(ctx, limit, offset)
	if err != nil {
		return common.RespondError(c, err)
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"customers": customers,
		"limit":     limit,
		"offset":    offset,
	})
}

// OverridePayload carries the per-month quantity fields. Nil fields leave the
// stored value untouched on upsert.
type OverridePayload struct {
	MonthYear        string   `json:"month_year" validate:"required"`
	QuantityWeekdays *float64 `json:"quantity_weekdays"`
	QuantitySaturday *float64 `json:"quantity_saturday"`
	QuantitySunday   *float64 `json:"quantity_sunday"`
	QuantityHoliday  *float64 `json:"quantity_holiday"`
}

func (p *OverridePayload) toModel(companyID uuid.UUID) (*models.MonthlyIndentOverride, error) {
	monthYear, err := common.ParseDate(p.MonthYear, "month_year")
	if err != nil {
		return nil, err
	}
	return &models.MonthlyIndentOverride{
		CompanyID:        companyID,
		MonthYear:        models.NormalizeMonthYear(monthYear),
		QuantityWeekdays: p.QuantityWeekdays,
		QuantitySaturday: p.QuantitySaturday,
		QuantitySunday:   p.QuantitySunday,
		QuantityHoliday:  p.QuantityHoliday,
	}, nil
}

// UpdateCustomerRequest updates master fields and optionally upserts a
// monthly override in the same transaction.
type UpdateCustomerRequest struct {
	Name             string           `json:"name" validate:"required"`
	Area             *string          `json:"area"`
	PaymentTerms     *string          `json:"payment_terms"`
	QuantityWeekdays *float64         `json:"quantity_weekdays"`
	QuantitySaturday *float64         `json:"quantity_saturday"`
	QuantitySunday   *float64         `json:"quantity_sunday"`
	QuantityHoliday  *float64         `json:"quantity_holiday"`
	Override         *OverridePayload `json:"override"`
}

func (h *CustomerHandlers) UpdateCustomer(c echo.Context) error {
	ctx := c.Request().Context()

	id, err := common.ValidateUUID(c.Param("id"), "id")
	if err != nil {
		return common.RespondError(c, err)
	}

	var req UpdateCustomerRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request format")
	}
	if req.Name == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "Name is required")
	}

	customer := &models.Customer{
		ID:               id,
		Name:             req.Name,
		Area:             req.Area,
		PaymentTerms:     req.PaymentTerms,
		QuantityWeekdays: req.QuantityWeekdays,
		QuantitySaturday: req.QuantitySaturday,
		QuantitySunday:   req.QuantitySunday,
		QuantityHoliday:  req.QuantityHoliday,
	}

	if req.Override == nil {
		if err := h.customerService.Update(ctx, customer); err != nil {
			return common.RespondError(c, err)
		}
		return c.JSON(http.StatusOK, customer)
	}

	override, err := req.Override.toModel(id)
	if err != nil {
		return common.RespondError(c, err)
	}

	saved, err := h.customerService.UpdateWithOverride(ctx, customer, override)
	if err != nil {
		return common.RespondError(c, err)
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"customer": customer,
		"override": saved,
	})
}

func (h *CustomerHandlers) DeleteCustomer(c echo.Context) error {
	ctx := c.Request().Context()

	id, err := common.ValidateUUID(c.Param("id"), "id")
	if err != nil {
		return common.RespondError(c, err)
	}

	if err := h.customerService.Delete(ctx, id); err != nil {
		return common.RespondError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// UpsertOverride creates or updates the override row for one customer month.
// Repeating the same payload is a no-op.
func (h *CustomerHandlers) UpsertOverride(c echo.Context) error {
	ctx := c.Request().Context()

	companyID, err := common.ValidateUUID(c.Param("id"), "id")
	if err != nil {
		return common.RespondError(c, err)
	}

	var req OverridePayload
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request format")
	}
	if req.MonthYear == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "month_year is required")
	}

	override, err := req.toModel(companyID)
	if err != nil {
		return common.RespondError(c, err)
	}

	saved, err := h.customerService.UpsertOverride(ctx, override)
	if err != nil {
		return common.RespondError(c, err)
	}

	return c.JSON(http.StatusOK, saved)
}

// GetOverride returns the override for one customer month. The month path
// parameter is any date inside the month; it is normalized server-side.
func (h *CustomerHandlers) GetOverride(c echo.Context) error {
	ctx := c.Request().Context()

	companyID, err := common.ValidateUUID(c.Param("id"), "id")
	if err != nil {
		return common.RespondError(c, err)
	}
	monthYear, err := common.ParseDate(c.Param("month"), "month")
	if err != nil {
		return common.RespondError(c, err)
	}

	override, err := h.customerService.GetOverride(ctx, companyID, monthYear)
	if err != nil {
		return common.RespondError(c, err)
	}

	return c.JSON(http.StatusOK, override)
}

// ListOverrides returns all monthly overrides stored for one customer.
func (h *CustomerHandlers) ListOverrides(c echo.Context) error {
	ctx := c.Request().Context()

	companyID, err := common.ValidateUUID(c.Param("id"), "id")
	if err != nil {
		return common.RespondError(c, err)
	}

	overrides, err := h.customerService.ListOverrides(ctx, companyID)
	if err != nil {
		return common.RespondError(c, err)
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"overrides": overrides,
	})
}
