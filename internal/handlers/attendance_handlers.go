package handlers

import (
	"net/http"

	"github.com/agasthyasuperfoods/nutromilk-indent/internal/common"
	"github.com/agasthyasuperfoods/nutromilk-indent/internal/services"

	"github.com/labstack/echo/v4"
)

// AttendanceHandlers handles employee attendance endpoints.
type AttendanceHandlers struct {
	attendanceService services.AttendanceService
}

func NewAttendanceHandlers(attendanceService services.AttendanceService) *AttendanceHandlers {
	return &AttendanceHandlers{attendanceService: attendanceService}
}

// MarkAttendanceRequest represents one attendance mark
type MarkAttendanceRequest struct {
	EmployeeID     string  `json:"employee_id" validate:"required"`
	AttendanceDate string  `json:"attendance_date" validate:"required"`
	Status         string  `json:"status" validate:"required"`
	Notes          *string `json:"notes"`
}

// MarkAttendance upserts the attendance record for one employee and day.
// Re-marking the same day replaces the earlier status.
func (h *AttendanceHandlers) MarkAttendance(c echo.Context) error {
	ctx := c.Request().Context()

	var req MarkAttendanceRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request format")
	}

	employeeID, err := common.ValidateUUID(req.EmployeeID, "employee_id")
	if err != nil {
		return common.RespondError(c, err)
	}
	date, err := common.ParseDate(req.AttendanceDate, "attendance_date")
	if err != nil {
		return common.RespondError(c, err)
	}

	record, err := h.attendanceService.Mark(ctx, employeeID, date, req.Status, req.Notes)
	if err != nil {
		return common.RespondError(c, err)
	}

	return c.JSON(http.StatusOK, record)
}

// ListAttendance returns all attendance marks for the "date" query parameter.
func (h *AttendanceHandlers) ListAttendance(c echo.Context) error {
	ctx := c.Request().Context()

	date, err := common.ParseDate(c.QueryParam("date"), "date")
	if err != nil {
		return common.RespondError(c, err)
	}

	records, err := h.attendanceService.ListByDate(ctx, date)
	if err != nil {
		return common.RespondError(c, err)
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"attendance": records,
		"date":       date.Format("2006-01-02"),
	})
}

// GetEmployeeMonth returns one employee's attendance for ?month=&year=.
func (h *AttendanceHandlers) GetEmployeeMonth(c echo.Context) error {
	ctx := c.Request().Context()

	employeeID, err := common.ValidateUUID(c.Param("id"), "id")
	if err != nil {
		return common.RespondError(c, err)
	}

	month, year, err := common.ParseMonthYear(c.QueryParam("month"), c.QueryParam("year"))
	if err != nil {
		return common.RespondError(c, err)
	}

	records, err := h.attendanceService.MonthForEmployee(ctx, employeeID, month, year)
	if err != nil {
		return common.RespondError(c, err)
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"attendance":  records,
		"employee_id": employeeID,
		"month":       month,
		"year":        year,
	})
}
