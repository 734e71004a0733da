package handlers

import (
	"fmt"
	"net/http"

	"github.com/agasthyasuperfoods/nutromilk-indent/internal/common"
	"github.com/agasthyasuperfoods/nutromilk-indent/internal/reports"

	"github.com/labstack/echo/v4"
)

// ReportHandlers serves the monthly sales report, both as JSON and as an
// exported PDF in object storage.
type ReportHandlers struct {
	reportService *reports.Service
	exporter      *reports.Exporter
	companyName   string
}

func NewReportHandlers(reportService *reports.Service, exporter *reports.Exporter, companyName string) *ReportHandlers {
	return &ReportHandlers{
		reportService: reportService,
		exporter:      exporter,
		companyName:   companyName,
	}
}

// GetSalesReport builds the full monthly sales report for ?month=&year=.
// Month and year are validated before any data access.
func (h *ReportHandlers) GetSalesReport(c echo.Context) error {
	ctx := c.Request().Context()

	month, year, err := common.ParseMonthYear(c.QueryParam("month"), c.QueryParam("year"))
	if err != nil {
		return common.RespondError(c, err)
	}

	report, err := h.reportService.MonthlySalesReport(ctx, month, year)
	if err != nil {
		return common.RespondError(c, err)
	}

	return c.JSON(http.StatusOK, report)
}

// DownloadSalesReportPDF renders the report inline as application/pdf.
func (h *ReportHandlers) DownloadSalesReportPDF(c echo.Context) error {
	ctx := c.Request().Context()

	month, year, err := common.ParseMonthYear(c.QueryParam("month"), c.QueryParam("year"))
	if err != nil {
		return common.RespondError(c, err)
	}

	report, err := h.reportService.MonthlySalesReport(ctx, month, year)
	if err != nil {
		return common.RespondError(c, err)
	}

	pdf, err := reports.RenderPDF(report, h.companyName)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to render PDF")
	}

	filename := fmt.Sprintf("sales-report-%04d-%02d.pdf", year, month)
	c.Response().Header().Set(echo.HeaderContentDisposition,
		fmt.Sprintf(`attachment; filename=%q`, filename))
	return c.Blob(http.StatusOK, "application/pdf", pdf)
}

// ExportSalesReportRequest represents the export payload
type ExportSalesReportRequest struct {
	Month int `json:"month" validate:"required"`
	Year  int `json:"year" validate:"required"`
}

// ExportSalesReport renders the month's report, uploads it to object storage
// and returns a presigned download link.
func (h *ReportHandlers) ExportSalesReport(c echo.Context) error {
	ctx := c.Request().Context()

	var req ExportSalesReportRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request format")
	}

	month, year, err := common.ParseMonthYear(
		fmt.Sprintf("%d", req.Month), fmt.Sprintf("%d", req.Year))
	if err != nil {
		return common.RespondError(c, err)
	}

	result, err := h.exporter.ExportMonthly(ctx, month, year)
	if err != nil {
		return common.RespondError(c, err)
	}

	return c.JSON(http.StatusOK, result)
}
