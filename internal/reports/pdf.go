package reports

import (
	"bytes"
	"fmt"

	"github.com/jung-kurt/gofpdf"
)

// RenderPDF lays out a SalesReport as a printable A4 summary: headline
// totals, month-over-month comparison, then the customer and delivery
// partner tables.
func RenderPDF(report *SalesReport, companyName string) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	marginX := 20.0
	marginY := 20.0
	pdf.SetMargins(marginX, marginY, marginX)
	pdf.SetAutoPageBreak(true, marginY)

	pdf.SetFont("Arial", "B", 16)
	pdf.SetTextColor(33, 37, 41)
	pdf.SetXY(marginX, marginY)
	pdf.Cell(0, 10, fmt.Sprintf("%s - MONTHLY SALES REPORT", companyName))
	pdf.Ln(15)

	pdf.SetFont("Arial", "B", 12)
	pdf.Cell(0, 8, fmt.Sprintf("Period: %04d-%02d", report.Year, report.Month))
	pdf.Ln(8)
	pdf.Cell(0, 8, fmt.Sprintf("Total Volume: %.2f L", report.TotalMonthlyVolume))
	pdf.Ln(8)
	if report.PreviousMonth != nil {
		pdf.Cell(0, 8, fmt.Sprintf("Previous Month (%s): %.2f L", report.PreviousMonth.Month, report.PreviousMonth.TotalQuantity))
		pdf.Ln(8)
	}
	pdf.Ln(5)

	// Bulk customer table
	pdf.SetFont("Arial", "B", 11)
	pdf.Cell(0, 8, "BULK CUSTOMERS")
	pdf.Ln(8)

	pdf.SetFont("Arial", "B", 10)
	pdf.SetFillColor(240, 240, 240)
	headers := []string{"Customer", "Total (L)", "Avg per Indent", "Days"}
	widths := []float64{80, 30, 35, 25}
	for i, header := range headers {
		pdf.CellFormat(widths[i], 8, header, "1", 0, "C", true, 0, "")
	}
	pdf.Ln(8)

	pdf.SetFont("Arial", "", 10)
	pdf.SetFillColor(255, 255, 255)
	for _, row := range report.Customers {
		pdf.CellFormat(widths[0], 8, row.CompanyName, "1", 0, "L", false, 0, "")
		pdf.CellFormat(widths[1], 8, fmt.Sprintf("%.2f", row.TotalQuantity), "1", 0, "R", false, 0, "")
		pdf.CellFormat(widths[2], 8, fmt.Sprintf("%.2f", row.AverageDailyIndent), "1", 0, "R", false, 0, "")
		pdf.CellFormat(widths[3], 8, fmt.Sprintf("%d", row.DaysIndented), "1", 0, "C", false, 0, "")
		pdf.Ln(8)
	}
	if len(report.Customers) == 0 {
		pdf.CellFormat(widths[0]+widths[1]+widths[2]+widths[3], 8, "No bulk customer indents this month", "1", 0, "C", false, 0, "")
		pdf.Ln(8)
	}
	pdf.Ln(5)

	// Delivery partner table
	pdf.SetFont("Arial", "B", 11)
	pdf.Cell(0, 8, fmt.Sprintf("HOME DELIVERY (total %.2f L)", report.Delivery.TotalDeliveryVolume))
	pdf.Ln(8)

	pdf.SetFont("Arial", "B", 10)
	pdf.SetFillColor(240, 240, 240)
	dHeaders := []string{"Delivery Partner", "Total (L)", "Indents"}
	dWidths := []float64{90, 40, 40}
	for i, header := range dHeaders {
		pdf.CellFormat(dWidths[i], 8, header, "1", 0, "C", true, 0, "")
	}
	pdf.Ln(8)

	pdf.SetFont("Arial", "", 10)
	pdf.SetFillColor(255, 255, 255)
	for _, row := range report.Delivery.Rows {
		name := row.DeliveryBoyID.String()
		if row.PartnerName != nil && *row.PartnerName != "" {
			name = *row.PartnerName
		}
		pdf.CellFormat(dWidths[0], 8, name, "1", 0, "L", false, 0, "")
		pdf.CellFormat(dWidths[1], 8, fmt.Sprintf("%.2f", row.TotalQuantity), "1", 0, "R", false, 0, "")
		pdf.CellFormat(dWidths[2], 8, fmt.Sprintf("%d", row.IndentCount), "1", 0, "C", false, 0, "")
		pdf.Ln(8)
	}
	if len(report.Delivery.Rows) == 0 {
		pdf.CellFormat(dWidths[0]+dWidths[1]+dWidths[2], 8, "No home delivery indents this month", "1", 0, "C", false, 0, "")
		pdf.Ln(8)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render report PDF: %w", err)
	}
	return buf.Bytes(), nil
}
