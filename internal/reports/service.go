package reports

import (
	"context"
	"log"
	"time"

	"github.com/agasthyasuperfoods/nutromilk-indent/internal/common"
	"github.com/agasthyasuperfoods/nutromilk-indent/internal/models"
	"github.com/agasthyasuperfoods/nutromilk-indent/internal/repositories"
)

// SalesReport is the full monthly aggregation response. The headline
// TotalMonthlyVolume is always a real number, 0 for months with no rows;
// the slices are always non-nil so consumers never see null arrays.
type SalesReport struct {
	Month int `json:"month"`
	Year  int `json:"year"`

	PrevMonthStart string `json:"prev_month_start"`
	MonthStart     string `json:"month_start"`
	NextMonthStart string `json:"next_month_start"`

	TotalMonthlyVolume float64 `json:"total_monthly_volume"`

	Monthly       []models.MonthlyVolume `json:"monthly"`
	SelectedMonth *models.MonthlyVolume  `json:"selected_month"`
	PreviousMonth *models.MonthlyVolume  `json:"previous_month"`

	Daily     []models.DailyVolume    `json:"daily"`
	Customers []models.CustomerRollup `json:"customers"`
	Delivery  DeliverySummary         `json:"delivery"`
}

// DeliverySummary carries the per-partner rollups plus the aggregate total
// across all home-delivery rows in the window.
type DeliverySummary struct {
	Rows                []models.PartnerRollup `json:"rows"`
	TotalDeliveryVolume float64                `json:"total_delivery_volume"`
}

// Service is the sales aggregation engine. All queries run over half-open
// date windows [start, next) so month length never matters.
type Service struct {
	indentRepo repositories.IndentRepository
}

func NewService(indentRepo repositories.IndentRepository) *Service {
	return &Service{indentRepo: indentRepo}
}

// MonthWindow computes the three boundary dates for a report month: first
// day of the previous, selected and following month, all UTC midnight.
// Validation happens here so invalid input never reaches the database.
func MonthWindow(month, year int) (prevStart, start, nextStart time.Time, err error) {
	if month < 1 || month > 12 {
		return time.Time{}, time.Time{}, time.Time{}, common.InvalidArgumentf("month must be between 1 and 12")
	}
	if year < 2000 || year > 2100 {
		return time.Time{}, time.Time{}, time.Time{}, common.InvalidArgumentf("year must be a four digit integer")
	}
	start = time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	return start.AddDate(0, -1, 0), start, start.AddDate(0, 1, 0), nil
}

const monthLabel = "2006-01"
const dateLabel = "2006-01-02"

// MonthlySalesReport runs the full aggregation for (month, year). Any
// repository error aborts the whole report; partial results are never
// returned.
func (s *Service) MonthlySalesReport(ctx context.Context, month, year int) (*SalesReport, error) {
	prevStart, start, nextStart, err := MonthWindow(month, year)
	if err != nil {
		return nil, err
	}

	report := &SalesReport{
		Month:          month,
		Year:           year,
		PrevMonthStart: prevStart.Format(dateLabel),
		MonthStart:     start.Format(dateLabel),
		NextMonthStart: nextStart.Format(dateLabel),
		Monthly:        []models.MonthlyVolume{},
		Daily:          []models.DailyVolume{},
		Customers:      []models.CustomerRollup{},
		Delivery:       DeliverySummary{Rows: []models.PartnerRollup{}},
	}

	// One query covers both the selected and the previous month so the
	// month-over-month comparison needs no second round trip.
	monthly, err := s.indentRepo.MonthlyVolumes(ctx, prevStart, nextStart)
	if err != nil {
		return nil, err
	}
	if monthly != nil {
		report.Monthly = monthly
	}

	selectedLabel := start.Format(monthLabel)
	previousLabel := prevStart.Format(monthLabel)
	for i := range report.Monthly {
		switch report.Monthly[i].Month {
		case selectedLabel:
			report.SelectedMonth = &report.Monthly[i]
		case previousLabel:
			report.PreviousMonth = &report.Monthly[i]
		}
	}

	// A month with no rows produces no GROUP BY row at all, so the headline
	// figure falls back to a dedicated coalesced aggregate.
	if report.SelectedMonth != nil {
		report.TotalMonthlyVolume = report.SelectedMonth.TotalQuantity
	} else {
		total, err := s.indentRepo.TotalVolume(ctx, start, nextStart)
		if err != nil {
			return nil, err
		}
		report.TotalMonthlyVolume = total
	}

	daily, err := s.indentRepo.DailyVolumes(ctx, start, nextStart)
	if err != nil {
		return nil, err
	}
	if daily != nil {
		report.Daily = daily
	}

	customers, err := s.indentRepo.CustomerRollups(ctx, start, nextStart)
	if err != nil {
		return nil, err
	}
	if customers != nil {
		report.Customers = customers
	}

	partners, err := s.indentRepo.PartnerRollups(ctx, start, nextStart)
	if err != nil {
		return nil, err
	}
	if partners != nil {
		report.Delivery.Rows = partners
	}

	deliveryTotal, err := s.indentRepo.PartnerTotalVolume(ctx, start, nextStart)
	if err != nil {
		return nil, err
	}
	report.Delivery.TotalDeliveryVolume = deliveryTotal

	log.Printf("sales report %04d-%02d: total=%.2f customers=%d partners=%d",
		year, month, report.TotalMonthlyVolume, len(report.Customers), len(report.Delivery.Rows))

	return report, nil
}
