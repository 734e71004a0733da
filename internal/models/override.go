package models

import (
	"time"

	"github.com/google/uuid"
)

// MonthlyIndentOverride replaces a customer's default quantities for one
// calendar month. MonthYear is always the first day of the month; the pair
// (company_id, month_year) is unique. Upserts are field-level: a nil
// quantity preserves whatever is already stored.
type MonthlyIndentOverride struct {
	ID               uuid.UUID `json:"id" db:"id"`
	CompanyID        uuid.UUID `json:"company_id" db:"company_id"`
	MonthYear        time.Time `json:"month_year" db:"month_year"`
	QuantityWeekdays *float64  `json:"quantity_weekdays" db:"quantity_weekdays"`
	QuantitySaturday *float64  `json:"quantity_saturday" db:"quantity_saturday"`
	QuantitySunday   *float64  `json:"quantity_sunday" db:"quantity_sunday"`
	QuantityHoliday  *float64  `json:"quantity_holiday" db:"quantity_holiday"`
	CreatedAt        time.Time `json:"created_at" db:"created_at"`
	UpdatedAt        time.Time `json:"updated_at" db:"updated_at"`
}

// NormalizeMonthYear collapses any date to the first day of its month.
func NormalizeMonthYear(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
}
