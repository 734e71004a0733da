package models

import (
	"time"

	"github.com/google/uuid"
)

// Rollup rows produced by the indent repository's aggregation queries. All
// quantities are rounded to two decimals in SQL before scanning, so the
// float64 values here never carry more precision than the store.

// MonthlyVolume is one month's total indent volume, labelled YYYY-MM.
type MonthlyVolume struct {
	Month         string  `json:"month"`
	TotalQuantity float64 `json:"total_quantity"`
}

// DailyVolume is one calendar day's total indent volume.
type DailyVolume struct {
	Date          time.Time `json:"date"`
	TotalQuantity float64   `json:"total_quantity"`
}

// CustomerRollup aggregates one bulk customer's rows inside a month window.
// AverageDailyIndent is AVG(quantity) over matching rows, i.e. average per
// indent row, not per distinct day.
type CustomerRollup struct {
	CompanyID          uuid.UUID `json:"company_id"`
	CompanyName        string    `json:"company_name"`
	TotalQuantity      float64   `json:"total_quantity_for_month"`
	AverageDailyIndent float64   `json:"average_daily_indent"`
	DaysIndented       int       `json:"days_indented"`
}

// PartnerRollup aggregates one delivery partner's rows inside a month window.
type PartnerRollup struct {
	DeliveryBoyID uuid.UUID `json:"delivery_boy_id"`
	PartnerName   *string   `json:"partner_name"`
	TotalQuantity float64   `json:"total_quantity"`
	IndentCount   int       `json:"indent_count"`
}
