package models

import (
	"time"

	"github.com/google/uuid"
)

// Customer is a bulk institutional buyer (hotel, shop, school) with default
// order quantities per day category. Defaults can be overridden per month
// via MonthlyIndentOverride.
type Customer struct {
	ID               uuid.UUID `json:"id" db:"id"`
	Name             string    `json:"name" db:"name"`
	Area             *string   `json:"area" db:"area"`
	PaymentTerms     *string   `json:"payment_terms" db:"payment_terms"`
	QuantityWeekdays *float64  `json:"quantity_weekdays" db:"quantity_weekdays"`
	QuantitySaturday *float64  `json:"quantity_saturday" db:"quantity_saturday"`
	QuantitySunday   *float64  `json:"quantity_sunday" db:"quantity_sunday"`
	QuantityHoliday  *float64  `json:"quantity_holiday" db:"quantity_holiday"`
	CreatedAt        time.Time `json:"created_at" db:"created_at"`
	UpdatedAt        time.Time `json:"updated_at" db:"updated_at"`
}
