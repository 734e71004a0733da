package models

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Item types recorded on indents.
const (
	ItemTypeMilk     = "milk"
	ItemTypePackaged = "packaged"
)

// IndentRecord is one row of the indent fact table: a quantity of milk
// dispatched on a calendar date to either a bulk customer or a home-delivery
// partner. Exactly one of CompanyID/DeliveryBoyID is set; the reporting
// rollups rely on this exclusivity to partition the table without double
// counting. Rows are append-only: there is no update or delete path.
type IndentRecord struct {
	ID            uuid.UUID  `json:"id" db:"id"`
	IndentDate    time.Time  `json:"indent_date" db:"indent_date"`
	Quantity      float64    `json:"quantity" db:"quantity"`
	CompanyID     *uuid.UUID `json:"company_id" db:"company_id"`
	CompanyName   *string    `json:"company_name" db:"company_name"`
	DeliveryBoyID *uuid.UUID `json:"delivery_boy_id" db:"delivery_boy_id"`
	ItemType      string     `json:"item_type" db:"item_type"`
	CreatedAt     time.Time  `json:"created_at" db:"created_at"`
}

// IndentKind tags which side of the union a record belongs to.
type IndentKind string

const (
	IndentBulk     IndentKind = "bulk"
	IndentDelivery IndentKind = "delivery"
)

var (
	ErrIndentRecipient = errors.New("indent must reference exactly one of company or delivery partner")
	ErrIndentQuantity  = errors.New("indent quantity must be non-negative")
	ErrIndentDate      = errors.New("indent date is required")
)

// NewBulkOrder builds an indent row for a bulk institutional customer.
func NewBulkOrder(companyID uuid.UUID, companyName string, date time.Time, quantity float64, itemType string) (*IndentRecord, error) {
	if companyID == uuid.Nil {
		return nil, ErrIndentRecipient
	}
	rec := &IndentRecord{
		ID:         uuid.New(),
		IndentDate: truncateToDate(date),
		Quantity:   quantity,
		CompanyID:  &companyID,
		ItemType:   normalizeItemType(itemType),
	}
	if name := strings.TrimSpace(companyName); name != "" {
		rec.CompanyName = &name
	}
	if err := rec.Validate(); err != nil {
		return nil, err
	}
	return rec, nil
}

// NewDeliveryDispatch builds an indent row for a home-delivery partner route.
func NewDeliveryDispatch(deliveryBoyID uuid.UUID, date time.Time, quantity float64, itemType string) (*IndentRecord, error) {
	if deliveryBoyID == uuid.Nil {
		return nil, ErrIndentRecipient
	}
	rec := &IndentRecord{
		ID:            uuid.New(),
		IndentDate:    truncateToDate(date),
		Quantity:      quantity,
		DeliveryBoyID: &deliveryBoyID,
		ItemType:      normalizeItemType(itemType),
	}
	if err := rec.Validate(); err != nil {
		return nil, err
	}
	return rec, nil
}

// Kind reports which side of the union this record is. Only meaningful for
// records that pass Validate.
func (r *IndentRecord) Kind() IndentKind {
	if r.CompanyID != nil {
		return IndentBulk
	}
	return IndentDelivery
}

// Validate enforces the construction invariants. The repository refuses to
// persist records that fail this check.
func (r *IndentRecord) Validate() error {
	hasCompany := r.CompanyID != nil && *r.CompanyID != uuid.Nil
	hasPartner := r.DeliveryBoyID != nil && *r.DeliveryBoyID != uuid.Nil
	if hasCompany == hasPartner {
		return ErrIndentRecipient
	}
	if r.Quantity < 0 {
		return ErrIndentQuantity
	}
	if r.IndentDate.IsZero() {
		return ErrIndentDate
	}
	return nil
}

func truncateToDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func normalizeItemType(itemType string) string {
	itemType = strings.ToLower(strings.TrimSpace(itemType))
	if itemType == "" {
		return ItemTypeMilk
	}
	return itemType
}
