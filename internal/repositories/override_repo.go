package repositories

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/agasthyasuperfoods/nutromilk-indent/internal/common"
	"github.com/agasthyasuperfoods/nutromilk-indent/internal/models"
)

type OverrideRepository interface {
	// Upsert inserts or updates the override keyed by (company_id,
	// month_year). On conflict each quantity field is replaced only when
	// the incoming value is non-null; nulls preserve the stored value.
	Upsert(ctx context.Context, override *models.MonthlyIndentOverride) (*models.MonthlyIndentOverride, error)
	// GetByCompanyMonth looks up the override for one customer month.
	// monthYear is normalized the same way Upsert stores it.
	GetByCompanyMonth(ctx context.Context, companyID uuid.UUID, monthYear time.Time) (*models.MonthlyIndentOverride, error)
	ListByCompany(ctx context.Context, companyID uuid.UUID) ([]*models.MonthlyIndentOverride, error)
}

type overrideRepo struct {
	db DB
}

func NewOverrideRepo(db DB) OverrideRepository {
	return &overrideRepo{db: db}
}

// querier is the subset of DB/pgx.Tx the upsert needs, so the same SQL runs
// standalone and inside the customer-update transaction.
type querier interface {
	QueryRow(ctx context.Context, sql string, args ...interface{}) pgx.Row
}

const overrideUpsertSQL = `
		INSERT INTO monthly_indent_overrides (id, company_id, month_year, quantity_weekdays, quantity_saturday, quantity_sunday, quantity_holiday, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, NOW(), NOW())
		ON CONFLICT (company_id, month_year) DO UPDATE SET
			quantity_weekdays = COALESCE(EXCLUDED.quantity_weekdays, monthly_indent_overrides.quantity_weekdays),
			quantity_saturday = COALESCE(EXCLUDED.quantity_saturday, monthly_indent_overrides.quantity_saturday),
			quantity_sunday = COALESCE(EXCLUDED.quantity_sunday, monthly_indent_overrides.quantity_sunday),
			quantity_holiday = COALESCE(EXCLUDED.quantity_holiday, monthly_indent_overrides.quantity_holiday),
			updated_at = NOW()
		RETURNING id, company_id, month_year, quantity_weekdays, quantity_saturday, quantity_sunday, quantity_holiday, created_at, updated_at
	`

func upsertOverrideRow(ctx context.Context, q querier, override *models.MonthlyIndentOverride) (*models.MonthlyIndentOverride, error) {
	stored := &models.MonthlyIndentOverride{}
	monthYear := models.NormalizeMonthYear(override.MonthYear)
	err := q.QueryRow(ctx, overrideUpsertSQL, override.ID, override.CompanyID, monthYear,
		override.QuantityWeekdays, override.QuantitySaturday, override.QuantitySunday, override.QuantityHoliday).
		Scan(&stored.ID, &stored.CompanyID, &stored.MonthYear, &stored.QuantityWeekdays, &stored.QuantitySaturday,
			&stored.QuantitySunday, &stored.QuantityHoliday, &stored.CreatedAt, &stored.UpdatedAt)
	if err != nil {
		return nil, common.WrapStorage("upsert monthly override", err)
	}
	return stored, nil
}

func (r *overrideRepo) Upsert(ctx context.Context, override *models.MonthlyIndentOverride) (*models.MonthlyIndentOverride, error) {
	return upsertOverrideRow(ctx, r.db, override)
}

const overrideColumns = `id, company_id, month_year, quantity_weekdays, quantity_saturday, quantity_sunday, quantity_holiday, created_at, updated_at`

func (r *overrideRepo) GetByCompanyMonth(ctx context.Context, companyID uuid.UUID, monthYear time.Time) (*models.MonthlyIndentOverride, error) {
	override := &models.MonthlyIndentOverride{}
	query := `
		SELECT ` + overrideColumns + `
		FROM monthly_indent_overrides
		WHERE company_id = $1 AND month_year = $2
	`
	err := r.db.QueryRow(ctx, query, companyID, models.NormalizeMonthYear(monthYear)).
		Scan(&override.ID, &override.CompanyID, &override.MonthYear, &override.QuantityWeekdays,
			&override.QuantitySaturday, &override.QuantitySunday, &override.QuantityHoliday,
			&override.CreatedAt, &override.UpdatedAt)
	if err != nil {
		return nil, common.WrapStorage("get monthly override", err)
	}
	return override, nil
}

func (r *overrideRepo) ListByCompany(ctx context.Context, companyID uuid.UUID) ([]*models.MonthlyIndentOverride, error) {
	query := `
		SELECT ` + overrideColumns + `
		FROM monthly_indent_overrides
		WHERE company_id = $1
		ORDER BY month_year DESC
	`
	rows, err := r.db.Query(ctx, query, companyID)
	if err != nil {
		return nil, common.WrapStorage("list monthly overrides", err)
	}
	defer rows.Close()

	var overrides []*models.MonthlyIndentOverride
	for rows.Next() {
		override := &models.MonthlyIndentOverride{}
		if err := rows.Scan(&override.ID, &override.CompanyID, &override.MonthYear, &override.QuantityWeekdays,
			&override.QuantitySaturday, &override.QuantitySunday, &override.QuantityHoliday,
			&override.CreatedAt, &override.UpdatedAt); err != nil {
			return nil, common.WrapStorage("scan monthly override", err)
		}
		overrides = append(overrides, override)
	}
	if err := rows.Err(); err != nil {
		return nil, common.WrapStorage("iterate monthly overrides", err)
	}
	return overrides, nil
}
