package repositories

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/agasthyasuperfoods/nutromilk-indent/internal/common"
	"github.com/agasthyasuperfoods/nutromilk-indent/internal/models"
)

// IndentRepository owns the indent fact table. Writes are append-only;
// reads are either raw row listings or the aggregation queries the sales
// report is built from. Every window parameter pair is a half-open
// interval [start, end).
type IndentRepository interface {
	Create(ctx context.Context, indent *models.IndentRecord) error
	ListByDate(ctx context.Context, date time.Time) ([]*models.IndentRecord, error)
	ListByDateRange(ctx context.Context, start, end time.Time) ([]*models.IndentRecord, error)

	MonthlyVolumes(ctx context.Context, start, end time.Time) ([]models.MonthlyVolume, error)
	TotalVolume(ctx context.Context, start, end time.Time) (float64, error)
	DailyVolumes(ctx context.Context, start, end time.Time) ([]models.DailyVolume, error)
	CustomerRollups(ctx context.Context, start, end time.Time) ([]models.CustomerRollup, error)
	PartnerRollups(ctx context.Context, start, end time.Time) ([]models.PartnerRollup, error)
	PartnerTotalVolume(ctx context.Context, start, end time.Time) (float64, error)
}

type indentRepo struct {
	db DB
}

func NewIndentRepo(db DB) IndentRepository {
	return &indentRepo{db: db}
}

func (r *indentRepo) Create(ctx context.Context, indent *models.IndentRecord) error {
	if err := indent.Validate(); err != nil {
		return common.InvalidArgumentf("%v", err)
	}
	query := `
		INSERT INTO indents (id, indent_date, quantity, company_id, company_name, delivery_boy_id, item_type, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, NOW())
	`
	_, err := r.db.Exec(ctx, query, indent.ID, indent.IndentDate, indent.Quantity,
		indent.CompanyID, indent.CompanyName, indent.DeliveryBoyID, indent.ItemType)
	return common.WrapStorage("create indent", err)
}

const indentColumns = `id, indent_date, quantity, company_id, company_name, delivery_boy_id, item_type, created_at`

func (r *indentRepo) ListByDate(ctx context.Context, date time.Time) ([]*models.IndentRecord, error) {
	query := `
		SELECT ` + indentColumns + `
		FROM indents
		WHERE indent_date = $1
		ORDER BY created_at
	`
	rows, err := r.db.Query(ctx, query, date)
	if err != nil {
		return nil, common.WrapStorage("list indents by date", err)
	}
	defer rows.Close()
	return scanIndents(rows)
}

func (r *indentRepo) ListByDateRange(ctx context.Context, start, end time.Time) ([]*models.IndentRecord, error) {
	query := `
		SELECT ` + indentColumns + `
		FROM indents
		WHERE indent_date >= $1 AND indent_date < $2
		ORDER BY indent_date, created_at
	`
	rows, err := r.db.Query(ctx, query, start, end)
	if err != nil {
		return nil, common.WrapStorage("list indents by range", err)
	}
	defer rows.Close()
	return scanIndents(rows)
}

func scanIndents(rows pgx.Rows) ([]*models.IndentRecord, error) {
	var indents []*models.IndentRecord
	for rows.Next() {
		indent := &models.IndentRecord{}
		if err := rows.Scan(&indent.ID, &indent.IndentDate, &indent.Quantity, &indent.CompanyID,
			&indent.CompanyName, &indent.DeliveryBoyID, &indent.ItemType, &indent.CreatedAt); err != nil {
			return nil, common.WrapStorage("scan indent", err)
		}
		indents = append(indents, indent)
	}
	if err := rows.Err(); err != nil {
		return nil, common.WrapStorage("iterate indents", err)
	}
	return indents, nil
}

// MonthlyVolumes sums quantity per calendar month over the window. Months
// with no rows produce no result row at all; the report layer handles the
// coalesce-to-zero guarantee.
func (r *indentRepo) MonthlyVolumes(ctx context.Context, start, end time.Time) ([]models.MonthlyVolume, error) {
	query := `
		SELECT to_char(date_trunc('month', indent_date), 'YYYY-MM') AS month,
		       ROUND(SUM(quantity)::numeric, 2)::float8 AS total_quantity
		FROM indents
		WHERE indent_date >= $1 AND indent_date < $2
		GROUP BY date_trunc('month', indent_date)
		ORDER BY date_trunc('month', indent_date)
	`
	rows, err := r.db.Query(ctx, query, start, end)
	if err != nil {
		return nil, common.WrapStorage("monthly volumes", err)
	}
	defer rows.Close()

	var volumes []models.MonthlyVolume
	for rows.Next() {
		var v models.MonthlyVolume
		if err := rows.Scan(&v.Month, &v.TotalQuantity); err != nil {
			return nil, common.WrapStorage("scan monthly volume", err)
		}
		volumes = append(volumes, v)
	}
	if err := rows.Err(); err != nil {
		return nil, common.WrapStorage("iterate monthly volumes", err)
	}
	return volumes, nil
}

// TotalVolume is the coalesced scalar sum for a window; 0 when no rows match.
func (r *indentRepo) TotalVolume(ctx context.Context, start, end time.Time) (float64, error) {
	query := `
		SELECT COALESCE(ROUND(SUM(quantity)::numeric, 2), 0)::float8
		FROM indents
		WHERE indent_date >= $1 AND indent_date < $2
	`
	var total float64
	if err := r.db.QueryRow(ctx, query, start, end).Scan(&total); err != nil {
		return 0, common.WrapStorage("total volume", err)
	}
	return total, nil
}

func (r *indentRepo) DailyVolumes(ctx context.Context, start, end time.Time) ([]models.DailyVolume, error) {
	query := `
		SELECT indent_date, ROUND(SUM(quantity)::numeric, 2)::float8 AS total_quantity
		FROM indents
		WHERE indent_date >= $1 AND indent_date < $2
		GROUP BY indent_date
		ORDER BY indent_date
	`
	rows, err := r.db.Query(ctx, query, start, end)
	if err != nil {
		return nil, common.WrapStorage("daily volumes", err)
	}
	defer rows.Close()

	var volumes []models.DailyVolume
	for rows.Next() {
		var v models.DailyVolume
		if err := rows.Scan(&v.Date, &v.TotalQuantity); err != nil {
			return nil, common.WrapStorage("scan daily volume", err)
		}
		volumes = append(volumes, v)
	}
	if err := rows.Err(); err != nil {
		return nil, common.WrapStorage("iterate daily volumes", err)
	}
	return volumes, nil
}

// CustomerRollups aggregates bulk-customer rows only (company_id set),
// highest volume first. average_daily_indent is AVG over rows, matching the
// report field's historical definition.
func (r *indentRepo) CustomerRollups(ctx context.Context, start, end time.Time) ([]models.CustomerRollup, error) {
	query := `
		SELECT company_id,
		       COALESCE(MAX(company_name), '') AS company_name,
		       ROUND(SUM(quantity)::numeric, 2)::float8 AS total_quantity,
		       ROUND(AVG(quantity)::numeric, 2)::float8 AS average_daily_indent,
		       COUNT(DISTINCT indent_date) AS days_indented
		FROM indents
		WHERE indent_date >= $1 AND indent_date < $2 AND company_id IS NOT NULL
		GROUP BY company_id
		ORDER BY SUM(quantity) DESC
	`
	rows, err := r.db.Query(ctx, query, start, end)
	if err != nil {
		return nil, common.WrapStorage("customer rollups", err)
	}
	defer rows.Close()

	var rollups []models.CustomerRollup
	for rows.Next() {
		var c models.CustomerRollup
		if err := rows.Scan(&c.CompanyID, &c.CompanyName, &c.TotalQuantity, &c.AverageDailyIndent, &c.DaysIndented); err != nil {
			return nil, common.WrapStorage("scan customer rollup", err)
		}
		rollups = append(rollups, c)
	}
	if err := rows.Err(); err != nil {
		return nil, common.WrapStorage("iterate customer rollups", err)
	}
	return rollups, nil
}

// PartnerRollups aggregates home-delivery rows only (delivery_boy_id set),
// highest volume first, with the partner name joined in for display.
func (r *indentRepo) PartnerRollups(ctx context.Context, start, end time.Time) ([]models.PartnerRollup, error) {
	query := `
		SELECT i.delivery_boy_id,
		       dp.name,
		       ROUND(SUM(i.quantity)::numeric, 2)::float8 AS total_quantity,
		       COUNT(*) AS indent_count
		FROM indents i
		LEFT JOIN delivery_partners dp ON dp.id = i.delivery_boy_id
		WHERE i.indent_date >= $1 AND i.indent_date < $2 AND i.delivery_boy_id IS NOT NULL
		GROUP BY i.delivery_boy_id, dp.name
		ORDER BY SUM(i.quantity) DESC
	`
	rows, err := r.db.Query(ctx, query, start, end)
	if err != nil {
		return nil, common.WrapStorage("partner rollups", err)
	}
	defer rows.Close()

	var rollups []models.PartnerRollup
	for rows.Next() {
		var p models.PartnerRollup
		if err := rows.Scan(&p.DeliveryBoyID, &p.PartnerName, &p.TotalQuantity, &p.IndentCount); err != nil {
			return nil, common.WrapStorage("scan partner rollup", err)
		}
		rollups = append(rollups, p)
	}
	if err := rows.Err(); err != nil {
		return nil, common.WrapStorage("iterate partner rollups", err)
	}
	return rollups, nil
}

func (r *indentRepo) PartnerTotalVolume(ctx context.Context, start, end time.Time) (float64, error) {
	query := `
		SELECT COALESCE(ROUND(SUM(quantity)::numeric, 2), 0)::float8
		FROM indents
		WHERE indent_date >= $1 AND indent_date < $2 AND delivery_boy_id IS NOT NULL
	`
	var total float64
	if err := r.db.QueryRow(ctx, query, start, end).Scan(&total); err != nil {
		return 0, common.WrapStorage("partner total volume", err)
	}
	return total, nil
}
