package repositories

import (
	"context"

	"github.com/google/uuid"

	"github.com/agasthyasuperfoods/nutromilk-indent/internal/common"
	"github.com/agasthyasuperfoods/nutromilk-indent/internal/models"
)

type CustomerRepository interface {
	Create(ctx context.Context, customer *models.Customer) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Customer, error)
	Update(ctx context.Context, customer *models.Customer) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, limit, offset int) ([]*models.Customer, error)
	// UpdateWithOverride runs the customer update and the monthly override
	// upsert in one transaction so a failure rolls back both statements.
	UpdateWithOverride(ctx context.Context, customer *models.Customer, override *models.MonthlyIndentOverride) (*models.MonthlyIndentOverride, error)
}

type customerRepo struct {
	db DB
}

func NewCustomerRepo(db DB) CustomerRepository {
	return &customerRepo{db: db}
}

const customerColumns = `id, name, area, payment_terms, quantity_weekdays, quantity_saturday, quantity_sunday, quantity_holiday, created_at, updated_at`

func (r *customerRepo) Create(ctx context.Context, customer *models.Customer) error {
	query := `
		INSERT INTO customers (id, name, area, payment_terms, quantity_weekdays, quantity_saturday, quantity_sunday, quantity_holiday, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NOW(), NOW())
	`
	_, err := r.db.Exec(ctx, query, customer.ID, customer.Name, customer.Area, customer.PaymentTerms,
		customer.QuantityWeekdays, customer.QuantitySaturday, customer.QuantitySunday, customer.QuantityHoliday)
	return common.WrapStorage("create customer", err)
}

func (r *customerRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Customer, error) {
	customer := &models.Customer{}
	query := `
		SELECT ` + customerColumns + `
		FROM customers
		WHERE id = $1
	`
	err := r.db.QueryRow(ctx, query, id).Scan(&customer.ID, &customer.Name, &customer.Area, &customer.PaymentTerms,
		&customer.QuantityWeekdays, &customer.QuantitySaturday, &customer.QuantitySunday, &customer.QuantityHoliday,
		&customer.CreatedAt, &customer.UpdatedAt)
	if err != nil {
		return nil, common.WrapStorage("get customer", err)
	}
	return customer, nil
}

const customerUpdateSQL = `
		UPDATE customers
		SET name = $1, area = $2, payment_terms = $3, quantity_weekdays = $4, quantity_saturday = $5, quantity_sunday = $6, quantity_holiday = $7, updated_at = NOW()
		WHERE id = $8
	`

func (r *customerRepo) Update(ctx context.Context, customer *models.Customer) error {
	tag, err := r.db.Exec(ctx, customerUpdateSQL, customer.Name, customer.Area, customer.PaymentTerms,
		customer.QuantityWeekdays, customer.QuantitySaturday, customer.QuantitySunday, customer.QuantityHoliday, customer.ID)
	if err != nil {
		return common.WrapStorage("update customer", err)
	}
	if tag.RowsAffected() == 0 {
		return common.NotFoundf("customer %s", customer.ID)
	}
	return nil
}

func (r *customerRepo) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := r.db.Exec(ctx, `DELETE FROM customers WHERE id = $1`, id)
	return common.WrapStorage("delete customer", err)
}

func (r *customerRepo) List(ctx context.Context, limit, offset int) ([]*models.Customer, error) {
	query := `
		SELECT ` + customerColumns + `
		FROM customers
		ORDER BY name
		LIMIT $1 OFFSET $2
	`
	rows, err := r.db.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, common.WrapStorage("list customers", err)
	}
	defer rows.Close()

	var customers []*models.Customer
	for rows.Next() {
		customer := &models.Customer{}
		if err := rows.Scan(&customer.ID, &customer.Name, &customer.Area, &customer.PaymentTerms,
			&customer.QuantityWeekdays, &customer.QuantitySaturday, &customer.QuantitySunday, &customer.QuantityHoliday,
			&customer.CreatedAt, &customer.UpdatedAt); err != nil {
			return nil, common.WrapStorage("scan customer", err)
		}
		customers = append(customers, customer)
	}
	if err := rows.Err(); err != nil {
		return nil, common.WrapStorage("iterate customers", err)
	}
	return customers, nil
}

func (r *customerRepo) UpdateWithOverride(ctx context.Context, customer *models.Customer, override *models.MonthlyIndentOverride) (*models.MonthlyIndentOverride, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, common.WrapStorage("begin customer update", err)
	}
	defer tx.Rollback(ctx)

	tag, err := tx.Exec(ctx, customerUpdateSQL, customer.Name, customer.Area, customer.PaymentTerms,
		customer.QuantityWeekdays, customer.QuantitySaturday, customer.QuantitySunday, customer.QuantityHoliday, customer.ID)
	if err != nil {
		return nil, common.WrapStorage("update customer", err)
	}
	if tag.RowsAffected() == 0 {
		return nil, common.NotFoundf("customer %s", customer.ID)
	}

	stored, err := upsertOverrideRow(ctx, tx, override)
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, common.WrapStorage("commit customer update", err)
	}
	return stored, nil
}
