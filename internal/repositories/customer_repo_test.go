package repositories

import (
	"context"
	"testing"
	"time"

	"github.com/agasthyasuperfoods/nutromilk-indent/internal/common"
	"github.com/agasthyasuperfoods/nutromilk-indent/internal/models"

	"github.com/google/uuid"
	pgxmock "github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
)

type CustomerRepoTestSuite struct {
	suite.Suite
	mock    pgxmock.PgxPoolIface
	repo    CustomerRepository
	context context.Context
}

func (suite *CustomerRepoTestSuite) SetupTest() {
	mock, err := pgxmock.NewPool()
	assert.NoError(suite.T(), err)
	suite.mock = mock

	suite.repo = NewCustomerRepo(mock)
	suite.context = context.Background()
}

func (suite *CustomerRepoTestSuite) TearDownTest() {
	assert.NoError(suite.T(), suite.mock.ExpectationsWereMet())
	suite.mock.Close()
}

func TestCustomerRepoTestSuite(t *testing.T) {
	suite.Run(t, new(CustomerRepoTestSuite))
}

func (suite *CustomerRepoTestSuite) TestCreate_Success() {
	customer := &models.Customer{
		ID:               uuid.New(),
		Name:             "Hotel Grand",
		Area:             stringPtr("MG Road"),
		QuantityWeekdays: floatPtr(120),
	}

	suite.mock.ExpectExec(`INSERT INTO customers`).
		WithArgs(customer.ID, customer.Name, customer.Area, customer.PaymentTerms,
			customer.QuantityWeekdays, customer.QuantitySaturday, customer.QuantitySunday, customer.QuantityHoliday).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	err := suite.repo.Create(suite.context, customer)
	assert.NoError(suite.T(), err)
}

func (suite *CustomerRepoTestSuite) TestUpdate_NotFound() {
	customer := &models.Customer{
		ID:   uuid.New(),
		Name: "Gone Hotel",
	}

	suite.mock.ExpectExec(`UPDATE customers`).
		WithArgs(customer.Name, customer.Area, customer.PaymentTerms,
			customer.QuantityWeekdays, customer.QuantitySaturday, customer.QuantitySunday, customer.QuantityHoliday, customer.ID).
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))

	err := suite.repo.Update(suite.context, customer)
	assert.ErrorIs(suite.T(), err, common.ErrNotFound)
}

func (suite *CustomerRepoTestSuite) TestUpdateWithOverride_CommitsBothStatements() {
	customer := &models.Customer{
		ID:               uuid.New(),
		Name:             "Hotel Grand",
		QuantityWeekdays: floatPtr(120),
	}
	override := &models.MonthlyIndentOverride{
		ID:               uuid.New(),
		CompanyID:        customer.ID,
		MonthYear:        time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC),
		QuantityWeekdays: floatPtr(150),
	}

	suite.mock.ExpectBegin()
	suite.mock.ExpectExec(`UPDATE customers`).
		WithArgs(customer.Name, customer.Area, customer.PaymentTerms,
			customer.QuantityWeekdays, customer.QuantitySaturday, customer.QuantitySunday, customer.QuantityHoliday, customer.ID).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))
	suite.mock.ExpectQuery(`ON CONFLICT \(company_id, month_year\) DO UPDATE SET`).
		WithArgs(override.ID, override.CompanyID, override.MonthYear,
			override.QuantityWeekdays, override.QuantitySaturday, override.QuantitySunday, override.QuantityHoliday).
		WillReturnRows(pgxmock.NewRows([]string{"id", "company_id", "month_year", "quantity_weekdays", "quantity_saturday", "quantity_sunday", "quantity_holiday", "created_at", "updated_at"}).
			AddRow(override.ID, override.CompanyID, override.MonthYear, override.QuantityWeekdays,
				override.QuantitySaturday, override.QuantitySunday, override.QuantityHoliday, time.Now(), time.Now()))
	suite.mock.ExpectCommit()

	stored, err := suite.repo.UpdateWithOverride(suite.context, customer, override)
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), 150.0, *stored.QuantityWeekdays)
}

func (suite *CustomerRepoTestSuite) TestUpdateWithOverride_MissingCustomerRollsBack() {
	customer := &models.Customer{
		ID:   uuid.New(),
		Name: "Gone Hotel",
	}
	override := &models.MonthlyIndentOverride{
		ID:        uuid.New(),
		CompanyID: customer.ID,
		MonthYear: time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC),
	}

	suite.mock.ExpectBegin()
	suite.mock.ExpectExec(`UPDATE customers`).
		WithArgs(customer.Name, customer.Area, customer.PaymentTerms,
			customer.QuantityWeekdays, customer.QuantitySaturday, customer.QuantitySunday, customer.QuantityHoliday, customer.ID).
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))
	suite.mock.ExpectRollback()

	stored, err := suite.repo.UpdateWithOverride(suite.context, customer, override)
	assert.ErrorIs(suite.T(), err, common.ErrNotFound)
	assert.Nil(suite.T(), stored)
}

func (suite *CustomerRepoTestSuite) TestList_OrderedByName() {
	rows := pgxmock.NewRows([]string{"id", "name", "area", "payment_terms", "quantity_weekdays", "quantity_saturday", "quantity_sunday", "quantity_holiday", "created_at", "updated_at"}).
		AddRow(uuid.New(), "City School", nil, nil, floatPtr(60), nil, nil, nil, time.Now(), time.Now()).
		AddRow(uuid.New(), "Hotel Grand", nil, nil, floatPtr(120), nil, nil, nil, time.Now(), time.Now())

	suite.mock.ExpectQuery(`ORDER BY name`).
		WithArgs(50, 0).
		WillReturnRows(rows)

	result, err := suite.repo.List(suite.context, 50, 0)
	assert.NoError(suite.T(), err)
	assert.Len(suite.T(), result, 2)
	assert.Equal(suite.T(), "City School", result[0].Name)
}

// Helper to create string pointer
func stringPtr(s string) *string {
	return &s
}
