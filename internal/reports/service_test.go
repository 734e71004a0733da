package reports

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/agasthyasuperfoods/nutromilk-indent/internal/common"
	"github.com/agasthyasuperfoods/nutromilk-indent/internal/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type MockIndentRepository struct {
	mock.Mock
}

func (m *MockIndentRepository) Create(ctx context.Context, indent *models.IndentRecord) error {
	args := m.Called(ctx, indent)
	return args.Error(0)
}

func (m *MockIndentRepository) ListByDate(ctx context.Context, date time.Time) ([]*models.IndentRecord, error) {
	args := m.Called(ctx, date)
	return args.Get(0).([]*models.IndentRecord), args.Error(1)
}

func (m *MockIndentRepository) ListByDateRange(ctx context.Context, start, end time.Time) ([]*models.IndentRecord, error) {
	args := m.Called(ctx, start, end)
	return args.Get(0).([]*models.IndentRecord), args.Error(1)
}

func (m *MockIndentRepository) MonthlyVolumes(ctx context.Context, start, end time.Time) ([]models.MonthlyVolume, error) {
	args := m.Called(ctx, start, end)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.MonthlyVolume), args.Error(1)
}

func (m *MockIndentRepository) TotalVolume(ctx context.Context, start, end time.Time) (float64, error) {
	args := m.Called(ctx, start, end)
	return args.Get(0).(float64), args.Error(1)
}

func (m *MockIndentRepository) DailyVolumes(ctx context.Context, start, end time.Time) ([]models.DailyVolume, error) {
	args := m.Called(ctx, start, end)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.DailyVolume), args.Error(1)
}

func (m *MockIndentRepository) CustomerRollups(ctx context.Context, start, end time.Time) ([]models.CustomerRollup, error) {
	args := m.Called(ctx, start, end)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.CustomerRollup), args.Error(1)
}

func (m *MockIndentRepository) PartnerRollups(ctx context.Context, start, end time.Time) ([]models.PartnerRollup, error) {
	args := m.Called(ctx, start, end)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.PartnerRollup), args.Error(1)
}

func (m *MockIndentRepository) PartnerTotalVolume(ctx context.Context, start, end time.Time) (float64, error) {
	args := m.Called(ctx, start, end)
	return args.Get(0).(float64), args.Error(1)
}

type ReportServiceTestSuite struct {
	suite.Suite
	repo    *MockIndentRepository
	service *Service
	context context.Context
}

func (suite *ReportServiceTestSuite) SetupTest() {
	suite.repo = new(MockIndentRepository)
	suite.service = NewService(suite.repo)
	suite.context = context.Background()
}

func TestReportServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ReportServiceTestSuite))
}

func TestMonthWindow_MiddleOfYear(t *testing.T) {
	prev, start, next, err := MonthWindow(3, 2024)
	assert.NoError(t, err)
	assert.Equal(t, time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC), prev)
	assert.Equal(t, time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), start)
	assert.Equal(t, time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC), next)
}

func TestMonthWindow_JanuaryCrossesYearBackward(t *testing.T) {
	prev, start, next, err := MonthWindow(1, 2024)
	assert.NoError(t, err)
	assert.Equal(t, time.Date(2023, 12, 1, 0, 0, 0, 0, time.UTC), prev)
	assert.Equal(t, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), start)
	assert.Equal(t, time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC), next)
}

func TestMonthWindow_DecemberCrossesYearForward(t *testing.T) {
	prev, start, next, err := MonthWindow(12, 2024)
	assert.NoError(t, err)
	assert.Equal(t, time.Date(2024, 11, 1, 0, 0, 0, 0, time.UTC), prev)
	assert.Equal(t, time.Date(2024, 12, 1, 0, 0, 0, 0, time.UTC), start)
	assert.Equal(t, time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC), next)
}

func TestMonthWindow_LeapFebruary(t *testing.T) {
	// half-open window [Feb 1, Mar 1) includes Feb 29 without day math
	_, start, next, err := MonthWindow(2, 2024)
	assert.NoError(t, err)
	assert.Equal(t, time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC), start)
	assert.Equal(t, time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), next)
	assert.Equal(t, 29.0, next.Sub(start).Hours()/24)
}

func TestMonthWindow_InvalidInput(t *testing.T) {
	cases := []struct {
		month, year int
	}{
		{0, 2024},
		{13, 2024},
		{-3, 2024},
		{6, 1999},
		{6, 2101},
	}
	for _, tc := range cases {
		_, _, _, err := MonthWindow(tc.month, tc.year)
		assert.ErrorIs(t, err, common.ErrInvalidArgument)
	}
}

func (suite *ReportServiceTestSuite) TestMonthlySalesReport_InvalidMonthNeverQueries() {
	report, err := suite.service.MonthlySalesReport(suite.context, 13, 2024)
	assert.ErrorIs(suite.T(), err, common.ErrInvalidArgument)
	assert.Nil(suite.T(), report)
	suite.repo.AssertNotCalled(suite.T(), "MonthlyVolumes", mock.Anything, mock.Anything, mock.Anything)
	suite.repo.AssertNotCalled(suite.T(), "TotalVolume", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *ReportServiceTestSuite) TestMonthlySalesReport_FullMonth() {
	prevStart := time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)
	start := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	nextStart := time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC)
	hotelID := uuid.New()
	partnerID := uuid.New()
	partnerName := "Ramu"

	suite.repo.On("MonthlyVolumes", suite.context, prevStart, nextStart).Return([]models.MonthlyVolume{
		{Month: "2024-02", TotalQuantity: 3890.25},
		{Month: "2024-03", TotalQuantity: 4102.75},
	}, nil)
	suite.repo.On("DailyVolumes", suite.context, start, nextStart).Return([]models.DailyVolume{
		{Date: start, TotalQuantity: 130},
	}, nil)
	suite.repo.On("CustomerRollups", suite.context, start, nextStart).Return([]models.CustomerRollup{
		{CompanyID: hotelID, CompanyName: "Hotel Grand", TotalQuantity: 500, AverageDailyIndent: 125, DaysIndented: 4},
	}, nil)
	suite.repo.On("PartnerRollups", suite.context, start, nextStart).Return([]models.PartnerRollup{
		{DeliveryBoyID: partnerID, PartnerName: &partnerName, TotalQuantity: 900, IndentCount: 30},
	}, nil)
	suite.repo.On("PartnerTotalVolume", suite.context, start, nextStart).Return(900.0, nil)

	report, err := suite.service.MonthlySalesReport(suite.context, 3, 2024)
	assert.NoError(suite.T(), err)

	// headline comes from the grouped row, so the scalar fallback never runs
	suite.repo.AssertNotCalled(suite.T(), "TotalVolume", mock.Anything, mock.Anything, mock.Anything)
	assert.Equal(suite.T(), 4102.75, report.TotalMonthlyVolume)
	assert.Equal(suite.T(), "2024-03", report.SelectedMonth.Month)
	assert.Equal(suite.T(), "2024-02", report.PreviousMonth.Month)
	assert.Equal(suite.T(), 3890.25, report.PreviousMonth.TotalQuantity)
	assert.Equal(suite.T(), "2024-02-01", report.PrevMonthStart)
	assert.Equal(suite.T(), "2024-03-01", report.MonthStart)
	assert.Equal(suite.T(), "2024-04-01", report.NextMonthStart)
	assert.Len(suite.T(), report.Customers, 1)
	assert.Equal(suite.T(), 900.0, report.Delivery.TotalDeliveryVolume)
}

func (suite *ReportServiceTestSuite) TestMonthlySalesReport_EmptyMonthReturnsZeros() {
	prevStart := time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC)
	start := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)
	nextStart := time.Date(2026, 7, 1, 0, 0, 0, 0, time.UTC)

	suite.repo.On("MonthlyVolumes", suite.context, prevStart, nextStart).Return([]models.MonthlyVolume{}, nil)
	suite.repo.On("TotalVolume", suite.context, start, nextStart).Return(0.0, nil)
	suite.repo.On("DailyVolumes", suite.context, start, nextStart).Return([]models.DailyVolume{}, nil)
	suite.repo.On("CustomerRollups", suite.context, start, nextStart).Return([]models.CustomerRollup{}, nil)
	suite.repo.On("PartnerRollups", suite.context, start, nextStart).Return([]models.PartnerRollup{}, nil)
	suite.repo.On("PartnerTotalVolume", suite.context, start, nextStart).Return(0.0, nil)

	report, err := suite.service.MonthlySalesReport(suite.context, 6, 2026)
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), 0.0, report.TotalMonthlyVolume)
	assert.Nil(suite.T(), report.SelectedMonth)
	assert.Nil(suite.T(), report.PreviousMonth)
	assert.NotNil(suite.T(), report.Monthly)
	assert.NotNil(suite.T(), report.Daily)
	assert.NotNil(suite.T(), report.Customers)
	assert.NotNil(suite.T(), report.Delivery.Rows)
	assert.Empty(suite.T(), report.Customers)
}

func (suite *ReportServiceTestSuite) TestMonthlySalesReport_RepositoryErrorAborts() {
	prevStart := time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)
	nextStart := time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC)

	suite.repo.On("MonthlyVolumes", suite.context, prevStart, nextStart).
		Return(nil, errors.New("connection refused"))

	report, err := suite.service.MonthlySalesReport(suite.context, 3, 2024)
	assert.Error(suite.T(), err)
	assert.Nil(suite.T(), report)
}

func (suite *ReportServiceTestSuite) TestMonthlySalesReport_OnlyPreviousMonthHasRows() {
	prevStart := time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)
	start := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	nextStart := time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC)

	suite.repo.On("MonthlyVolumes", suite.context, prevStart, nextStart).Return([]models.MonthlyVolume{
		{Month: "2024-02", TotalQuantity: 3890.25},
	}, nil)
	suite.repo.On("TotalVolume", suite.context, start, nextStart).Return(0.0, nil)
	suite.repo.On("DailyVolumes", suite.context, start, nextStart).Return([]models.DailyVolume{}, nil)
	suite.repo.On("CustomerRollups", suite.context, start, nextStart).Return([]models.CustomerRollup{}, nil)
	suite.repo.On("PartnerRollups", suite.context, start, nextStart).Return([]models.PartnerRollup{}, nil)
	suite.repo.On("PartnerTotalVolume", suite.context, start, nextStart).Return(0.0, nil)

	report, err := suite.service.MonthlySalesReport(suite.context, 3, 2024)
	assert.NoError(suite.T(), err)
	assert.Nil(suite.T(), report.SelectedMonth)
	assert.NotNil(suite.T(), report.PreviousMonth)
	assert.Equal(suite.T(), 0.0, report.TotalMonthlyVolume)
}
