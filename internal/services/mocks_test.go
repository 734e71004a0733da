package services

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/mock"

	"github.com/agasthyasuperfoods/nutromilk-indent/internal/models"
)

// Shared mocks for the service-layer tests.

func duplicateKeyError() error {
	return &pgconn.PgError{Code: "23505", ConstraintName: "indents_pkey"}
}

type MockIndentStore struct {
	mock.Mock
}

func (m *MockIndentStore) Save(ctx context.Context, indent *models.IndentRecord) error {
	args := m.Called(ctx, indent)
	return args.Error(0)
}

func (m *MockIndentStore) ListByDate(ctx context.Context, date time.Time) ([]*models.IndentRecord, error) {
	args := m.Called(ctx, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.IndentRecord), args.Error(1)
}

type MockCustomerRepository struct {
	mock.Mock
}

func (m *MockCustomerRepository) Create(ctx context.Context, customer *models.Customer) error {
	args := m.Called(ctx, customer)
	return args.Error(0)
}

func (m *MockCustomerRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Customer, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Customer), args.Error(1)
}

func (m *MockCustomerRepository) Update(ctx context.Context, customer *models.Customer) error {
	args := m.Called(ctx, customer)
	return args.Error(0)
}

func (m *MockCustomerRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockCustomerRepository) List(ctx context.Context, limit, offset int) ([]*models.Customer, error) {
	args := m.Called(ctx, limit, offset)
	return args.Get(0).([]*models.Customer), args.Error(1)
}

func (m *MockCustomerRepository) UpdateWithOverride(ctx context.Context, customer *models.Customer, override *models.MonthlyIndentOverride) (*models.MonthlyIndentOverride, error) {
	args := m.Called(ctx, customer, override)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.MonthlyIndentOverride), args.Error(1)
}

type MockOverrideRepository struct {
	mock.Mock
}

func (m *MockOverrideRepository) Upsert(ctx context.Context, override *models.MonthlyIndentOverride) (*models.MonthlyIndentOverride, error) {
	args := m.Called(ctx, override)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.MonthlyIndentOverride), args.Error(1)
}

func (m *MockOverrideRepository) GetByCompanyMonth(ctx context.Context, companyID uuid.UUID, monthYear time.Time) (*models.MonthlyIndentOverride, error) {
	args := m.Called(ctx, companyID, monthYear)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.MonthlyIndentOverride), args.Error(1)
}

func (m *MockOverrideRepository) ListByCompany(ctx context.Context, companyID uuid.UUID) ([]*models.MonthlyIndentOverride, error) {
	args := m.Called(ctx, companyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.MonthlyIndentOverride), args.Error(1)
}

type MockCacheService struct {
	mock.Mock
}

func (m *MockCacheService) GetCustomer(ctx context.Context, customerID uuid.UUID) (*models.Customer, error) {
	args := m.Called(ctx, customerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Customer), args.Error(1)
}

func (m *MockCacheService) SetCustomer(ctx context.Context, customer *models.Customer, ttl time.Duration) error {
	args := m.Called(ctx, customer, ttl)
	return args.Error(0)
}

func (m *MockCacheService) DeleteCustomer(ctx context.Context, customerID uuid.UUID) error {
	args := m.Called(ctx, customerID)
	return args.Error(0)
}

func (m *MockCacheService) PushIndent(ctx context.Context, indent *models.IndentRecord) error {
	args := m.Called(ctx, indent)
	return args.Error(0)
}

func (m *MockCacheService) PopIndents(ctx context.Context, max int) ([]*models.IndentRecord, error) {
	args := m.Called(ctx, max)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.IndentRecord), args.Error(1)
}

func (m *MockCacheService) PeekIndents(ctx context.Context) ([]*models.IndentRecord, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.IndentRecord), args.Error(1)
}

func (m *MockCacheService) IndentBufferLen(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockCacheService) SetString(ctx context.Context, key string, value string, ttl time.Duration) error {
	args := m.Called(ctx, key, value, ttl)
	return args.Error(0)
}

func (m *MockCacheService) GetString(ctx context.Context, key string) (string, error) {
	args := m.Called(ctx, key)
	return args.String(0), args.Error(1)
}

func (m *MockCacheService) Delete(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

func (m *MockCacheService) Ping(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

type MockIndentRepository struct {
	mock.Mock
}

func (m *MockIndentRepository) Create(ctx context.Context, indent *models.IndentRecord) error {
	args := m.Called(ctx, indent)
	return args.Error(0)
}

func (m *MockIndentRepository) ListByDate(ctx context.Context, date time.Time) ([]*models.IndentRecord, error) {
	args := m.Called(ctx, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.IndentRecord), args.Error(1)
}

func (m *MockIndentRepository) ListByDateRange(ctx context.Context, start, end time.Time) ([]*models.IndentRecord, error) {
	args := m.Called(ctx, start, end)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
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
