package services

import (
	"context"
	"log"
	"time"

	"github.com/google/uuid"

	"github.com/agasthyasuperfoods/nutromilk-indent/internal/caching"
	"github.com/agasthyasuperfoods/nutromilk-indent/internal/common"
	"github.com/agasthyasuperfoods/nutromilk-indent/internal/models"
	"github.com/agasthyasuperfoods/nutromilk-indent/internal/repositories"
)

const customerCacheTTL = 10 * time.Minute

type CustomerService interface {
	Create(ctx context.Context, customer *models.Customer) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Customer, error)
	Update(ctx context.Context, customer *models.Customer) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, limit, offset int) ([]*models.Customer, error)
	// UpsertOverride sets a customer's per-category quantities for one
	// month. The target customer must exist; month_year is normalized to
	// the first of its month.
	UpsertOverride(ctx context.Context, override *models.MonthlyIndentOverride) (*models.MonthlyIndentOverride, error)
	// UpdateWithOverride applies a customer update and an override upsert
	// atomically.
	UpdateWithOverride(ctx context.Context, customer *models.Customer, override *models.MonthlyIndentOverride) (*models.MonthlyIndentOverride, error)
	ListOverrides(ctx context.Context, companyID uuid.UUID) ([]*models.MonthlyIndentOverride, error)
	GetOverride(ctx context.Context, companyID uuid.UUID, monthYear time.Time) (*models.MonthlyIndentOverride, error)
}

type customerService struct {
	customerRepo repositories.CustomerRepository
	overrideRepo repositories.OverrideRepository
	cache        caching.CacheService
}

func NewCustomerService(customerRepo repositories.CustomerRepository, overrideRepo repositories.OverrideRepository, cache caching.CacheService) CustomerService {
	return &customerService{
		customerRepo: customerRepo,
		overrideRepo: overrideRepo,
		cache:        cache,
	}
}

func (s *customerService) Create(ctx context.Context, customer *models.Customer) error {
	if customer.Name == "" {
		return common.InvalidArgumentf("customer name is required")
	}
	customer.ID = uuid.New()
	return s.customerRepo.Create(ctx, customer)
}

func (s *customerService) GetByID(ctx context.Context, id uuid.UUID) (*models.Customer, error) {
	if cached, err := s.cache.GetCustomer(ctx, id); err == nil && cached != nil {
		return cached, nil
	} else if err != nil {
		log.Printf("WARN: customer cache read failed: %v", err)
	}

	customer, err := s.customerRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.cache.SetCustomer(ctx, customer, customerCacheTTL); err != nil {
		log.Printf("WARN: customer cache write failed: %v", err)
	}
	return customer, nil
}

func (s *customerService) Update(ctx context.Context, customer *models.Customer) error {
	if customer.Name == "" {
		return common.InvalidArgumentf("customer name is required")
	}
	if err := s.customerRepo.Update(ctx, customer); err != nil {
		return err
	}
	s.invalidate(ctx, customer.ID)
	return nil
}

func (s *customerService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.customerRepo.Delete(ctx, id); err != nil {
		return err
	}
	s.invalidate(ctx, id)
	return nil
}

func (s *customerService) List(ctx context.Context, limit, offset int) ([]*models.Customer, error) {
	limit, offset = common.ValidatePaginationParams(limit, offset)
	return s.customerRepo.List(ctx, limit, offset)
}

func (s *customerService) UpsertOverride(ctx context.Context, override *models.MonthlyIndentOverride) (*models.MonthlyIndentOverride, error) {
	if override.MonthYear.IsZero() {
		return nil, common.InvalidArgumentf("month_year is required")
	}
	// Referenced customer must exist before an override can target it.
	if _, err := s.customerRepo.GetByID(ctx, override.CompanyID); err != nil {
		return nil, err
	}
	if override.ID == uuid.Nil {
		override.ID = uuid.New()
	}
	return s.overrideRepo.Upsert(ctx, override)
}

func (s *customerService) UpdateWithOverride(ctx context.Context, customer *models.Customer, override *models.MonthlyIndentOverride) (*models.MonthlyIndentOverride, error) {
	if customer.Name == "" {
		return nil, common.InvalidArgumentf("customer name is required")
	}
	if override.MonthYear.IsZero() {
		return nil, common.InvalidArgumentf("month_year is required")
	}
	override.CompanyID = customer.ID
	if override.ID == uuid.Nil {
		override.ID = uuid.New()
	}
	stored, err := s.customerRepo.UpdateWithOverride(ctx, customer, override)
	if err != nil {
		return nil, err
	}
	s.invalidate(ctx, customer.ID)
	return stored, nil
}

func (s *customerService) ListOverrides(ctx context.Context, companyID uuid.UUID) ([]*models.MonthlyIndentOverride, error) {
	return s.overrideRepo.ListByCompany(ctx, companyID)
}

func (s *customerService) GetOverride(ctx context.Context, companyID uuid.UUID, monthYear time.Time) (*models.MonthlyIndentOverride, error) {
	if monthYear.IsZero() {
		return nil, common.InvalidArgumentf("month_year is required")
	}
	return s.overrideRepo.GetByCompanyMonth(ctx, companyID, monthYear)
}

func (s *customerService) invalidate(ctx context.Context, id uuid.UUID) {
	if err := s.cache.DeleteCustomer(ctx, id); err != nil {
		log.Printf("WARN: customer cache invalidation failed: %v", err)
	}
}
