package services

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/agasthyasuperfoods/nutromilk-indent/internal/common"
	"github.com/agasthyasuperfoods/nutromilk-indent/internal/models"
	"github.com/agasthyasuperfoods/nutromilk-indent/internal/repositories"
)

// IndentResult pairs a stored record with the tier that accepted it.
type IndentResult struct {
	Indent *models.IndentRecord `json:"indent"`
	Tier   string               `json:"tier"`
}

// IndentService records daily indents through the tiered store. Records are
// built with the tagged-union constructors so a row referencing both or
// neither of customer/partner can never reach storage.
type IndentService interface {
	CreateBulkOrder(ctx context.Context, companyID uuid.UUID, companyName string, date time.Time, quantity float64, itemType string) (*IndentResult, error)
	CreateDeliveryDispatch(ctx context.Context, deliveryBoyID uuid.UUID, date time.Time, quantity float64, itemType string) (*IndentResult, error)
	ListByDate(ctx context.Context, date time.Time) ([]*models.IndentRecord, string, error)
	ListByRange(ctx context.Context, start, end time.Time) ([]*models.IndentRecord, error)
}

type indentService struct {
	store *TieredIndentStore
	repo  repositories.IndentRepository
}

func NewIndentService(store *TieredIndentStore, repo repositories.IndentRepository) IndentService {
	return &indentService{store: store, repo: repo}
}

func (s *indentService) CreateBulkOrder(ctx context.Context, companyID uuid.UUID, companyName string, date time.Time, quantity float64, itemType string) (*IndentResult, error) {
	indent, err := models.NewBulkOrder(companyID, companyName, date, quantity, itemType)
	if err != nil {
		return nil, invalidIndent(err)
	}
	return s.save(ctx, indent)
}

func (s *indentService) CreateDeliveryDispatch(ctx context.Context, deliveryBoyID uuid.UUID, date time.Time, quantity float64, itemType string) (*IndentResult, error) {
	indent, err := models.NewDeliveryDispatch(deliveryBoyID, date, quantity, itemType)
	if err != nil {
		return nil, invalidIndent(err)
	}
	return s.save(ctx, indent)
}

func (s *indentService) save(ctx context.Context, indent *models.IndentRecord) (*IndentResult, error) {
	tier, err := s.store.Save(ctx, indent)
	if err != nil {
		return nil, err
	}
	return &IndentResult{Indent: indent, Tier: tier}, nil
}

func (s *indentService) ListByDate(ctx context.Context, date time.Time) ([]*models.IndentRecord, string, error) {
	return s.store.ListByDate(ctx, date)
}

// ListByRange returns the indents with dates in [start, end]. Range views are
// historical, so they read Postgres directly and skip the local buffer.
func (s *indentService) ListByRange(ctx context.Context, start, end time.Time) ([]*models.IndentRecord, error) {
	if end.Before(start) {
		return nil, common.InvalidArgumentf("end date is before start date")
	}
	return s.repo.ListByDateRange(ctx, start, end.AddDate(0, 0, 1))
}

func invalidIndent(err error) error {
	return common.InvalidArgumentf("%v", err)
}
