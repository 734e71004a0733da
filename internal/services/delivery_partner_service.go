package services

import (
	"context"

	"github.com/google/uuid"

	"github.com/agasthyasuperfoods/nutromilk-indent/internal/common"
	"github.com/agasthyasuperfoods/nutromilk-indent/internal/models"
	"github.com/agasthyasuperfoods/nutromilk-indent/internal/repositories"
)

type DeliveryPartnerService interface {
	Create(ctx context.Context, partner *models.DeliveryPartner) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.DeliveryPartner, error)
	Update(ctx context.Context, partner *models.DeliveryPartner) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, limit, offset int) ([]*models.DeliveryPartner, error)
}

type deliveryPartnerService struct {
	partnerRepo repositories.DeliveryPartnerRepository
	routeRepo   repositories.RouteRepository
}

func NewDeliveryPartnerService(partnerRepo repositories.DeliveryPartnerRepository, routeRepo repositories.RouteRepository) DeliveryPartnerService {
	return &deliveryPartnerService{
		partnerRepo: partnerRepo,
		routeRepo:   routeRepo,
	}
}

func (s *deliveryPartnerService) Create(ctx context.Context, partner *models.DeliveryPartner) error {
	if partner.Name == "" {
		return common.InvalidArgumentf("delivery partner name is required")
	}
	if partner.RouteID != nil {
		if _, err := s.routeRepo.GetByID(ctx, *partner.RouteID); err != nil {
			return err
		}
	}
	partner.ID = uuid.New()
	return s.partnerRepo.Create(ctx, partner)
}

func (s *deliveryPartnerService) GetByID(ctx context.Context, id uuid.UUID) (*models.DeliveryPartner, error) {
	return s.partnerRepo.GetByID(ctx, id)
}

func (s *deliveryPartnerService) Update(ctx context.Context, partner *models.DeliveryPartner) error {
	if partner.Name == "" {
		return common.InvalidArgumentf("delivery partner name is required")
	}
	if partner.RouteID != nil {
		if _, err := s.routeRepo.GetByID(ctx, *partner.RouteID); err != nil {
			return err
		}
	}
	return s.partnerRepo.Update(ctx, partner)
}

func (s *deliveryPartnerService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.partnerRepo.Delete(ctx, id)
}

func (s *deliveryPartnerService) List(ctx context.Context, limit, offset int) ([]*models.DeliveryPartner, error) {
	limit, offset = common.ValidatePaginationParams(limit, offset)
	return s.partnerRepo.List(ctx, limit, offset)
}
