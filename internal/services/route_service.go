package services

import (
	"context"

	"github.com/google/uuid"

	"github.com/agasthyasuperfoods/nutromilk-indent/internal/common"
	"github.com/agasthyasuperfoods/nutromilk-indent/internal/models"
	"github.com/agasthyasuperfoods/nutromilk-indent/internal/repositories"
)

type RouteService interface {
	Create(ctx context.Context, route *models.Route) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Route, error)
	Update(ctx context.Context, route *models.Route) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, limit, offset int) ([]*models.Route, error)
}

type routeService struct {
	routeRepo repositories.RouteRepository
}

func NewRouteService(routeRepo repositories.RouteRepository) RouteService {
	return &routeService{routeRepo: routeRepo}
}

func (s *routeService) Create(ctx context.Context, route *models.Route) error {
	if route.Name == "" {
		return common.InvalidArgumentf("route name is required")
	}
	route.ID = uuid.New()
	return s.routeRepo.Create(ctx, route)
}

func (s *routeService) GetByID(ctx context.Context, id uuid.UUID) (*models.Route, error) {
	return s.routeRepo.GetByID(ctx, id)
}

func (s *routeService) Update(ctx context.Context, route *models.Route) error {
	if route.Name == "" {
		return common.InvalidArgumentf("route name is required")
	}
	return s.routeRepo.Update(ctx, route)
}

func (s *routeService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.routeRepo.Delete(ctx, id)
}

func (s *routeService) List(ctx context.Context, limit, offset int) ([]*models.Route, error) {
	limit, offset = common.ValidatePaginationParams(limit, offset)
	return s.routeRepo.List(ctx, limit, offset)
}
