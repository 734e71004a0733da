package repositories

import (
	"context"

	"github.com/google/uuid"

	"github.com/agasthyasuperfoods/nutromilk-indent/internal/common"
	"github.com/agasthyasuperfoods/nutromilk-indent/internal/models"
)

type RouteRepository interface {
	Create(ctx context.Context, route *models.Route) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Route, error)
	Update(ctx context.Context, route *models.Route) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, limit, offset int) ([]*models.Route, error)
}

type routeRepo struct {
	db DB
}

func NewRouteRepo(db DB) RouteRepository {
	return &routeRepo{db: db}
}

func (r *routeRepo) Create(ctx context.Context, route *models.Route) error {
	query := `
		INSERT INTO routes (id, name, area, description, created_at, updated_at)
		VALUES ($1, $2, $3, $4, NOW(), NOW())
	`
	_, err := r.db.Exec(ctx, query, route.ID, route.Name, route.Area, route.Description)
	return common.WrapStorage("create route", err)
}

func (r *routeRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Route, error) {
	route := &models.Route{}
	query := `
		SELECT id, name, area, description, created_at, updated_at
		FROM routes
		WHERE id = $1
	`
	err := r.db.QueryRow(ctx, query, id).Scan(&route.ID, &route.Name, &route.Area, &route.Description,
		&route.CreatedAt, &route.UpdatedAt)
	if err != nil {
		return nil, common.WrapStorage("get route", err)
	}
	return route, nil
}

func (r *routeRepo) Update(ctx context.Context, route *models.Route) error {
	query := `
		UPDATE routes
		SET name = $1, area = $2, description = $3, updated_at = NOW()
		WHERE id = $4
	`
	tag, err := r.db.Exec(ctx, query, route.Name, route.Area, route.Description, route.ID)
	if err != nil {
		return common.WrapStorage("update route", err)
	}
	if tag.RowsAffected() == 0 {
		return common.NotFoundf("route %s", route.ID)
	}
	return nil
}

func (r *routeRepo) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := r.db.Exec(ctx, `DELETE FROM routes WHERE id = $1`, id)
	return common.WrapStorage("delete route", err)
}

func (r *routeRepo) List(ctx context.Context, limit, offset int) ([]*models.Route, error) {
	query := `
		SELECT id, name, area, description, created_at, updated_at
		FROM routes
		ORDER BY name
		LIMIT $1 OFFSET $2
	`
	rows, err := r.db.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, common.WrapStorage("list routes", err)
	}
	defer rows.Close()

	var routes []*models.Route
	for rows.Next() {
		route := &models.Route{}
		if err := rows.Scan(&route.ID, &route.Name, &route.Area, &route.Description,
			&route.CreatedAt, &route.UpdatedAt); err != nil {
			return nil, common.WrapStorage("scan route", err)
		}
		routes = append(routes, route)
	}
	if err := rows.Err(); err != nil {
		return nil, common.WrapStorage("iterate routes", err)
	}
	return routes, nil
}
