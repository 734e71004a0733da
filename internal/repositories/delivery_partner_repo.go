package repositories

import (
	"context"

	"github.com/google/uuid"

	"github.com/agasthyasuperfoods/nutromilk-indent/internal/common"
	"github.com/agasthyasuperfoods/nutromilk-indent/internal/models"
)

type DeliveryPartnerRepository interface {
	Create(ctx context.Context, partner *models.DeliveryPartner) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.DeliveryPartner, error)
	Update(ctx context.Context, partner *models.DeliveryPartner) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, limit, offset int) ([]*models.DeliveryPartner, error)
}

type deliveryPartnerRepo struct {
	db DB
}

func NewDeliveryPartnerRepo(db DB) DeliveryPartnerRepository {
	return &deliveryPartnerRepo{db: db}
}

const partnerColumns = `id, name, phone, route_id, active, created_at, updated_at`

func (r *deliveryPartnerRepo) Create(ctx context.Context, partner *models.DeliveryPartner) error {
	query := `
		INSERT INTO delivery_partners (id, name, phone, route_id, active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, NOW(), NOW())
	`
	_, err := r.db.Exec(ctx, query, partner.ID, partner.Name, partner.Phone, partner.RouteID, partner.Active)
	return common.WrapStorage("create delivery partner", err)
}

func (r *deliveryPartnerRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.DeliveryPartner, error) {
	partner := &models.DeliveryPartner{}
	query := `
		SELECT ` + partnerColumns + `
		FROM delivery_partners
		WHERE id = $1
	`
	err := r.db.QueryRow(ctx, query, id).Scan(&partner.ID, &partner.Name, &partner.Phone, &partner.RouteID,
		&partner.Active, &partner.CreatedAt, &partner.UpdatedAt)
	if err != nil {
		return nil, common.WrapStorage("get delivery partner", err)
	}
	return partner, nil
}

func (r *deliveryPartnerRepo) Update(ctx context.Context, partner *models.DeliveryPartner) error {
	query := `
		UPDATE delivery_partners
		SET name = $1, phone = $2, route_id = $3, active = $4, updated_at = NOW()
		WHERE id = $5
	`
	tag, err := r.db.Exec(ctx, query, partner.Name, partner.Phone, partner.RouteID, partner.Active, partner.ID)
	if err != nil {
		return common.WrapStorage("update delivery partner", err)
	}
	if tag.RowsAffected() == 0 {
		return common.NotFoundf("delivery partner %s", partner.ID)
	}
	return nil
}

func (r *deliveryPartnerRepo) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := r.db.Exec(ctx, `DELETE FROM delivery_partners WHERE id = $1`, id)
	return common.WrapStorage("delete delivery partner", err)
}

func (r *deliveryPartnerRepo) List(ctx context.Context, limit, offset int) ([]*models.DeliveryPartner, error) {
	query := `
		SELECT ` + partnerColumns + `
		FROM delivery_partners
		ORDER BY name
		LIMIT $1 OFFSET $2
	`
	rows, err := r.db.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, common.WrapStorage("list delivery partners", err)
	}
	defer rows.Close()

	var partners []*models.DeliveryPartner
	for rows.Next() {
		partner := &models.DeliveryPartner{}
		if err := rows.Scan(&partner.ID, &partner.Name, &partner.Phone, &partner.RouteID,
			&partner.Active, &partner.CreatedAt, &partner.UpdatedAt); err != nil {
			return nil, common.WrapStorage("scan delivery partner", err)
		}
		partners = append(partners, partner)
	}
	if err := rows.Err(); err != nil {
		return nil, common.WrapStorage("iterate delivery partners", err)
	}
	return partners, nil
}
