package models

import (
	"time"

	"github.com/google/uuid"
)

// DeliveryPartner is a courier responsible for a home-delivery route.
type DeliveryPartner struct {
	ID        uuid.UUID  `json:"id" db:"id"`
	Name      string     `json:"name" db:"name"`
	Phone     *string    `json:"phone" db:"phone"`
	RouteID   *uuid.UUID `json:"route_id" db:"route_id"`
	Active    bool       `json:"active" db:"active"`
	CreatedAt time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt time.Time  `json:"updated_at" db:"updated_at"`
}
