package models

import (
	"time"

	"github.com/google/uuid"
)

// Route is a named delivery area assignment.
type Route struct {
	ID          uuid.UUID `json:"id" db:"id"`
	Name        string    `json:"name" db:"name"`
	Area        *string   `json:"area" db:"area"`
	Description *string   `json:"description" db:"description"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time `json:"updated_at" db:"updated_at"`
}
