package models

import (
	"time"

	"github.com/google/uuid"
)

type Collection struct {
	ID         uuid.UUID `json:"id" db:"id"`
	Name       string    `json:"name" db:"name"`
	Season     string    `json:"season" db:"season"`
	Year       int       `json:"year" db:"year"`
	DesignerID uuid.UUID `json:"designer_id" db:"designer_id"`
	CreatedAt  time.Time `json:"created_at" db:"created_at"`
	UpdatedAt  time.Time `json:"updated_at" db:"updated_at"`
}
