package models

import (
	"time"

	"github.com/google/uuid"
)

type ClothingItem struct {
	ID           uuid.UUID `json:"id" db:"id"`
	CollectionID uuid.UUID `json:"collection_id" db:"collection_id"`
	Name         string    `json:"name" db:"name"`
	Size         string    `json:"size" db:"size"`
	Color        string    `json:"color" db:"color"`
	Price        float64   `json:"price" db:"price"`
	ImageObject  *string   `json:"image_object,omitempty" db:"image_object"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time `json:"updated_at" db:"updated_at"`
}
