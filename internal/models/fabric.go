package models

import (
	"time"

	"github.com/google/uuid"
)

type Fabric struct {
	ID           uuid.UUID `json:"id" db:"id"`
	Material     string    `json:"material" db:"material"`
	SupplierID   uuid.UUID `json:"supplier_id" db:"supplier_id"`
	CostPerMeter float64   `json:"cost_per_meter" db:"cost_per_meter"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time `json:"updated_at" db:"updated_at"`
}

// FabricUsage links a clothing item to a fabric it is made from.
type FabricUsage struct {
	ItemID     uuid.UUID `json:"item_id" db:"item_id"`
	FabricID   uuid.UUID `json:"fabric_id" db:"fabric_id"`
	MetersUsed float64   `json:"meters_used" db:"meters_used"`
}
