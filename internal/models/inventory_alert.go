package models

import (
	"time"

	"github.com/google/uuid"
)

// InventoryAlert rows are append-only: the core never updates or deletes
// them. One alert is logged for every ledger update that leaves stock at or
// below the reorder level, including repeated updates below it.
type InventoryAlert struct {
	ID        uuid.UUID `json:"id" db:"id"`
	ItemID    uuid.UUID `json:"item_id" db:"item_id"`
	Message   string    `json:"message" db:"message"`
	AlertDate time.Time `json:"alert_date" db:"alert_date"`
}
