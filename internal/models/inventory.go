package models

import (
	"time"

	"github.com/google/uuid"
)

// Inventory is the stock ledger: exactly one row per clothing item
// (item_id is unique). QuantityInStock is mutated only through the sale
// processor's decrement and the restock path, both of which run the
// low-stock alert check in the same transaction as the write.
type Inventory struct {
	ID              uuid.UUID `json:"id" db:"id"`
	ItemID          uuid.UUID `json:"item_id" db:"item_id"`
	QuantityInStock int       `json:"quantity_in_stock" db:"quantity_in_stock"`
	ReorderLevel    int       `json:"reorder_level" db:"reorder_level"`
	LastUpdated     time.Time `json:"last_updated" db:"last_updated"`
}
