package models

import (
	"time"

	"github.com/google/uuid"
)

const (
	PurchaseOrderOpen      = "OPEN"
	PurchaseOrderReceived  = "RECEIVED"
	PurchaseOrderCancelled = "CANCELLED"
)

// PurchaseOrder is the restock path. AlertID records which low-stock alert
// (if any) the order was created from; alerts themselves stay append-only.
type PurchaseOrder struct {
	ID               uuid.UUID  `json:"id" db:"id"`
	ItemID           uuid.UUID  `json:"item_id" db:"item_id"`
	SupplierID       uuid.UUID  `json:"supplier_id" db:"supplier_id"`
	AlertID          *uuid.UUID `json:"alert_id,omitempty" db:"alert_id"`
	QuantityOrdered  int        `json:"quantity_ordered" db:"quantity_ordered"`
	Status           string     `json:"status" db:"status"`
	ExpectedDelivery time.Time  `json:"expected_delivery" db:"expected_delivery"`
	Notes            *string    `json:"notes" db:"notes"`
	CreatedAt        time.Time  `json:"created_at" db:"created_at"`
}
