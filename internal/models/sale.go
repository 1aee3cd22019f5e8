package models

import (
	"time"

	"github.com/google/uuid"
)

const (
	PaymentCash = "Cash"
	PaymentCard = "Card"
	PaymentUPI  = "UPI"
)

// Sale is immutable once created. TotalAmount is computed server-side from
// the item price at processing time, never taken from the caller.
type Sale struct {
	ID           uuid.UUID `json:"id" db:"id"`
	SaleDate     time.Time `json:"sale_date" db:"sale_date"`
	StoreID      uuid.UUID `json:"store_id" db:"store_id"`
	ItemID       uuid.UUID `json:"item_id" db:"item_id"`
	QuantitySold int       `json:"quantity_sold" db:"quantity_sold"`
	TotalAmount  float64   `json:"total_amount" db:"total_amount"`
	Payment      string    `json:"payment" db:"payment"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
}
