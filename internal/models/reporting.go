package models

import (
	"time"

	"github.com/google/uuid"
)

// Stock status labels for the catalog projection.
const (
	StockStatusLow     = "Low Stock"
	StockStatusWarning = "Warning"
	StockStatusInStock = "In Stock"
)

// CatalogEntry is the catalog-with-stock-status projection: item joined to
// collection, designer and inventory.
type CatalogEntry struct {
	ItemID          uuid.UUID `json:"item_id" db:"item_id"`
	ItemName        string    `json:"item_name" db:"item_name"`
	Size            string    `json:"size" db:"size"`
	Color           string    `json:"color" db:"color"`
	Price           float64   `json:"price" db:"price"`
	CollectionName  string    `json:"collection_name" db:"collection_name"`
	DesignerName    string    `json:"designer_name" db:"designer_name"`
	QuantityInStock int       `json:"quantity_in_stock" db:"quantity_in_stock"`
	ReorderLevel    int       `json:"reorder_level" db:"reorder_level"`
	StockStatus     string    `json:"stock_status" db:"stock_status"`
}

// SaleDetail is the full sale projection: sale joined to store, item,
// collection and designer.
type SaleDetail struct {
	SaleID         uuid.UUID `json:"sale_id" db:"sale_id"`
	SaleDate       time.Time `json:"sale_date" db:"sale_date"`
	StoreName      string    `json:"store_name" db:"store_name"`
	ItemName       string    `json:"item_name" db:"item_name"`
	CollectionName string    `json:"collection_name" db:"collection_name"`
	DesignerName   string    `json:"designer_name" db:"designer_name"`
	QuantitySold   int       `json:"quantity_sold" db:"quantity_sold"`
	TotalAmount    float64   `json:"total_amount" db:"total_amount"`
	Payment        string    `json:"payment" db:"payment"`
}

// DesignerPerformance aggregates collection/item/sale counts and revenue
// per designer, zero-filled for designers without sales.
type DesignerPerformance struct {
	DesignerID   uuid.UUID `json:"designer_id" db:"designer_id"`
	DesignerName string    `json:"designer_name" db:"designer_name"`
	Collections  int       `json:"collections" db:"collections"`
	Items        int       `json:"items" db:"items"`
	SalesCount   int       `json:"sales_count" db:"sales_count"`
	UnitsSold    int       `json:"units_sold" db:"units_sold"`
	Revenue      float64   `json:"revenue" db:"revenue"`
}

type TopSellingItem struct {
	ItemID    uuid.UUID `json:"item_id" db:"item_id"`
	ItemName  string    `json:"item_name" db:"item_name"`
	UnitsSold int       `json:"units_sold" db:"units_sold"`
	Revenue   float64   `json:"revenue" db:"revenue"`
}

// MonthlySalesRow is one line of the per-store monthly sales report.
type MonthlySalesRow struct {
	SaleDate     time.Time `json:"sale_date" db:"sale_date"`
	ItemName     string    `json:"item_name" db:"item_name"`
	QuantitySold int       `json:"quantity_sold" db:"quantity_sold"`
	TotalAmount  float64   `json:"total_amount" db:"total_amount"`
}

// DesignerPortfolio bundles a designer with everything they own.
type DesignerPortfolio struct {
	Designer    *Designer       `json:"designer"`
	Collections []*Collection   `json:"collections"`
	Items       []*ClothingItem `json:"items"`
}

// ItemCost is the fabric-cost and margin projection for one item.
type ItemCost struct {
	ItemID       uuid.UUID `json:"item_id" db:"item_id"`
	Price        float64   `json:"price" db:"price"`
	FabricCost   float64   `json:"fabric_cost" db:"fabric_cost"`
	ProfitMargin float64   `json:"profit_margin" db:"profit_margin"`
}
