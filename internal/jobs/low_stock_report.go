package jobs

import (
	"context"
	"log"

	"modamart/internal/models"
	"modamart/internal/repositories"
)

// LowStockReporter summarizes which items sit at or below their reorder
// level. The restock sweep consumes alerts; this job only reports, for
// operators tailing the logs.
type LowStockReporter struct {
	inventoryRepo repositories.InventoryRepository
	itemRepo      repositories.ClothingItemRepository
}

func NewLowStockReporter(inventoryRepo repositories.InventoryRepository, itemRepo repositories.ClothingItemRepository) *LowStockReporter {
	return &LowStockReporter{
		inventoryRepo: inventoryRepo,
		itemRepo:      itemRepo,
	}
}

type LowStockEntry struct {
	Item         *models.ClothingItem
	CurrentStock int
	ReorderLevel int
}

func (r *LowStockReporter) Check(ctx context.Context) ([]LowStockEntry, error) {
	inventories, err := r.inventoryRepo.ListLowStock(ctx)
	if err != nil {
		return nil, err
	}

	var entries []LowStockEntry
	for _, inv := range inventories {
		item, err := r.itemRepo.GetByID(ctx, inv.ItemID)
		if err != nil {
			log.Printf("Failed to get item %s for low stock report: %v", inv.ItemID, err)
			continue
		}
		entries = append(entries, LowStockEntry{
			Item:         item,
			CurrentStock: inv.QuantityInStock,
			ReorderLevel: inv.ReorderLevel,
		})
	}
	return entries, nil
}

func (r *LowStockReporter) LogReport(entries []LowStockEntry) {
	if len(entries) == 0 {
		log.Println("No items at or below reorder level")
		return
	}
	log.Printf("%d items at or below reorder level:", len(entries))
	for _, entry := range entries {
		log.Printf("- %q (%s) has %d units (reorder level %d)",
			entry.Item.Name, entry.Item.ID, entry.CurrentStock, entry.ReorderLevel)
	}
}
