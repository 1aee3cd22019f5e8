package repositories

import (
	"context"

	"modamart/internal/models"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type InventoryRepository interface {
	CreateTx(ctx context.Context, tx pgx.Tx, inventory *models.Inventory) error
	GetByItemID(ctx context.Context, itemID uuid.UUID) (*models.Inventory, error)
	List(ctx context.Context, limit, offset int) ([]*models.Inventory, error)
	ListLowStock(ctx context.Context) ([]*models.Inventory, error)

	// GetForUpdateTx locks the item's ledger row for the duration of the
	// transaction. This serializes concurrent read-check-decrement
	// sequences on the same item.
	GetForUpdateTx(ctx context.Context, tx pgx.Tx, itemID uuid.UUID) (*models.Inventory, error)
	UpdateQuantityTx(ctx context.Context, tx pgx.Tx, itemID uuid.UUID, quantity int) error
}

type inventoryRepo struct {
	db DB
}

func NewInventoryRepository(db DB) InventoryRepository {
	return &inventoryRepo{db: db}
}

func (r *inventoryRepo) CreateTx(ctx context.Context, tx pgx.Tx, inventory *models.Inventory) error {
	// item_id is unique: exactly one ledger row per clothing item.
	query := `
		INSERT INTO inventory (id, item_id, quantity_in_stock, reorder_level, last_updated)
		VALUES ($1, $2, $3, $4, NOW())
	`
	_, err := tx.Exec(ctx, query, inventory.ID, inventory.ItemID, inventory.QuantityInStock, inventory.ReorderLevel)
	return err
}

func (r *inventoryRepo) GetByItemID(ctx context.Context, itemID uuid.UUID) (*models.Inventory, error) {
	inventory := &models.Inventory{}
	query := `
		SELECT id, item_id, quantity_in_stock, reorder_level, last_updated
		FROM inventory
		WHERE item_id = $1
	`
	err := r.db.QueryRow(ctx, query, itemID).Scan(&inventory.ID, &inventory.ItemID, &inventory.QuantityInStock, &inventory.ReorderLevel, &inventory.LastUpdated)
	if err != nil {
		return nil, err
	}
	return inventory, nil
}

func (r *inventoryRepo) List(ctx context.Context, limit, offset int) ([]*models.Inventory, error) {
	query := `
		SELECT id, item_id, quantity_in_stock, reorder_level, last_updated
		FROM inventory
		ORDER BY last_updated DESC
		LIMIT $1 OFFSET $2
	`
	rows, err := r.db.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanInventories(rows)
}

func (r *inventoryRepo) ListLowStock(ctx context.Context) ([]*models.Inventory, error) {
	query := `
		SELECT id, item_id, quantity_in_stock, reorder_level, last_updated
		FROM inventory
		WHERE quantity_in_stock <= reorder_level
		ORDER BY last_updated DESC
	`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanInventories(rows)
}

func (r *inventoryRepo) GetForUpdateTx(ctx context.Context, tx pgx.Tx, itemID uuid.UUID) (*models.Inventory, error) {
	inventory := &models.Inventory{}
	query := `
		SELECT id, item_id, quantity_in_stock, reorder_level, last_updated
		FROM inventory
		WHERE item_id = $1
		FOR UPDATE
	`
	err := tx.QueryRow(ctx, query, itemID).Scan(&inventory.ID, &inventory.ItemID, &inventory.QuantityInStock, &inventory.ReorderLevel, &inventory.LastUpdated)
	if err != nil {
		return nil, err
	}
	return inventory, nil
}

func (r *inventoryRepo) UpdateQuantityTx(ctx context.Context, tx pgx.Tx, itemID uuid.UUID, quantity int) error {
	query := `
		UPDATE inventory
		SET quantity_in_stock = $1, last_updated = NOW()
		WHERE item_id = $2
	`
	_, err := tx.Exec(ctx, query, quantity, itemID)
	return err
}

func scanInventories(rows pgx.Rows) ([]*models.Inventory, error) {
	var inventories []*models.Inventory
	for rows.Next() {
		inventory := &models.Inventory{}
		if err := rows.Scan(&inventory.ID, &inventory.ItemID, &inventory.QuantityInStock, &inventory.ReorderLevel, &inventory.LastUpdated); err != nil {
			return nil, err
		}
		inventories = append(inventories, inventory)
	}
	return inventories, rows.Err()
}
