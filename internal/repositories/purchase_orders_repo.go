package repositories

import (
	"context"

	"modamart/internal/models"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type PurchaseOrderRepository interface {
	Create(ctx context.Context, po *models.PurchaseOrder) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.PurchaseOrder, error)
	List(ctx context.Context, limit, offset int) ([]*models.PurchaseOrder, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status string) error
	UpdateStatusTx(ctx context.Context, tx pgx.Tx, id uuid.UUID, status string) error
}

type purchaseOrderRepo struct {
	db DB
}

func NewPurchaseOrderRepository(db DB) PurchaseOrderRepository {
	return &purchaseOrderRepo{db: db}
}

func (r *purchaseOrderRepo) Create(ctx context.Context, po *models.PurchaseOrder) error {
	query := `
		INSERT INTO purchase_orders (id, item_id, supplier_id, alert_id, quantity_ordered, status, expected_delivery, notes, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NOW())
	`
	_, err := r.db.Exec(ctx, query, po.ID, po.ItemID, po.SupplierID, po.AlertID, po.QuantityOrdered, po.Status, po.ExpectedDelivery, po.Notes)
	return err
}

func (r *purchaseOrderRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.PurchaseOrder, error) {
	po := &models.PurchaseOrder{}
	query := `
		SELECT id, item_id, supplier_id, alert_id, quantity_ordered, status, expected_delivery, notes, created_at
		FROM purchase_orders
		WHERE id = $1
	`
	err := r.db.QueryRow(ctx, query, id).Scan(&po.ID, &po.ItemID, &po.SupplierID, &po.AlertID, &po.QuantityOrdered, &po.Status, &po.ExpectedDelivery, &po.Notes, &po.CreatedAt)
	if err != nil {
		return nil, err
	}
	return po, nil
}

func (r *purchaseOrderRepo) List(ctx context.Context, limit, offset int) ([]*models.PurchaseOrder, error) {
	query := `
		SELECT id, item_id, supplier_id, alert_id, quantity_ordered, status, expected_delivery, notes, created_at
		FROM purchase_orders
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2
	`
	rows, err := r.db.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanPurchaseOrders(rows)
}

func (r *purchaseOrderRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status string) error {
	query := `UPDATE purchase_orders SET status = $1 WHERE id = $2`
	_, err := r.db.Exec(ctx, query, status, id)
	return err
}

// UpdateStatusTx flips the status inside the caller's transaction. Receive
// uses this so the restock and the status change commit as one unit.
func (r *purchaseOrderRepo) UpdateStatusTx(ctx context.Context, tx pgx.Tx, id uuid.UUID, status string) error {
	query := `UPDATE purchase_orders SET status = $1 WHERE id = $2`
	_, err := tx.Exec(ctx, query, status, id)
	return err
}

func scanPurchaseOrders(rows pgx.Rows) ([]*models.PurchaseOrder, error) {
	var orders []*models.PurchaseOrder
	for rows.Next() {
		po := &models.PurchaseOrder{}
		if err := rows.Scan(&po.ID, &po.ItemID, &po.SupplierID, &po.AlertID, &po.QuantityOrdered, &po.Status, &po.ExpectedDelivery, &po.Notes, &po.CreatedAt); err != nil {
			return nil, err
		}
		orders = append(orders, po)
	}
	return orders, rows.Err()
}
