package repositories

import (
	"context"

	"modamart/internal/models"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type SaleRepository interface {
	// CreateTx inserts a sale inside the processor's transaction so the
	// sale row and the inventory decrement commit together or not at all.
	CreateTx(ctx context.Context, tx pgx.Tx, sale *models.Sale) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Sale, error)
	List(ctx context.Context, limit, offset int) ([]*models.Sale, error)
	ListByStore(ctx context.Context, storeID uuid.UUID, limit, offset int) ([]*models.Sale, error)
}

type saleRepo struct {
	db DB
}

func NewSaleRepository(db DB) SaleRepository {
	return &saleRepo{db: db}
}

func (r *saleRepo) CreateTx(ctx context.Context, tx pgx.Tx, sale *models.Sale) error {
	query := `
		INSERT INTO sales (id, sale_date, store_id, item_id, quantity_sold, total_amount, payment, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, NOW())
	`
	_, err := tx.Exec(ctx, query, sale.ID, sale.SaleDate, sale.StoreID, sale.ItemID, sale.QuantitySold, sale.TotalAmount, sale.Payment)
	return err
}

func (r *saleRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Sale, error) {
	sale := &models.Sale{}
	query := `
		SELECT id, sale_date, store_id, item_id, quantity_sold, total_amount, payment, created_at
		FROM sales
		WHERE id = $1
	`
	err := r.db.QueryRow(ctx, query, id).Scan(&sale.ID, &sale.SaleDate, &sale.StoreID, &sale.ItemID, &sale.QuantitySold, &sale.TotalAmount, &sale.Payment, &sale.CreatedAt)
	if err != nil {
		return nil, err
	}
	return sale, nil
}

func (r *saleRepo) List(ctx context.Context, limit, offset int) ([]*models.Sale, error) {
	query := `
		SELECT id, sale_date, store_id, item_id, quantity_sold, total_amount, payment, created_at
		FROM sales
		ORDER BY sale_date DESC, created_at DESC
		LIMIT $1 OFFSET $2
	`
	rows, err := r.db.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanSales(rows)
}

func (r *saleRepo) ListByStore(ctx context.Context, storeID uuid.UUID, limit, offset int) ([]*models.Sale, error) {
	query := `
		SELECT id, sale_date, store_id, item_id, quantity_sold, total_amount, payment, created_at
		FROM sales
		WHERE store_id = $1
		ORDER BY sale_date DESC, created_at DESC
		LIMIT $2 OFFSET $3
	`
	rows, err := r.db.Query(ctx, query, storeID, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanSales(rows)
}

func scanSales(rows pgx.Rows) ([]*models.Sale, error) {
	var sales []*models.Sale
	for rows.Next() {
		sale := &models.Sale{}
		if err := rows.Scan(&sale.ID, &sale.SaleDate, &sale.StoreID, &sale.ItemID, &sale.QuantitySold, &sale.TotalAmount, &sale.Payment, &sale.CreatedAt); err != nil {
			return nil, err
		}
		sales = append(sales, sale)
	}
	return sales, rows.Err()
}
