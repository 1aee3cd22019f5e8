package repositories

import (
	"context"

	"modamart/internal/models"

	"github.com/google/uuid"
)

// ReportingRepository holds the read-only projections. Nothing in here
// mutates state; the reporting layer is an external consumer of what the
// sale processor and the ledger maintain.
type ReportingRepository interface {
	CatalogWithStock(ctx context.Context) ([]*models.CatalogEntry, error)
	SaleDetails(ctx context.Context, limit, offset int) ([]*models.SaleDetail, error)
	DesignerPerformance(ctx context.Context) ([]*models.DesignerPerformance, error)
	TopSellingItems(ctx context.Context, limit int) ([]*models.TopSellingItem, error)
	MonthlySalesReport(ctx context.Context, storeID uuid.UUID, month, year int) ([]*models.MonthlySalesRow, error)
	ItemFabricCost(ctx context.Context, itemID uuid.UUID) (*models.ItemCost, error)
}

type reportingRepo struct {
	db DB
}

func NewReportingRepository(db DB) ReportingRepository {
	return &reportingRepo{db: db}
}

func (r *reportingRepo) CatalogWithStock(ctx context.Context) ([]*models.CatalogEntry, error) {
	query := `
		SELECT ci.id, ci.name, ci.size, ci.color, ci.price,
		       c.name AS collection_name, d.name AS designer_name,
		       i.quantity_in_stock, i.reorder_level,
		       CASE
		           WHEN i.quantity_in_stock <= i.reorder_level THEN 'Low Stock'
		           WHEN i.quantity_in_stock <= i.reorder_level * 2 THEN 'Warning'
		           ELSE 'In Stock'
		       END AS stock_status
		FROM clothing_items ci
		JOIN collections c ON ci.collection_id = c.id
		JOIN designers d ON c.designer_id = d.id
		JOIN inventory i ON i.item_id = ci.id
		ORDER BY d.name, c.name, ci.name
	`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []*models.CatalogEntry
	for rows.Next() {
		entry := &models.CatalogEntry{}
		if err := rows.Scan(&entry.ItemID, &entry.ItemName, &entry.Size, &entry.Color, &entry.Price,
			&entry.CollectionName, &entry.DesignerName,
			&entry.QuantityInStock, &entry.ReorderLevel, &entry.StockStatus); err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}
	return entries, rows.Err()
}

func (r *reportingRepo) SaleDetails(ctx context.Context, limit, offset int) ([]*models.SaleDetail, error) {
	query := `
		SELECT s.id, s.sale_date, st.name AS store_name, ci.name AS item_name,
		       c.name AS collection_name, d.name AS designer_name,
		       s.quantity_sold, s.total_amount, s.payment
		FROM sales s
		JOIN stores st ON s.store_id = st.id
		JOIN clothing_items ci ON s.item_id = ci.id
		JOIN collections c ON ci.collection_id = c.id
		JOIN designers d ON c.designer_id = d.id
		ORDER BY s.sale_date DESC, s.created_at DESC
		LIMIT $1 OFFSET $2
	`
	rows, err := r.db.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var details []*models.SaleDetail
	for rows.Next() {
		detail := &models.SaleDetail{}
		if err := rows.Scan(&detail.SaleID, &detail.SaleDate, &detail.StoreName, &detail.ItemName,
			&detail.CollectionName, &detail.DesignerName,
			&detail.QuantitySold, &detail.TotalAmount, &detail.Payment); err != nil {
			return nil, err
		}
		details = append(details, detail)
	}
	return details, rows.Err()
}

// DesignerPerformance zero-fills designers with no collections, items or
// sales via LEFT JOINs and COALESCE.
func (r *reportingRepo) DesignerPerformance(ctx context.Context) ([]*models.DesignerPerformance, error) {
	query := `
		SELECT d.id, d.name,
		       COUNT(DISTINCT c.id) AS collections,
		       COUNT(DISTINCT ci.id) AS items,
		       COUNT(DISTINCT s.id) AS sales_count,
		       COALESCE(SUM(s.quantity_sold), 0) AS units_sold,
		       COALESCE(SUM(s.total_amount), 0) AS revenue
		FROM designers d
		LEFT JOIN collections c ON c.designer_id = d.id
		LEFT JOIN clothing_items ci ON ci.collection_id = c.id
		LEFT JOIN sales s ON s.item_id = ci.id
		GROUP BY d.id, d.name
		ORDER BY revenue DESC, d.name
	`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var performances []*models.DesignerPerformance
	for rows.Next() {
		perf := &models.DesignerPerformance{}
		if err := rows.Scan(&perf.DesignerID, &perf.DesignerName, &perf.Collections, &perf.Items,
			&perf.SalesCount, &perf.UnitsSold, &perf.Revenue); err != nil {
			return nil, err
		}
		performances = append(performances, perf)
	}
	return performances, rows.Err()
}

func (r *reportingRepo) TopSellingItems(ctx context.Context, limit int) ([]*models.TopSellingItem, error) {
	query := `
		SELECT ci.id, ci.name,
		       COALESCE(SUM(s.quantity_sold), 0) AS units_sold,
		       COALESCE(SUM(s.total_amount), 0) AS revenue
		FROM clothing_items ci
		LEFT JOIN sales s ON s.item_id = ci.id
		GROUP BY ci.id, ci.name
		ORDER BY units_sold DESC
		LIMIT $1
	`
	rows, err := r.db.Query(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []*models.TopSellingItem
	for rows.Next() {
		item := &models.TopSellingItem{}
		if err := rows.Scan(&item.ItemID, &item.ItemName, &item.UnitsSold, &item.Revenue); err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

func (r *reportingRepo) MonthlySalesReport(ctx context.Context, storeID uuid.UUID, month, year int) ([]*models.MonthlySalesRow, error) {
	query := `
		SELECT s.sale_date, ci.name AS item_name, s.quantity_sold, s.total_amount
		FROM sales s
		JOIN clothing_items ci ON s.item_id = ci.id
		WHERE s.store_id = $1
		  AND EXTRACT(MONTH FROM s.sale_date) = $2
		  AND EXTRACT(YEAR FROM s.sale_date) = $3
		ORDER BY s.sale_date
	`
	rows, err := r.db.Query(ctx, query, storeID, month, year)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var report []*models.MonthlySalesRow
	for rows.Next() {
		row := &models.MonthlySalesRow{}
		if err := rows.Scan(&row.SaleDate, &row.ItemName, &row.QuantitySold, &row.TotalAmount); err != nil {
			return nil, err
		}
		report = append(report, row)
	}
	return report, rows.Err()
}

func (r *reportingRepo) ItemFabricCost(ctx context.Context, itemID uuid.UUID) (*models.ItemCost, error) {
	cost := &models.ItemCost{}
	query := `
		SELECT ci.id, ci.price,
		       COALESCE(SUM(f.cost_per_meter * cif.meters_used), 0) AS fabric_cost
		FROM clothing_items ci
		LEFT JOIN clothing_item_fabrics cif ON cif.item_id = ci.id
		LEFT JOIN fabrics f ON cif.fabric_id = f.id
		WHERE ci.id = $1
		GROUP BY ci.id, ci.price
	`
	err := r.db.QueryRow(ctx, query, itemID).Scan(&cost.ItemID, &cost.Price, &cost.FabricCost)
	if err != nil {
		return nil, err
	}
	if cost.Price > 0 {
		cost.ProfitMargin = (cost.Price - cost.FabricCost) / cost.Price * 100
	}
	return cost, nil
}
