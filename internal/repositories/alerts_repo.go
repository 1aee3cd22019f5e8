package repositories

import (
	"context"

	"modamart/internal/models"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type AlertRepository interface {
	// CreateTx appends an alert inside the transaction that mutated the
	// ledger, so a decrement and its alert are observed together.
	CreateTx(ctx context.Context, tx pgx.Tx, alert *models.InventoryAlert) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.InventoryAlert, error)
	List(ctx context.Context, limit, offset int) ([]*models.InventoryAlert, error)
	// ListUnactioned returns alerts that no purchase order references,
	// for items without an open order.
	ListUnactioned(ctx context.Context) ([]*models.InventoryAlert, error)
}

type alertRepo struct {
	db DB
}

func NewAlertRepository(db DB) AlertRepository {
	return &alertRepo{db: db}
}

func (r *alertRepo) CreateTx(ctx context.Context, tx pgx.Tx, alert *models.InventoryAlert) error {
	query := `
		INSERT INTO inventory_alerts (id, item_id, message, alert_date)
		VALUES ($1, $2, $3, NOW())
	`
	_, err := tx.Exec(ctx, query, alert.ID, alert.ItemID, alert.Message)
	return err
}

func (r *alertRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.InventoryAlert, error) {
	alert := &models.InventoryAlert{}
	query := `
		SELECT id, item_id, message, alert_date
		FROM inventory_alerts
		WHERE id = $1
	`
	err := r.db.QueryRow(ctx, query, id).Scan(&alert.ID, &alert.ItemID, &alert.Message, &alert.AlertDate)
	if err != nil {
		return nil, err
	}
	return alert, nil
}

func (r *alertRepo) List(ctx context.Context, limit, offset int) ([]*models.InventoryAlert, error) {
	query := `
		SELECT id, item_id, message, alert_date
		FROM inventory_alerts
		ORDER BY alert_date DESC
		LIMIT $1 OFFSET $2
	`
	rows, err := r.db.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanAlerts(rows)
}

func (r *alertRepo) ListUnactioned(ctx context.Context) ([]*models.InventoryAlert, error) {
	query := `
		SELECT a.id, a.item_id, a.message, a.alert_date
		FROM inventory_alerts a
		WHERE NOT EXISTS (
			SELECT 1 FROM purchase_orders po WHERE po.alert_id = a.id
		)
		AND NOT EXISTS (
			SELECT 1 FROM purchase_orders po
			WHERE po.item_id = a.item_id AND po.status = 'OPEN'
		)
		ORDER BY a.alert_date DESC
	`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanAlerts(rows)
}

func scanAlerts(rows pgx.Rows) ([]*models.InventoryAlert, error) {
	var alerts []*models.InventoryAlert
	for rows.Next() {
		alert := &models.InventoryAlert{}
		if err := rows.Scan(&alert.ID, &alert.ItemID, &alert.Message, &alert.AlertDate); err != nil {
			return nil, err
		}
		alerts = append(alerts, alert)
	}
	return alerts, rows.Err()
}
