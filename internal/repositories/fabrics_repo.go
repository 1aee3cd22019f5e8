package repositories

import (
	"context"

	"modamart/internal/models"

	"github.com/google/uuid"
)

type FabricRepository interface {
	Create(ctx context.Context, fabric *models.Fabric) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Fabric, error)
	Update(ctx context.Context, fabric *models.Fabric) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, limit, offset int) ([]*models.Fabric, error)
	AddUsage(ctx context.Context, usage *models.FabricUsage) error
	ListUsageByItem(ctx context.Context, itemID uuid.UUID) ([]*models.FabricUsage, error)
	// CheapestSupplierForItem picks the supplier with the lowest
	// cost-per-meter among fabrics the item uses.
	CheapestSupplierForItem(ctx context.Context, itemID uuid.UUID) (uuid.UUID, error)
}

type fabricRepo struct {
	db DB
}

func NewFabricRepository(db DB) FabricRepository {
	return &fabricRepo{db: db}
}

func (r *fabricRepo) Create(ctx context.Context, fabric *models.Fabric) error {
	query := `
		INSERT INTO fabrics (id, material, supplier_id, cost_per_meter, created_at, updated_at)
		VALUES ($1, $2, $3, $4, NOW(), NOW())
	`
	_, err := r.db.Exec(ctx, query, fabric.ID, fabric.Material, fabric.SupplierID, fabric.CostPerMeter)
	return err
}

func (r *fabricRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Fabric, error) {
	fabric := &models.Fabric{}
	query := `
		SELECT id, material, supplier_id, cost_per_meter, created_at, updated_at
		FROM fabrics
		WHERE id = $1
	`
	err := r.db.QueryRow(ctx, query, id).Scan(&fabric.ID, &fabric.Material, &fabric.SupplierID, &fabric.CostPerMeter, &fabric.CreatedAt, &fabric.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return fabric, nil
}

func (r *fabricRepo) Update(ctx context.Context, fabric *models.Fabric) error {
	query := `
		UPDATE fabrics
		SET material = $1, supplier_id = $2, cost_per_meter = $3, updated_at = NOW()
		WHERE id = $4
	`
	_, err := r.db.Exec(ctx, query, fabric.Material, fabric.SupplierID, fabric.CostPerMeter, fabric.ID)
	return err
}

func (r *fabricRepo) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM fabrics WHERE id = $1`
	_, err := r.db.Exec(ctx, query, id)
	return err
}

func (r *fabricRepo) List(ctx context.Context, limit, offset int) ([]*models.Fabric, error) {
	query := `
		SELECT id, material, supplier_id, cost_per_meter, created_at, updated_at
		FROM fabrics
		ORDER BY material
		LIMIT $1 OFFSET $2
	`
	rows, err := r.db.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var fabrics []*models.Fabric
	for rows.Next() {
		fabric := &models.Fabric{}
		if err := rows.Scan(&fabric.ID, &fabric.Material, &fabric.SupplierID, &fabric.CostPerMeter, &fabric.CreatedAt, &fabric.UpdatedAt); err != nil {
			return nil, err
		}
		fabrics = append(fabrics, fabric)
	}
	return fabrics, rows.Err()
}

func (r *fabricRepo) AddUsage(ctx context.Context, usage *models.FabricUsage) error {
	query := `
		INSERT INTO clothing_item_fabrics (item_id, fabric_id, meters_used)
		VALUES ($1, $2, $3)
		ON CONFLICT (item_id, fabric_id) DO UPDATE SET meters_used = EXCLUDED.meters_used
	`
	_, err := r.db.Exec(ctx, query, usage.ItemID, usage.FabricID, usage.MetersUsed)
	return err
}

func (r *fabricRepo) ListUsageByItem(ctx context.Context, itemID uuid.UUID) ([]*models.FabricUsage, error) {
	query := `
		SELECT item_id, fabric_id, meters_used
		FROM clothing_item_fabrics
		WHERE item_id = $1
	`
	rows, err := r.db.Query(ctx, query, itemID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var usages []*models.FabricUsage
	for rows.Next() {
		usage := &models.FabricUsage{}
		if err := rows.Scan(&usage.ItemID, &usage.FabricID, &usage.MetersUsed); err != nil {
			return nil, err
		}
		usages = append(usages, usage)
	}
	return usages, rows.Err()
}

func (r *fabricRepo) CheapestSupplierForItem(ctx context.Context, itemID uuid.UUID) (uuid.UUID, error) {
	var supplierID uuid.UUID
	query := `
		SELECT f.supplier_id
		FROM clothing_item_fabrics cif
		JOIN fabrics f ON cif.fabric_id = f.id
		WHERE cif.item_id = $1
		GROUP BY f.supplier_id
		ORDER BY MIN(f.cost_per_meter) ASC
		LIMIT 1
	`
	err := r.db.QueryRow(ctx, query, itemID).Scan(&supplierID)
	return supplierID, err
}
