package repositories

import (
	"context"

	"modamart/internal/models"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type ClothingItemRepository interface {
	CreateTx(ctx context.Context, tx pgx.Tx, item *models.ClothingItem) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.ClothingItem, error)
	GetPriceTx(ctx context.Context, tx pgx.Tx, id uuid.UUID) (float64, error)
	Update(ctx context.Context, item *models.ClothingItem) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, limit, offset int) ([]*models.ClothingItem, error)
	ListByCollection(ctx context.Context, collectionID uuid.UUID) ([]*models.ClothingItem, error)
	ListByDesigner(ctx context.Context, designerID uuid.UUID) ([]*models.ClothingItem, error)
	SetImageObject(ctx context.Context, id uuid.UUID, objectName string) error
}

type clothingItemRepo struct {
	db DB
}

func NewClothingItemRepository(db DB) ClothingItemRepository {
	return &clothingItemRepo{db: db}
}

// CreateTx inserts the item inside the caller's transaction so the item and
// its inventory row are created atomically.
func (r *clothingItemRepo) CreateTx(ctx context.Context, tx pgx.Tx, item *models.ClothingItem) error {
	query := `
		INSERT INTO clothing_items (id, collection_id, name, size, color, price, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, NOW(), NOW())
	`
	_, err := tx.Exec(ctx, query, item.ID, item.CollectionID, item.Name, item.Size, item.Color, item.Price)
	return err
}

func (r *clothingItemRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.ClothingItem, error) {
	item := &models.ClothingItem{}
	query := `
		SELECT id, collection_id, name, size, color, price, image_object, created_at, updated_at
		FROM clothing_items
		WHERE id = $1
	`
	err := r.db.QueryRow(ctx, query, id).Scan(&item.ID, &item.CollectionID, &item.Name, &item.Size, &item.Color, &item.Price, &item.ImageObject, &item.CreatedAt, &item.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return item, nil
}

// GetPriceTx reads the current price inside the sale transaction so the
// computed total reflects the price at processing time.
func (r *clothingItemRepo) GetPriceTx(ctx context.Context, tx pgx.Tx, id uuid.UUID) (float64, error) {
	var price float64
	query := `SELECT price FROM clothing_items WHERE id = $1`
	err := tx.QueryRow(ctx, query, id).Scan(&price)
	return price, err
}

func (r *clothingItemRepo) Update(ctx context.Context, item *models.ClothingItem) error {
	query := `
		UPDATE clothing_items
		SET collection_id = $1, name = $2, size = $3, color = $4, price = $5, updated_at = NOW()
		WHERE id = $6
	`
	_, err := r.db.Exec(ctx, query, item.CollectionID, item.Name, item.Size, item.Color, item.Price, item.ID)
	return err
}

func (r *clothingItemRepo) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM clothing_items WHERE id = $1`
	_, err := r.db.Exec(ctx, query, id)
	return err
}

func (r *clothingItemRepo) List(ctx context.Context, limit, offset int) ([]*models.ClothingItem, error) {
	query := `
		SELECT id, collection_id, name, size, color, price, image_object, created_at, updated_at
		FROM clothing_items
		ORDER BY name
		LIMIT $1 OFFSET $2
	`
	rows, err := r.db.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanClothingItems(rows)
}

func (r *clothingItemRepo) ListByCollection(ctx context.Context, collectionID uuid.UUID) ([]*models.ClothingItem, error) {
	query := `
		SELECT id, collection_id, name, size, color, price, image_object, created_at, updated_at
		FROM clothing_items
		WHERE collection_id = $1
		ORDER BY name
	`
	rows, err := r.db.Query(ctx, query, collectionID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanClothingItems(rows)
}

func (r *clothingItemRepo) ListByDesigner(ctx context.Context, designerID uuid.UUID) ([]*models.ClothingItem, error) {
	query := `
		SELECT ci.id, ci.collection_id, ci.name, ci.size, ci.color, ci.price, ci.image_object, ci.created_at, ci.updated_at
		FROM clothing_items ci
		JOIN collections c ON ci.collection_id = c.id
		WHERE c.designer_id = $1
		ORDER BY ci.name
	`
	rows, err := r.db.Query(ctx, query, designerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanClothingItems(rows)
}

func (r *clothingItemRepo) SetImageObject(ctx context.Context, id uuid.UUID, objectName string) error {
	query := `UPDATE clothing_items SET image_object = $1, updated_at = NOW() WHERE id = $2`
	_, err := r.db.Exec(ctx, query, objectName, id)
	return err
}

func scanClothingItems(rows pgx.Rows) ([]*models.ClothingItem, error) {
	var items []*models.ClothingItem
	for rows.Next() {
		item := &models.ClothingItem{}
		if err := rows.Scan(&item.ID, &item.CollectionID, &item.Name, &item.Size, &item.Color, &item.Price, &item.ImageObject, &item.CreatedAt, &item.UpdatedAt); err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, rows.Err()
}
