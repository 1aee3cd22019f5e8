package repositories

import (
	"context"

	"modamart/internal/models"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type CollectionRepository interface {
	Create(ctx context.Context, collection *models.Collection) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Collection, error)
	Update(ctx context.Context, collection *models.Collection) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, limit, offset int) ([]*models.Collection, error)
	ListByDesigner(ctx context.Context, designerID uuid.UUID) ([]*models.Collection, error)
	CountByDesigner(ctx context.Context, designerID uuid.UUID) (int, error)
	CountByDesignerTx(ctx context.Context, tx pgx.Tx, designerID uuid.UUID) (int, error)
}

type collectionRepo struct {
	db DB
}

func NewCollectionRepository(db DB) CollectionRepository {
	return &collectionRepo{db: db}
}

func (r *collectionRepo) Create(ctx context.Context, collection *models.Collection) error {
	query := `
		INSERT INTO collections (id, name, season, year, designer_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, NOW(), NOW())
	`
	_, err := r.db.Exec(ctx, query, collection.ID, collection.Name, collection.Season, collection.Year, collection.DesignerID)
	return err
}

func (r *collectionRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Collection, error) {
	collection := &models.Collection{}
	query := `
		SELECT id, name, season, year, designer_id, created_at, updated_at
		FROM collections
		WHERE id = $1
	`
	err := r.db.QueryRow(ctx, query, id).Scan(&collection.ID, &collection.Name, &collection.Season, &collection.Year, &collection.DesignerID, &collection.CreatedAt, &collection.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return collection, nil
}

func (r *collectionRepo) Update(ctx context.Context, collection *models.Collection) error {
	query := `
		UPDATE collections
		SET name = $1, season = $2, year = $3, designer_id = $4, updated_at = NOW()
		WHERE id = $5
	`
	_, err := r.db.Exec(ctx, query, collection.Name, collection.Season, collection.Year, collection.DesignerID, collection.ID)
	return err
}

func (r *collectionRepo) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM collections WHERE id = $1`
	_, err := r.db.Exec(ctx, query, id)
	return err
}

func (r *collectionRepo) List(ctx context.Context, limit, offset int) ([]*models.Collection, error) {
	query := `
		SELECT id, name, season, year, designer_id, created_at, updated_at
		FROM collections
		ORDER BY year DESC, name
		LIMIT $1 OFFSET $2
	`
	rows, err := r.db.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanCollections(rows)
}

func (r *collectionRepo) ListByDesigner(ctx context.Context, designerID uuid.UUID) ([]*models.Collection, error) {
	query := `
		SELECT id, name, season, year, designer_id, created_at, updated_at
		FROM collections
		WHERE designer_id = $1
		ORDER BY year DESC, name
	`
	rows, err := r.db.Query(ctx, query, designerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanCollections(rows)
}

func (r *collectionRepo) CountByDesigner(ctx context.Context, designerID uuid.UUID) (int, error) {
	var count int
	query := `SELECT COUNT(*) FROM collections WHERE designer_id = $1`
	err := r.db.QueryRow(ctx, query, designerID).Scan(&count)
	return count, err
}

// CountByDesignerTx observes collection ownership inside the caller's
// transaction, so the delete guard sees a consistent snapshot.
func (r *collectionRepo) CountByDesignerTx(ctx context.Context, tx pgx.Tx, designerID uuid.UUID) (int, error) {
	var count int
	query := `SELECT COUNT(*) FROM collections WHERE designer_id = $1`
	err := tx.QueryRow(ctx, query, designerID).Scan(&count)
	return count, err
}

func scanCollections(rows pgx.Rows) ([]*models.Collection, error) {
	var collections []*models.Collection
	for rows.Next() {
		collection := &models.Collection{}
		if err := rows.Scan(&collection.ID, &collection.Name, &collection.Season, &collection.Year, &collection.DesignerID, &collection.CreatedAt, &collection.UpdatedAt); err != nil {
			return nil, err
		}
		collections = append(collections, collection)
	}
	return collections, rows.Err()
}
