package repositories

import (
	"context"

	"modamart/internal/models"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type DesignerRepository interface {
	Create(ctx context.Context, designer *models.Designer) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Designer, error)
	Update(ctx context.Context, designer *models.Designer) error
	List(ctx context.Context, limit, offset int) ([]*models.Designer, error)
	DeleteTx(ctx context.Context, tx pgx.Tx, id uuid.UUID) error
}

type designerRepo struct {
	db DB
}

func NewDesignerRepository(db DB) DesignerRepository {
	return &designerRepo{db: db}
}

func (r *designerRepo) Create(ctx context.Context, designer *models.Designer) error {
	query := `
		INSERT INTO designers (id, name, email, phone, style, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, NOW(), NOW())
	`
	_, err := r.db.Exec(ctx, query, designer.ID, designer.Name, designer.Email, designer.Phone, designer.Style)
	return err
}

func (r *designerRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Designer, error) {
	designer := &models.Designer{}
	query := `
		SELECT id, name, email, phone, style, created_at, updated_at
		FROM designers
		WHERE id = $1
	`
	err := r.db.QueryRow(ctx, query, id).Scan(&designer.ID, &designer.Name, &designer.Email, &designer.Phone, &designer.Style, &designer.CreatedAt, &designer.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return designer, nil
}

func (r *designerRepo) Update(ctx context.Context, designer *models.Designer) error {
	query := `
		UPDATE designers
		SET name = $1, email = $2, phone = $3, style = $4, updated_at = NOW()
		WHERE id = $5
	`
	_, err := r.db.Exec(ctx, query, designer.Name, designer.Email, designer.Phone, designer.Style, designer.ID)
	return err
}

func (r *designerRepo) List(ctx context.Context, limit, offset int) ([]*models.Designer, error) {
	query := `
		SELECT id, name, email, phone, style, created_at, updated_at
		FROM designers
		ORDER BY name
		LIMIT $1 OFFSET $2
	`
	rows, err := r.db.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var designers []*models.Designer
	for rows.Next() {
		designer := &models.Designer{}
		if err := rows.Scan(&designer.ID, &designer.Name, &designer.Email, &designer.Phone, &designer.Style, &designer.CreatedAt, &designer.UpdatedAt); err != nil {
			return nil, err
		}
		designers = append(designers, designer)
	}
	return designers, rows.Err()
}

// DeleteTx removes a designer inside the caller's transaction. The
// referential guard counts owned collections in the same transaction before
// calling this.
func (r *designerRepo) DeleteTx(ctx context.Context, tx pgx.Tx, id uuid.UUID) error {
	query := `DELETE FROM designers WHERE id = $1`
	_, err := tx.Exec(ctx, query, id)
	return err
}
