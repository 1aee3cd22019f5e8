package repositories

import (
	"context"

	"modamart/internal/models"

	"github.com/google/uuid"
)

type UserRepository interface {
	Create(ctx context.Context, user *models.AppUser) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.AppUser, error)
	GetByUsername(ctx context.Context, username string) (*models.AppUser, error)
	List(ctx context.Context, limit, offset int) ([]*models.AppUser, error)
}

type userRepo struct {
	db DB
}

func NewUserRepository(db DB) UserRepository {
	return &userRepo{db: db}
}

func (r *userRepo) Create(ctx context.Context, user *models.AppUser) error {
	query := `
		INSERT INTO app_users (id, username, role, password_hash, created_at)
		VALUES ($1, $2, $3, $4, NOW())
	`
	_, err := r.db.Exec(ctx, query, user.ID, user.Username, user.Role, user.PasswordHash)
	return err
}

func (r *userRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.AppUser, error) {
	user := &models.AppUser{}
	query := `
		SELECT id, username, role, password_hash, created_at
		FROM app_users
		WHERE id = $1
	`
	err := r.db.QueryRow(ctx, query, id).Scan(&user.ID, &user.Username, &user.Role, &user.PasswordHash, &user.CreatedAt)
	if err != nil {
		return nil, err
	}
	return user, nil
}

func (r *userRepo) GetByUsername(ctx context.Context, username string) (*models.AppUser, error) {
	user := &models.AppUser{}
	query := `
		SELECT id, username, role, password_hash, created_at
		FROM app_users
		WHERE username = $1
	`
	err := r.db.QueryRow(ctx, query, username).Scan(&user.ID, &user.Username, &user.Role, &user.PasswordHash, &user.CreatedAt)
	if err != nil {
		return nil, err
	}
	return user, nil
}

func (r *userRepo) List(ctx context.Context, limit, offset int) ([]*models.AppUser, error) {
	query := `
		SELECT id, username, role, password_hash, created_at
		FROM app_users
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2
	`
	rows, err := r.db.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []*models.AppUser
	for rows.Next() {
		user := &models.AppUser{}
		if err := rows.Scan(&user.ID, &user.Username, &user.Role, &user.PasswordHash, &user.CreatedAt); err != nil {
			return nil, err
		}
		users = append(users, user)
	}
	return users, rows.Err()
}
