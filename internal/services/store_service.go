package services

import (
	"context"
	"fmt"

	"modamart/internal/models"
	"modamart/internal/repositories"

	"github.com/google/uuid"
)

type StoreService interface {
	Create(ctx context.Context, store *models.Store) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Store, error)
	Update(ctx context.Context, store *models.Store) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, limit, offset int) ([]*models.Store, error)
}

type storeService struct {
	storeRepo repositories.StoreRepository
}

func NewStoreService(storeRepo repositories.StoreRepository) StoreService {
	return &storeService{storeRepo: storeRepo}
}

func (s *storeService) Create(ctx context.Context, store *models.Store) error {
	if store.ID == uuid.Nil {
		store.ID = uuid.New()
	}
	if store.Name == "" {
		return fmt.Errorf("store name is required")
	}
	return s.storeRepo.Create(ctx, store)
}

func (s *storeService) GetByID(ctx context.Context, id uuid.UUID) (*models.Store, error) {
	return s.storeRepo.GetByID(ctx, id)
}

func (s *storeService) Update(ctx context.Context, store *models.Store) error {
	if store.Name == "" {
		return fmt.Errorf("store name is required")
	}
	return s.storeRepo.Update(ctx, store)
}

func (s *storeService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.storeRepo.Delete(ctx, id)
}

func (s *storeService) List(ctx context.Context, limit, offset int) ([]*models.Store, error) {
	return s.storeRepo.List(ctx, limit, offset)
}
