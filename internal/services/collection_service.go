package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"modamart/internal/common"
	"modamart/internal/models"
	"modamart/internal/repositories"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type CollectionService interface {
	Create(ctx context.Context, collection *models.Collection) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Collection, error)
	Update(ctx context.Context, collection *models.Collection) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, limit, offset int) ([]*models.Collection, error)
	ListByDesigner(ctx context.Context, designerID uuid.UUID) ([]*models.Collection, error)
}

type collectionService struct {
	collectionRepo repositories.CollectionRepository
	designerRepo   repositories.DesignerRepository
	itemRepo       repositories.ClothingItemRepository
}

func NewCollectionService(collectionRepo repositories.CollectionRepository, designerRepo repositories.DesignerRepository, itemRepo repositories.ClothingItemRepository) CollectionService {
	return &collectionService{
		collectionRepo: collectionRepo,
		designerRepo:   designerRepo,
		itemRepo:       itemRepo,
	}
}

func (s *collectionService) Create(ctx context.Context, collection *models.Collection) error {
	if collection.ID == uuid.Nil {
		collection.ID = uuid.New()
	}
	if err := s.validate(collection); err != nil {
		return err
	}
	if _, err := s.designerRepo.GetByID(ctx, collection.DesignerID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return fmt.Errorf("designer %s: %w", collection.DesignerID, common.ErrReferentialIntegrityViolation)
		}
		return err
	}
	return s.collectionRepo.Create(ctx, collection)
}

func (s *collectionService) GetByID(ctx context.Context, id uuid.UUID) (*models.Collection, error) {
	return s.collectionRepo.GetByID(ctx, id)
}

func (s *collectionService) Update(ctx context.Context, collection *models.Collection) error {
	if err := s.validate(collection); err != nil {
		return err
	}
	return s.collectionRepo.Update(ctx, collection)
}

// Delete refuses to remove a collection that still has items.
func (s *collectionService) Delete(ctx context.Context, id uuid.UUID) error {
	items, err := s.itemRepo.ListByCollection(ctx, id)
	if err != nil {
		return err
	}
	if len(items) > 0 {
		return fmt.Errorf("collection %s still has %d items: %w", id, len(items), common.ErrReferentialIntegrityViolation)
	}
	return s.collectionRepo.Delete(ctx, id)
}

func (s *collectionService) List(ctx context.Context, limit, offset int) ([]*models.Collection, error) {
	return s.collectionRepo.List(ctx, limit, offset)
}

func (s *collectionService) ListByDesigner(ctx context.Context, designerID uuid.UUID) ([]*models.Collection, error) {
	return s.collectionRepo.ListByDesigner(ctx, designerID)
}

func (s *collectionService) validate(collection *models.Collection) error {
	if collection.Name == "" {
		return fmt.Errorf("collection name is required")
	}
	if collection.Year < 1900 || collection.Year > time.Now().Year()+2 {
		return fmt.Errorf("collection year %d is out of range", collection.Year)
	}
	return nil
}
