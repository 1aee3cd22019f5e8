package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"time"

	"modamart/internal/caching"
	"modamart/internal/common"
	"modamart/internal/models"
	"modamart/internal/repositories"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// ItemService manages the clothing catalog. Creating an item also seeds its
// inventory row in the same transaction so every item is trackable from the
// moment it exists.
type ItemService interface {
	Create(ctx context.Context, item *models.ClothingItem, initialStock, reorderLevel int) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.ClothingItem, error)
	Update(ctx context.Context, item *models.ClothingItem) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, limit, offset int) ([]*models.ClothingItem, error)
	ListByCollection(ctx context.Context, collectionID uuid.UUID) ([]*models.ClothingItem, error)
	UploadImage(ctx context.Context, id uuid.UUID, reader io.Reader, size int64, contentType string) (string, error)
	ImageURL(ctx context.Context, id uuid.UUID) (string, error)
}

type itemService struct {
	db             repositories.DB
	itemRepo       repositories.ClothingItemRepository
	collectionRepo repositories.CollectionRepository
	inventoryRepo  repositories.InventoryRepository
	imageService   ImageService
	cacheService   caching.CacheService
}

func NewItemService(db repositories.DB, itemRepo repositories.ClothingItemRepository, collectionRepo repositories.CollectionRepository, inventoryRepo repositories.InventoryRepository, imageService ImageService, cacheService caching.CacheService) ItemService {
	return &itemService{
		db:             db,
		itemRepo:       itemRepo,
		collectionRepo: collectionRepo,
		inventoryRepo:  inventoryRepo,
		imageService:   imageService,
		cacheService:   cacheService,
	}
}

func (s *itemService) Create(ctx context.Context, item *models.ClothingItem, initialStock, reorderLevel int) error {
	if item.ID == uuid.Nil {
		item.ID = uuid.New()
	}
	if item.Name == "" {
		return fmt.Errorf("item name is required")
	}
	if item.Price <= 0 {
		return fmt.Errorf("item price must be positive, got %.2f", item.Price)
	}
	if initialStock < 0 {
		return fmt.Errorf("initial stock must not be negative, got %d", initialStock)
	}
	if reorderLevel < 0 {
		return fmt.Errorf("reorder level must not be negative, got %d", reorderLevel)
	}
	if _, err := s.collectionRepo.GetByID(ctx, item.CollectionID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return fmt.Errorf("collection %s: %w", item.CollectionID, common.ErrReferentialIntegrityViolation)
		}
		return err
	}

	tx, err := s.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin item create: %w", err)
	}
	defer tx.Rollback(ctx)

	if err := s.itemRepo.CreateTx(ctx, tx, item); err != nil {
		return err
	}
	inventory := &models.Inventory{
		ID:              uuid.New(),
		ItemID:          item.ID,
		QuantityInStock: initialStock,
		ReorderLevel:    reorderLevel,
	}
	if err := s.inventoryRepo.CreateTx(ctx, tx, inventory); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit item create: %w", err)
	}

	if err := s.cacheService.InvalidateCatalog(ctx); err != nil {
		log.Printf("Failed to invalidate catalog cache after item create: %v", err)
	}
	return nil
}

func (s *itemService) GetByID(ctx context.Context, id uuid.UUID) (*models.ClothingItem, error) {
	item, err := s.itemRepo.GetByID(ctx, id)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("item %s: %w", id, common.ErrUnknownItem)
	}
	return item, err
}

func (s *itemService) Update(ctx context.Context, item *models.ClothingItem) error {
	if item.Price <= 0 {
		return fmt.Errorf("item price must be positive, got %.2f", item.Price)
	}
	if err := s.itemRepo.Update(ctx, item); err != nil {
		return err
	}
	if err := s.cacheService.InvalidateCatalog(ctx); err != nil {
		log.Printf("Failed to invalidate catalog cache after item update: %v", err)
	}
	return nil
}

func (s *itemService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.itemRepo.Delete(ctx, id); err != nil {
		return err
	}
	if err := s.cacheService.InvalidateCatalog(ctx); err != nil {
		log.Printf("Failed to invalidate catalog cache after item delete: %v", err)
	}
	return nil
}

func (s *itemService) List(ctx context.Context, limit, offset int) ([]*models.ClothingItem, error) {
	return s.itemRepo.List(ctx, limit, offset)
}

func (s *itemService) ListByCollection(ctx context.Context, collectionID uuid.UUID) ([]*models.ClothingItem, error) {
	return s.itemRepo.ListByCollection(ctx, collectionID)
}

func (s *itemService) UploadImage(ctx context.Context, id uuid.UUID, reader io.Reader, size int64, contentType string) (string, error) {
	if _, err := s.GetByID(ctx, id); err != nil {
		return "", err
	}
	objectName := fmt.Sprintf("items/%s/%d", id, time.Now().UnixNano())
	if err := s.imageService.UploadImage(ctx, objectName, reader, size, contentType); err != nil {
		return "", fmt.Errorf("upload item image: %w", err)
	}
	if err := s.itemRepo.SetImageObject(ctx, id, objectName); err != nil {
		return "", err
	}
	return objectName, nil
}

func (s *itemService) ImageURL(ctx context.Context, id uuid.UUID) (string, error) {
	item, err := s.GetByID(ctx, id)
	if err != nil {
		return "", err
	}
	if item.ImageObject == nil {
		return "", fmt.Errorf("item %s has no image", id)
	}
	return s.imageService.GetPresignedURL(ctx, *item.ImageObject, 15*time.Minute)
}
