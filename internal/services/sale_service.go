package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"modamart/internal/caching"
	"modamart/internal/common"
	"modamart/internal/models"
	"modamart/internal/repositories"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// SaleService records point-of-sale transactions. ProcessSale is the only
// write path: the price read, the stock decrement and the low-stock alert
// all commit in one transaction, so a failed sale leaves no trace.
// SaleRequest carries the caller-supplied fields of a sale. Everything
// else on the sale row is derived server-side.
type SaleRequest struct {
	ItemID   uuid.UUID `json:"item_id"`
	StoreID  uuid.UUID `json:"store_id"`
	Quantity int       `json:"quantity"`
	Payment  string    `json:"payment"`
	SaleDate time.Time `json:"sale_date"`
}

type SaleService interface {
	ProcessSale(ctx context.Context, req SaleRequest) (*models.Sale, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.Sale, error)
	List(ctx context.Context, limit, offset int) ([]*models.Sale, error)
	ListByStore(ctx context.Context, storeID uuid.UUID, limit, offset int) ([]*models.Sale, error)
}

type saleService struct {
	db               repositories.DB
	saleRepo         repositories.SaleRepository
	itemRepo         repositories.ClothingItemRepository
	storeRepo        repositories.StoreRepository
	inventoryService InventoryService
	cacheService     caching.CacheService
}

func NewSaleService(db repositories.DB, saleRepo repositories.SaleRepository, itemRepo repositories.ClothingItemRepository, storeRepo repositories.StoreRepository, inventoryService InventoryService, cacheService caching.CacheService) SaleService {
	return &saleService{
		db:               db,
		saleRepo:         saleRepo,
		itemRepo:         itemRepo,
		storeRepo:        storeRepo,
		inventoryService: inventoryService,
		cacheService:     cacheService,
	}
}

func (s *saleService) ProcessSale(ctx context.Context, req SaleRequest) (*models.Sale, error) {
	if req.Quantity <= 0 {
		return nil, fmt.Errorf("sale quantity must be positive, got %d", req.Quantity)
	}
	if req.Payment == "" {
		req.Payment = models.PaymentCash
	}
	if req.SaleDate.IsZero() {
		req.SaleDate = time.Now()
	}

	if _, err := s.storeRepo.GetByID(ctx, req.StoreID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("store %s: %w", req.StoreID, common.ErrUnknownStore)
		}
		return nil, err
	}

	tx, err := s.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin sale transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	// Unit price is read inside the transaction so a concurrent price
	// change cannot land between the read and the sale insert.
	price, err := s.itemRepo.GetPriceTx(ctx, tx, req.ItemID)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("item %s: %w", req.ItemID, common.ErrUnknownItem)
	}
	if err != nil {
		return nil, err
	}

	sale := &models.Sale{
		ID:           uuid.New(),
		SaleDate:     req.SaleDate,
		StoreID:      req.StoreID,
		ItemID:       req.ItemID,
		QuantitySold: req.Quantity,
		TotalAmount:  price * float64(req.Quantity),
		Payment:      req.Payment,
	}
	if err := s.saleRepo.CreateTx(ctx, tx, sale); err != nil {
		return nil, err
	}

	// The decrement takes the inventory row lock, which also serializes
	// concurrent sales of the same item.
	remaining, err := s.inventoryService.ApplyDeltaTx(ctx, tx, req.ItemID, -req.Quantity)
	if err != nil {
		return nil, err
	}
	if remaining < 0 {
		return nil, fmt.Errorf("item %s: %d requested, %d available: %w", req.ItemID, req.Quantity, remaining+req.Quantity, common.ErrInsufficientStock)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("commit sale transaction: %w", err)
	}

	if err := s.cacheService.InvalidateCatalog(ctx); err != nil {
		log.Printf("Failed to invalidate catalog cache after sale %s: %v", sale.ID, err)
	}
	if err := s.cacheService.InvalidateDesignerPerformance(ctx); err != nil {
		log.Printf("Failed to invalidate designer performance cache after sale %s: %v", sale.ID, err)
	}

	return sale, nil
}

func (s *saleService) GetByID(ctx context.Context, id uuid.UUID) (*models.Sale, error) {
	return s.saleRepo.GetByID(ctx, id)
}

func (s *saleService) List(ctx context.Context, limit, offset int) ([]*models.Sale, error) {
	return s.saleRepo.List(ctx, limit, offset)
}

func (s *saleService) ListByStore(ctx context.Context, storeID uuid.UUID, limit, offset int) ([]*models.Sale, error) {
	return s.saleRepo.ListByStore(ctx, storeID, limit, offset)
}
