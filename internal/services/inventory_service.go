package services

import (
	"context"
	"errors"
	"fmt"
	"log"

	"modamart/internal/caching"
	"modamart/internal/common"
	"modamart/internal/models"
	"modamart/internal/repositories"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// InventoryService owns the stock ledger. Every quantity mutation goes
// through ApplyDelta/ApplyDeltaTx, which runs the low-stock alert check in
// the same transaction as the write. There is no code path that updates
// stock without evaluating the alert condition.
type InventoryService interface {
	Create(ctx context.Context, inventory *models.Inventory) error
	GetByItemID(ctx context.Context, itemID uuid.UUID) (*models.Inventory, error)
	List(ctx context.Context, limit, offset int) ([]*models.Inventory, error)
	LowStock(ctx context.Context) ([]*models.Inventory, error)

	// ApplyDelta adjusts an item's stock inside its own transaction.
	// Negative deltas come from the sale processor, positive ones from
	// the restock path; both evaluate the alert condition.
	ApplyDelta(ctx context.Context, itemID uuid.UUID, delta int) (int, error)

	// ApplyDeltaTx is the same adjustment inside the caller's
	// transaction. The sale processor uses this so the sale insert,
	// the decrement and the alert commit as one unit.
	ApplyDeltaTx(ctx context.Context, tx pgx.Tx, itemID uuid.UUID, delta int) (int, error)

	// InvalidateProjections drops the cached stock projections. Callers
	// of ApplyDeltaTx invoke this after their transaction commits;
	// ApplyDelta does it itself.
	InvalidateProjections(ctx context.Context)
}

type inventoryService struct {
	db            repositories.DB
	inventoryRepo repositories.InventoryRepository
	alertRepo     repositories.AlertRepository
	cacheService  caching.CacheService
}

func NewInventoryService(db repositories.DB, inventoryRepo repositories.InventoryRepository, alertRepo repositories.AlertRepository, cacheService caching.CacheService) InventoryService {
	return &inventoryService{
		db:            db,
		inventoryRepo: inventoryRepo,
		alertRepo:     alertRepo,
		cacheService:  cacheService,
	}
}

func (s *inventoryService) Create(ctx context.Context, inventory *models.Inventory) error {
	if inventory.ID == uuid.Nil {
		inventory.ID = uuid.New()
	}
	if inventory.QuantityInStock < 0 {
		return fmt.Errorf("initial quantity must not be negative, got %d", inventory.QuantityInStock)
	}
	if inventory.ReorderLevel < 0 {
		return fmt.Errorf("reorder level must not be negative, got %d", inventory.ReorderLevel)
	}

	tx, err := s.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin inventory create: %w", err)
	}
	defer tx.Rollback(ctx)

	if err := s.inventoryRepo.CreateTx(ctx, tx, inventory); err != nil {
		return err
	}
	return tx.Commit(ctx)
}

func (s *inventoryService) GetByItemID(ctx context.Context, itemID uuid.UUID) (*models.Inventory, error) {
	inventory, err := s.inventoryRepo.GetByItemID(ctx, itemID)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("item %s: %w", itemID, common.ErrUnknownInventoryRecord)
	}
	return inventory, err
}

func (s *inventoryService) List(ctx context.Context, limit, offset int) ([]*models.Inventory, error) {
	return s.inventoryRepo.List(ctx, limit, offset)
}

func (s *inventoryService) LowStock(ctx context.Context) ([]*models.Inventory, error) {
	return s.inventoryRepo.ListLowStock(ctx)
}

func (s *inventoryService) ApplyDelta(ctx context.Context, itemID uuid.UUID, delta int) (int, error) {
	tx, err := s.db.Begin(ctx)
	if err != nil {
		return 0, fmt.Errorf("begin inventory adjustment: %w", err)
	}
	defer tx.Rollback(ctx)

	newQuantity, err := s.ApplyDeltaTx(ctx, tx, itemID, delta)
	if err != nil {
		return 0, err
	}
	if err := tx.Commit(ctx); err != nil {
		return 0, fmt.Errorf("commit inventory adjustment: %w", err)
	}

	s.InvalidateProjections(ctx)
	return newQuantity, nil
}

func (s *inventoryService) ApplyDeltaTx(ctx context.Context, tx pgx.Tx, itemID uuid.UUID, delta int) (int, error) {
	inventory, err := s.inventoryRepo.GetForUpdateTx(ctx, tx, itemID)
	if errors.Is(err, pgx.ErrNoRows) {
		return 0, fmt.Errorf("item %s: %w", itemID, common.ErrUnknownInventoryRecord)
	}
	if err != nil {
		return 0, err
	}

	newQuantity := inventory.QuantityInStock + delta
	if err := s.inventoryRepo.UpdateQuantityTx(ctx, tx, itemID, newQuantity); err != nil {
		return 0, err
	}

	// Level-triggered: every update that leaves stock at or below the
	// reorder level logs a fresh alert, not just the crossing one.
	if newQuantity <= inventory.ReorderLevel {
		alert := &models.InventoryAlert{
			ID:      uuid.New(),
			ItemID:  itemID,
			Message: fmt.Sprintf("Stock low for item %s: %d remaining (reorder level %d)", itemID, newQuantity, inventory.ReorderLevel),
		}
		if err := s.alertRepo.CreateTx(ctx, tx, alert); err != nil {
			return 0, fmt.Errorf("append low-stock alert: %w", err)
		}
	}

	return newQuantity, nil
}

func (s *inventoryService) InvalidateProjections(ctx context.Context) {
	if err := s.cacheService.InvalidateCatalog(ctx); err != nil {
		log.Printf("Failed to invalidate catalog cache: %v", err)
	}
	if err := s.cacheService.InvalidateDesignerPerformance(ctx); err != nil {
		log.Printf("Failed to invalidate designer performance cache: %v", err)
	}
}
