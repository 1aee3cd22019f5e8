package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"modamart/internal/common"
	"modamart/internal/models"
	"modamart/internal/repositories"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const (
	minimumOrderQuantity = 10
	deliveryLeadDays     = 7
)

// PurchaseOrderService drives restocking. CreateFromAlert turns a low-stock
// alert into an order with the cheapest fabric supplier for the item; the
// alert row is never touched, the order records the alert it answers.
type PurchaseOrderService interface {
	Create(ctx context.Context, po *models.PurchaseOrder) error
	CreateFromAlert(ctx context.Context, alertID uuid.UUID) (*models.PurchaseOrder, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.PurchaseOrder, error)
	List(ctx context.Context, limit, offset int) ([]*models.PurchaseOrder, error)
	Receive(ctx context.Context, id uuid.UUID) error
	Cancel(ctx context.Context, id uuid.UUID) error
	SweepLowStockAlerts(ctx context.Context) (int, error)
}

type purchaseOrderService struct {
	db               repositories.DB
	poRepo           repositories.PurchaseOrderRepository
	alertRepo        repositories.AlertRepository
	fabricRepo       repositories.FabricRepository
	supplierRepo     repositories.SupplierRepository
	inventoryService InventoryService
}

func NewPurchaseOrderService(db repositories.DB, poRepo repositories.PurchaseOrderRepository, alertRepo repositories.AlertRepository, fabricRepo repositories.FabricRepository, supplierRepo repositories.SupplierRepository, inventoryService InventoryService) PurchaseOrderService {
	return &purchaseOrderService{
		db:               db,
		poRepo:           poRepo,
		alertRepo:        alertRepo,
		fabricRepo:       fabricRepo,
		supplierRepo:     supplierRepo,
		inventoryService: inventoryService,
	}
}

func (s *purchaseOrderService) Create(ctx context.Context, po *models.PurchaseOrder) error {
	if po.ID == uuid.Nil {
		po.ID = uuid.New()
	}
	if po.QuantityOrdered <= 0 {
		return fmt.Errorf("order quantity must be positive, got %d", po.QuantityOrdered)
	}
	if _, err := s.supplierRepo.GetByID(ctx, po.SupplierID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return fmt.Errorf("supplier %s: %w", po.SupplierID, common.ErrReferentialIntegrityViolation)
		}
		return err
	}
	if po.Status == "" {
		po.Status = models.PurchaseOrderOpen
	}
	if po.ExpectedDelivery.IsZero() {
		po.ExpectedDelivery = time.Now().AddDate(0, 0, deliveryLeadDays)
	}
	return s.poRepo.Create(ctx, po)
}

func (s *purchaseOrderService) CreateFromAlert(ctx context.Context, alertID uuid.UUID) (*models.PurchaseOrder, error) {
	alert, err := s.alertRepo.GetByID(ctx, alertID)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("alert %s not found", alertID)
	}
	if err != nil {
		return nil, err
	}

	inventory, err := s.inventoryService.GetByItemID(ctx, alert.ItemID)
	if err != nil {
		return nil, err
	}

	supplierID, err := s.fabricRepo.CheapestSupplierForItem(ctx, alert.ItemID)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("no supplier carries fabrics for item %s", alert.ItemID)
	}
	if err != nil {
		return nil, err
	}

	quantity := 2 * inventory.ReorderLevel
	if quantity < minimumOrderQuantity {
		quantity = minimumOrderQuantity
	}

	po := &models.PurchaseOrder{
		ID:               uuid.New(),
		ItemID:           alert.ItemID,
		SupplierID:       supplierID,
		AlertID:          &alert.ID,
		QuantityOrdered:  quantity,
		Status:           models.PurchaseOrderOpen,
		ExpectedDelivery: time.Now().AddDate(0, 0, deliveryLeadDays),
	}
	if err := s.poRepo.Create(ctx, po); err != nil {
		return nil, err
	}
	return po, nil
}

func (s *purchaseOrderService) GetByID(ctx context.Context, id uuid.UUID) (*models.PurchaseOrder, error) {
	return s.poRepo.GetByID(ctx, id)
}

func (s *purchaseOrderService) List(ctx context.Context, limit, offset int) ([]*models.PurchaseOrder, error) {
	return s.poRepo.List(ctx, limit, offset)
}

// Receive restocks through the inventory ledger and marks the order
// delivered in one transaction. The restock runs the same alert check as
// every other ledger update, and a failure on either statement leaves both
// the stock and the order status unchanged, so a retry cannot add the
// quantity twice.
func (s *purchaseOrderService) Receive(ctx context.Context, id uuid.UUID) error {
	po, err := s.poRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if po.Status != models.PurchaseOrderOpen {
		return fmt.Errorf("purchase order %s is %s, only open orders can be received", id, po.Status)
	}

	tx, err := s.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin purchase order receive: %w", err)
	}
	defer tx.Rollback(ctx)

	if _, err := s.inventoryService.ApplyDeltaTx(ctx, tx, po.ItemID, po.QuantityOrdered); err != nil {
		return err
	}
	if err := s.poRepo.UpdateStatusTx(ctx, tx, id, models.PurchaseOrderReceived); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit purchase order receive: %w", err)
	}

	s.inventoryService.InvalidateProjections(ctx)
	return nil
}

func (s *purchaseOrderService) Cancel(ctx context.Context, id uuid.UUID) error {
	po, err := s.poRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if po.Status != models.PurchaseOrderOpen {
		return fmt.Errorf("purchase order %s is %s, only open orders can be cancelled", id, po.Status)
	}
	return s.poRepo.UpdateStatus(ctx, id, models.PurchaseOrderCancelled)
}

// SweepLowStockAlerts raises an order for every alert that has none yet.
// Alerts without a supplier are skipped, not failed, so one unsourced item
// does not stall the sweep.
func (s *purchaseOrderService) SweepLowStockAlerts(ctx context.Context) (int, error) {
	alerts, err := s.alertRepo.ListUnactioned(ctx)
	if err != nil {
		return 0, err
	}

	created := 0
	seen := make(map[uuid.UUID]bool)
	for _, alert := range alerts {
		// Repeated updates below the reorder level stack alerts for the
		// same item; one order covers them all.
		if seen[alert.ItemID] {
			continue
		}
		seen[alert.ItemID] = true
		if _, err := s.CreateFromAlert(ctx, alert.ID); err != nil {
			log.Printf("Skipping alert %s during restock sweep: %v", alert.ID, err)
			continue
		}
		created++
	}
	return created, nil
}
