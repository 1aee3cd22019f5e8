package services

import (
	"context"
	"errors"
	"fmt"

	"modamart/internal/common"
	"modamart/internal/models"
	"modamart/internal/repositories"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type FabricService interface {
	Create(ctx context.Context, fabric *models.Fabric) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Fabric, error)
	Update(ctx context.Context, fabric *models.Fabric) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, limit, offset int) ([]*models.Fabric, error)
	RecordUsage(ctx context.Context, usage *models.FabricUsage) error
	UsageByItem(ctx context.Context, itemID uuid.UUID) ([]*models.FabricUsage, error)
}

type fabricService struct {
	fabricRepo   repositories.FabricRepository
	supplierRepo repositories.SupplierRepository
	itemRepo     repositories.ClothingItemRepository
}

func NewFabricService(fabricRepo repositories.FabricRepository, supplierRepo repositories.SupplierRepository, itemRepo repositories.ClothingItemRepository) FabricService {
	return &fabricService{
		fabricRepo:   fabricRepo,
		supplierRepo: supplierRepo,
		itemRepo:     itemRepo,
	}
}

func (s *fabricService) Create(ctx context.Context, fabric *models.Fabric) error {
	if fabric.ID == uuid.Nil {
		fabric.ID = uuid.New()
	}
	if err := s.validate(fabric); err != nil {
		return err
	}
	if _, err := s.supplierRepo.GetByID(ctx, fabric.SupplierID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return fmt.Errorf("supplier %s: %w", fabric.SupplierID, common.ErrReferentialIntegrityViolation)
		}
		return err
	}
	return s.fabricRepo.Create(ctx, fabric)
}

func (s *fabricService) GetByID(ctx context.Context, id uuid.UUID) (*models.Fabric, error) {
	return s.fabricRepo.GetByID(ctx, id)
}

func (s *fabricService) Update(ctx context.Context, fabric *models.Fabric) error {
	if err := s.validate(fabric); err != nil {
		return err
	}
	return s.fabricRepo.Update(ctx, fabric)
}

func (s *fabricService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.fabricRepo.Delete(ctx, id)
}

func (s *fabricService) List(ctx context.Context, limit, offset int) ([]*models.Fabric, error) {
	return s.fabricRepo.List(ctx, limit, offset)
}

// RecordUsage upserts how many meters of a fabric go into one item. The
// cost projection and supplier selection both read from this table.
func (s *fabricService) RecordUsage(ctx context.Context, usage *models.FabricUsage) error {
	if usage.MetersUsed <= 0 {
		return fmt.Errorf("meters used must be positive, got %.2f", usage.MetersUsed)
	}
	if _, err := s.itemRepo.GetByID(ctx, usage.ItemID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return fmt.Errorf("item %s: %w", usage.ItemID, common.ErrUnknownItem)
		}
		return err
	}
	if _, err := s.fabricRepo.GetByID(ctx, usage.FabricID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return fmt.Errorf("fabric %s: %w", usage.FabricID, common.ErrReferentialIntegrityViolation)
		}
		return err
	}
	return s.fabricRepo.AddUsage(ctx, usage)
}

func (s *fabricService) UsageByItem(ctx context.Context, itemID uuid.UUID) ([]*models.FabricUsage, error) {
	return s.fabricRepo.ListUsageByItem(ctx, itemID)
}

func (s *fabricService) validate(fabric *models.Fabric) error {
	if fabric.Material == "" {
		return fmt.Errorf("fabric material is required")
	}
	if fabric.CostPerMeter <= 0 {
		return fmt.Errorf("cost per meter must be positive, got %.2f", fabric.CostPerMeter)
	}
	return nil
}
