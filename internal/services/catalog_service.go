package services

import (
	"context"
	"fmt"
	"log"
	"time"

	"modamart/internal/caching"
	"modamart/internal/models"
	"modamart/internal/repositories"

	"github.com/google/uuid"
)

const (
	catalogCacheTTL     = 5 * time.Minute
	performanceCacheTTL = 15 * time.Minute
)

// CatalogService serves the read projections. The catalog and designer
// performance views are cached in Redis; everything else reads straight
// from the database.
type CatalogService interface {
	Catalog(ctx context.Context) ([]*models.CatalogEntry, error)
	SaleDetails(ctx context.Context, limit, offset int) ([]*models.SaleDetail, error)
	DesignerPerformance(ctx context.Context) ([]*models.DesignerPerformance, error)
	RefreshDesignerPerformance(ctx context.Context) error
	TopSellingItems(ctx context.Context, limit int) ([]*models.TopSellingItem, error)
	MonthlySalesReport(ctx context.Context, storeID uuid.UUID, month, year int) ([]*models.MonthlySalesRow, error)
	ItemFabricCost(ctx context.Context, itemID uuid.UUID) (*models.ItemCost, error)
}

type catalogService struct {
	reportingRepo repositories.ReportingRepository
	cacheService  caching.CacheService
}

func NewCatalogService(reportingRepo repositories.ReportingRepository, cacheService caching.CacheService) CatalogService {
	return &catalogService{
		reportingRepo: reportingRepo,
		cacheService:  cacheService,
	}
}

func (s *catalogService) Catalog(ctx context.Context) ([]*models.CatalogEntry, error) {
	cached, err := s.cacheService.GetCatalog(ctx)
	if err != nil {
		log.Printf("Catalog cache read failed, falling back to database: %v", err)
	}
	if cached != nil {
		return cached, nil
	}

	entries, err := s.reportingRepo.CatalogWithStock(ctx)
	if err != nil {
		return nil, err
	}
	if err := s.cacheService.SetCatalog(ctx, entries, catalogCacheTTL); err != nil {
		log.Printf("Failed to cache catalog: %v", err)
	}
	return entries, nil
}

func (s *catalogService) SaleDetails(ctx context.Context, limit, offset int) ([]*models.SaleDetail, error) {
	return s.reportingRepo.SaleDetails(ctx, limit, offset)
}

func (s *catalogService) DesignerPerformance(ctx context.Context) ([]*models.DesignerPerformance, error) {
	cached, err := s.cacheService.GetDesignerPerformance(ctx)
	if err != nil {
		log.Printf("Designer performance cache read failed, falling back to database: %v", err)
	}
	if cached != nil {
		return cached, nil
	}

	performances, err := s.reportingRepo.DesignerPerformance(ctx)
	if err != nil {
		return nil, err
	}
	if err := s.cacheService.SetDesignerPerformance(ctx, performances, performanceCacheTTL); err != nil {
		log.Printf("Failed to cache designer performance: %v", err)
	}
	return performances, nil
}

// RefreshDesignerPerformance recomputes the aggregation and replaces the
// cached copy. The scheduler calls this so dashboards stay warm.
func (s *catalogService) RefreshDesignerPerformance(ctx context.Context) error {
	performances, err := s.reportingRepo.DesignerPerformance(ctx)
	if err != nil {
		return fmt.Errorf("refresh designer performance: %w", err)
	}
	return s.cacheService.SetDesignerPerformance(ctx, performances, performanceCacheTTL)
}

func (s *catalogService) TopSellingItems(ctx context.Context, limit int) ([]*models.TopSellingItem, error) {
	if limit <= 0 {
		limit = 10
	}
	return s.reportingRepo.TopSellingItems(ctx, limit)
}

func (s *catalogService) MonthlySalesReport(ctx context.Context, storeID uuid.UUID, month, year int) ([]*models.MonthlySalesRow, error) {
	if month < 1 || month > 12 {
		return nil, fmt.Errorf("month must be between 1 and 12, got %d", month)
	}
	return s.reportingRepo.MonthlySalesReport(ctx, storeID, month, year)
}

func (s *catalogService) ItemFabricCost(ctx context.Context, itemID uuid.UUID) (*models.ItemCost, error) {
	return s.reportingRepo.ItemFabricCost(ctx, itemID)
}
