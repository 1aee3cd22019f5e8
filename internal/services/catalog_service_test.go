package services

import (
	"context"
	"sync"
	"testing"
	"time"

	"modamart/internal/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockReportingRepository struct {
	mock.Mock
}

func (m *MockReportingRepository) CatalogWithStock(ctx context.Context) ([]*models.CatalogEntry, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.CatalogEntry), args.Error(1)
}

func (m *MockReportingRepository) SaleDetails(ctx context.Context, limit, offset int) ([]*models.SaleDetail, error) {
	args := m.Called(ctx, limit, offset)
	return args.Get(0).([]*models.SaleDetail), args.Error(1)
}

func (m *MockReportingRepository) DesignerPerformance(ctx context.Context) ([]*models.DesignerPerformance, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.DesignerPerformance), args.Error(1)
}

func (m *MockReportingRepository) TopSellingItems(ctx context.Context, limit int) ([]*models.TopSellingItem, error) {
	args := m.Called(ctx, limit)
	return args.Get(0).([]*models.TopSellingItem), args.Error(1)
}

func (m *MockReportingRepository) MonthlySalesReport(ctx context.Context, storeID uuid.UUID, month, year int) ([]*models.MonthlySalesRow, error) {
	args := m.Called(ctx, storeID, month, year)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.MonthlySalesRow), args.Error(1)
}

func (m *MockReportingRepository) ItemFabricCost(ctx context.Context, itemID uuid.UUID) (*models.ItemCost, error) {
	args := m.Called(ctx, itemID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.ItemCost), args.Error(1)
}

// memoryCache is an in-process CacheService for observing cache traffic.
type memoryCache struct {
	mu           sync.Mutex
	catalog      []*models.CatalogEntry
	performances []*models.DesignerPerformance
	catalogSets  int
}

func (c *memoryCache) GetCatalog(ctx context.Context) ([]*models.CatalogEntry, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.catalog, nil
}

func (c *memoryCache) SetCatalog(ctx context.Context, entries []*models.CatalogEntry, ttl time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.catalog = entries
	c.catalogSets++
	return nil
}

func (c *memoryCache) InvalidateCatalog(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.catalog = nil
	return nil
}

func (c *memoryCache) GetDesignerPerformance(ctx context.Context) ([]*models.DesignerPerformance, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.performances, nil
}

func (c *memoryCache) SetDesignerPerformance(ctx context.Context, performances []*models.DesignerPerformance, ttl time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.performances = performances
	return nil
}

func (c *memoryCache) InvalidateDesignerPerformance(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.performances = nil
	return nil
}

func TestCatalog_PopulatesCacheOnMiss(t *testing.T) {
	repo := new(MockReportingRepository)
	cache := &memoryCache{}
	service := NewCatalogService(repo, cache)

	entries := []*models.CatalogEntry{
		{ItemID: uuid.New(), ItemName: "Wool coat", StockStatus: models.StockStatusInStock},
	}
	repo.On("CatalogWithStock", mock.Anything).Return(entries, nil).Once()

	got, err := service.Catalog(context.Background())
	require.NoError(t, err)
	assert.Len(t, got, 1)
	assert.Equal(t, 1, cache.catalogSets)

	// Second read is served from the cache without touching the database.
	got, err = service.Catalog(context.Background())
	require.NoError(t, err)
	assert.Len(t, got, 1)
	repo.AssertNumberOfCalls(t, "CatalogWithStock", 1)
}

func TestRefreshDesignerPerformance_ReplacesCachedCopy(t *testing.T) {
	repo := new(MockReportingRepository)
	cache := &memoryCache{}
	service := NewCatalogService(repo, cache)

	performances := []*models.DesignerPerformance{
		{DesignerID: uuid.New(), DesignerName: "Rei Kawakubo", Revenue: 120000},
	}
	repo.On("DesignerPerformance", mock.Anything).Return(performances, nil)

	require.NoError(t, service.RefreshDesignerPerformance(context.Background()))

	got, err := service.DesignerPerformance(context.Background())
	require.NoError(t, err)
	assert.Len(t, got, 1)
	repo.AssertNumberOfCalls(t, "DesignerPerformance", 1)
}

func TestMonthlySalesReport_RejectsBadMonth(t *testing.T) {
	service := NewCatalogService(new(MockReportingRepository), &memoryCache{})

	_, err := service.MonthlySalesReport(context.Background(), uuid.New(), 13, 2026)
	assert.ErrorContains(t, err, "month must be between 1 and 12")
}

func TestTopSellingItems_DefaultsLimit(t *testing.T) {
	repo := new(MockReportingRepository)
	service := NewCatalogService(repo, &memoryCache{})

	repo.On("TopSellingItems", mock.Anything, 10).Return([]*models.TopSellingItem{}, nil)

	_, err := service.TopSellingItems(context.Background(), 0)
	require.NoError(t, err)
	repo.AssertExpectations(t)
}
