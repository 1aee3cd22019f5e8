package jobs

import (
	"context"
	"errors"
	"testing"

	"modamart/internal/models"

	"github.com/google/uuid"
	pgx "github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type MockInventoryRepository struct {
	mock.Mock
}

func (m *MockInventoryRepository) CreateTx(ctx context.Context, tx pgx.Tx, inventory *models.Inventory) error {
	args := m.Called(ctx, tx, inventory)
	return args.Error(0)
}

func (m *MockInventoryRepository) GetByItemID(ctx context.Context, itemID uuid.UUID) (*models.Inventory, error) {
	args := m.Called(ctx, itemID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Inventory), args.Error(1)
}

func (m *MockInventoryRepository) List(ctx context.Context, limit, offset int) ([]*models.Inventory, error) {
	args := m.Called(ctx, limit, offset)
	return args.Get(0).([]*models.Inventory), args.Error(1)
}

func (m *MockInventoryRepository) ListLowStock(ctx context.Context) ([]*models.Inventory, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Inventory), args.Error(1)
}

func (m *MockInventoryRepository) GetForUpdateTx(ctx context.Context, tx pgx.Tx, itemID uuid.UUID) (*models.Inventory, error) {
	args := m.Called(ctx, tx, itemID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Inventory), args.Error(1)
}

func (m *MockInventoryRepository) UpdateQuantityTx(ctx context.Context, tx pgx.Tx, itemID uuid.UUID, quantity int) error {
	args := m.Called(ctx, tx, itemID, quantity)
	return args.Error(0)
}

type MockClothingItemRepository struct {
	mock.Mock
}

func (m *MockClothingItemRepository) CreateTx(ctx context.Context, tx pgx.Tx, item *models.ClothingItem) error {
	args := m.Called(ctx, tx, item)
	return args.Error(0)
}

func (m *MockClothingItemRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.ClothingItem, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.ClothingItem), args.Error(1)
}

func (m *MockClothingItemRepository) GetPriceTx(ctx context.Context, tx pgx.Tx, id uuid.UUID) (float64, error) {
	args := m.Called(ctx, tx, id)
	return args.Get(0).(float64), args.Error(1)
}

func (m *MockClothingItemRepository) Update(ctx context.Context, item *models.ClothingItem) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

func (m *MockClothingItemRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockClothingItemRepository) List(ctx context.Context, limit, offset int) ([]*models.ClothingItem, error) {
	args := m.Called(ctx, limit, offset)
	return args.Get(0).([]*models.ClothingItem), args.Error(1)
}

func (m *MockClothingItemRepository) ListByCollection(ctx context.Context, collectionID uuid.UUID) ([]*models.ClothingItem, error) {
	args := m.Called(ctx, collectionID)
	return args.Get(0).([]*models.ClothingItem), args.Error(1)
}

func (m *MockClothingItemRepository) ListByDesigner(ctx context.Context, designerID uuid.UUID) ([]*models.ClothingItem, error) {
	args := m.Called(ctx, designerID)
	return args.Get(0).([]*models.ClothingItem), args.Error(1)
}

func (m *MockClothingItemRepository) SetImageObject(ctx context.Context, id uuid.UUID, objectName string) error {
	args := m.Called(ctx, id, objectName)
	return args.Error(0)
}

type LowStockReporterTestSuite struct {
	suite.Suite
	inventoryRepo *MockInventoryRepository
	itemRepo      *MockClothingItemRepository
	reporter      *LowStockReporter
	context       context.Context
}

func (suite *LowStockReporterTestSuite) SetupTest() {
	suite.inventoryRepo = new(MockInventoryRepository)
	suite.itemRepo = new(MockClothingItemRepository)
	suite.reporter = NewLowStockReporter(suite.inventoryRepo, suite.itemRepo)
	suite.context = context.Background()
}

func TestLowStockReporterTestSuite(t *testing.T) {
	suite.Run(t, new(LowStockReporterTestSuite))
}

func (suite *LowStockReporterTestSuite) TestCheck_ResolvesItemNames() {
	itemID := uuid.New()
	suite.inventoryRepo.On("ListLowStock", suite.context).Return([]*models.Inventory{
		{ID: uuid.New(), ItemID: itemID, QuantityInStock: 3, ReorderLevel: 10},
	}, nil)
	suite.itemRepo.On("GetByID", suite.context, itemID).Return(&models.ClothingItem{
		ID: itemID, Name: "Silk scarf",
	}, nil)

	entries, err := suite.reporter.Check(suite.context)
	assert.NoError(suite.T(), err)
	assert.Len(suite.T(), entries, 1)
	assert.Equal(suite.T(), "Silk scarf", entries[0].Item.Name)
	assert.Equal(suite.T(), 3, entries[0].CurrentStock)
	assert.Equal(suite.T(), 10, entries[0].ReorderLevel)
}

func (suite *LowStockReporterTestSuite) TestCheck_SkipsItemsThatFailToLoad() {
	missing := uuid.New()
	healthy := uuid.New()
	suite.inventoryRepo.On("ListLowStock", suite.context).Return([]*models.Inventory{
		{ID: uuid.New(), ItemID: missing, QuantityInStock: 0, ReorderLevel: 5},
		{ID: uuid.New(), ItemID: healthy, QuantityInStock: 4, ReorderLevel: 5},
	}, nil)
	suite.itemRepo.On("GetByID", suite.context, missing).Return(nil, pgx.ErrNoRows)
	suite.itemRepo.On("GetByID", suite.context, healthy).Return(&models.ClothingItem{
		ID: healthy, Name: "Denim jacket",
	}, nil)

	entries, err := suite.reporter.Check(suite.context)
	assert.NoError(suite.T(), err)
	assert.Len(suite.T(), entries, 1)
	assert.Equal(suite.T(), "Denim jacket", entries[0].Item.Name)
}

func (suite *LowStockReporterTestSuite) TestCheck_PropagatesListError() {
	suite.inventoryRepo.On("ListLowStock", suite.context).Return(nil, errors.New("connection reset"))

	_, err := suite.reporter.Check(suite.context)
	assert.Error(suite.T(), err)
}

func (suite *LowStockReporterTestSuite) TestCheck_EmptyWhenStockIsHealthy() {
	suite.inventoryRepo.On("ListLowStock", suite.context).Return([]*models.Inventory{}, nil)

	entries, err := suite.reporter.Check(suite.context)
	assert.NoError(suite.T(), err)
	assert.Empty(suite.T(), entries)
}
