package services

import (
	"context"
	"testing"
	"time"

	"modamart/internal/common"
	"modamart/internal/models"
	"modamart/internal/repositories"

	"github.com/google/uuid"
	pgx "github.com/jackc/pgx/v5"
	pgxmock "github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
)

// noopCache satisfies caching.CacheService for tests that do not care
// about the cache.
type noopCache struct{}

func (noopCache) GetCatalog(ctx context.Context) ([]*models.CatalogEntry, error) { return nil, nil }
func (noopCache) SetCatalog(ctx context.Context, entries []*models.CatalogEntry, ttl time.Duration) error {
	return nil
}
func (noopCache) InvalidateCatalog(ctx context.Context) error { return nil }
func (noopCache) GetDesignerPerformance(ctx context.Context) ([]*models.DesignerPerformance, error) {
	return nil, nil
}
func (noopCache) SetDesignerPerformance(ctx context.Context, performances []*models.DesignerPerformance, ttl time.Duration) error {
	return nil
}
func (noopCache) InvalidateDesignerPerformance(ctx context.Context) error { return nil }

type InventoryServiceTestSuite struct {
	suite.Suite
	mock    pgxmock.PgxPoolIface
	service InventoryService
	itemID  uuid.UUID
	context context.Context
}

func (suite *InventoryServiceTestSuite) SetupTest() {
	mock, err := pgxmock.NewPool()
	assert.NoError(suite.T(), err)
	suite.mock = mock

	inventoryRepo := repositories.NewInventoryRepository(mock)
	alertRepo := repositories.NewAlertRepository(mock)
	suite.service = NewInventoryService(mock, inventoryRepo, alertRepo, noopCache{})
	suite.itemID = uuid.New()
	suite.context = context.Background()
}

func (suite *InventoryServiceTestSuite) TearDownTest() {
	assert.NoError(suite.T(), suite.mock.ExpectationsWereMet())
	suite.mock.Close()
}

func TestInventoryServiceTestSuite(t *testing.T) {
	suite.Run(t, new(InventoryServiceTestSuite))
}

func (suite *InventoryServiceTestSuite) expectLockedRead(quantity, reorder int) {
	rows := pgxmock.NewRows([]string{"id", "item_id", "quantity_in_stock", "reorder_level", "last_updated"}).
		AddRow(uuid.New(), suite.itemID, quantity, reorder, time.Now())
	suite.mock.ExpectQuery(`FOR UPDATE`).WithArgs(suite.itemID).WillReturnRows(rows)
}

func (suite *InventoryServiceTestSuite) expectQuantityWrite(quantity int) {
	suite.mock.ExpectExec(`UPDATE inventory`).
		WithArgs(quantity, suite.itemID).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))
}

func (suite *InventoryServiceTestSuite) expectAlertInsert() {
	suite.mock.ExpectExec(`INSERT INTO inventory_alerts`).
		WithArgs(pgxmock.AnyArg(), suite.itemID, pgxmock.AnyArg()).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))
}

func (suite *InventoryServiceTestSuite) TestApplyDelta_AboveReorderLevel_NoAlert() {
	suite.mock.ExpectBegin()
	suite.expectLockedRead(18, 5)
	suite.expectQuantityWrite(17)
	suite.mock.ExpectCommit()

	newQuantity, err := suite.service.ApplyDelta(suite.context, suite.itemID, -1)
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), 17, newQuantity)
}

func (suite *InventoryServiceTestSuite) TestApplyDelta_CrossesReorderLevel_LogsAlert() {
	suite.mock.ExpectBegin()
	suite.expectLockedRead(12, 10)
	suite.expectQuantityWrite(9)
	suite.expectAlertInsert()
	suite.mock.ExpectCommit()

	newQuantity, err := suite.service.ApplyDelta(suite.context, suite.itemID, -3)
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), 9, newQuantity)
}

func (suite *InventoryServiceTestSuite) TestApplyDelta_AlreadyBelowReorderLevel_LogsAlertAgain() {
	// Level-triggered, not edge-triggered: a second update below the
	// threshold logs a second alert.
	suite.mock.ExpectBegin()
	suite.expectLockedRead(9, 10)
	suite.expectQuantityWrite(8)
	suite.expectAlertInsert()
	suite.mock.ExpectCommit()

	newQuantity, err := suite.service.ApplyDelta(suite.context, suite.itemID, -1)
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), 8, newQuantity)
}

func (suite *InventoryServiceTestSuite) TestApplyDelta_RestockAtReorderLevel_LogsAlert() {
	// Landing exactly on the reorder level still qualifies.
	suite.mock.ExpectBegin()
	suite.expectLockedRead(2, 10)
	suite.expectQuantityWrite(10)
	suite.expectAlertInsert()
	suite.mock.ExpectCommit()

	newQuantity, err := suite.service.ApplyDelta(suite.context, suite.itemID, 8)
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), 10, newQuantity)
}

func (suite *InventoryServiceTestSuite) TestApplyDelta_RestockAboveReorderLevel_NoAlert() {
	suite.mock.ExpectBegin()
	suite.expectLockedRead(2, 10)
	suite.expectQuantityWrite(22)
	suite.mock.ExpectCommit()

	newQuantity, err := suite.service.ApplyDelta(suite.context, suite.itemID, 20)
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), 22, newQuantity)
}

func (suite *InventoryServiceTestSuite) TestApplyDelta_UnknownItem() {
	suite.mock.ExpectBegin()
	suite.mock.ExpectQuery(`FOR UPDATE`).WithArgs(suite.itemID).WillReturnError(pgx.ErrNoRows)
	suite.mock.ExpectRollback()

	_, err := suite.service.ApplyDelta(suite.context, suite.itemID, -1)
	assert.ErrorIs(suite.T(), err, common.ErrUnknownInventoryRecord)
}

func (suite *InventoryServiceTestSuite) TestGetByItemID_Missing() {
	suite.mock.ExpectQuery(`FROM inventory`).WithArgs(suite.itemID).WillReturnError(pgx.ErrNoRows)

	_, err := suite.service.GetByItemID(suite.context, suite.itemID)
	assert.ErrorIs(suite.T(), err, common.ErrUnknownInventoryRecord)
}

func (suite *InventoryServiceTestSuite) TestCreate_RejectsNegativeQuantity() {
	err := suite.service.Create(suite.context, &models.Inventory{
		ItemID:          suite.itemID,
		QuantityInStock: -1,
		ReorderLevel:    5,
	})
	assert.Error(suite.T(), err)
}
