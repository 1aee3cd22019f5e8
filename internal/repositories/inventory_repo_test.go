package repositories

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	pgx "github.com/jackc/pgx/v5"
	pgxmock "github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
)

type InventoryRepoTestSuite struct {
	suite.Suite
	mock    pgxmock.PgxPoolIface
	repo    InventoryRepository
	itemID  uuid.UUID
	context context.Context
}

func (suite *InventoryRepoTestSuite) SetupTest() {
	mock, err := pgxmock.NewPool()
	assert.NoError(suite.T(), err)
	suite.mock = mock

	suite.repo = NewInventoryRepository(mock)
	suite.itemID = uuid.New()
	suite.context = context.Background()
}

func (suite *InventoryRepoTestSuite) TearDownTest() {
	assert.NoError(suite.T(), suite.mock.ExpectationsWereMet())
	suite.mock.Close()
}

func TestInventoryRepoTestSuite(t *testing.T) {
	suite.Run(t, new(InventoryRepoTestSuite))
}

func (suite *InventoryRepoTestSuite) inventoryRows(id uuid.UUID, quantity, reorder int) *pgxmock.Rows {
	return pgxmock.NewRows([]string{"id", "item_id", "quantity_in_stock", "reorder_level", "last_updated"}).
		AddRow(id, suite.itemID, quantity, reorder, time.Now())
}

func (suite *InventoryRepoTestSuite) TestGetByItemID_Success() {
	recordID := uuid.New()
	suite.mock.ExpectQuery(`SELECT id, item_id, quantity_in_stock, reorder_level, last_updated\s+FROM inventory\s+WHERE item_id = \$1`).
		WithArgs(suite.itemID).
		WillReturnRows(suite.inventoryRows(recordID, 18, 5))

	inventory, err := suite.repo.GetByItemID(suite.context, suite.itemID)
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), recordID, inventory.ID)
	assert.Equal(suite.T(), 18, inventory.QuantityInStock)
	assert.Equal(suite.T(), 5, inventory.ReorderLevel)
}

func (suite *InventoryRepoTestSuite) TestGetByItemID_NotFound() {
	suite.mock.ExpectQuery(`SELECT id, item_id, quantity_in_stock, reorder_level, last_updated\s+FROM inventory\s+WHERE item_id = \$1`).
		WithArgs(suite.itemID).
		WillReturnError(pgx.ErrNoRows)

	inventory, err := suite.repo.GetByItemID(suite.context, suite.itemID)
	assert.Nil(suite.T(), inventory)
	assert.ErrorIs(suite.T(), err, pgx.ErrNoRows)
}

func (suite *InventoryRepoTestSuite) TestGetForUpdateTx_LocksRow() {
	recordID := uuid.New()
	suite.mock.ExpectBegin()
	suite.mock.ExpectQuery(`FROM inventory\s+WHERE item_id = \$1\s+FOR UPDATE`).
		WithArgs(suite.itemID).
		WillReturnRows(suite.inventoryRows(recordID, 7, 5))
	suite.mock.ExpectCommit()

	tx, err := suite.mock.Begin(suite.context)
	assert.NoError(suite.T(), err)

	inventory, err := suite.repo.GetForUpdateTx(suite.context, tx, suite.itemID)
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), 7, inventory.QuantityInStock)

	assert.NoError(suite.T(), tx.Commit(suite.context))
}

func (suite *InventoryRepoTestSuite) TestUpdateQuantityTx() {
	suite.mock.ExpectBegin()
	suite.mock.ExpectExec(`UPDATE inventory\s+SET quantity_in_stock = \$1, last_updated = NOW\(\)\s+WHERE item_id = \$2`).
		WithArgs(11, suite.itemID).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))
	suite.mock.ExpectCommit()

	tx, err := suite.mock.Begin(suite.context)
	assert.NoError(suite.T(), err)
	assert.NoError(suite.T(), suite.repo.UpdateQuantityTx(suite.context, tx, suite.itemID, 11))
	assert.NoError(suite.T(), tx.Commit(suite.context))
}

func (suite *InventoryRepoTestSuite) TestListLowStock() {
	recordID := uuid.New()
	suite.mock.ExpectQuery(`WHERE quantity_in_stock <= reorder_level`).
		WillReturnRows(suite.inventoryRows(recordID, 3, 5))

	inventories, err := suite.repo.ListLowStock(suite.context)
	assert.NoError(suite.T(), err)
	assert.Len(suite.T(), inventories, 1)
	assert.Equal(suite.T(), 3, inventories[0].QuantityInStock)
}

func (suite *InventoryRepoTestSuite) TestList_QueryError() {
	suite.mock.ExpectQuery(`FROM inventory\s+ORDER BY last_updated DESC`).
		WithArgs(20, 0).
		WillReturnError(errors.New("connection reset"))

	inventories, err := suite.repo.List(suite.context, 20, 0)
	assert.Nil(suite.T(), inventories)
	assert.Error(suite.T(), err)
}
