package services

import (
	"context"
	"testing"
	"time"

	"modamart/internal/common"
	"modamart/internal/models"
	"modamart/internal/repositories"

	"github.com/google/uuid"
	pgxmock "github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
)

type DesignerServiceTestSuite struct {
	suite.Suite
	mock       pgxmock.PgxPoolIface
	service    DesignerService
	designerID uuid.UUID
	context    context.Context
}

func (suite *DesignerServiceTestSuite) SetupTest() {
	mock, err := pgxmock.NewPool()
	assert.NoError(suite.T(), err)
	suite.mock = mock

	designerRepo := repositories.NewDesignerRepository(mock)
	collectionRepo := repositories.NewCollectionRepository(mock)
	itemRepo := repositories.NewClothingItemRepository(mock)
	suite.service = NewDesignerService(mock, designerRepo, collectionRepo, itemRepo)
	suite.designerID = uuid.New()
	suite.context = context.Background()
}

func (suite *DesignerServiceTestSuite) TearDownTest() {
	assert.NoError(suite.T(), suite.mock.ExpectationsWereMet())
	suite.mock.Close()
}

func TestDesignerServiceTestSuite(t *testing.T) {
	suite.Run(t, new(DesignerServiceTestSuite))
}

func (suite *DesignerServiceTestSuite) TestDelete_NoCollections_Succeeds() {
	suite.mock.ExpectBegin()
	suite.mock.ExpectQuery(`SELECT COUNT\(\*\) FROM collections WHERE designer_id = \$1`).
		WithArgs(suite.designerID).
		WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(0))
	suite.mock.ExpectExec(`DELETE FROM designers WHERE id = \$1`).
		WithArgs(suite.designerID).
		WillReturnResult(pgxmock.NewResult("DELETE", 1))
	suite.mock.ExpectCommit()

	err := suite.service.Delete(suite.context, suite.designerID)
	assert.NoError(suite.T(), err)
}

func (suite *DesignerServiceTestSuite) TestDelete_WithCollections_Rejected() {
	suite.mock.ExpectBegin()
	suite.mock.ExpectQuery(`SELECT COUNT\(\*\) FROM collections WHERE designer_id = \$1`).
		WithArgs(suite.designerID).
		WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(3))
	suite.mock.ExpectRollback()

	err := suite.service.Delete(suite.context, suite.designerID)
	assert.ErrorIs(suite.T(), err, common.ErrReferentialIntegrityViolation)
}

func (suite *DesignerServiceTestSuite) TestCreate_RequiresName() {
	err := suite.service.Create(suite.context, &models.Designer{})
	assert.Error(suite.T(), err)
}

func (suite *DesignerServiceTestSuite) TestPortfolio_BundlesOwnership() {
	designerRows := pgxmock.NewRows([]string{"id", "name", "email", "phone", "style", "created_at", "updated_at"}).
		AddRow(suite.designerID, "Rei Kawakubo", nil, nil, nil, time.Now(), time.Now())
	suite.mock.ExpectQuery(`FROM designers\s+WHERE id = \$1`).
		WithArgs(suite.designerID).WillReturnRows(designerRows)

	collectionID := uuid.New()
	collectionRows := pgxmock.NewRows([]string{"id", "name", "season", "year", "designer_id", "created_at", "updated_at"}).
		AddRow(collectionID, "Noir", "FW", 2026, suite.designerID, time.Now(), time.Now())
	suite.mock.ExpectQuery(`FROM collections\s+WHERE designer_id = \$1`).
		WithArgs(suite.designerID).WillReturnRows(collectionRows)

	itemRows := pgxmock.NewRows([]string{"id", "collection_id", "name", "size", "color", "price", "image_object", "created_at", "updated_at"}).
		AddRow(uuid.New(), collectionID, "Wool coat", "M", "Black", 18999.00, nil, time.Now(), time.Now())
	suite.mock.ExpectQuery(`JOIN collections`).
		WithArgs(suite.designerID).WillReturnRows(itemRows)

	portfolio, err := suite.service.Portfolio(suite.context, suite.designerID)
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), "Rei Kawakubo", portfolio.Designer.Name)
	assert.Len(suite.T(), portfolio.Collections, 1)
	assert.Len(suite.T(), portfolio.Items, 1)
}
