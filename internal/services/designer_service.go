package services

import (
	"context"
	"fmt"

	"modamart/internal/common"
	"modamart/internal/models"
	"modamart/internal/repositories"

	"github.com/google/uuid"
)

type DesignerService interface {
	Create(ctx context.Context, designer *models.Designer) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Designer, error)
	Update(ctx context.Context, designer *models.Designer) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, limit, offset int) ([]*models.Designer, error)
	Portfolio(ctx context.Context, id uuid.UUID) (*models.DesignerPortfolio, error)
}

type designerService struct {
	db             repositories.DB
	designerRepo   repositories.DesignerRepository
	collectionRepo repositories.CollectionRepository
	itemRepo       repositories.ClothingItemRepository
}

func NewDesignerService(db repositories.DB, designerRepo repositories.DesignerRepository, collectionRepo repositories.CollectionRepository, itemRepo repositories.ClothingItemRepository) DesignerService {
	return &designerService{
		db:             db,
		designerRepo:   designerRepo,
		collectionRepo: collectionRepo,
		itemRepo:       itemRepo,
	}
}

func (s *designerService) Create(ctx context.Context, designer *models.Designer) error {
	if designer.ID == uuid.Nil {
		designer.ID = uuid.New()
	}
	if designer.Name == "" {
		return fmt.Errorf("designer name is required")
	}
	return s.designerRepo.Create(ctx, designer)
}

func (s *designerService) GetByID(ctx context.Context, id uuid.UUID) (*models.Designer, error) {
	return s.designerRepo.GetByID(ctx, id)
}

func (s *designerService) Update(ctx context.Context, designer *models.Designer) error {
	if designer.Name == "" {
		return fmt.Errorf("designer name is required")
	}
	return s.designerRepo.Update(ctx, designer)
}

// Delete refuses to remove a designer that still owns collections. The
// count gives a readable rejection for the common case; a collection
// inserted after the count is caught by the foreign key on
// collections.designer_id, which makes the delete itself fail.
func (s *designerService) Delete(ctx context.Context, id uuid.UUID) error {
	tx, err := s.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin designer delete: %w", err)
	}
	defer tx.Rollback(ctx)

	count, err := s.collectionRepo.CountByDesignerTx(ctx, tx, id)
	if err != nil {
		return err
	}
	if count > 0 {
		return fmt.Errorf("designer %s still has %d collections: %w", id, count, common.ErrReferentialIntegrityViolation)
	}

	if err := s.designerRepo.DeleteTx(ctx, tx, id); err != nil {
		return err
	}
	return tx.Commit(ctx)
}

func (s *designerService) List(ctx context.Context, limit, offset int) ([]*models.Designer, error) {
	return s.designerRepo.List(ctx, limit, offset)
}

func (s *designerService) Portfolio(ctx context.Context, id uuid.UUID) (*models.DesignerPortfolio, error) {
	designer, err := s.designerRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	collections, err := s.collectionRepo.ListByDesigner(ctx, id)
	if err != nil {
		return nil, err
	}
	items, err := s.itemRepo.ListByDesigner(ctx, id)
	if err != nil {
		return nil, err
	}

	portfolio := &models.DesignerPortfolio{
		Designer:    designer,
		Collections: collections,
		Items:       items,
	}
	return portfolio, nil
}
