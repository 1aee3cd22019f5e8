package services

import (
	"context"
	"errors"
	"sync"
	"testing"

	"modamart/internal/common"
	"modamart/internal/models"

	"github.com/google/uuid"
	pgx "github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

// The fakes below model the database's locking behavior: Begin takes the
// ledger lock, Commit applies staged writes and releases it, Rollback
// discards them. This lets the concurrency property of the sale processor
// run as a plain unit test.

type ledgerState struct {
	mu       sync.Mutex
	quantity int
	reorder  int
	price    float64
	sales    int
	alerts   int
}

type ledgerTx struct {
	pgx.Tx
	state        *ledgerState
	stagedQty    int
	qtyDirty     bool
	stagedSales  int
	stagedAlerts int
	done         bool
}

func (t *ledgerTx) Commit(ctx context.Context) error {
	if t.done {
		return pgx.ErrTxClosed
	}
	if t.qtyDirty {
		t.state.quantity = t.stagedQty
	}
	t.state.sales += t.stagedSales
	t.state.alerts += t.stagedAlerts
	t.done = true
	t.state.mu.Unlock()
	return nil
}

func (t *ledgerTx) Rollback(ctx context.Context) error {
	if t.done {
		return pgx.ErrTxClosed
	}
	t.done = true
	t.state.mu.Unlock()
	return nil
}

type ledgerDB struct {
	state *ledgerState
}

func (d *ledgerDB) Begin(ctx context.Context) (pgx.Tx, error) {
	d.state.mu.Lock()
	return &ledgerTx{state: d.state}, nil
}

func (d *ledgerDB) Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	return pgconn.CommandTag{}, errors.New("not supported")
}

func (d *ledgerDB) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	return nil, errors.New("not supported")
}

func (d *ledgerDB) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	panic("not supported")
}

type fakeInventoryRepo struct{ itemID uuid.UUID }

func (r *fakeInventoryRepo) CreateTx(ctx context.Context, tx pgx.Tx, inventory *models.Inventory) error {
	return nil
}

func (r *fakeInventoryRepo) GetByItemID(ctx context.Context, itemID uuid.UUID) (*models.Inventory, error) {
	return nil, pgx.ErrNoRows
}

func (r *fakeInventoryRepo) List(ctx context.Context, limit, offset int) ([]*models.Inventory, error) {
	return nil, nil
}

func (r *fakeInventoryRepo) ListLowStock(ctx context.Context) ([]*models.Inventory, error) {
	return nil, nil
}

func (r *fakeInventoryRepo) GetForUpdateTx(ctx context.Context, tx pgx.Tx, itemID uuid.UUID) (*models.Inventory, error) {
	lt := tx.(*ledgerTx)
	if itemID != r.itemID {
		return nil, pgx.ErrNoRows
	}
	qty := lt.state.quantity
	if lt.qtyDirty {
		qty = lt.stagedQty
	}
	return &models.Inventory{ItemID: itemID, QuantityInStock: qty, ReorderLevel: lt.state.reorder}, nil
}

func (r *fakeInventoryRepo) UpdateQuantityTx(ctx context.Context, tx pgx.Tx, itemID uuid.UUID, quantity int) error {
	lt := tx.(*ledgerTx)
	lt.stagedQty = quantity
	lt.qtyDirty = true
	return nil
}

type fakeAlertRepo struct{}

func (r *fakeAlertRepo) CreateTx(ctx context.Context, tx pgx.Tx, alert *models.InventoryAlert) error {
	tx.(*ledgerTx).stagedAlerts++
	return nil
}

func (r *fakeAlertRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.InventoryAlert, error) {
	return nil, pgx.ErrNoRows
}

func (r *fakeAlertRepo) List(ctx context.Context, limit, offset int) ([]*models.InventoryAlert, error) {
	return nil, nil
}

func (r *fakeAlertRepo) ListUnactioned(ctx context.Context) ([]*models.InventoryAlert, error) {
	return nil, nil
}

type fakeSaleRepo struct{}

func (r *fakeSaleRepo) CreateTx(ctx context.Context, tx pgx.Tx, sale *models.Sale) error {
	tx.(*ledgerTx).stagedSales++
	return nil
}

func (r *fakeSaleRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Sale, error) {
	return nil, pgx.ErrNoRows
}

func (r *fakeSaleRepo) List(ctx context.Context, limit, offset int) ([]*models.Sale, error) {
	return nil, nil
}

func (r *fakeSaleRepo) ListByStore(ctx context.Context, storeID uuid.UUID, limit, offset int) ([]*models.Sale, error) {
	return nil, nil
}

type fakeItemRepo struct {
	itemID uuid.UUID
	state  *ledgerState
}

func (r *fakeItemRepo) CreateTx(ctx context.Context, tx pgx.Tx, item *models.ClothingItem) error {
	return nil
}
func (r *fakeItemRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.ClothingItem, error) {
	return nil, pgx.ErrNoRows
}
func (r *fakeItemRepo) GetPriceTx(ctx context.Context, tx pgx.Tx, id uuid.UUID) (float64, error) {
	if id != r.itemID {
		return 0, pgx.ErrNoRows
	}
	return r.state.price, nil
}
func (r *fakeItemRepo) Update(ctx context.Context, item *models.ClothingItem) error  { return nil }
func (r *fakeItemRepo) Delete(ctx context.Context, id uuid.UUID) error               { return nil }
func (r *fakeItemRepo) List(ctx context.Context, limit, offset int) ([]*models.ClothingItem, error) {
	return nil, nil
}
func (r *fakeItemRepo) ListByCollection(ctx context.Context, collectionID uuid.UUID) ([]*models.ClothingItem, error) {
	return nil, nil
}
func (r *fakeItemRepo) ListByDesigner(ctx context.Context, designerID uuid.UUID) ([]*models.ClothingItem, error) {
	return nil, nil
}
func (r *fakeItemRepo) SetImageObject(ctx context.Context, id uuid.UUID, objectName string) error {
	return nil
}

type fakeStoreRepo struct{ storeID uuid.UUID }

func (r *fakeStoreRepo) Create(ctx context.Context, store *models.Store) error { return nil }
func (r *fakeStoreRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Store, error) {
	if id != r.storeID {
		return nil, pgx.ErrNoRows
	}
	return &models.Store{ID: id, Name: "Flagship"}, nil
}
func (r *fakeStoreRepo) Update(ctx context.Context, store *models.Store) error { return nil }
func (r *fakeStoreRepo) Delete(ctx context.Context, id uuid.UUID) error        { return nil }
func (r *fakeStoreRepo) List(ctx context.Context, limit, offset int) ([]*models.Store, error) {
	return nil, nil
}

// TestProcessSale_ConcurrentSalesNeverOversell hammers one item from many
// goroutines and checks the invariant the row lock is there to protect:
// committed sales never exceed the starting stock and the final quantity
// is never negative.
func TestProcessSale_ConcurrentSalesNeverOversell(t *testing.T) {
	itemID := uuid.New()
	storeID := uuid.New()
	state := &ledgerState{quantity: 5, reorder: 0, price: 120.00}
	db := &ledgerDB{state: state}

	inventoryService := NewInventoryService(db, &fakeInventoryRepo{itemID: itemID}, &fakeAlertRepo{}, noopCache{})
	saleService := NewSaleService(db, &fakeSaleRepo{}, &fakeItemRepo{itemID: itemID, state: state}, &fakeStoreRepo{storeID: storeID}, inventoryService, noopCache{})

	const attempts = 20
	var wg sync.WaitGroup
	results := make(chan error, attempts)

	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := saleService.ProcessSale(context.Background(), SaleRequest{
				ItemID:   itemID,
				StoreID:  storeID,
				Quantity: 1,
			})
			results <- err
		}()
	}
	wg.Wait()
	close(results)

	succeeded, rejected := 0, 0
	for err := range results {
		switch {
		case err == nil:
			succeeded++
		case errors.Is(err, common.ErrInsufficientStock):
			rejected++
		default:
			t.Fatalf("unexpected error: %v", err)
		}
	}

	assert.Equal(t, 5, succeeded)
	assert.Equal(t, 15, rejected)
	assert.Equal(t, 0, state.quantity)
	assert.Equal(t, 5, state.sales)
	assert.GreaterOrEqual(t, state.quantity, 0)
}
