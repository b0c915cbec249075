package usecase

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tiendita/cart-ledger/internal/cart"
	"github.com/tiendita/cart-ledger/internal/catalog"
	catalogUC "github.com/tiendita/cart-ledger/internal/catalog/usecase"
	"github.com/tiendita/cart-ledger/internal/model"
	"github.com/tiendita/cart-ledger/internal/storage"
	"go.uber.org/zap"
)

type fixture struct {
	store   *storage.MemoryStore
	catalog catalog.UseCase
	cart    cart.UseCase
}

func newFixture(t *testing.T, products []model.Product) *fixture {
	t.Helper()
	store := storage.NewMemoryStore()
	data, err := json.Marshal(products)
	require.NoError(t, err)
	require.NoError(t, store.Save(context.Background(), storage.KeyProducts, data))

	cat := catalogUC.NewCatalogUseCase(store, zap.NewNop())
	return &fixture{
		store:   store,
		catalog: cat,
		cart:    NewCartUseCase(cat, store, zap.NewNop()),
	}
}

func (f *fixture) stockOf(t *testing.T, id int64) int {
	t.Helper()
	p, err := f.catalog.FindByID(context.Background(), id)
	require.NoError(t, err)
	return p.Stock
}

func TestAddItemReservesStock(t *testing.T) {
	f := newFixture(t, []model.Product{{ID: 1, Name: "Mouse", UnitPrice: 25, Stock: 5}})
	ctx := context.Background()

	res, err := f.cart.AddItem(ctx, 1)
	require.NoError(t, err)
	require.Len(t, res.Lines, 1)
	assert.Equal(t, 1, res.Lines[0].Quantity)
	assert.Equal(t, 4, res.Product.Stock)
	assert.Equal(t, 25.0, res.Total)
	assert.True(t, res.Persisted)
}

func TestRepeatedAddIncrementsLineInPlace(t *testing.T) {
	f := newFixture(t, []model.Product{{ID: 1, Name: "Mouse", UnitPrice: 25, Stock: 5}})
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		_, err := f.cart.AddItem(ctx, 1)
		require.NoError(t, err)
	}

	lines, err := f.cart.Items(ctx)
	require.NoError(t, err)
	require.Len(t, lines, 1)
	assert.Equal(t, 3, lines[0].Quantity)
	assert.Equal(t, 2, f.stockOf(t, 1))
}

func TestAddUnknownProductChangesNothing(t *testing.T) {
	f := newFixture(t, []model.Product{{ID: 1, Name: "Mouse", UnitPrice: 25, Stock: 5}})
	ctx := context.Background()

	_, err := f.cart.AddItem(ctx, 99)
	assert.ErrorIs(t, err, catalog.ErrNotFound)

	lines, err := f.cart.Items(ctx)
	require.NoError(t, err)
	assert.Empty(t, lines)
	assert.Equal(t, 5, f.stockOf(t, 1))
}

func TestAddOutOfStockIsNoOp(t *testing.T) {
	f := newFixture(t, []model.Product{{ID: 1, Name: "Mouse", UnitPrice: 25, Stock: 0}})
	ctx := context.Background()

	_, err := f.cart.AddItem(ctx, 1)
	assert.ErrorIs(t, err, cart.ErrOutOfStock)

	lines, err := f.cart.Items(ctx)
	require.NoError(t, err)
	assert.Empty(t, lines)
	assert.Equal(t, 0, f.stockOf(t, 1))
}

func TestRemoveItemRestoresFullQuantity(t *testing.T) {
	f := newFixture(t, []model.Product{{ID: 1, Name: "Mouse", UnitPrice: 25, Stock: 5}})
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		_, err := f.cart.AddItem(ctx, 1)
		require.NoError(t, err)
	}
	require.Equal(t, 2, f.stockOf(t, 1))

	res, err := f.cart.RemoveItem(ctx, 1)
	require.NoError(t, err)
	assert.Empty(t, res.Lines)
	assert.Equal(t, 5, res.Product.Stock)
	assert.Zero(t, res.Total)
}

func TestRemoveAbsentLineIsNoOp(t *testing.T) {
	f := newFixture(t, []model.Product{{ID: 1, Name: "Mouse", UnitPrice: 25, Stock: 5}})
	ctx := context.Background()

	res, err := f.cart.RemoveItem(ctx, 1)
	require.NoError(t, err)
	assert.Empty(t, res.Lines)
	assert.Equal(t, 5, f.stockOf(t, 1))
}

func TestClearRestoresEverything(t *testing.T) {
	f := newFixture(t, []model.Product{
		{ID: 1, Name: "Mouse", UnitPrice: 25, Stock: 5},
		{ID: 2, Name: "Teclado", UnitPrice: 120, Stock: 2},
	})
	ctx := context.Background()

	_, err := f.cart.AddItem(ctx, 1)
	require.NoError(t, err)
	_, err = f.cart.AddItem(ctx, 1)
	require.NoError(t, err)
	_, err = f.cart.AddItem(ctx, 2)
	require.NoError(t, err)

	res, err := f.cart.Clear(ctx)
	require.NoError(t, err)
	assert.Empty(t, res.Lines)
	assert.Zero(t, res.Total)

	total, err := f.cart.Total(ctx)
	require.NoError(t, err)
	assert.Zero(t, total)

	assert.Equal(t, 5, f.stockOf(t, 1))
	assert.Equal(t, 2, f.stockOf(t, 2))
}

func TestConservationOverMixedSequence(t *testing.T) {
	const initialStock = 10
	f := newFixture(t, []model.Product{{ID: 1, Name: "Mouse", UnitPrice: 25, Stock: initialStock}})
	ctx := context.Background()

	script := []struct {
		op string
	}{
		{"add"}, {"add"}, {"add"}, {"remove"}, {"add"}, {"add"}, {"add"},
	}
	for _, step := range script {
		var err error
		switch step.op {
		case "add":
			_, err = f.cart.AddItem(ctx, 1)
		case "remove":
			_, err = f.cart.RemoveItem(ctx, 1)
		}
		require.NoError(t, err)

		// stock + reserved == stock at load, after every step.
		lines, lerr := f.cart.Items(ctx)
		require.NoError(t, lerr)
		reserved := 0
		for _, l := range lines {
			if l.Product.ID == 1 {
				reserved = l.Quantity
			}
		}
		assert.Equal(t, initialStock, f.stockOf(t, 1)+reserved)
	}
}

func TestConsumeEmptiesWithoutRestoring(t *testing.T) {
	f := newFixture(t, []model.Product{{ID: 1, Name: "Mouse", UnitPrice: 25, Stock: 5}})
	ctx := context.Background()

	_, err := f.cart.AddItem(ctx, 1)
	require.NoError(t, err)
	_, err = f.cart.AddItem(ctx, 1)
	require.NoError(t, err)

	res, err := f.cart.Consume(ctx)
	require.NoError(t, err)
	require.Len(t, res.Lines, 1)
	assert.Equal(t, 2, res.Lines[0].Quantity)
	assert.Equal(t, 50.0, res.Total)

	lines, err := f.cart.Items(ctx)
	require.NoError(t, err)
	assert.Empty(t, lines)
	// Terminal consumption: the 2 reserved units stay gone.
	assert.Equal(t, 3, f.stockOf(t, 1))
}

func TestCartRestoredFromSnapshot(t *testing.T) {
	f := newFixture(t, []model.Product{{ID: 1, Name: "Mouse", UnitPrice: 25, Stock: 5}})
	ctx := context.Background()

	_, err := f.cart.AddItem(ctx, 1)
	require.NoError(t, err)
	_, err = f.cart.AddItem(ctx, 1)
	require.NoError(t, err)

	// A fresh usecase over the same store sees the persisted cart.
	restored := NewCartUseCase(f.catalog, f.store, zap.NewNop())
	lines, err := restored.Items(ctx)
	require.NoError(t, err)
	require.Len(t, lines, 1)
	assert.Equal(t, 2, lines[0].Quantity)

	total, err := restored.Total(ctx)
	require.NoError(t, err)
	assert.Equal(t, 50.0, total)
}

func TestSaveFailureDegradesButApplies(t *testing.T) {
	f := newFixture(t, []model.Product{{ID: 1, Name: "Mouse", UnitPrice: 25, Stock: 5}})
	ctx := context.Background()

	// Warm both stores so the snapshots are loaded before saves fail.
	_, err := f.cart.Items(ctx)
	require.NoError(t, err)
	require.NoError(t, f.catalog.Initialize(ctx))

	f.store.FailSaves = assert.AnError

	res, err := f.cart.AddItem(ctx, 1)
	require.NoError(t, err)
	assert.False(t, res.Persisted)
	require.Len(t, res.Lines, 1)
	assert.Equal(t, 4, f.stockOf(t, 1))
}

func TestTotalEmptyCartIsZero(t *testing.T) {
	f := newFixture(t, []model.Product{{ID: 1, Name: "Mouse", UnitPrice: 25, Stock: 5}})

	total, err := f.cart.Total(context.Background())
	require.NoError(t, err)
	assert.Zero(t, total)
}
