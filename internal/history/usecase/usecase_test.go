package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tiendita/cart-ledger/internal/model"
	"github.com/tiendita/cart-ledger/internal/storage"
	"go.uber.org/zap"
)

func record(id string, total float64) model.PurchaseRecord {
	return model.PurchaseRecord{
		ID:            id,
		CreatedAt:     time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC),
		Lines:         []model.CartLine{{Product: model.ProductRef{ID: 1, Name: "Mouse", UnitPrice: total}, Quantity: 1}},
		Total:         total,
		PaymentMethod: model.PaymentCard,
	}
}

func TestAppendAndList(t *testing.T) {
	store := storage.NewMemoryStore()
	uc := NewHistoryUseCase(store, zap.NewNop())
	ctx := context.Background()

	persisted, err := uc.Append(ctx, record("a", 10))
	require.NoError(t, err)
	assert.True(t, persisted)
	_, err = uc.Append(ctx, record("b", 20))
	require.NoError(t, err)

	records, err := uc.List(ctx)
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "a", records[0].ID)
	assert.Equal(t, "b", records[1].ID)
}

func TestHistorySurvivesRestart(t *testing.T) {
	store := storage.NewMemoryStore()
	ctx := context.Background()

	first := NewHistoryUseCase(store, zap.NewNop())
	_, err := first.Append(ctx, record("a", 10))
	require.NoError(t, err)

	second := NewHistoryUseCase(store, zap.NewNop())
	records, err := second.List(ctx)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, record("a", 10), records[0])
}

func TestAppendDegradesOnSaveFailure(t *testing.T) {
	store := storage.NewMemoryStore()
	store.FailSaves = assert.AnError
	uc := NewHistoryUseCase(store, zap.NewNop())
	ctx := context.Background()

	persisted, err := uc.Append(ctx, record("a", 10))
	require.NoError(t, err)
	assert.False(t, persisted)

	// The record is still visible in memory.
	records, err := uc.List(ctx)
	require.NoError(t, err)
	assert.Len(t, records, 1)
}
