package storage

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSQLite(t *testing.T) *SQLiteStore {
	t.Helper()
	store, err := NewSQLiteStore(filepath.Join(t.TempDir(), "ledger.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func TestSQLiteRoundTrip(t *testing.T) {
	store := newTestSQLite(t)
	ctx := context.Background()

	_, err := store.Load(ctx, KeyProducts)
	assert.ErrorIs(t, err, ErrNotFound)

	snapshot := []byte(`[{"id":1,"name":"Mouse","unit_price":25,"stock":5}]`)
	require.NoError(t, store.Save(ctx, KeyProducts, snapshot))

	data, err := store.Load(ctx, KeyProducts)
	require.NoError(t, err)
	assert.Equal(t, snapshot, data)
}

func TestSQLiteOverwritesWholesale(t *testing.T) {
	store := newTestSQLite(t)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, KeyCart, []byte("v1")))
	require.NoError(t, store.Save(ctx, KeyCart, []byte("v2")))

	data, err := store.Load(ctx, KeyCart)
	require.NoError(t, err)
	assert.Equal(t, []byte("v2"), data)
}

func TestSQLiteKeysAreIndependent(t *testing.T) {
	store := newTestSQLite(t)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, KeyProducts, []byte("products")))
	require.NoError(t, store.Save(ctx, KeyHistory, []byte("history")))
	require.NoError(t, store.Delete(ctx, KeyProducts))

	_, err := store.Load(ctx, KeyProducts)
	assert.ErrorIs(t, err, ErrNotFound)

	data, err := store.Load(ctx, KeyHistory)
	require.NoError(t, err)
	assert.Equal(t, []byte("history"), data)
}

func TestSQLitePersistsAcrossOpens(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "ledger.db")
	ctx := context.Background()

	first, err := NewSQLiteStore(path)
	require.NoError(t, err)
	require.NoError(t, first.Save(ctx, KeyHistory, []byte("records")))
	require.NoError(t, first.Close())

	second, err := NewSQLiteStore(path)
	require.NoError(t, err)
	defer second.Close()

	data, err := second.Load(ctx, KeyHistory)
	require.NoError(t, err)
	assert.Equal(t, []byte("records"), data)
}
