package storage

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStoreRoundTrip(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	_, err := store.Load(ctx, KeyCart)
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, store.Save(ctx, KeyCart, []byte(`{"lines":[]}`)))
	data, err := store.Load(ctx, KeyCart)
	require.NoError(t, err)
	assert.Equal(t, []byte(`{"lines":[]}`), data)

	require.NoError(t, store.Delete(ctx, KeyCart))
	_, err = store.Load(ctx, KeyCart)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryStoreCopiesData(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	src := []byte("abc")
	require.NoError(t, store.Save(ctx, KeyProducts, src))
	src[0] = 'x'

	data, err := store.Load(ctx, KeyProducts)
	require.NoError(t, err)
	assert.Equal(t, []byte("abc"), data)
}

func TestMemoryStoreFailSaves(t *testing.T) {
	store := NewMemoryStore()
	store.FailSaves = assert.AnError

	err := store.Save(context.Background(), KeyHistory, []byte("x"))
	assert.ErrorIs(t, err, assert.AnError)
}
