package session

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStoreCreateGet(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	require.NoError(t, store.Create(ctx, "sid-1", "user-1", time.Hour))

	userID, err := store.Get(ctx, "sid-1")
	require.NoError(t, err)
	assert.Equal(t, "user-1", userID)
}

func TestMemoryStoreUnknownSession(t *testing.T) {
	store := NewMemoryStore()

	_, err := store.Get(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryStoreExpiry(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	require.NoError(t, store.Create(ctx, "sid-1", "user-1", -time.Second))

	_, err := store.Get(ctx, "sid-1")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryStoreDelete(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	require.NoError(t, store.Create(ctx, "sid-1", "user-1", time.Hour))
	require.NoError(t, store.Delete(ctx, "sid-1"))

	_, err := store.Get(ctx, "sid-1")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryStoreReplaceSession(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	require.NoError(t, store.Create(ctx, "sid-1", "user-1", time.Hour))
	require.NoError(t, store.Create(ctx, "sid-1", "user-2", time.Hour))

	userID, err := store.Get(ctx, "sid-1")
	require.NoError(t, err)
	assert.Equal(t, "user-2", userID)
}
