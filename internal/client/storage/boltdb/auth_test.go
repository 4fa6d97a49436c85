package boltdb

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/filesmanager/internal/client/storage"
)

// создаём тестовое BoltDB хранилище
func createTestAuthStorage(t *testing.T) *Storage {
	t.Helper()

	store, err := New(context.Background(), filepath.Join(t.TempDir(), "auth_test.db"))
	require.NoError(t, err)
	t.Cleanup(func() {
		require.NoError(t, store.Close())
	})

	return store
}

func TestStorage_SaveGetDeleteAuth(t *testing.T) {
	ctx := context.Background()
	store := createTestAuthStorage(t)

	auth := &storage.AuthData{
		Server:    "http://localhost:5000",
		Email:     "bob@dwarves.com",
		UserID:    "user-id-123",
		Token:     "token-1",
		CreatedAt: time.Now().UTC().Truncate(time.Second),
	}

	_, err := store.GetAuth(ctx, auth.Server)
	assert.ErrorIs(t, err, storage.ErrAuthNotFound)

	require.NoError(t, store.SaveAuth(ctx, auth))

	got, err := store.GetAuth(ctx, auth.Server)
	require.NoError(t, err)
	assert.Equal(t, auth.Email, got.Email)
	assert.Equal(t, auth.UserID, got.UserID)
	assert.Equal(t, auth.Token, got.Token)
	assert.True(t, auth.CreatedAt.Equal(got.CreatedAt))

	ok, err := store.IsAuthenticated(ctx, auth.Server)
	require.NoError(t, err)
	assert.True(t, ok)

	require.NoError(t, store.DeleteAuth(ctx, auth.Server))

	_, err = store.GetAuth(ctx, auth.Server)
	assert.ErrorIs(t, err, storage.ErrAuthNotFound)

	ok, err = store.IsAuthenticated(ctx, auth.Server)
	require.NoError(t, err)
	assert.False(t, ok)

	// Повторное удаление
	assert.ErrorIs(t, store.DeleteAuth(ctx, auth.Server), storage.ErrAuthNotFound)
}

func TestStorage_AuthPerServer(t *testing.T) {
	ctx := context.Background()
	store := createTestAuthStorage(t)

	require.NoError(t, store.SaveAuth(ctx, &storage.AuthData{Server: "http://a", Token: "ta"}))
	require.NoError(t, store.SaveAuth(ctx, &storage.AuthData{Server: "http://b", Token: "tb"}))

	a, err := store.GetAuth(ctx, "http://a")
	require.NoError(t, err)
	assert.Equal(t, "ta", a.Token)

	require.NoError(t, store.DeleteAuth(ctx, "http://a"))

	b, err := store.GetAuth(ctx, "http://b")
	require.NoError(t, err)
	assert.Equal(t, "tb", b.Token)
}

func TestStorage_SaveAuth_Overwrites(t *testing.T) {
	ctx := context.Background()
	store := createTestAuthStorage(t)

	require.NoError(t, store.SaveAuth(ctx, &storage.AuthData{Server: "http://a", Token: "old"}))
	require.NoError(t, store.SaveAuth(ctx, &storage.AuthData{Server: "http://a", Token: "new"}))

	got, err := store.GetAuth(ctx, "http://a")
	require.NoError(t, err)
	assert.Equal(t, "new", got.Token)
}

func TestStorage_SaveAuth_NoServer(t *testing.T) {
	store := createTestAuthStorage(t)
	assert.Error(t, store.SaveAuth(context.Background(), &storage.AuthData{Token: "t"}))
}

func TestStorage_Closed(t *testing.T) {
	ctx := context.Background()
	store, err := New(ctx, filepath.Join(t.TempDir(), "closed.db"))
	require.NoError(t, err)
	require.NoError(t, store.Close())

	_, err = store.GetAuth(ctx, "http://a")
	assert.ErrorIs(t, err, storage.ErrStorageClosed)
	assert.ErrorIs(t, store.SaveAuth(ctx, &storage.AuthData{Server: "http://a"}), storage.ErrStorageClosed)
	assert.ErrorIs(t, store.DeleteAuth(ctx, "http://a"), storage.ErrStorageClosed)
}
