package boltdb

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.etcd.io/bbolt"

	"github.com/iudanet/bookshelf/internal/client/storage"
)

// создаём тестовое BoltDB хранилище с управляемыми часами
func createTestAuthStorage(t *testing.T) (*Storage, *time.Time) {
	t.Helper()

	store, err := New(context.Background(), filepath.Join(t.TempDir(), "auth_test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { require.NoError(t, store.Close()) })

	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	store.now = func() time.Time { return now }
	return store, &now
}

func TestStorage_SaveGetDeleteAuth(t *testing.T) {
	ctx := context.Background()
	store, now := createTestAuthStorage(t)

	auth := &storage.AuthData{
		Username:  "alice",
		Email:     "a@x.com",
		UserID:    "acc-1",
		Token:     "jwt-token",
		ExpiresAt: now.Add(2 * time.Hour).Unix(),
	}

	_, err := store.GetAuth(ctx)
	assert.ErrorIs(t, err, storage.ErrAuthNotFound)

	require.NoError(t, store.SaveAuth(ctx, auth))

	got, err := store.GetAuth(ctx)
	require.NoError(t, err)
	assert.Equal(t, auth, got)

	ok, err := store.IsAuthenticated(ctx)
	require.NoError(t, err)
	assert.True(t, ok)

	// токен истек
	*now = now.Add(2 * time.Hour)
	ok, err = store.IsAuthenticated(ctx)
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, store.DeleteAuth(ctx))

	_, err = store.GetAuth(ctx)
	assert.ErrorIs(t, err, storage.ErrAuthNotFound)

	assert.ErrorIs(t, store.DeleteAuth(ctx), storage.ErrAuthNotFound)
}

func TestStorage_SaveAuth_ReplacesSession(t *testing.T) {
	ctx := context.Background()
	store, _ := createTestAuthStorage(t)

	require.NoError(t, store.SaveAuth(ctx, &storage.AuthData{Username: "alice", Token: "first"}))
	require.NoError(t, store.SaveAuth(ctx, &storage.AuthData{Username: "bob", Token: "second"}))

	got, err := store.GetAuth(ctx)
	require.NoError(t, err)
	assert.Equal(t, "bob", got.Username)
	assert.Equal(t, "second", got.Token)
}

func TestStorage_IsAuthenticated_NoSession(t *testing.T) {
	store, _ := createTestAuthStorage(t)

	ok, err := store.IsAuthenticated(context.Background())
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestStorage_BucketMissing(t *testing.T) {
	ctx := context.Background()
	store, _ := createTestAuthStorage(t)

	require.NoError(t, store.db.Update(func(tx *bbolt.Tx) error {
		return tx.DeleteBucket(bucketAuth)
	}))

	tests := []struct {
		call func() error
		name string
	}{
		{name: "save", call: func() error { return store.SaveAuth(ctx, &storage.AuthData{Username: "test"}) }},
		{name: "get", call: func() error { _, err := store.GetAuth(ctx); return err }},
		{name: "delete", call: func() error { return store.DeleteAuth(ctx) }},
		{name: "is authenticated", call: func() error { _, err := store.IsAuthenticated(ctx); return err }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.call()
			require.Error(t, err)
			assert.ErrorIs(t, err, storage.ErrBucketMissing)
		})
	}
}
