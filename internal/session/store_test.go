package session

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/himalayanmicrofin/hmfin/internal/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestStore(t *testing.T) *Store {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "session.db")

	store, err := NewStore(dbPath)
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	require.NoError(t, store.Migrate(context.Background()))
	return store
}

func TestStore_SaveLoadClear(t *testing.T) {
	store := createTestStore(t)
	ctx := context.Background()

	// Empty store reports not logged in.
	_, err := store.Load(ctx)
	assert.True(t, errors.Is(err, common.ErrNotLoggedIn))

	sess := Session{
		Token:  "tok-abc123",
		Phone:  "9812345678",
		Name:   "Asha Member",
		Role:   "member",
		UserID: 42,
	}
	require.NoError(t, store.Save(ctx, sess))

	got, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, "tok-abc123", got.Token)
	assert.Equal(t, "9812345678", got.Phone)
	assert.Equal(t, "Asha Member", got.Name)
	assert.Equal(t, int64(42), got.UserID)
	assert.False(t, got.SavedAt.IsZero())

	require.NoError(t, store.Clear(ctx))
	_, err = store.Load(ctx)
	assert.True(t, errors.Is(err, common.ErrNotLoggedIn))
}

func TestStore_SaveReplacesPrevious(t *testing.T) {
	store := createTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, Session{Token: "first", UserID: 1}))
	require.NoError(t, store.Save(ctx, Session{Token: "second", UserID: 2}))

	got, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, "second", got.Token)
	assert.Equal(t, int64(2), got.UserID)
}

func TestStore_SaveRequiresToken(t *testing.T) {
	store := createTestStore(t)
	err := store.Save(context.Background(), Session{Phone: "9812345678"})
	require.Error(t, err)
}

func TestStore_ClearEmptyIsNoop(t *testing.T) {
	store := createTestStore(t)
	assert.NoError(t, store.Clear(context.Background()))
}

func TestNewStore_EmptyPath(t *testing.T) {
	_, err := NewStore("")
	require.Error(t, err)
	assert.True(t, errors.Is(err, common.ErrInvalidConfig))
}
