package repository

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/minagames/connect4/internal/entity"
	"github.com/minagames/connect4/internal/repository/storage"
)

func newSQLiteRepo(t *testing.T) (context.Context, SaveRepository) {
	t.Helper()

	ctx := context.Background()

	sqliteStorage, err := storage.NewSQLiteStorage(filepath.Join(t.TempDir(), "connect4.db"))
	require.NoError(t, err)
	t.Cleanup(func() {
		require.NoError(t, sqliteStorage.Close())
	})

	require.NoError(t, sqliteStorage.Init(ctx))

	return ctx, NewSQLiteSaveRepository(sqliteStorage.Connection)
}

func TestSQLiteSaveRepository_RoundTrip(t *testing.T) {
	ctx, saves := newSQLiteRepo(t)

	// Given: an early snapshot already stored in the slot
	require.NoError(t, saves.Save(ctx, "slot1", entity.NewGame(6, 7)))

	// When: overwriting the slot with a later snapshot and loading it
	game := testGame()
	require.NoError(t, saves.Save(ctx, "slot1", game))

	loaded, err := saves.Load(ctx, "slot1")

	// Then: the latest snapshot wins
	require.NoError(t, err)
	assert.Equal(t, game, loaded)
}

func TestSQLiteSaveRepository_NotFound(t *testing.T) {
	ctx, saves := newSQLiteRepo(t)

	_, err := saves.Load(ctx, "nothing")
	require.ErrorIs(t, err, ErrSaveNotFound)

	err = saves.Delete(ctx, "nothing")
	require.ErrorIs(t, err, ErrSaveNotFound)
}

func TestSQLiteSaveRepository_ListAndDelete(t *testing.T) {
	ctx, saves := newSQLiteRepo(t)

	require.NoError(t, saves.Save(ctx, "b", testGame()))
	require.NoError(t, saves.Save(ctx, "a", testGame()))

	slots, err := saves.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, slots)

	require.NoError(t, saves.Delete(ctx, "a"))

	slots, err = saves.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"b"}, slots)
}
