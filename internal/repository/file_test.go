package repository

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/minagames/connect4/internal/entity"
)

func testGame() *entity.Game {
	game := entity.NewGame(6, 7)
	game.Columns[3] = append(game.Columns[3], entity.DiskRed)
	game.Moves = []entity.Move{{Column: 3, Disk: entity.DiskRed}}
	game.Turn = entity.DiskBlue

	return game
}

func TestFileSaveRepository_RoundTrip(t *testing.T) {
	ctx := context.Background()
	saves := NewFileSaveRepository(t.TempDir())

	// Given: a game in progress
	game := testGame()

	// When: saving and loading it back
	require.NoError(t, saves.Save(ctx, "slot1", game))
	loaded, err := saves.Load(ctx, "slot1")

	// Then: the loaded game is identical
	require.NoError(t, err)
	assert.Equal(t, game, loaded)
}

func TestFileSaveRepository_Load(t *testing.T) {
	t.Run("Load_NotFound", func(t *testing.T) {
		ctx := context.Background()
		saves := NewFileSaveRepository(t.TempDir())

		// When: loading a slot that was never saved
		_, err := saves.Load(ctx, "nothing")

		// Then: ErrSaveNotFound is returned
		require.ErrorIs(t, err, ErrSaveNotFound)
	})

	t.Run("Load_CorruptFile", func(t *testing.T) {
		ctx := context.Background()
		dir := t.TempDir()
		saves := NewFileSaveRepository(dir)

		// Given: a save file with junk in it
		require.NoError(t, os.WriteFile(filepath.Join(dir, "broken.json"), []byte("{not json"), 0o644))

		// When: loading it
		_, err := saves.Load(ctx, "broken")

		// Then: an unmarshal error is returned, not a panic
		require.Error(t, err)
		assert.NotErrorIs(t, err, ErrSaveNotFound)
	})

	t.Run("Load_InvalidSlotName", func(t *testing.T) {
		ctx := context.Background()
		saves := NewFileSaveRepository(t.TempDir())

		// When: using a slot name that could escape the save directory
		_, err := saves.Load(ctx, "../etc/passwd")

		// Then: the name is rejected outright
		require.ErrorIs(t, err, ErrInvalidSlot)
	})
}

func TestFileSaveRepository_Delete(t *testing.T) {
	t.Run("Delete_Success", func(t *testing.T) {
		ctx := context.Background()
		saves := NewFileSaveRepository(t.TempDir())

		require.NoError(t, saves.Save(ctx, "slot1", testGame()))

		// When: deleting the slot
		require.NoError(t, saves.Delete(ctx, "slot1"))

		// Then: it is gone
		_, err := saves.Load(ctx, "slot1")
		require.ErrorIs(t, err, ErrSaveNotFound)
	})

	t.Run("Delete_NotFound", func(t *testing.T) {
		ctx := context.Background()
		saves := NewFileSaveRepository(t.TempDir())

		err := saves.Delete(ctx, "nothing")

		require.ErrorIs(t, err, ErrSaveNotFound)
	})
}

func TestFileSaveRepository_List(t *testing.T) {
	ctx := context.Background()
	saves := NewFileSaveRepository(t.TempDir())

	t.Run("Empty directory lists nothing", func(t *testing.T) {
		slots, err := saves.List(ctx)

		require.NoError(t, err)
		assert.Empty(t, slots)
	})

	t.Run("Lists saved slots sorted", func(t *testing.T) {
		require.NoError(t, saves.Save(ctx, "sunday", testGame()))
		require.NoError(t, saves.Save(ctx, "friday", testGame()))

		slots, err := saves.List(ctx)

		require.NoError(t, err)
		assert.Equal(t, []string{"friday", "sunday"}, slots)
	})
}
