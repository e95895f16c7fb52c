package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/minagames/connect4/testing/suite"
)

func TestRedisSaveRepository_RoundTrip(t *testing.T) {
	ctx, st := suite.New(t)

	saves := NewRedisSaveRepository(st.Storage)

	// Given: a game in progress
	game := testGame()

	// When: saving and loading it back
	err := saves.Save(ctx, "slot1", game)
	require.NoError(t, err)

	loaded, err := saves.Load(ctx, "slot1")

	// Then: the loaded game is identical
	require.NoError(t, err)
	assert.Equal(t, game, loaded)
}

func TestRedisSaveRepository_Load_NotFound(t *testing.T) {
	ctx, st := suite.New(t)

	saves := NewRedisSaveRepository(st.Storage)

	// When: loading a slot that was never saved
	_, err := saves.Load(ctx, "nothing")

	// Then: an ErrSaveNotFound error should be returned
	require.ErrorIs(t, err, ErrSaveNotFound)
}

func TestRedisSaveRepository_Delete(t *testing.T) {
	t.Run("Delete_Success", func(t *testing.T) {
		ctx, st := suite.New(t)

		saves := NewRedisSaveRepository(st.Storage)

		// Given: a stored save
		require.NoError(t, saves.Save(ctx, "slot1", testGame()))

		// When: deleting it
		err := saves.Delete(ctx, "slot1")

		// Then: it is gone
		require.NoError(t, err)

		_, err = saves.Load(ctx, "slot1")
		require.ErrorIs(t, err, ErrSaveNotFound)
	})

	t.Run("Delete_NotFound", func(t *testing.T) {
		ctx, st := suite.New(t)

		saves := NewRedisSaveRepository(st.Storage)

		// When: deleting a slot that was never saved
		err := saves.Delete(ctx, "nothing")

		// Then: an ErrSaveNotFound error should be returned
		require.ErrorIs(t, err, ErrSaveNotFound)
	})
}

func TestRedisSaveRepository_List(t *testing.T) {
	ctx, st := suite.New(t)

	saves := NewRedisSaveRepository(st.Storage)

	// Given: two stored saves
	require.NoError(t, saves.Save(ctx, "sunday", testGame()))
	require.NoError(t, saves.Save(ctx, "friday", testGame()))

	// When: listing slots
	slots, err := saves.List(ctx)

	// Then: both come back sorted
	require.NoError(t, err)
	assert.Equal(t, []string{"friday", "sunday"}, slots)
}
