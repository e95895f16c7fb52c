package application

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/minagames/connect4/internal/config"
)

func TestBuildSaveRepository(t *testing.T) {
	ctx := context.Background()

	t.Run("File backend", func(t *testing.T) {
		// Given: a config pointing at the file backend
		conf := &config.Config{}
		conf.Storage.Backend = config.BackendFile
		conf.Storage.File.Dir = t.TempDir()

		// When: the repository is built
		saves, closeStorage, err := buildSaveRepository(ctx, conf)

		// Then: it comes up with a working closer
		require.NoError(t, err)
		assert.NotNil(t, saves)
		assert.NoError(t, closeStorage())
	})

	t.Run("Empty backend falls back to file", func(t *testing.T) {
		conf := &config.Config{}
		conf.Storage.File.Dir = t.TempDir()

		saves, closeStorage, err := buildSaveRepository(ctx, conf)

		require.NoError(t, err)
		assert.NotNil(t, saves)
		assert.NoError(t, closeStorage())
	})

	t.Run("SQLite backend", func(t *testing.T) {
		// Given: a config pointing at a fresh sqlite database
		conf := &config.Config{}
		conf.Storage.Backend = config.BackendSQLite
		conf.Storage.SQLite.Path = filepath.Join(t.TempDir(), "saves.db")

		// When: the repository is built
		saves, closeStorage, err := buildSaveRepository(ctx, conf)

		// Then: the schema is initialized and the closer releases the database
		require.NoError(t, err)
		assert.NotNil(t, saves)
		assert.NoError(t, closeStorage())
	})

	t.Run("Unknown backend is rejected", func(t *testing.T) {
		conf := &config.Config{}
		conf.Storage.Backend = "tape"

		_, _, err := buildSaveRepository(ctx, conf)

		assert.ErrorIs(t, err, ErrUnknownBackend)
	})
}
