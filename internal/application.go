package application

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/minagames/connect4/internal/config"
	"github.com/minagames/connect4/internal/repository"
	"github.com/minagames/connect4/internal/repository/storage"
	"github.com/minagames/connect4/internal/usecase"
	"github.com/minagames/connect4/transport/console"
)

var (
	ErrAddrNotFound   = errors.New("redis address string is empty")
	ErrUnknownBackend = errors.New("unknown storage backend")
)

// RunApp - runs the application.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigs
		log.Info("Received signal, shutting down", "signal", sig)
		cancel()
	}()

	saves, closeStorage, err := buildSaveRepository(ctx, conf)
	if err != nil {
		return fmt.Errorf("could not set up save storage: %w", err)
	}

	defer func() {
		if err = closeStorage(); err != nil {
			log.Error("could not close save storage", "error", err)
		}
	}()

	games := usecase.NewGameManager(logger, saves)
	front := console.New(logger, games, conf.Board.Rows, conf.Board.Cols)

	errCh := make(chan error, 1)
	go func() {
		log.Info("Starting console session", "rows", conf.Board.Rows, "cols", conf.Board.Cols, "storage", conf.Storage.Backend)
		errCh <- front.Start(ctx, os.Stdin, os.Stdout)
	}()

	select {
	case err = <-errCh:
		if err != nil {
			return fmt.Errorf("console session error: %w", err)
		}
		log.Info("Console session ended")
		return nil
	case <-ctx.Done():
		log.Info("Application context canceled, shutting down")
		return nil
	}
}

// buildSaveRepository - picks the save store from the config. The returned
// closer releases whatever the backend holds open.
func buildSaveRepository(ctx context.Context, conf *config.Config) (repository.SaveRepository, func() error, error) {
	noop := func() error { return nil }

	switch conf.Storage.Backend {
	case config.BackendFile, "":
		return repository.NewFileSaveRepository(conf.Storage.File.Dir), noop, nil

	case config.BackendSQLite:
		sqliteStorage, err := storage.NewSQLiteStorage(conf.Storage.SQLite.Path)
		if err != nil {
			return nil, nil, fmt.Errorf("could not open sqlite storage: %w", err)
		}

		if err = sqliteStorage.Init(ctx); err != nil {
			if closeErr := sqliteStorage.Close(); closeErr != nil {
				err = errors.Join(err, closeErr)
			}
			return nil, nil, fmt.Errorf("could not init sqlite storage: %w", err)
		}

		return repository.NewSQLiteSaveRepository(sqliteStorage.Connection), sqliteStorage.Close, nil

	case config.BackendRedis:
		addr := conf.Storage.Redis.GetRedisAddr()
		if addr == "" {
			return nil, nil, ErrAddrNotFound
		}

		client, err := storage.NewRedisStorage(ctx, addr)
		if err != nil {
			return nil, nil, fmt.Errorf("could not connect to redis storage: %w", err)
		}

		return repository.NewRedisSaveRepository(client), client.Close, nil

	default:
		return nil, nil, fmt.Errorf("%w: %q", ErrUnknownBackend, conf.Storage.Backend)
	}
}
