package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/minagames/connect4/internal/apperror"
	"github.com/minagames/connect4/internal/connect4"
	"github.com/minagames/connect4/internal/entity"
)

type saveRepo interface {
	Save(ctx context.Context, slot string, game *entity.Game) error
	Load(ctx context.Context, slot string) (*entity.Game, error)
	Delete(ctx context.Context, slot string) error
	List(ctx context.Context) ([]string, error)
}

// GameManager owns the current game session. It is driven by a single
// front end at a time, so it carries no locking.
type GameManager struct {
	logger *slog.Logger
	saves  saveRepo

	game *entity.Game
}

func NewGameManager(logger *slog.Logger, saves saveRepo) *GameManager {
	return &GameManager{
		logger: logger.With("component", "game_manager"),
		saves:  saves,
	}
}

// NewGame - replaces the current session with a fresh board.
func (that *GameManager) NewGame(rows, cols int) (*entity.Game, error) {
	game, err := connect4.NewGame(rows, cols)
	if err != nil {
		return nil, fmt.Errorf("failed to create game: %w", err)
	}

	that.game = game
	that.logger.Info("started new game", "rows", rows, "cols", cols)

	return game, nil
}

// CurrentGame - returns the game in play, or nil before the first NewGame.
func (that *GameManager) CurrentGame() *entity.Game {
	return that.game
}

// MakeTurn - drops the current player's disk into the given column.
func (that *GameManager) MakeTurn(col int) (*entity.Game, error) {
	if that.game == nil {
		return nil, apperror.ErrNoActiveGame
	}

	if err := connect4.MakeTurn(that.game, col); err != nil {
		return nil, fmt.Errorf("failed make turn: %w", err)
	}

	if that.game.IsFinished() {
		that.logger.Info("game finished", "winner", that.game.Winner, "moves", that.game.MoveCount())
	}

	return that.game, nil
}

// SaveGame - snapshots the current game under the given slot.
func (that *GameManager) SaveGame(ctx context.Context, slot string) error {
	if that.game == nil {
		return apperror.ErrNoActiveGame
	}

	if err := that.saves.Save(ctx, slot, that.game); err != nil {
		return fmt.Errorf("failed to save game: %w", err)
	}

	that.logger.Info("saved game", "slot", slot, "moves", that.game.MoveCount())

	return nil
}

// LoadGame - restores a snapshot. The current game is replaced only after
// the loaded state passes validation, so a missing or corrupt save leaves
// the session untouched.
func (that *GameManager) LoadGame(ctx context.Context, slot string) (*entity.Game, error) {
	game, err := that.saves.Load(ctx, slot)
	if err != nil {
		return nil, fmt.Errorf("failed to load game: %w", err)
	}

	if err = connect4.ValidateBoardSize(game.Rows, game.Cols); err != nil {
		return nil, fmt.Errorf("refusing saved game: %w", err)
	}

	if err = game.Validate(); err != nil {
		return nil, fmt.Errorf("refusing saved game: %w", err)
	}

	if err = connect4.ValidateOutcome(game); err != nil {
		return nil, fmt.Errorf("refusing saved game: %w", err)
	}

	that.game = game
	that.logger.Info("loaded game", "slot", slot, "moves", game.MoveCount())

	return game, nil
}

func (that *GameManager) ListSaves(ctx context.Context) ([]string, error) {
	slots, err := that.saves.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list saves: %w", err)
	}

	return slots, nil
}

func (that *GameManager) DeleteSave(ctx context.Context, slot string) error {
	if err := that.saves.Delete(ctx, slot); err != nil {
		return fmt.Errorf("failed to delete save: %w", err)
	}

	return nil
}
