package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/minagames/connect4/internal/entity"
)

type sqliteSave struct {
	db *sql.DB
}

// NewSQLiteSaveRepository - stores each slot as a row in the saves table,
// created by storage.SQLiteStorage.Init.
func NewSQLiteSaveRepository(db *sql.DB) SaveRepository {
	return &sqliteSave{
		db: db,
	}
}

func (that *sqliteSave) Save(ctx context.Context, slot string, game *entity.Game) error {
	if err := validateSlot(slot); err != nil {
		return err
	}

	gameJSON, err := json.Marshal(game)
	if err != nil {
		return fmt.Errorf("could not marshal game: %w", err)
	}

	query := `INSERT INTO saves (slot, payload, saved_at) VALUES (?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(slot) DO UPDATE SET payload = excluded.payload, saved_at = excluded.saved_at`

	if _, err = that.db.ExecContext(ctx, query, slot, gameJSON); err != nil {
		return fmt.Errorf("failed to upsert save: %w", err)
	}

	return nil
}

func (that *sqliteSave) Load(ctx context.Context, slot string) (*entity.Game, error) {
	if err := validateSlot(slot); err != nil {
		return nil, err
	}

	var gameJSON []byte
	err := that.db.QueryRowContext(ctx, `SELECT payload FROM saves WHERE slot = ?`, slot).Scan(&gameJSON)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: slot %q", ErrSaveNotFound, slot)
	}

	if err != nil {
		return nil, fmt.Errorf("failed to query save: %w", err)
	}

	var game entity.Game
	if err = json.Unmarshal(gameJSON, &game); err != nil {
		return nil, fmt.Errorf("failed to unmarshal game: %w", err)
	}

	return &game, nil
}

func (that *sqliteSave) Delete(ctx context.Context, slot string) error {
	if err := validateSlot(slot); err != nil {
		return err
	}

	result, err := that.db.ExecContext(ctx, `DELETE FROM saves WHERE slot = ?`, slot)
	if err != nil {
		return fmt.Errorf("failed to delete save: %w", err)
	}

	deleted, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to count deleted saves: %w", err)
	}

	if deleted == 0 {
		return fmt.Errorf("%w: slot %q", ErrSaveNotFound, slot)
	}

	return nil
}

func (that *sqliteSave) List(ctx context.Context) ([]string, error) {
	rows, err := that.db.QueryContext(ctx, `SELECT slot FROM saves ORDER BY slot`)
	if err != nil {
		return nil, fmt.Errorf("failed to list saves: %w", err)
	}
	defer rows.Close()

	var slots []string
	for rows.Next() {
		var slot string
		if err = rows.Scan(&slot); err != nil {
			return nil, fmt.Errorf("failed to scan save slot: %w", err)
		}

		slots = append(slots, slot)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate saves: %w", err)
	}

	return slots, nil
}
