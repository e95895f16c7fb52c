package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/minagames/connect4/internal/entity"
)

const saveFileExt = ".json"

type fileSave struct {
	dir string
}

// NewFileSaveRepository - stores each slot as a JSON document under dir.
func NewFileSaveRepository(dir string) SaveRepository {
	return &fileSave{
		dir: dir,
	}
}

func (that *fileSave) Save(ctx context.Context, slot string, game *entity.Game) error {
	if err := validateSlot(slot); err != nil {
		return err
	}

	if err := os.MkdirAll(that.dir, 0o755); err != nil {
		return fmt.Errorf("could not create save directory: %w", err)
	}

	gameJSON, err := json.Marshal(game)
	if err != nil {
		return fmt.Errorf("could not marshal game: %w", err)
	}

	// Write to a temp file first so an interrupted save never clobbers an
	// existing slot.
	path := that.slotPath(slot)
	tmp, err := os.CreateTemp(that.dir, slot+".*.tmp")
	if err != nil {
		return fmt.Errorf("could not create save file: %w", err)
	}

	if _, err = tmp.Write(gameJSON); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("could not write save file: %w", err)
	}

	if err = tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("could not close save file: %w", err)
	}

	if err = os.Rename(tmp.Name(), path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("could not replace save file: %w", err)
	}

	return nil
}

func (that *fileSave) Load(ctx context.Context, slot string) (*entity.Game, error) {
	if err := validateSlot(slot); err != nil {
		return nil, err
	}

	gameJSON, err := os.ReadFile(that.slotPath(slot))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: slot %q", ErrSaveNotFound, slot)
	}

	if err != nil {
		return nil, fmt.Errorf("could not read save file: %w", err)
	}

	var game entity.Game
	if err = json.Unmarshal(gameJSON, &game); err != nil {
		return nil, fmt.Errorf("failed to unmarshal game: %w", err)
	}

	return &game, nil
}

func (that *fileSave) Delete(ctx context.Context, slot string) error {
	if err := validateSlot(slot); err != nil {
		return err
	}

	err := os.Remove(that.slotPath(slot))
	if errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("%w: slot %q", ErrSaveNotFound, slot)
	}

	if err != nil {
		return fmt.Errorf("could not delete save file: %w", err)
	}

	return nil
}

func (that *fileSave) List(ctx context.Context) ([]string, error) {
	entries, err := os.ReadDir(that.dir)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}

	if err != nil {
		return nil, fmt.Errorf("could not read save directory: %w", err)
	}

	var slots []string
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasSuffix(name, saveFileExt) {
			continue
		}

		slot := strings.TrimSuffix(name, saveFileExt)
		if slotNamePattern.MatchString(slot) {
			slots = append(slots, slot)
		}
	}

	sort.Strings(slots)

	return slots, nil
}

func (that *fileSave) slotPath(slot string) string {
	return filepath.Join(that.dir, slot+saveFileExt)
}
