package repository

import (
	"context"
	"errors"
	"fmt"
	"regexp"

	"github.com/minagames/connect4/internal/entity"
)

var (
	ErrSaveNotFound = errors.New("save not found")
	ErrInvalidSlot  = errors.New("invalid save slot name")
)

// slotNamePattern keeps slot names usable as file names and store keys.
var slotNamePattern = regexp.MustCompile(`^[a-zA-Z0-9_-]+$`)

// SaveRepository stores game snapshots under named slots.
type SaveRepository interface {
	Save(ctx context.Context, slot string, game *entity.Game) error
	Load(ctx context.Context, slot string) (*entity.Game, error)
	Delete(ctx context.Context, slot string) error
	List(ctx context.Context) ([]string, error)
}

func validateSlot(slot string) error {
	if !slotNamePattern.MatchString(slot) {
		return fmt.Errorf("%w: %q", ErrInvalidSlot, slot)
	}

	return nil
}
