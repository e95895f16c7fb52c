package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/redis/go-redis/v9"

	"github.com/minagames/connect4/internal/entity"
)

const saveKeyPrefix = "save:"

type redisSave struct {
	client *redis.Client
}

// NewRedisSaveRepository - stores each slot as a JSON payload under a
// "save:<slot>" key.
func NewRedisSaveRepository(client *redis.Client) SaveRepository {
	return &redisSave{
		client: client,
	}
}

func (that *redisSave) Save(ctx context.Context, slot string, game *entity.Game) error {
	if err := validateSlot(slot); err != nil {
		return err
	}

	gameJSON, err := json.Marshal(game)
	if err != nil {
		return fmt.Errorf("could not marshal game: %w", err)
	}

	if err = that.client.Set(ctx, saveKeyPrefix+slot, gameJSON, 0).Err(); err != nil {
		return fmt.Errorf("failed to set save: %w", err)
	}

	return nil
}

func (that *redisSave) Load(ctx context.Context, slot string) (*entity.Game, error) {
	if err := validateSlot(slot); err != nil {
		return nil, err
	}

	response, err := that.client.Get(ctx, saveKeyPrefix+slot).Result()

	if errors.Is(err, redis.Nil) {
		return nil, fmt.Errorf("%w: slot %q", ErrSaveNotFound, slot)
	}

	if err != nil {
		return nil, fmt.Errorf("failed to get save: %w", err)
	}

	var game entity.Game
	if err = json.Unmarshal([]byte(response), &game); err != nil {
		return nil, fmt.Errorf("failed to unmarshal game: %w", err)
	}

	return &game, nil
}

func (that *redisSave) Delete(ctx context.Context, slot string) error {
	if err := validateSlot(slot); err != nil {
		return err
	}

	deleted, err := that.client.Del(ctx, saveKeyPrefix+slot).Result()
	if err != nil {
		return fmt.Errorf("failed to delete save: %w", err)
	}

	if deleted == 0 {
		return fmt.Errorf("%w: slot %q", ErrSaveNotFound, slot)
	}

	return nil
}

func (that *redisSave) List(ctx context.Context) ([]string, error) {
	keys, err := that.client.Keys(ctx, saveKeyPrefix+"*").Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list saves: %w", err)
	}

	slots := make([]string, 0, len(keys))
	for _, key := range keys {
		slots = append(slots, strings.TrimPrefix(key, saveKeyPrefix))
	}

	sort.Strings(slots)

	return slots, nil
}
