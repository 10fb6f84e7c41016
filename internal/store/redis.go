package store

import (
	"context"
	"encoding/json"
	"log/slog"
	"strings"

	"github.com/redis/go-redis/v9"

	"github.com/AsperforMias/cli-game/internal/errors"
)

const playerKeyPrefix = "cligame:player:"

// RedisConfig holds the dependencies for a Redis-backed store.
type RedisConfig struct {
	Client redis.UniversalClient
}

// Validate checks that the config is usable.
func (c *RedisConfig) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config is nil")
	}
	if c.Client == nil {
		return errors.InvalidArgument("redis client is required")
	}
	return nil
}

// Redis persists player records in Redis. Saves carry no TTL: a character
// stays until overwritten.
type Redis struct {
	client redis.UniversalClient
}

// NewRedis creates a Redis-backed store.
func NewRedis(cfg *RedisConfig) (*Redis, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Redis{client: cfg.Client}, nil
}

func playerKey(name string) string {
	return playerKeyPrefix + strings.ToLower(name)
}

// Save writes the record under the player's name.
func (s *Redis) Save(ctx context.Context, rec *PlayerRecord) error {
	if rec == nil || rec.Name == "" {
		return errors.InvalidArgument("save record needs a player name")
	}
	data, err := json.Marshal(rec)
	if err != nil {
		return errors.Wrapf(err, "failed to marshal save for %s", rec.Name)
	}
	if err := s.client.Set(ctx, playerKey(rec.Name), data, 0).Err(); err != nil {
		return errors.Wrapf(err, "failed to save %s", rec.Name)
	}
	slog.DebugContext(ctx, "player saved", "player", rec.Name, "bytes", len(data))
	return nil
}

// Load reads the record for a player name.
func (s *Redis) Load(ctx context.Context, name string) (*PlayerRecord, error) {
	if name == "" {
		return nil, errors.InvalidArgument("player name is required")
	}
	data, err := s.client.Get(ctx, playerKey(name)).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, errors.NotFoundf("no save found for %s", name)
		}
		return nil, errors.Wrapf(err, "failed to load %s", name)
	}
	var rec PlayerRecord
	if err := json.Unmarshal([]byte(data), &rec); err != nil {
		return nil, errors.Wrapf(err, "failed to unmarshal save for %s", name)
	}
	return &rec, nil
}
