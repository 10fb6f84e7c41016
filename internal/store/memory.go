package store

import (
	"context"
	"encoding/json"
	"strings"
	"sync"

	"github.com/AsperforMias/cli-game/internal/errors"
)

// Memory is an in-process store used when no Redis is configured. Saves
// live only as long as the server. Records are kept serialized so every
// Load returns an independent copy, matching the Redis backend.
type Memory struct {
	mu    sync.RWMutex
	saves map[string][]byte
}

// NewMemory creates an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{saves: make(map[string][]byte)}
}

// Save writes the record under the player's name.
func (s *Memory) Save(ctx context.Context, rec *PlayerRecord) error {
	if rec == nil || rec.Name == "" {
		return errors.InvalidArgument("save record needs a player name")
	}
	data, err := json.Marshal(rec)
	if err != nil {
		return errors.Wrapf(err, "failed to marshal save for %s", rec.Name)
	}
	s.mu.Lock()
	s.saves[strings.ToLower(rec.Name)] = data
	s.mu.Unlock()
	return nil
}

// Load reads the record for a player name.
func (s *Memory) Load(ctx context.Context, name string) (*PlayerRecord, error) {
	if name == "" {
		return nil, errors.InvalidArgument("player name is required")
	}
	s.mu.RLock()
	data, ok := s.saves[strings.ToLower(name)]
	s.mu.RUnlock()
	if !ok {
		return nil, errors.NotFoundf("no save found for %s", name)
	}
	var rec PlayerRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil, errors.Wrapf(err, "failed to unmarshal save for %s", name)
	}
	return &rec, nil
}
