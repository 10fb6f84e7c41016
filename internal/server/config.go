package server

import (
	"github.com/AsperforMias/cli-game/internal/dialogue"
	"github.com/AsperforMias/cli-game/internal/errors"
	"github.com/AsperforMias/cli-game/internal/store"
	"github.com/AsperforMias/cli-game/internal/world"
)

const (
	// DefaultAddr is where the server listens when no address is given.
	DefaultAddr = ":2222"

	// DefaultPassword guards the door when no password is configured.
	// Override it anywhere the server is reachable beyond localhost.
	DefaultPassword = "rpg2025"

	defaultMaxAttempts = 3
	defaultQueueSize   = 32
)

// Config holds the server's dependencies and knobs.
type Config struct {
	Addr        string // listen address, DefaultAddr when empty
	Password    string // shared connection password, DefaultPassword when empty
	MaxAttempts int    // password tries before the connection drops
	QueueSize   int    // command lines buffered per session before reads block
	Seed        int64  // fixed dice seed for every session; 0 seeds from the clock

	World    *world.World
	Store    store.Store
	Dialogue *dialogue.Service
}

// Validate checks that the config is usable.
func (c *Config) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config is nil")
	}
	if c.World == nil {
		return errors.InvalidArgument("world is required")
	}
	if c.Store == nil {
		return errors.InvalidArgument("store is required")
	}
	if c.Dialogue == nil {
		return errors.InvalidArgument("dialogue service is required")
	}
	return nil
}
