package game

import (
	"time"

	"github.com/AsperforMias/cli-game/internal/dialogue"
	"github.com/AsperforMias/cli-game/internal/errors"
	"github.com/AsperforMias/cli-game/internal/pkg/clock"
	"github.com/AsperforMias/cli-game/internal/store"
	"github.com/AsperforMias/cli-game/internal/ui"
	"github.com/AsperforMias/cli-game/internal/world"
)

// SessionConfig holds everything a session needs from the outside.
type SessionConfig struct {
	ID       string
	Output   *ui.Renderer
	World    *world.World
	Store    store.Store
	Dialogue *dialogue.Service

	// Seed for the session's random stream. Zero picks a time-based
	// seed; a fixed value makes a session's rolls reproducible.
	Seed int64

	Clock clock.Clock
}

// Validate checks the required collaborators are present.
func (c *SessionConfig) Validate() error {
	if c.Output == nil {
		return errors.InvalidArgument("session output is required")
	}
	if c.World == nil {
		return errors.InvalidArgument("session world is required")
	}
	if c.Store == nil {
		return errors.InvalidArgument("session store is required")
	}
	if c.Dialogue == nil {
		return errors.InvalidArgument("session dialogue service is required")
	}
	return nil
}

func (c *SessionConfig) seed() int64 {
	if c.Seed != 0 {
		return c.Seed
	}
	return time.Now().UnixNano()
}
