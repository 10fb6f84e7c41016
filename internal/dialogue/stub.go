package dialogue

import (
	"context"
	"fmt"
	"sync"
)

// Stub is a canned generator used when no model endpoint is configured.
// Greetings name the NPC's trade, later lines rotate through small
// talk, and the mood warms a little with each exchange so conversations
// stay serviceable offline.
type Stub struct {
	mu sync.Mutex
	n  int
}

// NewStub creates a stub generator.
func NewStub() *Stub { return &Stub{} }

var stubLines = []string{
	"Mm. The roads have been busy lately.",
	"Is that so? Strange times.",
	"You'd best ask around the village about that.",
	"Keep your blade close past the treeline, friend.",
	"Can't help you there, I'm afraid.",
}

// Generate implements Generator with canned text.
func (s *Stub) Generate(_ context.Context, req Request) (*Reply, error) {
	s.mu.Lock()
	n := s.n
	s.n++
	s.mu.Unlock()

	mood := clampMood(req.Mood + 0.02)
	if req.Line == "" {
		return &Reply{
			Message: fmt.Sprintf("Well met, %s. I'm %s, the %s here.", req.Player.Name, req.NPC.Name, req.NPC.Profession),
			Mood:    mood,
		}, nil
	}
	return &Reply{Message: stubLines[n%len(stubLines)], Mood: mood}, nil
}
