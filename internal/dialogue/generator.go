// Package dialogue renders NPC conversation through an external
// language model, with canned fallbacks so a slow or absent model
// never blocks a session.
package dialogue

import "context"

// NPCProfile describes the character the model should play. The fields
// come straight from the NPC definition.
type NPCProfile struct {
	ID          string
	Name        string
	Profession  string
	Personality string
	Background  string
}

// PlayerProfile is what the NPC knows about who it is talking to.
type PlayerProfile struct {
	Name  string
	Class string
	Level int
}

// Exchange is one player line and the NPC's answer. A greeting has an
// empty player line.
type Exchange struct {
	Player string
	NPC    string
}

// Request carries everything a generator needs for one reply.
type Request struct {
	NPC     NPCProfile
	Player  PlayerProfile
	History []Exchange
	Mood    float64
	Line    string // empty requests an opening greeting
}

// Reply is a generated NPC line with the model's updated read of the
// NPC's mood toward the player. Mood is always in [0, 1]; a model that
// does not report one keeps the request's mood.
type Reply struct {
	Message string
	Mood    float64
}

// Generator produces one NPC reply. Implementations must honor context
// cancellation; the service bounds every call with a deadline.
type Generator interface {
	Generate(ctx context.Context, req Request) (*Reply, error)
}

func clampMood(mood float64) float64 {
	if mood < 0 {
		return 0
	}
	if mood > 1 {
		return 1
	}
	return mood
}
