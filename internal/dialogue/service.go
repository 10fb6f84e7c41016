package dialogue

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"go.opentelemetry.io/otel/attribute"

	"github.com/AsperforMias/cli-game/internal/pkg/clock"
	"github.com/AsperforMias/cli-game/internal/telemetry"
)

const (
	defaultCallTimeout      = 10 * time.Second
	defaultMaxConversations = 256
	maxHistory              = 10
	startingMood            = 0.5
)

// ServiceConfig configures the dialogue service.
type ServiceConfig struct {
	Generator        Generator
	CallTimeout      time.Duration // bound on one generator call
	MaxConversations int           // kept before the oldest is evicted
	Clock            clock.Clock
}

// Service owns conversation state: each (NPC, player) pair has a mood
// and a bounded history surviving across talks in the same process.
// Every generator call is bounded by a deadline; on any failure the
// caller gets a canned line and the conversation state stays untouched.
type Service struct {
	gen     Generator
	timeout time.Duration
	max     int
	clock   clock.Clock

	mu    sync.Mutex
	convs map[convKey]*conversation
}

type convKey struct {
	npcID  string
	player string
}

type conversation struct {
	mood     float64
	history  []Exchange
	lastUsed time.Time
}

// NewService creates the service with defaults filled in.
func NewService(config ServiceConfig) *Service {
	if config.CallTimeout <= 0 {
		config.CallTimeout = defaultCallTimeout
	}
	if config.MaxConversations <= 0 {
		config.MaxConversations = defaultMaxConversations
	}
	if config.Clock == nil {
		config.Clock = clock.New()
	}
	return &Service{
		gen:     config.Generator,
		timeout: config.CallTimeout,
		max:     config.MaxConversations,
		clock:   config.Clock,
		convs:   make(map[convKey]*conversation),
	}
}

// Greet produces the NPC's opening line for a fresh talk.
func (s *Service) Greet(ctx context.Context, npc NPCProfile, player PlayerProfile) string {
	return s.exchange(ctx, npc, player, "")
}

// Say forwards one player line and returns the NPC's answer.
func (s *Service) Say(ctx context.Context, npc NPCProfile, player PlayerProfile, line string) string {
	return s.exchange(ctx, npc, player, line)
}

// Mood reports the NPC's current attitude toward the player.
func (s *Service) Mood(npcID, playerName string) float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	if conv, ok := s.convs[convKey{npcID, playerName}]; ok {
		return conv.mood
	}
	return startingMood
}

func (s *Service) exchange(ctx context.Context, npc NPCProfile, player PlayerProfile, line string) string {
	key := convKey{npc.ID, player.Name}
	mood, history := s.snapshot(key)

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()
	ctx, span := telemetry.Tracer("dialogue").Start(ctx, "dialogue.exchange")
	defer span.End()
	span.SetAttributes(
		attribute.String("npc.id", npc.ID),
		attribute.String("player.name", player.Name),
	)

	reply, err := s.gen.Generate(ctx, Request{
		NPC:     npc,
		Player:  player,
		History: history,
		Mood:    mood,
		Line:    line,
	})
	if err != nil {
		slog.WarnContext(ctx, "dialogue generation failed", "npc", npc.ID, "error", err)
		span.SetAttributes(attribute.Bool("dialogue.fallback", true))
		return fmt.Sprintf("%s seems lost in thought.", npc.Name)
	}

	s.record(key, line, reply)
	return reply.Message
}

// snapshot copies conversation state so the generator call runs outside
// the lock.
func (s *Service) snapshot(key convKey) (float64, []Exchange) {
	s.mu.Lock()
	defer s.mu.Unlock()
	conv, ok := s.convs[key]
	if !ok {
		return startingMood, nil
	}
	history := make([]Exchange, len(conv.history))
	copy(history, conv.history)
	return conv.mood, history
}

func (s *Service) record(key convKey, line string, reply *Reply) {
	s.mu.Lock()
	defer s.mu.Unlock()

	conv, ok := s.convs[key]
	if !ok {
		conv = &conversation{mood: startingMood}
		s.convs[key] = conv
	}
	conv.mood = clampMood(reply.Mood)
	conv.history = append(conv.history, Exchange{Player: line, NPC: reply.Message})
	if len(conv.history) > maxHistory {
		conv.history = conv.history[len(conv.history)-maxHistory:]
	}
	conv.lastUsed = s.clock.Now()
	s.evictLocked()
}

// evictLocked drops the least recently used conversation once the map
// outgrows its bound. Called with the lock held.
func (s *Service) evictLocked() {
	if len(s.convs) <= s.max {
		return
	}
	var oldestKey convKey
	var oldest time.Time
	first := true
	for key, conv := range s.convs {
		if first || conv.lastUsed.Before(oldest) {
			oldestKey, oldest = key, conv.lastUsed
			first = false
		}
	}
	delete(s.convs, oldestKey)
}
