package dialogue

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"
)

// scriptGen replays fixed replies and records every request it saw.
type scriptGen struct {
	replies []Reply
	errs    []error
	calls   []Request
}

func (g *scriptGen) Generate(_ context.Context, req Request) (*Reply, error) {
	i := len(g.calls)
	g.calls = append(g.calls, req)
	if i < len(g.errs) && g.errs[i] != nil {
		return nil, g.errs[i]
	}
	if i < len(g.replies) {
		reply := g.replies[i]
		return &reply, nil
	}
	return &Reply{Message: "Hm.", Mood: req.Mood}, nil
}

// hangGen blocks until the call deadline fires.
type hangGen struct{}

func (hangGen) Generate(ctx context.Context, _ Request) (*Reply, error) {
	<-ctx.Done()
	return nil, ctx.Err()
}

// tickClock steps one second per reading so eviction order is fixed.
type tickClock struct{ t time.Time }

func (c *tickClock) Now() time.Time {
	c.t = c.t.Add(time.Second)
	return c.t
}

func elderProfile() NPCProfile {
	return NPCProfile{
		ID:          "village_elder",
		Name:        "Village Elder",
		Profession:  "elder",
		Personality: "kind but guarded",
		Background:  "has led the village for thirty years",
	}
}

func ariaProfile() PlayerProfile {
	return PlayerProfile{Name: "Aria", Class: "Warrior", Level: 2}
}

func TestGreetThenSay(t *testing.T) {
	gen := &scriptGen{replies: []Reply{
		{Message: "Welcome, traveler.", Mood: 0.6},
		{Message: "The forest is restless.", Mood: 0.7},
	}}
	service := NewService(ServiceConfig{Generator: gen})

	greeting := service.Greet(context.Background(), elderProfile(), ariaProfile())
	if greeting != "Welcome, traveler." {
		t.Fatalf("Expected the scripted greeting, got %q", greeting)
	}
	if gen.calls[0].Line != "" {
		t.Errorf("Expected an empty line for a greeting, got %q", gen.calls[0].Line)
	}
	if gen.calls[0].Mood != startingMood {
		t.Errorf("Expected starting mood %.2f, got %.2f", startingMood, gen.calls[0].Mood)
	}

	answer := service.Say(context.Background(), elderProfile(), ariaProfile(), "what of the forest?")
	if answer != "The forest is restless." {
		t.Fatalf("Expected the scripted answer, got %q", answer)
	}

	// The second call sees the greeting in history and the updated mood.
	second := gen.calls[1]
	if len(second.History) != 1 {
		t.Fatalf("Expected 1 remembered exchange, got %d", len(second.History))
	}
	if second.History[0].NPC != "Welcome, traveler." || second.History[0].Player != "" {
		t.Errorf("Expected the greeting in history, got %+v", second.History[0])
	}
	if second.Mood != 0.6 {
		t.Errorf("Expected mood 0.6 after the greeting, got %.2f", second.Mood)
	}
	if got := service.Mood("village_elder", "Aria"); got != 0.7 {
		t.Errorf("Expected mood 0.7 after the exchange, got %.2f", got)
	}
}

func TestFallbackOnGeneratorError(t *testing.T) {
	gen := &scriptGen{errs: []error{fmt.Errorf("model offline")}}
	service := NewService(ServiceConfig{Generator: gen})

	answer := service.Say(context.Background(), elderProfile(), ariaProfile(), "hello?")
	if !strings.Contains(answer, "lost in thought") {
		t.Fatalf("Expected the canned fallback, got %q", answer)
	}
	if got := service.Mood("village_elder", "Aria"); got != startingMood {
		t.Errorf("Expected mood untouched after a failure, got %.2f", got)
	}

	// The failed exchange left no history behind.
	service.Say(context.Background(), elderProfile(), ariaProfile(), "still there?")
	if len(gen.calls) != 2 || len(gen.calls[1].History) != 0 {
		t.Errorf("Expected empty history after a failed exchange, got %+v", gen.calls[1].History)
	}
}

func TestFallbackOnTimeout(t *testing.T) {
	service := NewService(ServiceConfig{Generator: hangGen{}, CallTimeout: 10 * time.Millisecond})

	start := time.Now()
	answer := service.Say(context.Background(), elderProfile(), ariaProfile(), "hello?")
	if !strings.Contains(answer, "lost in thought") {
		t.Fatalf("Expected the canned fallback, got %q", answer)
	}
	if elapsed := time.Since(start); elapsed > 2*time.Second {
		t.Errorf("Expected a bounded wait, took %v", elapsed)
	}
}

func TestHistoryCapped(t *testing.T) {
	gen := &scriptGen{}
	service := NewService(ServiceConfig{Generator: gen})

	for i := 0; i < 14; i++ {
		service.Say(context.Background(), elderProfile(), ariaProfile(), fmt.Sprintf("line %d", i))
	}

	last := gen.calls[13]
	if len(last.History) != maxHistory {
		t.Fatalf("Expected history capped at %d, got %d", maxHistory, len(last.History))
	}
	if last.History[0].Player != "line 3" {
		t.Errorf("Expected the oldest lines dropped, history starts with %q", last.History[0].Player)
	}
	if last.History[maxHistory-1].Player != "line 12" {
		t.Errorf("Expected the newest line last, got %q", last.History[maxHistory-1].Player)
	}
}

func TestMoodClamped(t *testing.T) {
	gen := &scriptGen{replies: []Reply{{Message: "GRAH!", Mood: 1.7}}}
	service := NewService(ServiceConfig{Generator: gen})

	service.Say(context.Background(), elderProfile(), ariaProfile(), "hi")
	if got := service.Mood("village_elder", "Aria"); got != 1 {
		t.Errorf("Expected mood clamped to 1, got %.2f", got)
	}
}

func TestConversationsKeyedPerPlayer(t *testing.T) {
	gen := &scriptGen{replies: []Reply{
		{Message: "Good to see you again.", Mood: 0.9},
		{Message: "Who are you?", Mood: 0.2},
	}}
	service := NewService(ServiceConfig{Generator: gen})

	service.Say(context.Background(), elderProfile(), PlayerProfile{Name: "Aria"}, "hello")
	service.Say(context.Background(), elderProfile(), PlayerProfile{Name: "Borin"}, "hello")

	if got := service.Mood("village_elder", "Aria"); got != 0.9 {
		t.Errorf("Expected Aria's mood 0.9, got %.2f", got)
	}
	if got := service.Mood("village_elder", "Borin"); got != 0.2 {
		t.Errorf("Expected Borin's mood 0.2, got %.2f", got)
	}
}

func TestOldestConversationEvicted(t *testing.T) {
	gen := &scriptGen{replies: []Reply{
		{Message: "one", Mood: 0.8},
		{Message: "two", Mood: 0.7},
		{Message: "three", Mood: 0.9},
	}}
	service := NewService(ServiceConfig{
		Generator:        gen,
		MaxConversations: 2,
		Clock:            &tickClock{},
	})

	aria := ariaProfile()
	service.Say(context.Background(), NPCProfile{ID: "npc1", Name: "One"}, aria, "hi")
	service.Say(context.Background(), NPCProfile{ID: "npc2", Name: "Two"}, aria, "hi")
	service.Say(context.Background(), NPCProfile{ID: "npc3", Name: "Three"}, aria, "hi")

	if got := service.Mood("npc1", "Aria"); got != startingMood {
		t.Errorf("Expected the oldest conversation evicted, got mood %.2f", got)
	}
	if got := service.Mood("npc2", "Aria"); got != 0.7 {
		t.Errorf("Expected npc2 retained with mood 0.7, got %.2f", got)
	}
	if got := service.Mood("npc3", "Aria"); got != 0.9 {
		t.Errorf("Expected npc3 retained with mood 0.9, got %.2f", got)
	}
}
