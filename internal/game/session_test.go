package game

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/AsperforMias/cli-game/internal/dialogue"
	"github.com/AsperforMias/cli-game/internal/gamedata"
	"github.com/AsperforMias/cli-game/internal/pkg/clock"
	"github.com/AsperforMias/cli-game/internal/store"
	"github.com/AsperforMias/cli-game/internal/ui"
	"github.com/AsperforMias/cli-game/internal/world"
)

// scriptedGenerator answers deterministically so dialogue assertions
// don't depend on canned-line rotation.
type scriptedGenerator struct{}

func (scriptedGenerator) Generate(_ context.Context, req dialogue.Request) (*dialogue.Reply, error) {
	if req.Line == "" {
		return &dialogue.Reply{Message: "Greetings, " + req.Player.Name + ".", Mood: req.Mood}, nil
	}
	return &dialogue.Reply{Message: "You said: " + req.Line, Mood: req.Mood}, nil
}

func testDialogue() *dialogue.Service {
	return dialogue.NewService(dialogue.ServiceConfig{Generator: scriptedGenerator{}})
}

func testWorld(t *testing.T) *world.World {
	t.Helper()
	w, err := world.New(context.Background(), gamedata.MustLoadRegistry())
	if err != nil {
		t.Fatalf("Failed to build world: %v", err)
	}
	return w
}

func testClock() clock.Clock {
	return &clock.Fixed{T: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)}
}

// testSession wires a session against the embedded world, an in-memory
// store, and scripted dialogue. The welcome banner is dropped so tests
// start from clean output.
func testSession(t *testing.T) (*Session, *bytes.Buffer) {
	t.Helper()
	var buf bytes.Buffer
	s, err := NewSession(SessionConfig{
		ID:       "test-session",
		Output:   ui.NewPlain(&buf),
		World:    testWorld(t),
		Store:    store.NewMemory(),
		Dialogue: testDialogue(),
		Seed:     1,
		Clock:    testClock(),
	})
	if err != nil {
		t.Fatalf("Failed to create session: %v", err)
	}
	buf.Reset()
	return s, &buf
}

// run feeds one line and returns only the output it produced.
func run(t *testing.T, s *Session, buf *bytes.Buffer, line string) string {
	t.Helper()
	s.HandleLine(context.Background(), line)
	out := buf.String()
	buf.Reset()
	return out
}

// playingSession fast-forwards through creation as the warrior Aria.
func playingSession(t *testing.T) (*Session, *bytes.Buffer) {
	t.Helper()
	s, buf := testSession(t)
	run(t, s, buf, "new")
	run(t, s, buf, "Aria")
	run(t, s, buf, "warrior")
	if s.State() != StatePlaying {
		t.Fatalf("Expected playing state after creation, got %v", s.State())
	}
	return s, buf
}

func TestWelcomeOnConnect(t *testing.T) {
	var buf bytes.Buffer
	_, err := NewSession(SessionConfig{
		ID:       "hello",
		Output:   ui.NewPlain(&buf),
		World:    testWorld(t),
		Store:    store.NewMemory(),
		Dialogue: testDialogue(),
		Seed:     1,
	})
	if err != nil {
		t.Fatalf("Failed to create session: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "C L I   R P G") {
		t.Errorf("Expected welcome banner, got %q", out)
	}
	if !strings.Contains(out, "load <name>") {
		t.Errorf("Expected menu entries, got %q", out)
	}
}

func TestSessionConfigValidation(t *testing.T) {
	_, err := NewSession(SessionConfig{ID: "bad"})
	if err == nil {
		t.Fatal("Expected error for config without collaborators")
	}
}

func TestMenuUnknownCommand(t *testing.T) {
	s, buf := testSession(t)
	out := run(t, s, buf, "dance")
	if !strings.Contains(out, "Unknown command") {
		t.Errorf("Expected unknown command notice, got %q", out)
	}
	if s.State() != StateMainMenu {
		t.Errorf("Expected state to stay main_menu, got %v", s.State())
	}
}

func TestCombatCommandAtMenuIsNoOp(t *testing.T) {
	s, buf := testSession(t)
	out := run(t, s, buf, "attack goblin")
	if !strings.Contains(out, "Unknown command") {
		t.Errorf("Expected notice, got %q", out)
	}
	if s.State() != StateMainMenu {
		t.Errorf("Expected state to stay main_menu, got %v", s.State())
	}
	if s.Player() != nil {
		t.Error("Expected no player before creation")
	}
}

func TestEmptyLineIsIgnored(t *testing.T) {
	s, buf := testSession(t)
	out := run(t, s, buf, "   ")
	if out != "" {
		t.Errorf("Expected no output for blank line, got %q", out)
	}
}

func TestCreationFlow(t *testing.T) {
	s, buf := testSession(t)

	out := run(t, s, buf, "new")
	if !strings.Contains(out, "What is your name") {
		t.Errorf("Expected name prompt, got %q", out)
	}
	if s.State() != StateCreation {
		t.Fatalf("Expected creation state, got %v", s.State())
	}

	out = run(t, s, buf, "Aria")
	if !strings.Contains(out, "Well met, Aria") {
		t.Errorf("Expected name echo, got %q", out)
	}
	if !strings.Contains(out, "Warrior") || !strings.Contains(out, "Mage") || !strings.Contains(out, "Rogue") {
		t.Errorf("Expected class menu, got %q", out)
	}

	out = run(t, s, buf, "2")
	if s.State() != StatePlaying {
		t.Fatalf("Expected playing state, got %v", s.State())
	}
	p := s.Player()
	if p == nil {
		t.Fatal("Expected a player after creation")
	}
	if p.Name != "Aria" {
		t.Errorf("Expected name Aria, got %q", p.Name)
	}
	if p.Class.String() != "Mage" {
		t.Errorf("Expected class Mage, got %v", p.Class)
	}
	if p.SceneID != world.StartSceneID {
		t.Errorf("Expected start at %s, got %s", world.StartSceneID, p.SceneID)
	}
	if !strings.Contains(out, "Starting Village") {
		t.Errorf("Expected opening scene render, got %q", out)
	}
}

func TestCreationTakesFirstTokenAsName(t *testing.T) {
	s, buf := testSession(t)
	run(t, s, buf, "new")
	run(t, s, buf, "Sir Galahad the Pure")
	run(t, s, buf, "1")
	if got := s.Player().Name; got != "Sir" {
		t.Errorf("Expected first token as name, got %q", got)
	}
}

func TestCreationKeepsNameAfterBadClassPick(t *testing.T) {
	s, buf := testSession(t)
	run(t, s, buf, "new")
	run(t, s, buf, "Aria")

	out := run(t, s, buf, "9")
	if !strings.Contains(out, "Pick 1, 2, or 3") {
		t.Errorf("Expected re-prompt, got %q", out)
	}
	if s.State() != StateCreation {
		t.Fatalf("Expected to stay in creation, got %v", s.State())
	}

	run(t, s, buf, "Rogue")
	if s.State() != StatePlaying {
		t.Fatalf("Expected playing state, got %v", s.State())
	}
	if s.Player().Name != "Aria" {
		t.Errorf("Expected name kept across retry, got %q", s.Player().Name)
	}
	if s.Player().Class.String() != "Rogue" {
		t.Errorf("Expected class Rogue, got %v", s.Player().Class)
	}
}

func TestCreationAcceptsClassID(t *testing.T) {
	s, buf := testSession(t)
	run(t, s, buf, "new")
	run(t, s, buf, "Pip")
	run(t, s, buf, "WARRIOR")
	if s.State() != StatePlaying {
		t.Fatalf("Expected playing state, got %v", s.State())
	}
	if s.Player().Class.String() != "Warrior" {
		t.Errorf("Expected class Warrior, got %v", s.Player().Class)
	}
}

func TestLoadWithoutNameShowsUsage(t *testing.T) {
	s, buf := testSession(t)
	out := run(t, s, buf, "load")
	if !strings.Contains(out, "load <name>") {
		t.Errorf("Expected usage notice, got %q", out)
	}
}

func TestLoadMissingSave(t *testing.T) {
	s, buf := testSession(t)
	out := run(t, s, buf, "load Nobody")
	if !strings.Contains(out, "No save found for Nobody") {
		t.Errorf("Expected missing-save notice, got %q", out)
	}
	if s.State() != StateMainMenu {
		t.Errorf("Expected state to stay main_menu, got %v", s.State())
	}
}

func TestSaveThenLoadAcrossSessions(t *testing.T) {
	mem := store.NewMemory()
	w := testWorld(t)

	var first bytes.Buffer
	s1, err := NewSession(SessionConfig{
		ID: "one", Output: ui.NewPlain(&first), World: w,
		Store: mem, Dialogue: testDialogue(), Seed: 7, Clock: testClock(),
	})
	if err != nil {
		t.Fatalf("Failed to create session: %v", err)
	}
	ctx := context.Background()
	s1.HandleLine(ctx, "new")
	s1.HandleLine(ctx, "Aria")
	s1.HandleLine(ctx, "warrior")
	s1.Player().Money = 240
	s1.HandleLine(ctx, "save")
	if !strings.Contains(first.String(), "load Aria") {
		t.Errorf("Expected save confirmation, got %q", first.String())
	}

	var second bytes.Buffer
	s2, err := NewSession(SessionConfig{
		ID: "two", Output: ui.NewPlain(&second), World: w,
		Store: mem, Dialogue: testDialogue(), Seed: 99, Clock: testClock(),
	})
	if err != nil {
		t.Fatalf("Failed to create session: %v", err)
	}
	s2.HandleLine(ctx, "load Aria")
	if s2.State() != StatePlaying {
		t.Fatalf("Expected playing state after load, got %v", s2.State())
	}
	p := s2.Player()
	if p.Name != "Aria" || p.Class.String() != "Warrior" {
		t.Errorf("Expected Aria the Warrior, got %s the %v", p.Name, p.Class)
	}
	if p.Money != 240 {
		t.Errorf("Expected 240 money, got %d", p.Money)
	}
	if s2.roller.Seed() != 7 {
		t.Errorf("Expected restored roller seed 7, got %d", s2.roller.Seed())
	}
	if !strings.Contains(second.String(), "Welcome back, Aria") {
		t.Errorf("Expected welcome-back notice, got %q", second.String())
	}
}

func TestLoadIsCaseInsensitive(t *testing.T) {
	mem := store.NewMemory()
	w := testWorld(t)
	ctx := context.Background()

	var buf bytes.Buffer
	s, err := NewSession(SessionConfig{
		ID: "one", Output: ui.NewPlain(&buf), World: w,
		Store: mem, Dialogue: testDialogue(), Seed: 1, Clock: testClock(),
	})
	if err != nil {
		t.Fatalf("Failed to create session: %v", err)
	}
	s.HandleLine(ctx, "new")
	s.HandleLine(ctx, "Aria")
	s.HandleLine(ctx, "1")
	s.HandleLine(ctx, "save")

	s2, buf2 := testSession(t)
	s2.store = mem
	out := run(t, s2, buf2, "load ARIA")
	if s2.State() != StatePlaying {
		t.Fatalf("Expected playing state, got %v", s2.State())
	}
	if !strings.Contains(out, "Welcome back") {
		t.Errorf("Expected welcome back, got %q", out)
	}
}

func TestMenuHelp(t *testing.T) {
	s, buf := testSession(t)
	out := run(t, s, buf, "help")
	for _, want := range []string{"new", "load <name>", "quit"} {
		if !strings.Contains(out, want) {
			t.Errorf("Expected help to mention %q, got %q", want, out)
		}
	}
}

func TestQuitFromMenu(t *testing.T) {
	s, buf := testSession(t)
	done := s.HandleLine(context.Background(), "quit")
	if !done {
		t.Error("Expected quit to end the session")
	}
	if !strings.Contains(buf.String(), "Until next time") {
		t.Errorf("Expected farewell, got %q", buf.String())
	}
}

func TestStateStrings(t *testing.T) {
	cases := []struct {
		state State
		want  string
	}{
		{StateMainMenu, "main_menu"},
		{StateCreation, "character_creation"},
		{StatePlaying, "playing"},
		{StateDialogue, "dialogue"},
		{StateCombat, "combat"},
		{State(42), "unknown"},
	}
	for _, tc := range cases {
		if got := tc.state.String(); got != tc.want {
			t.Errorf("Expected %q, got %q", tc.want, got)
		}
	}
}
