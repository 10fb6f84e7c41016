package game

import (
	"context"
	"log/slog"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/AsperforMias/cli-game/internal/combat"
	"github.com/AsperforMias/cli-game/internal/dialogue"
	"github.com/AsperforMias/cli-game/internal/dice"
	"github.com/AsperforMias/cli-game/internal/entity"
	"github.com/AsperforMias/cli-game/internal/errors"
	"github.com/AsperforMias/cli-game/internal/gamedata"
	"github.com/AsperforMias/cli-game/internal/pkg/clock"
	"github.com/AsperforMias/cli-game/internal/store"
	"github.com/AsperforMias/cli-game/internal/telemetry"
	"github.com/AsperforMias/cli-game/internal/ui"
	"github.com/AsperforMias/cli-game/internal/world"
)

// creationFlow tracks the two-step character flow: step 0 collects the
// name, step 1 the class. A failed class pick keeps the name.
type creationFlow struct {
	step int
	name string
}

// Session is one connection's game. All methods run on the session's
// single processor goroutine; nothing here is shared across sessions
// except the read-only world and the collaborators, which lock for
// themselves.
type Session struct {
	id       string
	out      *ui.Renderer
	world    *world.World
	store    store.Store
	dialogue *dialogue.Service
	clock    clock.Clock
	roller   *dice.Roller

	state    State
	player   *entity.Player
	creation creationFlow

	// DIALOGUE: the bound conversation partner.
	npc *world.NPC

	// COMBAT: the live encounter, its span, and the hostile NPC id when
	// the opponent came from a scene rather than a random spawn.
	encounter  *combat.Encounter
	combatSpan trace.Span
	hostileID  string

	// Per-session overlays so world templates stay untouched: shop
	// stock wears down per session, and beaten hostiles stay beaten.
	stock    map[string][]gamedata.ShopEntry
	defeated map[string]bool
}

// NewSession creates a session at the main menu and renders the welcome
// screen.
func NewSession(cfg SessionConfig) (*Session, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	c := cfg.Clock
	if c == nil {
		c = clock.New()
	}
	s := &Session{
		id:       cfg.ID,
		out:      cfg.Output,
		world:    cfg.World,
		store:    cfg.Store,
		dialogue: cfg.Dialogue,
		clock:    c,
		roller:   dice.New(cfg.seed()),
		state:    StateMainMenu,
		stock:    make(map[string][]gamedata.ShopEntry),
		defeated: make(map[string]bool),
	}
	s.out.Welcome()
	return s, nil
}

// State returns the session's current mode.
func (s *Session) State() State { return s.state }

// Player returns the session's character, nil until creation or a load
// completes.
func (s *Session) Player() *entity.Player { return s.player }

// Close releases anything the session still holds. Safe to call on any
// state; a live encounter is simply discarded.
func (s *Session) Close() {
	if s.combatSpan != nil {
		s.combatSpan.End()
		s.combatSpan = nil
	}
	s.encounter = nil
}

// HandleLine interprets one complete input line and renders its effects.
// It returns true when the player asked to leave and the connection
// should close. Lines are handled strictly one at a time by the caller.
func (s *Session) HandleLine(ctx context.Context, line string) bool {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return false
	}
	command := strings.ToLower(fields[0])
	args := fields[1:]

	ctx, span := telemetry.Tracer("game").Start(ctx, "session.command")
	span.SetAttributes(
		attribute.String("session.id", s.id),
		attribute.String("session.state", s.state.String()),
		attribute.String("session.command", command),
	)
	defer span.End()

	switch s.state {
	case StateMainMenu:
		return s.menuCommand(ctx, command, args)
	case StateCreation:
		s.creationInput(fields[0], command)
		return false
	case StatePlaying:
		return s.playingCommand(ctx, command, args)
	case StateDialogue:
		s.dialogueCommand(ctx, command, args, strings.TrimSpace(line))
		return false
	case StateCombat:
		s.combatCommand(ctx, command, args)
		return false
	default:
		s.out.Notice("Nothing happens.")
		return false
	}
}

// ===== MAIN_MENU =====

func (s *Session) menuCommand(ctx context.Context, command string, args []string) bool {
	switch command {
	case "new":
		s.creation = creationFlow{}
		s.state = StateCreation
		s.out.Narrate("What is your name, traveler?")
	case "load":
		if len(args) == 0 {
			s.out.Notice("Load whom? Usage: load <name>")
			return false
		}
		s.loadCharacter(ctx, args[0])
	case "help":
		s.out.Help(menuHelp)
	case "quit":
		s.out.Farewell()
		return true
	default:
		s.out.Notice("Unknown command. Try: new, load <name>, help, quit.")
	}
	return false
}

func (s *Session) loadCharacter(ctx context.Context, name string) {
	rec, err := s.store.Load(ctx, name)
	if err != nil {
		if errors.IsNotFound(err) {
			s.out.Notice("No save found for %s.", name)
			return
		}
		slog.ErrorContext(ctx, "load failed", "session", s.id, "player", name, "error", err)
		s.out.Alert("Loading failed. Try again in a moment.")
		return
	}
	player, err := store.Materialize(rec, s.world.Registry())
	if err != nil {
		slog.ErrorContext(ctx, "save no longer readable", "session", s.id, "player", name, "error", err)
		s.out.Alert("That save can't be read anymore.")
		return
	}
	if s.world.Scene(player.SceneID) == nil {
		player.SceneID = world.StartSceneID
	}
	s.player = player
	s.roller = dice.Restore(rec.RNGSeed, rec.RNGPosition)
	s.state = StatePlaying
	s.out.Notice("Welcome back, %s.", player.Name)
	s.showScene()
}

// ===== CHARACTER_CREATION =====

// creationInput consumes one line of the creation flow. rawToken keeps the
// player's capitalization for the name; token is its lowered form for
// class matching.
func (s *Session) creationInput(rawToken, token string) {
	if s.creation.step == 0 {
		s.creation.name = rawToken
		s.creation.step = 1
		s.out.Narrate("Well met, " + rawToken + ". Now choose your path.")
		s.out.ClassMenu(s.world.Registry().Classes())
		return
	}

	classes := s.world.Registry().Classes()
	var chosen *gamedata.ClassDef
	if n, err := strconv.Atoi(token); err == nil && n >= 1 && n <= len(classes) {
		chosen = &classes[n-1]
	} else {
		for i := range classes {
			if strings.EqualFold(classes[i].ID, token) || strings.EqualFold(classes[i].Name, token) {
				chosen = &classes[i]
				break
			}
		}
	}
	if chosen == nil {
		s.out.Alert("Pick 1, 2, or 3, or name a class.")
		return
	}

	s.player = entity.NewPlayer(s.creation.name, chosen, s.world.Registry().SkillsFor(chosen.Skills))
	s.creation = creationFlow{}
	s.state = StatePlaying
	s.out.Narrate("Your character is ready. Welcome, " + s.player.Name + " the " + chosen.Name + "!")
	s.showScene()
}

// ===== Shared rendering =====

func (s *Session) currentScene() *world.Scene {
	return s.world.Scene(s.player.SceneID)
}

func (s *Session) showScene() {
	s.out.SceneView(s.currentScene())
}

func npcProfile(npc *world.NPC) dialogue.NPCProfile {
	return dialogue.NPCProfile{
		ID:          npc.ID(),
		Name:        npc.Name(),
		Profession:  npc.Def.Profession,
		Personality: npc.Def.Personality,
		Background:  npc.Def.Background,
	}
}

func (s *Session) playerProfile() dialogue.PlayerProfile {
	return dialogue.PlayerProfile{
		Name:  s.player.Name,
		Class: s.player.Class.String(),
		Level: s.player.Level,
	}
}

// complain renders a failed operation: player mistakes become notices,
// anything else is logged and masked behind a generic line.
func (s *Session) complain(ctx context.Context, err error) {
	if errors.IsUserFacing(err) {
		s.out.Notice("%s", upperFirst(errors.GetMessage(err)))
		return
	}
	slog.ErrorContext(ctx, "command failed", "session", s.id, "error", err)
	s.out.Alert("Something went wrong. Try again.")
}

func upperFirst(text string) string {
	r, size := utf8.DecodeRuneInString(text)
	if r == utf8.RuneError {
		return text
	}
	return string(unicode.ToUpper(r)) + text[size:]
}
