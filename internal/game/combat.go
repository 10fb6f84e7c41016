package game

import (
	"context"
	"strings"

	"go.opentelemetry.io/otel/attribute"

	"github.com/AsperforMias/cli-game/internal/combat"
	"github.com/AsperforMias/cli-game/internal/entity"
	"github.com/AsperforMias/cli-game/internal/telemetry"
	"github.com/AsperforMias/cli-game/internal/world"
)

// victoryRecap is how many closing log lines the victory banner repeats.
const victoryRecap = 5

// enterCombat opens an encounter and its span. hostileID is set when
// the opponent is a scene NPC so a win can mark it beaten; random
// spawns pass "".
func (s *Session) enterCombat(ctx context.Context, enemy *entity.Enemy, hostileID string) {
	s.encounter = combat.NewEncounter(s.player, enemy, s.world.Registry(), s.roller)
	s.hostileID = hostileID
	s.state = StateCombat

	_, s.combatSpan = telemetry.Tracer("game").Start(ctx, "session.encounter")
	s.combatSpan.SetAttributes(
		attribute.String("enemy.id", enemy.ID),
		attribute.Int("enemy.level", enemy.Level),
	)

	s.out.Blank()
	s.out.Narrate(s.encounter.Log()...)
	s.out.Combat(s.player, enemy, s.encounter.Turn)
}

// combatCommand maps a fight command onto one encounter cycle. A
// rejected action (unknown skill, missing item, not enough MP) leaves
// the cycle unplayed so the player can try again.
func (s *Session) combatCommand(ctx context.Context, command string, args []string) {
	var action combat.Action
	switch command {
	case "attack", "a":
		action = combat.Action{Kind: combat.ActionAttack}
	case "defend", "d":
		action = combat.Action{Kind: combat.ActionDefend}
	case "flee", "run":
		action = combat.Action{Kind: combat.ActionFlee}
	case "skill":
		if len(args) == 0 {
			s.out.Notice("Which skill? Usage: skill <name>")
			return
		}
		action = combat.Action{Kind: combat.ActionSkill, Name: strings.Join(args, " ")}
	case "use":
		if len(args) == 0 {
			s.out.Notice("Use what? Usage: use <item>")
			return
		}
		action = combat.Action{Kind: combat.ActionItem, Name: strings.Join(args, " ")}
	default:
		s.out.Notice("In a fight you can: attack, defend, skill <name>, use <item>, flee.")
		return
	}

	lines, err := s.encounter.PlayerTurn(action)
	if err != nil {
		s.complain(ctx, err)
		return
	}
	s.out.Narrate(lines...)
	if s.encounter.Over() {
		s.finishCombat()
		return
	}
	s.out.Combat(s.player, s.encounter.Enemy, s.encounter.Turn)
}

// finishCombat closes the span, applies the outcome policy, and drops
// back to the playing state.
func (s *Session) finishCombat() {
	e := s.encounter
	outcome := e.Outcome()
	if s.combatSpan != nil {
		s.combatSpan.SetAttributes(
			attribute.String("encounter.outcome", outcome.String()),
			attribute.Int("encounter.turns", e.Turn),
		)
		s.combatSpan.End()
		s.combatSpan = nil
	}
	hostileID := s.hostileID
	s.encounter = nil
	s.hostileID = ""
	s.state = StatePlaying

	switch outcome {
	case combat.OutcomePlayerWin:
		if hostileID != "" {
			s.defeated[hostileID] = true
		}
		s.out.Blank()
		s.out.Notice("Victory!")
		log := e.Log()
		if len(log) > victoryRecap {
			log = log[len(log)-victoryRecap:]
		}
		s.out.Narrate(log...)

	case combat.OutcomeEnemyWin:
		s.player.HP = s.player.MaxHP / 10
		if s.player.HP < 1 {
			s.player.HP = 1
		}
		s.player.SceneID = world.StartSceneID
		s.out.Blank()
		s.out.Alert("Everything goes dark...")
		s.out.Narrate("You wake at the village, bruised and lighter of spirit, but alive.")
		s.showScene()

	case combat.OutcomeFled:
		s.out.Notice("You got away in one piece.")

	case combat.OutcomeEnemyFled:
		s.out.Notice("The fight ends with nothing to show for it.")

	case combat.OutcomeDraw:
		s.out.Notice("The fight ends in a stalemate.")
	}
}
