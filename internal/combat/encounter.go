package combat

import (
	"fmt"

	"github.com/AsperforMias/cli-game/internal/dice"
	"github.com/AsperforMias/cli-game/internal/entity"
	"github.com/AsperforMias/cli-game/internal/errors"
	"github.com/AsperforMias/cli-game/internal/gamedata"
)

// ActionKind enumerates the moves available during a fight.
type ActionKind int

const (
	ActionAttack ActionKind = iota
	ActionDefend
	ActionSkill
	ActionItem
	ActionFlee
)

// String names the action for logs.
func (k ActionKind) String() string {
	switch k {
	case ActionAttack:
		return "attack"
	case ActionDefend:
		return "defend"
	case ActionSkill:
		return "skill"
	case ActionItem:
		return "item"
	case ActionFlee:
		return "flee"
	default:
		return "unknown"
	}
}

// Action is one player command inside an encounter. Name carries the
// skill or item argument for ActionSkill and ActionItem.
type Action struct {
	Kind ActionKind
	Name string
}

// Outcome is the terminal result of an encounter.
type Outcome int

const (
	OutcomeNone Outcome = iota // fight still running
	OutcomePlayerWin
	OutcomeEnemyWin
	OutcomeFled
	OutcomeEnemyFled
	OutcomeDraw
)

// String returns the log tag for an outcome. An enemy escaping is
// tagged enemy_fled, never conflated with player_win: it grants no
// rewards.
func (o Outcome) String() string {
	switch o {
	case OutcomePlayerWin:
		return "player_win"
	case OutcomeEnemyWin:
		return "enemy_win"
	case OutcomeFled:
		return "fled"
	case OutcomeEnemyFled:
		return "enemy_fled"
	case OutcomeDraw:
		return "draw"
	default:
		return "ongoing"
	}
}

// MaxTurns caps how many full cycles an encounter may run before it is
// called off as a draw.
const MaxTurns = 100

// ItemLookup resolves loot table entries to item definitions. The
// gamedata registry satisfies it.
type ItemLookup interface {
	ItemByID(id string) *gamedata.ItemDef
}

// Encounter is one fight between the player and a single enemy.
type Encounter struct {
	Player *entity.Player
	Enemy  *entity.Enemy

	// Turn is the 1-based number of the cycle currently underway.
	Turn int
	// AttackBonus accumulates buff skill effects. It lasts for this
	// fight only and is discarded with the encounter.
	AttackBonus int

	items   ItemLookup
	roller  *dice.Roller
	log     []string
	outcome Outcome
}

// NewEncounter starts a fight and writes the opening line to its log.
func NewEncounter(player *entity.Player, enemy *entity.Enemy, items ItemLookup, roller *dice.Roller) *Encounter {
	e := &Encounter{
		Player: player,
		Enemy:  enemy,
		Turn:   1,
		items:  items,
		roller: roller,
	}
	e.logf("%s (Lv.%d) blocks your way!", enemy.Name, enemy.Level)
	return e
}

// Outcome returns OutcomeNone until the fight reaches a terminal state.
func (e *Encounter) Outcome() Outcome { return e.outcome }

// Over reports whether the fight has ended.
func (e *Encounter) Over() bool { return e.outcome != OutcomeNone }

// Log returns every narration line written so far.
func (e *Encounter) Log() []string { return e.log }

func (e *Encounter) logf(format string, args ...any) {
	e.log = append(e.log, fmt.Sprintf(format, args...))
}

// PlayerTurn runs one full combat cycle: the player's action, the death
// and escape checks, then the enemy's response. It returns the
// narration produced by the cycle. A rejected action (unknown skill,
// missing item, not enough MP) returns an error and leaves the cycle
// unplayed, so the player may issue a corrected command for the same
// turn. A failed flee attempt is not an error: the attempt itself
// spends the player's action and the enemy still responds.
func (e *Encounter) PlayerTurn(action Action) ([]string, error) {
	if e.Over() {
		return nil, errors.FailedPrecondition("the fight is already over")
	}
	mark := len(e.log)

	switch action.Kind {
	case ActionAttack:
		damage := DamageRoll(e.Player.TotalAttack()+e.AttackBonus, e.Enemy.Defense, e.roller)
		actual := e.Enemy.TakeDamage(damage)
		e.logf("%s attacks %s for %d damage.", e.Player.Name, e.Enemy.Name, actual)

	case ActionDefend:
		e.Player.SetDefending()
		e.logf("%s takes a defensive stance.", e.Player.Name)

	case ActionSkill:
		if err := e.playerSkill(action.Name); err != nil {
			return nil, err
		}

	case ActionItem:
		if err := e.playerItem(action.Name); err != nil {
			return nil, err
		}

	case ActionFlee:
		chance := FleeChance(e.Player.EffectiveAgility(), e.Enemy.Agility)
		if e.roller.Chance(chance) {
			e.logf("%s escapes from the fight!", e.Player.Name)
			e.outcome = OutcomeFled
			return e.log[mark:], nil
		}
		e.logf("%s tries to flee but can't get away!", e.Player.Name)

	default:
		return nil, errors.InvalidArgument("that won't work in a fight")
	}

	if !e.Enemy.IsAlive() {
		e.win()
		return e.log[mark:], nil
	}

	e.enemyTurn()

	if !e.Player.IsAlive() {
		e.logf("%s collapses...", e.Player.Name)
		e.outcome = OutcomeEnemyWin
		return e.log[mark:], nil
	}
	if e.Over() {
		return e.log[mark:], nil
	}

	// A guard only covers the cycle it was raised in.
	e.Player.ConsumeDefending()

	e.Turn++
	if e.Turn > MaxTurns {
		e.logf("Exhausted, both sides back away from the endless fight.")
		e.outcome = OutcomeDraw
	}
	return e.log[mark:], nil
}

func (e *Encounter) playerSkill(name string) error {
	skill := e.Player.FindSkill(name)
	if skill == nil {
		return errors.NotFoundf("you haven't learned %s", name)
	}
	if !skill.Def.IsCombat() {
		return errors.InvalidArgumentf("%s can't be used in a fight", skill.Def.Name)
	}
	use, err := e.Player.UseSkill(name)
	if err != nil {
		return err
	}
	switch {
	case use.Damage > 0:
		actual := e.Enemy.TakeDamage(use.Damage)
		e.logf("%s casts %s, hitting %s for %d damage.", e.Player.Name, skill.Def.Name, e.Enemy.Name, actual)
	case use.AttackBonus > 0:
		e.AttackBonus += use.AttackBonus
		e.logf("%s uses %s! Attack up by %d for this fight.", e.Player.Name, skill.Def.Name, use.AttackBonus)
	default:
		e.logf("%s uses %s, but nothing visible happens.", e.Player.Name, skill.Def.Name)
	}
	if use.LeveledUp {
		e.logf("%s reached level %d!", skill.Def.Name, skill.Level)
	}
	return nil
}

func (e *Encounter) playerItem(name string) error {
	use, err := e.Player.UseItem(name)
	if err != nil {
		return err
	}
	switch {
	case use.Healed > 0:
		e.logf("%s drinks a %s, recovering %d HP.", e.Player.Name, use.Name, use.Healed)
	case use.Restored > 0:
		e.logf("%s drinks a %s, recovering %d MP.", e.Player.Name, use.Name, use.Restored)
	default:
		e.logf("%s uses a %s to no effect.", e.Player.Name, use.Name)
	}
	return nil
}

func (e *Encounter) enemyTurn() {
	switch ChooseAction(e.Enemy, e.Player, e.roller) {
	case ActionAttack:
		damage := DamageRoll(e.Enemy.Attack, e.Player.TotalDefense(), e.roller)
		if e.Player.ConsumeDefending() {
			damage /= 2
			if damage < 1 {
				damage = 1
			}
			e.logf("%s's guard softens the blow.", e.Player.Name)
		}
		actual := e.Player.TakeDamage(damage)
		e.logf("%s attacks %s for %d damage.", e.Enemy.Name, e.Player.Name, actual)

	case ActionDefend:
		e.logf("%s takes a defensive stance.", e.Enemy.Name)

	case ActionFlee:
		if e.roller.Chance(enemyFleeChance) {
			e.logf("%s turns tail and flees! No spoils this time.", e.Enemy.Name)
			e.outcome = OutcomeEnemyFled
		} else {
			e.logf("%s tries to flee but fails!", e.Enemy.Name)
		}
	}
}

// win settles a defeated enemy: experience, money, quest kill credit
// and loot rolls. Loot that does not fit the inventory is dropped
// without failing the fight.
func (e *Encounter) win() {
	e.outcome = OutcomePlayerWin
	e.logf("%s is defeated!", e.Enemy.Name)
	e.logf("%s gains %d experience and %d coins.", e.Player.Name, e.Enemy.ExpReward, e.Enemy.MoneyReward)

	levels := e.Player.GainExperience(e.Enemy.ExpReward)
	if levels > 0 {
		e.logf("%s reached level %d!", e.Player.Name, e.Player.Level)
	}
	e.Player.Money += e.Enemy.MoneyReward
	e.Player.RecordKill(e.Enemy.ID)

	for _, entry := range e.Enemy.Loot {
		if !e.roller.Chance(entry.Chance) {
			continue
		}
		def := e.items.ItemByID(entry.ItemID)
		if def == nil {
			continue
		}
		if err := e.Player.AddItem(def, 1); err != nil {
			continue
		}
		e.logf("%s drops %s.", e.Enemy.Name, def.Name)
	}
}
