package entity

import "github.com/AsperforMias/cli-game/internal/gamedata"

// Enemy is a combat opponent instantiated from a template or a hostile
// NPC's combat profile. It lives only for the duration of one encounter.
type Enemy struct {
	ID    string
	Name  string
	Level int

	HP, MaxHP int
	Attack    int
	Defense   int
	Agility   int

	ExpReward   int
	MoneyReward int
	AI          gamedata.AIPolicy
	Loot        []gamedata.LootEntry
}

// Per-level scaling applied on top of a template's level 1 baseline.
const (
	enemyHPPerLevel      = 15
	enemyAttackPerLevel  = 2
	enemyDefensePerLevel = 1
	enemyAgilityPerLevel = 1
	enemyExpPerLevel     = 25
	enemyMoneyPerLevel   = 10
)

// NewEnemyFromDef instantiates an enemy template at the given level.
// Levels below 1 are treated as 1.
func NewEnemyFromDef(def *gamedata.EnemyDef, level int) *Enemy {
	if level < 1 {
		level = 1
	}
	above := level - 1
	hp := def.HP + enemyHPPerLevel*above
	return &Enemy{
		ID:          def.ID,
		Name:        def.Name,
		Level:       level,
		HP:          hp,
		MaxHP:       hp,
		Attack:      def.Attack + enemyAttackPerLevel*above,
		Defense:     def.Defense + enemyDefensePerLevel*above,
		Agility:     def.Agility + enemyAgilityPerLevel*above,
		ExpReward:   enemyExpPerLevel * level,
		MoneyReward: enemyMoneyPerLevel * level,
		AI:          def.AI,
		Loot:        def.Loot,
	}
}

// NewEnemyFromProfile instantiates a hostile NPC's fixed combat profile.
// The NPC's ID and name carry over so quest kills and narration line up.
func NewEnemyFromProfile(id, name string, profile *gamedata.CombatProfile) *Enemy {
	level := profile.Level
	if level < 1 {
		level = 1
	}
	return &Enemy{
		ID:          id,
		Name:        name,
		Level:       level,
		HP:          profile.HP,
		MaxHP:       profile.HP,
		Attack:      profile.Attack,
		Defense:     profile.Defense,
		Agility:     profile.Agility,
		ExpReward:   profile.ExpReward,
		MoneyReward: profile.MoneyReward,
		AI:          profile.AI,
		Loot:        profile.Loot,
	}
}

// IsAlive returns true if the enemy has HP remaining.
func (e *Enemy) IsAlive() bool { return e.HP > 0 }

// TakeDamage reduces HP and returns actual damage taken.
func (e *Enemy) TakeDamage(amount int) int {
	if amount <= 0 {
		return 0
	}
	actual := amount
	if actual > e.HP {
		actual = e.HP
	}
	e.HP -= actual
	return actual
}
