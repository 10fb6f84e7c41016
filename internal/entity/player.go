// Package entity provides the player character, enemies, and the things
// they carry.
package entity

import (
	"strings"

	"github.com/AsperforMias/cli-game/internal/gamedata"
)

// Class represents a player's class.
type Class int

const (
	ClassWarrior Class = iota
	ClassMage
	ClassRogue
)

// String returns the class display name.
func (c Class) String() string {
	switch c {
	case ClassWarrior:
		return "Warrior"
	case ClassMage:
		return "Mage"
	case ClassRogue:
		return "Rogue"
	default:
		return "Unknown"
	}
}

// ID returns the class identifier for data lookup.
func (c Class) ID() string {
	switch c {
	case ClassWarrior:
		return "warrior"
	case ClassMage:
		return "mage"
	case ClassRogue:
		return "rogue"
	default:
		return "unknown"
	}
}

// ClassFromID maps a class identifier to a Class.
func ClassFromID(id string) (Class, bool) {
	switch strings.ToLower(id) {
	case "warrior":
		return ClassWarrior, true
	case "mage":
		return ClassMage, true
	case "rogue":
		return ClassRogue, true
	default:
		return ClassWarrior, false
	}
}

// Equipment slot names.
const (
	SlotWeapon    = "weapon"
	SlotArmor     = "armor"
	SlotAccessory = "accessory"
)

// MaxInventory is the number of inventory slots a player has.
const MaxInventory = 20

// Player is a session's character. Attack, Defense, Agility, and
// Intelligence are base stats: only level-ups write them. Equipment bonuses
// are applied on demand by TotalAttack, TotalDefense, and EffectiveAgility.
type Player struct {
	Name  string
	Class Class

	Level     int
	Exp       int
	ExpNeeded int

	HP, MaxHP    int
	MP, MaxMP    int
	Attack       int
	Defense      int
	Agility      int
	Intelligence int

	Money     int
	Inventory []*Item
	Equipment map[string]*Item
	Skills    []*Skill

	ActiveQuests    []*QuestProgress
	CompletedQuests []string

	SceneID string

	growth    gamedata.StatBlock
	defending bool
}

// NewPlayer creates a level 1 player from a class definition and the class's
// starting skills.
func NewPlayer(name string, classDef *gamedata.ClassDef, skillDefs []*gamedata.SkillDef) *Player {
	class, _ := ClassFromID(classDef.ID)
	p := &Player{
		Name:         name,
		Class:        class,
		Level:        1,
		Exp:          0,
		ExpNeeded:    100,
		HP:           classDef.Stats.HP,
		MaxHP:        classDef.Stats.HP,
		MP:           classDef.Stats.MP,
		MaxMP:        classDef.Stats.MP,
		Attack:       classDef.Stats.Attack,
		Defense:      classDef.Stats.Defense,
		Agility:      classDef.Stats.Agility,
		Intelligence: classDef.Stats.Intelligence,
		Money:        100,
		Equipment:    make(map[string]*Item),
		SceneID:      "starting_village",
		growth:       classDef.Growth,
	}
	for _, def := range skillDefs {
		p.Skills = append(p.Skills, &Skill{Def: def, Level: 1})
	}
	return p
}

// GainExperience adds experience and applies any level-ups, cascading when
// one award crosses several thresholds. Each level applies the class growth
// table and restores HP and MP to their new maximums. Returns the number of
// levels gained.
func (p *Player) GainExperience(amount int) int {
	if amount <= 0 {
		return 0
	}
	p.Exp += amount
	levels := 0
	for p.Exp >= p.ExpNeeded {
		p.Exp -= p.ExpNeeded
		p.Level++
		p.ExpNeeded = int(float64(p.ExpNeeded) * 1.2)
		p.MaxHP += p.growth.HP
		p.MaxMP += p.growth.MP
		p.Attack += p.growth.Attack
		p.Defense += p.growth.Defense
		p.Agility += p.growth.Agility
		p.Intelligence += p.growth.Intelligence
		p.HP = p.MaxHP
		p.MP = p.MaxMP
		levels++
	}
	return levels
}

// TotalAttack returns base attack plus the equipped weapon's bonus.
func (p *Player) TotalAttack() int {
	total := p.Attack
	if weapon := p.Equipment[SlotWeapon]; weapon != nil {
		total += weapon.Def.Attack
	}
	return total
}

// TotalDefense returns base defense plus the equipped armor's bonus.
func (p *Player) TotalDefense() int {
	total := p.Defense
	if armor := p.Equipment[SlotArmor]; armor != nil {
		total += armor.Def.Defense
	}
	return total
}

// EffectiveAgility returns base agility plus the equipped accessory's bonus.
func (p *Player) EffectiveAgility() int {
	total := p.Agility
	if accessory := p.Equipment[SlotAccessory]; accessory != nil {
		total += accessory.Def.Agility
	}
	return total
}

// =============================================================================
// Combat stat mutators
// =============================================================================

// IsAlive returns true if the player has HP remaining.
func (p *Player) IsAlive() bool { return p.HP > 0 }

// TakeDamage reduces HP and returns actual damage taken.
func (p *Player) TakeDamage(amount int) int {
	if amount <= 0 {
		return 0
	}
	actual := amount
	if actual > p.HP {
		actual = p.HP
	}
	p.HP -= actual
	return actual
}

// HealHP restores HP and returns the actual amount healed.
func (p *Player) HealHP(amount int) int {
	if amount <= 0 {
		return 0
	}
	actual := amount
	if p.HP+actual > p.MaxHP {
		actual = p.MaxHP - p.HP
	}
	p.HP += actual
	return actual
}

// SpendMP reduces MP and returns false if insufficient.
func (p *Player) SpendMP(amount int) bool {
	if p.MP < amount {
		return false
	}
	p.MP -= amount
	return true
}

// RestoreMP restores MP and returns the actual amount restored.
func (p *Player) RestoreMP(amount int) int {
	if amount <= 0 {
		return 0
	}
	actual := amount
	if p.MP+actual > p.MaxMP {
		actual = p.MaxMP - p.MP
	}
	p.MP += actual
	return actual
}

// SetDefending marks the player as defending until the next hit.
func (p *Player) SetDefending() {
	p.defending = true
}

// ConsumeDefending reports whether the player was defending and clears the
// flag. Defense applies to one incoming attack only.
func (p *Player) ConsumeDefending() bool {
	was := p.defending
	p.defending = false
	return was
}
