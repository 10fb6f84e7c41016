package entity

import (
	"strings"

	"github.com/AsperforMias/cli-game/internal/errors"
	"github.com/AsperforMias/cli-game/internal/gamedata"
)

// Skill is a technique the player has learned, with its own level and
// training progress independent of the character level.
type Skill struct {
	Def   *gamedata.SkillDef
	Level int
	Exp   int
}

// MPCost returns the cost to use the skill at its current level, never
// below 1.
func (s *Skill) MPCost() int {
	cost := s.Def.MPCost - s.Level
	if cost < 1 {
		cost = 1
	}
	return cost
}

// Matches reports whether the skill answers to the given name or ID,
// case-insensitively.
func (s *Skill) Matches(nameOrID string) bool {
	return strings.EqualFold(s.Def.ID, nameOrID) || strings.EqualFold(s.Def.Name, nameOrID)
}

// FindSkill returns the player's skill matching the given name or ID, or nil.
func (p *Player) FindSkill(nameOrID string) *Skill {
	for _, skill := range p.Skills {
		if skill.Matches(nameOrID) {
			return skill
		}
	}
	return nil
}

// SkillUse reports what using a skill did.
type SkillUse struct {
	Skill       *Skill
	MPSpent     int
	Damage      int // For damage skills, the amount to inflict
	AttackBonus int // For buff skills, the attack raise for this encounter
	LeveledUp   bool
}

// UseSkill spends MP on a skill and computes its effect. Damage skills
// report the amount to deal, buff skills the encounter attack raise, and
// passive skills have no combat effect. Every use trains the skill: at
// exp >= level*10 the skill levels up and training resets.
func (p *Player) UseSkill(nameOrID string) (*SkillUse, error) {
	skill := p.FindSkill(nameOrID)
	if skill == nil {
		return nil, errors.NotFoundf("you haven't learned %s", nameOrID)
	}
	cost := skill.MPCost()
	if !p.SpendMP(cost) {
		return nil, errors.FailedPreconditionf("not enough MP for %s (need %d)", skill.Def.Name, cost)
	}

	use := &SkillUse{Skill: skill, MPSpent: cost}
	switch skill.Def.Kind {
	case gamedata.SkillDamage:
		use.Damage = skill.Def.Power + skill.Def.PerLevel*skill.Level
	case gamedata.SkillBuff:
		use.AttackBonus = skill.Def.PerLevel * skill.Level
	}

	skill.Exp++
	if skill.Exp >= skill.Level*10 {
		skill.Level++
		skill.Exp = 0
		use.LeveledUp = true
	}
	return use, nil
}
