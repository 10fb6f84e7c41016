package entity

import (
	"github.com/AsperforMias/cli-game/internal/errors"
	"github.com/AsperforMias/cli-game/internal/gamedata"
)

// QuestProgress tracks an accepted quest and its kill count.
type QuestProgress struct {
	Def   *gamedata.QuestDef
	Kills int
}

// Complete reports whether the quest's target has been met.
func (q *QuestProgress) Complete() bool {
	return q.Kills >= q.Def.TargetCount
}

// AcceptQuest adds a quest to the player's log after checking the level
// requirement and that it is neither active nor already finished.
func (p *Player) AcceptQuest(def *gamedata.QuestDef) error {
	if p.Level < def.RequiredLevel {
		return errors.FailedPreconditionf("you must be level %d for %s", def.RequiredLevel, def.Name)
	}
	for _, q := range p.ActiveQuests {
		if q.Def.ID == def.ID {
			return errors.FailedPreconditionf("you already took %s", def.Name)
		}
	}
	for _, id := range p.CompletedQuests {
		if id == def.ID {
			return errors.FailedPreconditionf("you already finished %s", def.Name)
		}
	}
	p.ActiveQuests = append(p.ActiveQuests, &QuestProgress{Def: def})
	return nil
}

// QuestByID returns the active quest with the given ID, or nil.
func (p *Player) QuestByID(id string) *QuestProgress {
	for _, q := range p.ActiveQuests {
		if q.Def.ID == id {
			return q
		}
	}
	return nil
}

// HasCompletedQuest reports whether the quest was already turned in.
func (p *Player) HasCompletedQuest(id string) bool {
	for _, completed := range p.CompletedQuests {
		if completed == id {
			return true
		}
	}
	return false
}

// RecordKill counts a defeated enemy toward every active quest targeting it.
func (p *Player) RecordKill(enemyID string) {
	for _, q := range p.ActiveQuests {
		if q.Def.TargetEnemy == enemyID {
			q.Kills++
		}
	}
}

// CompleteQuest turns in a finished quest: the reward experience, money,
// and items are granted (items that do not fit are dropped silently) and
// the quest moves to the completed list. Returns the levels gained from the
// reward experience.
func (p *Player) CompleteQuest(q *QuestProgress, rewardItems []*gamedata.ItemDef) (int, error) {
	if !q.Complete() {
		return 0, errors.FailedPreconditionf("%s is not finished: %d/%d", q.Def.Name, q.Kills, q.Def.TargetCount)
	}
	for idx, active := range p.ActiveQuests {
		if active == q {
			p.ActiveQuests = append(p.ActiveQuests[:idx], p.ActiveQuests[idx+1:]...)
			break
		}
	}
	p.CompletedQuests = append(p.CompletedQuests, q.Def.ID)
	p.Money += q.Def.RewardMoney
	for _, def := range rewardItems {
		_ = p.AddItem(def, 1)
	}
	return p.GainExperience(q.Def.RewardExp), nil
}
