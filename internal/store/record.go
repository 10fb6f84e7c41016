package store

import (
	"time"

	"github.com/AsperforMias/cli-game/internal/entity"
	"github.com/AsperforMias/cli-game/internal/errors"
	"github.com/AsperforMias/cli-game/internal/gamedata"
)

// ItemRecord is one inventory slot in a save.
type ItemRecord struct {
	ItemID   string `json:"itemId"`
	Quantity int    `json:"quantity"`
}

// SkillRecord is a learned skill and its training progress in a save.
type SkillRecord struct {
	SkillID string `json:"skillId"`
	Level   int    `json:"level"`
	Exp     int    `json:"exp"`
}

// QuestRecord is an accepted quest and its kill count in a save.
type QuestRecord struct {
	QuestID string `json:"questId"`
	Kills   int    `json:"kills"`
}

// PlayerRecord is the serialized form of a character. It carries everything
// needed to resume play, including the random stream seed and position so
// rolls after a load continue exactly where the save left off.
type PlayerRecord struct {
	Name         string `json:"name"`
	Class        string `json:"class"`
	Level        int    `json:"level"`
	Exp          int    `json:"exp"`
	ExpNeeded    int    `json:"expNeeded"`
	HP           int    `json:"hp"`
	MaxHP        int    `json:"maxHp"`
	MP           int    `json:"mp"`
	MaxMP        int    `json:"maxMp"`
	Attack       int    `json:"attack"`
	Defense      int    `json:"defense"`
	Agility      int    `json:"agility"`
	Intelligence int    `json:"intelligence"`
	Money        int    `json:"money"`
	SceneID      string `json:"sceneId"`

	Inventory       []ItemRecord      `json:"inventory,omitempty"`
	Equipment       map[string]string `json:"equipment,omitempty"` // Slot name to item ID
	Skills          []SkillRecord     `json:"skills,omitempty"`
	ActiveQuests    []QuestRecord     `json:"activeQuests,omitempty"`
	CompletedQuests []string          `json:"completedQuests,omitempty"`

	RNGSeed     int64     `json:"rngSeed"`
	RNGPosition int64     `json:"rngPosition"`
	SavedAt     time.Time `json:"savedAt"`
}

// Snapshot captures a player and their random stream state into a record.
func Snapshot(p *entity.Player, seed, position int64, now time.Time) *PlayerRecord {
	rec := &PlayerRecord{
		Name:         p.Name,
		Class:        p.Class.ID(),
		Level:        p.Level,
		Exp:          p.Exp,
		ExpNeeded:    p.ExpNeeded,
		HP:           p.HP,
		MaxHP:        p.MaxHP,
		MP:           p.MP,
		MaxMP:        p.MaxMP,
		Attack:       p.Attack,
		Defense:      p.Defense,
		Agility:      p.Agility,
		Intelligence: p.Intelligence,
		Money:        p.Money,
		SceneID:      p.SceneID,
		RNGSeed:      seed,
		RNGPosition:  position,
		SavedAt:      now,
	}
	for _, item := range p.Inventory {
		rec.Inventory = append(rec.Inventory, ItemRecord{ItemID: item.Def.ID, Quantity: item.Quantity})
	}
	if len(p.Equipment) > 0 {
		rec.Equipment = make(map[string]string, len(p.Equipment))
		for slot, item := range p.Equipment {
			rec.Equipment[slot] = item.Def.ID
		}
	}
	for _, skill := range p.Skills {
		rec.Skills = append(rec.Skills, SkillRecord{SkillID: skill.Def.ID, Level: skill.Level, Exp: skill.Exp})
	}
	for _, quest := range p.ActiveQuests {
		rec.ActiveQuests = append(rec.ActiveQuests, QuestRecord{QuestID: quest.Def.ID, Kills: quest.Kills})
	}
	rec.CompletedQuests = append(rec.CompletedQuests, p.CompletedQuests...)
	return rec
}

// Materialize rebuilds a player from a record against the current game
// data. The class must still exist; inventory items, equipment, skills,
// and quests whose definitions have left the data are dropped so old saves
// stay loadable.
func Materialize(rec *PlayerRecord, registry *gamedata.Registry) (*entity.Player, error) {
	classDef := registry.ClassByID(rec.Class)
	if classDef == nil {
		return nil, errors.NotFoundf("save for %s names unknown class %q", rec.Name, rec.Class)
	}

	p := entity.NewPlayer(rec.Name, classDef, nil)
	p.Level = rec.Level
	p.Exp = rec.Exp
	p.ExpNeeded = rec.ExpNeeded
	p.HP, p.MaxHP = rec.HP, rec.MaxHP
	p.MP, p.MaxMP = rec.MP, rec.MaxMP
	p.Attack = rec.Attack
	p.Defense = rec.Defense
	p.Agility = rec.Agility
	p.Intelligence = rec.Intelligence
	p.Money = rec.Money
	p.SceneID = rec.SceneID

	for _, slot := range rec.Inventory {
		def := registry.ItemByID(slot.ItemID)
		if def == nil {
			continue
		}
		p.Inventory = append(p.Inventory, &entity.Item{Def: def, Quantity: slot.Quantity})
	}
	for slot, id := range rec.Equipment {
		def := registry.ItemByID(id)
		if def == nil {
			continue
		}
		p.Equipment[slot] = &entity.Item{Def: def, Quantity: 1}
	}
	for _, sk := range rec.Skills {
		def := registry.SkillByID(sk.SkillID)
		if def == nil {
			continue
		}
		p.Skills = append(p.Skills, &entity.Skill{Def: def, Level: sk.Level, Exp: sk.Exp})
	}
	for _, q := range rec.ActiveQuests {
		def := registry.QuestByID(q.QuestID)
		if def == nil {
			continue
		}
		p.ActiveQuests = append(p.ActiveQuests, &entity.QuestProgress{Def: def, Kills: q.Kills})
	}
	p.CompletedQuests = append(p.CompletedQuests, rec.CompletedQuests...)
	return p, nil
}
