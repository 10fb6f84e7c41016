package gamedata

import "errors"

// Registry holds all loaded definitions and provides lookup by ID.
// Definition order from the JSON files is preserved for menus and listings.
type Registry struct {
	classes []ClassDef
	skills  []SkillDef
	items   []ItemDef
	enemies []EnemyDef
	scenes  []SceneDef
	npcs    []NPCDef

	classByID map[string]*ClassDef
	skillByID map[string]*SkillDef
	itemByID  map[string]*ItemDef
	enemyByID map[string]*EnemyDef
	sceneByID map[string]*SceneDef
	npcByID   map[string]*NPCDef
	questByID map[string]*QuestDef
}

// NewRegistry builds a registry from already-loaded definitions.
func NewRegistry(classes []ClassDef, skills []SkillDef, items []ItemDef, enemies []EnemyDef, scenes []SceneDef, npcs []NPCDef) *Registry {
	r := &Registry{
		classes:   classes,
		skills:    skills,
		items:     items,
		enemies:   enemies,
		scenes:    scenes,
		npcs:      npcs,
		classByID: make(map[string]*ClassDef, len(classes)),
		skillByID: make(map[string]*SkillDef, len(skills)),
		itemByID:  make(map[string]*ItemDef, len(items)),
		enemyByID: make(map[string]*EnemyDef, len(enemies)),
		sceneByID: make(map[string]*SceneDef, len(scenes)),
		npcByID:   make(map[string]*NPCDef, len(npcs)),
	}
	for i := range classes {
		r.classByID[classes[i].ID] = &r.classes[i]
	}
	for i := range skills {
		r.skillByID[skills[i].ID] = &r.skills[i]
	}
	for i := range items {
		r.itemByID[items[i].ID] = &r.items[i]
	}
	for i := range enemies {
		r.enemyByID[enemies[i].ID] = &r.enemies[i]
	}
	for i := range scenes {
		r.sceneByID[scenes[i].ID] = &r.scenes[i]
	}
	for i := range npcs {
		r.npcByID[npcs[i].ID] = &r.npcs[i]
	}
	r.questByID = make(map[string]*QuestDef)
	for i := range r.npcs {
		for j := range r.npcs[i].Quests {
			quest := &r.npcs[i].Quests[j]
			r.questByID[quest.ID] = quest
		}
	}
	return r
}

// LoadRegistry loads every embedded data file and builds the registry.
func LoadRegistry() (*Registry, error) {
	classes, err := LoadClasses()
	if err != nil {
		return nil, err
	}
	skills, err := LoadSkills()
	if err != nil {
		return nil, err
	}
	items, err := LoadItems()
	if err != nil {
		return nil, err
	}
	enemies, err := LoadEnemies()
	if err != nil {
		return nil, err
	}
	scenes, err := LoadScenes()
	if err != nil {
		return nil, err
	}
	npcs, err := LoadNPCs()
	if err != nil {
		return nil, err
	}
	if len(classes) == 0 {
		return nil, errors.New("no classes loaded from classes.json")
	}
	if len(scenes) == 0 {
		return nil, errors.New("no scenes loaded from scenes.json")
	}
	return NewRegistry(classes, skills, items, enemies, scenes, npcs), nil
}

// MustLoadRegistry loads the registry, panicking on error.
func MustLoadRegistry() *Registry {
	registry, err := LoadRegistry()
	if err != nil {
		panic(err)
	}
	return registry
}

// ClassByID returns the class definition with the given ID, or nil if not found.
func (r *Registry) ClassByID(id string) *ClassDef {
	return r.classByID[id]
}

// SkillByID returns the skill definition with the given ID, or nil if not found.
func (r *Registry) SkillByID(id string) *SkillDef {
	return r.skillByID[id]
}

// ItemByID returns the item definition with the given ID, or nil if not found.
func (r *Registry) ItemByID(id string) *ItemDef {
	return r.itemByID[id]
}

// EnemyByID returns the enemy definition with the given ID, or nil if not found.
func (r *Registry) EnemyByID(id string) *EnemyDef {
	return r.enemyByID[id]
}

// SceneByID returns the scene definition with the given ID, or nil if not found.
func (r *Registry) SceneByID(id string) *SceneDef {
	return r.sceneByID[id]
}

// NPCByID returns the NPC definition with the given ID, or nil if not found.
func (r *Registry) NPCByID(id string) *NPCDef {
	return r.npcByID[id]
}

// QuestByID returns the quest definition with the given ID, searching every
// quest giver's offers. Returns nil if not found.
func (r *Registry) QuestByID(id string) *QuestDef {
	return r.questByID[id]
}

// SkillsFor returns skill definitions for a list of IDs.
// Missing IDs are silently skipped.
func (r *Registry) SkillsFor(ids []string) []*SkillDef {
	result := make([]*SkillDef, 0, len(ids))
	for _, id := range ids {
		if skill := r.skillByID[id]; skill != nil {
			result = append(result, skill)
		}
	}
	return result
}

// Classes returns all class definitions in file order.
func (r *Registry) Classes() []ClassDef {
	return r.classes
}

// Skills returns all skill definitions in file order.
func (r *Registry) Skills() []SkillDef {
	return r.skills
}

// Items returns all item definitions in file order.
func (r *Registry) Items() []ItemDef {
	return r.items
}

// Enemies returns all enemy definitions in file order.
func (r *Registry) Enemies() []EnemyDef {
	return r.enemies
}

// Scenes returns all scene definitions in file order.
func (r *Registry) Scenes() []SceneDef {
	return r.scenes
}

// NPCs returns all NPC definitions in file order.
func (r *Registry) NPCs() []NPCDef {
	return r.npcs
}
