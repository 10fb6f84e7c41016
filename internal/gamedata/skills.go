package gamedata

// =============================================================================
// SKILL SYSTEM DESIGN
// =============================================================================
//
// Overview:
// ---------
// Skills are data-driven class techniques defined in JSON and loaded at
// startup. Each class starts with three. A character tracks a level and an
// experience counter per skill; both live on the character, not here.
//
// 1. SkillKind - what using the skill does in combat:
//    - damage:  hits the enemy for Power + PerLevel * skillLevel
//    - buff:    raises the user's attack by PerLevel * skillLevel for the
//               rest of the encounter
//    - passive: no combat effect; using it still trains the technique
//
// 2. MP cost:
//    cost = max(1, MPCost - skillLevel)
//    Training a skill makes it cheaper, never free.
//
// 3. Skill growth:
//    Every use grants 1 skill exp. At exp >= skillLevel * 10 the skill
//    levels up and exp resets to 0.
//
// JSON Schema:
// ------------
// {
//   "id": "fire_magic",
//   "name": "Fire Magic",
//   "description": "Conjures a burst of flame",
//   "kind": "damage",
//   "mpCost": 15,
//   "power": 20,
//   "perLevel": 5
// }

// SkillKind represents what a skill does when used.
type SkillKind string

const (
	SkillDamage  SkillKind = "damage"
	SkillBuff    SkillKind = "buff"
	SkillPassive SkillKind = "passive"
)

// SkillDef defines a skill loaded from JSON.
type SkillDef struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Kind        SkillKind `json:"kind"`
	MPCost      int       `json:"mpCost"`             // Base cost before the level discount
	Power       int       `json:"power,omitempty"`    // Flat effect amount
	PerLevel    int       `json:"perLevel,omitempty"` // Added effect per skill level
}

// IsCombat returns true if using the skill has a visible combat effect.
func (s *SkillDef) IsCombat() bool {
	return s.Kind == SkillDamage || s.Kind == SkillBuff
}

// SkillsFile represents the structure of skills.json.
type SkillsFile struct {
	Skills []SkillDef `json:"skills"`
}

// LoadSkills loads skill definitions from the embedded skills.json file.
func LoadSkills() ([]SkillDef, error) {
	file, err := Load[SkillsFile]("skills.json")
	if err != nil {
		return nil, err
	}
	return file.Skills, nil
}
