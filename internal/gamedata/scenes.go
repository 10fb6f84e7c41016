package gamedata

// ExitDef is a directed connection out of a scene.
type ExitDef struct {
	Target      string `json:"target"`
	Description string `json:"description"`
}

// EncounterKind distinguishes what an encounter table entry produces.
type EncounterKind string

const (
	EncounterEnemy    EncounterKind = "enemy"
	EncounterTreasure EncounterKind = "treasure"
)

// EncounterEntry is one roll in a scene's encounter table. Entries are
// tried in order on entry to an unsafe scene; the first success fires and
// the rest are skipped.
type EncounterEntry struct {
	Kind    EncounterKind `json:"kind"`
	EnemyID string        `json:"enemyId,omitempty"`
	ItemID  string        `json:"itemId,omitempty"`
	Chance  float64       `json:"chance"`
}

// SceneDef defines a location loaded from JSON.
type SceneDef struct {
	ID          string             `json:"id"`
	Name        string             `json:"name"`
	Description string             `json:"description"`
	Art         []string           `json:"art,omitempty"` // Optional ASCII art lines
	Safe        bool               `json:"safe"`          // Unsafe scenes roll encounters and allow fights
	Exits       map[string]ExitDef `json:"exits"`         // Keyed by direction (north/south/east/west)
	NPCIDs      []string           `json:"npcs,omitempty"`
	Encounters  []EncounterEntry   `json:"encounters,omitempty"`
}

// ScenesFile represents the structure of scenes.json.
type ScenesFile struct {
	Scenes []SceneDef `json:"scenes"`
}

// LoadScenes loads scene definitions from the embedded scenes.json file.
func LoadScenes() ([]SceneDef, error) {
	file, err := Load[ScenesFile]("scenes.json")
	if err != nil {
		return nil, err
	}
	return file.Scenes, nil
}
