package gamedata

// AIPolicy names the decision rule an enemy follows in combat.
type AIPolicy string

const (
	AINormal     AIPolicy = "normal"
	AIAggressive AIPolicy = "aggressive"
	AIDefensive  AIPolicy = "defensive"
	AISmart      AIPolicy = "smart"
)

// LootEntry is one independent drop roll made when the enemy is defeated.
type LootEntry struct {
	ItemID string  `json:"itemId"`
	Chance float64 `json:"chance"`
}

// EnemyDef defines an enemy template loaded from JSON. Stats are the level 1
// baseline; spawning at a higher level adds +15 HP, +2 attack, +1 defense,
// and +1 agility per level above 1. Experience and money rewards scale as
// 25 and 10 per level.
type EnemyDef struct {
	ID          string      `json:"id"`
	Name        string      `json:"name"`
	Description string      `json:"description"`
	HP          int         `json:"hp"`
	Attack      int         `json:"attack"`
	Defense     int         `json:"defense"`
	Agility     int         `json:"agility"`
	AI          AIPolicy    `json:"ai"`
	Loot        []LootEntry `json:"loot,omitempty"`
}

// EnemiesFile represents the structure of enemies.json.
type EnemiesFile struct {
	Enemies []EnemyDef `json:"enemies"`
}

// LoadEnemies loads enemy definitions from the embedded enemies.json file.
func LoadEnemies() ([]EnemyDef, error) {
	file, err := Load[EnemiesFile]("enemies.json")
	if err != nil {
		return nil, err
	}
	return file.Enemies, nil
}
