package gamedata

// Capability tags what a player can do with an NPC beyond talking.
type Capability string

const (
	CapVillager   Capability = "villager"
	CapMerchant   Capability = "merchant"
	CapQuestGiver Capability = "quest_giver"
	CapHostile    Capability = "hostile"
)

// ShopEntry is one line of a merchant's stock. Stock -1 means unlimited.
type ShopEntry struct {
	ItemID string `json:"itemId"`
	Price  int    `json:"price"`
	Stock  int    `json:"stock"`
}

// QuestDef defines a kill quest offered by a quest giver.
type QuestDef struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	Description   string   `json:"description"`
	TargetEnemy   string   `json:"targetEnemy"`
	TargetCount   int      `json:"targetCount"`
	RewardExp     int      `json:"rewardExp"`
	RewardMoney   int      `json:"rewardMoney"`
	RewardItems   []string `json:"rewardItems,omitempty"`
	RequiredLevel int      `json:"requiredLevel"`
}

// CombatProfile is the fixed fighting statline of a hostile NPC. Unlike
// enemy templates these do not scale with player level, so rewards are
// explicit.
type CombatProfile struct {
	Level       int         `json:"level"`
	HP          int         `json:"hp"`
	Attack      int         `json:"attack"`
	Defense     int         `json:"defense"`
	Agility     int         `json:"agility"`
	AI          AIPolicy    `json:"ai"`
	ExpReward   int         `json:"expReward"`
	MoneyReward int         `json:"moneyReward"`
	Loot        []LootEntry `json:"loot,omitempty"`
}

// NPCDef defines a non-player character loaded from JSON. The profession,
// personality, and background fields feed the dialogue prompt.
type NPCDef struct {
	ID          string         `json:"id"`
	Name        string         `json:"name"`
	Description string         `json:"description"`
	Profession  string         `json:"profession"`
	Personality string         `json:"personality"`
	Background  string         `json:"background"`
	Capability  Capability     `json:"capability"`
	Shop        []ShopEntry    `json:"shop,omitempty"`   // Merchants only
	Quests      []QuestDef     `json:"quests,omitempty"` // Quest givers only
	Combat      *CombatProfile `json:"combat,omitempty"` // Hostiles only
}

// NPCsFile represents the structure of npcs.json.
type NPCsFile struct {
	NPCs []NPCDef `json:"npcs"`
}

// LoadNPCs loads NPC definitions from the embedded npcs.json file.
func LoadNPCs() ([]NPCDef, error) {
	file, err := Load[NPCsFile]("npcs.json")
	if err != nil {
		return nil, err
	}
	return file.NPCs, nil
}
