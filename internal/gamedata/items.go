package gamedata

// ItemKind represents the broad category an item belongs to. Weapons,
// armor, and accessories are equippable; consumables stack and can be used;
// misc items only exist to be sold or turned in.
type ItemKind string

const (
	ItemWeapon     ItemKind = "weapon"
	ItemArmor      ItemKind = "armor"
	ItemAccessory  ItemKind = "accessory"
	ItemConsumable ItemKind = "consumable"
	ItemMisc       ItemKind = "misc"
)

// ItemDef defines an item loaded from JSON. The stat and effect fields are
// zero except where the item kind makes them meaningful.
type ItemDef struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Kind        ItemKind `json:"kind"`
	Price       int      `json:"price"`
	Attack      int      `json:"attack,omitempty"`  // Weapon bonus
	Defense     int      `json:"defense,omitempty"` // Armor bonus
	Agility     int      `json:"agility,omitempty"` // Accessory bonus
	Heal        int      `json:"heal,omitempty"`    // Consumable HP restore
	Mana        int      `json:"mana,omitempty"`    // Consumable MP restore
}

// Equippable returns true if the item goes in an equipment slot.
func (i *ItemDef) Equippable() bool {
	return i.Kind == ItemWeapon || i.Kind == ItemArmor || i.Kind == ItemAccessory
}

// Slot returns the equipment slot the item occupies, or "" if none.
func (i *ItemDef) Slot() string {
	switch i.Kind {
	case ItemWeapon:
		return "weapon"
	case ItemArmor:
		return "armor"
	case ItemAccessory:
		return "accessory"
	default:
		return ""
	}
}

// ItemsFile represents the structure of items.json.
type ItemsFile struct {
	Items []ItemDef `json:"items"`
}

// LoadItems loads item definitions from the embedded items.json file.
func LoadItems() ([]ItemDef, error) {
	file, err := Load[ItemsFile]("items.json")
	if err != nil {
		return nil, err
	}
	return file.Items, nil
}
