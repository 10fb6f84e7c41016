package entity

import (
	"strings"

	"github.com/AsperforMias/cli-game/internal/gamedata"
)

// Item is an inventory slot: a definition plus how many of it are held.
// Only consumables stack; everything else occupies one slot per copy.
type Item struct {
	Def      *gamedata.ItemDef
	Quantity int
}

// Matches reports whether the item answers to the given name or ID,
// case-insensitively.
func (i *Item) Matches(nameOrID string) bool {
	return strings.EqualFold(i.Def.ID, nameOrID) || strings.EqualFold(i.Def.Name, nameOrID)
}
