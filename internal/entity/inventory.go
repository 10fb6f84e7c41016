package entity

import (
	"github.com/AsperforMias/cli-game/internal/errors"
	"github.com/AsperforMias/cli-game/internal/gamedata"
)

// AddItem puts items into the inventory. The capacity check comes before
// the stacking check, so a full inventory rejects even stackable additions.
func (p *Player) AddItem(def *gamedata.ItemDef, quantity int) error {
	if quantity <= 0 {
		return errors.InvalidArgumentf("cannot add %d of %s", quantity, def.Name)
	}
	if len(p.Inventory) >= MaxInventory {
		return errors.ResourceExhausted("your inventory is full")
	}
	if def.Kind == gamedata.ItemConsumable {
		for _, item := range p.Inventory {
			if item.Def.ID == def.ID {
				item.Quantity += quantity
				return nil
			}
		}
	}
	p.Inventory = append(p.Inventory, &Item{Def: def, Quantity: quantity})
	return nil
}

// RemoveItem takes items out of the inventory. Removing more than is held
// fails without mutation; reaching zero frees the slot.
func (p *Player) RemoveItem(id string, quantity int) error {
	if quantity <= 0 {
		return errors.InvalidArgumentf("cannot remove %d items", quantity)
	}
	for idx, item := range p.Inventory {
		if item.Def.ID != id {
			continue
		}
		if item.Quantity < quantity {
			return errors.FailedPreconditionf("you only have %d %s", item.Quantity, item.Def.Name)
		}
		item.Quantity -= quantity
		if item.Quantity == 0 {
			p.Inventory = append(p.Inventory[:idx], p.Inventory[idx+1:]...)
		}
		return nil
	}
	return errors.NotFoundf("you don't have %s", id)
}

// FindItem returns the first inventory item matching the given name or ID,
// or nil.
func (p *Player) FindItem(nameOrID string) *Item {
	for _, item := range p.Inventory {
		if item.Matches(nameOrID) {
			return item
		}
	}
	return nil
}

// CountItem returns how many of the item the player holds.
func (p *Player) CountItem(id string) int {
	for _, item := range p.Inventory {
		if item.Def.ID == id {
			return item.Quantity
		}
	}
	return 0
}

// Equip moves an inventory item into its equipment slot, returning whatever
// the slot previously held to the inventory. The swap is atomic: on any
// failure neither the inventory nor the equipment has changed.
func (p *Player) Equip(nameOrID string) (*gamedata.ItemDef, error) {
	item := p.FindItem(nameOrID)
	if item == nil {
		return nil, errors.NotFoundf("you don't have %s", nameOrID)
	}
	def := item.Def
	if !def.Equippable() {
		return nil, errors.InvalidArgumentf("%s cannot be equipped", def.Name)
	}
	slot := def.Slot()
	displaced := p.Equipment[slot]

	// Remove the new item first so the freed slot can take the displaced one.
	if err := p.RemoveItem(def.ID, 1); err != nil {
		return nil, err
	}
	if displaced != nil {
		if err := p.AddItem(displaced.Def, displaced.Quantity); err != nil {
			// Only reachable when the stack still exists: taking one copy
			// of a multi-copy stack frees no slot. Put the copy back.
			item.Quantity++
			return nil, errors.Wrap(err, "no room to unequip "+displaced.Def.Name)
		}
	}
	p.Equipment[slot] = &Item{Def: def, Quantity: 1}
	return def, nil
}

// Unequip moves the item in the given slot back to the inventory. It fails
// when the slot is empty or the inventory is full, leaving both unchanged.
func (p *Player) Unequip(slot string) (*gamedata.ItemDef, error) {
	switch slot {
	case SlotWeapon, SlotArmor, SlotAccessory:
	default:
		return nil, errors.InvalidArgumentf("unknown equipment slot %q", slot)
	}
	item := p.Equipment[slot]
	if item == nil {
		return nil, errors.NotFoundf("nothing is equipped as %s", slot)
	}
	if err := p.AddItem(item.Def, item.Quantity); err != nil {
		return nil, err
	}
	delete(p.Equipment, slot)
	return item.Def, nil
}

// ItemUse reports what using a consumable did.
type ItemUse struct {
	Name     string
	Healed   int
	Restored int
}

// UseItem consumes one of a consumable item and applies its effect, clamped
// to the relevant maximum. The amounts reported are what actually applied.
func (p *Player) UseItem(nameOrID string) (*ItemUse, error) {
	item := p.FindItem(nameOrID)
	if item == nil {
		return nil, errors.NotFoundf("you don't have %s", nameOrID)
	}
	def := item.Def
	if def.Kind != gamedata.ItemConsumable {
		return nil, errors.InvalidArgumentf("%s cannot be used", def.Name)
	}
	use := &ItemUse{Name: def.Name}
	if def.Heal > 0 {
		use.Healed = p.HealHP(def.Heal)
	}
	if def.Mana > 0 {
		use.Restored = p.RestoreMP(def.Mana)
	}
	if err := p.RemoveItem(def.ID, 1); err != nil {
		return nil, err
	}
	return use, nil
}
