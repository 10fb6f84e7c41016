package entity

import (
	"testing"

	"github.com/AsperforMias/cli-game/internal/errors"
	"github.com/AsperforMias/cli-game/internal/gamedata"
)

func TestAddItemStacksConsumables(t *testing.T) {
	registry := testRegistry(t)
	p := newTestPlayer(t, "warrior")
	potion := registry.ItemByID("health_potion")

	if err := p.AddItem(potion, 2); err != nil {
		t.Fatalf("Failed to add potions: %v", err)
	}
	if err := p.AddItem(potion, 3); err != nil {
		t.Fatalf("Failed to stack potions: %v", err)
	}

	if len(p.Inventory) != 1 {
		t.Fatalf("Expected 1 slot, got %d", len(p.Inventory))
	}
	if p.CountItem("health_potion") != 5 {
		t.Errorf("Expected 5 potions, got %d", p.CountItem("health_potion"))
	}
}

func TestAddItemEquipmentDoesNotStack(t *testing.T) {
	registry := testRegistry(t)
	p := newTestPlayer(t, "warrior")
	sword := registry.ItemByID("iron_sword")

	if err := p.AddItem(sword, 1); err != nil {
		t.Fatalf("Failed to add sword: %v", err)
	}
	if err := p.AddItem(sword, 1); err != nil {
		t.Fatalf("Failed to add second sword: %v", err)
	}

	if len(p.Inventory) != 2 {
		t.Errorf("Expected 2 slots for 2 swords, got %d", len(p.Inventory))
	}
}

func TestAddItemFullInventory(t *testing.T) {
	registry := testRegistry(t)
	p := newTestPlayer(t, "warrior")
	sword := registry.ItemByID("iron_sword")
	potion := registry.ItemByID("health_potion")

	for i := 0; i < MaxInventory-1; i++ {
		if err := p.AddItem(sword, 1); err != nil {
			t.Fatalf("Add %d failed: %v", i, err)
		}
	}
	if err := p.AddItem(potion, 1); err != nil {
		t.Fatalf("Failed to add potion in last slot: %v", err)
	}

	// Full now. Even a stackable addition is rejected.
	err := p.AddItem(potion, 1)
	if !errors.IsResourceExhausted(err) {
		t.Errorf("Expected RESOURCE_EXHAUSTED on full inventory, got %v", err)
	}
	if p.CountItem("health_potion") != 1 {
		t.Errorf("Failed add should not change quantities, got %d", p.CountItem("health_potion"))
	}
}

func TestRemoveItem(t *testing.T) {
	registry := testRegistry(t)
	p := newTestPlayer(t, "warrior")
	potion := registry.ItemByID("health_potion")

	if err := p.AddItem(potion, 3); err != nil {
		t.Fatalf("Failed to add potions: %v", err)
	}

	if err := p.RemoveItem("health_potion", 5); !errors.IsFailedPrecondition(err) {
		t.Errorf("Expected FAILED_PRECONDITION removing too many, got %v", err)
	}
	if p.CountItem("health_potion") != 3 {
		t.Errorf("Failed removal should not mutate, got %d", p.CountItem("health_potion"))
	}

	if err := p.RemoveItem("health_potion", 3); err != nil {
		t.Fatalf("Failed to remove exact quantity: %v", err)
	}
	if len(p.Inventory) != 0 {
		t.Errorf("Expected empty slot removed, got %d slots", len(p.Inventory))
	}

	if err := p.RemoveItem("health_potion", 1); !errors.IsNotFound(err) {
		t.Errorf("Expected NOT_FOUND removing absent item, got %v", err)
	}
}

func TestEquipRaisesAndUnequipRestores(t *testing.T) {
	registry := testRegistry(t)
	p := newTestPlayer(t, "warrior")
	sword := registry.ItemByID("iron_sword")

	base := p.TotalAttack()
	if err := p.AddItem(sword, 1); err != nil {
		t.Fatalf("Failed to add sword: %v", err)
	}
	if p.TotalAttack() != base {
		t.Error("Carrying a weapon should not change attack")
	}

	if _, err := p.Equip("iron_sword"); err != nil {
		t.Fatalf("Failed to equip: %v", err)
	}
	if p.TotalAttack() != base+10 {
		t.Errorf("Expected attack %d with sword, got %d", base+10, p.TotalAttack())
	}
	if p.Attack != base {
		t.Errorf("Base attack must not change on equip, got %d", p.Attack)
	}
	if len(p.Inventory) != 0 {
		t.Errorf("Equipped item should leave the inventory, %d slots remain", len(p.Inventory))
	}

	if _, err := p.Unequip(SlotWeapon); err != nil {
		t.Fatalf("Failed to unequip: %v", err)
	}
	if p.TotalAttack() != base {
		t.Errorf("Expected attack restored to %d, got %d", base, p.TotalAttack())
	}
	if p.CountItem("iron_sword") != 1 {
		t.Error("Unequipped item should return to the inventory")
	}
}

func TestEquipSwapsDisplacedItem(t *testing.T) {
	registry := testRegistry(t)
	p := newTestPlayer(t, "rogue")
	sword := registry.ItemByID("iron_sword")
	armor := registry.ItemByID("leather_armor")

	if err := p.AddItem(sword, 1); err != nil {
		t.Fatal(err)
	}
	if err := p.AddItem(sword, 1); err != nil {
		t.Fatal(err)
	}
	if err := p.AddItem(armor, 1); err != nil {
		t.Fatal(err)
	}

	if _, err := p.Equip("iron_sword"); err != nil {
		t.Fatalf("First equip failed: %v", err)
	}
	if _, err := p.Equip("iron_sword"); err != nil {
		t.Fatalf("Swap equip failed: %v", err)
	}

	// One sword equipped, one back in the bag, armor untouched.
	if p.Equipment[SlotWeapon] == nil {
		t.Fatal("Expected a sword equipped")
	}
	if p.CountItem("iron_sword") != 1 {
		t.Errorf("Expected 1 sword in inventory after swap, got %d", p.CountItem("iron_sword"))
	}
	if p.CountItem("leather_armor") != 1 {
		t.Error("Armor should be untouched by weapon swap")
	}
}

func TestEquipWithFullInventoryLosesNothing(t *testing.T) {
	registry := testRegistry(t)
	p := newTestPlayer(t, "warrior")
	sword := registry.ItemByID("iron_sword")
	armor := registry.ItemByID("leather_armor")

	if err := p.AddItem(sword, 1); err != nil {
		t.Fatal(err)
	}
	if _, err := p.Equip("iron_sword"); err != nil {
		t.Fatal(err)
	}

	for i := 0; i < MaxInventory-1; i++ {
		if err := p.AddItem(armor, 1); err != nil {
			t.Fatalf("Add %d failed: %v", i, err)
		}
	}
	if err := p.AddItem(sword, 1); err != nil {
		t.Fatalf("Failed to fill last slot: %v", err)
	}

	// Swapping at capacity must keep every item accounted for.
	if _, err := p.Equip("iron_sword"); err != nil {
		t.Fatalf("Swap at full inventory failed: %v", err)
	}
	if len(p.Inventory) != MaxInventory {
		t.Errorf("Expected %d slots after swap, got %d", MaxInventory, len(p.Inventory))
	}
	if p.CountItem("iron_sword") != 1 {
		t.Errorf("Expected displaced sword back in inventory, got %d", p.CountItem("iron_sword"))
	}
	if p.Equipment[SlotWeapon] == nil {
		t.Error("Expected a sword still equipped")
	}
}

func TestUnequipIntoFullInventoryFails(t *testing.T) {
	registry := testRegistry(t)
	p := newTestPlayer(t, "warrior")
	sword := registry.ItemByID("iron_sword")
	armor := registry.ItemByID("leather_armor")

	if err := p.AddItem(sword, 1); err != nil {
		t.Fatal(err)
	}
	if _, err := p.Equip("iron_sword"); err != nil {
		t.Fatal(err)
	}
	for i := 0; i < MaxInventory; i++ {
		if err := p.AddItem(armor, 1); err != nil {
			t.Fatalf("Add %d failed: %v", i, err)
		}
	}

	_, err := p.Unequip(SlotWeapon)
	if !errors.IsResourceExhausted(err) {
		t.Errorf("Expected RESOURCE_EXHAUSTED, got %v", err)
	}
	if p.Equipment[SlotWeapon] == nil {
		t.Error("Failed unequip must leave the weapon in place")
	}
}

func TestUnequipValidation(t *testing.T) {
	p := newTestPlayer(t, "warrior")

	if _, err := p.Unequip("hat"); !errors.IsInvalidArgument(err) {
		t.Errorf("Expected INVALID_ARGUMENT for unknown slot, got %v", err)
	}
	if _, err := p.Unequip(SlotWeapon); !errors.IsNotFound(err) {
		t.Errorf("Expected NOT_FOUND for empty slot, got %v", err)
	}
}

func TestAccessorySpeedsFleeStat(t *testing.T) {
	registry := testRegistry(t)
	p := newTestPlayer(t, "rogue")
	charm := registry.ItemByID("lucky_charm")

	base := p.EffectiveAgility()
	if err := p.AddItem(charm, 1); err != nil {
		t.Fatal(err)
	}
	if _, err := p.Equip("lucky_charm"); err != nil {
		t.Fatalf("Failed to equip charm: %v", err)
	}
	if p.EffectiveAgility() != base+2 {
		t.Errorf("Expected agility %d with charm, got %d", base+2, p.EffectiveAgility())
	}
	if p.TotalAttack() != p.Attack || p.TotalDefense() != p.Defense {
		t.Error("Accessory must not count toward attack or defense")
	}
}

func TestUseItemHealsAndConsumes(t *testing.T) {
	registry := testRegistry(t)
	p := newTestPlayer(t, "warrior")
	potion := registry.ItemByID("health_potion")

	p.HP = 40
	if err := p.AddItem(potion, 2); err != nil {
		t.Fatal(err)
	}

	use, err := p.UseItem("health_potion")
	if err != nil {
		t.Fatalf("Failed to use potion: %v", err)
	}
	if use.Healed != 50 {
		t.Errorf("Expected 50 healed, got %d", use.Healed)
	}
	if p.HP != 90 {
		t.Errorf("Expected 90 HP, got %d", p.HP)
	}
	if p.CountItem("health_potion") != 1 {
		t.Errorf("Expected 1 potion left, got %d", p.CountItem("health_potion"))
	}

	// Near max, the heal clamps and reports the clamped amount.
	use, err = p.UseItem("Health Potion")
	if err != nil {
		t.Fatalf("Failed to use potion by display name: %v", err)
	}
	if use.Healed != 30 {
		t.Errorf("Expected 30 healed at cap, got %d", use.Healed)
	}
	if p.CountItem("health_potion") != 0 {
		t.Errorf("Expected no potions left, got %d", p.CountItem("health_potion"))
	}
}

func TestUseItemRejectsNonConsumable(t *testing.T) {
	registry := testRegistry(t)
	p := newTestPlayer(t, "warrior")

	if err := p.AddItem(registry.ItemByID("iron_sword"), 1); err != nil {
		t.Fatal(err)
	}

	_, err := p.UseItem("iron_sword")
	if !errors.IsInvalidArgument(err) {
		t.Errorf("Expected INVALID_ARGUMENT, got %v", err)
	}
	if p.CountItem("iron_sword") != 1 {
		t.Error("Failed use must not consume the item")
	}

	_, err = p.UseItem("phoenix_down")
	if !errors.IsNotFound(err) {
		t.Errorf("Expected NOT_FOUND, got %v", err)
	}
}

func TestQuestLifecycle(t *testing.T) {
	registry := testRegistry(t)
	p := newTestPlayer(t, "warrior")
	quest := registry.QuestByID("kill_slimes")
	if quest == nil {
		t.Fatal("kill_slimes quest not found")
	}

	if err := p.AcceptQuest(quest); err != nil {
		t.Fatalf("Failed to accept quest: %v", err)
	}
	if err := p.AcceptQuest(quest); !errors.IsFailedPrecondition(err) {
		t.Errorf("Expected FAILED_PRECONDITION on duplicate accept, got %v", err)
	}

	progress := p.QuestByID("kill_slimes")
	if progress == nil {
		t.Fatal("Accepted quest not in log")
	}

	for i := 0; i < 4; i++ {
		p.RecordKill("slime")
	}
	p.RecordKill("goblin")
	if progress.Kills != 4 {
		t.Errorf("Expected 4 slime kills, got %d", progress.Kills)
	}
	if _, err := p.CompleteQuest(progress, nil); !errors.IsFailedPrecondition(err) {
		t.Errorf("Expected FAILED_PRECONDITION before target met, got %v", err)
	}

	p.RecordKill("slime")
	if !progress.Complete() {
		t.Fatal("Quest should be complete at 5 kills")
	}

	moneyBefore := p.Money
	levels, err := p.CompleteQuest(progress, []*gamedata.ItemDef{registry.ItemByID("health_potion")})
	if err != nil {
		t.Fatalf("Failed to complete quest: %v", err)
	}
	if levels != 1 {
		t.Errorf("Expected 1 level from 100 reward exp, got %d", levels)
	}
	if p.Money != moneyBefore+50 {
		t.Errorf("Expected +50 money, got %d", p.Money-moneyBefore)
	}
	if p.CountItem("health_potion") != 1 {
		t.Error("Expected reward potion in inventory")
	}
	if !p.HasCompletedQuest("kill_slimes") {
		t.Error("Quest should be in the completed list")
	}
	if p.QuestByID("kill_slimes") != nil {
		t.Error("Quest should leave the active list")
	}
	if err := p.AcceptQuest(quest); !errors.IsFailedPrecondition(err) {
		t.Errorf("Expected FAILED_PRECONDITION re-accepting a finished quest, got %v", err)
	}
}
