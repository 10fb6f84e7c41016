package store

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AsperforMias/cli-game/internal/entity"
	"github.com/AsperforMias/cli-game/internal/gamedata"
)

func testPlayer(t *testing.T, registry *gamedata.Registry) *entity.Player {
	t.Helper()
	classDef := registry.ClassByID("warrior")
	require.NotNil(t, classDef)
	return entity.NewPlayer("Aria", classDef, registry.SkillsFor(classDef.Skills))
}

func TestSnapshotRoundTrip(t *testing.T) {
	registry := gamedata.MustLoadRegistry()
	p := testPlayer(t, registry)

	// Play a while: level up, gear up, take a quest, get hurt.
	p.GainExperience(150)
	require.NoError(t, p.AddItem(registry.ItemByID("health_potion"), 3))
	require.NoError(t, p.AddItem(registry.ItemByID("iron_sword"), 1))
	_, err := p.Equip("iron_sword")
	require.NoError(t, err)
	require.NoError(t, p.AcceptQuest(registry.QuestByID("kill_slimes")))
	p.RecordKill("slime")
	p.RecordKill("slime")
	p.TakeDamage(35)
	p.SpendMP(10)
	battleCry := p.FindSkill("battle_cry")
	require.NotNil(t, battleCry)
	battleCry.Level = 2
	battleCry.Exp = 7
	p.CompletedQuests = append(p.CompletedQuests, "clear_cellar")
	p.SceneID = "forest_entrance"

	savedAt := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	rec := Snapshot(p, 42, 17, savedAt)
	assert.Equal(t, int64(42), rec.RNGSeed)
	assert.Equal(t, int64(17), rec.RNGPosition)
	assert.Equal(t, savedAt, rec.SavedAt)
	assert.Equal(t, "warrior", rec.Class)

	loaded, err := Materialize(rec, registry)
	require.NoError(t, err)

	assert.Equal(t, "Aria", loaded.Name)
	assert.Equal(t, entity.ClassWarrior, loaded.Class)
	assert.Equal(t, 2, loaded.Level)
	assert.Equal(t, 50, loaded.Exp)
	assert.Equal(t, 120, loaded.ExpNeeded)
	assert.Equal(t, 100, loaded.HP)
	assert.Equal(t, 135, loaded.MaxHP)
	assert.Equal(t, 23, loaded.MP)
	assert.Equal(t, 33, loaded.MaxMP)
	assert.Equal(t, 17, loaded.Attack)
	assert.Equal(t, 14, loaded.Defense)
	assert.Equal(t, 100, loaded.Money)
	assert.Equal(t, "forest_entrance", loaded.SceneID)

	assert.Len(t, loaded.Inventory, 1)
	assert.Equal(t, 3, loaded.CountItem("health_potion"))
	require.NotNil(t, loaded.Equipment[entity.SlotWeapon])
	assert.Equal(t, "iron_sword", loaded.Equipment[entity.SlotWeapon].Def.ID)
	assert.Equal(t, 27, loaded.TotalAttack())

	assert.Len(t, loaded.Skills, 3)
	loadedCry := loaded.FindSkill("battle_cry")
	require.NotNil(t, loadedCry)
	assert.Equal(t, 2, loadedCry.Level)
	assert.Equal(t, 7, loadedCry.Exp)

	require.Len(t, loaded.ActiveQuests, 1)
	assert.Equal(t, "kill_slimes", loaded.ActiveQuests[0].Def.ID)
	assert.Equal(t, 2, loaded.ActiveQuests[0].Kills)
	assert.Equal(t, []string{"clear_cellar"}, loaded.CompletedQuests)

	// Growth tables come from the class definition, so a loaded character
	// levels up with the same gains as the original.
	loaded.GainExperience(70)
	assert.Equal(t, 3, loaded.Level)
	assert.Equal(t, 150, loaded.MaxHP)
	assert.Equal(t, 19, loaded.Attack)
}

func TestMaterializeUnknownClass(t *testing.T) {
	registry := gamedata.MustLoadRegistry()
	rec := &PlayerRecord{Name: "Ghost", Class: "necromancer"}

	_, err := Materialize(rec, registry)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "necromancer")
}

func TestMaterializeDropsRemovedDefinitions(t *testing.T) {
	registry := gamedata.MustLoadRegistry()
	rec := &PlayerRecord{
		Name:      "Aria",
		Class:     "warrior",
		Level:     1,
		ExpNeeded: 100,
		HP:        120, MaxHP: 120,
		MP: 30, MaxMP: 30,
		SceneID: "starting_village",
		Inventory: []ItemRecord{
			{ItemID: "gone_item", Quantity: 2},
			{ItemID: "health_potion", Quantity: 1},
		},
		Equipment: map[string]string{"weapon": "gone_sword"},
		Skills: []SkillRecord{
			{SkillID: "gone_skill", Level: 4},
			{SkillID: "battle_cry", Level: 1},
		},
		ActiveQuests: []QuestRecord{
			{QuestID: "gone_quest", Kills: 3},
			{QuestID: "kill_slimes", Kills: 1},
		},
	}

	loaded, err := Materialize(rec, registry)
	require.NoError(t, err)
	assert.Len(t, loaded.Inventory, 1)
	assert.Equal(t, 1, loaded.CountItem("health_potion"))
	assert.Nil(t, loaded.Equipment[entity.SlotWeapon])
	assert.Len(t, loaded.Skills, 1)
	require.Len(t, loaded.ActiveQuests, 1)
	assert.Equal(t, "kill_slimes", loaded.ActiveQuests[0].Def.ID)
}
