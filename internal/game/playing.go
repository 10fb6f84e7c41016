package game

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/AsperforMias/cli-game/internal/entity"
	"github.com/AsperforMias/cli-game/internal/gamedata"
	"github.com/AsperforMias/cli-game/internal/store"
	"github.com/AsperforMias/cli-game/internal/world"
)

// wildEnemyID is what an unprovoked "attack" in the wilds stirs up.
const wildEnemyID = "slime"

var directionAliases = map[string]string{
	"n": "north", "s": "south", "e": "east", "w": "west",
}

func (s *Session) playingCommand(ctx context.Context, command string, args []string) bool {
	switch command {
	case "look", "l":
		s.showScene()
	case "move", "go":
		if len(args) == 0 {
			s.out.Notice("Go where? Usage: move <direction>")
			return false
		}
		s.moveTo(ctx, args[0])
	// Bare "s" is left out: it would shadow status. "move s" still works.
	case "north", "south", "east", "west", "n", "e", "w":
		s.moveTo(ctx, command)
	case "talk":
		if len(args) == 0 {
			s.out.Notice("Talk to whom? Usage: talk <name>")
			return false
		}
		s.talkTo(ctx, strings.Join(args, " "))
	case "attack", "fight":
		if len(args) == 0 {
			s.out.Notice("Attack what? Usage: attack <name>")
			return false
		}
		s.attackTarget(ctx, strings.Join(args, " "))
	case "inventory", "inv":
		s.out.Inventory(s.player)
	case "status", "stat":
		s.out.Status(s.player)
	case "use":
		if len(args) == 0 {
			s.out.Notice("Use what? Usage: use <item>")
			return false
		}
		s.useItem(ctx, strings.Join(args, " "))
	case "equip":
		if len(args) == 0 {
			s.out.Notice("Equip what? Usage: equip <item>")
			return false
		}
		s.equipItem(ctx, strings.Join(args, " "))
	case "unequip":
		if len(args) == 0 {
			s.out.Notice("Unequip which slot? Usage: unequip weapon|armor|accessory")
			return false
		}
		s.unequipSlot(ctx, args[0])
	case "save":
		s.saveGame(ctx)
	case "help":
		s.out.Help(playingHelp)
	case "quit":
		s.out.Farewell()
		return true
	default:
		s.out.Notice("Unknown command. Type help for the list.")
	}
	return false
}

func (s *Session) moveTo(ctx context.Context, direction string) {
	direction = strings.ToLower(direction)
	if full, ok := directionAliases[direction]; ok {
		direction = full
	}
	exit, ok := s.currentScene().Exit(direction)
	if !ok {
		s.out.Notice("No path leads %s from here.", direction)
		return
	}
	s.player.SceneID = exit.Target
	if exit.Description != "" {
		s.out.Narrate(exit.Description)
	} else {
		s.out.Narrate("You head " + direction + ".")
	}
	s.showScene()
	s.rollEncounters(ctx)
}

// rollEncounters runs the scene's encounter table in data order. The
// first successful roll fires and the rest are skipped.
func (s *Session) rollEncounters(ctx context.Context) {
	scene := s.currentScene()
	if scene.Safe() {
		return
	}
	for _, entry := range scene.Def.Encounters {
		if !s.roller.Chance(entry.Chance) {
			continue
		}
		switch entry.Kind {
		case gamedata.EncounterEnemy:
			def := s.world.Registry().EnemyByID(entry.EnemyID)
			if def == nil {
				continue
			}
			s.out.Alert("Something stirs nearby!")
			s.enterCombat(ctx, entity.NewEnemyFromDef(def, s.player.Level), "")
		case gamedata.EncounterTreasure:
			def := s.world.Registry().ItemByID(entry.ItemID)
			if def == nil {
				continue
			}
			if err := s.player.AddItem(def, 1); err != nil {
				s.out.Notice("You spot a %s, but your pack is full.", def.Name)
			} else {
				s.out.Notice("You find a %s!", def.Name)
			}
		}
		return
	}
}

func (s *Session) talkTo(ctx context.Context, name string) {
	npc := s.currentScene().FindNPC(name)
	if npc == nil {
		s.out.Notice("There is no %s here.", name)
		return
	}
	s.npc = npc
	s.state = StateDialogue
	s.turnInQuests(npc)
	s.out.Say(npc.Name(), s.dialogue.Greet(ctx, npcProfile(npc), s.playerProfile()))
	switch {
	case npc.IsMerchant():
		s.out.Notice("shop | buy <item> [count] | sell <item> [count] | exit")
	case npc.GivesQuests():
		s.out.Notice("quests | accept <quest> | exit")
	default:
		s.out.Notice("Say anything, or exit to leave.")
	}
}

// turnInQuests settles every finished quest this giver handed out. It
// runs before the greeting so the giver reacts to a returning hero, not
// a stranger.
func (s *Session) turnInQuests(npc *world.NPC) {
	if !npc.GivesQuests() {
		return
	}
	for i := range npc.Def.Quests {
		def := &npc.Def.Quests[i]
		q := s.player.QuestByID(def.ID)
		if q == nil || !q.Complete() {
			continue
		}
		rewards := make([]*gamedata.ItemDef, 0, len(def.RewardItems))
		for _, itemID := range def.RewardItems {
			if item := s.world.Registry().ItemByID(itemID); item != nil {
				rewards = append(rewards, item)
			}
		}
		levels, err := s.player.CompleteQuest(q, rewards)
		if err != nil {
			continue
		}
		s.out.Notice("Quest complete: %s! You receive %d experience and %d coins.", def.Name, def.RewardExp, def.RewardMoney)
		for _, item := range rewards {
			s.out.Notice("Reward: %s.", item.Name)
		}
		if levels > 0 {
			s.out.Notice("%s reached level %d!", s.player.Name, s.player.Level)
		}
	}
}

func (s *Session) attackTarget(ctx context.Context, name string) {
	scene := s.currentScene()
	if npc := scene.FindNPC(name); npc != nil {
		switch {
		case !npc.IsHostile():
			s.out.Notice("%s is no enemy of yours.", npc.Name())
		case s.defeated[npc.ID()]:
			s.out.Notice("%s has already been beaten.", npc.Name())
		default:
			s.enterCombat(ctx, entity.NewEnemyFromProfile(npc.ID(), npc.Name(), npc.Def.Combat), npc.ID())
		}
		return
	}
	if scene.Safe() {
		s.out.Notice("There is nothing here to fight.")
		return
	}
	def := s.world.Registry().EnemyByID(wildEnemyID)
	if def == nil {
		s.out.Notice("There is nothing here to fight.")
		return
	}
	s.enterCombat(ctx, entity.NewEnemyFromDef(def, s.player.Level), "")
}

func (s *Session) useItem(ctx context.Context, name string) {
	use, err := s.player.UseItem(name)
	if err != nil {
		s.complain(ctx, err)
		return
	}
	switch {
	case use.Healed > 0:
		s.out.Narrate(fmt.Sprintf("You drink the %s and recover %d HP.", use.Name, use.Healed))
	case use.Restored > 0:
		s.out.Narrate(fmt.Sprintf("You drink the %s and recover %d MP.", use.Name, use.Restored))
	default:
		s.out.Narrate(fmt.Sprintf("You use the %s to no effect.", use.Name))
	}
}

func (s *Session) equipItem(ctx context.Context, name string) {
	def, err := s.player.Equip(name)
	if err != nil {
		s.complain(ctx, err)
		return
	}
	s.out.Narrate(fmt.Sprintf("You equip the %s.", def.Name))
}

func (s *Session) unequipSlot(ctx context.Context, slot string) {
	def, err := s.player.Unequip(strings.ToLower(slot))
	if err != nil {
		s.complain(ctx, err)
		return
	}
	s.out.Narrate(fmt.Sprintf("You stow the %s.", def.Name))
}

func (s *Session) saveGame(ctx context.Context) {
	rec := store.Snapshot(s.player, s.roller.Seed(), s.roller.Position(), s.clock.Now())
	if err := s.store.Save(ctx, rec); err != nil {
		slog.ErrorContext(ctx, "save failed", "session", s.id, "player", s.player.Name, "error", err)
		s.out.Alert("The save failed. Your progress lives in this session only.")
		return
	}
	s.out.Notice("Saved. Resume later with: load %s", s.player.Name)
}
