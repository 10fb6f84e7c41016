package world

import (
	"strings"

	"github.com/AsperforMias/cli-game/internal/gamedata"
)

// Scene is one location with its resolved inhabitants.
type Scene struct {
	Def  *gamedata.SceneDef
	npcs []*NPC
}

// ID returns the scene identifier.
func (s *Scene) ID() string { return s.Def.ID }

// Name returns the display name.
func (s *Scene) Name() string { return s.Def.Name }

// Safe reports whether the scene is free of random encounters.
func (s *Scene) Safe() bool { return s.Def.Safe }

// NPCs returns the scene's inhabitants in data order.
func (s *Scene) NPCs() []*NPC { return s.npcs }

// Exit resolves a direction to its connection, matching
// case-insensitively.
func (s *Scene) Exit(direction string) (gamedata.ExitDef, bool) {
	exit, ok := s.Def.Exits[strings.ToLower(direction)]
	return exit, ok
}

// FindNPC matches an inhabitant by ID or name part, case-insensitively,
// so "talk elder" finds the Village Elder.
func (s *Scene) FindNPC(nameOrID string) *NPC {
	for _, npc := range s.npcs {
		if npc.Matches(nameOrID) {
			return npc
		}
	}
	return nil
}

// NPC is a scene inhabitant.
type NPC struct {
	Def *gamedata.NPCDef
}

// ID returns the NPC identifier.
func (n *NPC) ID() string { return n.Def.ID }

// Name returns the display name.
func (n *NPC) Name() string { return n.Def.Name }

// Matches reports whether the NPC answers to the given ID or any part
// of its name, case-insensitively.
func (n *NPC) Matches(nameOrID string) bool {
	if strings.EqualFold(n.Def.ID, nameOrID) {
		return true
	}
	return strings.Contains(strings.ToLower(n.Def.Name), strings.ToLower(nameOrID))
}

// IsHostile reports whether the NPC fights instead of talking.
func (n *NPC) IsHostile() bool { return n.Def.Capability == gamedata.CapHostile }

// IsMerchant reports whether the NPC runs a shop.
func (n *NPC) IsMerchant() bool { return n.Def.Capability == gamedata.CapMerchant }

// GivesQuests reports whether the NPC offers quests.
func (n *NPC) GivesQuests() bool { return n.Def.Capability == gamedata.CapQuestGiver }
