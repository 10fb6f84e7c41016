// Package world assembles the scene graph from the loaded definitions
// and validates every cross-reference before the first session starts.
package world

import (
	"context"

	"go.opentelemetry.io/otel/attribute"

	"github.com/AsperforMias/cli-game/internal/errors"
	"github.com/AsperforMias/cli-game/internal/gamedata"
	"github.com/AsperforMias/cli-game/internal/telemetry"
)

// StartSceneID is where new and revived players stand.
const StartSceneID = "starting_village"

// World is the scene graph shared by every session. It is immutable
// after New returns; per-session mutable state such as shop stock and
// defeated hostiles lives with the session.
type World struct {
	registry *gamedata.Registry
	scenes   map[string]*Scene
}

// New builds the world from a registry and validates it. A broken data
// file fails here, at startup, instead of mid-session.
func New(ctx context.Context, registry *gamedata.Registry) (*World, error) {
	_, span := telemetry.Tracer("world").Start(ctx, "world.build")
	defer span.End()

	w := &World{
		registry: registry,
		scenes:   make(map[string]*Scene, len(registry.Scenes())),
	}
	npcCount := 0
	for _, def := range registry.Scenes() {
		scene := &Scene{Def: registry.SceneByID(def.ID)}
		for _, npcID := range def.NPCIDs {
			if npcDef := registry.NPCByID(npcID); npcDef != nil {
				scene.npcs = append(scene.npcs, &NPC{Def: npcDef})
			}
		}
		w.scenes[def.ID] = scene
		npcCount += len(scene.npcs)
	}

	if err := w.validate(); err != nil {
		return nil, err
	}

	span.SetAttributes(
		attribute.Int("world.scenes", len(w.scenes)),
		attribute.Int("world.npcs", npcCount),
	)
	return w, nil
}

// Scene returns the scene with the given ID, or nil.
func (w *World) Scene(id string) *Scene { return w.scenes[id] }

// Start returns the starting scene.
func (w *World) Start() *Scene { return w.scenes[StartSceneID] }

// Registry returns the definitions the world was built from.
func (w *World) Registry() *gamedata.Registry { return w.registry }

func (w *World) validate() error {
	if w.registry.SceneByID(StartSceneID) == nil {
		return errors.Internalf("starting scene %q is not defined", StartSceneID)
	}
	for _, def := range w.registry.Scenes() {
		for direction, exit := range def.Exits {
			if w.registry.SceneByID(exit.Target) == nil {
				return errors.Internalf("scene %q exit %s leads to unknown scene %q", def.ID, direction, exit.Target)
			}
		}
		for _, npcID := range def.NPCIDs {
			if w.registry.NPCByID(npcID) == nil {
				return errors.Internalf("scene %q lists unknown npc %q", def.ID, npcID)
			}
		}
		for i, entry := range def.Encounters {
			switch entry.Kind {
			case gamedata.EncounterEnemy:
				if w.registry.EnemyByID(entry.EnemyID) == nil {
					return errors.Internalf("scene %q encounter %d names unknown enemy %q", def.ID, i, entry.EnemyID)
				}
			case gamedata.EncounterTreasure:
				if w.registry.ItemByID(entry.ItemID) == nil {
					return errors.Internalf("scene %q encounter %d names unknown item %q", def.ID, i, entry.ItemID)
				}
			default:
				return errors.Internalf("scene %q encounter %d has unknown kind %q", def.ID, i, entry.Kind)
			}
		}
	}
	for _, npc := range w.registry.NPCs() {
		if npc.Capability == gamedata.CapHostile && npc.Combat == nil {
			return errors.Internalf("hostile npc %q has no combat profile", npc.ID)
		}
		for _, line := range npc.Shop {
			if w.registry.ItemByID(line.ItemID) == nil {
				return errors.Internalf("npc %q sells unknown item %q", npc.ID, line.ItemID)
			}
		}
		for _, quest := range npc.Quests {
			if w.registry.EnemyByID(quest.TargetEnemy) == nil && w.registry.NPCByID(quest.TargetEnemy) == nil {
				return errors.Internalf("quest %q targets unknown enemy %q", quest.ID, quest.TargetEnemy)
			}
			for _, itemID := range quest.RewardItems {
				if w.registry.ItemByID(itemID) == nil {
					return errors.Internalf("quest %q rewards unknown item %q", quest.ID, itemID)
				}
			}
		}
	}
	return nil
}
