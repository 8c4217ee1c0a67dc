package factory

import (
	"github.com/automoto/starblaster/archetypes"
	"github.com/automoto/starblaster/components"
	cfg "github.com/automoto/starblaster/config"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateSpace creates the broad-phase grid covering the playfield plus the
// configured margin on every side.
func CreateSpace(ecs *ecs.ECS) *donburi.Entry {
	space := archetypes.Space.Spawn(ecs)

	width := int(cfg.Playfield.Width + 2*cfg.Collision.Margin)
	height := int(cfg.Playfield.Height + 2*cfg.Collision.Margin)
	spaceData := resolv.NewSpace(width, height, cfg.Collision.CellSize, cfg.Collision.CellSize)
	components.Space.Set(space, spaceData)
	return space
}

// attachObject gives entry a broad-phase proxy and registers it with the
// space.
func attachObject(ecs *ecs.ECS, entry *donburi.Entry, pos components.Vector, half float64, tag string) {
	obj := components.NewObject(pos, half, tag)
	obj.Data = entry
	if spaceEntry, ok := components.Space.First(ecs.World); ok {
		components.Space.Get(spaceEntry).Add(obj)
	}
	components.Object.Set(entry, &components.ObjectData{Object: obj})
}

// Destroy removes entry and its broad-phase proxy from the world. The
// caller is responsible for dropping it from the session containers.
func Destroy(ecs *ecs.ECS, entry *donburi.Entry) {
	if entry == nil || !entry.Valid() {
		return
	}
	if entry.HasComponent(components.Object) {
		if spaceEntry, ok := components.Space.First(ecs.World); ok {
			if obj := components.Object.Get(entry); obj.Object != nil {
				components.Space.Get(spaceEntry).Remove(obj.Object)
			}
		}
	}
	ecs.World.Remove(entry.Entity())
}

func session(ecs *ecs.ECS) *components.SessionData {
	return components.Session.Get(components.Session.MustFirst(ecs.World))
}
