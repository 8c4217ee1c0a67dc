package systems

import (
	"github.com/automoto/starblaster/components"
	"github.com/yohamta/donburi/ecs"
)

// UpdateTempEffects counts every transient effect down by one frame.
func UpdateTempEffects(ecs *ecs.ECS) {
	session := GetOrCreateSession(ecs)
	for _, e := range session.Effects {
		entry := ecs.World.Entry(e)
		if components.IsDead(entry) {
			continue
		}
		components.MarkDead(entry, components.AnimateTempEffect(components.Kinematic.Get(entry)))
	}
}
