package factory

import (
	"github.com/automoto/starblaster/archetypes"
	"github.com/automoto/starblaster/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateItem spawns a power-up and appends it to the session's items.
func CreateItem(ecs *ecs.ECS, kind components.ItemKind, pos, velo components.Vector) *donburi.Entry {
	s := session(ecs)
	item := archetypes.Item.Spawn(ecs)

	variant := "power"
	if kind == components.ItemPowerUp10 {
		variant = "power10"
	}
	k := components.NewKinematic(&s.IDs, pos, velo).WithVariant(variant)
	components.Kinematic.SetValue(item, k)
	components.Item.SetValue(item, components.ItemData{Kind: kind})

	s.Items = append(s.Items, item.Entity())
	return item
}
