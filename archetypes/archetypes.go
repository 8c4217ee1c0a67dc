package archetypes

import (
	"github.com/automoto/starblaster/components"
	cfg "github.com/automoto/starblaster/config"
	"github.com/automoto/starblaster/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Player = newArchetype(
		tags.Player,
		components.Kinematic,
		components.Player,
	)
	Enemy = newArchetype(
		tags.Enemy,
		components.Kinematic,
		components.Enemy,
		components.Object,
	)
	Projectile = newArchetype(
		tags.Projectile,
		components.Kinematic,
		components.Projectile,
		components.Object,
	)
	Item = newArchetype(
		tags.Item,
		components.Kinematic,
		components.Item,
	)
	TempEffect = newArchetype(
		tags.TempEffect,
		components.Kinematic,
		components.TempEffect,
	)
	Session = newArchetype(
		components.Session,
	)
	Intent = newArchetype(
		components.Intent,
	)
	Space = newArchetype(
		components.Space,
	)
	ScreenShake = newArchetype(
		components.ScreenShake,
	)
	Banner = newArchetype(
		components.Banner,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		cfg.Default,
		append(a.components, cs...)...,
	))
	return e
}
