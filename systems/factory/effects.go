package factory

import (
	"github.com/automoto/starblaster/archetypes"
	"github.com/automoto/starblaster/components"
	cfg "github.com/automoto/starblaster/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// SpawnExplosion spawns the large explosion left by dead enemies and player
// hits.
func SpawnExplosion(ecs *ecs.ECS, pos, velo components.Vector) *donburi.Entry {
	return spawnTempEffect(ecs, &cfg.Effect.Explosion, pos, velo)
}

// SpawnSmallExplosion spawns the spark left by a projectile that hit
// something.
func SpawnSmallExplosion(ecs *ecs.ECS, pos, velo components.Vector) *donburi.Entry {
	return spawnTempEffect(ecs, &cfg.Effect.SmallExplosion, pos, velo)
}

// spawnTempEffect creates an effect whose health counts down through every
// frame of its sheet at the configured playback rate.
func spawnTempEffect(ecs *ecs.ECS, effect *cfg.TempEffectConfig, pos, velo components.Vector) *donburi.Entry {
	s := session(ecs)
	entry := archetypes.TempEffect.Spawn(ecs)

	k := components.NewKinematic(&s.IDs, pos, velo).
		WithHealth(effect.MaxFrameCount * effect.PlaybackRate).
		WithBlend(components.BlendAdd).
		WithVariant(effect.Variant)
	components.Kinematic.SetValue(entry, k)
	components.TempEffect.SetValue(entry, components.TempEffectData{
		MaxFrameCount: effect.MaxFrameCount,
		FrameWidth:    effect.FrameWidth,
		PlaybackRate:  effect.PlaybackRate,
	})

	s.Effects = append(s.Effects, entry.Entity())
	return entry
}
