package factory

import (
	"math"

	"github.com/automoto/starblaster/archetypes"
	"github.com/automoto/starblaster/components"
	cfg "github.com/automoto/starblaster/config"
	"github.com/automoto/starblaster/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreatePlayerBullet spawns a straight-flying player bullet.
func CreatePlayerBullet(ecs *ecs.ECS, pos, velo components.Vector) *donburi.Entry {
	return createProjectile(ecs, components.ProjectilePlayerBullet, pos, velo,
		cfg.Weapon.BulletHealth, "bullet", components.BlendAdd)
}

// CreateEnemyBullet spawns a bullet that can only hurt the player.
func CreateEnemyBullet(ecs *ecs.ECS, pos, velo components.Vector) *donburi.Entry {
	return createProjectile(ecs, components.ProjectileEnemyBullet, pos, velo,
		cfg.Enemy.BulletHealth, "ebullet", components.BlendAdd)
}

// CreateMissile spawns a homing missile with no target. It picks one on its
// first update.
func CreateMissile(ecs *ecs.ECS, pos, velo components.Vector) *donburi.Entry {
	return createProjectile(ecs, components.ProjectileMissile, pos, velo,
		cfg.Weapon.MissileHealth, "missile", components.BlendNone)
}

func createProjectile(ecs *ecs.ECS, kind components.ProjectileKind, pos, velo components.Vector,
	health int, variant string, blend components.BlendMode) *donburi.Entry {
	s := session(ecs)
	projectile := archetypes.Projectile.Spawn(ecs)

	k := components.NewKinematic(&s.IDs, pos, velo).
		WithHealth(health).
		WithRotation(float32(math.Atan2(velo.Y, velo.X))).
		WithBlend(blend).
		WithVariant(variant)
	components.Kinematic.SetValue(projectile, k)

	data := components.ProjectileData{Kind: kind}
	if kind == components.ProjectileMissile {
		data.Trail = make([]components.Vector, 0, cfg.Missile.TrailLength)
	}
	components.Projectile.SetValue(projectile, data)

	attachObject(ecs, projectile, pos, data.HalfSize(), tags.ResolvProjectile)

	s.Projectiles = append(s.Projectiles, projectile.Entity())
	return projectile
}
