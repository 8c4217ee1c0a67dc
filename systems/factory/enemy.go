package factory

import (
	"github.com/automoto/starblaster/archetypes"
	"github.com/automoto/starblaster/components"
	cfg "github.com/automoto/starblaster/config"
	"github.com/automoto/starblaster/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateEnemy spawns an enemy of the given kind and appends it to the
// session's enemy container. Shielded bosses start with a full shield.
func CreateEnemy(ecs *ecs.ECS, kind components.EnemyKind, pos, velo components.Vector) *donburi.Entry {
	s := session(ecs)
	typ := kind.Config()
	enemy := archetypes.Enemy.Spawn(ecs)

	k := components.NewKinematic(&s.IDs, pos, velo).
		WithHealth(typ.Health).
		WithVariant(typ.Variant)
	components.Kinematic.SetValue(enemy, k)

	data := components.EnemyData{Kind: kind}
	if kind == components.EnemyShieldedBoss {
		data.ShieldHealth = cfg.Enemy.Shield.Max
	}
	components.Enemy.SetValue(enemy, data)

	attachObject(ecs, enemy, pos, data.HalfSize(), tags.ResolvEnemy)

	s.Enemies = append(s.Enemies, enemy.Entity())
	return enemy
}
