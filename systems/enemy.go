package systems

import (
	"github.com/automoto/starblaster/components"
	cfg "github.com/automoto/starblaster/config"
	"github.com/automoto/starblaster/systems/factory"
	"github.com/yohamta/donburi/ecs"
)

// UpdateEnemies animates every enemy in container order. Survivors may
// shoot at the player.
func UpdateEnemies(ecs *ecs.ECS) {
	session := GetOrCreateSession(ecs)
	playerEntry := getPlayer(ecs)

	for _, e := range session.Enemies {
		entry := ecs.World.Entry(e)
		if components.IsDead(entry) {
			continue
		}
		k := components.Kinematic.Get(entry)
		enemy := components.Enemy.Get(entry)

		reason := components.AnimateEnemy(enemy, k, session.Frame)
		components.Object.Get(entry).Sync(k.Position, enemy.HalfSize())
		if components.MarkDead(entry, reason) {
			continue
		}

		if playerEntry != nil && session.Rand.Intn(enemy.Kind.Config().FireChance) == 0 {
			aim := components.Kinematic.Get(playerEntry).Position.Sub(k.Position).Normalized()
			factory.CreateEnemyBullet(ecs, k.Position, aim.Scale(cfg.Enemy.BulletSpeed))
		}
	}
}
