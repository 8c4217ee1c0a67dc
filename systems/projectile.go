package systems

import (
	"github.com/automoto/starblaster/components"
	cfg "github.com/automoto/starblaster/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateProjectiles animates every projectile against the enemies as they
// stand after UpdateEnemies. A player-owned projectile hits at most one
// enemy per frame; an enemy bullet that touches the player dies with
// DeathHitPlayer.
func UpdateProjectiles(ecs *ecs.ECS) {
	session := GetOrCreateSession(ecs)
	playerEntry := getPlayer(ecs)
	order := enemyOrder(session)

	for _, e := range session.Projectiles {
		entry := ecs.World.Entry(e)
		if components.IsDead(entry) {
			continue
		}
		k := components.Kinematic.Get(entry)
		p := components.Projectile.Get(entry)

		var reason components.DeathReason
		if p.Kind.PlayerOwned() {
			reason = animatePlayerProjectile(ecs, session, entry, k, p, order)
		} else {
			reason = animateEnemyProjectile(playerEntry, k)
		}
		components.Object.Get(entry).Sync(k.Position, p.HalfSize())
		components.MarkDead(entry, reason)
	}
}

func animatePlayerProjectile(ecs *ecs.ECS, session *components.SessionData, entry *donburi.Entry,
	k *components.KinematicData, p *components.ProjectileData, order map[donburi.Entity]int) components.DeathReason {
	if p.Kind == components.ProjectileMissile {
		steerMissile(ecs, session, k, p)
		p.RecordTrail(k.Position)
	}

	if target := firstEnemyHit(entry, order); target != nil {
		components.Enemy.Get(target).Damage(components.Kinematic.Get(target), k.Health)
		k.Health = 0
	}
	return k.Animate()
}

func animateEnemyProjectile(playerEntry *donburi.Entry, k *components.KinematicData) components.DeathReason {
	if playerEntry != nil && components.HitPlayer(k, components.Kinematic.Get(playerEntry)) {
		return components.DeathHitPlayer
	}
	return k.Animate()
}

// steerMissile keeps the missile's target up to date. A missile without a
// target acquires the nearest enemy in range and starts steering next frame.
// A missile whose target is gone forgets it.
func steerMissile(ecs *ecs.ECS, session *components.SessionData, k *components.KinematicData, p *components.ProjectileData) {
	if p.Target == components.NoID {
		if nearest := nearestEnemy(ecs, session, k.Position, cfg.Missile.DetectionRange); nearest != nil {
			p.Target = components.Kinematic.Get(nearest).ID
		}
		return
	}

	target := findEnemy(ecs, session, p.Target)
	if target == nil {
		p.Target = components.NoID
		return
	}
	components.SteerMissile(k, components.Kinematic.Get(target).Position)
}
