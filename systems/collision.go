package systems

import (
	"github.com/automoto/starblaster/components"
	"github.com/automoto/starblaster/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// enemyOrder maps each live enemy to its position in the container so that
// broad-phase candidates can be ranked in iteration order.
func enemyOrder(session *components.SessionData) map[donburi.Entity]int {
	order := make(map[donburi.Entity]int, len(session.Enemies))
	for i, e := range session.Enemies {
		order[e] = i
	}
	return order
}

// firstEnemyHit returns the enemy the projectile overlaps that comes first
// in container order, or nil. Enemies already dead this frame are skipped.
// The grid only narrows the candidates; the overlap test is exact.
func firstEnemyHit(projectile *donburi.Entry, order map[donburi.Entity]int) *donburi.Entry {
	k := components.Kinematic.Get(projectile)
	p := components.Projectile.Get(projectile)
	obj := components.Object.Get(projectile)
	obj.Sync(k.Position, p.HalfSize())

	collision := obj.Check(0, 0, tags.ResolvEnemy)
	if collision == nil {
		return nil
	}

	var (
		hit   *donburi.Entry
		first = -1
	)
	for _, o := range collision.Objects {
		candidate, ok := o.Data.(*donburi.Entry)
		if !ok || !candidate.Valid() || components.IsDead(candidate) {
			continue
		}
		idx, ok := order[candidate.Entity()]
		if !ok || (first >= 0 && idx >= first) {
			continue
		}
		ek := components.Kinematic.Get(candidate)
		if !k.HitsEntity(ek, p.HalfSize(), components.Enemy.Get(candidate).HalfSize()) {
			continue
		}
		hit, first = candidate, idx
	}
	return hit
}

// findEnemy looks a live enemy up by ID.
func findEnemy(ecs *ecs.ECS, session *components.SessionData, id components.ID) *donburi.Entry {
	if id == components.NoID {
		return nil
	}
	for _, e := range session.Enemies {
		entry := ecs.World.Entry(e)
		if components.IsDead(entry) {
			continue
		}
		if components.Kinematic.Get(entry).ID == id {
			return entry
		}
	}
	return nil
}

// nearestEnemy returns the closest live enemy within maxDist of pos.
func nearestEnemy(ecs *ecs.ECS, session *components.SessionData, pos components.Vector, maxDist float64) *donburi.Entry {
	var (
		best     *donburi.Entry
		bestDist = maxDist
	)
	for _, e := range session.Enemies {
		entry := ecs.World.Entry(e)
		if components.IsDead(entry) {
			continue
		}
		d := components.Kinematic.Get(entry).Position.Sub(pos).Length()
		if d <= bestDist {
			best, bestDist = entry, d
		}
	}
	return best
}
