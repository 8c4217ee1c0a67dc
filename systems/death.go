package systems

import (
	"log"
	"slices"

	"github.com/automoto/starblaster/components"
	cfg "github.com/automoto/starblaster/config"
	"github.com/automoto/starblaster/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/events"
)

// EntityDiedEvent is published for every entity pruned at the end of a
// frame.
type EntityDiedEvent struct {
	ID       components.ID
	Position components.Vector
	Reason   components.DeathReason
	Enemy    *components.EnemyKind      // set for enemies
	Shot     *components.ProjectileKind // set for projectiles
}

var EntityDied = events.NewEventType[EntityDiedEvent]()

// UpdateDeaths prunes every entity that reported a death this frame. Each
// container is walked back to front; derivative spawns, score and life loss
// happen at the point of removal. The session ends when the last life is
// gone.
func UpdateDeaths(ecs *ecs.ECS) {
	session := GetOrCreateSession(ecs)
	playerEntry := getPlayer(ecs)

	session.Enemies = prune(ecs, session.Enemies, func(entry *donburi.Entry, ev *EntityDiedEvent) {
		kind := components.Enemy.Get(entry).Kind
		ev.Enemy = &kind
		if ev.Reason == components.DeathKilled {
			onEnemyKilled(ecs, session, playerEntry, kind, components.Kinematic.Get(entry))
		}
	})
	session.Projectiles = prune(ecs, session.Projectiles, func(entry *donburi.Entry, ev *EntityDiedEvent) {
		kind := components.Projectile.Get(entry).Kind
		ev.Shot = &kind
		k := components.Kinematic.Get(entry)
		switch ev.Reason {
		case components.DeathKilled:
			factory.SpawnSmallExplosion(ecs, k.Position, k.Velocity.Scale(0.25))
		case components.DeathHitPlayer:
			onPlayerHit(ecs, session, playerEntry)
		}
	})
	session.Items = prune(ecs, session.Items, nil)
	session.Effects = prune(ecs, session.Effects, nil)

	if player := getPlayerData(ecs); player != nil && player.Lives == 0 && session.State == cfg.SessionPlaying {
		session.State = cfg.SessionGameOver
		log.Printf("session %s game over (score=%d kills=%d)", session.RunID, player.Score, player.Kills)
	}

	EntityDied.ProcessEvents(ecs.World)
}

// prune removes dead entities from list, highest index first, calling
// onDeath before each removal.
func prune(ecs *ecs.ECS, list []donburi.Entity, onDeath func(*donburi.Entry, *EntityDiedEvent)) []donburi.Entity {
	for i := len(list) - 1; i >= 0; i-- {
		entry := ecs.World.Entry(list[i])
		if !components.IsDead(entry) {
			continue
		}
		k := components.Kinematic.Get(entry)
		ev := EntityDiedEvent{
			ID:       k.ID,
			Position: k.Position,
			Reason:   components.Death.Get(entry).Reason,
		}
		if onDeath != nil {
			onDeath(entry, &ev)
		}
		EntityDied.Publish(ecs.World, ev)

		factory.Destroy(ecs, entry)
		list = slices.Delete(list, i, i+1)
	}
	return list
}

func onEnemyKilled(ecs *ecs.ECS, session *components.SessionData, playerEntry *donburi.Entry,
	kind components.EnemyKind, k *components.KinematicData) {
	typ := kind.Config()
	factory.SpawnExplosion(ecs, k.Position, k.Velocity)

	if playerEntry != nil {
		player := components.Player.Get(playerEntry)
		player.Score += typ.Score
		player.Kills++
	}

	if session.Rand.Intn(100) < typ.DropChance {
		item := components.ItemPowerUp
		if typ.DropBig {
			item = components.ItemPowerUp10
		}
		velo := components.Vector{
			X: (session.Rand.Float64()*2 - 1) * cfg.Item.Jitter,
			Y: cfg.Item.FallSpeed + session.Rand.Float64()*cfg.Item.Jitter,
		}
		factory.CreateItem(ecs, item, k.Position, velo)
	}
}

// onPlayerHit costs a life unless the player is invulnerable. Losing a life
// restores health and grants a fresh invulnerability window.
func onPlayerHit(ecs *ecs.ECS, session *components.SessionData, playerEntry *donburi.Entry) {
	if playerEntry == nil {
		return
	}
	k := components.Kinematic.Get(playerEntry)
	player := components.Player.Get(playerEntry)
	factory.SpawnExplosion(ecs, k.Position, components.Vector{})

	if player.Invulnerable() || player.Lives == 0 {
		return
	}
	player.Lives--
	player.InvulnFrames = cfg.Player.InvulnFrames
	k.Health = cfg.Player.Health
}
