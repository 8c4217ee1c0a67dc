package systems

import (
	"testing"

	"github.com/automoto/starblaster/components"
	cfg "github.com/automoto/starblaster/config"
	"github.com/automoto/starblaster/systems/factory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
)

func TestBulletKillsEnemy(t *testing.T) {
	e := startedSim(t)
	cfg.Enemy.Basic.DropChance = 100
	session := GetOrCreateSession(e)
	origin := playerKinematic(e).Position
	spawnEnemy(e, components.EnemyBasic, components.Vector{X: origin.X, Y: origin.Y - 20}, 1)

	var died []EntityDiedEvent
	EntityDied.Subscribe(e.World, func(_ donburi.World, ev EntityDiedEvent) {
		died = append(died, ev)
	})

	for i := 0; i < cfg.Weapon.BulletPeriod; i++ {
		step(e, cfg.ActionFire)
	}
	require.Len(t, session.Projectiles, 1)

	step(e) // bullet reaches the enemy
	assert.Empty(t, session.Projectiles)
	require.Len(t, session.Enemies, 1)

	step(e) // enemy notices it has no health left
	assert.Empty(t, session.Enemies)

	player := components.Player.Get(getPlayer(e))
	assert.Equal(t, cfg.Enemy.Basic.Score, player.Score)
	assert.Equal(t, uint32(1), player.Kills)
	require.Len(t, session.Items, 1)
	assert.Equal(t, components.ItemPowerUp, components.Item.Get(e.World.Entry(session.Items[0])).Kind)
	assert.Len(t, session.Effects, 2, "small explosion for the bullet, big one for the enemy")

	require.Len(t, died, 2)
	assert.Equal(t, components.DeathKilled, died[0].Reason)
	require.NotNil(t, died[0].Shot)
	assert.Equal(t, components.ProjectilePlayerBullet, *died[0].Shot)
	require.NotNil(t, died[1].Enemy)
	assert.Equal(t, components.EnemyBasic, *died[1].Enemy)
}

func TestProjectileHitsOnlyFirstEnemy(t *testing.T) {
	e := startedSim(t)
	pos := components.Vector{X: 100, Y: 100}
	first := spawnEnemy(e, components.EnemyBasic, components.Vector{X: 104, Y: 100}, 10)
	second := spawnEnemy(e, components.EnemyBasic, pos, 10)
	bullet := factory.CreatePlayerBullet(e, pos, components.Vector{})

	UpdateProjectiles(e)

	assert.Equal(t, 9, components.Kinematic.Get(first).Health)
	assert.Equal(t, 10, components.Kinematic.Get(second).Health)
	assert.Zero(t, components.Kinematic.Get(bullet).Health)
	assert.Equal(t, components.DeathKilled, components.Death.Get(bullet).Reason)
}

func TestProjectileSkipsEnemiesDeadThisFrame(t *testing.T) {
	e := startedSim(t)
	pos := components.Vector{X: 100, Y: 100}
	dead := spawnEnemy(e, components.EnemyBasic, pos, 10)
	alive := spawnEnemy(e, components.EnemyBasic, pos, 10)
	components.MarkDead(dead, components.DeathRangeOut)
	factory.CreatePlayerBullet(e, pos, components.Vector{})

	UpdateProjectiles(e)

	assert.Equal(t, 10, components.Kinematic.Get(dead).Health)
	assert.Equal(t, 9, components.Kinematic.Get(alive).Health)
}

func TestShieldedBossSoaksBullets(t *testing.T) {
	e := startedSim(t)
	pos := components.Vector{X: 100, Y: 100}
	boss := factory.CreateEnemy(e, components.EnemyShieldedBoss, pos, components.Vector{})
	factory.CreatePlayerBullet(e, pos, components.Vector{})

	UpdateProjectiles(e)

	assert.Equal(t, cfg.Enemy.ShieldedBoss.Health, components.Kinematic.Get(boss).Health)
	assert.Equal(t, cfg.Enemy.Shield.Max-1, components.Enemy.Get(boss).ShieldHealth)
}

func TestMissileReacquiresLostTarget(t *testing.T) {
	e := startedSim(t)
	session := GetOrCreateSession(e)
	a := spawnEnemy(e, components.EnemyBasic, components.Vector{X: 100, Y: 100}, 10)
	aID := components.Kinematic.Get(a).ID
	missile := factory.CreateMissile(e, components.Vector{X: 100, Y: 300}, components.Vector{Y: -cfg.Missile.Speed})
	p := components.Projectile.Get(missile)

	UpdateProjectiles(e)
	assert.Equal(t, aID, p.Target)
	assert.Len(t, p.Trail, 1)

	components.MarkDead(a, components.DeathRangeOut)
	UpdateDeaths(e)
	require.Empty(t, session.Enemies)
	b := spawnEnemy(e, components.EnemyBasic, components.Vector{X: 150, Y: 250}, 10)

	UpdateProjectiles(e)
	assert.Equal(t, components.NoID, p.Target, "a vanished target is forgotten")

	UpdateProjectiles(e)
	assert.Equal(t, components.Kinematic.Get(b).ID, p.Target)
	assert.Len(t, p.Trail, 3)

	before := components.Kinematic.Get(missile).Velocity
	UpdateProjectiles(e)
	after := components.Kinematic.Get(missile).Velocity
	assert.Greater(t, after.X, before.X, "steers toward the new target")
	assert.InDelta(t, cfg.Missile.Speed, after.Length(), 1e-9)
}

func TestMissileIgnoresEnemiesOutOfRange(t *testing.T) {
	e := startedSim(t)
	spawnEnemy(e, components.EnemyBasic, components.Vector{X: 10, Y: 10}, 10)
	missile := factory.CreateMissile(e, components.Vector{X: 400, Y: 470}, components.Vector{Y: -cfg.Missile.Speed})

	UpdateProjectiles(e)
	assert.Equal(t, components.NoID, components.Projectile.Get(missile).Target)
}

func TestInvulnerabilitySuppressesLifeLoss(t *testing.T) {
	e := startedSim(t)
	player := components.Player.Get(getPlayer(e))

	hits := 0
	EntityDied.Subscribe(e.World, func(_ donburi.World, ev EntityDiedEvent) {
		if ev.Reason == components.DeathHitPlayer {
			hits++
		}
	})

	factory.CreateEnemyBullet(e, playerKinematic(e).Position, components.Vector{})
	step(e)
	assert.Equal(t, cfg.Player.StartingLives-1, player.Lives)
	assert.Equal(t, cfg.Player.InvulnFrames, player.InvulnFrames)
	assert.Equal(t, cfg.Player.Health, playerKinematic(e).Health)

	factory.CreateEnemyBullet(e, playerKinematic(e).Position, components.Vector{})
	step(e)
	assert.Equal(t, cfg.Player.StartingLives-1, player.Lives)
	assert.Equal(t, 2, hits)
	assert.Equal(t, cfg.SessionPlaying, GetOrCreateSession(e).State)
}

func TestPruneRemovesBackToFront(t *testing.T) {
	e := startedSim(t)
	session := GetOrCreateSession(e)

	var ids []components.ID
	for i := 0; i < 5; i++ {
		entry := spawnEnemy(e, components.EnemyBasic, components.Vector{X: float64(20 + 40*i), Y: 50}, 3)
		ids = append(ids, components.Kinematic.Get(entry).ID)
	}
	components.MarkDead(e.World.Entry(session.Enemies[1]), components.DeathRangeOut)
	components.MarkDead(e.World.Entry(session.Enemies[3]), components.DeathRangeOut)

	var order []components.ID
	EntityDied.Subscribe(e.World, func(_ donburi.World, ev EntityDiedEvent) {
		order = append(order, ev.ID)
	})
	UpdateDeaths(e)

	var remaining []components.ID
	for _, en := range session.Enemies {
		remaining = append(remaining, kinematicOf(e, en).ID)
	}
	assert.Equal(t, []components.ID{ids[0], ids[2], ids[4]}, remaining)
	assert.Equal(t, []components.ID{ids[3], ids[1]}, order)

	player := components.Player.Get(getPlayer(e))
	assert.Zero(t, player.Kills, "leaving the playfield is not a kill")
	assert.Empty(t, session.Effects)
}

func TestBossAlwaysDropsBigPowerUp(t *testing.T) {
	e := startedSim(t)
	session := GetOrCreateSession(e)
	boss := spawnEnemy(e, components.EnemyBoss, components.Vector{X: 100, Y: 100}, 0)
	components.MarkDead(boss, components.DeathKilled)

	UpdateDeaths(e)

	require.Len(t, session.Items, 1)
	item := e.World.Entry(session.Items[0])
	assert.Equal(t, components.ItemPowerUp10, components.Item.Get(item).Kind)
	assert.Greater(t, components.Kinematic.Get(item).Velocity.Y, 0.0)
	assert.Equal(t, cfg.Enemy.Boss.Score, components.Player.Get(getPlayer(e)).Score)
}

func TestEnemiesReturnFire(t *testing.T) {
	e := startedSim(t)
	cfg.Enemy.Basic.FireChance = 1
	session := GetOrCreateSession(e)
	spawnEnemy(e, components.EnemyBasic, components.Vector{X: 100, Y: 100}, 3)

	UpdateEnemies(e)

	require.Len(t, session.Projectiles, 1)
	k := kinematicOf(e, session.Projectiles[0])
	want := playerKinematic(e).Position.Sub(components.Vector{X: 100, Y: 100}).Normalized().Scale(cfg.Enemy.BulletSpeed)
	assert.InDelta(t, want.X, k.Velocity.X, 1e-9)
	assert.InDelta(t, want.Y, k.Velocity.Y, 1e-9)
}
