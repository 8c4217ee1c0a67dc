package systems

import (
	"math"

	"github.com/automoto/starblaster/components"
	cfg "github.com/automoto/starblaster/config"
	"github.com/automoto/starblaster/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

type projectileSpawner func(ecs *ecs.ECS, pos, velo components.Vector) *donburi.Entry

// UpdateWeapons fires the player's active weapon while the fire intent is
// held. Bullets and missiles fire in volleys on their period; the light
// beam damages every frame.
func UpdateWeapons(ecs *ecs.ECS) {
	session := GetOrCreateSession(ecs)
	session.LightBeam = components.LightBeamData{}

	playerEntry := getPlayer(ecs)
	if playerEntry == nil || !GetOrCreateIntent(ecs).Action(cfg.ActionFire).Pressed {
		return
	}
	player := components.Player.Get(playerEntry)
	k := components.Kinematic.Get(playerEntry)
	level := min(player.PowerLevel(), cfg.Weapon.MaxSpreadLevel)

	var shots int
	switch player.Weapon {
	case cfg.WeaponBullet:
		if session.Frame%uint64(cfg.Weapon.BulletPeriod) == 0 {
			shots = fireSpread(ecs, k.Position, level, cfg.Weapon.BulletSpeed, factory.CreatePlayerBullet)
		}
	case cfg.WeaponMissile:
		if session.Frame%uint64(cfg.Weapon.MissilePeriod) == 0 {
			shots = fireSpread(ecs, k.Position, level, cfg.Missile.Speed, factory.CreateMissile)
		}
	case cfg.WeaponLight:
		fireLight(ecs, session, k, player.PowerLevel())
		shots = 1
	}
	session.Telemetry.Shots[player.Weapon] += uint64(shots)
}

// fireSpread spawns 2*level+1 projectiles fanned out symmetrically around
// straight up and returns how many were spawned.
func fireSpread(ecs *ecs.ECS, origin components.Vector, level int, speed float64, spawn projectileSpawner) int {
	for i := -level; i <= level; i++ {
		velo := components.Vector{X: float64(i) * cfg.Weapon.SpreadSpeed, Y: -speed}
		spawn(ecs, origin, velo)
	}
	return 2*level + 1
}

// fireLight damages every live enemy overlapping the vertical band between
// the top of the playfield and the player.
func fireLight(ecs *ecs.ECS, session *components.SessionData, k *components.KinematicData, level int) {
	damage := cfg.Weapon.LightBaseDamage + level*cfg.Weapon.LightLevelDamage
	beam := &session.LightBeam
	beam.Active = true
	beam.X = k.Position.X
	beam.Bottom = k.Position.Y

	for _, e := range session.Enemies {
		entry := ecs.World.Entry(e)
		if components.IsDead(entry) {
			continue
		}
		ek := components.Kinematic.Get(entry)
		enemy := components.Enemy.Get(entry)
		half := enemy.HalfSize()
		if math.Abs(ek.Position.X-beam.X) >= cfg.Weapon.LightHalfWidth+half || ek.Position.Y-half >= beam.Bottom {
			continue
		}
		enemy.Damage(ek, damage)
		beam.Hits++
	}
}
