package components

import (
	"math"

	cfg "github.com/automoto/starblaster/config"
	"github.com/yohamta/donburi"
)

// ProjectileKind is the closed set of projectile variants.
type ProjectileKind int

const (
	ProjectilePlayerBullet ProjectileKind = iota
	ProjectileEnemyBullet
	ProjectileMissile
)

func (k ProjectileKind) String() string {
	switch k {
	case ProjectilePlayerBullet:
		return "PlayerBullet"
	case ProjectileEnemyBullet:
		return "EnemyBullet"
	case ProjectileMissile:
		return "Missile"
	}
	return "Unknown"
}

// PlayerOwned reports whether the projectile hurts enemies (true) or the
// player (false).
func (k ProjectileKind) PlayerOwned() bool {
	return k != ProjectileEnemyBullet
}

type ProjectileData struct {
	Kind   ProjectileKind
	Target ID       // missiles only; NoID while searching
	Trail  []Vector // missiles only; oldest first
}

var Projectile = donburi.NewComponentType[ProjectileData]()

// HalfSize is the collision half-extent shared by all projectiles.
func (p *ProjectileData) HalfSize() float64 {
	return cfg.Weapon.BulletHalfSize
}

// RecordTrail appends pos, dropping the oldest entries past the cap.
func (p *ProjectileData) RecordTrail(pos Vector) {
	p.Trail = append(p.Trail, pos)
	if over := len(p.Trail) - cfg.Missile.TrailLength; over > 0 {
		n := copy(p.Trail, p.Trail[over:])
		p.Trail = p.Trail[:n]
	}
}

// SteerMissile turns k toward target by at most HomingAccel per frame, then
// restores the missile's constant speed and faces the new heading.
func SteerMissile(k *KinematicData, target Vector) {
	toward := target.Sub(k.Position).Normalized()
	velo := k.Velocity.Add(toward.Scale(cfg.Missile.HomingAccel)).Normalized()
	if velo == (Vector{}) {
		velo = toward
	}
	if velo == (Vector{}) {
		return
	}
	k.Velocity = velo.Scale(cfg.Missile.Speed)
	k.Rotation = float32(math.Atan2(k.Velocity.Y, k.Velocity.X))
}

// HitPlayer tests an enemy-owned projectile against the player. On contact
// the projectile's health is taken from the player's.
func HitPlayer(bullet, player *KinematicData) bool {
	if !bullet.HitsEntity(player, cfg.Weapon.BulletHalfSize, cfg.Player.HalfSize) {
		return false
	}
	player.Health -= bullet.Health
	return true
}
