package components

import (
	"math"
	"testing"

	cfg "github.com/automoto/starblaster/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordTrailEvictsOldest(t *testing.T) {
	var p ProjectileData
	n := cfg.Missile.TrailLength + 5
	for i := 0; i < n; i++ {
		p.RecordTrail(Vector{X: float64(i)})
	}

	require.Len(t, p.Trail, cfg.Missile.TrailLength)
	assert.Equal(t, 5.0, p.Trail[0].X)
	assert.Equal(t, float64(n-1), p.Trail[len(p.Trail)-1].X)
}

func TestSteerMissileTurnsGradually(t *testing.T) {
	k := KinematicData{Position: Vector{0, 0}, Velocity: Vector{0, -cfg.Missile.Speed}}
	SteerMissile(&k, Vector{100, 0})

	assert.InDelta(t, cfg.Missile.Speed, k.Velocity.Length(), 1e-9, "speed is renormalized")
	assert.Greater(t, k.Velocity.X, 0.0, "turns toward the target")
	assert.Less(t, k.Velocity.Y, 0.0, "but not all the way in one frame")
	assert.InDelta(t, math.Atan2(k.Velocity.Y, k.Velocity.X), float64(k.Rotation), 1e-6)
}

func TestSteerMissileFromRest(t *testing.T) {
	k := KinematicData{Position: Vector{0, 0}}
	SteerMissile(&k, Vector{0, 50})

	assert.InDelta(t, 0, k.Velocity.X, 1e-9)
	assert.InDelta(t, cfg.Missile.Speed, k.Velocity.Y, 1e-9)
}

func TestHitPlayer(t *testing.T) {
	player := KinematicData{Position: Vector{100, 100}, Health: cfg.Player.Health}
	bullet := KinematicData{Position: Vector{105, 95}, Health: 3}

	assert.True(t, HitPlayer(&bullet, &player))
	assert.Equal(t, cfg.Player.Health-3, player.Health)

	far := KinematicData{Position: Vector{200, 200}, Health: 1}
	assert.False(t, HitPlayer(&far, &player))
	assert.Equal(t, cfg.Player.Health-3, player.Health)
}

func TestProjectileOwnership(t *testing.T) {
	assert.True(t, ProjectilePlayerBullet.PlayerOwned())
	assert.True(t, ProjectileMissile.PlayerOwned())
	assert.False(t, ProjectileEnemyBullet.PlayerOwned())
}
