package components

import (
	"testing"

	cfg "github.com/automoto/starblaster/config"
	"github.com/stretchr/testify/assert"
)

func TestPlayerLevels(t *testing.T) {
	p := PlayerData{Power: 47, Score: 600}
	assert.Equal(t, 2, p.PowerLevel())
	assert.Equal(t, 2, p.DifficultyLevel())

	p = PlayerData{Power: 15, Score: 255}
	assert.Zero(t, p.PowerLevel())
	assert.Zero(t, p.DifficultyLevel())
}

func TestPlayerReset(t *testing.T) {
	p := PlayerData{Score: 10, Kills: 3, Power: 40, Lives: 0, InvulnFrames: 9, Weapon: cfg.WeaponMissile}
	p.Reset()

	assert.Equal(t, PlayerData{Lives: cfg.Player.StartingLives, Weapon: cfg.WeaponBullet}, p)
	assert.False(t, p.Invulnerable())

	k := KinematicData{ID: 7, Position: Vector{1, 1}, Velocity: Vector{2, 2}, Health: -4}
	ResetPlayerBody(&k)
	assert.Equal(t, ID(7), k.ID)
	assert.Equal(t, PlayerStart(), k.Position)
	assert.Equal(t, cfg.Player.Health, k.Health)
	assert.Equal(t, Vector{}, k.Velocity)
}

func TestMovePlayerClampsPerAxis(t *testing.T) {
	half := cfg.Player.HalfSize
	speed := cfg.Player.Speed

	k := KinematicData{Position: Vector{100, 100}}
	MovePlayer(&k, true, false, false, true)
	assert.Equal(t, Vector{100 + speed, 100 - speed}, k.Position, "diagonals are not normalized")

	k.Position = Vector{half + 0.5, half}
	MovePlayer(&k, true, false, true, false)
	assert.Equal(t, Vector{half, half}, k.Position)

	k.Position = Vector{cfg.Playfield.Width - half, cfg.Playfield.Height - half}
	MovePlayer(&k, false, true, false, true)
	assert.Equal(t, Vector{cfg.Playfield.Width - half, cfg.Playfield.Height - half}, k.Position)
}
