package components

import (
	cfg "github.com/automoto/starblaster/config"
	"github.com/yohamta/donburi"
)

// PlayerData holds the player's progression next to its KinematicData.
type PlayerData struct {
	Score        uint32
	Kills        uint32
	Power        uint32
	Lives        uint32
	InvulnFrames uint32 // Invulnerability frames timer
	Weapon       cfg.WeaponKind
}

var Player = donburi.NewComponentType[PlayerData]()

// PowerLevel is the upgrade tier: one level per 16 power points.
func (p *PlayerData) PowerLevel() int {
	return int(p.Power >> 4)
}

// DifficultyLevel rises by one every 256 points of score.
func (p *PlayerData) DifficultyLevel() int {
	return int(p.Score / 256)
}

// Invulnerable reports whether a hit would currently cost a life.
func (p *PlayerData) Invulnerable() bool {
	return p.InvulnFrames > 0
}

// Reset restores the session-start values.
func (p *PlayerData) Reset() {
	*p = PlayerData{
		Lives:  cfg.Player.StartingLives,
		Weapon: cfg.WeaponBullet,
	}
}

// PlayerStart is where the player spawns and respawns.
func PlayerStart() Vector {
	return Vector{
		X: cfg.Playfield.Width * cfg.Player.StartX,
		Y: cfg.Playfield.Height * cfg.Player.StartY,
	}
}

// ResetPlayerBody puts the player's kinematic state back at the start
// position with full health. The ID is kept.
func ResetPlayerBody(k *KinematicData) {
	k.Position = PlayerStart()
	k.Velocity = Vector{}
	k.Health = cfg.Player.Health
	k.Rotation = 0
}

// MovePlayer applies the directional intents for one frame. Each axis moves
// independently and is clamped to the playfield inset by the player's half
// size, so diagonal movement is faster than straight movement.
func MovePlayer(k *KinematicData, up, down, left, right bool) {
	speed := cfg.Player.Speed
	half := cfg.Player.HalfSize

	if up {
		k.Position.Y = max(k.Position.Y-speed, half)
	}
	if down {
		k.Position.Y = min(k.Position.Y+speed, cfg.Playfield.Height-half)
	}
	if left {
		k.Position.X = max(k.Position.X-speed, half)
	}
	if right {
		k.Position.X = min(k.Position.X+speed, cfg.Playfield.Width-half)
	}
}
