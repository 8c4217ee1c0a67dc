package config

// SessionState is the top-level state of a play session.
type SessionState int

const (
	SessionNotStarted SessionState = iota
	SessionPlaying
	SessionPaused
	SessionGameOver
)

func (s SessionState) String() string {
	switch s {
	case SessionNotStarted:
		return "NotStarted"
	case SessionPlaying:
		return "Playing"
	case SessionPaused:
		return "Paused"
	case SessionGameOver:
		return "GameOver"
	}
	return "Unknown"
}

// WeaponKind selects the player's active weapon.
type WeaponKind int

const (
	WeaponBullet WeaponKind = iota
	WeaponLight
	WeaponMissile
	WeaponCount // Must be last - used for cycling and array sizing
)

func (w WeaponKind) String() string {
	switch w {
	case WeaponBullet:
		return "Bullet"
	case WeaponLight:
		return "Light"
	case WeaponMissile:
		return "Missile"
	}
	return "Unknown"
}

// Next cycles forward through the weapons, wrapping around.
func (w WeaponKind) Next() WeaponKind {
	return (w + 1) % WeaponCount
}

// Prev cycles backward through the weapons, wrapping around.
func (w WeaponKind) Prev() WeaponKind {
	return (w - 1 + WeaponCount) % WeaponCount
}
