package components

import "github.com/yohamta/donburi"

// DeathReason says why an entity left the simulation.
type DeathReason int

const (
	DeathNone     DeathReason = iota // still alive
	DeathRangeOut                    // left the playfield while moving outward
	DeathKilled                      // health reached zero
	DeathHitPlayer                   // enemy projectile struck the player
)

func (r DeathReason) String() string {
	switch r {
	case DeathNone:
		return "None"
	case DeathRangeOut:
		return "RangeOut"
	case DeathKilled:
		return "Killed"
	case DeathHitPlayer:
		return "HitPlayer"
	}
	return "Unknown"
}

// DeathData marks an entity that died this frame. It is consumed when the
// entity is pruned at the end of the frame.
type DeathData struct {
	Reason DeathReason
}

var Death = donburi.NewComponentType[DeathData]()

// MarkDead records reason on e unless it is DeathNone. The first reason
// recorded in a frame wins.
func MarkDead(e *donburi.Entry, reason DeathReason) bool {
	if reason == DeathNone {
		return false
	}
	if e.HasComponent(Death) {
		return true
	}
	donburi.Add(e, Death, &DeathData{Reason: reason})
	return true
}

// IsDead reports whether e already has a pending death.
func IsDead(e *donburi.Entry) bool {
	return e.HasComponent(Death)
}
